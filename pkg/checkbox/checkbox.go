// Package checkbox counts markdown task-list items in a span of text.
package checkbox

import (
	"math"
	"strings"
)

const (
	unchecked    = "- [ ]"
	checkedLower = "- [x]"
	checkedUpper = "- [X]"
)

// Count holds checkbox tallies for a span of text.
type Count struct {
	Checked int
	Total   int
}

// Scan tallies task-list items in text. Only the flat `- [ ]` and `- [x]`
// forms are recognized; the check character is case-insensitive.
func Scan(text string) Count {
	return ScanLines(strings.Split(text, "\n"))
}

// ScanLines tallies task-list items over already-split lines.
func ScanLines(lines []string) Count {
	var c Count
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		switch {
		case strings.HasPrefix(trimmed, unchecked):
			c.Total++
		case strings.HasPrefix(trimmed, checkedLower), strings.HasPrefix(trimmed, checkedUpper):
			c.Checked++
			c.Total++
		}
	}
	return c
}

// Percent returns the completion percentage rounded to the nearest whole
// number. A zero-total count reports zero.
func (c Count) Percent() int {
	if c.Total == 0 {
		return 0
	}
	return int(math.Round(float64(c.Checked) / float64(c.Total) * 100))
}

// Empty reports whether the span contained no checkboxes at all.
func (c Count) Empty() bool {
	return c.Total == 0
}
