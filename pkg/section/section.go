// Package section resolves the heading-bounded line range that encloses a
// marker line.
package section

import "strings"

// Span is a half-open [Start, End) line range.
type Span struct {
	Start int
	End   int
}

// Normalize collapses all line-ending variants to "\n" so line arithmetic
// is consistent across platforms.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// Lines splits text into normalized lines.
func Lines(text string) []string {
	return strings.Split(Normalize(text), "\n")
}

// Resolve returns the section governing a marker whose opening fence is at
// line. The section starts at the nearest ATX heading above the marker and
// ends just before the next heading of equal or higher rank. A marker with
// no heading above it reports on the whole document.
func Resolve(lines []string, line int) Span {
	if line < 0 {
		line = 0
	}
	if line > len(lines) {
		line = len(lines)
	}

	start := -1
	level := 0
	for i := line - 1; i >= 0; i-- {
		if d := headingLevel(lines[i]); d > 0 {
			start = i
			level = d
			break
		}
	}
	if start < 0 {
		return Span{Start: 0, End: len(lines)}
	}

	end := len(lines)
	for i := line + 1; i < len(lines); i++ {
		if d := headingLevel(lines[i]); d > 0 && d <= level {
			end = i
			break
		}
	}
	return Span{Start: start, End: end}
}

// headingLevel returns the ATX heading depth of line, or zero when the
// line is not a heading. Only 1-6 leading '#' followed by whitespace count.
func headingLevel(line string) int {
	d := 0
	for d < len(line) && line[d] == '#' {
		d++
	}
	if d < 1 || d > 6 || d >= len(line) {
		return 0
	}
	if line[d] != ' ' && line[d] != '\t' {
		return 0
	}
	return d
}
