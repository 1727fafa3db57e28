// Package snapshot defines the progress history record.
package snapshot

import (
	"fmt"
	"math"
	"time"
)

// CurrentSchema versions stored snapshots.
const CurrentSchema = "spbar/v1"

// New captures the progress of one marker's section at this moment.
func New(path, label string, line, checked, total int) *Snapshot {
	return &Snapshot{
		Schema:   CurrentSchema,
		Path:     path,
		Label:    label,
		Line:     line,
		Checked:  checked,
		Total:    total,
		Recorded: Timestamp{time.Now()},
	}
}

// Snapshot is one recorded observation of a marker's progress.
type Snapshot struct {
	Schema   string    `json:"schema,omitempty"`
	ID       string    `json:"-"`
	Path     string    `json:"path"`
	Label    string    `json:"label,omitempty"`
	Line     int       `json:"line"`
	Checked  int       `json:"checked"`
	Total    int       `json:"total"`
	Recorded Timestamp `json:"recorded,omitempty"`
}

// Percent returns the completion percentage rounded to the nearest whole
// number.
func (s *Snapshot) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(float64(s.Checked) / float64(s.Total) * 100))
}

func (s *Snapshot) String() string {
	if s.Total == 0 {
		return fmt.Sprintf("%s (no checkboxes)", s.Label)
	}
	return fmt.Sprintf("%s %d/%d (%d%%)", s.Label, s.Checked, s.Total, s.Percent())
}
