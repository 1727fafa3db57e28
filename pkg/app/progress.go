// Package app provides high-level operations shared by the CLI and TUI.
package app

import (
	"context"
	"errors"
	"os"

	"tableflip.dev/spbar/pkg/checkbox"
	"tableflip.dev/spbar/pkg/marker"
	"tableflip.dev/spbar/pkg/section"
	"tableflip.dev/spbar/pkg/snapshot"
	"tableflip.dev/spbar/pkg/store"
)

// SectionState is one marker's resolved progress.
type SectionState struct {
	Identity int
	Label    string
	Checked  int
	Total    int
	Percent  int
	Empty    bool
}

// ReadDocument loads path, normalizes line endings, and pads a leading
// fence so a marker on the literal first line still indexes.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return marker.PadLeadingFence(section.Normalize(string(data))), nil
}

// Progress resolves every marker in text to its section's checkbox counts.
func Progress(text string) []SectionState {
	lines := section.Lines(text)
	blocks := marker.ScanLines(lines)
	states := make([]SectionState, 0, len(blocks))
	for _, b := range blocks {
		span := section.Resolve(lines, b.Line)
		c := checkbox.ScanLines(lines[span.Start:span.End])
		states = append(states, SectionState{
			Identity: b.Line,
			Label:    b.Label,
			Checked:  c.Checked,
			Total:    c.Total,
			Percent:  c.Percent(),
			Empty:    c.Empty(),
		})
	}
	return states
}

// DocumentProgress counts checkboxes over the whole text.
func DocumentProgress(text string) checkbox.Count {
	return checkbox.Scan(text)
}

// Service wraps persistence so the CLI and TUI share history logic.
type Service struct {
	Persistence store.Persistence
}

// Track reads path and records one snapshot per marker.
func (s *Service) Track(ctx context.Context, path string) ([]*snapshot.Snapshot, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}

	text, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}

	states := Progress(text)
	recorded := make([]*snapshot.Snapshot, 0, len(states))
	for _, st := range states {
		snap := snapshot.New(path, st.Label, st.Identity, st.Checked, st.Total)
		if err := s.Persistence.Store(snap); err != nil {
			return recorded, err
		}
		recorded = append(recorded, snap)
	}
	return recorded, nil
}

// History lists recorded snapshots for path, oldest first.
func (s *Service) History(ctx context.Context, path string) ([]*snapshot.Snapshot, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.List(ctx, path), nil
}

// Paths lists every document with recorded history.
func (s *Service) Paths(ctx context.Context) ([]string, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Paths(ctx), nil
}
