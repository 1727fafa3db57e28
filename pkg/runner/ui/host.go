package ui

import (
	"tableflip.dev/spbar/pkg/bar"
	"tableflip.dev/spbar/pkg/index"
)

// document is the index's view of the open file.
type document struct {
	path string
	text string
}

func (d *document) Path() string { return d.path }
func (d *document) Text() string { return d.text }

// barElement is the visual slot one marker renders into. The model
// recreates elements whenever the document pane is rebuilt, the way a
// real host destroys and recreates widgets on re-render.
type barElement struct {
	identity int
	stamped  bool
	attached bool
	content  string
}

func (e *barElement) Stamp(identity int) {
	e.identity = identity
	e.stamped = true
}

func (e *barElement) Stamped() (int, bool) { return e.identity, e.stamped }
func (e *barElement) Attached() bool       { return e.attached }

// lineLayout reports the fence line for a freshly created element. known
// is false right after structural edits, before the pane has been rebuilt
// against the new text, which forces the index's fallback scan.
type lineLayout struct {
	line  int
	known bool
}

func (l lineLayout) Line() (int, bool) { return l.line, l.known }

// frameScheduler queues deferred work; the model releases one batch per
// frameMsg, so two chained Defers span two update cycles. This mirrors
// yielding to a paint scheduler rather than waiting on a timer.
type frameScheduler struct {
	pending []func()
}

func (s *frameScheduler) Defer(fn func()) {
	s.pending = append(s.pending, fn)
}

func (s *frameScheduler) step() {
	q := s.pending
	s.pending = nil
	for _, fn := range q {
		fn()
	}
}

func (s *frameScheduler) idle() bool { return len(s.pending) == 0 }

// barRenderer pushes computed progress into bar elements.
type barRenderer struct {
	b *bar.Bar
}

func (r *barRenderer) Render(el index.Element, st index.State) {
	be, ok := el.(*barElement)
	if !ok {
		return
	}
	if st.Empty {
		be.content = r.b.RenderEmpty(st.Label)
		return
	}
	be.content = r.b.Render(st.Label, st.Checked, st.Total, st.Percent)
}
