// Package index maintains per-document tables of section progress markers
// and drives their recomputation as the host re-renders and edits churn.
//
// A marker's identity is the zero-based line of its opening fence in the
// current document text. Identity is recomputed from scratch on every
// re-index, so an edit above a marker supersedes the old table entry
// instead of mutating it; a deferred recomputation for the superseded
// entry fails its stamp check and becomes a no-op.
package index

import (
	"sort"
	"strings"

	"tableflip.dev/spbar/pkg/checkbox"
	"tableflip.dev/spbar/pkg/marker"
	"tableflip.dev/spbar/pkg/section"
)

// Document supplies the current text of an open markdown file. Text may
// change between any two calls.
type Document interface {
	Path() string
	Text() string
}

// Element is the host-owned visual slot a marker renders into. The index
// never controls its lifecycle; it only pushes updates in until the host
// detaches it.
type Element interface {
	// Stamp records the identity the element was last bound to.
	Stamp(identity int)
	// Stamped returns the identity recorded by Stamp.
	Stamped() (identity int, ok bool)
	// Attached reports whether the element is currently part of the
	// visible document. Detached elements may be reattached later
	// during scroll virtualization.
	Attached() bool
}

// Layout answers position queries for a freshly created element. The
// host's metadata is only stable after it has painted at least once
// following attachment.
type Layout interface {
	// Line returns the zero-based line of the element's opening fence
	// when the host knows it.
	Line() (int, bool)
}

// Scheduler defers work onto the host's paint loop. Each Defer runs fn
// after the host completes one more paint cycle.
type Scheduler interface {
	Defer(fn func())
}

// Renderer receives computed progress for display.
type Renderer interface {
	Render(el Element, s State)
}

// State is the data contract pushed to the renderer. Empty flags a
// resolved section with no checkboxes at all, which renders as a notice
// rather than a bar.
type State struct {
	Label   string
	Checked int
	Total   int
	Percent int
	Empty   bool
}

// Marker is one tracked sp-bar block.
type Marker struct {
	Identity  int
	Label     string
	LineStart int

	element Element
	layout  Layout
}

// Bound reports whether a visual element is currently bound.
func (m *Marker) Bound() bool {
	return m.element != nil
}

// Index reconciles markers across re-renders and edits. All methods must
// be called from the host's UI loop; nothing here locks.
type Index struct {
	sched    Scheduler
	renderer Renderer

	docs   map[string][]*Marker
	active string
}

// New creates an empty index using the host's scheduler and renderer.
func New(sched Scheduler, r Renderer) *Index {
	return &Index{
		sched:    sched,
		renderer: r,
		docs:     make(map[string][]*Marker),
	}
}

// Reindex rescans doc and reconciles the marker table against the blocks
// found. Entries whose identity is already known keep their element
// bindings; new identities join unbound; identities no longer present are
// dropped.
func (i *Index) Reindex(doc Document) {
	blocks := marker.Scan(doc.Text())
	prev := i.docs[doc.Path()]
	byID := make(map[int]*Marker, len(prev))
	for _, m := range prev {
		byID[m.Identity] = m
	}

	next := make([]*Marker, 0, len(blocks))
	for _, b := range blocks {
		m, ok := byID[b.Line]
		if !ok {
			m = &Marker{Identity: b.Line}
		}
		m.Label = b.Label
		m.LineStart = b.Line
		next = append(next, m)
	}
	i.docs[doc.Path()] = next
}

// Bind is the render callback. The host calls it every time it creates or
// recreates the visual element for a block, which happens unpredictably
// on scroll, re-render, and focus change. The layout handle's own line
// report is authoritative; when it is not yet stable the first block not
// claimed by a live binding is taken instead, in source order. The first
// recomputation is deferred two paint cycles so the layout metadata can
// settle after attachment.
func (i *Index) Bind(doc Document, label string, el Element, lay Layout) (int, bool) {
	i.Reindex(doc)
	path := doc.Path()

	identity, ok := i.resolveIdentity(path, lay)
	if !ok {
		return 0, false
	}

	m := i.lookup(path, identity)
	if m == nil {
		m = &Marker{Identity: identity, LineStart: identity}
		i.insert(path, m)
	}
	if trimmed := strings.TrimSpace(label); trimmed != "" {
		m.Label = trimmed
	} else if m.Label == "" {
		m.Label = marker.DefaultLabel
	}
	m.element = el
	m.layout = lay
	el.Stamp(identity)

	i.sched.Defer(func() {
		i.sched.Defer(func() {
			i.Recompute(doc, identity)
		})
	})
	return identity, true
}

// Recompute resolves the marker's section, counts its checkboxes, and
// pushes the result to the renderer. A missing, stale-stamped, or
// detached element makes this a silent no-op; that is expected churn from
// the host, not a fault.
func (i *Index) Recompute(doc Document, identity int) {
	m := i.lookup(doc.Path(), identity)
	if m == nil || m.element == nil {
		return
	}
	if stamped, ok := m.element.Stamped(); !ok || stamped != identity {
		return
	}
	if !m.element.Attached() {
		return
	}

	lines := section.Lines(doc.Text())
	span := section.Resolve(lines, m.LineStart)
	count := checkbox.ScanLines(lines[span.Start:span.End])

	i.renderer.Render(m.element, State{
		Label:   m.Label,
		Checked: count.Checked,
		Total:   count.Total,
		Percent: count.Percent(),
		Empty:   count.Empty(),
	})
}

// Refresh re-indexes doc and recomputes every marker whose element is
// still attached. Detached elements are skipped but kept in the table;
// detachment is not destruction and the host may reattach them later.
func (i *Index) Refresh(doc Document) {
	i.Reindex(doc)
	for _, m := range i.docs[doc.Path()] {
		if m.element == nil || !m.element.Attached() {
			continue
		}
		i.Recompute(doc, m.Identity)
	}
}

// SetActive records the newly visible document and evicts every other
// path's table. Only one document is visible at a time, so anything else
// would go unboundedly stale.
func (i *Index) SetActive(path string) {
	i.active = path
	for p := range i.docs {
		if p != path {
			delete(i.docs, p)
		}
	}
}

// Active returns the path most recently passed to SetActive.
func (i *Index) Active() string {
	return i.active
}

// Markers returns the current table for path, ordered by identity.
func (i *Index) Markers(path string) []*Marker {
	return i.docs[path]
}

// resolveIdentity prefers the layout handle's line report. The fallback
// scan picks the first table entry without a live element binding, which
// only activates right after structural edits while the host's layout
// metadata is unstable.
func (i *Index) resolveIdentity(path string, lay Layout) (int, bool) {
	if lay != nil {
		if line, ok := lay.Line(); ok {
			return line, true
		}
	}
	for _, m := range i.docs[path] {
		if m.element == nil || !m.element.Attached() {
			return m.Identity, true
		}
	}
	return 0, false
}

func (i *Index) lookup(path string, identity int) *Marker {
	for _, m := range i.docs[path] {
		if m.Identity == identity {
			return m
		}
	}
	return nil
}

func (i *Index) insert(path string, m *Marker) {
	tbl := i.docs[path]
	at := sort.Search(len(tbl), func(j int) bool { return tbl[j].Identity >= m.Identity })
	tbl = append(tbl, nil)
	copy(tbl[at+1:], tbl[at:])
	tbl[at] = m
	i.docs[path] = tbl
}
