// Package ui hosts the Bubble Tea program that renders markdown documents
// with live section progress bars.
package ui

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/spbar/pkg/app"
	"tableflip.dev/spbar/pkg/bar"
	"tableflip.dev/spbar/pkg/index"
	"tableflip.dev/spbar/pkg/marker"
	"tableflip.dev/spbar/pkg/section"
	"tableflip.dev/spbar/pkg/store"
	"tableflip.dev/spbar/pkg/watch"
)

// UI opens the live viewer rooted at a markdown file or a directory.
type UI struct {
	Root        string
	Bar         bar.Config
	Persistence store.Persistence
}

func (d *UI) Do(ctx context.Context) error {
	m, err := New(ctx, d.Root, d.Bar, d.Persistence)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// openSettleDelay gives the host time to finish loading content before
// the first whole-document computation after a document opens.
const openSettleDelay = 150 * time.Millisecond

type fileItem struct{ path string }

func (f fileItem) Title() string       { return filepath.Base(f.path) }
func (f fileItem) Description() string { return f.path }
func (f fileItem) FilterValue() string { return f.path }

type errMsg struct{ err error }
type filesLoadedMsg struct{ items []list.Item }
type docLoadedMsg struct{ path, text string }
type docChangedMsg struct{ path, text string }
type docSettledMsg struct{ path string }
type frameMsg struct{}
type watchStartedMsg struct {
	ch     <-chan watch.Event
	cancel context.CancelFunc
	err    error
}
type watchEventMsg struct{ event watch.Event }
type watchStoppedMsg struct{}
type trackedMsg struct {
	count int
	err   error
}

// Model contains UI state.
type Model struct {
	ctx     context.Context
	root    string
	rootDir string

	files      list.Model
	view       viewport.Model
	focusFiles bool

	idx   *index.Index
	sched *frameScheduler
	b     *bar.Bar
	svc   *app.Service

	doc      *document
	elements map[int]*barElement

	watchCh     <-chan watch.Event
	watchCancel context.CancelFunc

	status      string
	width       int
	height      int
	docWidth    int
	frameQueued bool
	settled     bool
}

// New creates the UI model rooted at a file or directory.
func New(ctx context.Context, root string, cfg bar.Config, p store.Persistence) (Model, error) {
	info, err := os.Stat(root)
	if err != nil {
		return Model{}, err
	}
	rootDir := root
	if !info.IsDir() {
		rootDir = filepath.Dir(root)
	}

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)
	l := list.New([]list.Item{}, d, 28, 20)
	l.Title = "Documents"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	vp := viewport.New(viewport.WithWidth(1), viewport.WithHeight(1))

	b := bar.New(cfg)
	sched := &frameScheduler{}
	m := Model{
		ctx:      ctx,
		root:     root,
		rootDir:  rootDir,
		files:    l,
		view:     vp,
		sched:    sched,
		idx:      index.New(sched, &barRenderer{b: b}),
		b:        b,
		svc:      &app.Service{Persistence: p},
		elements: make(map[int]*barElement),
		status:   "j/k scroll, tab files, enter open, t track, q quit",
	}
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadFiles(), m.openInitial(), startWatchCmd(m.ctx, m.rootDir))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applySizes()
		m.rebuildView()
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case filesLoadedMsg:
		m.files.SetItems(msg.items)
		if m.doc == nil && len(msg.items) > 0 {
			if it, ok := msg.items[0].(fileItem); ok {
				cmds = append(cmds, m.openDocument(it.path))
			}
		}
	case docLoadedMsg:
		m.attachDocument(msg.path, msg.text, &cmds)
	case docChangedMsg:
		m.refreshDocument(msg.path, msg.text, &cmds)
	case docSettledMsg:
		if m.doc != nil && m.doc.path == msg.path {
			m.settled = true
			m.idx.Refresh(m.doc)
			m.queueFrame(&cmds)
			m.rebuildView()
		}
	case frameMsg:
		m.frameQueued = false
		m.sched.step()
		m.queueFrame(&cmds)
		m.rebuildView()
	case watchStartedMsg:
		if msg.err != nil {
			m.status = "watch unavailable: " + msg.err.Error()
			break
		}
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		m.handleWatchEvent(msg.event, &cmds)
		cmds = append(cmds, m.waitForWatch())
	case watchStoppedMsg:
		m.watchCh = nil
	case trackedMsg:
		if msg.err != nil {
			m.status = "track failed: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("recorded %d snapshot(s)", msg.count)
		}
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.stopWatch()
			return m, tea.Quit
		case "tab":
			m.focusFiles = !m.focusFiles
		case "enter":
			if m.focusFiles {
				if it, ok := m.files.SelectedItem().(fileItem); ok {
					m.focusFiles = false
					cmds = append(cmds, m.openDocument(it.path))
				}
			}
		case "t":
			if m.doc != nil {
				cmds = append(cmds, m.trackCmd(m.doc.path))
			}
		default:
			var cmd tea.Cmd
			if m.focusFiles {
				m.files, cmd = m.files.Update(msg)
			} else {
				m.view, cmd = m.view.Update(msg)
			}
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.files.View(), " ", m.view.View())
	status := lipgloss.NewStyle().Faint(true).Render(m.statusLine())
	return body + "\n" + status
}

func (m Model) statusLine() string {
	if m.doc == nil || !m.settled {
		return m.status
	}
	c := app.DocumentProgress(m.doc.text)
	if c.Empty() {
		return fmt.Sprintf("%s | no checkboxes | %s", m.doc.path, m.status)
	}
	return fmt.Sprintf("%s | %d/%d (%d%%) | %s", m.doc.path, c.Checked, c.Total, c.Percent(), m.status)
}

// attachDocument swaps the visible document in. The pane is rebuilt from
// scratch: every marker gets a fresh element, the way a host recreates
// widgets on render, and tables for other paths are evicted.
func (m *Model) attachDocument(path, text string, cmds *[]tea.Cmd) {
	m.detachElements()
	m.doc = &document{path: path, text: text}
	m.settled = false
	m.idx.SetActive(path)
	m.elements = make(map[int]*barElement)
	m.bindAll(cmds)
	*cmds = append(*cmds, tea.Tick(openSettleDelay, func(time.Time) tea.Msg {
		return docSettledMsg{path: path}
	}))
	m.view.SetYOffset(0)
	m.rebuildView()
}

// refreshDocument applies an on-disk edit to the open document. Markers
// that kept their identity keep their elements; shifted markers rebind
// with fresh elements, and vanished identities detach theirs.
func (m *Model) refreshDocument(path, text string, cmds *[]tea.Cmd) {
	if m.doc == nil || m.doc.path != path {
		// No active view for this document; skip the refresh entirely.
		return
	}
	m.doc.text = text
	m.idx.Refresh(m.doc)

	live := make(map[int]*barElement, len(m.elements))
	for _, mk := range m.idx.Markers(path) {
		if el, ok := m.elements[mk.Identity]; ok {
			live[mk.Identity] = el
		}
	}
	for id, el := range m.elements {
		if _, ok := live[id]; !ok {
			el.attached = false
		}
	}
	m.elements = live

	m.bindUnbound(cmds)
	m.queueFrame(cmds)
	m.rebuildView()
}

func (m *Model) detachElements() {
	for _, el := range m.elements {
		el.attached = false
	}
}

func (m *Model) bindAll(cmds *[]tea.Cmd) {
	for _, b := range marker.Scan(m.doc.text) {
		el := &barElement{attached: true}
		if id, ok := m.idx.Bind(m.doc, b.Label, el, lineLayout{line: b.Line, known: true}); ok {
			m.elements[id] = el
		}
	}
	m.queueFrame(cmds)
}

// bindUnbound recreates elements for markers that lost theirs. Layout
// metadata is not stable immediately after a structural edit, so identity
// resolution goes through the index's fallback scan.
func (m *Model) bindUnbound(cmds *[]tea.Cmd) {
	for _, mk := range m.idx.Markers(m.doc.path) {
		if mk.Bound() {
			continue
		}
		el := &barElement{attached: true}
		if id, ok := m.idx.Bind(m.doc, mk.Label, el, lineLayout{}); ok {
			m.elements[id] = el
		}
	}
	m.queueFrame(cmds)
}

func (m *Model) queueFrame(cmds *[]tea.Cmd) {
	if m.frameQueued || m.sched.idle() {
		return
	}
	m.frameQueued = true
	*cmds = append(*cmds, func() tea.Msg { return frameMsg{} })
}

// rebuildView re-renders the document pane, splicing each marker's
// element content in place of its fenced block.
func (m *Model) rebuildView() {
	if m.doc == nil {
		m.view.SetContent("")
		return
	}

	lines := section.Lines(m.doc.text)
	blocks := marker.ScanLines(lines)
	blockAt := make(map[int]marker.Block, len(blocks))
	for _, b := range blocks {
		blockAt[b.Line] = b
	}

	wrapAt := m.docWidth
	if wrapAt < 20 {
		wrapAt = 20
	}

	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		if b, ok := blockAt[i]; ok {
			content := "…"
			if el, found := m.elements[i]; found && el.content != "" {
				content = el.content
			} else if el == nil || el.content == "" {
				content = "… " + b.Label
			}
			out = append(out, content)
			for i++; i < len(lines); i++ {
				if strings.TrimSpace(lines[i]) == "```" {
					break
				}
			}
			continue
		}
		out = append(out, wordwrap.String(lines[i], wrapAt))
	}
	m.view.SetContent(strings.Join(out, "\n"))
}

func (m *Model) applySizes() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	listWidth := 28
	if m.width < 60 {
		listWidth = m.width / 3
	}
	m.files.SetSize(listWidth, max(m.height-2, 1))
	m.docWidth = m.width - listWidth - 1
	m.view.SetWidth(max(m.docWidth, 1))
	m.view.SetHeight(max(m.height-2, 1))
}

func (m Model) loadFiles() tea.Cmd {
	root := m.rootDir
	return func() tea.Msg {
		var items []list.Item
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return fs.SkipDir
				}
				return nil
			}
			if watch.IsMarkdown(path) {
				items = append(items, fileItem{path: path})
			}
			return nil
		})
		if err != nil {
			return errMsg{err}
		}
		sort.Slice(items, func(i, j int) bool {
			return items[i].(fileItem).path < items[j].(fileItem).path
		})
		return filesLoadedMsg{items: items}
	}
}

func (m Model) openInitial() tea.Cmd {
	info, err := os.Stat(m.root)
	if err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	if info.IsDir() {
		return nil
	}
	return m.openDocument(m.root)
}

func (m Model) openDocument(path string) tea.Cmd {
	return func() tea.Msg {
		text, err := app.ReadDocument(path)
		if err != nil {
			return errMsg{err}
		}
		return docLoadedMsg{path: path, text: text}
	}
}

func (m Model) reloadDocument(path string) tea.Cmd {
	return func() tea.Msg {
		text, err := app.ReadDocument(path)
		if err != nil {
			return errMsg{err}
		}
		return docChangedMsg{path: path, text: text}
	}
}

func (m Model) trackCmd(path string) tea.Cmd {
	svc := m.svc
	ctx := m.ctx
	return func() tea.Msg {
		recorded, err := svc.Track(ctx, path)
		return trackedMsg{count: len(recorded), err: err}
	}
}

func startWatchCmd(parent context.Context, root string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := watch.Documents(ctx, root)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) handleWatchEvent(ev watch.Event, cmds *[]tea.Cmd) {
	switch ev.Type {
	case watch.EventDocumentChanged:
		if m.doc != nil && m.doc.path == ev.Path {
			*cmds = append(*cmds, m.reloadDocument(ev.Path))
		}
	case watch.EventTreeInvalidated:
		*cmds = append(*cmds, m.loadFiles())
		if m.doc != nil {
			*cmds = append(*cmds, m.reloadDocument(m.doc.path))
		}
	}
}
