package ui

import (
	"testing"

	"tableflip.dev/spbar/pkg/bar"
	"tableflip.dev/spbar/pkg/index"
)

func TestFrameSchedulerStepsOneBatch(t *testing.T) {
	s := &frameScheduler{}

	var ran []string
	s.Defer(func() {
		ran = append(ran, "first")
		s.Defer(func() {
			ran = append(ran, "second")
		})
	})

	if s.idle() {
		t.Fatal("expected pending work")
	}

	s.step()
	if len(ran) != 1 || ran[0] != "first" {
		t.Fatalf("after one step, ran = %v", ran)
	}
	if s.idle() {
		t.Fatal("nested Defer should still be pending")
	}

	s.step()
	if len(ran) != 2 || ran[1] != "second" {
		t.Fatalf("after two steps, ran = %v", ran)
	}
	if !s.idle() {
		t.Fatal("expected scheduler to be idle")
	}
}

func TestBarElementStamp(t *testing.T) {
	el := &barElement{attached: true}
	if _, ok := el.Stamped(); ok {
		t.Fatal("fresh element should not be stamped")
	}
	el.Stamp(7)
	id, ok := el.Stamped()
	if !ok || id != 7 {
		t.Fatalf("Stamped() = %d, %t; want 7, true", id, ok)
	}
	if !el.Attached() {
		t.Fatal("expected attached element")
	}
}

func TestLineLayout(t *testing.T) {
	if line, ok := (lineLayout{line: 4, known: true}).Line(); !ok || line != 4 {
		t.Fatalf("Line() = %d, %t; want 4, true", line, ok)
	}
	if _, ok := (lineLayout{}).Line(); ok {
		t.Fatal("zero layout should be unknown")
	}
}

func TestBarRendererFillsContent(t *testing.T) {
	r := &barRenderer{b: bar.New(bar.DefaultConfig())}

	el := &barElement{attached: true}
	r.Render(el, index.State{Label: "Tasks", Checked: 1, Total: 2, Percent: 50})
	if el.content == "" {
		t.Fatal("expected rendered content")
	}

	empty := &barElement{attached: true}
	r.Render(empty, index.State{Label: "Tasks", Empty: true})
	if empty.content == "" {
		t.Fatal("expected empty-section content")
	}
	if empty.content == el.content {
		t.Fatal("empty section should render differently")
	}
}
