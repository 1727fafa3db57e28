package bar

import (
	"strings"
	"testing"
)

func TestRenderFillProportions(t *testing.T) {
	b := New(Config{Width: 10, FillGlyph: "#", EmptyGlyph: "."})
	out := b.Render("Label", 1, 2, 50)
	if strings.Count(out, "#") != 5 {
		t.Fatalf("expected 5 filled cells, got %d in %q", strings.Count(out, "#"), out)
	}
	if strings.Count(out, ".") != 5 {
		t.Fatalf("expected 5 empty cells, got %d in %q", strings.Count(out, "."), out)
	}
	if !strings.Contains(out, "1/2 (50%)") {
		t.Fatalf("expected counts in output, got %q", out)
	}
	if !strings.Contains(out, "Label") {
		t.Fatalf("expected label in output, got %q", out)
	}
}

func TestRenderCompleteAndZero(t *testing.T) {
	b := New(Config{Width: 4, FillGlyph: "#", EmptyGlyph: "."})
	if out := b.Render("x", 3, 3, 100); strings.Count(out, "#") != 4 || strings.Count(out, ".") != 0 {
		t.Fatalf("full bar wrong: %q", out)
	}
	if out := b.Render("x", 0, 3, 0); strings.Count(out, "#") != 0 || strings.Count(out, ".") != 4 {
		t.Fatalf("zero bar wrong: %q", out)
	}
}

func TestRenderEmptyNotice(t *testing.T) {
	b := New(DefaultConfig())
	out := b.RenderEmpty("Section")
	if !strings.Contains(out, NoCheckboxesNotice) {
		t.Fatalf("expected notice, got %q", out)
	}
	if !strings.Contains(out, "Section") {
		t.Fatalf("expected label, got %q", out)
	}
}

func TestNewFillsDefaults(t *testing.T) {
	b := New(Config{})
	if b.cfg.Width != 30 || b.cfg.FillGlyph == "" || b.cfg.EmptyGlyph == "" {
		t.Fatalf("defaults not applied: %+v", b.cfg)
	}
}

func TestNewTolerantOfBadColors(t *testing.T) {
	b := New(Config{StartColor: "not-a-color", EndColor: "also bad"})
	out := b.Render("x", 1, 2, 50)
	if out == "" {
		t.Fatalf("expected output despite bad colors")
	}
}

func TestPlain(t *testing.T) {
	b := New(Config{Width: 8, FillGlyph: "#", EmptyGlyph: "."})
	if got := b.Plain(1, 4, 25); got != "##......" {
		t.Fatalf("unexpected plain bar: %q", got)
	}
}
