package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDocumentsEmitsChangeForMarkdownWrite(t *testing.T) {
	root := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Documents(ctx, root)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	path := filepath.Join(root, "notes.md")
	if err := os.WriteFile(path, []byte("# hello\n- [ ] a\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventTreeInvalidated {
				return
			}
			if evt.Type == EventDocumentChanged {
				if evt.Path != path {
					t.Fatalf("expected path %q, got %q", path, evt.Path)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for document change event")
		}
	}
}

func TestThrottleCoalescesBursts(t *testing.T) {
	th := newEventThrottle(20 * time.Millisecond)
	defer th.Stop()

	got := make(chan Event, 16)
	send := func(ev Event) { got <- ev }

	for i := 0; i < 10; i++ {
		th.Enqueue(Event{Type: EventDocumentChanged, Path: "a.md"}, send)
	}

	select {
	case ev := <-got:
		if ev.Path != "a.md" {
			t.Fatalf("unexpected event: %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for flushed event")
	}

	select {
	case ev := <-got:
		t.Fatalf("burst should coalesce to one event, also got %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestIsMarkdown(t *testing.T) {
	if !IsMarkdown("a/b/notes.md") || !IsMarkdown("x.MARKDOWN") {
		t.Fatalf("markdown extensions should match")
	}
	if IsMarkdown("notes.txt") || IsMarkdown("md") {
		t.Fatalf("non-markdown should not match")
	}
}
