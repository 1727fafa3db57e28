// Package watch streams document change notifications for markdown files.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a change notification.
type EventType int

const (
	// EventDocumentChanged indicates the text of the given document
	// changed on disk. There is no payload beyond the path; consumers
	// re-read the document themselves.
	EventDocumentChanged EventType = iota

	// EventTreeInvalidated signals that the set of documents itself
	// changed (files or directories added or removed) and callers
	// should refresh their full view.
	EventTreeInvalidated
)

// Event is emitted when a watched document changes.
type Event struct {
	Type EventType
	Path string
}

// Documents streams change events for markdown files under root until ctx
// is cancelled. Callers should drain the returned channel to avoid losing
// events. The channel is closed once ctx is done or the watcher hits an
// unrecoverable error.
func Documents(ctx context.Context, root string) (<-chan Event, error) {
	if root == "" {
		return nil, errors.New("watch: root path required")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "watch: watcher close: %v\n", err)
			}
		})
	}

	dirs, err := collectDirs(root)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("watch: enumerate directories: %w", err)
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("watch: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		watched := make(map[string]struct{}, len(dirs))
		for _, dir := range dirs {
			watched[dir] = struct{}{}
		}

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events when the consumer is not ready; the
				// next edit triggers another refresh anyway, and
				// this keeps filesystem storms from blocking the
				// watcher goroutine.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Surface watcher errors as a full refresh to keep
				// clients in sync even when the change cannot be
				// classified.
				throttle.Enqueue(Event{Type: EventTreeInvalidated}, send)
				_ = err
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}

				if evt.Op&fsnotify.Create == fsnotify.Create {
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						absDir := filepath.Clean(evt.Name)
						if _, found := watched[absDir]; !found {
							if err := watcher.Add(absDir); err != nil {
								fmt.Fprintf(os.Stderr, "watch: watch %s: %v\n", absDir, err)
							} else {
								watched[absDir] = struct{}{}
							}
						}
						throttle.Enqueue(Event{Type: EventTreeInvalidated}, send)
						continue
					}
				}

				if !IsMarkdown(evt.Name) {
					if evt.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
						throttle.Enqueue(Event{Type: EventTreeInvalidated}, send)
					}
					continue
				}

				throttle.Enqueue(Event{Type: EventDocumentChanged, Path: filepath.Clean(evt.Name)}, send)
			}
		}
	}()

	return events, nil
}

// IsMarkdown reports whether path names a markdown document.
func IsMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// collectDirs walks root and returns all directories to be watched.
func collectDirs(root string) ([]string, error) {
	dirs := []string{root}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// eventThrottle coalesces rapid change notifications so consumers redraw
// once per burst of filesystem activity instead of on every write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]map[string]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	if t.pending[ev.Type] == nil {
		t.pending[ev.Type] = make(map[string]struct{})
	}
	t.pending[ev.Type][ev.Path] = struct{}{}

	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for eventType, paths := range pending {
		if len(paths) == 0 {
			send(Event{Type: eventType})
			continue
		}
		for path := range paths {
			send(Event{Type: eventType, Path: path})
		}
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
