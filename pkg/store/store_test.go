package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/spbar/pkg/snapshot"
)

func TestStoreAndListRoundTrip(t *testing.T) {
	p, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	a := snapshot.New("notes.md", "Release", 3, 1, 4)
	b := snapshot.New("notes.md", "Cleanup", 9, 2, 2)
	c := snapshot.New("other.md", "Other", 0, 0, 3)
	for _, s := range []*snapshot.Snapshot{a, b, c} {
		if err := p.Store(s); err != nil {
			t.Fatalf("store: %v", err)
		}
	}

	ctx := context.Background()
	got := p.List(ctx, "notes.md")
	if len(got) != 2 {
		t.Fatalf("expected 2 snapshots for notes.md, got %d", len(got))
	}
	for _, s := range got {
		if s.Path != "notes.md" {
			t.Fatalf("unexpected path %q", s.Path)
		}
	}

	if all := p.ListAll(ctx); len(all) != 3 {
		t.Fatalf("expected 3 snapshots total, got %d", len(all))
	}

	paths := p.Paths(ctx)
	if len(paths) != 2 || paths[0] != "notes.md" || paths[1] != "other.md" {
		t.Fatalf("unexpected paths: %v", paths)
	}
}

func TestListOrdersByRecordedTime(t *testing.T) {
	p, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	older := snapshot.New("notes.md", "Release", 3, 1, 4)
	older.Recorded = snapshot.Timestamp{Time: time.Now().Add(-time.Hour)}
	newer := snapshot.New("notes.md", "Release", 3, 2, 4)

	if err := p.Store(newer); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := p.Store(older); err != nil {
		t.Fatalf("store: %v", err)
	}

	got := p.List(context.Background(), "notes.md")
	if len(got) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(got))
	}
	if !got[0].Recorded.Before(got[1].Recorded.Time) {
		t.Fatalf("snapshots out of order: %v then %v", got[0].Recorded, got[1].Recorded)
	}
}

func TestDelete(t *testing.T) {
	p, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	s := snapshot.New("notes.md", "Release", 3, 1, 4)
	if err := p.Store(s); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := p.Delete(s); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := p.List(context.Background(), "notes.md"); len(got) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(got))
	}
}

func TestKeyTransformsRoundTrip(t *testing.T) {
	key := "c2VnbWVudA==-2026-08-31-deadbeef"
	pk := keyToPathTransform(key)
	if got := pathToKeyTransform(pk); got != key {
		t.Fatalf("round trip changed key: %q vs %q", got, key)
	}
}
