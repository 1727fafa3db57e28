package snapshot

import (
	"encoding/json"
	"testing"
	"time"
)

func TestString(t *testing.T) {
	s := New("notes.md", "Release", 4, 3, 5)
	if got := s.String(); got != "Release 3/5 (60%)" {
		t.Fatalf("unexpected string: %q", got)
	}
	empty := New("notes.md", "Empty", 0, 0, 0)
	if got := empty.String(); got != "Empty (no checkboxes)" {
		t.Fatalf("unexpected empty string: %q", got)
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	s := New("notes.md", "Release", 4, 3, 5)
	s.Recorded = Timestamp{time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Snapshot
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Recorded.Equal(s.Recorded.Time) {
		t.Fatalf("expected %v, got %v", s.Recorded, got.Recorded)
	}
	if got.Checked != 3 || got.Total != 5 || got.Path != "notes.md" {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
}

func TestZeroTimestampMarshalsEmpty(t *testing.T) {
	var ts Timestamp
	data, err := json.Marshal(&ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `""` {
		t.Fatalf("expected empty string, got %s", data)
	}
	if err := ts.UnmarshalJSON([]byte(`""`)); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
}
