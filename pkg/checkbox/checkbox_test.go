package checkbox

import "testing"

func TestScanCountsCheckedAndUnchecked(t *testing.T) {
	text := "# Title\n- [ ] one\nsome prose\n- [x] two\n- [X] three\n\n- [ ] four\n"
	c := Scan(text)
	if c.Checked != 2 {
		t.Fatalf("expected 2 checked, got %d", c.Checked)
	}
	if c.Total != 4 {
		t.Fatalf("expected 4 total, got %d", c.Total)
	}
}

func TestScanIgnoresNonCheckboxLines(t *testing.T) {
	text := "- a plain list item\n* [ ] wrong bullet\n-[ ] missing space\n- [y] not a check\n"
	c := Scan(text)
	if c.Total != 0 {
		t.Fatalf("expected no checkboxes, got %d", c.Total)
	}
}

func TestScanAllowsIndentation(t *testing.T) {
	text := "  - [ ] indented\n\t- [x] tabbed\n"
	c := Scan(text)
	if c.Total != 2 || c.Checked != 1 {
		t.Fatalf("unexpected count %+v", c)
	}
}

func TestScanInterleavingDoesNotMatter(t *testing.T) {
	a := Scan("- [x] a\n- [ ] b\n- [x] c\n")
	b := Scan("- [ ] b\n- [x] a\n- [x] c\n")
	if a != b {
		t.Fatalf("interleaving changed counts: %+v vs %+v", a, b)
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		checked, total, want int
	}{
		{0, 0, 0},
		{1, 2, 50},
		{1, 1, 100},
		{1, 3, 33},
		{2, 3, 67},
		{0, 5, 0},
	}
	for _, tc := range cases {
		c := Count{Checked: tc.checked, Total: tc.total}
		if got := c.Percent(); got != tc.want {
			t.Fatalf("%d/%d: expected %d%%, got %d%%", tc.checked, tc.total, tc.want, got)
		}
	}
}

func TestEmpty(t *testing.T) {
	if !(Count{}).Empty() {
		t.Fatalf("zero count should be empty")
	}
	if (Count{Total: 1}).Empty() {
		t.Fatalf("non-zero total should not be empty")
	}
}
