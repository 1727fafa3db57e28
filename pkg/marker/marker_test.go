package marker

import "testing"

func TestScanFindsBlocksInSourceOrder(t *testing.T) {
	doc := "# a\n```sp-bar\nAlpha\n```\ntext\n```sp-bar\nBeta\n```\n"
	blocks := Scan(doc)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Line != 1 || blocks[0].Label != "Alpha" {
		t.Fatalf("unexpected first block: %+v", blocks[0])
	}
	if blocks[1].Line != 5 || blocks[1].Label != "Beta" {
		t.Fatalf("unexpected second block: %+v", blocks[1])
	}
}

func TestScanDefaultsEmptyLabel(t *testing.T) {
	for _, doc := range []string{
		"```sp-bar\n\n```\n",
		"```sp-bar\n```\n",
		"```sp-bar\n   \n```\n",
	} {
		blocks := Scan(doc)
		if len(blocks) != 1 {
			t.Fatalf("%q: expected 1 block, got %d", doc, len(blocks))
		}
		if blocks[0].Label != DefaultLabel {
			t.Fatalf("%q: expected default label, got %q", doc, blocks[0].Label)
		}
	}
}

func TestScanAllowsTrailingFenceCharacters(t *testing.T) {
	blocks := Scan("```sp-bar extra stuff\nLabel\n```\n")
	if len(blocks) != 1 || blocks[0].Label != "Label" {
		t.Fatalf("unexpected blocks: %+v", blocks)
	}
}

func TestScanDoesNotMatchOtherFences(t *testing.T) {
	blocks := Scan("```go\ncode\n```\n```sp-barred? no: the prefix still matches\n```\n")
	// Prefix matching is deliberate: the fence may carry trailing
	// characters, so only the ```go block is rejected here.
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
}

func TestScanBodyIsNotReScanned(t *testing.T) {
	// A checkbox-looking label stays label text; the scanner must skip
	// past the closing fence rather than treating the body as document
	// content that could host another fence.
	doc := "```sp-bar\n- [ ] looks like a checkbox\n```\nafter\n"
	blocks := Scan(doc)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Label != "- [ ] looks like a checkbox" {
		t.Fatalf("unexpected label: %q", blocks[0].Label)
	}
}

func TestPadLeadingFence(t *testing.T) {
	padded := PadLeadingFence("```sp-bar\nLabel\n```\n")
	blocks := Scan(padded)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block after padding, got %d", len(blocks))
	}
	if blocks[0].Line != 1 {
		t.Fatalf("expected block shifted to line 1, got %d", blocks[0].Line)
	}

	if got := PadLeadingFence("# normal doc\n"); got != "# normal doc\n" {
		t.Fatalf("non-fence document should be untouched, got %q", got)
	}
}
