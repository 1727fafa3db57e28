// Package marker finds sp-bar fenced blocks in markdown text.
package marker

import (
	"strings"

	"tableflip.dev/spbar/pkg/section"
)

const (
	// Fence opens a section progress block. Trailing characters on the
	// fence line are allowed.
	Fence = "```sp-bar"

	// DefaultLabel is used when a block has no body text.
	DefaultLabel = "Section Progress"
)

// Block is one sp-bar fence found in a document. Line is the zero-based
// position of the opening fence in the current text, which doubles as the
// block's identity for the index.
type Block struct {
	Line  int
	Label string
}

// Scan returns every sp-bar block in text, in source order.
func Scan(text string) []Block {
	return ScanLines(section.Lines(text))
}

// ScanLines scans already-normalized lines for sp-bar blocks. The body of
// a block is label text only and is never re-scanned for content.
func ScanLines(lines []string) []Block {
	var blocks []Block
	for i := 0; i < len(lines); i++ {
		if !strings.HasPrefix(lines[i], Fence) {
			continue
		}
		b := Block{Line: i, Label: DefaultLabel}
		if i+1 < len(lines) && !isClosingFence(lines[i+1]) {
			if label := strings.TrimSpace(lines[i+1]); label != "" {
				b.Label = label
			}
		}
		blocks = append(blocks, b)
		for i++; i < len(lines); i++ {
			if isClosingFence(lines[i]) {
				break
			}
		}
	}
	return blocks
}

// PadLeadingFence prepends one blank line when the document's literal
// first line opens an sp-bar block. Hosts render a fence on line zero
// inconsistently, so indexing always runs against the padded text.
func PadLeadingFence(text string) string {
	if strings.HasPrefix(text, Fence) {
		return "\n" + text
	}
	return text
}

func isClosingFence(line string) bool {
	return strings.TrimSpace(line) == "```"
}
