// Package printers renders progress output for the one-shot CLI commands.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/spbar/pkg/app"
	"tableflip.dev/spbar/pkg/bar"
	"tableflip.dev/spbar/pkg/checkbox"
	"tableflip.dev/spbar/pkg/snapshot"
)

type PrettyPrint struct {
	ShowLine bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Sections prints one row per marker: label, bar, counts, percentage.
func (pp *PrettyPrint) Sections(b *bar.Bar, states ...app.SectionState) {
	if len(states) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no markers\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, st := range states {
		label := st.Label
		if pp.ShowLine {
			label = fmt.Sprintf("%d: %s", st.Identity, st.Label)
		}
		if st.Empty {
			tbl.AddRow(label, bar.NoCheckboxesNotice, "", "")
			continue
		}
		tbl.AddRow(label,
			b.Plain(st.Checked, st.Total, st.Percent),
			fmt.Sprintf("%d/%d", st.Checked, st.Total),
			fmt.Sprintf("%d%%", st.Percent))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Document prints the whole-document tally.
func (pp *PrettyPrint) Document(c checkbox.Count) {
	f := color.New(color.Faint)
	if c.Empty() {
		_, _ = f.Println("document: no checkboxes")
		return
	}
	_, _ = f.Printf("document: %d/%d (%d%%)\n", c.Checked, c.Total, c.Percent())
}

// History prints recorded snapshots, oldest first.
func (pp *PrettyPrint) History(snaps ...*snapshot.Snapshot) {
	if len(snaps) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no history\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	y := color.New(color.FgHiYellow, color.Faint)
	for _, s := range snaps {
		when := y.Sprint(s.Recorded.String())
		if s.Total == 0 {
			tbl.AddRow(when, s.Label, bar.NoCheckboxesNotice, "")
			continue
		}
		tbl.AddRow(when, s.Label,
			fmt.Sprintf("%d/%d", s.Checked, s.Total),
			fmt.Sprintf("%d%%", s.Percent()))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// PathHeading prints a path as a secondary heading; used when history for
// several documents is printed in one run.
func (pp *PrettyPrint) PathHeading(path string) {
	t := color.New(color.Bold)
	_, _ = t.Println(strings.TrimSpace(path))
}
