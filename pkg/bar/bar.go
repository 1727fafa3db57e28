// Package bar renders section progress as a filled bar.
package bar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// NoCheckboxesNotice is shown when a resolved section has no checkboxes.
const NoCheckboxesNotice = "no checkboxes in this section"

// Config controls bar appearance. Zero values fall back to defaults.
type Config struct {
	Width      int
	FillGlyph  string
	EmptyGlyph string
	StartColor string // hex color of the gradient at 0%
	EndColor   string // hex color of the gradient at 100%
}

// DefaultConfig returns the stock appearance.
func DefaultConfig() Config {
	return Config{
		Width:      30,
		FillGlyph:  "█",
		EmptyGlyph: "░",
		StartColor: "#d75f5f",
		EndColor:   "#5fd787",
	}
}

// Bar renders progress states into styled terminal strings.
type Bar struct {
	cfg   Config
	start colorful.Color
	end   colorful.Color
}

// New creates a Bar, filling missing config fields from DefaultConfig.
// Unparseable colors fall back to the defaults too.
func New(cfg Config) *Bar {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.FillGlyph == "" {
		cfg.FillGlyph = def.FillGlyph
	}
	if cfg.EmptyGlyph == "" {
		cfg.EmptyGlyph = def.EmptyGlyph
	}
	if cfg.StartColor == "" {
		cfg.StartColor = def.StartColor
	}
	if cfg.EndColor == "" {
		cfg.EndColor = def.EndColor
	}

	start, err := colorful.Hex(cfg.StartColor)
	if err != nil {
		start, _ = colorful.Hex(def.StartColor)
	}
	end, err := colorful.Hex(cfg.EndColor)
	if err != nil {
		end, _ = colorful.Hex(def.EndColor)
	}
	return &Bar{cfg: cfg, start: start, end: end}
}

// Render returns the styled bar line for the given counts.
func (b *Bar) Render(label string, checked, total, percent int) string {
	filled := 0
	if total > 0 {
		filled = b.cfg.Width * checked / total
	}
	if filled > b.cfg.Width {
		filled = b.cfg.Width
	}

	tone := b.start.BlendLuv(b.end, float64(percent)/100.0)
	fill := lipgloss.NewStyle().
		Foreground(lipgloss.Color(tone.Hex())).
		Render(strings.Repeat(b.cfg.FillGlyph, filled))
	rest := lipgloss.NewStyle().
		Faint(true).
		Render(strings.Repeat(b.cfg.EmptyGlyph, b.cfg.Width-filled))
	title := lipgloss.NewStyle().Bold(true).Render(label)

	return fmt.Sprintf("%s %s%s %d/%d (%d%%)", title, fill, rest, checked, total, percent)
}

// RenderEmpty returns the zero-state notice used when a section has no
// checkboxes at all.
func (b *Bar) RenderEmpty(label string) string {
	title := lipgloss.NewStyle().Bold(true).Render(label)
	notice := lipgloss.NewStyle().Faint(true).Italic(true).Render(NoCheckboxesNotice)
	return fmt.Sprintf("%s %s", title, notice)
}

// Plain returns an unstyled bar line for non-TTY output.
func (b *Bar) Plain(checked, total, percent int) string {
	filled := 0
	if total > 0 {
		filled = b.cfg.Width * checked / total
	}
	if filled > b.cfg.Width {
		filled = b.cfg.Width
	}
	return strings.Repeat(b.cfg.FillGlyph, filled) + strings.Repeat(b.cfg.EmptyGlyph, b.cfg.Width-filled)
}
