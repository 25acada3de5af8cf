package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/moodcalc/moodcalc/pkg/calc"
)

// displayWidth is the inner width of the display panel, sized to the
// four-column button grid below it.
const displayWidth = 26

// renderDisplay draws the display panel: emotion glyph on the left, the
// formatted operand right-aligned beside it.
func renderDisplay(s calc.State, cfg Config) string {
	glyph := cfg.glyphFor(s.Emotion)

	value := s.Display
	style := displayStyle
	if value == calc.Sentinel {
		style = errorStyle
	}

	// Pad before styling: ANSI escapes would throw off the width math.
	line := glyph + style.Render(padLeft(value, displayWidth-5))

	return displayBorder.BorderForeground(lipgloss.Color(cfg.Accent)).
		Width(displayWidth).
		Render(line)
}

// renderStatus draws the one-line status bar under the grid.
func renderStatus(s calc.State) string {
	parts := []string{s.Mode.String(), s.AngleUnit.String()}

	if s.Op != calc.NoOperation {
		parts = append(parts, "op "+operatorLabels[s.Op])
	}
	if s.HasMemory {
		parts = append(parts, "M")
	}

	parts = append(parts, "? help", "esc quit")

	return statusStyle.Render(" " + strings.Join(parts, " · "))
}
