package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/moodcalc/moodcalc/pkg/calc"
)

const buttonWidth = 5

// basicRows is the button layout every mode shows.
var basicRows = [][]string{
	{"C", "⌫", "%", "÷"},
	{"7", "8", "9", "×"},
	{"4", "5", "6", "−"},
	{"1", "2", "3", "+"},
	{"0", ".", "=", "MR"},
}

// scientificRows are appended below the basic grid in scientific mode.
var scientificRows = [][]string{
	{"sin", "cos", "tan", "√"},
	{"x²", "x³", "log", "ln"},
	{"n!", "1/x", "eˣ", "π"},
}

// operatorLabels maps a pending operation to its button label so the grid
// can highlight it.
var operatorLabels = map[calc.Operation]string{
	calc.Add:      "+",
	calc.Subtract: "−",
	calc.Multiply: "×",
	calc.Divide:   "÷",
}

// renderGrid draws the button grid for the current state. The pending
// operator's button is drawn in the accent color. The grid is presentation
// only; input goes through pkg/keymap, so labels never dispatch anything.
func renderGrid(s calc.State, accent string) string {
	rows := basicRows
	if s.Mode == calc.Scientific {
		rows = append(append([][]string{}, basicRows...), scientificRows...)
	}

	pending := operatorLabels[s.Op]

	rendered := make([]string, 0, len(rows))
	for _, row := range rows {
		buttons := make([]string, 0, len(row))
		for _, label := range row {
			style := buttonStyle
			if label != "" && label == pending {
				style = accentButton(accent)
			}
			buttons = append(buttons, style.Render(padCenter(label, buttonWidth)))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
