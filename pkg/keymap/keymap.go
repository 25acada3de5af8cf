// Package keymap maps terminal key names to calculator input events. It is
// kept apart from the TUI so the binding table can be tested without a
// running bubbletea program. Terminal key events arrive once per delivered
// press, so a held key cannot produce the level-triggered repeats a browser
// keydown stream would.
package keymap

import "github.com/moodcalc/moodcalc/pkg/calc"

// bindings is the fixed key table. Keys are the strings produced by
// tea.KeyMsg.String().
var bindings = map[string]calc.Op{
	".":         {Kind: calc.KindDecimal},
	"+":         calc.BinaryOp(calc.Add),
	"-":         calc.BinaryOp(calc.Subtract),
	"*":         calc.BinaryOp(calc.Multiply),
	"x":         calc.BinaryOp(calc.Multiply),
	"X":         calc.BinaryOp(calc.Multiply),
	"/":         calc.BinaryOp(calc.Divide),
	"enter":     {Kind: calc.KindCalculate},
	"=":         {Kind: calc.KindCalculate},
	"backspace": {Kind: calc.KindBackspace},
	"%":         {Kind: calc.KindPercent},
	"c":         {Kind: calc.KindClear},
	"C":         {Kind: calc.KindClear},

	// Toggles and memory register.
	"s": {Kind: calc.KindToggleMode},
	"u": {Kind: calc.KindToggleAngleUnit},
	"m": {Kind: calc.KindMemoryStore},
	"r": {Kind: calc.KindMemoryRecall},
	"a": {Kind: calc.KindMemoryAdd},
	"M": {Kind: calc.KindMemoryClear},
}

// scientificBindings are only active in scientific mode.
var scientificBindings = map[string]calc.Op{
	"S": calc.UnaryOp(calc.Sin),
	"O": calc.UnaryOp(calc.Cos),
	"T": calc.UnaryOp(calc.Tan),
	"q": calc.UnaryOp(calc.Sqrt),
	"^": calc.UnaryOp(calc.Square),
	"#": calc.UnaryOp(calc.Cube),
	"l": calc.UnaryOp(calc.Log10),
	"n": calc.UnaryOp(calc.Ln),
	"!": calc.UnaryOp(calc.Factorial),
	"i": calc.UnaryOp(calc.Reciprocal),
	"e": calc.UnaryOp(calc.Exp),
	"p": calc.UnaryOp(calc.Pi),
	"E": calc.UnaryOp(calc.E),
}

// Resolve returns the input event bound to key, if any. Digits always map
// to digit entry; scientific function keys resolve only when the engine is
// in scientific mode.
func Resolve(key string, mode calc.Mode) (calc.Op, bool) {
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return calc.DigitOp(key[0]), true
	}

	if op, ok := bindings[key]; ok {
		return op, true
	}

	if mode == calc.Scientific {
		if op, ok := scientificBindings[key]; ok {
			return op, true
		}
	}

	return calc.Op{}, false
}
