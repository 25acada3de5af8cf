package keymap

import (
	"testing"

	"github.com/moodcalc/moodcalc/pkg/calc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDigits(t *testing.T) {
	for _, k := range []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"} {
		op, ok := Resolve(k, calc.Basic)
		require.True(t, ok, "digit %q", k)
		assert.Equal(t, calc.KindDigit, op.Kind)
		assert.Equal(t, k[0], op.Digit)
	}
}

func TestResolveBasicKeys(t *testing.T) {
	tests := []struct {
		key   string
		kind  calc.OpKind
		binop calc.Operation
	}{
		{".", calc.KindDecimal, calc.NoOperation},
		{"+", calc.KindOperation, calc.Add},
		{"-", calc.KindOperation, calc.Subtract},
		{"*", calc.KindOperation, calc.Multiply},
		{"x", calc.KindOperation, calc.Multiply},
		{"X", calc.KindOperation, calc.Multiply},
		{"/", calc.KindOperation, calc.Divide},
		{"enter", calc.KindCalculate, calc.NoOperation},
		{"=", calc.KindCalculate, calc.NoOperation},
		{"backspace", calc.KindBackspace, calc.NoOperation},
		{"%", calc.KindPercent, calc.NoOperation},
		{"c", calc.KindClear, calc.NoOperation},
		{"C", calc.KindClear, calc.NoOperation},
		{"s", calc.KindToggleMode, calc.NoOperation},
		{"u", calc.KindToggleAngleUnit, calc.NoOperation},
		{"m", calc.KindMemoryStore, calc.NoOperation},
		{"r", calc.KindMemoryRecall, calc.NoOperation},
		{"a", calc.KindMemoryAdd, calc.NoOperation},
		{"M", calc.KindMemoryClear, calc.NoOperation},
	}
	for _, tt := range tests {
		op, ok := Resolve(tt.key, calc.Basic)
		require.True(t, ok, "key %q", tt.key)
		assert.Equal(t, tt.kind, op.Kind, "key %q", tt.key)
		if tt.kind == calc.KindOperation {
			assert.Equal(t, tt.binop, op.Binop, "key %q", tt.key)
		}
	}
}

func TestResolveScientificKeysNeedScientificMode(t *testing.T) {
	_, ok := Resolve("q", calc.Basic)
	assert.False(t, ok)

	op, ok := Resolve("q", calc.Scientific)
	require.True(t, ok)
	assert.Equal(t, calc.KindUnary, op.Kind)
	assert.Equal(t, calc.Sqrt, op.Fn)
}

func TestResolveScientificFunctions(t *testing.T) {
	tests := []struct {
		key string
		fn  calc.Unary
	}{
		{"S", calc.Sin},
		{"O", calc.Cos},
		{"T", calc.Tan},
		{"q", calc.Sqrt},
		{"^", calc.Square},
		{"#", calc.Cube},
		{"l", calc.Log10},
		{"n", calc.Ln},
		{"!", calc.Factorial},
		{"i", calc.Reciprocal},
		{"e", calc.Exp},
		{"p", calc.Pi},
		{"E", calc.E},
	}
	for _, tt := range tests {
		op, ok := Resolve(tt.key, calc.Scientific)
		require.True(t, ok, "key %q", tt.key)
		assert.Equal(t, calc.KindUnary, op.Kind, "key %q", tt.key)
		assert.Equal(t, tt.fn, op.Fn, "key %q", tt.key)
	}
}

func TestResolveUnknownKey(t *testing.T) {
	for _, k := range []string{"z", "ctrl+c", "up", "tab", ""} {
		_, ok := Resolve(k, calc.Scientific)
		assert.False(t, ok, "key %q", k)
	}
}

func TestDigitsWinOverScientificBindings(t *testing.T) {
	// Digit keys stay digits even in scientific mode.
	op, ok := Resolve("2", calc.Scientific)
	require.True(t, ok)
	assert.Equal(t, calc.KindDigit, op.Kind)
}
