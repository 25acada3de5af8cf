package calc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// enter types a string of digits/decimal points into a state.
func enter(s State, keys string) State {
	for i := 0; i < len(keys); i++ {
		if keys[i] == '.' {
			s = s.EnterDecimal()
		} else {
			s = s.EnterDigit(keys[i])
		}
	}
	return s
}

func TestEnterDigitReplacesInitialZero(t *testing.T) {
	s := NewState().EnterDigit('7')
	assert.Equal(t, "7", s.Display)

	s = s.EnterDigit('2')
	assert.Equal(t, "72", s.Display)
}

func TestEnterDigitFormatsThousands(t *testing.T) {
	s := enter(NewState(), "1234567")
	assert.Equal(t, "1,234,567", s.Display)
}

func TestEnterDigitRespectsCap(t *testing.T) {
	s := enter(NewState(), strings.Repeat("9", DigitCap))
	assert.Len(t, Unformat(s.Display), DigitCap)

	// Further input is silently dropped.
	capped := s.EnterDigit('1')
	assert.Equal(t, s.Display, capped.Display)
	assert.Len(t, Unformat(capped.Display), DigitCap)
}

func TestEnterDigitResetsEmotion(t *testing.T) {
	s := NewState()
	s.Emotion = Excited

	s = s.EnterDigit('3')
	assert.Equal(t, Neutral, s.Emotion)
}

func TestEnterDecimalResetsEmotion(t *testing.T) {
	// Decimal entry resets the emotion the same way digit entry does.
	s := NewState()
	s.Emotion = Happy

	s = s.EnterDecimal()
	assert.Equal(t, Neutral, s.Emotion)
}

func TestEnterDecimalOnlyOnce(t *testing.T) {
	s := enter(NewState(), "3.14")
	assert.Equal(t, "3.14", s.Display)

	s = s.EnterDecimal()
	assert.Equal(t, "3.14", s.Display)
}

func TestEnterDecimalOnZero(t *testing.T) {
	s := NewState().EnterDecimal()
	assert.Equal(t, "0.", s.Display)
}

func TestBackspace(t *testing.T) {
	s := enter(NewState(), "1234")
	assert.Equal(t, "1,234", s.Display)

	s = s.Backspace()
	assert.Equal(t, "123", s.Display)
}

func TestBackspaceToEmptyResetsToZero(t *testing.T) {
	s := NewState().EnterDigit('5').Backspace()
	assert.Equal(t, "0", s.Display)
}

func TestBackspaceClearsSentinel(t *testing.T) {
	s := NewState()
	s.Display = Sentinel

	s = s.Backspace()
	assert.Equal(t, "0", s.Display)
}

// exponentialResult produces a state whose display is in exponent notation.
func exponentialResult(t *testing.T) State {
	t.Helper()
	s := enter(NewState(), "123456789").SelectOperation(Multiply)
	s = enter(s, "987654321").Calculate()
	require.Equal(t, "1.21932631e+17", s.Display)
	return s
}

func TestEnterDigitReplacesExponentialResult(t *testing.T) {
	// Appending to an exponential result would edit the exponent and
	// silently change the magnitude; entry starts a fresh number instead.
	s := exponentialResult(t).EnterDigit('4')
	assert.Equal(t, "4", s.Display)
	assert.Equal(t, Neutral, s.Emotion)
}

func TestEnterDecimalReplacesExponentialResult(t *testing.T) {
	s := exponentialResult(t).EnterDecimal()
	assert.Equal(t, "0.", s.Display)
}

func TestEntryIgnoredOnSentinel(t *testing.T) {
	s := NewState()
	s.Display = Sentinel

	assert.Equal(t, Sentinel, s.EnterDigit('5').Display)
	assert.Equal(t, Sentinel, s.EnterDecimal().Display)
}

func TestClear(t *testing.T) {
	s := enter(NewState(), "42").SelectOperation(Add)
	s = enter(s, "7")
	s.Mode = Scientific
	s.AngleUnit = Radians
	s = s.MemoryStore()

	s = s.Clear()

	assert.Equal(t, "0", s.Display)
	assert.Empty(t, s.Previous)
	assert.Equal(t, NoOperation, s.Op)
	assert.Equal(t, Neutral, s.Emotion)

	// Mode, angle unit, and memory survive a clear.
	assert.Equal(t, Scientific, s.Mode)
	assert.Equal(t, Radians, s.AngleUnit)
	assert.True(t, s.HasMemory)
}
