package calc

import (
	"fmt"
	"math"
	"strconv"
)

// SelectOperation captures the current display as the left operand and
// stores op, resetting the display for the right operand. Nothing is
// evaluated: a previously pending operation is discarded without
// evaluation (single-pending-operation model, no chaining).
func (s State) SelectOperation(op Operation) State {
	if op == NoOperation || s.Display == Sentinel {
		return s
	}

	s.Previous = Unformat(s.Display)
	s.Op = op
	s.Display = "0"
	s.Emotion = Neutral
	return s
}

// Calculate applies the pending binary operator to the captured operand and
// the current display. With no pending operation it returns the state
// unchanged. All results pass through the same finite-check as the
// scientific functions, so divide-by-zero surfaces as the error sentinel
// instead of leaking an infinity into the display.
func (s State) Calculate() State {
	if s.Op == NoOperation {
		return s
	}

	prev, err1 := strconv.ParseFloat(s.Previous, 64)
	cur, err2 := strconv.ParseFloat(Unformat(s.Display), 64)
	op := s.Op
	s.Previous = ""
	s.Op = NoOperation
	if err1 != nil || err2 != nil {
		return s.fail()
	}

	var r float64
	switch op {
	case Add:
		r = prev + cur
	case Subtract:
		r = prev - cur
	case Multiply:
		r = prev * cur
	case Divide:
		r = prev / cur
	}

	return s.withResult(r)
}

// Percent transforms the display value only; it never evaluates or clears a
// pending operation. With an operation pending it yields previous*display/100
// (a percentage of the captured operand), otherwise display/100. Emotion is
// untouched in both branches.
func (s State) Percent() State {
	if s.Display == Sentinel {
		return s
	}

	cur, err := strconv.ParseFloat(Unformat(s.Display), 64)
	if err != nil {
		return s.fail()
	}

	var r float64
	if s.Op != NoOperation {
		prev, err := strconv.ParseFloat(s.Previous, 64)
		if err != nil {
			return s.fail()
		}
		r = prev * cur / 100
	} else {
		r = cur / 100
	}

	if !isFinite(r) {
		return s.fail()
	}

	s.Display = Format(resultString(r))
	return s
}

// withResult publishes a computed value: non-finite values become the error
// sentinel with a forced sad emotion, everything else is formatted and run
// through the magnitude rule.
func (s State) withResult(v float64) State {
	if !isFinite(v) {
		return s.fail()
	}

	s.Display = Format(resultString(v))
	s.Emotion = EmotionFor(v)
	return s
}

// fail sets the error sentinel and forces the sad emotion.
func (s State) fail() State {
	s.Display = Sentinel
	s.Emotion = Sad
	return s
}

// resultString renders v in plain decimal form. When that form would exceed
// the digit cap, the value is rounded to exponential notation with 8
// fractional digits and re-parsed; if the rounded value still has no plain
// form within the cap, the exponential form itself is shown.
func resultString(v float64) string {
	str := strconv.FormatFloat(v, 'f', -1, 64)
	if len(str) <= DigitCap {
		return str
	}

	exp := fmt.Sprintf("%.8e", v)
	rounded, err := strconv.ParseFloat(exp, 64)
	if err != nil {
		return exp
	}

	str = strconv.FormatFloat(rounded, 'f', -1, 64)
	if len(str) <= DigitCap {
		return str
	}

	return exp
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
