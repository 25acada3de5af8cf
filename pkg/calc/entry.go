package calc

import "strings"

// EnterDigit appends d ('0'..'9') to the unformatted display. The sentinel
// default "0" is replaced rather than extended, and input past the digit
// cap is silently dropped. Entry resets the emotion to neutral: a number
// being typed is not itself a result.
func (s State) EnterDigit(d byte) State {
	if d < '0' || d > '9' || s.Display == Sentinel {
		return s
	}

	raw := Unformat(s.Display)
	// An exponential display is a finished result; typing into it would
	// extend the exponent and silently rewrite the magnitude, so entry
	// starts over like it does on the default "0".
	if exponential(raw) {
		raw = "0"
	}
	if len(raw) >= DigitCap {
		return s
	}

	if raw == "0" {
		raw = string(d)
	} else {
		raw += string(d)
	}

	s.Display = Format(raw)
	s.Emotion = Neutral
	return s
}

// EnterDecimal appends a decimal point unless the display already contains
// one. Like digit entry it resets the emotion to neutral.
func (s State) EnterDecimal() State {
	if s.Display == Sentinel {
		return s
	}

	raw := Unformat(s.Display)
	if exponential(raw) {
		raw = "0"
	}
	if strings.ContainsRune(raw, '.') || len(raw) >= DigitCap {
		return s
	}

	s.Display = Format(raw + ".")
	s.Emotion = Neutral
	return s
}

// Backspace removes the last unformatted character. An emptied display, and
// the error sentinel, reset to "0".
func (s State) Backspace() State {
	if s.Display == Sentinel {
		s.Display = "0"
		return s
	}

	raw := Unformat(s.Display)
	raw = raw[:len(raw)-1]
	if raw == "" || raw == "-" {
		raw = "0"
	}

	s.Display = Format(raw)
	return s
}
