// Package calc implements the calculator engine: an immutable state record
// and the operations that transform it. Every operation takes a State by
// value and returns the replacement record, so the engine never exposes a
// partially mutated state. Rendering and key handling live in the adapter
// (cmd/moodcalc); this package is pure.
package calc

// Sentinel is the display value shown when a computation produced a
// non-finite result. It is the only non-numeric display value.
const Sentinel = "Error"

// DigitCap is the maximum length of the unformatted display string.
// Entry beyond the cap is silently dropped.
const DigitCap = 16

// Operation is a pending binary operator.
type Operation int

const (
	NoOperation Operation = iota
	Add
	Subtract
	Multiply
	Divide
)

// String returns the conventional symbol for the operator.
func (o Operation) String() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return ""
	}
}

// Mode selects which function set is available.
type Mode int

const (
	Basic Mode = iota
	Scientific
)

func (m Mode) String() string {
	if m == Scientific {
		return "scientific"
	}
	return "basic"
}

// AngleUnit controls how trigonometric functions interpret their argument.
type AngleUnit int

const (
	Degrees AngleUnit = iota
	Radians
)

func (u AngleUnit) String() string {
	if u == Radians {
		return "rad"
	}
	return "deg"
}

// State is the calculator state record. The zero value is not meaningful;
// use NewState. Operations return a new State rather than mutating.
type State struct {
	// Display is the currently shown operand, formatted with thousands
	// separators, or Sentinel after an arithmetic error.
	Display string

	// Previous holds the unformatted left operand captured when an
	// operator was selected. Empty iff Op is NoOperation.
	Previous string

	// Op is the pending binary operator, if any.
	Op Operation

	// Emotion is derived from the last entered or computed value. It is
	// never set independently of an operation.
	Emotion Emotion

	Mode      Mode
	AngleUnit AngleUnit

	// Memory is the scratch register driven by the memory operations.
	// HasMemory distinguishes an empty register from a stored zero.
	Memory    float64
	HasMemory bool
}

// NewState returns the initial state: display "0", no pending operation,
// neutral emotion, basic mode, degrees.
func NewState() State {
	return State{Display: "0"}
}

// Clear resets the display, pending operation, and emotion to their
// defaults. Mode, angle unit, and the memory register survive.
func (s State) Clear() State {
	s.Display = "0"
	s.Previous = ""
	s.Op = NoOperation
	s.Emotion = Neutral
	return s
}

// ToggleMode flips between basic and scientific. Nothing else changes.
func (s State) ToggleMode() State {
	if s.Mode == Basic {
		s.Mode = Scientific
	} else {
		s.Mode = Basic
	}
	return s
}

// ToggleAngleUnit flips between degrees and radians. The displayed value is
// untouched; only future trig evaluations are affected.
func (s State) ToggleAngleUnit() State {
	if s.AngleUnit == Degrees {
		s.AngleUnit = Radians
	} else {
		s.AngleUnit = Degrees
	}
	return s
}
