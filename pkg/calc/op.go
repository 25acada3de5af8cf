package calc

// OpKind discriminates the input events the engine accepts. Pointer and
// keyboard adapters both funnel into this one operation set.
type OpKind int

const (
	KindNone OpKind = iota
	KindDigit
	KindDecimal
	KindBackspace
	KindClear
	KindOperation
	KindCalculate
	KindPercent
	KindUnary
	KindToggleMode
	KindToggleAngleUnit
	KindMemoryStore
	KindMemoryRecall
	KindMemoryAdd
	KindMemoryClear
)

// Op is one input event. Exactly one of Digit, Binop, or Fn is meaningful,
// depending on Kind.
type Op struct {
	Kind  OpKind
	Digit byte
	Binop Operation
	Fn    Unary
}

// DigitOp builds a digit-entry event for d ('0'..'9').
func DigitOp(d byte) Op { return Op{Kind: KindDigit, Digit: d} }

// BinaryOp builds an operator-selection event.
func BinaryOp(op Operation) Op { return Op{Kind: KindOperation, Binop: op} }

// UnaryOp builds a scientific-function event.
func UnaryOp(fn Unary) Op { return Op{Kind: KindUnary, Fn: fn} }

// Apply dispatches one input event against a state record and returns the
// replacement record. Unknown events leave the state unchanged.
func Apply(s State, op Op) State {
	switch op.Kind {
	case KindDigit:
		return s.EnterDigit(op.Digit)
	case KindDecimal:
		return s.EnterDecimal()
	case KindBackspace:
		return s.Backspace()
	case KindClear:
		return s.Clear()
	case KindOperation:
		return s.SelectOperation(op.Binop)
	case KindCalculate:
		return s.Calculate()
	case KindPercent:
		return s.Percent()
	case KindUnary:
		return s.ApplyUnary(op.Fn)
	case KindToggleMode:
		return s.ToggleMode()
	case KindToggleAngleUnit:
		return s.ToggleAngleUnit()
	case KindMemoryStore:
		return s.MemoryStore()
	case KindMemoryRecall:
		return s.MemoryRecall()
	case KindMemoryAdd:
		return s.MemoryAdd()
	case KindMemoryClear:
		return s.MemoryClear()
	default:
		return s
	}
}
