package calc

// Engine owns the current state record. Each Apply replaces the record
// atomically from the caller's perspective: read old, compute new, publish
// new. The engine is single-threaded by design; the hosting adapter
// serializes input events before they reach it.
type Engine struct {
	state State
}

// NewEngine constructs an engine with the default initial state.
func NewEngine() *Engine {
	return &Engine{state: NewState()}
}

// NewEngineWith constructs an engine starting from a prepared state, e.g.
// with mode or angle unit taken from configuration.
func NewEngineWith(s State) *Engine {
	return &Engine{state: s}
}

// State returns the current state record.
func (e *Engine) State() State {
	return e.state
}

// Apply runs one input event and returns the new state record.
func (e *Engine) Apply(op Op) State {
	e.state = Apply(e.state, op)
	return e.state
}
