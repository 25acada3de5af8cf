package calc

import "strconv"

// MemoryStore copies the current display value into the memory register.
// The error sentinel cannot be stored.
func (s State) MemoryStore() State {
	v, ok := s.displayValue()
	if !ok {
		return s
	}
	s.Memory = v
	s.HasMemory = true
	return s
}

// MemoryAdd adds the current display value into the memory register. An
// empty register behaves as zero, so M+ also initializes it.
func (s State) MemoryAdd() State {
	v, ok := s.displayValue()
	if !ok {
		return s
	}
	s.Memory += v
	s.HasMemory = true
	return s
}

// MemoryRecall replaces the display with the stored value. Recall behaves
// like entry: the emotion resets to neutral. With an empty register the
// call is a no-op.
func (s State) MemoryRecall() State {
	if !s.HasMemory {
		return s
	}
	s.Display = Format(resultString(s.Memory))
	s.Emotion = Neutral
	return s
}

// MemoryClear empties the register.
func (s State) MemoryClear() State {
	s.Memory = 0
	s.HasMemory = false
	return s
}

func (s State) displayValue() (float64, bool) {
	if s.Display == Sentinel {
		return 0, false
	}
	v, err := strconv.ParseFloat(Unformat(s.Display), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
