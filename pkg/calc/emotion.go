package calc

// Emotion is the decorative indicator derived from the last entered or
// computed value.
type Emotion int

const (
	Neutral Emotion = iota
	Happy
	Sad
	Excited
)

func (e Emotion) String() string {
	switch e {
	case Happy:
		return "happy"
	case Sad:
		return "sad"
	case Excited:
		return "excited"
	default:
		return "neutral"
	}
}

// EmotionFor applies the magnitude rule to a freshly computed value.
// The inequalities are strict: exactly 1000 is not excited and exactly 100
// is not happy, both fall through to neutral.
func EmotionFor(v float64) Emotion {
	switch {
	case v > 1000:
		return Excited
	case v > 100 && v < 1000:
		return Happy
	case v < 0:
		return Sad
	default:
		return Neutral
	}
}
