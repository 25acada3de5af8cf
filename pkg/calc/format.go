package calc

import "strings"

// Format inserts a thousands separator every three digits in the integer
// portion of an unformatted value, counting from the right. The fractional
// portion, exponent notation, and the error sentinel pass through untouched.
// A leading minus sign is excluded from grouping so that 3n-digit negative
// magnitudes do not gain a separator between the sign and the first digit.
func Format(unformatted string) string {
	if unformatted == Sentinel || unformatted == "" {
		return unformatted
	}

	// Exponential results (e.g. "1.23456789e+20") are shown verbatim.
	if exponential(unformatted) {
		return unformatted
	}

	sign := ""
	rest := unformatted
	if strings.HasPrefix(rest, "-") {
		sign, rest = "-", rest[1:]
	}

	intPart, frac := rest, ""
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		intPart, frac = rest[:i], rest[i:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + frac
	}

	var sb strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		sb.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(intPart[i : i+3])
	}

	return sign + sb.String() + frac
}

// Unformat strips the grouping separators Format inserts. It is the exact
// left inverse of Format over everything Format can produce.
func Unformat(display string) string {
	return strings.ReplaceAll(display, ",", "")
}

// exponential reports whether an unformatted value is in exponent notation.
// Such values are always computed results, never typed input.
func exponential(unformatted string) bool {
	return strings.ContainsAny(unformatted, "eE")
}
