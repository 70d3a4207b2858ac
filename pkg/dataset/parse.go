package dataset

import (
	"strconv"
	"strings"
)

// ParseNumber converts a table cell such as "1,463,865,525", "0.89 %" or "−0.35" into a float.
// The unicode minus sign is treated as a sign, percent signs and thousands separators are dropped.
// Like a lenient float parser it keeps the longest numeric prefix; anything unparseable becomes 0.
func ParseNumber(cell string) float64 {
	cell = strings.ReplaceAll(cell, "\u2212", "-")

	var b strings.Builder
	b.Grow(len(cell))
	for _, r := range cell {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	lit := numericPrefix(b.String())
	if lit == "" {
		return 0
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0
	}
	return v
}

// numericPrefix returns the leading [-]digits[.digits] part of s, or "" when no digit is present.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
			frac++
		}
		if frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return ""
	}
	return s[:i]
}
