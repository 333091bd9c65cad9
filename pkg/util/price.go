package util

import (
	"strconv"
	"strings"
)

// ParsePrice converts user-entered price text into a non-negative float.
// Thousands separators and surrounding whitespace are stripped; anything
// unparsable or negative collapses to zero, matching how the submission
// forms have always treated bad input.
func ParsePrice(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// FormatPrice renders a price with thousands separators for message
// templates, e.g. 2500000 -> "2,500,000".
func FormatPrice(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
