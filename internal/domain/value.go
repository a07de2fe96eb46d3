package domain

import (
	"math"
	"strconv"
	"strings"
)

// ParseValue parses a deal value from user input. Both '.' and ',' are
// accepted as decimal separator (comma normalized to dot). Blank or
// non-numeric input yields nil rather than an error.
func ParseValue(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	raw = strings.ReplaceAll(raw, ",", ".")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}
