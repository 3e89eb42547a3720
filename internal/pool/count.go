package pool

import (
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultCount is used when the requested count is missing, non-numeric or below 1
	DefaultCount = 50

	// MaxCount caps how many tracks one request may receive
	MaxCount = 100

	// LegacySampleSize is the fixed sample size of the chart route
	LegacySampleSize = 50
)

// ClampCount coerces a requested sample size into [1, MaxCount].
// Values below 1 mean "unspecified" and become DefaultCount.
func ClampCount(n int) int {
	switch {
	case n < 1:
		return DefaultCount
	case n > MaxCount:
		return MaxCount
	default:
		return n
	}
}

// ParseCount parses a raw query value and clamps it. Fractions are truncated;
// anything non-numeric yields DefaultCount.
func ParseCount(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultCount
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return ClampCount(n)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return DefaultCount
	}
	if f < 1 {
		return DefaultCount
	}
	if f > MaxCount {
		return MaxCount
	}
	return int(f)
}
