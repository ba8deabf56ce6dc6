// Package engine holds the progressive attribute scaling engine: creature stat
// normalization (engine/stats) and card limit break resolution
// (engine/limitbreak). Everything under it is pure and performs no I/O.
package engine

import "math"

// RoundHalfUp rounds to the nearest integer with ties going toward +Inf,
// so 2.5 -> 3 and -2.5 -> -2.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Floor truncates toward -Inf
func Floor(v float64) int {
	return int(math.Floor(v))
}

// ClampInt bounds v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
