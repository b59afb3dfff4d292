//go:build linux

package util

import "math"

// Clamp01 restricts x to [0,1], treating NaN as 0. Used to keep a
// memory-limit utilization ratio sane before it is logged in dev mode.
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	if math.IsNaN(x) {
		return 0
	}
	return x
}
