package utils

import (
	"math"
)

// ModInt is the non-negative remainder of i / n, so ModInt(-1, n) == n-1.
func ModInt(i, n int) int {
	r := i % n
	if r < 0 {
		r += n
	}
	return r
}

// WrapPeriodic maps x into [xmin, xmax).
func WrapPeriodic(x, xmin, xmax float64) float64 {
	L := xmax - xmin
	r := math.Mod(x-xmin, L)
	if r < 0 {
		r += L
	}
	if r >= L { // math.Mod(-tiny, L) + L can round up to L
		r = 0
	}
	return xmin + r
}

func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
