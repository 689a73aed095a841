package face

import (
	"fmt"
	"math"
)

// ClockIndicatorDegree returns the clock-face angle of an indicator, in
// degrees clockwise from 12 o'clock. The result is in [0, 360).
//
// value must be finite, non-negative and at most modulus; anything else
// is a caller bug and panics. value == modulus is one full turn and
// wraps to 0.
func ClockIndicatorDegree(value, modulus float64) float64 {
	if math.IsNaN(modulus) || math.IsInf(modulus, 0) || modulus <= 0 {
		panic(fmt.Sprintf("face: invalid indicator modulus %v", modulus))
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 || value > modulus {
		panic(fmt.Sprintf("face: indicator value %v out of range [0, %v]", value, modulus))
	}

	if value == modulus {
		// a full turn; value/modulus*360 would give 360
		value = 0
	}
	return value / modulus * 360.0
}

// NormalizedIndicatorDegree returns the screen angle of an indicator: the
// clock-face angle mirrored to counter-clockwise and rotated so that
// 12 o'clock lies at 90°. The result is in [0, 360).
//
//	0     -> 90
//	m/4   -> 0
//	m/2   -> 270
//	3m/4  -> 180
func NormalizedIndicatorDegree(value, modulus float64) float64 {
	inverted := 360.0 - ClockIndicatorDegree(value, modulus)

	const offset = 90.0

	return math.Mod(inverted+offset, 360.0)
}
