//go:build !fastmath

package synth

import "math"

// pow2 computes 2^x using standard library math.
func pow2(x float64) float64 {
	return math.Exp2(x)
}
