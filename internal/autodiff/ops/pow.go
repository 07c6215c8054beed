package ops

import "math"

// PowOp represents raising to a constant power: output = a ^ b.
//
// The exponent b is recorded as the second input so every binary node has
// the same layout, but it is a constant: Backward returns a single gradient
// and the exponent never accumulates one.
//
//	d(a^b)/da = b * a^(b-1)
type PowOp struct{}

// Forward returns inputs[0] raised to inputs[1].
func (PowOp) Forward(inputs []float64) float64 {
	return math.Pow(inputs[0], inputs[1])
}

// Backward computes the gradient for the base only.
func (PowOp) Backward(outputGrad float64, inputs []float64) []float64 {
	a, b := inputs[0], inputs[1]
	return []float64{outputGrad * (b * math.Pow(a, b-1))}
}
