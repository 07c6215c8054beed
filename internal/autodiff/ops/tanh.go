package ops

import "math"

// TanhOp represents the hyperbolic tangent: tanh(x) = (exp(x) - exp(-x)) / (exp(x) + exp(-x)).
type TanhOp struct{}

// Forward returns tanh(inputs[0]).
func (TanhOp) Forward(inputs []float64) float64 {
	return math.Tanh(inputs[0])
}

// Backward computes the gradient for tanh.
//
// For tanh(x):
// d(tanh(x))/dx = 1 - tanh²(x)
//
// tanh is recomputed from the input value rather than read from the output
// node, since callers may overwrite the output's data.
func (TanhOp) Backward(outputGrad float64, inputs []float64) []float64 {
	t := math.Tanh(inputs[0])
	return []float64{outputGrad * (1 - t*t)}
}
