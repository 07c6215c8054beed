package ops

// DivOp represents scalar division: output = a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = outputGrad * (1/b)
//   - d(a/b)/db = -a/b², so grad_b = outputGrad * (-a/b²)
//
// b == 0 is not guarded; the result follows IEEE 754 (±Inf or NaN).
type DivOp struct{}

// Forward returns inputs[0] / inputs[1].
func (DivOp) Forward(inputs []float64) float64 {
	return inputs[0] / inputs[1]
}

// Backward computes input gradients for division.
func (DivOp) Backward(outputGrad float64, inputs []float64) []float64 {
	a, b := inputs[0], inputs[1]
	gradA := outputGrad * (1 / b)
	gradB := outputGrad * (-a / (b * b))
	return []float64{gradA, gradB}
}
