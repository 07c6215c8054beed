package ops

// SubOp represents scalar subtraction: output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = outputGrad
//   - d(a-b)/db = -1, so grad_b = -outputGrad
type SubOp struct{}

// Forward returns inputs[0] - inputs[1].
func (SubOp) Forward(inputs []float64) float64 {
	return inputs[0] - inputs[1]
}

// Backward computes input gradients for subtraction.
func (SubOp) Backward(outputGrad float64, _ []float64) []float64 {
	return []float64{outputGrad, -outputGrad}
}
