package ops

// AddOp represents scalar addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
type AddOp struct{}

// Forward returns inputs[0] + inputs[1].
func (AddOp) Forward(inputs []float64) float64 {
	return inputs[0] + inputs[1]
}

// Backward computes input gradients for addition.
// Since d(a+b)/da = d(a+b)/db = 1, the gradient flows equally to both inputs.
func (AddOp) Backward(outputGrad float64, _ []float64) []float64 {
	return []float64{outputGrad, outputGrad}
}
