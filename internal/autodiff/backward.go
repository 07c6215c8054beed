package autodiff

import "github.com/born-ml/micrograd/internal/autodiff/ops"

// Backward computes the gradient of v with respect to every value it
// depends on.
//
// Algorithm:
//  1. Seed v's gradient with 1 (dv/dv)
//  2. Order the graph with BuildOrder
//  3. Walk the order in reverse, so every value has received the
//     contributions of all of its consumers before it propagates
//  4. For each value, apply its operation's local rule and accumulate the
//     results into its inputs' gradients
//
// Existing gradients are added to, never overwritten. Callers reset them
// between training steps.
func (v *Value) Backward() {
	v.grad = 1
	order := BuildOrder(v)

	for i := len(order) - 1; i >= 0; i-- {
		propagate(order[i])
	}
}

// Backward is the function form of (*Value).Backward.
func Backward(root *Value) {
	root.Backward()
}

// propagate applies the local rule of v's operation to its inputs.
func propagate(v *Value) {
	if v.op == ops.None {
		return
	}

	inputs := make([]float64, len(v.prev))
	for i, in := range v.prev {
		inputs[i] = in.data
	}

	grads := ops.Lookup(v.op).Backward(v.grad, inputs)
	for i, g := range grads {
		v.prev[i].AccumulateGrad(g)
	}
}
