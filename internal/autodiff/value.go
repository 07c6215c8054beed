package autodiff

import (
	"strconv"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Value is a node of the computation graph: one scalar, its accumulated
// gradient and the operation and inputs that produced it.
//
// Values are shared by pointer. A value used by several downstream
// operations is referenced by all of them, and every consumer accumulates
// into the same gradient during Backward.
//
// Example:
//
//	a := autodiff.NewValue(2.0)
//	b := a.Mul(a).Add(a) // a² + a
//	b.Backward()
//	fmt.Println(a.Grad()) // 2a + 1 = 5
type Value struct {
	data float64  // Forward value, computed eagerly at construction
	grad float64  // dOutput/dValue, accumulated during Backward
	op   ops.Kind // Operation that produced this value (ops.None for leaves)
	prev []*Value // Inputs in the order the operation's backward rule expects
}

// NewValue creates a leaf value (an input or a trainable parameter).
func NewValue(data float64) *Value {
	return &Value{data: data, op: ops.None}
}

// newResult creates the output node of an operation.
func newResult(kind ops.Kind, data float64, prev ...*Value) *Value {
	return &Value{
		data: data,
		op:   kind,
		prev: prev,
	}
}

// Data returns the forward value.
func (v *Value) Data() float64 {
	return v.data
}

// SetData overwrites the forward value.
//
// Downstream values are not recomputed; this is meant for parameter updates
// between training steps.
func (v *Value) SetData(data float64) {
	v.data = data
}

// Grad returns the accumulated gradient.
func (v *Value) Grad() float64 {
	return v.grad
}

// SetGrad sets the gradient to an exact value.
func (v *Value) SetGrad(grad float64) {
	v.grad = grad
}

// AccumulateGrad adds delta to the gradient.
func (v *Value) AccumulateGrad(delta float64) {
	v.grad += delta
}

// ZeroGrad resets the gradient to 0.
//
// The engine never does this itself; training loops call it (usually through
// an optimizer) before each backward pass.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Op returns the operation that produced v.
func (v *Value) Op() ops.Kind {
	return v.op
}

// Prev returns the inputs of the operation that produced v.
// The returned slice is a copy; leaves return nil.
func (v *Value) Prev() []*Value {
	if len(v.prev) == 0 {
		return nil
	}
	prev := make([]*Value, len(v.prev))
	copy(prev, v.prev)
	return prev
}

// IsLeaf reports whether v was created with NewValue.
func (v *Value) IsLeaf() bool {
	return v.op == ops.None
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	return "Value(data=" + strconv.FormatFloat(v.data, 'g', -1, 64) + ")"
}
