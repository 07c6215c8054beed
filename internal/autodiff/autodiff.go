// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// Architecture:
//   - Value: a node holding a float64, its gradient, the producing operation
//     and references to its inputs
//   - Constructors (Add, Sub, Mul, Div, Pow, Tanh): compute the forward value
//     eagerly and record the inputs
//   - BuildOrder: depth-first topological sort of everything reachable from
//     an output
//   - Backward: seeds the output gradient with 1 and applies each node's
//     local rule (package ops) in reverse topological order
//
// Usage:
//
//	x := autodiff.NewValue(2.0)
//	w := autodiff.NewValue(-3.0)
//	b := autodiff.NewValue(6.88)
//	o := autodiff.Tanh(autodiff.Add(autodiff.Mul(x, w), b))
//
//	o.Backward()
//	fmt.Println(w.Grad()) // do/dw
//
// Gradients accumulate: calling Backward twice without zeroing doubles them.
// The graph is not safe for concurrent use.
package autodiff

import "github.com/born-ml/micrograd/internal/autodiff/ops"

// apply computes the forward value of kind over inputs and records the node.
func apply(kind ops.Kind, inputs ...*Value) *Value {
	data := make([]float64, len(inputs))
	for i, in := range inputs {
		data[i] = in.data
	}
	return newResult(kind, ops.Lookup(kind).Forward(data), inputs...)
}

// Add returns a + b.
func Add(a, b *Value) *Value {
	return apply(ops.Add, a, b)
}

// Sub returns a - b.
func Sub(a, b *Value) *Value {
	return apply(ops.Sub, a, b)
}

// Mul returns a * b.
func Mul(a, b *Value) *Value {
	return apply(ops.Mul, a, b)
}

// Div returns a / b.
//
// Division by zero is not checked and yields ±Inf or NaN.
func Div(a, b *Value) *Value {
	return apply(ops.Div, a, b)
}

// Pow returns a raised to a constant exponent.
//
// The exponent is stored as a leaf in the second input slot and is treated
// as a constant: it never receives a gradient.
func Pow(a *Value, exponent float64) *Value {
	return apply(ops.Pow, a, NewValue(exponent))
}

// Tanh returns the hyperbolic tangent of a.
func Tanh(a *Value) *Value {
	return apply(ops.Tanh, a)
}

// Neg returns -a, built as a * -1.
func Neg(a *Value) *Value {
	return Mul(a, NewValue(-1))
}

// AddScalar returns a + s with s wrapped in a leaf.
func AddScalar(a *Value, s float64) *Value {
	return Add(a, NewValue(s))
}

// MulScalar returns a * s with s wrapped in a leaf.
func MulScalar(a *Value, s float64) *Value {
	return Mul(a, NewValue(s))
}

// Sum returns the sum of values, or a zero leaf for an empty slice.
func Sum(values ...*Value) *Value {
	if len(values) == 0 {
		return NewValue(0)
	}
	total := values[0]
	for _, v := range values[1:] {
		total = Add(total, v)
	}
	return total
}

// Add returns v + other.
func (v *Value) Add(other *Value) *Value { return Add(v, other) }

// Sub returns v - other.
func (v *Value) Sub(other *Value) *Value { return Sub(v, other) }

// Mul returns v * other.
func (v *Value) Mul(other *Value) *Value { return Mul(v, other) }

// Div returns v / other.
func (v *Value) Div(other *Value) *Value { return Div(v, other) }

// Pow returns v ^ exponent.
func (v *Value) Pow(exponent float64) *Value { return Pow(v, exponent) }

// Tanh returns tanh(v).
func (v *Value) Tanh() *Value { return Tanh(v) }

// Neg returns -v.
func (v *Value) Neg() *Value { return Neg(v) }
