// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// Every arithmetic constructor returns a new *Value that records the
// operation and its inputs. Backward on an output walks the recorded graph
// in reverse topological order and accumulates the gradient of that output
// into every value it depends on.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    x1 := autodiff.NewValue(2.0)
//	    w1 := autodiff.NewValue(-3.0)
//	    b := autodiff.NewValue(6.8813735870195432)
//
//	    o := autodiff.Tanh(autodiff.Add(autodiff.Mul(x1, w1), b))
//	    o.Backward()
//
//	    fmt.Println(w1.Grad()) // do/dw1
//	}
//
// Gradients are accumulated, never reset, by Backward. Reset them with
// SetGrad(0) or ZeroGrad before the next pass. Graphs are not safe for
// concurrent use.
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// Value is a node of the computation graph.
type Value = autodiff.Value

// Kind identifies the operation that produced a Value.
type Kind = ops.Kind

// Operation kinds.
const (
	OpNone = ops.None
	OpAdd  = ops.Add
	OpSub  = ops.Sub
	OpMul  = ops.Mul
	OpDiv  = ops.Div
	OpPow  = ops.Pow
	OpTanh = ops.Tanh
)

// NewValue creates a leaf value.
func NewValue(data float64) *Value {
	return autodiff.NewValue(data)
}

// Add returns a + b.
func Add(a, b *Value) *Value {
	return autodiff.Add(a, b)
}

// Sub returns a - b.
func Sub(a, b *Value) *Value {
	return autodiff.Sub(a, b)
}

// Mul returns a * b.
func Mul(a, b *Value) *Value {
	return autodiff.Mul(a, b)
}

// Div returns a / b. Division by zero follows IEEE 754.
func Div(a, b *Value) *Value {
	return autodiff.Div(a, b)
}

// Pow returns a raised to a constant exponent.
func Pow(a *Value, exponent float64) *Value {
	return autodiff.Pow(a, exponent)
}

// Tanh returns tanh(a).
func Tanh(a *Value) *Value {
	return autodiff.Tanh(a)
}

// Neg returns -a.
func Neg(a *Value) *Value {
	return autodiff.Neg(a)
}

// AddScalar returns a + s.
func AddScalar(a *Value, s float64) *Value {
	return autodiff.AddScalar(a, s)
}

// MulScalar returns a * s.
func MulScalar(a *Value, s float64) *Value {
	return autodiff.MulScalar(a, s)
}

// Sum returns the sum of values.
func Sum(values ...*Value) *Value {
	return autodiff.Sum(values...)
}

// BuildOrder returns every value reachable from root, each after its inputs.
func BuildOrder(root *Value) []*Value {
	return autodiff.BuildOrder(root)
}

// Backward computes gradients of root with respect to every value it
// depends on.
//
// Example:
//
//	a := autodiff.NewValue(3)
//	s := autodiff.Add(autodiff.Mul(a, a), a)
//	autodiff.Backward(s)
//	a.Grad() // 2*3 + 1 = 7
func Backward(root *Value) {
	autodiff.Backward(root)
}
