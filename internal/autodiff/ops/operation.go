// Package ops defines the scalar operations understood by the autodiff engine.
//
// Each operation implements the Operation interface, which provides:
//   - Forward: computes the output value from the input values
//   - Backward: computes the gradient contribution for each input given the
//     output gradient
//
// Supported operations:
//   - Add: a + b (d/da = 1, d/db = 1)
//   - Sub: a - b (d/da = 1, d/db = -1)
//   - Mul: a * b (d/da = b, d/db = a)
//   - Div: a / b (d/da = 1/b, d/db = -a/b²)
//   - Pow: a ^ b with b constant (d/da = b * a^(b-1))
//   - Tanh: tanh(a) (d/da = 1 - tanh²(a))
package ops

import "fmt"

// Kind identifies the operation that produced a value.
// None marks a leaf (an input or a parameter).
type Kind uint8

// Operation kinds.
const (
	None Kind = iota
	Add
	Sub
	Mul
	Div
	Pow
	Tanh
)

var kindNames = [...]string{
	None: "None",
	Add:  "Add",
	Sub:  "Sub",
	Mul:  "Mul",
	Div:  "Div",
	Pow:  "Pow",
	Tanh: "Tanh",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Arity returns the number of inputs an operation of this kind records.
func (k Kind) Arity() int {
	switch k {
	case None:
		return 0
	case Tanh:
		return 1
	default:
		return 2
	}
}

// Operation is the local rule of a differentiable scalar operation.
type Operation interface {
	// Forward computes the output value from the input values.
	Forward(inputs []float64) float64

	// Backward computes the gradient contributions for the inputs.
	//
	// outputGrad is dL/d(output). The returned slice holds dL/d(input_i)
	// contributions in input order and may be shorter than inputs when a
	// trailing input is a constant that receives no gradient (Pow exponent).
	//
	// Example for AddOp:
	//   inputs: [a, b]
	//   outputGrad: g
	//   returns: [g, g]
	Backward(outputGrad float64, inputs []float64) []float64
}

var registry = [...]Operation{
	Add:  AddOp{},
	Sub:  SubOp{},
	Mul:  MulOp{},
	Div:  DivOp{},
	Pow:  PowOp{},
	Tanh: TanhOp{},
}

// Lookup returns the operation for kind.
// Returns nil for None: leaves have nothing to propagate to.
func Lookup(k Kind) Operation {
	if int(k) >= len(registry) {
		panic(fmt.Sprintf("ops: unknown operation kind %d", uint8(k)))
	}
	return registry[k]
}
