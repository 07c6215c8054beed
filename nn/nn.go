// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

// Module interface defines the common interface for all network modules.
type Module = nn.Module

// Parameter represents a named trainable scalar.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and value.
func NewParameter(name string, value *autodiff.Value) *Parameter {
	return nn.NewParameter(name, value)
}

// Neuron computes tanh(w·x + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin inputs initialized from rng.
func NewNeuron(nin int, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(nin, rng)
}

// Layer is a set of neurons reading the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(nin, nout int, rng *rand.Rand) *Layer {
	return nn.NewLayer(nin, nout, rng)
}

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 4, 1}, rand.New(rand.NewSource(1)))
func NewMLP(nin int, nouts []int, rng *rand.Rand) *MLP {
	return nn.NewMLP(nin, nouts, rng)
}

// MSELoss computes mean squared error.
type MSELoss = nn.MSELoss

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}

// Uniform draws a leaf value from U(low, high).
func Uniform(rng *rand.Rand, low, high float64) *autodiff.Value {
	return nn.Uniform(rng, low, high)
}

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// NumParameters returns the number of trainable scalars in m.
func NumParameters(m Module) int {
	return nn.NumParameters(m)
}
