// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides small feed-forward networks built from scalar
// autodiff values.
//
// # Overview
//
// This package contains:
//   - Neuron: tanh(w·x + b)
//   - Layer: neurons sharing the same inputs
//   - MLP: layers chained together
//   - MSELoss: mean squared error
//   - Utilities: Module interface, Parameter, ZeroGrad, Uniform
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/micrograd/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(42))
//	    model := nn.NewMLP(3, []int{4, 4, 1}, rng)
//
//	    out := model.Forward([]float64{2.0, 3.0, -1.0})
//	    out.Backward()
//	}
//
// # Initialization
//
// Every weight and bias is drawn from U(-1, 1) using the *rand.Rand passed
// to the constructor. Seeding it makes runs reproducible.
//
// # Parameter Management
//
// Gradients accumulate across backward passes. Reset them before each step:
//
//	nn.ZeroGrad(model)
//	loss.Backward()
//	for _, p := range model.Parameters() {
//	    p.SetData(p.Data() - lr*p.Grad())
//	}
package nn
