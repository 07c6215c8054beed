// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/micrograd/nn"
//	    "github.com/born-ml/micrograd/optim"
//	)
//
//	func main() {
//	    model := nn.NewMLP(3, []int{4, 4, 1}, rand.New(rand.NewSource(1)))
//	    optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	    for step := range 100 {
//	        loss := computeLoss(model)
//
//	        optimizer.ZeroGrad()
//	        loss.Backward()
//	        optimizer.Step()
//	    }
//	}
//
// # Training Loop Pattern
//
//  1. Zero gradients (the engine never does this)
//  2. Forward pass: build the loss
//  3. Backward pass: loss.Backward()
//  4. Update parameters: optimizer.Step()
package optim
