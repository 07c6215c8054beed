package optim

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/nn"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
type SGD struct {
	params     []*nn.Parameter
	lr         float64
	momentum   float64
	velocities []float64 // Parallel to params, allocated on first momentum step
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:   params,
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Step performs a single optimization step.
func (s *SGD) Step() {
	if s.momentum == 0 {
		for _, p := range s.params {
			p.SetData(p.Data() - s.lr*p.Grad())
		}
		return
	}

	if s.velocities == nil {
		s.velocities = make([]float64, len(s.params))
	}
	for i, p := range s.params {
		s.velocities[i] = s.momentum*s.velocities[i] + p.Grad()
		p.SetData(p.Data() - s.lr*s.velocities[i])
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrad(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// StateDict returns the optimizer state.
//
// For SGD with momentum, this exports the velocity of each parameter under
// "velocity.{param_index}". Without momentum, or before the first step,
// returns an empty map.
func (s *SGD) StateDict() map[string]float64 {
	stateDict := make(map[string]float64)
	for i, v := range s.velocities {
		stateDict[fmt.Sprintf("velocity.%d", i)] = v
	}
	return stateDict
}

// LoadStateDict restores velocities saved by StateDict.
//
// Missing entries start from zero. Without momentum the state is ignored.
func (s *SGD) LoadStateDict(stateDict map[string]float64) error {
	if s.momentum == 0 {
		return nil
	}

	velocities := make([]float64, len(s.params))
	for key := range stateDict {
		var i int
		if _, err := fmt.Sscanf(key, "velocity.%d", &i); err != nil {
			return fmt.Errorf("unexpected key %q in SGD state", key)
		}
		if i < 0 || i >= len(s.params) {
			return fmt.Errorf("velocity index %d out of range for %d parameters", i, len(s.params))
		}
		velocities[i] = stateDict[key]
	}
	s.velocities = velocities

	return nil
}
