// Package nn implements small feed-forward networks on top of the scalar
// autodiff engine.
//
// This package provides:
//   - Module interface: base interface for all network components
//   - Parameter: a named trainable leaf value
//   - Neuron: tanh(w·x + b)
//   - Layer: a set of neurons sharing the same inputs
//   - MLP: layers chained together
//   - MSELoss: mean squared error
//
// Parameter initialization draws from an injected *rand.Rand so runs are
// reproducible.
package nn

// Module is the base interface for all network components.
//
// Every module must implement:
//   - Parameters: return all trainable parameters
//   - StateDict / LoadStateDict: snapshot and restore parameter values
type Module interface {
	// Parameters returns all trainable parameters of this module,
	// including those of nested modules.
	Parameters() []*Parameter

	// StateDict returns a map of parameter names to their current values.
	StateDict() map[string]float64

	// LoadStateDict overwrites parameter values from a state dictionary.
	// Every parameter of the module must be present.
	LoadStateDict(stateDict map[string]float64) error
}

// ZeroGrad resets the gradient of every parameter of m.
//
// The engine accumulates gradients across backward passes, so training loops
// call this (or Optimizer.ZeroGrad) before each step.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// NumParameters returns the number of trainable scalars in m.
func NumParameters(m Module) int {
	return len(m.Parameters())
}
