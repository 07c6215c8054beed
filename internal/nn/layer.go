package nn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Layer is a set of neurons that all read the same inputs.
//
// Example:
//
//	layer := nn.NewLayer(3, 4, rng)
//	outs := layer.Forward(x) // 4 values
type Layer struct {
	nin     int
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons with nin inputs each.
//
// Panics if nin < 1, nout < 1 or rng is nil.
func NewLayer(nin, nout int, rng *rand.Rand) *Layer {
	if nout < 1 {
		panic(fmt.Sprintf("NewLayer: expected at least 1 neuron, got %d", nout))
	}
	requireRNG(rng, "NewLayer")

	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, rng)
	}
	return &Layer{nin: nin, neurons: neurons}
}

// Forward returns one output per neuron.
func (l *Layer) Forward(x []*autodiff.Value) []*autodiff.Value {
	if len(x) != l.nin {
		panic(fmt.Sprintf("Layer.Forward: expected %d inputs, got %d", l.nin, len(x)))
	}

	outs := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		outs[i] = n.Forward(x)
	}
	return outs
}

// Parameters returns the parameters of all neurons, neuron by neuron.
func (l *Layer) Parameters() []*Parameter {
	var params []*Parameter
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// Neurons returns the neurons of the layer.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// NumInputs returns the number of inputs per neuron.
func (l *Layer) NumInputs() int {
	return l.nin
}

// NumOutputs returns the number of neurons.
func (l *Layer) NumOutputs() int {
	return len(l.neurons)
}

// StateDict returns a map of parameter names to values.
//
// Names are prefixed with the neuron index (e.g., "0.w1", "3.b").
func (l *Layer) StateDict() map[string]float64 {
	stateDict := make(map[string]float64)
	for i, n := range l.neurons {
		for name, v := range n.StateDict() {
			stateDict[fmt.Sprintf("%d.%s", i, name)] = v
		}
	}
	return stateDict
}

// LoadStateDict loads parameter values from a state dictionary.
func (l *Layer) LoadStateDict(stateDict map[string]float64) error {
	for i, n := range l.neurons {
		if err := n.LoadStateDict(withPrefix(stateDict, fmt.Sprintf("%d.", i))); err != nil {
			return fmt.Errorf("failed to load neuron %d: %w", i, err)
		}
	}
	return nil
}

// withPrefix returns the entries of stateDict under prefix, with the prefix
// removed.
func withPrefix(stateDict map[string]float64, prefix string) map[string]float64 {
	sub := make(map[string]float64)
	for key, v := range stateDict {
		if name, ok := strings.CutPrefix(key, prefix); ok {
			sub[name] = v
		}
	}
	return sub
}
