package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/parallel"
)

// MLP is a multi-layer perceptron: layers chained so that each layer's
// outputs are the next layer's inputs.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	model := nn.NewMLP(3, []int{4, 4, 1}, rng)
//
//	out := model.Forward([]float64{2.0, 3.0, -1.0})
//	out.Backward()
//
// This is equivalent to:
//
//	h1 := layer0.Forward(x)
//	h2 := layer1.Forward(h1)
//	out := layer2.Forward(h2)[0]
type MLP struct {
	layers   []*Layer
	parallel parallel.Config
}

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
//
// Layer i has nouts[i] neurons and sizes [nin] + nouts[:i] inputs.
//
// Panics if nouts is empty, any size is < 1 or rng is nil.
func NewMLP(nin int, nouts []int, rng *rand.Rand) *MLP {
	if len(nouts) == 0 {
		panic("NewMLP: expected at least 1 layer")
	}
	requireRNG(rng, "NewMLP")

	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range layers {
		layers[i] = NewLayer(sizes[i], sizes[i+1], rng)
	}

	return &MLP{
		layers:   layers,
		parallel: parallel.DefaultConfig(),
	}
}

// Forward wraps x as leaves, runs every layer and returns the first output
// of the last layer.
func (m *MLP) Forward(x []float64) *autodiff.Value {
	return m.ForwardAll(x)[0]
}

// ForwardAll is Forward returning every output of the last layer.
func (m *MLP) ForwardAll(x []float64) []*autodiff.Value {
	xv := make([]*autodiff.Value, len(x))
	for i, f := range x {
		xv[i] = autodiff.NewValue(f)
	}
	return m.ForwardValues(xv)
}

// ForwardValues runs the network on existing values, so gradients can flow
// back into the inputs as well as the parameters.
func (m *MLP) ForwardValues(x []*autodiff.Value) []*autodiff.Value {
	for _, l := range m.layers {
		x = l.Forward(x)
	}
	return x
}

// Predict evaluates the first output for every sample and returns plain
// values.
//
// Samples are evaluated concurrently when the batch is large enough. Each
// sample builds its own graph and only reads parameter values, so no
// gradient state is shared between goroutines. Parameters must not be
// updated while Predict runs.
func (m *MLP) Predict(inputs [][]float64) []float64 {
	preds := make([]float64, len(inputs))
	parallel.For(len(inputs), func(i int) {
		preds[i] = m.Forward(inputs[i]).Data()
	}, m.parallel)
	return preds
}

// SetParallelConfig overrides the concurrency settings used by Predict.
func (m *MLP) SetParallelConfig(cfg parallel.Config) {
	m.parallel = cfg
}

// Parameters returns all trainable parameters, layer by layer.
func (m *MLP) Parameters() []*Parameter {
	var params []*Parameter
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// Layers returns the layers of the network.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// StateDict returns a map of parameter names to values.
//
// Names are prefixed with the layer index (e.g., "0.2.w1", "1.0.b").
func (m *MLP) StateDict() map[string]float64 {
	stateDict := make(map[string]float64)
	for i, l := range m.layers {
		for name, v := range l.StateDict() {
			stateDict[fmt.Sprintf("%d.%s", i, name)] = v
		}
	}
	return stateDict
}

// LoadStateDict loads parameter values from a state dictionary.
func (m *MLP) LoadStateDict(stateDict map[string]float64) error {
	for i, l := range m.layers {
		if err := l.LoadStateDict(withPrefix(stateDict, fmt.Sprintf("%d.", i))); err != nil {
			return fmt.Errorf("failed to load layer %d: %w", i, err)
		}
	}
	return nil
}
