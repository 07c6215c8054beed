package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Neuron computes tanh(w·x + b) over a fixed number of inputs.
//
// Weights and bias are initialized from U(-1, 1).
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	n := nn.NewNeuron(3, rng)
//	out := n.Forward([]*autodiff.Value{x0, x1, x2})
type Neuron struct {
	weights []*Parameter // [nin]
	bias    *Parameter
}

// NewNeuron creates a neuron with nin inputs.
//
// Panics if nin < 1 or rng is nil.
func NewNeuron(nin int, rng *rand.Rand) *Neuron {
	if nin < 1 {
		panic(fmt.Sprintf("NewNeuron: expected at least 1 input, got %d", nin))
	}
	requireRNG(rng, "NewNeuron")

	weights := make([]*Parameter, nin)
	for i := range weights {
		weights[i] = NewParameter(fmt.Sprintf("w%d", i), Uniform(rng, -1, 1))
	}
	bias := NewParameter("b", Uniform(rng, -1, 1))

	return &Neuron{weights: weights, bias: bias}
}

// Forward computes tanh(Σ w_i·x_i + b).
//
// Panics if len(x) does not match the number of weights.
func (n *Neuron) Forward(x []*autodiff.Value) *autodiff.Value {
	if len(x) != len(n.weights) {
		panic(fmt.Sprintf("Neuron.Forward: expected %d inputs, got %d", len(n.weights), len(x)))
	}

	act := autodiff.Mul(n.weights[0].Value, x[0])
	for i := 1; i < len(x); i++ {
		act = autodiff.Add(act, autodiff.Mul(n.weights[i].Value, x[i]))
	}
	act = autodiff.Add(act, n.bias.Value)

	return autodiff.Tanh(act)
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// Weights returns the weight parameters.
func (n *Neuron) Weights() []*Parameter {
	return n.weights
}

// Bias returns the bias parameter.
func (n *Neuron) Bias() *Parameter {
	return n.bias
}

// NumInputs returns the number of inputs.
func (n *Neuron) NumInputs() int {
	return len(n.weights)
}

// StateDict returns a map of parameter names to values.
func (n *Neuron) StateDict() map[string]float64 {
	stateDict := make(map[string]float64, len(n.weights)+1)
	for _, p := range n.Parameters() {
		stateDict[p.Name()] = p.Data()
	}
	return stateDict
}

// LoadStateDict loads parameter values from a state dictionary.
func (n *Neuron) LoadStateDict(stateDict map[string]float64) error {
	for _, p := range n.Parameters() {
		v, ok := stateDict[p.Name()]
		if !ok {
			return fmt.Errorf("missing %s in state dict", p.Name())
		}
		p.SetData(v)
	}
	return nil
}
