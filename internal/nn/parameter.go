package nn

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Parameter represents a trainable scalar in a network.
//
// It embeds the leaf *autodiff.Value, so Data, Grad, SetData and ZeroGrad
// are available directly.
//
// Example:
//
//	w := nn.NewParameter("w0", autodiff.NewValue(0.5))
//
//	// After a backward pass
//	w.SetData(w.Data() - lr*w.Grad())
//	w.ZeroGrad()
type Parameter struct {
	*autodiff.Value
	name string // Parameter name (e.g., "w0", "b")
}

// NewParameter creates a new trainable parameter backed by value.
func NewParameter(name string, value *autodiff.Value) *Parameter {
	return &Parameter{
		Value: value,
		name:  name,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}
