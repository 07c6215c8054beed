package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
//
// Example:
//
//	mse := nn.NewMSELoss()
//	preds := make([]*autodiff.Value, len(xs))
//	for i, x := range xs {
//	    preds[i] = model.Forward(x)
//	}
//	loss := mse.Forward(preds, ys)
//	loss.Backward()
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward builds the loss node.
//
// Panics if the lengths differ or are zero.
func (m *MSELoss) Forward(predictions []*autodiff.Value, targets []float64) *autodiff.Value {
	if len(predictions) != len(targets) {
		panic(fmt.Sprintf("MSELoss.Forward: %d predictions for %d targets", len(predictions), len(targets)))
	}
	if len(predictions) == 0 {
		panic("MSELoss.Forward: empty batch")
	}

	terms := make([]*autodiff.Value, len(predictions))
	for i, pred := range predictions {
		terms[i] = autodiff.Pow(autodiff.Sub(pred, autodiff.NewValue(targets[i])), 2)
	}

	return autodiff.Div(autodiff.Sum(terms...), autodiff.NewValue(float64(len(terms))))
}

// Parameters returns an empty slice (loss functions have no trainable parameters).
func (m *MSELoss) Parameters() []*Parameter {
	return []*Parameter{}
}
