package optim_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func param(name string, data, grad float64) *nn.Parameter {
	p := nn.NewParameter(name, autodiff.NewValue(data))
	p.SetGrad(grad)
	return p
}

// TestSGD_SimpleUpdate tests SGD without momentum.
func TestSGD_SimpleUpdate(t *testing.T) {
	x := param("x", 2.0, 1.0)

	optimizer := optim.NewSGD([]*nn.Parameter{x}, optim.SGDConfig{LR: 0.1})
	optimizer.Step()

	// x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0
	assert.InDelta(t, 1.9, x.Data(), 1e-12)
	assert.Equal(t, 1.0, x.Grad(), "Step must not reset gradients")
}

// TestSGD_WithMomentum tests SGD with momentum.
func TestSGD_WithMomentum(t *testing.T) {
	x := param("x", 1.0, 1.0)

	optimizer := optim.NewSGD([]*nn.Parameter{x}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	// Step 1: v = 1, x = 1 - 0.1
	optimizer.Step()
	assert.InDelta(t, 0.9, x.Data(), 1e-12)

	// Step 2: v = 0.9 + 1 = 1.9, x = 0.9 - 0.19
	optimizer.Step()
	assert.InDelta(t, 0.71, x.Data(), 1e-12)

	state := optimizer.StateDict()
	assert.InDelta(t, 1.9, state["velocity.0"], 1e-12)
}

// TestSGD_Defaults tests the default learning rate and SetLR.
func TestSGD_Defaults(t *testing.T) {
	optimizer := optim.NewSGD(nil, optim.SGDConfig{})
	assert.Equal(t, 0.01, optimizer.GetLR())

	optimizer.SetLR(0.5)
	assert.Equal(t, 0.5, optimizer.GetLR())
	assert.Empty(t, optimizer.StateDict())
}

// TestSGD_StateDict tests velocity restore.
func TestSGD_StateDict(t *testing.T) {
	a := param("a", 1.0, 1.0)
	b := param("b", 1.0, 1.0)
	src := optim.NewSGD([]*nn.Parameter{a}, optim.SGDConfig{LR: 0.1, Momentum: 0.5})
	src.Step()
	src.Step()

	dst := optim.NewSGD([]*nn.Parameter{b}, optim.SGDConfig{LR: 0.1, Momentum: 0.5})
	require.NoError(t, dst.LoadStateDict(src.StateDict()))

	src.Step()
	dst.Step()
	assert.InDelta(t, src.StateDict()["velocity.0"], dst.StateDict()["velocity.0"], 1e-12)

	assert.Error(t, dst.LoadStateDict(map[string]float64{"velocity.5": 1}))
	assert.Error(t, dst.LoadStateDict(map[string]float64{"momentum": 1}))
}

// TestAdam_FirstStep tests that the first bias-corrected step moves by lr.
func TestAdam_FirstStep(t *testing.T) {
	x := param("x", 1.0, 0.5)
	y := param("y", 1.0, -2.0)

	optimizer := optim.NewAdam([]*nn.Parameter{x, y}, optim.AdamConfig{LR: 0.1})
	optimizer.Step()

	// m_hat = g and v_hat = g², so the update is lr * sign(g) up to eps.
	assert.InDelta(t, 0.9, x.Data(), 1e-6)
	assert.InDelta(t, 1.1, y.Data(), 1e-6)
	assert.Equal(t, 1, optimizer.GetTimestep())
}

// TestAdam_Defaults tests default hyperparameters.
func TestAdam_Defaults(t *testing.T) {
	optimizer := optim.NewAdam(nil, optim.AdamConfig{})
	assert.Equal(t, 0.001, optimizer.GetLR())

	optimizer.SetLR(0.02)
	assert.Equal(t, 0.02, optimizer.GetLR())
}

// TestAdam_StateDict tests moment restore.
func TestAdam_StateDict(t *testing.T) {
	a := param("a", 1.0, 0.3)
	src := optim.NewAdam([]*nn.Parameter{a}, optim.AdamConfig{LR: 0.1})
	src.Step()
	src.Step()

	b := param("b", a.Data(), 0.3)
	dst := optim.NewAdam([]*nn.Parameter{b}, optim.AdamConfig{LR: 0.1})
	require.NoError(t, dst.LoadStateDict(src.StateDict()))
	assert.Equal(t, 2, dst.GetTimestep())

	src.Step()
	dst.Step()
	assert.InDelta(t, a.Data(), b.Data(), 1e-12)

	assert.Error(t, dst.LoadStateDict(map[string]float64{}))
	assert.Error(t, dst.LoadStateDict(map[string]float64{"t": 1}))
}

// TestZeroGrad tests that optimizers clear gradients.
func TestZeroGrad(t *testing.T) {
	params := []*nn.Parameter{param("a", 1, 3), param("b", 2, -4)}

	for _, optimizer := range []optim.Optimizer{
		optim.NewSGD(params, optim.SGDConfig{}),
		optim.NewAdam(params, optim.AdamConfig{}),
	} {
		params[0].SetGrad(3)
		params[1].SetGrad(-4)

		optimizer.ZeroGrad()

		for _, p := range params {
			assert.Equal(t, 0.0, p.Grad(), p.Name())
		}
	}
}

// TestOptimizers_MinimizeQuadratic tests convergence on f(x) = (x - 3)².
func TestOptimizers_MinimizeQuadratic(t *testing.T) {
	tests := []struct {
		name   string
		newOpt func(params []*nn.Parameter) optim.Optimizer
	}{
		{"sgd", func(p []*nn.Parameter) optim.Optimizer {
			return optim.NewSGD(p, optim.SGDConfig{LR: 0.1})
		}},
		{"sgd momentum", func(p []*nn.Parameter) optim.Optimizer {
			return optim.NewSGD(p, optim.SGDConfig{LR: 0.05, Momentum: 0.5})
		}},
		{"adam", func(p []*nn.Parameter) optim.Optimizer {
			return optim.NewAdam(p, optim.AdamConfig{LR: 0.1})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := param("x", 0, 0)
			optimizer := tt.newOpt([]*nn.Parameter{x})

			for step := 0; step < 500; step++ {
				loss := autodiff.AddScalar(x.Value, -3).Pow(2)
				optimizer.ZeroGrad()
				loss.Backward()
				optimizer.Step()
			}

			assert.InDelta(t, 3.0, x.Data(), 1e-2)
		})
	}
}

// TestTrainMLP tests that SGD fits the classic four-sample dataset.
func TestTrainMLP(t *testing.T) {
	xs := [][]float64{
		{2.0, 3.0, -1.0},
		{3.0, -1.0, 0.5},
		{0.5, 1.0, 1.0},
		{1.0, 1.0, -1.0},
	}
	ys := []float64{1.0, -1.0, -1.0, 1.0}

	model := nn.NewMLP(3, []int{4, 4, 1}, rand.New(rand.NewSource(1337)))
	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
	mse := nn.NewMSELoss()

	var first, last float64
	for step := 0; step < 200; step++ {
		preds := make([]*autodiff.Value, len(xs))
		for i, x := range xs {
			preds[i] = model.Forward(x)
		}
		loss := mse.Forward(preds, ys)
		if step == 0 {
			first = loss.Data()
		}
		last = loss.Data()

		optimizer.ZeroGrad()
		loss.Backward()
		optimizer.Step()
	}

	assert.Less(t, last, first)
	assert.False(t, math.IsNaN(last))
}
