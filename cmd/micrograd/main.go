// Package main provides the micrograd demo CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/optim"
)

const version = "v0.1.0-dev"

var errUnknownCommand = errors.New("unknown command")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		usage(out)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(out, "micrograd %s\n", version)
		return nil
	case "demo":
		return demo(out)
	case "train":
		return train(args[1:], out)
	default:
		usage(out)
		return fmt.Errorf("%w: %q", errUnknownCommand, args[0])
	}
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "micrograd - scalar reverse-mode autodiff")
	fmt.Fprintf(out, "Version: %s\n\n", version)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  version    Show version")
	fmt.Fprintln(out, "  demo       Backpropagate through a single tanh neuron")
	fmt.Fprintln(out, "  train      Fit an MLP on a four-sample dataset")
}

// demo runs the classic single-neuron example and prints every gradient.
func demo(out io.Writer) error {
	x1 := autodiff.NewValue(2.0)
	x2 := autodiff.NewValue(0.0)
	w1 := autodiff.NewValue(-3.0)
	w2 := autodiff.NewValue(1.0)
	b := autodiff.NewValue(6.8813735870195432)

	n := x1.Mul(w1).Add(x2.Mul(w2)).Add(b)
	o := n.Tanh()
	o.Backward()

	fmt.Fprintf(out, "n = %.4f\n", n.Data())
	fmt.Fprintf(out, "o = %.4f\n", o.Data())
	for _, g := range []struct {
		name string
		v    *autodiff.Value
	}{
		{"x1", x1}, {"x2", x2}, {"w1", w1}, {"w2", w2}, {"b", b},
	} {
		fmt.Fprintf(out, "d o/d %-2s = %+.4f\n", g.name, g.v.Grad())
	}
	return nil
}

// trainConfig holds the flags of the train command.
type trainConfig struct {
	Steps     int
	LR        float64
	Momentum  float64
	Seed      int64
	Optimizer string
	Every     int
}

func parseTrainFlags(args []string, out io.Writer) (trainConfig, error) {
	var cfg trainConfig

	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&cfg.Steps, "steps", 100, "number of training steps")
	fs.Float64Var(&cfg.LR, "lr", 0.05, "learning rate")
	fs.Float64Var(&cfg.Momentum, "momentum", 0, "SGD momentum")
	fs.Int64Var(&cfg.Seed, "seed", 42, "seed for parameter initialization")
	fs.StringVar(&cfg.Optimizer, "optimizer", "sgd", "optimizer: sgd or adam")
	fs.IntVar(&cfg.Every, "log-every", 10, "print the loss every N steps")

	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("failed to parse flags: %w", err)
	}
	if cfg.Steps < 1 {
		return cfg, fmt.Errorf("steps must be positive, got %d", cfg.Steps)
	}
	if cfg.Every < 1 {
		cfg.Every = 1
	}
	return cfg, nil
}

func newOptimizer(cfg trainConfig, params []*nn.Parameter) (optim.Optimizer, error) {
	switch cfg.Optimizer {
	case "sgd":
		return optim.NewSGD(params, optim.SGDConfig{LR: cfg.LR, Momentum: cfg.Momentum}), nil
	case "adam":
		return optim.NewAdam(params, optim.AdamConfig{LR: cfg.LR}), nil
	default:
		return nil, fmt.Errorf("unknown optimizer %q", cfg.Optimizer)
	}
}

// train fits a 3-4-4-1 MLP to four labelled samples.
func train(args []string, out io.Writer) error {
	cfg, err := parseTrainFlags(args, out)
	if err != nil {
		return err
	}

	xs := [][]float64{
		{2.0, 3.0, -1.0},
		{3.0, -1.0, 0.5},
		{0.5, 1.0, 1.0},
		{1.0, 1.0, -1.0},
	}
	ys := []float64{1.0, -1.0, -1.0, 1.0}

	model := nn.NewMLP(3, []int{4, 4, 1}, rand.New(rand.NewSource(cfg.Seed)))
	optimizer, err := newOptimizer(cfg, model.Parameters())
	if err != nil {
		return err
	}
	mse := nn.NewMSELoss()

	fmt.Fprintf(out, "Training MLP with %d parameters (%s, lr=%g)\n",
		nn.NumParameters(model), cfg.Optimizer, optimizer.GetLR())

	for step := 1; step <= cfg.Steps; step++ {
		preds := make([]*autodiff.Value, len(xs))
		for i, x := range xs {
			preds[i] = model.Forward(x)
		}
		loss := mse.Forward(preds, ys)

		optimizer.ZeroGrad()
		loss.Backward()
		optimizer.Step()

		if step%cfg.Every == 0 || step == cfg.Steps {
			fmt.Fprintf(out, "step %4d  loss %.6f\n", step, loss.Data())
		}
	}

	fmt.Fprintln(out, "Predictions:")
	for i, pred := range model.Predict(xs) {
		fmt.Fprintf(out, "  %v -> %+.4f (target %+.1f)\n", xs[i], pred, ys[i])
	}
	return nil
}
