package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"version"}, &out))
	assert.Equal(t, "micrograd "+version+"\n", out.String())
}

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, &out))
	assert.Contains(t, out.String(), "Commands:")
}

func TestRun_UnknownCommand(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"serve"}, &out)
	require.ErrorIs(t, err, errUnknownCommand)
}

func TestRun_Demo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"demo"}, &out))

	got := out.String()
	assert.Contains(t, got, "n = 0.8814")
	assert.Contains(t, got, "o = 0.7071")
	assert.Contains(t, got, "d o/d x1 = -1.5000")
	assert.Contains(t, got, "d o/d w1 = +1.0000")
}

func TestRun_Train(t *testing.T) {
	for _, opt := range []string{"sgd", "adam"} {
		t.Run(opt, func(t *testing.T) {
			var out bytes.Buffer
			err := run([]string{"train", "-steps", "20", "-log-every", "5", "-optimizer", opt, "-lr", "0.05"}, &out)
			require.NoError(t, err)

			got := out.String()
			assert.Contains(t, got, "Training MLP with 41 parameters")
			assert.Equal(t, 4, strings.Count(got, "loss "))
			assert.Contains(t, got, "Predictions:")
		})
	}
}

func TestRun_TrainBadFlags(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"train", "-steps", "0"}, &out))
	assert.Error(t, run([]string{"train", "-optimizer", "rmsprop"}, &out))
	assert.Error(t, run([]string{"train", "-nope"}, &out))
}
