package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-poly/dsp/poly"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// coefficientColumn returns the second column of the degree table.
func coefficientColumn(t *testing.T, out string) []string {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	require.Equal(t, []string{"degree", "coefficient"}, strings.Fields(lines[0]))

	var col []string
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			break
		}

		col = append(col, fields[1])
	}

	return col
}

func TestRunModes(t *testing.T) {
	tests := []struct {
		name string
		cfg  config
		args []string
		want []string
	}{
		{name: "roots", cfg: config{mode: modeRoots}, args: []string{"2", "3"}, want: []string{"6", "5", "1"}},
		{name: "binomial", cfg: config{mode: modeBinomial}, args: []string{"2", "3"}, want: []string{"1", "5", "6"}},
		{name: "negative roots", cfg: config{mode: modeRoots}, args: []string{"-1", "-1"}, want: []string{"1", "-2", "1"}},
		{name: "negative binomial", cfg: config{mode: modeBinomial}, args: []string{"-2", "3"}, want: []string{"1", "1", "-6"}},
		{name: "complex roots", cfg: config{mode: modeRoots}, args: []string{"1+2i", "1-2i"}, want: []string{"(5+0i)", "(2+0i)", "(1+0i)"}},
		{name: "mul direct", cfg: config{mode: modeMul, method: "direct"}, args: []string{"1", "1", "x", "1", "1"}, want: []string{"1", "2", "1"}},
		{name: "mul complex", cfg: config{mode: modeMul, method: "auto"}, args: []string{"1i", "x", "1i"}, want: []string{"(-1+0i)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, run(tt.cfg, tt.args, &out, discardLogger()))
			assert.Equal(t, tt.want, coefficientColumn(t, out.String()))
		})
	}
}

func TestRunMulFFT(t *testing.T) {
	var out bytes.Buffer
	cfg := config{mode: modeMul, method: "fft"}

	require.NoError(t, run(cfg, []string{"1", "2", "3", "x", "4", "5"}, &out, discardLogger()))

	col := coefficientColumn(t, out.String())
	require.Len(t, col, 4)
}

func TestRunCheckPrintsResiduals(t *testing.T) {
	var out bytes.Buffer
	cfg := config{mode: modeRoots, check: true}

	require.NoError(t, run(cfg, []string{"2", "3"}, &out, discardLogger()))
	assert.Contains(t, out.String(), "residual")
	assert.Contains(t, out.String(), "-2")
}

func TestRunCheckBinomialZeroFactor(t *testing.T) {
	var out bytes.Buffer
	cfg := config{mode: modeBinomial, check: true}

	require.NoError(t, run(cfg, []string{"0", "4"}, &out, discardLogger()))
	assert.Contains(t, out.String(), "-0.25")
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	log := discardLogger()

	require.ErrorIs(t, run(config{mode: modeRoots}, nil, &out, log), errNoValues)
	require.ErrorIs(t, run(config{mode: "divide"}, []string{"1"}, &out, log), errUnknownMode)
	require.ErrorIs(t, run(config{mode: modeRoots}, []string{"abc"}, &out, log), errInvalidValue)
	require.ErrorIs(t, run(config{mode: modeMul}, []string{"1", "2"}, &out, log), errMulOperands)
	require.ErrorIs(t, run(config{mode: modeMul}, []string{"x", "2"}, &out, log), errMulOperands)
	require.ErrorIs(t, run(config{mode: modeMul, method: "slow"}, []string{"1", "x", "2"}, &out, log), poly.ErrInvalidMethod)
}

func TestRunScaledNotImplemented(t *testing.T) {
	var out bytes.Buffer

	err := run(config{mode: modeScaled, scales: "1,1"}, []string{"1", "2"}, &out, discardLogger())
	require.ErrorIs(t, err, poly.ErrNotImplemented)

	err = run(config{mode: modeScaled, scales: "1"}, []string{"1", "2"}, &out, discardLogger())
	require.ErrorIs(t, err, poly.ErrLengthMismatch)
}

func TestSplitOperands(t *testing.T) {
	left, right, ok := splitOperands([]string{"1", "2", "x", "3"})
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2"}, left)
	assert.Equal(t, []string{"3"}, right)

	_, _, ok = splitOperands([]string{"1", "x"})
	assert.False(t, ok)
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer

	newLogger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	newLogger(&buf, true).Debug("shown", "n", 2)
	assert.Contains(t, buf.String(), "shown")
}
