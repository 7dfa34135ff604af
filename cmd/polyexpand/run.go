package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-poly/dsp/poly"
)

const (
	modeRoots    = "roots"
	modeBinomial = "binomial"
	modeScaled   = "scaled"
	modeMul      = "mul"

	operandSeparator = "x"
)

var (
	errNoValues     = errors.New("no values given")
	errUnknownMode  = errors.New("unknown mode")
	errMulOperands  = errors.New("mul needs two operands separated by x")
	errInvalidValue = errors.New("invalid value")
)

type config struct {
	mode   string
	method string
	scales string
	check  bool
}

func run(cfg config, args []string, w io.Writer, logger *slog.Logger) error {
	if len(args) == 0 {
		return errNoValues
	}

	switch cfg.mode {
	case modeRoots, modeBinomial:
		return runExpand(cfg, args, w, logger)
	case modeScaled:
		return runScaled(cfg, args, w, logger)
	case modeMul:
		return runMul(cfg, args, w, logger)
	default:
		return fmt.Errorf("%w: %q", errUnknownMode, cfg.mode)
	}
}

func runExpand(cfg config, args []string, w io.Writer, logger *slog.Logger) error {
	values, isReal, err := parseValues(args)
	if err != nil {
		return err
	}

	logger.Debug("expanding", "mode", cfg.mode, "factors", len(values), "real", isReal)

	if isReal {
		factors := realParts(values)
		c := expand(cfg.mode, factors)
		printTable(w, c)

		if cfg.check {
			printResiduals(w, cfg.mode, c, factors)
		}

		return nil
	}

	c := expand(cfg.mode, values)
	printTable(w, c)

	if cfg.check {
		printResiduals(w, cfg.mode, c, values)
	}

	return nil
}

func runScaled(cfg config, args []string, w io.Writer, logger *slog.Logger) error {
	roots, _, err := parseValues(args)
	if err != nil {
		return err
	}

	scales, _, err := parseValues(splitList(cfg.scales))
	if err != nil {
		return err
	}

	logger.Debug("expanding scaled roots", "roots", len(roots), "scales", len(scales))

	c := make([]complex128, len(roots)+1)
	if err := poly.ExpandRootsScaledTo(c, roots, scales); err != nil {
		return err
	}

	printTable(w, c)

	return nil
}

func runMul(cfg config, args []string, w io.Writer, logger *slog.Logger) error {
	left, right, ok := splitOperands(args)
	if !ok {
		return errMulOperands
	}

	a, realA, err := parseValues(left)
	if err != nil {
		return err
	}

	b, realB, err := parseValues(right)
	if err != nil {
		return err
	}

	method, err := poly.ParseMethod(cfg.method)
	if err != nil {
		return err
	}

	logger.Debug("multiplying", "orderA", poly.Order(a), "orderB", poly.Order(b), "method", method)

	if realA && realB {
		c := make([]float64, len(a)+len(b)-1)
		if err := poly.MulReal(c, realParts(a), realParts(b), poly.WithMethod(method)); err != nil {
			return err
		}

		printTable(w, c)

		return nil
	}

	var c []complex128
	if method == poly.MethodFFT {
		c, err = poly.MulFFT(a, b)
	} else {
		c, err = poly.Mul(a, b)
	}

	if err != nil {
		return err
	}

	printTable(w, c)

	return nil
}

func expand[T poly.Scalar](mode string, factors []T) []T {
	if mode == modeBinomial {
		return poly.ExpandBinomial(factors)
	}

	return poly.ExpandRoots(factors)
}

// zeroOf returns the value of x at which a single factor vanishes:
// -a for (x+a) and -1/a for (1+x*a).
func zeroOf[T poly.Scalar](mode string, a T) (T, bool) {
	if mode != modeBinomial {
		return -a, true
	}

	if a == 0 {
		return 0, false
	}

	return -1 / a, true
}

func printResiduals[T poly.Scalar](w io.Writer, mode string, c, factors []T) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "factor\tzero\tresidual")

	for _, a := range factors {
		x, ok := zeroOf(mode, a)
		if !ok {
			fmt.Fprintf(tw, "%s\t-\t-\n", formatValue(a))
			continue
		}

		fmt.Fprintf(tw, "%s\t%s\t%.3g\n", formatValue(a), formatValue(x), poly.Eval(c, x))
	}

	tw.Flush()
}

func printTable[T poly.Scalar](w io.Writer, c []T) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "degree\tcoefficient")

	for i, v := range c {
		fmt.Fprintf(tw, "%d\t%s\n", i, formatValue(v))
	}

	tw.Flush()
}

func formatValue[T poly.Scalar](v T) string {
	return fmt.Sprintf("%.12g", v)
}

func parseValues(args []string) ([]complex128, bool, error) {
	values := make([]complex128, 0, len(args))
	isReal := true

	for _, arg := range args {
		v, err := strconv.ParseComplex(strings.TrimSpace(arg), 128)
		if err != nil {
			return nil, false, fmt.Errorf("%w %q", errInvalidValue, arg)
		}

		if imag(v) != 0 {
			isReal = false
		}

		values = append(values, v)
	}

	return values, isReal, nil
}

func realParts(values []complex128) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = real(v)
	}

	return out
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return strings.Split(s, ",")
}

func splitOperands(args []string) ([]string, []string, bool) {
	for i, arg := range args {
		if arg == operandSeparator {
			left, right := args[:i], args[i+1:]
			return left, right, len(left) > 0 && len(right) > 0
		}
	}

	return nil, nil, false
}
