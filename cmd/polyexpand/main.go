// Command polyexpand expands root and binomial factor products into
// polynomial coefficients and multiplies coefficient vectors.
//
// Usage:
//
//	polyexpand [flags] [--] value ...
//
// Values are real or complex numbers in Go syntax (2, -0.5, 1+2i).
// Coefficients are printed in ascending degree order. Put -- before the
// values when the first one is negative, otherwise it is read as a flag.
//
// Examples:
//
//	polyexpand 2 3                    # (x+2)(x+3)
//	polyexpand -- -2 3                # (x-2)(x+3)
//	polyexpand -mode binomial 2 3     # (1+2x)(1+3x)
//	polyexpand -check 1+2i 1-2i
//	polyexpand -mode mul 1 1 x 1 1    # (1+x)(1+x)
//	polyexpand -mode mul -method fft 1 2 3 x 4 5
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	cfg, verbose, args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}

	if err != nil {
		os.Exit(2)
	}

	logger := newLogger(os.Stderr, verbose)

	if err := run(cfg, args, os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses the command line and returns the remaining values.
func parseFlags(argv []string, stderr io.Writer) (config, bool, []string, error) {
	var cfg config

	fs := flag.NewFlagSet("polyexpand", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.mode, "mode", modeRoots, "operation: roots, binomial, scaled or mul")
	fs.StringVar(&cfg.method, "method", "auto", "multiplication method for real operands: auto, direct or fft")
	fs.StringVar(&cfg.scales, "scales", "", "comma-separated scale factors b[i] for -mode scaled")
	fs.BoolVar(&cfg.check, "check", false, "evaluate the expansion at each factor's zero and print the residual")
	verbose := fs.Bool("v", false, "enable debug logging on stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: polyexpand [flags] [--] value ...\n\n")
		fmt.Fprintf(stderr, "Expands factor products into polynomial coefficients (ascending degree).\n")
		fmt.Fprintf(stderr, "In -mode mul the two operands are separated by a literal x.\n")
		fmt.Fprintf(stderr, "Use -- before the values when the first value is negative.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  polyexpand 2 3\n")
		fmt.Fprintf(stderr, "  polyexpand -- -2 3\n")
		fmt.Fprintf(stderr, "  polyexpand -mode binomial 2 3\n")
		fmt.Fprintf(stderr, "  polyexpand -check 1+2i 1-2i\n")
		fmt.Fprintf(stderr, "  polyexpand -mode mul 1 1 x 1 1\n")
	}

	if err := fs.Parse(argv); err != nil {
		return cfg, false, nil, err
	}

	return cfg, *verbose, fs.Args(), nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
