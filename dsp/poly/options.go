package poly

import (
	"fmt"
	"strings"
)

// Method selects how MulReal evaluates a polynomial product.
type Method int

const (
	// MethodAuto picks MethodDirect for short operands and MethodFFT
	// otherwise, based on Config.FFTThreshold.
	MethodAuto Method = iota

	// MethodDirect evaluates the O(N*M) convolution sum.
	MethodDirect

	// MethodFFT multiplies zero-padded spectra, O((N+M) log(N+M)).
	MethodFFT
)

// DefaultFFTThreshold is the shorter-operand length from which MethodAuto
// switches to the FFT product.
const DefaultFFTThreshold = 64

func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodDirect:
		return "direct"
	case MethodFFT:
		return "fft"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod converts a method name ("auto", "direct", "fft") into a Method.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "auto", "":
		return MethodAuto, nil
	case "direct":
		return MethodDirect, nil
	case "fft":
		return MethodFFT, nil
	default:
		return MethodAuto, fmt.Errorf("%w: %q", ErrInvalidMethod, name)
	}
}

// Config holds the MulReal settings.
type Config struct {
	Method       Method
	FFTThreshold int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns automatic method selection with the default
// threshold.
func DefaultConfig() Config {
	return Config{
		Method:       MethodAuto,
		FFTThreshold: DefaultFFTThreshold,
	}
}

// WithMethod forces a multiplication method. Unknown methods are ignored.
func WithMethod(m Method) Option {
	return func(cfg *Config) {
		if m >= MethodAuto && m <= MethodFFT {
			cfg.Method = m
		}
	}
}

// WithFFTThreshold sets the operand length at which MethodAuto switches to
// the FFT product.
func WithFFTThreshold(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.FFTThreshold = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

func (cfg Config) resolve(lenA, lenB int) Method {
	if cfg.Method != MethodAuto {
		return cfg.Method
	}

	if min(lenA, lenB) < cfg.FFTThreshold {
		return MethodDirect
	}

	return MethodFFT
}
