// Package errs defines the sentinel errors shared across bistat packages.
//
// All errors are plain sentinels intended to be wrapped with additional
// context via fmt.Errorf("%w: ...") and matched by callers with errors.Is.
package errs

import "errors"

var (
	// ErrEmptyInput indicates a zero-length sample was supplied where at
	// least one observation is required.
	ErrEmptyInput = errors.New("empty input sample")

	// ErrNonFiniteValue indicates a sample contains NaN or ±Inf.
	// Samples must be fully finite; observations are never silently dropped.
	ErrNonFiniteValue = errors.New("non-finite value in sample")

	// ErrLengthMismatch indicates two samples that must be paired
	// element-by-element have different lengths.
	ErrLengthMismatch = errors.New("sample length mismatch")

	// ErrInsufficientData indicates an operation needs more observations
	// than the sample provides (correlation and regression need n >= 2).
	ErrInsufficientData = errors.New("insufficient data points")

	// ErrDegenerateVariance indicates a zero sum of squares in a
	// denominator position: correlation is undefined when either sample is
	// constant, and the regression slope is undefined when X is constant.
	ErrDegenerateVariance = errors.New("degenerate variance")
)
