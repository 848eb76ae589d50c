package sample

import (
	"fmt"
	"math"

	"github.com/arloliu/bistat/errs"
	"github.com/arloliu/bistat/internal/hash"
)

// Sample is an ordered sequence of real-valued observations.
//
// A valid Sample is non-empty and contains only finite values. Operations
// validate lazily, so constructing a Sample from a literal or an existing
// slice is free; the first statistic computed on an invalid Sample returns
// the validation error.
type Sample []float64

// Len returns the number of observations in the sample.
func (s Sample) Len() int {
	return len(s)
}

// Validate checks the sample invariants.
//
// Returns:
//   - errs.ErrEmptyInput if the sample has no observations
//   - errs.ErrNonFiniteValue (with the offending index) if any observation
//     is NaN or ±Inf
func (s Sample) Validate() error {
	if len(s) == 0 {
		return errs.ErrEmptyInput
	}
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: value %v at index %d", errs.ErrNonFiniteValue, v, i)
		}
	}

	return nil
}

// Mean returns the arithmetic mean of the sample.
func (s Sample) Mean() (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return mean(s), nil
}

// SumOfSquares returns Σ(xᵢ − mean)², the sum of squared deviations from
// the mean.
//
// The result is always >= 0 and equals 0 iff every observation is
// identical. Computed with the two-pass method: mean first, deviations
// second.
func (s Sample) SumOfSquares() (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return sumOfSquares(s, mean(s)), nil
}

// Variance returns the sample variance, Σ(xᵢ − mean)² / (n − 1).
//
// Requires n >= 2; returns errs.ErrInsufficientData otherwise (zero
// degrees of freedom).
func (s Sample) Variance() (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if len(s) < 2 {
		return 0, fmt.Errorf("%w: variance needs at least 2 observations, got %d", errs.ErrInsufficientData, len(s))
	}

	return sumOfSquares(s, mean(s)) / float64(len(s)-1), nil
}

// StdDev returns the sample standard deviation, the square root of Variance.
func (s Sample) StdDev() (float64, error) {
	v, err := s.Variance()
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}

// Min returns the smallest observation in the sample.
func (s Sample) Min() (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	lo := s[0]
	for _, v := range s[1:] {
		if v < lo {
			lo = v
		}
	}

	return lo, nil
}

// Max returns the largest observation in the sample.
func (s Sample) Max() (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	hi := s[0]
	for _, v := range s[1:] {
		if v > hi {
			hi = v
		}
	}

	return hi, nil
}

// Fingerprint returns a stable 64-bit xxHash64 fingerprint of the sample.
//
// Two samples share a fingerprint iff they hold bit-identical observations
// in the same order. Useful as a cache key for derived statistics.
func (s Sample) Fingerprint() uint64 {
	return hash.Values(s)
}

// SumOfProducts returns Σ(xᵢ − x̄)(yᵢ − ȳ), the sum of cross-products of
// deviations.
//
// Returns errs.ErrLengthMismatch if the samples differ in length, or the
// per-sample validation error of the first invalid input.
func SumOfProducts(x, y Sample) (float64, error) {
	if err := validatePair(x, y); err != nil {
		return 0, err
	}

	return sumOfProducts(x, y, mean(x), mean(y)), nil
}

// Covariance returns the sample covariance, Σ(xᵢ − x̄)(yᵢ − ȳ) / (n − 1).
//
// Requires equal lengths and n >= 2.
func Covariance(x, y Sample) (float64, error) {
	if err := validatePair(x, y); err != nil {
		return 0, err
	}
	if len(x) < 2 {
		return 0, fmt.Errorf("%w: covariance needs at least 2 observations, got %d", errs.ErrInsufficientData, len(x))
	}

	return sumOfProducts(x, y, mean(x), mean(y)) / float64(len(x)-1), nil
}

// Pearson returns the Pearson product-moment correlation coefficient
// between x and y, in [-1, 1].
//
// r = SP(x,y) / sqrt(SS(x) * SS(y)), computed two-pass. Requires equal
// lengths and n >= 2, and fails with errs.ErrDegenerateVariance when
// either sample is constant (the denominator would be zero).
func Pearson(x, y Sample) (float64, error) {
	if err := validatePair(x, y); err != nil {
		return 0, err
	}
	if len(x) < 2 {
		return 0, fmt.Errorf("%w: correlation needs at least 2 observations, got %d", errs.ErrInsufficientData, len(x))
	}

	meanX := mean(x)
	meanY := mean(y)
	ssx := sumOfSquares(x, meanX)
	ssy := sumOfSquares(y, meanY)
	if ssx == 0 || ssy == 0 {
		return 0, fmt.Errorf("%w: correlation undefined for a constant sample", errs.ErrDegenerateVariance)
	}

	r := sumOfProducts(x, y, meanX, meanY) / math.Sqrt(ssx*ssy)

	return clampUnit(r), nil
}

// validatePair validates both samples and their pairing constraint.
func validatePair(x, y Sample) error {
	if err := x.Validate(); err != nil {
		return fmt.Errorf("x: %w", err)
	}
	if err := y.Validate(); err != nil {
		return fmt.Errorf("y: %w", err)
	}
	if len(x) != len(y) {
		return fmt.Errorf("%w: x has %d observations, y has %d", errs.ErrLengthMismatch, len(x), len(y))
	}

	return nil
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

func sumOfSquares(values []float64, mean float64) float64 {
	ss := 0.0
	for _, v := range values {
		d := v - mean
		ss += d * d
	}

	return ss
}

func sumOfProducts(x, y []float64, meanX, meanY float64) float64 {
	sp := 0.0
	for i := range x {
		sp += (x[i] - meanX) * (y[i] - meanY)
	}

	return sp
}

// clampUnit clamps rounding spill just outside [-1, 1] back onto the bound.
func clampUnit(r float64) float64 {
	if r > 1 {
		return 1
	}
	if r < -1 {
		return -1
	}

	return r
}
