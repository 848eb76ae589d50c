// Package bistat provides bivariate descriptive statistics, Pearson
// correlation, and simple linear regression over in-memory samples.
//
// Bistat implements the classic two-pass textbook formulas — mean, sum of
// squared deviations, sum of cross-products, correlation coefficient, and
// ordinary-least-squares slope/intercept for one predictor — as a pure
// function library. Every operation is deterministic, side-effect-free,
// and safe for concurrent use; the only outputs are plain numeric values
// for external consumers (chart renderers, reports) to present.
//
// # Core Features
//
//   - Validated Sample / PairedSample types (finite values, equal lengths)
//   - Descriptive statistics: mean, sum of squares, variance, min/max
//   - Pearson correlation with explicit degenerate-variance handling
//   - Least-squares fits with R²/RMSE diagnostics and prediction/residual
//     helpers, including through-origin fits
//   - Memoized whole-sample analysis keyed by xxHash64 fingerprints
//
// # Basic Usage
//
// Computing a correlation and fitting a line:
//
//	import "github.com/arloliu/bistat"
//
//	x := []float64{2, 4, 9, 10, 11, 14, 14, 15, 16, 19, 22}
//	y := []float64{5, 6, 10, 14, 15, 20, 22, 22, 23, 27, 33}
//
//	r, err := bistat.Pearson(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	model, err := bistat.Fit(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("r=%.4f, %s\n", r, model.Formula)
//	fmt.Printf("prediction at x=10: %.2f\n", model.Predict(10))
//
// # Failure Modes
//
// Invalid input is rejected before any arithmetic proceeds: empty samples
// (errs.ErrEmptyInput), NaN/±Inf observations (errs.ErrNonFiniteValue),
// unequal lengths (errs.ErrLengthMismatch), fewer than two pairs
// (errs.ErrInsufficientData), and constant samples in denominator
// positions (errs.ErrDegenerateVariance). No failure is retryable and no
// partial result is produced.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the sample
// and regression packages, simplifying the most common use cases. For the
// full surface — summaries, paired-sample moments, fit options, memoized
// analysis — use the sample, regression, and analyzer packages directly.
package bistat

import (
	"github.com/arloliu/bistat/regression"
	"github.com/arloliu/bistat/sample"
)

// Mean returns the arithmetic mean of values.
//
// Returns errs.ErrEmptyInput for an empty slice and
// errs.ErrNonFiniteValue if any value is NaN or ±Inf.
func Mean(values []float64) (float64, error) {
	return sample.Sample(values).Mean()
}

// SumOfSquares returns Σ(xᵢ − mean)², the sum of squared deviations from
// the mean. The result is always >= 0 and equals 0 iff all values are
// identical.
func SumOfSquares(values []float64) (float64, error) {
	return sample.Sample(values).SumOfSquares()
}

// SumOfProducts returns Σ(xᵢ − x̄)(yᵢ − ȳ), the sum of cross-products of
// deviations. Requires len(x) == len(y).
func SumOfProducts(x, y []float64) (float64, error) {
	return sample.SumOfProducts(sample.Sample(x), sample.Sample(y))
}

// Pearson returns the Pearson correlation coefficient between x and y,
// in [-1, 1].
//
// Requires equal lengths and at least two pairs; fails with
// errs.ErrDegenerateVariance when either input is constant.
func Pearson(x, y []float64) (float64, error) {
	return sample.Pearson(sample.Sample(x), sample.Sample(y))
}

// Covariance returns the sample covariance of x and y (n − 1 denominator).
func Covariance(x, y []float64) (float64, error) {
	return sample.Covariance(sample.Sample(x), sample.Sample(y))
}

// Fit fits Y′ = b·X + a to the paired values by ordinary least squares.
//
// See regression.Fit for preconditions, failure modes, and options.
//
// Example:
//
//	model, err := bistat.Fit(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	yHat := model.Predict(12.5)
func Fit(x, y []float64, opts ...regression.FitOption) (*regression.Model, error) {
	return regression.Fit(sample.Sample(x), sample.Sample(y), opts...)
}
