package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/bistat/errs"
	"github.com/arloliu/bistat/sample"
)

// Fit fits Y′ = b·X + a to the paired samples by ordinary least squares.
//
// The slope is b = SP(x,y) / SS(x) and the intercept a = ȳ − b·x̄, using
// the two-pass method (means first, deviations second). With
// WithThroughOrigin the intercept is forced to 0 and b = Σxy / Σx².
//
// Parameters:
//   - x: predictor sample
//   - y: response sample
//   - opts: optional fit configuration
//
// Returns:
//   - *Model: immutable fitted model with training diagnostics
//   - error: validation or degeneracy error
//
// Failure modes:
//   - errs.ErrEmptyInput / errs.ErrNonFiniteValue: invalid sample
//   - errs.ErrLengthMismatch: len(x) != len(y)
//   - errs.ErrInsufficientData: fewer than 2 observation pairs
//   - errs.ErrDegenerateVariance: constant X (slope undefined)
func Fit(x, y sample.Sample, opts ...FitOption) (*Model, error) {
	cfg := fitConfig{}
	if err := applyFitOptions(&cfg, opts...); err != nil {
		return nil, err
	}

	p, err := sample.NewPaired(x, y)
	if err != nil {
		return nil, err
	}

	return fitPaired(p, cfg)
}

// FitPaired fits a model to an already-validated paired sample.
//
// Identical to Fit but skips re-validating and re-copying the inputs;
// preferred when the caller already holds a PairedSample.
func FitPaired(p *sample.PairedSample, opts ...FitOption) (*Model, error) {
	cfg := fitConfig{}
	if err := applyFitOptions(&cfg, opts...); err != nil {
		return nil, err
	}

	return fitPaired(p, cfg)
}

func fitPaired(p *sample.PairedSample, cfg fitConfig) (*Model, error) {
	var slope, intercept float64

	xs := p.X()
	ys := p.Y()

	if cfg.throughOrigin {
		// Uncentered moments: b = Σxy / Σx², a fixed at 0.
		var sumXY, sumX2 float64
		for i := range xs {
			sumXY += xs[i] * ys[i]
			sumX2 += xs[i] * xs[i]
		}
		if sumX2 == 0 {
			return nil, fmt.Errorf("%w: through-origin slope undefined for all-zero X", errs.ErrDegenerateVariance)
		}
		slope = sumXY / sumX2
	} else {
		ssx := p.SumOfSquaresX()
		if ssx == 0 {
			return nil, fmt.Errorf("%w: slope undefined for constant X", errs.ErrDegenerateVariance)
		}
		slope = p.SumOfProducts() / ssx
		intercept = p.MeanY() - slope*p.MeanX()
	}

	model := &Model{
		Slope:     slope,
		Intercept: intercept,
		N:         p.Len(),
		Formula:   fmt.Sprintf("Y' = %.4f*X + %.4f", slope, intercept),
	}

	predicted := model.FittedValues(xs)
	model.RSquared = rSquared(ys, predicted)
	model.RMSE = rmse(ys, predicted)

	return model, nil
}

// rSquared calculates the coefficient of determination.
//
// R² = 1 − SS_res / SS_tot. Returns 0 when the observed values are
// constant (SS_tot = 0), where the ratio is undefined.
func rSquared(observed, predicted []float64) float64 {
	m := 0.0
	for _, v := range observed {
		m += v
	}
	m /= float64(len(observed))

	ssTot := 0.0
	ssRes := 0.0
	for i := range observed {
		d := observed[i] - m
		ssTot += d * d
		r := observed[i] - predicted[i]
		ssRes += r * r
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - ssRes/ssTot
}

// rmse calculates the root mean square error.
func rmse(observed, predicted []float64) float64 {
	sumSq := 0.0
	for i := range observed {
		d := observed[i] - predicted[i]
		sumSq += d * d
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}
