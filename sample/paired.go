package sample

import (
	"fmt"
	"math"

	"github.com/arloliu/bistat/errs"
	"github.com/arloliu/bistat/internal/hash"
)

// PairedSample holds two equal-length samples (X, Y) observed together,
// with means and sums of squares precomputed at construction.
//
// A PairedSample is immutable after NewPaired returns; the constructor
// copies both inputs so later mutation of the caller's slices cannot
// invalidate the precomputed moments.
type PairedSample struct {
	x, y         Sample
	meanX, meanY float64
	ssx, ssy, sp float64
	minX, maxX   float64
}

// NewPaired validates x and y as a paired sample and precomputes the
// moments used by correlation and regression.
//
// Requirements:
//   - both samples non-empty and fully finite
//   - equal lengths (errs.ErrLengthMismatch otherwise)
//   - n >= 2 (errs.ErrInsufficientData otherwise)
func NewPaired(x, y Sample) (*PairedSample, error) {
	if err := validatePair(x, y); err != nil {
		return nil, err
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("%w: paired sample needs at least 2 observations, got %d", errs.ErrInsufficientData, len(x))
	}

	p := &PairedSample{
		x: append(Sample(nil), x...),
		y: append(Sample(nil), y...),
	}
	p.meanX = mean(p.x)
	p.meanY = mean(p.y)
	p.ssx = sumOfSquares(p.x, p.meanX)
	p.ssy = sumOfSquares(p.y, p.meanY)
	p.sp = sumOfProducts(p.x, p.y, p.meanX, p.meanY)
	p.minX, _ = p.x.Min()
	p.maxX, _ = p.x.Max()

	return p, nil
}

// Len returns the number of observation pairs.
func (p *PairedSample) Len() int {
	return len(p.x)
}

// X returns a copy of the X sample.
func (p *PairedSample) X() Sample {
	return append(Sample(nil), p.x...)
}

// Y returns a copy of the Y sample.
func (p *PairedSample) Y() Sample {
	return append(Sample(nil), p.y...)
}

// MeanX returns the mean of the X sample.
func (p *PairedSample) MeanX() float64 {
	return p.meanX
}

// MeanY returns the mean of the Y sample.
func (p *PairedSample) MeanY() float64 {
	return p.meanY
}

// SumOfSquaresX returns Σ(xᵢ − x̄)².
func (p *PairedSample) SumOfSquaresX() float64 {
	return p.ssx
}

// SumOfSquaresY returns Σ(yᵢ − ȳ)².
func (p *PairedSample) SumOfSquaresY() float64 {
	return p.ssy
}

// SumOfProducts returns Σ(xᵢ − x̄)(yᵢ − ȳ).
func (p *PairedSample) SumOfProducts() float64 {
	return p.sp
}

// Covariance returns the sample covariance, SP / (n − 1).
func (p *PairedSample) Covariance() float64 {
	return p.sp / float64(len(p.x)-1)
}

// Correlation returns the Pearson correlation coefficient, in [-1, 1].
//
// Fails with errs.ErrDegenerateVariance when either sample is constant.
func (p *PairedSample) Correlation() (float64, error) {
	if p.ssx == 0 || p.ssy == 0 {
		return 0, fmt.Errorf("%w: correlation undefined for a constant sample", errs.ErrDegenerateVariance)
	}

	return clampUnit(p.sp / math.Sqrt(p.ssx*p.ssy)), nil
}

// XRange returns the smallest and largest observed X values.
//
// Callers can compare a prediction query against this range to decide
// whether it is interpolation or extrapolation.
func (p *PairedSample) XRange() (lo, hi float64) {
	return p.minX, p.maxX
}

// InXRange reports whether x falls inside the observed X range, i.e.
// whether predicting at x is interpolation rather than extrapolation.
func (p *PairedSample) InXRange(x float64) bool {
	return x >= p.minX && x <= p.maxX
}

// Fingerprint returns a stable joint fingerprint of the (X, Y) pair.
func (p *PairedSample) Fingerprint() uint64 {
	return hash.PairedValues(p.x, p.y)
}
