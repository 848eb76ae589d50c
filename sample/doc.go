// Package sample provides validated observation sequences and the
// descriptive statistics that correlation and regression are built from.
//
// # Core Types
//
//   - Sample: an ordered sequence of finite float64 observations
//   - PairedSample: two equal-length Samples (X, Y) with precomputed moments
//   - Summary: one-shot descriptive statistics for a Sample
//
// # Validation Policy
//
// Samples must be non-empty and fully finite. NaN and ±Inf observations are
// rejected with errs.ErrNonFiniteValue rather than silently dropped, so a
// statistic is either computed from every supplied observation or not at all.
//
// # Basic Usage
//
//	x := sample.Sample{1, 3, 3, 5, 7, 8, 10, 10}
//	y := sample.Sample{2, 2, 4, 6, 9, 10, 11, 9}
//
//	mean, err := x.Mean()
//	ss, err := x.SumOfSquares()
//
//	r, err := sample.Pearson(x, y)
//
// For repeated statistics over the same pair, build a PairedSample once;
// it validates the pair and precomputes means and sums of squares:
//
//	p, err := sample.NewPaired(x, y)
//	r, err := p.Correlation()
//	lo, hi := p.XRange()
//
// All operations are pure and safe for concurrent use.
package sample
