// Package analyzer combines descriptive statistics, correlation, and
// regression into a single memoized analysis pass over a paired sample.
//
// The Analyzer caches complete reports in an LRU keyed by the joint
// xxHash64 fingerprint of the (X, Y) pair, so repeated analyses of the
// same data return the cached report without recomputing. All inputs are
// immutable once analyzed and the cache is safe for concurrent use.
package analyzer

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/arloliu/bistat/internal/hash"
	"github.com/arloliu/bistat/internal/options"
	"github.com/arloliu/bistat/regression"
	"github.com/arloliu/bistat/sample"
)

// DefaultCacheSize is the default number of memoized reports.
const DefaultCacheSize = 128

// Report holds the complete analysis of one paired sample.
type Report struct {
	// N is the number of observation pairs.
	N int
	// X and Y hold the per-axis descriptive statistics.
	X, Y sample.Summary
	// Correlation is the Pearson correlation coefficient, in [-1, 1].
	Correlation float64
	// Covariance is the sample covariance, SP / (n − 1).
	Covariance float64
	// Model is the fitted least-squares model (Y′ = b·X + a).
	Model *regression.Model
}

// String returns a compact human-readable rendering of the report.
func (r *Report) String() string {
	return fmt.Sprintf("Report{N: %d, r: %.4f, %s}", r.N, r.Correlation, r.Model)
}

// config holds Analyzer construction settings.
type config struct {
	cacheSize int
}

// Option is a functional option for New.
type Option = options.Option[*config]

// WithCacheSize sets the number of memoized reports. Size must be positive.
func WithCacheSize(size int) Option {
	return options.New(func(cfg *config) error {
		if size <= 0 {
			return fmt.Errorf("cache size must be positive, got %d", size)
		}
		cfg.cacheSize = size

		return nil
	})
}

// Analyzer computes memoized analysis reports for paired samples.
//
// The zero value is not usable; construct with New. An Analyzer is safe
// for concurrent use.
type Analyzer struct {
	cache *lru.Cache[uint64, *Report]
}

// New creates an Analyzer with the given options.
func New(opts ...Option) (*Analyzer, error) {
	cfg := config{cacheSize: DefaultCacheSize}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	cache, err := lru.New[uint64, *Report](cfg.cacheSize)
	if err != nil {
		return nil, err
	}

	return &Analyzer{cache: cache}, nil
}

// Analyze computes the full report for the (x, y) pair, returning a
// cached report when the identical pair has been analyzed before.
//
// Inputs carry the same requirements as correlation and regression:
// equal lengths, n >= 2, all values finite, nonzero variance in both
// samples. Failed analyses are not cached.
func (a *Analyzer) Analyze(x, y sample.Sample) (*Report, error) {
	key := hash.PairedValues(x, y)
	if report, ok := a.cache.Get(key); ok {
		return report, nil
	}

	p, err := sample.NewPaired(x, y)
	if err != nil {
		return nil, err
	}

	report, err := analyzePaired(p)
	if err != nil {
		return nil, err
	}

	a.cache.Add(key, report)

	return report, nil
}

// Len returns the number of memoized reports.
func (a *Analyzer) Len() int {
	return a.cache.Len()
}

// Purge drops every memoized report.
func (a *Analyzer) Purge() {
	a.cache.Purge()
}

func analyzePaired(p *sample.PairedSample) (*Report, error) {
	r, err := p.Correlation()
	if err != nil {
		return nil, err
	}

	model, err := regression.FitPaired(p)
	if err != nil {
		return nil, err
	}

	xSummary, err := p.X().Summarize()
	if err != nil {
		return nil, err
	}
	ySummary, err := p.Y().Summarize()
	if err != nil {
		return nil, err
	}

	return &Report{
		N:           p.Len(),
		X:           xSummary,
		Y:           ySummary,
		Correlation: r,
		Covariance:  p.Covariance(),
		Model:       model,
	}, nil
}
