package regression

import "github.com/arloliu/bistat/internal/options"

// fitConfig holds configuration for a single fit.
type fitConfig struct {
	throughOrigin bool
}

// FitOption is a functional option for Fit and FitPaired.
type FitOption = options.Option[*fitConfig]

// WithThroughOrigin forces the intercept to 0, fitting Y′ = b·X with
// b = Σxy / Σx².
func WithThroughOrigin() FitOption {
	return options.NoError(func(cfg *fitConfig) {
		cfg.throughOrigin = true
	})
}

func applyFitOptions(cfg *fitConfig, opts ...FitOption) error {
	return options.Apply(cfg, opts...)
}
