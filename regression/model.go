package regression

import (
	"fmt"

	"github.com/arloliu/bistat/errs"
)

// Model is an immutable fitted simple-linear-regression model.
//
// A Model holds only its two parameters and training diagnostics; it does
// not retain the paired sample it was fit from. Predictions take fresh
// query inputs.
type Model struct {
	// Slope is the fitted slope b in Y′ = b·X + a.
	Slope float64
	// Intercept is the fitted intercept a (0 for through-origin fits).
	Intercept float64
	// RSquared is the coefficient of determination against the training
	// data (0-1, higher is better).
	RSquared float64
	// RMSE is the root mean square error against the training data.
	RMSE float64
	// N is the number of observation pairs the model was fit from.
	N int
	// Formula is a human-readable representation of the fitted equation.
	Formula string
}

// Predict returns the fitted value b·x + a for the query point x.
//
// Any real query point is accepted, including values outside the fitted
// X range. Extrapolation is intentional behavior, not an error; the
// caller decides whether a query is interpolation or extrapolation by
// comparing it to the training range.
func (m *Model) Predict(x float64) float64 {
	return m.Slope*x + m.Intercept
}

// Residual returns the prediction error Predict(x) − yActual.
func (m *Model) Residual(x, yActual float64) float64 {
	return m.Predict(x) - yActual
}

// FittedValues returns the predicted value for every query point in xs.
func (m *Model) FittedValues(xs []float64) []float64 {
	fitted := make([]float64, len(xs))
	for i, x := range xs {
		fitted[i] = m.Predict(x)
	}

	return fitted
}

// Residuals returns the prediction error for every (x, y) pair.
//
// Returns errs.ErrLengthMismatch if xs and ys differ in length.
func (m *Model) Residuals(xs, ys []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: xs has %d values, ys has %d", errs.ErrLengthMismatch, len(xs), len(ys))
	}

	residuals := make([]float64, len(xs))
	for i, x := range xs {
		residuals[i] = m.Residual(x, ys[i])
	}

	return residuals, nil
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Formula: %s, R²: %.4f, RMSE: %.4f, N: %d}",
		m.Formula, m.RSquared, m.RMSE, m.N)
}
