// Package regression fits simple (one-predictor) linear regression models
// by ordinary least squares and produces predictions and residuals.
//
// # Fitting
//
// Fit estimates Y′ = b·X + a minimizing squared prediction error:
//
//	model, err := regression.Fit(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(model.Formula)      // "Y' = 1.4457*X + 0.0345"
//	yHat := model.Predict(10)       // point prediction
//	resid := model.Residual(10, 14) // Predict(10) − 14
//
// The slope is b = SP(x,y) / SS(x) and the intercept a = ȳ − b·x̄. Fitting
// requires equal-length samples with n >= 2 and nonzero variance in X; a
// constant X sample fails with errs.ErrDegenerateVariance since the slope
// is undefined.
//
// # Through-Origin Fits
//
// WithThroughOrigin forces a = 0, fitting Y′ = b·X with b = Σxy / Σx²:
//
//	model, err := regression.Fit(x, y, regression.WithThroughOrigin())
//
// # Diagnostics
//
// Each fitted Model carries R² (coefficient of determination) and RMSE
// (root mean square error) computed against the training data, so callers
// can judge fit quality without recomputing residuals.
//
// # Prediction Range
//
// Predict accepts any real query point, including values outside the
// fitted X range. Extrapolation is intentional and not an error; use
// sample.PairedSample.XRange to classify a query point when the
// distinction matters to the caller.
package regression
