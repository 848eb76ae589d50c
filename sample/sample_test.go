package sample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bistat/errs"
)

func TestSample_Mean(t *testing.T) {
	t.Run("Basic mean", func(t *testing.T) {
		s := Sample{1, 3, 3, 5, 7, 8, 10, 10}
		m, err := s.Mean()
		require.NoError(t, err)
		require.InDelta(t, 5.875, m, 1e-12)
	})

	t.Run("Single observation", func(t *testing.T) {
		m, err := Sample{42}.Mean()
		require.NoError(t, err)
		require.Equal(t, 42.0, m)
	})

	t.Run("Empty sample", func(t *testing.T) {
		_, err := Sample{}.Mean()
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrEmptyInput)
	})

	t.Run("NaN observation", func(t *testing.T) {
		_, err := Sample{1, math.NaN(), 3}.Mean()
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrNonFiniteValue)
	})

	t.Run("Inf observation", func(t *testing.T) {
		_, err := Sample{1, math.Inf(-1)}.Mean()
		require.ErrorIs(t, err, errs.ErrNonFiniteValue)
	})
}

func TestSample_SumOfSquares(t *testing.T) {
	t.Run("Known value", func(t *testing.T) {
		s := Sample{1, 3, 3, 5, 7, 8, 10, 10}
		ss, err := s.SumOfSquares()
		require.NoError(t, err)
		require.InDelta(t, 80.875, ss, 1e-12)
	})

	t.Run("Always non-negative", func(t *testing.T) {
		samples := []Sample{
			{1, 2, 3},
			{-5, -5, 10},
			{0.001, 0.002, 0.003},
			{1e9, -1e9, 0},
		}
		for _, s := range samples {
			ss, err := s.SumOfSquares()
			require.NoError(t, err)
			require.GreaterOrEqual(t, ss, 0.0)
		}
	})

	t.Run("Zero iff constant", func(t *testing.T) {
		ss, err := Sample{5, 5, 5, 5}.SumOfSquares()
		require.NoError(t, err)
		require.Equal(t, 0.0, ss)

		ss, err = Sample{5, 5, 5, 5.000001}.SumOfSquares()
		require.NoError(t, err)
		require.Greater(t, ss, 0.0)
	})

	t.Run("Empty sample", func(t *testing.T) {
		_, err := Sample{}.SumOfSquares()
		require.ErrorIs(t, err, errs.ErrEmptyInput)
	})
}

func TestSample_VarianceStdDev(t *testing.T) {
	t.Run("Known values", func(t *testing.T) {
		s := Sample{2, 4, 4, 4, 5, 5, 7, 9}
		v, err := s.Variance()
		require.NoError(t, err)
		require.InDelta(t, 32.0/7.0, v, 1e-12)

		sd, err := s.StdDev()
		require.NoError(t, err)
		require.InDelta(t, math.Sqrt(32.0/7.0), sd, 1e-12)
	})

	t.Run("Needs two observations", func(t *testing.T) {
		_, err := Sample{1}.Variance()
		require.ErrorIs(t, err, errs.ErrInsufficientData)
	})
}

func TestSample_MinMax(t *testing.T) {
	s := Sample{7, 1, 9, -3, 4}

	lo, err := s.Min()
	require.NoError(t, err)
	require.Equal(t, -3.0, lo)

	hi, err := s.Max()
	require.NoError(t, err)
	require.Equal(t, 9.0, hi)

	_, err = Sample{}.Min()
	require.ErrorIs(t, err, errs.ErrEmptyInput)
	_, err = Sample{}.Max()
	require.ErrorIs(t, err, errs.ErrEmptyInput)
}

func TestSample_Fingerprint(t *testing.T) {
	t.Run("Stable", func(t *testing.T) {
		s := Sample{1, 2, 3}
		require.Equal(t, s.Fingerprint(), s.Fingerprint())
	})

	t.Run("Order sensitive", func(t *testing.T) {
		require.NotEqual(t, Sample{1, 2, 3}.Fingerprint(), Sample{3, 2, 1}.Fingerprint())
	})

	t.Run("Value sensitive", func(t *testing.T) {
		require.NotEqual(t, Sample{1, 2, 3}.Fingerprint(), Sample{1, 2, 3.0000001}.Fingerprint())
	})
}

func TestSumOfProducts(t *testing.T) {
	t.Run("Known value", func(t *testing.T) {
		x := Sample{1, 3, 3, 5, 7, 8, 10, 10}
		y := Sample{2, 2, 4, 6, 9, 10, 11, 9}
		sp, err := SumOfProducts(x, y)
		require.NoError(t, err)
		require.InDelta(t, 81.625, sp, 1e-12)
	})

	t.Run("Symmetric", func(t *testing.T) {
		x := Sample{1, 2, 3, 4}
		y := Sample{4, 1, 3, 2}
		spXY, err := SumOfProducts(x, y)
		require.NoError(t, err)
		spYX, err := SumOfProducts(y, x)
		require.NoError(t, err)
		require.Equal(t, spXY, spYX)
	})

	t.Run("Length mismatch", func(t *testing.T) {
		_, err := SumOfProducts(Sample{1, 2, 3}, Sample{1, 2, 3, 4})
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrLengthMismatch)
	})

	t.Run("Empty input", func(t *testing.T) {
		_, err := SumOfProducts(Sample{}, Sample{1})
		require.ErrorIs(t, err, errs.ErrEmptyInput)
	})
}

func TestCovariance(t *testing.T) {
	t.Run("Matches SP over n-1", func(t *testing.T) {
		x := Sample{1, 3, 3, 5, 7, 8, 10, 10}
		y := Sample{2, 2, 4, 6, 9, 10, 11, 9}
		cov, err := Covariance(x, y)
		require.NoError(t, err)
		require.InDelta(t, 81.625/7.0, cov, 1e-12)
	})

	t.Run("Needs two pairs", func(t *testing.T) {
		_, err := Covariance(Sample{1}, Sample{2})
		require.ErrorIs(t, err, errs.ErrInsufficientData)
	})
}

func TestPearson(t *testing.T) {
	t.Run("Reference dataset", func(t *testing.T) {
		x := Sample{1, 3, 3, 5, 7, 8, 10, 10}
		y := Sample{2, 2, 4, 6, 9, 10, 11, 9}
		r, err := Pearson(x, y)
		require.NoError(t, err)
		require.InDelta(t, 0.9469289002193759, r, 1e-9)
	})

	t.Run("Perfect positive for identity", func(t *testing.T) {
		x := Sample{1, 2, 3, 4, 5}
		r, err := Pearson(x, x)
		require.NoError(t, err)
		require.InDelta(t, 1.0, r, 1e-9)
	})

	t.Run("Perfect positive for positive scaling", func(t *testing.T) {
		x := Sample{1, 2, 3, 4, 5}
		y := make(Sample, len(x))
		for i, v := range x {
			y[i] = 3.5 * v
		}
		r, err := Pearson(x, y)
		require.NoError(t, err)
		require.InDelta(t, 1.0, r, 1e-9)
	})

	t.Run("Perfect negative for negative scaling", func(t *testing.T) {
		x := Sample{1, 2, 3, 4, 5}
		y := make(Sample, len(x))
		for i, v := range x {
			y[i] = -0.25 * v
		}
		r, err := Pearson(x, y)
		require.NoError(t, err)
		require.InDelta(t, -1.0, r, 1e-9)
	})

	t.Run("Always within unit interval", func(t *testing.T) {
		x := Sample{1.5, -2, 88, 0.25, 19, -7}
		y := Sample{3, 100, -5, 0.75, 2, 41}
		r, err := Pearson(x, y)
		require.NoError(t, err)
		require.GreaterOrEqual(t, r, -1.0)
		require.LessOrEqual(t, r, 1.0)
	})

	t.Run("Degenerate constant X", func(t *testing.T) {
		_, err := Pearson(Sample{5, 5, 5, 5}, Sample{1, 2, 3, 4})
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrDegenerateVariance)
	})

	t.Run("Degenerate constant Y", func(t *testing.T) {
		_, err := Pearson(Sample{1, 2, 3, 4}, Sample{5, 5, 5, 5})
		require.ErrorIs(t, err, errs.ErrDegenerateVariance)
	})

	t.Run("Length mismatch", func(t *testing.T) {
		_, err := Pearson(Sample{1, 2, 3}, Sample{1, 2, 3, 4})
		require.ErrorIs(t, err, errs.ErrLengthMismatch)
	})

	t.Run("Single pair", func(t *testing.T) {
		_, err := Pearson(Sample{1}, Sample{2})
		require.ErrorIs(t, err, errs.ErrInsufficientData)
	})
}

func TestSample_Summarize(t *testing.T) {
	t.Run("Full summary", func(t *testing.T) {
		s := Sample{2, 4, 4, 4, 5, 5, 7, 9}
		sum, err := s.Summarize()
		require.NoError(t, err)
		require.Equal(t, 8, sum.Count)
		require.InDelta(t, 5.0, sum.Mean, 1e-12)
		require.InDelta(t, 32.0, sum.SumOfSquares, 1e-12)
		require.InDelta(t, 32.0/7.0, sum.Variance, 1e-12)
		require.InDelta(t, math.Sqrt(32.0/7.0), sum.StdDev, 1e-12)
		require.Equal(t, 2.0, sum.Min)
		require.Equal(t, 9.0, sum.Max)
	})

	t.Run("Single observation has zero spread", func(t *testing.T) {
		sum, err := Sample{7}.Summarize()
		require.NoError(t, err)
		require.Equal(t, 1, sum.Count)
		require.Equal(t, 0.0, sum.Variance)
		require.Equal(t, 0.0, sum.StdDev)
		require.Equal(t, 7.0, sum.Min)
		require.Equal(t, 7.0, sum.Max)
	})

	t.Run("Empty sample", func(t *testing.T) {
		_, err := Sample{}.Summarize()
		require.ErrorIs(t, err, errs.ErrEmptyInput)
	})
}
