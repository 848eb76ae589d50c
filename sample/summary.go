package sample

import (
	"fmt"
	"math"
)

// Summary holds one-shot descriptive statistics for a sample.
type Summary struct {
	// Count is the number of observations.
	Count int
	// Mean is the arithmetic mean.
	Mean float64
	// SumOfSquares is Σ(xᵢ − mean)².
	SumOfSquares float64
	// Variance is the sample variance (n − 1 denominator); 0 when Count < 2.
	Variance float64
	// StdDev is the sample standard deviation; 0 when Count < 2.
	StdDev float64
	// Min is the smallest observation.
	Min float64
	// Max is the largest observation.
	Max float64
}

// Summarize computes all descriptive statistics for the sample in a
// single validated pass over the data.
func (s Sample) Summarize() (Summary, error) {
	if err := s.Validate(); err != nil {
		return Summary{}, err
	}

	m := mean(s)
	sum := Summary{
		Count: len(s),
		Mean:  m,
		Min:   s[0],
		Max:   s[0],
	}
	for _, v := range s {
		d := v - m
		sum.SumOfSquares += d * d
		if v < sum.Min {
			sum.Min = v
		}
		if v > sum.Max {
			sum.Max = v
		}
	}
	if sum.Count >= 2 {
		sum.Variance = sum.SumOfSquares / float64(sum.Count-1)
		sum.StdDev = math.Sqrt(sum.Variance)
	}

	return sum, nil
}

// String returns a compact human-readable rendering of the summary.
func (s Summary) String() string {
	return fmt.Sprintf("Summary{n: %d, mean: %.4f, sd: %.4f, min: %.4f, max: %.4f}",
		s.Count, s.Mean, s.StdDev, s.Min, s.Max)
}
