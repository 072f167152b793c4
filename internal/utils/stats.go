package utils

import (
	"math"
)

// Summary describes a sample of optional measurements.
type Summary struct {
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"stdDev"`
	Samples int     `json:"samples"`
}

// roundFloat rounds a float64 to a specified number of decimal places.
func roundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// CalculateStats returns the mean and sample standard deviation of the
// non-nil values, rounded to 4 places. Fewer than two values give a zero
// deviation.
func CalculateStats(data []*float64) Summary {
	values := make([]float64, 0, len(data))
	for _, v := range data {
		if v != nil {
			values = append(values, *v)
		}
	}

	n := len(values)
	if n == 0 {
		return Summary{}
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	if n < 2 {
		return Summary{Mean: roundFloat(mean, 4), Samples: n}
	}

	squares := 0.0
	for _, v := range values {
		squares += (v - mean) * (v - mean)
	}
	stdDev := math.Sqrt(squares / float64(n-1))

	return Summary{Mean: roundFloat(mean, 4), StdDev: roundFloat(stdDev, 4), Samples: n}
}
