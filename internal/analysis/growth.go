package analysis

import (
	"errors"
	"math"
)

// ErrTooFewSamples is returned when a fit needs more distinct sizes.
var ErrTooFewSamples = errors.New("analysis: need at least two positive samples with distinct sizes")

// GrowthExponent fits log(cost) = k*log(n) + c by least squares and returns
// k. Samples with a non-positive size or cost are ignored.
func GrowthExponent(sizes []int, costs []float64) (float64, error) {
	var xs, ys []float64
	for i := range sizes {
		if i >= len(costs) || sizes[i] <= 0 || costs[i] <= 0 {
			continue
		}
		xs = append(xs, math.Log(float64(sizes[i])))
		ys = append(ys, math.Log(costs[i]))
	}
	if len(xs) < 2 {
		return 0, ErrTooFewSamples
	}

	meanX, meanY := mean(xs), mean(ys)
	num, den := 0.0, 0.0
	for i := range xs {
		dx := xs[i] - meanX
		num += dx * (ys[i] - meanY)
		den += dx * dx
	}
	if den == 0 {
		return 0, ErrTooFewSamples
	}
	return num / den, nil
}

// Classify names the closest common growth class for an exponent.
func Classify(k float64) string {
	switch {
	case k < 0.5:
		return "sublinear"
	case k < 1.08:
		return "linear"
	case k < 1.5:
		return "n log n"
	case k < 2.5:
		return "quadratic"
	default:
		return "super-quadratic"
	}
}

func mean(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}
