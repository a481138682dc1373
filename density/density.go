// Package density provides normal log-density evaluation for the sampler.
package density

import "math"

// halfLog2Pi is 0.5 * log(2*pi), the constant term of the normal log-density.
const halfLog2Pi = 0.9189385332046727417803297364056176

// NormalLogPDF computes the log-density of x under a normal distribution.
// log N(x; mu, sigma) = -0.5*((x-mu)/sigma)^2 - log(sigma) - 0.5*log(2*pi)
func NormalLogPDF(x, mu, sigma float64) float64 {
	z := (x - mu) / sigma
	return -0.5*z*z - math.Log(sigma) - halfLog2Pi
}

// SumNormalLogPDF computes the joint log-density of all points in data under
// a normal distribution, i.e. the log-likelihood of the buffer for the given
// mean and standard deviation. The per-point normalization is hoisted out so
// the summation runs as a plain accumulator over the buffer, with no
// allocation and no per-element calls.
func SumNormalLogPDF(data []float64, mu, sigma float64) float64 {
	inv := 1.0 / sigma
	var sum float64
	for _, x := range data {
		z := (x - mu) * inv
		sum += z * z
	}
	return -0.5*sum - float64(len(data))*(math.Log(sigma)+halfLog2Pi)
}
