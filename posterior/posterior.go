// Package posterior provides the closed-form posterior for the normal-mean
// model with a normal prior, used to validate sampled chains against the
// exact conjugate answer.
package posterior

import (
	"math"

	"github.com/nozzle/mcmc/density"
	"gonum.org/v1/gonum/stat"
)

// Normal is a normal posterior distribution over the unknown mean.
type Normal struct {
	Mean float64
	Std  float64
}

// Conjugate computes the exact posterior over the mean of a normal
// distribution with known standard deviation sigma, given a normal prior.
// For n observations with sample mean xbar:
//
//	postVar  = 1 / (1/priorVar + n/sigma^2)
//	postMean = postVar * (priorMean/priorVar + n*xbar/sigma^2)
//
// Empty data returns the prior unchanged.
func Conjugate(data []float64, priorMean, priorStd, sigma float64) Normal {
	if len(data) == 0 {
		return Normal{Mean: priorMean, Std: priorStd}
	}

	n := float64(len(data))
	xbar := stat.Mean(data, nil)
	priorVar := priorStd * priorStd
	obsVar := sigma * sigma

	postVar := 1.0 / (1.0/priorVar + n/obsVar)
	postMean := postVar * (priorMean/priorVar + n*xbar/obsVar)

	return Normal{Mean: postMean, Std: math.Sqrt(postVar)}
}

// LogPDF evaluates the posterior log-density at x.
func (p Normal) LogPDF(x float64) float64 {
	return density.NormalLogPDF(x, p.Mean, p.Std)
}

// PDF evaluates the posterior density at x.
func (p Normal) PDF(x float64) float64 {
	return math.Exp(p.LogPDF(x))
}
