// Package diag provides diagnostics for sampled chains: burn-in and thinning
// helpers, acceptance rate, autocorrelation, effective sample size, and
// summary statistics.
package diag

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of a sampled chain.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
	Q05    float64
	Q95    float64
}

// Burnin returns the chain with its first n elements discarded. The result
// aliases the input. n is clamped to [0, len(chain)].
func Burnin(chain []float64, n int) []float64 {
	if n <= 0 {
		return chain
	}
	if n > len(chain) {
		n = len(chain)
	}
	return chain[n:]
}

// Thin returns every k-th element of the chain, starting with the first.
// k values below 2 return the chain unchanged.
func Thin(chain []float64, k int) []float64 {
	if k <= 1 {
		return chain
	}
	out := make([]float64, 0, (len(chain)+k-1)/k)
	for i := 0; i < len(chain); i += k {
		out = append(out, chain[i])
	}
	return out
}

// AcceptanceRate estimates the proposal acceptance rate from a chain as the
// fraction of adjacent elements that differ. Rejected proposals repeat the
// previous value, so a repeat counts as a rejection.
func AcceptanceRate(chain []float64) float64 {
	if len(chain) < 2 {
		return 0
	}
	accepted := 0
	for i := 1; i < len(chain); i++ {
		if chain[i] != chain[i-1] {
			accepted++
		}
	}
	return float64(accepted) / float64(len(chain)-1)
}

// Summarize computes summary statistics for a chain. An empty chain yields
// a zero Summary.
func Summarize(chain []float64) Summary {
	n := len(chain)
	if n == 0 {
		return Summary{}
	}

	sorted := slices.Clone(chain)
	slices.Sort(sorted)

	s := Summary{
		N:      n,
		Mean:   stat.Mean(chain, nil),
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q05:    stat.Quantile(0.05, stat.Empirical, sorted, nil),
		Q95:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
	if n > 1 {
		s.StdDev = stat.StdDev(chain, nil)
	}
	return s
}

// Autocorrelation computes the autocorrelation function of the chain for
// lags 0 through maxLag, normalized by the lag-0 autocovariance. maxLag is
// clamped to len(chain)-1. A constant chain yields 1 at lag 0 and 0 at all
// other lags.
func Autocorrelation(chain []float64, maxLag int) []float64 {
	n := len(chain)
	if n == 0 {
		return nil
	}
	if maxLag < 0 {
		maxLag = 0
	}
	if maxLag > n-1 {
		maxLag = n - 1
	}

	mean := stat.Mean(chain, nil)
	c0 := autocovariance(chain, mean, 0)

	acf := make([]float64, maxLag+1)
	acf[0] = 1
	if c0 == 0 {
		return acf
	}
	for k := 1; k <= maxLag; k++ {
		acf[k] = autocovariance(chain, mean, k) / c0
	}
	return acf
}

// ESS estimates the effective sample size of the chain using the initial
// positive sequence of autocorrelations:
//
//	ess = n / (1 + 2 * sum(acf[k] while acf[k] > 0))
//
// Returns 0 for an empty or constant chain.
func ESS(chain []float64) float64 {
	n := len(chain)
	if n == 0 {
		return 0
	}

	mean := stat.Mean(chain, nil)
	c0 := autocovariance(chain, mean, 0)
	if c0 == 0 {
		return 0
	}

	var sum float64
	for k := 1; k < n; k++ {
		rho := autocovariance(chain, mean, k) / c0
		if rho <= 0 {
			break
		}
		sum += rho
	}
	return float64(n) / (1 + 2*sum)
}

// autocovariance computes the lag-k autocovariance around the given mean,
// normalized by n.
func autocovariance(chain []float64, mean float64, k int) float64 {
	n := len(chain)
	var sum float64
	for i := 0; i+k < n; i++ {
		sum += (chain[i] - mean) * (chain[i+k] - mean)
	}
	return sum / float64(n)
}

// IsFinite reports whether every element of the chain is a finite number.
func IsFinite(chain []float64) bool {
	for _, v := range chain {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
