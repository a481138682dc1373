// Package mcmc implements a Metropolis-Hastings sampler for the posterior
// over the unknown mean of normally distributed observations, under a normal
// prior and a fixed unit observation variance.
//
// Chains are driven by an explicitly owned Mersenne Twister generator, so a
// fixed seed reproduces a run exactly.
//
// Basic usage:
//
//	chain, err := mcmc.Sample(data, 15000, 1.0)
//
// or with explicit configuration:
//
//	sampler := mcmc.New(mcmc.Config{ProposalStd: 0.5, PriorStd: 1, Seed: 42})
//	chain, err := sampler.Run(data, 15000, 1.0)
package mcmc

import (
	"errors"
	"fmt"
	"math"

	"github.com/nozzle/mcmc/density"
	"github.com/nozzle/mcmc/rand"
)

// ErrInvalidInput is returned when the observed data or the sampler
// arguments cannot be sampled from.
var ErrInvalidInput = errors.New("mcmc: invalid input")

// likelihoodStd is the fixed standard deviation of the observation model.
const likelihoodStd = 1.0

// Config configures the sampler.
type Config struct {
	// ProposalStd is the standard deviation of the symmetric normal
	// proposal distribution around the current mean.
	// Default: 0.5
	ProposalStd float64

	// PriorMean is the mean of the normal prior over the unknown mean.
	// Default: 0.0
	PriorMean float64

	// PriorStd is the standard deviation of the normal prior.
	// Default: 1.0
	PriorStd float64

	// Seed for the sampler-owned random number generator.
	// Use a fixed seed for reproducible chains.
	// Default: 42
	Seed int64

	// Rand is an optional caller-owned generator used instead of seeding a
	// new one from Seed. Its state advances with the run, and it must not
	// be shared with a concurrent run.
	// Default: nil
	Rand *rand.MT19937
}

// DefaultConfig returns the default sampler configuration.
func DefaultConfig() Config {
	return Config{
		ProposalStd: 0.5,
		PriorMean:   0.0,
		PriorStd:    1.0,
		Seed:        42,
	}
}

// Sampler produces posterior chains over the unknown mean.
type Sampler struct {
	Config Config

	// State after the last run
	chain    []float64
	accepted int
}

// New creates a new Sampler with the given configuration.
func New(config Config) *Sampler {
	return &Sampler{Config: config}
}

// Sample runs a Metropolis-Hastings chain of the requested length with the
// default configuration, starting from muInit.
func Sample(data []float64, samples int, muInit float64) ([]float64, error) {
	return New(DefaultConfig()).Run(data, samples, muInit)
}

// Run produces a Markov chain of exactly samples values approximating the
// posterior over the mean of data. The chain starts at muInit; each
// iteration proposes a new mean from a normal step around the current one
// and accepts or rejects it by the Metropolis rule, so rejected proposals
// repeat the previous value. The loop always runs exactly samples
// iterations; burn-in discarding and thinning are left to the caller.
//
// data is read-only and not retained beyond the call.
func (s *Sampler) Run(data []float64, samples int, muInit float64) ([]float64, error) {
	if err := s.validate(data, samples, muInit); err != nil {
		return nil, err
	}

	rng := s.Config.Rand
	if rng == nil {
		rng = rand.NewMT19937(uint32(s.Config.Seed))
	}

	chain := make([]float64, samples)
	accepted := 0
	current := muInit

	for i := 0; i < samples; i++ {
		proposal := current + rng.Normal(0, s.Config.ProposalStd)

		// Joint log-density of data and mean for both candidates. The
		// proposal density is symmetric and cancels in the ratio.
		logCurrent := density.SumNormalLogPDF(data, current, likelihoodStd) +
			density.NormalLogPDF(current, s.Config.PriorMean, s.Config.PriorStd)
		logProposal := density.SumNormalLogPDF(data, proposal, likelihoodStd) +
			density.NormalLogPDF(proposal, s.Config.PriorMean, s.Config.PriorStd)

		if rng.Float64() < acceptProb(logProposal-logCurrent) {
			current = proposal
			accepted++
		}
		chain[i] = current
	}

	s.chain = chain
	s.accepted = accepted
	return chain, nil
}

// Chain returns the chain produced by the last Run.
func (s *Sampler) Chain() []float64 {
	return s.chain
}

// Accepted returns the number of accepted proposals in the last Run.
func (s *Sampler) Accepted() int {
	return s.accepted
}

// AcceptanceRate returns the fraction of proposals accepted in the last Run.
func (s *Sampler) AcceptanceRate() float64 {
	if len(s.chain) == 0 {
		return 0
	}
	return float64(s.accepted) / float64(len(s.chain))
}

// validate rejects unusable arguments before any iteration runs.
func (s *Sampler) validate(data []float64, samples int, muInit float64) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: data must not be empty", ErrInvalidInput)
	}
	if samples <= 0 {
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidInput, samples)
	}
	if !isFinite(muInit) {
		return fmt.Errorf("%w: muInit must be finite, got %v", ErrInvalidInput, muInit)
	}
	if !isFinite(s.Config.ProposalStd) || s.Config.ProposalStd <= 0 {
		return fmt.Errorf("%w: ProposalStd must be positive and finite, got %v", ErrInvalidInput, s.Config.ProposalStd)
	}
	if !isFinite(s.Config.PriorStd) || s.Config.PriorStd <= 0 {
		return fmt.Errorf("%w: PriorStd must be positive and finite, got %v", ErrInvalidInput, s.Config.PriorStd)
	}
	if !isFinite(s.Config.PriorMean) {
		return fmt.Errorf("%w: PriorMean must be finite, got %v", ErrInvalidInput, s.Config.PriorMean)
	}
	return nil
}

// acceptProb converts a log-ratio of joint densities into an acceptance
// probability. The ratio is exponentiated once, and non-negative log-ratios
// short-circuit to 1 so the exponential cannot overflow.
func acceptProb(logRatio float64) float64 {
	if logRatio >= 0 {
		return 1
	}
	return math.Exp(logRatio)
}

// isFinite reports whether x is neither NaN nor infinite.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
