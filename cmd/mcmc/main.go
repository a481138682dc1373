// Command mcmc runs the Metropolis-Hastings sampler over observed data and
// reports the sampled posterior next to the analytic conjugate answer.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/nozzle/mcmc"
	"github.com/nozzle/mcmc/diag"
	"github.com/nozzle/mcmc/posterior"
	"github.com/nozzle/mcmc/rand"
)

func main() {
	// Parse command-line flags
	inputFile := flag.String("input", "", "Input CSV file, one observation per row (default: synthesize)")
	outputFile := flag.String("output", "chain.csv", "Output CSV file for the sampled chain")
	nObs := flag.Int("n", 20, "Number of synthesized observations when no input file is given")
	trueMean := flag.Float64("true-mean", 1.0, "Mean of the synthesized observations")
	samples := flag.Int("samples", 15000, "Number of chain samples to draw")
	muInit := flag.Float64("mu-init", 0.0, "Starting value of the chain")
	proposalStd := flag.Float64("proposal-std", 0.5, "Standard deviation of the proposal step")
	priorMean := flag.Float64("prior-mean", 0.0, "Mean of the normal prior")
	priorStd := flag.Float64("prior-std", 1.0, "Standard deviation of the normal prior")
	seed := flag.Int64("seed", 42, "Random seed")
	burnin := flag.Int("burnin", 500, "Number of leading samples to discard in the summary")
	verbose := flag.Bool("verbose", false, "Verbose output")
	flag.Parse()

	// Load or synthesize observations
	var data []float64
	if *inputFile != "" {
		loaded, err := loadCSV(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
			os.Exit(1)
		}
		data = loaded
	} else {
		data = synthesize(*nObs, *trueMean, *seed)
	}

	if *verbose {
		fmt.Printf("Observations: %d values\n", len(data))
	}

	// Configure the sampler
	config := mcmc.DefaultConfig()
	config.ProposalStd = *proposalStd
	config.PriorMean = *priorMean
	config.PriorStd = *priorStd
	config.Seed = *seed

	// Run the chain
	sampler := mcmc.New(config)
	chain, err := sampler.Run(data, *samples, *muInit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running sampler: %v\n", err)
		os.Exit(1)
	}

	// Save output
	if err := saveCSV(*outputFile, chain); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving chain: %v\n", err)
		os.Exit(1)
	}

	// Summarize against the closed-form posterior
	tail := diag.Burnin(chain, *burnin)
	summary := diag.Summarize(tail)
	analytic := posterior.Conjugate(data, config.PriorMean, config.PriorStd, 1.0)

	fmt.Printf("Chain: %d samples (%d after burn-in), acceptance %.3f, ESS %.0f\n",
		len(chain), len(tail), sampler.AcceptanceRate(), diag.ESS(tail))
	fmt.Printf("Sampled posterior:  mean %.4f, std %.4f, 90%% interval [%.4f, %.4f]\n",
		summary.Mean, summary.StdDev, summary.Q05, summary.Q95)
	fmt.Printf("Analytic posterior: mean %.4f, std %.4f\n", analytic.Mean, analytic.Std)

	if *verbose {
		fmt.Printf("Saved chain to %s\n", *outputFile)
	}
}

// synthesize draws n observations from Normal(mean, 1) with a generator
// seeded apart from the sampler's, so the two streams stay independent.
func synthesize(n int, mean float64, seed int64) []float64 {
	rng := rand.NewMT19937(uint32(seed) + 1)
	data := make([]float64, n)
	for i := range data {
		data[i] = rng.Normal(mean, 1.0)
	}
	return data
}

// loadCSV loads observations from a CSV file, one value in the first column
// of each row.
func loadCSV(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	data := make([]float64, len(records))
	for i, record := range records {
		if len(record) == 0 {
			return nil, fmt.Errorf("row %d: empty record", i)
		}
		v, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %v", i, err)
		}
		data[i] = v
	}

	return data, nil
}

// saveCSV saves a chain to a CSV file, one value per row at full precision.
func saveCSV(filename string, chain []float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	for _, v := range chain {
		if err := writer.Write([]string{strconv.FormatFloat(v, 'g', -1, 64)}); err != nil {
			return err
		}
	}

	return nil
}
