package testkit

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// ForecastGeneratorConfig configures a synthetic prediction quadruple
type ForecastGeneratorConfig struct {
	Observations   int     `json:"observations"`
	TruthStdDev    float64 `json:"truth_std_dev"`
	CandidateNoise float64 `json:"candidate_noise"` // std dev of candidate forecast error
	BenchBias      float64 `json:"bench_bias"`      // constant offset of the fixed benchmark
	BenchNoise     float64 `json:"bench_noise"`     // std dev of benchmark forecast error
	Seed           uint64  `json:"seed"`
}

// DefaultForecastConfig returns a 200-observation set with a perfect
// candidate and a biased, noisy benchmark.
func DefaultForecastConfig() ForecastGeneratorConfig {
	return ForecastGeneratorConfig{
		Observations:   200,
		TruthStdDev:    1,
		CandidateNoise: 0,
		BenchBias:      3,
		BenchNoise:     1,
		Seed:           2020,
	}
}

// PredictionSet is an aligned (pred, truth, naive, bench) quadruple
type PredictionSet struct {
	Pred  []float64
	Truth []float64
	Naive []float64
	Bench []float64
}

// GenerateForecasts draws a prediction set. The naive forecast is the
// historical mean of zero.
func GenerateForecasts(config ForecastGeneratorConfig) PredictionSet {
	src := rand.NewPCG(config.Seed, config.Seed+1)
	unit := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	n := config.Observations
	set := PredictionSet{
		Pred:  make([]float64, n),
		Truth: make([]float64, n),
		Naive: make([]float64, n),
		Bench: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		truth := config.TruthStdDev * unit.Rand()
		set.Truth[i] = truth
		set.Pred[i] = truth + config.CandidateNoise*unit.Rand()
		set.Bench[i] = truth + config.BenchBias + config.BenchNoise*unit.Rand()
	}
	return set
}
