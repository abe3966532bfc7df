package ports

import (
	"math/rand"

	"finstat/domain/dataset"
	"finstat/domain/stats"
)

// Resampler draws the row indices of one bootstrap replication
type Resampler interface {
	Method() stats.Method
	// Indices returns n row indices in [0, n) drawn from rng
	Indices(rng *rand.Rand, n int) []int
}

// ResamplerFactory builds the resampler for a method from estimated block lengths
type ResamplerFactory interface {
	NewResampler(method stats.Method, lengths stats.BlockLengths) (Resampler, error)
}

// BlockLengthEstimator picks block lengths from the serial dependence of each column
type BlockLengthEstimator interface {
	// Estimate returns one BlockLengths per column of table, in column order
	Estimate(table *dataset.Table) ([]stats.BlockLengths, error)
}
