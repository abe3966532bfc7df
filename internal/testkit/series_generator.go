package testkit

import (
	"fmt"
	"math/rand/v2"

	"finstat/domain/core"
	"finstat/domain/dataset"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// SeriesGeneratorConfig configures the synthetic panel generator
type SeriesGeneratorConfig struct {
	Rows      int     `json:"rows"`
	Variables int     `json:"variables"`
	Mean      float64 `json:"mean"`
	StdDev    float64 `json:"std_dev"`
	Phi       float64 `json:"phi"`    // AR(1) coefficient, 0 for white noise
	Demean    bool    `json:"demean"` // shift every column to an exact zero sample mean
	Seed      uint64  `json:"seed"`
}

// DefaultSeriesConfig returns a 500 x 2 standard normal panel
func DefaultSeriesConfig() SeriesGeneratorConfig {
	return SeriesGeneratorConfig{
		Rows:      500,
		Variables: 2,
		Mean:      0,
		StdDev:    1,
		Seed:      2021,
	}
}

// SeriesGenerator draws Gaussian AR(1) columns
type SeriesGenerator struct {
	config SeriesGeneratorConfig
	noise  distuv.Normal
}

// NewSeriesGenerator creates a new series generator
func NewSeriesGenerator(config SeriesGeneratorConfig) *SeriesGenerator {
	return &SeriesGenerator{
		config: config,
		noise: distuv.Normal{
			Mu:    0,
			Sigma: config.StdDev,
			Src:   rand.NewPCG(config.Seed, config.Seed^0x9e3779b97f4a7c15),
		},
	}
}

// VariableKeys returns the generated column names X1..Xk
func (g *SeriesGenerator) VariableKeys() []core.VariableKey {
	keys := make([]core.VariableKey, g.config.Variables)
	for j := range keys {
		keys[j] = core.VariableKey(fmt.Sprintf("X%d", j+1))
	}
	return keys
}

// GenerateColumn draws one series of length Rows
func (g *SeriesGenerator) GenerateColumn() []float64 {
	out := make([]float64, g.config.Rows)
	prev := 0.0
	for i := range out {
		innovation := g.noise.Rand()
		prev = g.config.Phi*prev + innovation
		out[i] = g.config.Mean + prev
	}

	if g.config.Demean && len(out) > 0 {
		mean, _ := mstats.Mean(out)
		floats.AddConst(-mean, out)
	}
	return out
}

// GenerateTable draws a table of Variables columns
func (g *SeriesGenerator) GenerateTable() (*dataset.Table, error) {
	keys := g.VariableKeys()
	columns := make([][]float64, len(keys))
	for j := range columns {
		columns[j] = g.GenerateColumn()
	}
	return dataset.FromColumns(keys, columns)
}
