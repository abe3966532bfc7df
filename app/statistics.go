package app

import (
	"fmt"
	"math"
	"sort"

	"finstat/domain/dataset"

	mstats "github.com/montanaflynn/stats"
)

// Statistic summarizes one bootstrap sample into a fixed-length vector.
// Every replication of a run must return the same number of values.
type Statistic func(sample *dataset.Table) ([]float64, error)

// MaxOfMeans is the default statistic: the largest column mean
func MaxOfMeans(sample *dataset.Table) ([]float64, error) {
	means, err := ColumnMeans(sample)
	if err != nil {
		return nil, err
	}
	best, err := mstats.Max(means)
	if err != nil {
		return nil, fmt.Errorf("max of means: %w", err)
	}
	return []float64{best}, nil
}

// ColumnMeans returns the mean of every column, giving one interval per variable
func ColumnMeans(sample *dataset.Table) ([]float64, error) {
	means := make([]float64, sample.ColumnCount())
	for j := range means {
		m, err := mstats.Mean(sample.Column(j))
		if err != nil {
			return nil, fmt.Errorf("mean of %s: %w", sample.VariableKeys()[j], err)
		}
		means[j] = m
	}
	return means, nil
}

// Scalar lifts a single-valued summary into a Statistic
func Scalar(fn func(sample *dataset.Table) (float64, error)) Statistic {
	return func(sample *dataset.Table) ([]float64, error) {
		v, err := fn(sample)
		if err != nil {
			return nil, err
		}
		return []float64{v}, nil
	}
}

// Percentiles returns the requested percentiles (0-100) of values using
// linear interpolation between closest ranks. values is not modified.
func Percentiles(values []float64, pcts ...float64) []float64 {
	out := make([]float64, len(pcts))
	if len(values) == 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	for i, p := range pcts {
		out[i] = percentileSorted(sorted, p)
	}
	return out
}

func percentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := p / 100 * float64(n-1)
	if pos <= 0 {
		return sorted[0]
	}
	if pos >= float64(n-1) {
		return sorted[n-1]
	}
	lo := int(math.Floor(pos))
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
