package bootstrap

import (
	"fmt"
	"math"

	"finstat/domain/core"
	"finstat/domain/dataset"
	"finstat/domain/stats"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
)

// Politis-White tuning constants
const (
	minLagRun       = 5   // K_N lower bound: consecutive insignificant autocorrelations
	significanceMul = 2.0 // c in c*sqrt(log10(n)/n)
)

// OptimalBlockLength implements ports.BlockLengthEstimator with the
// Politis & White (2004) automatic selector, including the Patton,
// Politis & White (2009) correction for the circular block bootstrap.
type OptimalBlockLength struct{}

// NewOptimalBlockLength creates the estimator
func NewOptimalBlockLength() *OptimalBlockLength {
	return &OptimalBlockLength{}
}

// Estimate returns the block lengths of every column of table
func (e *OptimalBlockLength) Estimate(table *dataset.Table) ([]stats.BlockLengths, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	keys := table.VariableKeys()
	out := make([]stats.BlockLengths, len(keys))
	for j, key := range keys {
		lengths, err := OptimalBlockLengths(table.Column(j))
		if err != nil {
			return nil, fmt.Errorf("block length for %s: %w", key, err)
		}
		out[j] = lengths
	}
	return out, nil
}

// OptimalBlockLengths estimates the stationary and circular block lengths of one series
func OptimalBlockLengths(x []float64) (stats.BlockLengths, error) {
	n := len(x)
	nf := float64(n)
	if n == 0 {
		return stats.BlockLengths{}, core.ErrEmptyInput
	}

	kn := int(math.Log10(nf))
	if kn < minLagRun {
		kn = minLagRun
	}
	mMax := int(math.Ceil(math.Sqrt(nf))) + kn
	if n <= mMax+1 {
		return stats.BlockLengths{}, core.NewInsufficientDataError(mMax+1, n)
	}
	bMax := math.Ceil(math.Min(3*math.Sqrt(nf), nf/3))
	threshold := significanceMul * math.Sqrt(math.Log10(nf)/nf)

	mean, err := mstats.Mean(x)
	if err != nil {
		return stats.BlockLengths{}, err
	}
	eps := make([]float64, n)
	copy(eps, x)
	floats.AddConst(-mean, eps)

	acv := make([]float64, mMax+1)
	absAcorr := make([]float64, mMax+1)
	optM := -1
	for i := 0; i <= mMax; i++ {
		v1 := floats.Dot(eps[i+1:], eps[i+1:])
		v2 := floats.Dot(eps[:n-i-1], eps[:n-i-1])
		cross := floats.Dot(eps[i:], eps[:n-i])
		acv[i] = cross / nf
		absAcorr[i] = math.Abs(cross) / math.Sqrt(v1*v2)

		if i == 0 && acv[0] == 0 {
			return stats.BlockLengths{}, fmt.Errorf("%w: zero variance", core.ErrDegenerateSeries)
		}

		// every lag up to mMax feeds the lag window, so keep scanning
		if optM < 0 && i >= kn && allBelow(absAcorr[i-kn:i], threshold) {
			optM = i - kn
		}
	}

	m := mMax
	if optM >= 0 {
		m = 2 * max(optM, 1)
	}
	m = min(m, mMax)

	// Flat-top lag window estimates of G and the long-run variance
	g := 0.0
	lrAcv := acv[0]
	for k := 1; k <= m; k++ {
		ratio := float64(k) / float64(m)
		lambda := 1.0
		if ratio > 0.5 {
			lambda = 2 * (1 - ratio)
		}
		g += 2 * lambda * float64(k) * acv[k]
		lrAcv += 2 * lambda * acv[k]
	}

	dSB := 2 * lrAcv * lrAcv
	dCB := 4.0 / 3.0 * lrAcv * lrAcv
	if dSB == 0 {
		return stats.BlockLengths{}, fmt.Errorf("%w: zero long-run variance", core.ErrDegenerateSeries)
	}

	scale := math.Cbrt(nf)
	bSB := math.Cbrt(2*g*g/dSB) * scale
	bCB := math.Cbrt(2*g*g/dCB) * scale
	if math.IsNaN(bSB) || math.IsNaN(bCB) {
		return stats.BlockLengths{}, fmt.Errorf("%w: undefined block length", core.ErrDegenerateSeries)
	}

	return stats.BlockLengths{
		Stationary: math.Min(bSB, bMax),
		Circular:   math.Min(bCB, bMax),
	}, nil
}

func allBelow(values []float64, threshold float64) bool {
	for _, v := range values {
		if !(v < threshold) {
			return false
		}
	}
	return true
}
