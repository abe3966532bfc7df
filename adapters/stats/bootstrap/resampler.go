package bootstrap

import (
	"fmt"
	"math"
	"math/rand"

	"finstat/domain/core"
	"finstat/domain/stats"
	"finstat/ports"
)

// Factory implements ports.ResamplerFactory
type Factory struct{}

// NewFactory creates a resampler factory
func NewFactory() *Factory {
	return &Factory{}
}

// NewResampler builds the resampler for method. Stationary and circular
// schemes take their block length from lengths; iid ignores it.
func (f *Factory) NewResampler(method stats.Method, lengths stats.BlockLengths) (ports.Resampler, error) {
	switch method {
	case stats.MethodStationary:
		return NewStationary(lengths.Stationary), nil
	case stats.MethodCircular:
		return NewCircular(CircularBlockSize(lengths.Circular)), nil
	case stats.MethodIID:
		return NewIID(), nil
	}
	return nil, fmt.Errorf("%w %q", core.ErrUnknownMethod, method)
}

// CircularBlockSize rounds an estimated length to a usable block size (>= 1)
func CircularBlockSize(length float64) int {
	if math.IsNaN(length) || length < 1 {
		return 1
	}
	return int(math.Round(length))
}

// IID resamples single observations with replacement
type IID struct{}

// NewIID creates an i.i.d. resampler
func NewIID() *IID {
	return &IID{}
}

func (r *IID) Method() stats.Method { return stats.MethodIID }

// Indices returns n uniform draws from [0, n)
func (r *IID) Indices(rng *rand.Rand, n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = rng.Intn(n)
	}
	return idx
}

// Stationary is the Politis-Romano stationary bootstrap: blocks start at
// uniform positions and have geometric lengths with mean BlockSize.
type Stationary struct {
	BlockSize float64
}

// NewStationary creates a stationary bootstrap with mean block length blockSize
func NewStationary(blockSize float64) *Stationary {
	if math.IsNaN(blockSize) || blockSize < 1 {
		blockSize = 1
	}
	return &Stationary{BlockSize: blockSize}
}

func (r *Stationary) Method() stats.Method { return stats.MethodStationary }

// Indices draws a candidate start for every position, then keeps extending
// the current block (wrapping at n) with probability 1 - 1/BlockSize.
func (r *Stationary) Indices(rng *rand.Rand, n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = rng.Intn(n)
	}

	p := 1.0 / r.BlockSize
	for i := 1; i < n; i++ {
		if rng.Float64() > p {
			idx[i] = idx[i-1] + 1
			if idx[i] == n {
				idx[i] = 0
			}
		}
	}
	return idx
}

// Circular is the circular block bootstrap with fixed block size
type Circular struct {
	BlockSize int
}

// NewCircular creates a circular block bootstrap
func NewCircular(blockSize int) *Circular {
	if blockSize < 1 {
		blockSize = 1
	}
	return &Circular{BlockSize: blockSize}
}

func (r *Circular) Method() stats.Method { return stats.MethodCircular }

// Indices concatenates ceil(n/BlockSize) wrapped blocks and truncates to n
func (r *Circular) Indices(rng *rand.Rand, n int) []int {
	b := r.BlockSize
	numBlocks := (n + b - 1) / b

	idx := make([]int, 0, numBlocks*b)
	for block := 0; block < numBlocks; block++ {
		start := rng.Intn(n)
		for k := 0; k < b; k++ {
			idx = append(idx, (start+k)%n)
		}
	}
	return idx[:n]
}
