package testkit

import (
	"context"
	"math/rand"

	"finstat/adapters/rng"
	"finstat/ports"
)

// TestKit provides testing utilities and fixtures
type TestKit struct {
	rng *rng.SeededAdapter
}

// NewTestKit creates a new test kit instance with synthetic data
func NewTestKit() *TestKit {
	return &TestKit{rng: rng.NewSeededAdapter()}
}

// RNGAdapter returns the production seeded RNG adapter
func (t *TestKit) RNGAdapter() ports.RNGPort {
	return t.rng
}

// ShiftedRNGAdapter returns an RNG port that offsets every requested seed
// by shift, so repeated analyses draw independent streams.
func (t *TestKit) ShiftedRNGAdapter(shift int64) ports.RNGPort {
	return &ShiftedRNG{Shift: shift}
}

// ShiftedRNG implements RNGPort with a fixed seed offset
type ShiftedRNG struct {
	Shift int64
}

// SeededStream creates a deterministic random number generator for a named operation
func (r *ShiftedRNG) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	return rand.New(rand.NewSource(seed + r.Shift)), nil
}

// RecordingRNG wraps an RNG port and remembers every seed requested from it
type RecordingRNG struct {
	Inner ports.RNGPort
	Names []string
	Seeds []int64
}

// SeededStream records the request and delegates to the wrapped port
func (r *RecordingRNG) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	r.Names = append(r.Names, name)
	r.Seeds = append(r.Seeds, seed)
	return r.Inner.SeededStream(ctx, name, seed)
}
