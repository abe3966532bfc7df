package app

import (
	"finstat/domain/dataset"
	"finstat/domain/stats"
	"finstat/ports"

	"github.com/stretchr/testify/mock"
	"gonum.org/v1/gonum/mat"
)

type mockEstimator struct {
	mock.Mock
}

func (m *mockEstimator) Estimate(table *dataset.Table) ([]stats.BlockLengths, error) {
	args := m.Called(table)
	lengths, _ := args.Get(0).([]stats.BlockLengths)
	return lengths, args.Error(1)
}

type mockFactory struct {
	mock.Mock
}

func (m *mockFactory) NewResampler(method stats.Method, lengths stats.BlockLengths) (ports.Resampler, error) {
	args := m.Called(method, lengths)
	resampler, _ := args.Get(0).(ports.Resampler)
	return resampler, args.Error(1)
}

type mockFitter struct {
	mock.Mock
}

func (m *mockFitter) Fit(y []float64, X mat.Matrix, opts ports.CovOptions) (*stats.RegressionResult, error) {
	args := m.Called(y, X, opts)
	result, _ := args.Get(0).(*stats.RegressionResult)
	return result, args.Error(1)
}
