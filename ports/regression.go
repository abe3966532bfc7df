package ports

import (
	"finstat/domain/stats"

	"gonum.org/v1/gonum/mat"
)

// CovOptions selects the covariance estimator of a regression fit
type CovOptions struct {
	Type    stats.CovType
	MaxLags int // HAC only: number of Bartlett-weighted lags
}

// RegressionFitter fits y = X b + e by ordinary least squares
type RegressionFitter interface {
	Fit(y []float64, X mat.Matrix, opts CovOptions) (*stats.RegressionResult, error)
}
