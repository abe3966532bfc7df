package app

import (
	"context"
	"time"

	"finstat/domain/core"
	"finstat/domain/dataset"
	"finstat/domain/stats"
	"finstat/internal"
	"finstat/internal/config"
	"finstat/ports"

	"gonum.org/v1/gonum/floats"
)

// ComparisonService tests whether a candidate forecast beats a fixed
// benchmark in pseudo out-of-sample R²
type ComparisonService struct {
	fitter ports.RegressionFitter
	config config.ComparisonConfig
	logger *internal.Logger
}

// NewComparisonService creates a comparison service
func NewComparisonService(fitter ports.RegressionFitter, cfg config.ComparisonConfig, logger *internal.Logger) *ComparisonService {
	if logger == nil {
		logger = internal.NewNopLogger()
	}
	return &ComparisonService{
		fitter: fitter,
		config: cfg,
		logger: logger,
	}
}

// Compare builds the per-observation pseudo-R² of pred and of bench, both
// normalized by the mean squared error of the naive forecast, and regresses
// their difference on a constant with HAC standard errors. A positive,
// significant intercept favors pred over bench.
func (s *ComparisonService) Compare(ctx context.Context, pred, truth, naive, bench []float64) (*stats.RegressionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := len(truth)
	if n == 0 {
		return nil, core.ErrEmptyInput
	}
	for _, series := range []struct {
		name   string
		values []float64
	}{{"pred", pred}, {"naive", naive}, {"bench", bench}} {
		if len(series.values) != n {
			return nil, core.NewLengthMismatchError(series.name, n, len(series.values))
		}
	}

	startTime := time.Now()
	naiveMSE := MeanSquaredError(naive, truth)
	diff := PseudoR2(pred, truth, naiveMSE)
	floats.Sub(diff, PseudoR2(bench, truth, naiveMSE))

	result, err := s.fitter.Fit(diff, dataset.ConstantDesign(n), ports.CovOptions{
		Type:    stats.CovHAC,
		MaxLags: s.config.MaxLags,
	})
	if err != nil {
		return nil, err
	}

	param, _, tValue, pValue := result.Intercept()
	s.logger.Debug("pseudo-R2 comparison nobs=%d naive_mse=%.6g diff=%.6g t=%.4f p=%.4g in %v",
		n, naiveMSE, param, tValue, pValue, time.Since(startTime))
	return result, nil
}

// SquaredErrors returns (pred[i] - truth[i])² per observation
func SquaredErrors(pred, truth []float64) []float64 {
	out := make([]float64, len(truth))
	floats.SubTo(out, pred, truth)
	floats.Mul(out, out)
	return out
}

// MeanSquaredError is the mean of SquaredErrors(pred, truth)
func MeanSquaredError(pred, truth []float64) float64 {
	return floats.Sum(SquaredErrors(pred, truth)) / float64(len(truth))
}

// PseudoR2 is the per-observation transform 1 - (pred-truth)²/naiveMSE.
// naiveMSE is one scalar shared by every observation, not a per-row error.
func PseudoR2(pred, truth []float64, naiveMSE float64) []float64 {
	out := SquaredErrors(pred, truth)
	floats.Scale(-1/naiveMSE, out)
	floats.AddConst(1, out)
	return out
}

// OutOfSampleR2 is the aggregate Campbell-Thompson ratio 1 - Σe²/Σe_naive²
func OutOfSampleR2(pred, truth, naive []float64) float64 {
	return 1 - floats.Sum(SquaredErrors(pred, truth))/floats.Sum(SquaredErrors(naive, truth))
}
