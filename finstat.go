// Package finstat computes block-bootstrap confidence intervals for
// statistics of panel data and tests pseudo out-of-sample R² differences
// between forecasts with HAC standard errors.
//
// The package-level functions use a container built from the environment
// (see internal/config). Callers needing other collaborators or per-call
// options use the services in package app directly.
package finstat

import (
	"context"
	"sync"

	"finstat/app"
	"finstat/domain/core"
	"finstat/domain/dataset"
	"finstat/domain/stats"
	"finstat/internal/container"
)

var (
	defaultOnce      sync.Once
	defaultContainer *container.Container
	defaultErr       error
)

func defaults() (*container.Container, error) {
	defaultOnce.Do(func() {
		defaultContainer, defaultErr = container.NewFromEnv()
	})
	return defaultContainer, defaultErr
}

// ConfidenceInterval returns the bootstrap percentile interval of the max of
// column means over the named variables. method is one of "s"/"stationary",
// "c"/"circular" or "i"/"iid". A sampleCount of 0 or an empty method selects
// the configured default (BOOTSTRAP_SAMPLES, 10000; BOOTSTRAP_METHOD,
// stationary). A negative sampleCount is a usage error.
func ConfidenceInterval(table *dataset.Table, variables []string, sampleCount int, method string) (*stats.IntervalTable, error) {
	return ConfidenceIntervalContext(context.Background(), table, variables, sampleCount, method)
}

// ConfidenceIntervalContext is ConfidenceInterval with cancellation
func ConfidenceIntervalContext(ctx context.Context, table *dataset.Table, variables []string, sampleCount int, method string) (*stats.IntervalTable, error) {
	c, err := defaults()
	if err != nil {
		return nil, err
	}
	return confidenceInterval(ctx, c.Intervals, table, variables, sampleCount, method)
}

func confidenceInterval(ctx context.Context, svc *app.IntervalService, table *dataset.Table, variables []string, sampleCount int, method string) (*stats.IntervalTable, error) {
	var opts []app.IntervalOption
	if sampleCount != 0 {
		opts = append(opts, app.WithSamples(sampleCount))
	}
	if method != "" {
		opts = append(opts, app.WithMethodName(method))
	}
	return svc.ConfidenceInterval(ctx, table, core.Keys(variables...), opts...)
}

// Compare regresses the pseudo-R² advantage of pred over bench on a constant
// with HAC standard errors. naive defines the shared error scale.
func Compare(pred, truth, naive, bench []float64) (*stats.RegressionResult, error) {
	c, err := defaults()
	if err != nil {
		return nil, err
	}
	return c.Comparisons.Compare(context.Background(), pred, truth, naive, bench)
}
