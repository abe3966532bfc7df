package app

import (
	"context"
	"fmt"
	"time"

	"finstat/domain/core"
	"finstat/domain/dataset"
	"finstat/domain/stats"
	"finstat/internal"
	"finstat/internal/config"
	"finstat/internal/errors"
	"finstat/ports"
)

// IntervalService computes block-bootstrap confidence intervals for a
// statistic of selected table columns
type IntervalService struct {
	rngPort   ports.RNGPort
	estimator ports.BlockLengthEstimator
	factory   ports.ResamplerFactory
	config    config.BootstrapConfig
	logger    *internal.Logger
}

// NewIntervalService creates an interval service
func NewIntervalService(
	rngPort ports.RNGPort,
	estimator ports.BlockLengthEstimator,
	factory ports.ResamplerFactory,
	cfg config.BootstrapConfig,
	logger *internal.Logger,
) *IntervalService {
	if logger == nil {
		logger = internal.NewNopLogger()
	}
	return &IntervalService{
		rngPort:   rngPort,
		estimator: estimator,
		factory:   factory,
		config:    cfg,
		logger:    logger,
	}
}

type intervalRequest struct {
	samples   int
	method    stats.Method
	statistic Statistic
	lower     float64
	upper     float64
	err       error
}

// IntervalOption overrides a configured default for one call
type IntervalOption func(*intervalRequest)

// WithSamples sets the number of bootstrap replications
func WithSamples(n int) IntervalOption {
	return func(r *intervalRequest) { r.samples = n }
}

// WithMethod sets the resampling scheme
func WithMethod(m stats.Method) IntervalOption {
	return func(r *intervalRequest) { r.method = m }
}

// WithMethodName parses a method name or alias ("s", "circular", ...)
func WithMethodName(name string) IntervalOption {
	return func(r *intervalRequest) {
		m, err := stats.ParseMethod(name)
		if err != nil {
			r.err = err
			return
		}
		r.method = m
	}
}

// WithStatistic replaces the default MaxOfMeans statistic
func WithStatistic(fn Statistic) IntervalOption {
	return func(r *intervalRequest) { r.statistic = fn }
}

// WithPercentiles sets the interval bounds, in percent
func WithPercentiles(lower, upper float64) IntervalOption {
	return func(r *intervalRequest) {
		r.lower = lower
		r.upper = upper
	}
}

// ConfidenceInterval resamples the selected columns, evaluates the statistic
// on every replication and returns the percentile interval of each output
// dimension. Results are fully determined by the inputs: the seed comes from
// the number of selected variables.
func (s *IntervalService) ConfidenceInterval(ctx context.Context, table *dataset.Table, variables []core.VariableKey, opts ...IntervalOption) (*stats.IntervalTable, error) {
	req, err := s.resolve(opts)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	logger := s.logger.With("run_id", core.NewID().String(), "method", string(req.method))

	selected, err := table.Select(variables)
	if err != nil {
		return nil, err
	}

	perColumn, err := s.estimator.Estimate(selected)
	if err != nil {
		return nil, err
	}
	lengths := stats.MaxBlockLengths(perColumn)

	resampler, err := s.factory.NewResampler(req.method, lengths)
	if err != nil {
		return nil, err
	}

	seed := SeedForVariables(len(variables), s.config.BaseSeed)
	stream, err := s.rngPort.SeededStream(ctx, "bootstrap/"+string(req.method), seed)
	if err != nil {
		return nil, err
	}
	fingerprint := core.ComputeFingerprint(req.method, req.samples, seed, core.JoinKeys(variables),
		lengths.Stationary, lengths.Circular, req.lower, req.upper, selected.RowCount())
	logger.Debug("block lengths stationary=%.4f circular=%.4f seed=%d samples=%d fingerprint=%s",
		lengths.Stationary, lengths.Circular, seed, req.samples, fingerprint.Short())

	n := selected.RowCount()
	replications := make([][]float64, 0, req.samples)
	for b := 0; b < req.samples; b++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		value, err := req.statistic(selected.Take(resampler.Indices(stream, n)))
		if err != nil {
			return nil, err
		}
		if len(value) == 0 {
			return nil, fmt.Errorf("%w: replication %d returned no values", core.ErrStatisticDimension, b)
		}
		if b > 0 && len(value) != len(replications[0]) {
			return nil, fmt.Errorf("%w: replication %d returned %d values, want %d",
				core.ErrStatisticDimension, b, len(value), len(replications[0]))
		}
		replications = append(replications, value)
	}

	dims := len(replications[0])
	rows := make([]stats.Interval, dims)
	column := make([]float64, len(replications))
	for d := 0; d < dims; d++ {
		for b, value := range replications {
			column[b] = value[d]
		}
		bounds := Percentiles(column, req.lower, req.upper)
		rows[d] = stats.Interval{Lower: bounds[0], Upper: bounds[1]}
	}

	logger.Debug("bootstrap finished dims=%d in %v", dims, time.Since(startTime))

	return &stats.IntervalTable{
		Method:          req.method,
		Samples:         req.samples,
		Seed:            seed,
		BlockLengths:    lengths,
		LowerPercentile: req.lower,
		UpperPercentile: req.upper,
		Rows:            rows,
		Fingerprint:     fingerprint,
	}, nil
}

// resolve applies options over the configured defaults and validates the result
func (s *IntervalService) resolve(opts []IntervalOption) (*intervalRequest, error) {
	req := &intervalRequest{
		samples:   s.config.Samples,
		method:    s.config.Method,
		statistic: MaxOfMeans,
		lower:     s.config.LowerPercentile,
		upper:     s.config.UpperPercentile,
	}
	for _, opt := range opts {
		opt(req)
	}

	if req.err != nil {
		return nil, errors.Usage("invalid bootstrap request", req.err)
	}
	if !req.method.Valid() {
		_, err := stats.ParseMethod(string(req.method))
		return nil, errors.Usage("invalid bootstrap request", err)
	}
	if req.samples < 1 {
		return nil, errors.Usage(fmt.Sprintf("sample count must be positive, got %d", req.samples), nil)
	}
	if req.statistic == nil {
		req.statistic = MaxOfMeans
	}
	if req.lower < 0 || req.upper > 100 || req.lower >= req.upper {
		return nil, errors.Usage(fmt.Sprintf("invalid percentiles [%g, %g]", req.lower, req.upper), nil)
	}
	return req, nil
}
