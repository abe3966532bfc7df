package container

import (
	"fmt"

	"finstat/adapters/rng"
	"finstat/adapters/stats/bootstrap"
	"finstat/adapters/stats/regression"
	"finstat/app"
	"finstat/internal"
	"finstat/internal/config"
	"finstat/ports"
)

// Container holds all library dependencies
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Collaborators
	RNG          ports.RNGPort
	BlockLengths ports.BlockLengthEstimator
	Resamplers   ports.ResamplerFactory
	Fitter       ports.RegressionFitter

	// Services
	Intervals   *app.IntervalService
	Comparisons *app.ComparisonService
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Logger: internal.NewLogger(internal.ParseLogLevel(cfg.Logging.Level)),
	}
	c.initCollaborators()
	c.initServices()

	c.Logger.Debug("container initialized: method=%s samples=%d maxlags=%d",
		cfg.Bootstrap.Method, cfg.Bootstrap.Samples, cfg.Comparison.MaxLags)
	return c, nil
}

// NewFromEnv loads configuration from the environment and builds a container
func NewFromEnv(envFiles ...string) (*Container, error) {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// initCollaborators wires the production adapters
func (c *Container) initCollaborators() {
	c.RNG = rng.NewSeededAdapter()
	c.BlockLengths = bootstrap.NewOptimalBlockLength()
	c.Resamplers = bootstrap.NewFactory()
	c.Fitter = regression.NewOLS()
}

// initServices builds the services on top of the collaborators
func (c *Container) initServices() {
	c.Intervals = app.NewIntervalService(c.RNG, c.BlockLengths, c.Resamplers, c.Config.Bootstrap, c.Logger.With("service", "intervals"))
	c.Comparisons = app.NewComparisonService(c.Fitter, c.Config.Comparison, c.Logger.With("service", "comparisons"))
}

// Close flushes buffered log output
func (c *Container) Close() error {
	return c.Logger.Sync()
}
