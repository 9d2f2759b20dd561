// Package container provides dependency injection for the finance CLI.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"time"

	"fjacquet/finance-cli/internal/apiclient"
	"fjacquet/finance-cli/internal/common"
	"fjacquet/finance-cli/internal/config"
	"fjacquet/finance-cli/internal/logging"
	"fjacquet/finance-cli/internal/report"
	"fjacquet/finance-cli/internal/statement"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation. All fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	client    apiclient.API
	service   *statement.Service
	generator *report.Generator
}

// Option adjusts how NewContainer wires dependencies
type Option func(*options)

type options struct {
	logger logging.Logger
	client apiclient.API
	now    func() time.Time
}

// WithLogger replaces the logger built from the configuration
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithAPI replaces the HTTP API client
func WithAPI(client apiclient.API) Option {
	return func(o *options) { o.client = client }
}

// WithClock replaces the clock used for statement day arithmetic
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
	}

	if cfg.CSV.Delimiter != "" {
		common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
	}

	client := o.client
	if client == nil {
		client = apiclient.NewClient(cfg.API.BaseURL,
			apiclient.WithTimeout(time.Duration(cfg.API.TimeoutSeconds)*time.Second),
			apiclient.WithLogger(logger))
	}

	serviceOpts := []statement.ServiceOption{
		statement.WithLookupConcurrency(cfg.API.LookupConcurrency),
	}
	if o.now != nil {
		serviceOpts = append(serviceOpts, statement.WithClock(o.now))
	}
	service := statement.NewService(client, logger, serviceOpts...)

	logger.Debug("Container initialized successfully",
		logging.F("base_url", cfg.API.BaseURL),
		logging.F("lookup_concurrency", cfg.API.LookupConcurrency))

	return &Container{
		logger:    logger,
		config:    cfg,
		client:    client,
		service:   service,
		generator: report.NewGenerator(logger),
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetAPI returns the API client
func (c *Container) GetAPI() apiclient.API {
	return c.client
}

// GetStatementService returns the statement detail service
func (c *Container) GetStatementService() *statement.Service {
	return c.service
}

// GetReportGenerator returns the report generator
func (c *Container) GetReportGenerator() *report.Generator {
	return c.generator
}

// NewStatementTracker returns a view tracker for one statement
func (c *Container) NewStatementTracker(statementID int64) *statement.Tracker {
	return statement.NewTracker(c.service, statementID, c.logger)
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
