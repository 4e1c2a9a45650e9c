package efflux

import (
	"context"
	"net/http"

	"github.com/bft-labs/efflux/internal/adapters/fs"
	httpAdapter "github.com/bft-labs/efflux/internal/adapters/http"
	"github.com/bft-labs/efflux/internal/adapters/report"
	"github.com/bft-labs/efflux/internal/app"
	"github.com/bft-labs/efflux/internal/ports"
)

// Shipper uploads one file to the collector.
// Use New() to create an instance, then Run() to ship the file.
type Shipper struct {
	config    Config
	agent     *app.Agent
	lifecycle *app.Lifecycle
	logger    ports.Logger
}

// New creates a Shipper in StateIdle.
// Returns an error if configuration is invalid. The input file is not
// touched until Run.
func New(cfg Config, opts ...Option) (*Shipper, error) {
	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// A zero timeout leaves the transport default in place.
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	o := defaultOptions(httpClient)
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	emitter := &eventEmitterWrapper{handler: o.eventHandler}
	lifecycle := app.NewLifecycle(logger, emitter)

	agent := app.NewAgent(
		app.AgentConfig{
			MaxBatchBytes: cfg.MaxBatchBytes,
			Endpoint:      cfg.endpoint(),
		},
		fs.NewLineReader(cfg.File),
		httpAdapter.NewUploader(o.httpClient, logger, o.userAgent),
		report.NewWriter(o.output),
		logger,
		lifecycle,
		emitter,
	)

	return &Shipper{
		config:    cfg,
		agent:     agent,
		lifecycle: lifecycle,
		logger:    logger,
	}, nil
}

// Run ships the file and blocks until every batch was sent or the first
// fatal error. A Shipper can run only once.
func (s *Shipper) Run(ctx context.Context) error {
	s.logger.Info("shipping file",
		ports.String("file", s.config.File),
		ports.Int("max_batch_bytes", s.config.MaxBatchBytes),
	)
	return s.agent.Run(ctx)
}

// Status returns the current run state.
// Safe to call concurrently from any goroutine.
func (s *Shipper) Status() State {
	return convertState(s.lifecycle.State())
}
