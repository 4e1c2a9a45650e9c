package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bft-labs/efflux/internal/domain"
	"github.com/bft-labs/efflux/internal/ports"
)

// AgentConfig contains configuration for a run.
type AgentConfig struct {
	MaxBatchBytes int
	Endpoint      domain.Endpoint
}

// Agent drives a single run: lines are batched, each batch is posted and
// its outcome reported before the next batch is built.
type Agent struct {
	config    AgentConfig
	source    ports.LineSource
	uploader  ports.Uploader
	reporter  ports.Reporter
	logger    ports.Logger
	lifecycle *Lifecycle
	emitter   SendEventEmitter
}

// SendEventEmitter is called after each batch is delivered or fails.
type SendEventEmitter interface {
	OnBatchSent(outcome domain.Outcome)
	OnSendError(index int, err error)
}

// NewAgent creates a new agent with the given dependencies.
// emitter may be nil.
func NewAgent(
	config AgentConfig,
	source ports.LineSource,
	uploader ports.Uploader,
	reporter ports.Reporter,
	logger ports.Logger,
	lifecycle *Lifecycle,
	emitter SendEventEmitter,
) *Agent {
	return &Agent{
		config:    config,
		source:    source,
		uploader:  uploader,
		reporter:  reporter,
		logger:    logger,
		lifecycle: lifecycle,
		emitter:   emitter,
	}
}

// Run executes the delivery loop until the input is exhausted or the first
// fatal error. Batches delivered before an error are not rolled back.
// An Agent runs once; a second call returns domain.ErrInvalidTransition.
func (a *Agent) Run(ctx context.Context) error {
	if err := a.lifecycle.TransitionTo(StateReading, "run started"); err != nil {
		return err
	}

	if err := a.source.Open(ctx); err != nil {
		return a.abort(err)
	}
	defer func() {
		if err := a.source.Close(); err != nil {
			a.logger.Warn("failed to close input", ports.Err(err))
		}
	}()

	batcher := NewBatcher(a.source, a.config.MaxBatchBytes)
	var totalBytes int

	for index := 0; ; index++ {
		if err := a.lifecycle.TransitionTo(StateBatching, fmt.Sprintf("building batch %d", index)); err != nil {
			return a.abort(err)
		}

		batch, err := batcher.Next(ctx)
		if errors.Is(err, io.EOF) {
			a.logger.Info("run complete",
				ports.Int("batches", index),
				ports.Int("bytes", totalBytes),
			)
			return a.lifecycle.TransitionTo(StateDone, "input exhausted")
		}
		if err != nil {
			return a.abort(fmt.Errorf("batch %d: %w", index, err))
		}

		outcome, err := a.deliver(ctx, index, batch)
		if err != nil {
			return a.abort(err)
		}
		totalBytes += outcome.Bytes
	}
}

// deliver sends one batch and reports its outcome.
func (a *Agent) deliver(ctx context.Context, index int, batch *domain.Batch) (domain.Outcome, error) {
	if err := a.lifecycle.TransitionTo(StateUploading, fmt.Sprintf("sending batch %d", index)); err != nil {
		return domain.Outcome{}, err
	}

	start := time.Now()
	status, err := a.uploader.Send(ctx, batch, a.config.Endpoint)
	duration := time.Since(start)

	if err != nil {
		a.logger.Debug("send failed",
			ports.Err(err),
			ports.Int("batch", index),
			ports.Int("lines", batch.Size()),
			ports.Int("bytes", batch.TotalBytes),
		)
		if a.emitter != nil {
			a.emitter.OnSendError(index, err)
		}
		return domain.Outcome{}, fmt.Errorf("batch %d: %w", index, err)
	}

	outcome := domain.Outcome{
		Index:      index,
		Bytes:      batch.TotalBytes,
		Lines:      batch.Size(),
		StatusCode: status,
		Duration:   duration,
	}

	if err := a.lifecycle.TransitionTo(StateReporting, fmt.Sprintf("reporting batch %d", index)); err != nil {
		return outcome, err
	}
	if err := a.reporter.Report(outcome); err != nil {
		return outcome, fmt.Errorf("report batch %d: %w", index, err)
	}

	a.logger.Info("sent batch",
		ports.Int("batch", index),
		ports.Int("lines", outcome.Lines),
		ports.Int("bytes", outcome.Bytes),
		ports.Int("status", status),
		ports.Duration("duration", duration),
	)

	if a.emitter != nil {
		a.emitter.OnBatchSent(outcome)
	}
	return outcome, nil
}

func (a *Agent) abort(err error) error {
	_ = a.lifecycle.TransitionTo(StateAborted, err.Error())
	return err
}

// State returns the current run state.
func (a *Agent) State() State {
	return a.lifecycle.State()
}
