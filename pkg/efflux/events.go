package efflux

import (
	"time"

	"github.com/bft-labs/efflux/internal/app"
	"github.com/bft-labs/efflux/internal/domain"
)

// State is the phase of a run.
type State string

const (
	StateIdle      State = "Idle"
	StateReading   State = "Reading"
	StateBatching  State = "Batching"
	StateUploading State = "Uploading"
	StateReporting State = "Reporting"
	StateDone      State = "Done"
	StateAborted   State = "Aborted"
)

// StateChangeEvent is emitted on every state transition.
type StateChangeEvent struct {
	Previous State
	Current  State
	Reason   string
}

// BatchSentEvent is emitted after a batch request completed, whatever its status.
type BatchSentEvent struct {
	Index      int
	Lines      int
	Bytes      int
	StatusCode int
	Duration   time.Duration
}

// SendErrorEvent is emitted when a batch request failed to complete.
type SendErrorEvent struct {
	Index int
	Error error
}

// EventHandler receives run events.
type EventHandler interface {
	OnStateChange(event StateChangeEvent)
	OnBatchSent(event BatchSentEvent)
	OnSendError(event SendErrorEvent)
}

// BaseEventHandler implements EventHandler with no-ops. Embed it to
// override only the events you need.
type BaseEventHandler struct{}

func (BaseEventHandler) OnStateChange(StateChangeEvent) {}
func (BaseEventHandler) OnBatchSent(BatchSentEvent)     {}
func (BaseEventHandler) OnSendError(SendErrorEvent)     {}

// eventEmitterWrapper adapts EventHandler to the internal emitter interfaces.
type eventEmitterWrapper struct {
	handler EventHandler
}

func (e *eventEmitterWrapper) OnStateChange(previous, current app.State, reason string) {
	if e.handler == nil {
		return
	}
	e.handler.OnStateChange(StateChangeEvent{
		Previous: convertState(previous),
		Current:  convertState(current),
		Reason:   reason,
	})
}

func (e *eventEmitterWrapper) OnBatchSent(o domain.Outcome) {
	if e.handler == nil {
		return
	}
	e.handler.OnBatchSent(BatchSentEvent{
		Index:      o.Index,
		Lines:      o.Lines,
		Bytes:      o.Bytes,
		StatusCode: o.StatusCode,
		Duration:   o.Duration,
	})
}

func (e *eventEmitterWrapper) OnSendError(index int, err error) {
	if e.handler == nil {
		return
	}
	e.handler.OnSendError(SendErrorEvent{Index: index, Error: err})
}

func convertState(s app.State) State {
	return State(s.String())
}
