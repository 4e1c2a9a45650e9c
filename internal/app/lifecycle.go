package app

import (
	"sync"

	"github.com/bft-labs/efflux/internal/domain"
	"github.com/bft-labs/efflux/internal/ports"
)

// State represents the phase of a run.
type State int

const (
	StateIdle State = iota
	StateReading
	StateBatching
	StateUploading
	StateReporting
	StateDone
	StateAborted
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateReading:
		return "Reading"
	case StateBatching:
		return "Batching"
	case StateUploading:
		return "Uploading"
	case StateReporting:
		return "Reporting"
	case StateDone:
		return "Done"
	case StateAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

// Terminal returns true for states a run never leaves.
func (s State) Terminal() bool {
	return s == StateDone || s == StateAborted
}

// validTransitions lists the forward edges of the run state machine.
// Any non-terminal state may additionally move to StateAborted.
var validTransitions = map[State][]State{
	StateIdle:      {StateReading},
	StateReading:   {StateBatching},
	StateBatching:  {StateUploading, StateDone},
	StateUploading: {StateReporting},
	StateReporting: {StateBatching},
}

// Lifecycle manages the state machine of a single run:
//
//	Idle -> Reading -> (Batching -> Uploading -> Reporting)* -> Done
//
// with any error moving straight to Aborted.
type Lifecycle struct {
	mu           sync.RWMutex
	state        State
	logger       ports.Logger
	eventEmitter EventEmitter
}

// EventEmitter is called when the run state changes.
type EventEmitter interface {
	OnStateChange(previous, current State, reason string)
}

// NewLifecycle creates a lifecycle in StateIdle.
func NewLifecycle(logger ports.Logger, emitter EventEmitter) *Lifecycle {
	return &Lifecycle{
		state:        StateIdle,
		logger:       logger,
		eventEmitter: emitter,
	}
}

// State returns the current state.
func (l *Lifecycle) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// TransitionTo moves to newState.
// Returns domain.ErrInvalidTransition if the edge is not part of the state machine.
func (l *Lifecycle) TransitionTo(newState State, reason string) error {
	l.mu.Lock()
	oldState := l.state

	if !canTransition(oldState, newState) {
		l.mu.Unlock()
		return domain.ErrInvalidTransition
	}

	l.state = newState
	l.mu.Unlock()

	// Emit event outside of lock
	if l.eventEmitter != nil {
		l.eventEmitter.OnStateChange(oldState, newState, reason)
	}

	l.logger.Debug("state transition",
		ports.String("from", oldState.String()),
		ports.String("to", newState.String()),
		ports.String("reason", reason),
	)

	return nil
}

func canTransition(from, to State) bool {
	if from.Terminal() {
		return false
	}
	if to == StateAborted {
		return true
	}
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
