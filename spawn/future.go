package spawn

import (
	"sync"
	"sync/atomic"
)

// State is the lifecycle state of a run.
type State int32

const (
	StateIdle State = iota
	StateLaunching
	StateRunning
	StateSucceeded
	StateMutedFailure
	StateFailed
	StateLaunchFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLaunching:
		return "launching"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateMutedFailure:
		return "muted_failure"
	case StateFailed:
		return "failed"
	case StateLaunchFailed:
		return "launch_failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions can happen.
func (s State) Terminal() bool {
	return s >= StateSucceeded
}

// Future is the pending outcome of a run.
// It is settled exactly once; later settle attempts are ignored.
type Future struct {
	once   sync.Once
	done   chan struct{}
	state  atomic.Int32
	result *Result
	err    error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Done returns a channel that is closed once the run is settled.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the run is settled and returns its outcome.
// Cancellation is not supported: the child always runs to completion.
func (f *Future) Wait() (*Result, error) {
	<-f.done
	return f.result, f.err
}

// State returns the current lifecycle state.
func (f *Future) State() State {
	return State(f.state.Load())
}

func (f *Future) transition(s State) {
	f.state.Store(int32(s))
}

// settle records the terminal outcome. It returns false if the future was already settled.
func (f *Future) settle(s State, result *Result, err error) bool {
	settled := false
	f.once.Do(func() {
		f.result = result
		f.err = err
		f.state.Store(int32(s))
		close(f.done)
		settled = true
	})
	return settled
}
