package engine

import "errors"

// Initialization states. The warm-up moves from initializing to either
// ready or error; both outcomes are terminal for the process lifetime.
const (
	StateInitializing = "initializing"
	StateReady        = "ready"
	StateError        = "error"
)

// Status is the engine's initialization state as reported by the health
// check.
type Status struct {
	State string `json:"status"`
	Err   string `json:"error,omitempty"`
}

// ErrNotReady is returned by Answer while the warm-up has not reached
// the ready state. It is expected and transient; callers should signal
// retry-later rather than a generic failure.
var ErrNotReady = errors.New("engine is still initializing")
