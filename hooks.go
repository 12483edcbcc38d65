package redlist

import (
	"sync"
	"time"
)

// CallEvent describes a finished endpoint call.
type CallEvent struct {
	RequestID string
	Endpoint  string
	Method    string
	URL       string
	Duration  time.Duration
	Err       error
}

// CallHook is called after every call that reached the transport.
type CallHook func(event CallEvent)

// hooks manages event callbacks for calls
type hooks struct {
	mu             sync.RWMutex
	onCallComplete []CallHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnCallComplete registers a callback for finished calls
func (h *hooks) OnCallComplete(fn CallHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onCallComplete = append(h.onCallComplete, fn)
}

// triggerCallComplete runs the registered callbacks in registration order
func (h *hooks) triggerCallComplete(event CallEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onCallComplete {
		hook(event)
	}
}
