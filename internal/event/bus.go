// Package event carries the auth domain events. The gate publishes, any
// number of subscribers (notifications, audit log) observe.
package event

import (
	"sync"

	"greenchain/internal/model"
)

// Event types emitted by the auth gate.
const (
	LoginSucceeded  = "login_succeeded"
	LoginFailed     = "login_failed"
	SignupSucceeded = "signup_succeeded"
	SignupFailed    = "signup_failed"
	LoggedOut       = "logged_out"
)

// Failure reasons attached to LoginFailed / SignupFailed.
const (
	ReasonInvalidCredentials = "invalid_credentials"
	ReasonDuplicateEmail     = "duplicate_email"
	ReasonFault              = "fault"
)

// Event describes one auth state change. User is set on success events and
// LoggedOut; Reason is set on failure events.
type Event struct {
	Type   string
	User   *model.User
	Reason string
	Email  string
}

// Handler receives published events. Handlers run synchronously on the
// publisher's goroutine and must not block.
type Handler func(Event)

// Bus is a minimal synchronous publish/subscribe hub.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for all future events.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Publish delivers e to every subscriber in registration order.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}
