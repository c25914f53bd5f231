// Package notify turns auth events into user-facing transient notices.
package notify

import (
	"fmt"

	"greenchain/internal/event"
)

// Notification variants.
const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Notification is one transient user-facing notice.
type Notification struct {
	Title       string
	Description string
	Variant     string
}

// Sink displays notifications. Delivery is fire-and-forget.
type Sink interface {
	Notify(n Notification)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(n Notification)

func (f SinkFunc) Notify(n Notification) { f(n) }

// Subscriber translates auth events into notifications on sink.
// Every operation outcome produces exactly one notice.
func Subscriber(sink Sink) event.Handler {
	return func(e event.Event) {
		if n, ok := FromEvent(e); ok {
			sink.Notify(n)
		}
	}
}

// FromEvent maps an auth event to its notification. Unknown event types
// produce nothing.
func FromEvent(e event.Event) (Notification, bool) {
	switch e.Type {
	case event.LoginSucceeded:
		name := ""
		if e.User != nil {
			name = e.User.Name
		}
		return Notification{
			Title:       "Login Successful",
			Description: fmt.Sprintf("Welcome back, %s!", name),
			Variant:     VariantDefault,
		}, true
	case event.LoginFailed:
		if e.Reason == event.ReasonFault {
			return Notification{
				Title:       "Login Failed",
				Description: "Something went wrong. Please try again.",
				Variant:     VariantDestructive,
			}, true
		}
		return Notification{
			Title:       "Authentication Error",
			Description: "Invalid email or password",
			Variant:     VariantDestructive,
		}, true
	case event.SignupSucceeded:
		return Notification{
			Title:       "Account Created",
			Description: "Your account has been created successfully!",
			Variant:     VariantDefault,
		}, true
	case event.SignupFailed:
		if e.Reason == event.ReasonDuplicateEmail {
			return Notification{
				Title:       "Signup Error",
				Description: "An account with this email already exists",
				Variant:     VariantDestructive,
			}, true
		}
		return Notification{
			Title:       "Signup Failed",
			Description: "Something went wrong. Please try again.",
			Variant:     VariantDestructive,
		}, true
	case event.LoggedOut:
		return Notification{
			Title:       "Logged Out",
			Description: "You have been logged out successfully.",
			Variant:     VariantDefault,
		}, true
	}
	return Notification{}, false
}
