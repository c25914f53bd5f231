package event

import "greenchain/internal/logger"

// AuditSubscriber logs every auth event through the structured logger.
// It is one subscriber among possibly several on the bus.
func AuditSubscriber() Handler {
	return func(e Event) {
		attrs := []any{"event", e.Type}
		if e.User != nil {
			attrs = append(attrs, "user_id", e.User.ID, "email", e.User.Email)
		} else if e.Email != "" {
			attrs = append(attrs, "email", e.Email)
		}
		if e.Reason != "" {
			attrs = append(attrs, "reason", e.Reason)
		}
		logger.Info("auth event", attrs...)
	}
}
