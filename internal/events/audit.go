package events

import (
	"context"

	"go.uber.org/zap"
)

// RegisterAuditLog subscribes a logging handler for every known event type,
// producing a structured audit trail of domain activity.
func RegisterAuditLog(dispatcher Dispatcher, logger *zap.Logger) {
	types := []EventType{
		EventTicketCreated,
		EventTicketEdited,
		EventTicketDeleted,
		EventUserRegistered,
		EventSessionStarted,
		EventSessionEnded,
	}

	handler := func(_ context.Context, event Event) error {
		logger.Info("audit",
			zap.String("event", string(event.Type)),
			zap.Time("at", event.Timestamp),
			zap.Any("payload", event.Payload),
		)
		return nil
	}

	for _, t := range types {
		dispatcher.Subscribe(t, handler)
	}
}
