package events

import (
	"context"

	"go.uber.org/zap"
)

// SubscribeAuditLog attaches a zap-backed listener for auth lifecycle
// events.
func SubscribeAuditLog(d Dispatcher, logger *zap.Logger) {
	handler := func(_ context.Context, e Event) error {
		payload, ok := e.Payload.(AuthEventPayload)
		if !ok {
			return nil
		}
		logger.Info("auth event",
			zap.String("type", string(e.Type)),
			zap.String("user_id", payload.UserID),
			zap.String("email", payload.Email),
		)
		return nil
	}

	d.Subscribe(UserRegistered, handler)
	d.Subscribe(UserLoggedIn, handler)
}
