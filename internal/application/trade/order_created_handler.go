package trade

import (
	"context"

	"github.com/bhslighting/backend/internal/domain/shared"
	"github.com/bhslighting/backend/internal/domain/trade"
	"go.uber.org/zap"
)

// OrderCreatedHandler sends the confirmation email when an order is
// placed. It runs on the event bus, off the request path, so a mail
// failure is logged and nothing else.
type OrderCreatedHandler struct {
	mailer Mailer
	logger *zap.Logger
}

// NewOrderCreatedHandler creates a new OrderCreatedHandler
func NewOrderCreatedHandler(mailer Mailer, logger *zap.Logger) *OrderCreatedHandler {
	return &OrderCreatedHandler{
		mailer: mailer,
		logger: logger,
	}
}

// EventTypes returns the event types this handler subscribes to
func (h *OrderCreatedHandler) EventTypes() []string {
	return []string{trade.EventTypeOrderCreated}
}

// Handle sends the order confirmation to the client
func (h *OrderCreatedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	created, ok := event.(*trade.OrderCreatedEvent)
	if !ok {
		return nil
	}
	if created.Email == "" {
		return nil
	}

	subject, body, err := BuildConfirmationEmail(created)
	if err != nil {
		h.logger.Error("failed to build order confirmation",
			zap.String("order_id", created.OrderID.String()),
			zap.Error(err))
		return err
	}

	if err := h.mailer.Send(ctx, created.Email, subject, body); err != nil {
		h.logger.Error("failed to send order confirmation",
			zap.String("order_id", created.OrderID.String()),
			zap.String("to", created.Email),
			zap.Error(err))
		return err
	}

	h.logger.Info("order confirmation sent",
		zap.String("order_id", created.OrderID.String()),
		zap.String("code", created.Code))
	return nil
}
