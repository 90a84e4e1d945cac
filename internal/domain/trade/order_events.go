package trade

import (
	"github.com/bhslighting/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeOrder = "Order"

// Event type constants
const (
	EventTypeOrderCreated = "OrderCreated"
)

// OrderCreatedEvent is raised when a new order is placed. The order
// confirmation email handler subscribes to it.
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID      uuid.UUID       `json:"order_id"`
	Code         string          `json:"code"`
	ClientName   string          `json:"client_name"`
	Email        string          `json:"email"`
	City         string          `json:"city"`
	Lines        []OrderLine     `json:"lines"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
}

// NewOrderCreatedEvent creates a new OrderCreatedEvent
func NewOrderCreatedEvent(order *Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCreated, AggregateTypeOrder, order.ID),
		OrderID:         order.ID,
		Code:            order.Code,
		ClientName:      order.ClientName,
		Email:           order.Email,
		City:            order.City,
		Lines:           order.Lines,
		TotalAmount:     order.TotalAmount,
		ShippingCost:    order.ShippingCost,
	}
}

// EventType returns the event type name
func (e *OrderCreatedEvent) EventType() string {
	return EventTypeOrderCreated
}
