package trade

import (
	"github.com/bhslighting/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfillment state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// ValidOrderStatus reports whether s belongs to the closed status set
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// PaymentStatus is the payment state of an order
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// ValidPaymentStatus reports whether s belongs to the closed payment set
func ValidPaymentStatus(s PaymentStatus) bool {
	return s == PaymentStatusUnpaid || s == PaymentStatusPaid
}

// LineVariants captures the variant selection on an order line
type LineVariants struct {
	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

// OrderLine is a point-in-time snapshot of an ordered product. It
// copies the product attributes at purchase time so later catalog
// edits never change a placed order.
type OrderLine struct {
	ProductID     uuid.UUID       `json:"product_id"`
	Name          string          `json:"name"`
	Image         string          `json:"image"`
	Price         decimal.Decimal `json:"price"`
	DiscountPrice decimal.Decimal `json:"discount_price"`
	Quantity      int             `json:"quantity"`
	Stock         int             `json:"stock"`
	Variants      LineVariants    `json:"variants"`
}

// UnitPrice returns the discount price when set, the list price otherwise
func (l OrderLine) UnitPrice() decimal.Decimal {
	if l.DiscountPrice.IsPositive() {
		return l.DiscountPrice
	}
	return l.Price
}

// Order is a placed customer order with immutable line snapshots
type Order struct {
	shared.BaseAggregateRoot
	Code            string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	ClientName      string          `gorm:"type:varchar(255);not null"`
	City            string          `gorm:"type:varchar(100);not null"`
	Email           string          `gorm:"type:varchar(255);not null"`
	PhoneNumber     string          `gorm:"type:varchar(50);not null"`
	ShippingAddress string          `gorm:"type:text;not null"`
	Lines           []OrderLine     `gorm:"type:jsonb;serializer:json"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ShippingCost    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Status          OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentStatus   PaymentStatus   `gorm:"type:varchar(20);not null;default:'unpaid'"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// DefaultShippingCost is the flat delivery fee in TND applied when the
// client does not override it
var DefaultShippingCost = decimal.NewFromInt(7)

// NewOrder creates a pending, unpaid order and raises OrderCreated
func NewOrder(code, clientName, city, email, phoneNumber, shippingAddress string, lines []OrderLine, totalAmount, shippingCost decimal.Decimal) (*Order, error) {
	switch {
	case code == "":
		return nil, shared.NewDomainError("INVALID_ORDER", "Order code is required")
	case clientName == "":
		return nil, shared.NewDomainError("INVALID_ORDER", "Client name is required")
	case city == "":
		return nil, shared.NewDomainError("INVALID_ORDER", "City is required")
	case email == "":
		return nil, shared.NewDomainError("INVALID_ORDER", "Email is required")
	case phoneNumber == "":
		return nil, shared.NewDomainError("INVALID_ORDER", "Phone number is required")
	case shippingAddress == "":
		return nil, shared.NewDomainError("INVALID_ORDER", "Shipping address is required")
	case len(lines) == 0:
		return nil, shared.NewDomainError("INVALID_ORDER", "An order needs at least one product")
	case !totalAmount.IsPositive():
		return nil, shared.NewDomainError("INVALID_ORDER", "Total amount is required")
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_ORDER", "Line quantity must be positive")
		}
	}
	if shippingCost.IsZero() {
		shippingCost = DefaultShippingCost
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		ClientName:        clientName,
		City:              city,
		Email:             email,
		PhoneNumber:       phoneNumber,
		ShippingAddress:   shippingAddress,
		Lines:             lines,
		TotalAmount:       totalAmount,
		ShippingCost:      shippingCost,
		Status:            OrderStatusPending,
		PaymentStatus:     PaymentStatusUnpaid,
	}

	order.AddDomainEvent(NewOrderCreatedEvent(order))

	return order, nil
}

// Subtotal sums every line's effective unit price times quantity
func (o *Order) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, l := range o.Lines {
		subtotal = subtotal.Add(l.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return subtotal
}

// UpdateStatus moves the order to another fulfillment state
func (o *Order) UpdateStatus(status OrderStatus) error {
	if !ValidOrderStatus(status) {
		return shared.NewDomainError("INVALID_STATUS", "Order status must be pending, shipped or delivered")
	}
	o.Status = status
	o.Touch()
	o.IncrementVersion()
	return nil
}

// UpdatePaymentStatus moves the order to another payment state
func (o *Order) UpdatePaymentStatus(status PaymentStatus) error {
	if !ValidPaymentStatus(status) {
		return shared.NewDomainError("INVALID_STATUS", "Payment status must be unpaid or paid")
	}
	o.PaymentStatus = status
	o.Touch()
	o.IncrementVersion()
	return nil
}
