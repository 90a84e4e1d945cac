package trade

import (
	"github.com/bhslighting/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLineInput is one product snapshot submitted with an order
type OrderLineInput struct {
	ProductID     uuid.UUID
	Name          string
	Image         string
	Price         decimal.Decimal
	DiscountPrice decimal.Decimal
	Quantity      int
	Stock         int
	Size          string
	Color         string
}

// CreateOrderRequest carries a decoded order submission
type CreateOrderRequest struct {
	ClientName      string
	City            string
	Email           string
	PhoneNumber     string
	ShippingAddress string
	Lines           []OrderLineInput
	TotalAmount     decimal.Decimal
	ShippingCost    decimal.Decimal
}

// UpdateOrderRequest changes the mutable order fields. Nil leaves a
// field untouched.
type UpdateOrderRequest struct {
	Status        *trade.OrderStatus
	PaymentStatus *trade.PaymentStatus
}

// OrderLineResponse represents an order line in service responses
type OrderLineResponse struct {
	ProductID     string             `json:"product_id"`
	Name          string             `json:"name"`
	Image         string             `json:"image"`
	Price         decimal.Decimal    `json:"price"`
	DiscountPrice decimal.Decimal    `json:"discount_price"`
	Quantity      int                `json:"quantity"`
	Variants      trade.LineVariants `json:"variants"`
}

// OrderResponse represents an order in service responses
type OrderResponse struct {
	ID              string              `json:"id"`
	Code            string              `json:"code"`
	ClientName      string              `json:"client_name"`
	City            string              `json:"city"`
	Email           string              `json:"email"`
	PhoneNumber     string              `json:"phone_number"`
	ShippingAddress string              `json:"shipping_address"`
	Lines           []OrderLineResponse `json:"products"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	ShippingCost    decimal.Decimal     `json:"shipping_cost"`
	Status          string              `json:"status"`
	PaymentStatus   string              `json:"payment_status"`
	CreatedAt       string              `json:"created_at"`
	UpdatedAt       string              `json:"updated_at"`
}

// ToOrderResponse maps an order to its response shape
func ToOrderResponse(o *trade.Order) *OrderResponse {
	lines := make([]OrderLineResponse, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = OrderLineResponse{
			ProductID:     l.ProductID.String(),
			Name:          l.Name,
			Image:         l.Image,
			Price:         l.Price,
			DiscountPrice: l.DiscountPrice,
			Quantity:      l.Quantity,
			Variants:      l.Variants,
		}
	}
	return &OrderResponse{
		ID:              o.ID.String(),
		Code:            o.Code,
		ClientName:      o.ClientName,
		City:            o.City,
		Email:           o.Email,
		PhoneNumber:     o.PhoneNumber,
		ShippingAddress: o.ShippingAddress,
		Lines:           lines,
		TotalAmount:     o.TotalAmount,
		ShippingCost:    o.ShippingCost,
		Status:          string(o.Status),
		PaymentStatus:   string(o.PaymentStatus),
		CreatedAt:       o.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       o.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
