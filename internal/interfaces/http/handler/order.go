package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apptrade "github.com/bhslighting/backend/internal/application/trade"
	"github.com/bhslighting/backend/internal/domain/trade"
	"github.com/bhslighting/backend/internal/interfaces/http/middleware"
)

// OrderHandler exposes the order endpoints.
type OrderHandler struct {
	BaseHandler
	service *apptrade.OrderService
}

func NewOrderHandler(service *apptrade.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.GET("", h.List)
		orders.POST("", h.Create)
		orders.GET("/:id", h.GetByID)
		orders.PUT("/:id", h.Update)
		orders.DELETE("/:id", h.Delete)
	}
}

// createOrderBody is the JSON shape of an order submission. Product
// snapshots arrive under "products" with the quantities and prices the
// storefront displayed.
type createOrderBody struct {
	ClientName      string          `json:"client_name" binding:"required"`
	City            string          `json:"city" binding:"required"`
	Email           string          `json:"email" binding:"required,email"`
	PhoneNumber     string          `json:"phone_number" binding:"required"`
	ShippingAddress string          `json:"shipping_address" binding:"required"`
	Products        []orderLineBody `json:"products" binding:"required,min=1,dive"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	ShippingCost    decimal.Decimal `json:"shipping_cost"`
}

type orderLineBody struct {
	ProductID     uuid.UUID       `json:"product_id" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Image         string          `json:"image"`
	Price         decimal.Decimal `json:"price"`
	DiscountPrice decimal.Decimal `json:"discount_price"`
	Quantity      int             `json:"quantity" binding:"required,min=1"`
	Stock         int             `json:"stock"`
	Size          string          `json:"size"`
	Color         string          `json:"color"`
}

type updateOrderBody struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`
}

func (h *OrderHandler) List(c *gin.Context) {
	filter, err := parseListRequest(c)
	if err != nil {
		h.BadRequest(c, "invalid list parameters")
		return
	}
	filters := map[string]interface{}{}
	for _, key := range []string{"status", "payment_status", "city"} {
		if v := c.Query(key); v != "" {
			filters[key] = v
		}
	}
	if len(filters) > 0 {
		filter.Filters = filters
	}

	orders, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, orders, total, filter.Page, filter.PageSize)
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var body createOrderBody
	if err := c.ShouldBindJSON(&body); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	lines := make([]apptrade.OrderLineInput, len(body.Products))
	for i, p := range body.Products {
		lines[i] = apptrade.OrderLineInput{
			ProductID:     p.ProductID,
			Name:          p.Name,
			Image:         p.Image,
			Price:         p.Price,
			DiscountPrice: p.DiscountPrice,
			Quantity:      p.Quantity,
			Stock:         p.Stock,
			Size:          p.Size,
			Color:         p.Color,
		}
	}

	order, err := h.service.Create(c.Request.Context(), apptrade.CreateOrderRequest{
		ClientName:      body.ClientName,
		City:            body.City,
		Email:           body.Email,
		PhoneNumber:     body.PhoneNumber,
		ShippingAddress: body.ShippingAddress,
		Lines:           lines,
		TotalAmount:     body.TotalAmount,
		ShippingCost:    body.ShippingCost,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, order)
}

// Update changes order status and payment status only.
func (h *OrderHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid order id")
		return
	}

	var body updateOrderBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.BadRequest(c, "invalid order payload")
		return
	}

	var req apptrade.UpdateOrderRequest
	if body.Status != nil {
		status := trade.OrderStatus(*body.Status)
		req.Status = &status
	}
	if body.PaymentStatus != nil {
		status := trade.PaymentStatus(*body.PaymentStatus)
		req.PaymentStatus = &status
	}

	order, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid order id")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
