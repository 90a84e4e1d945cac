package trade

import (
	"context"
	"strings"

	"github.com/bhslighting/backend/internal/domain/shared"
	"github.com/bhslighting/backend/internal/domain/trade"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService handles order-related business operations
type OrderService struct {
	orderRepo trade.OrderRepository
	eventBus  shared.EventPublisher
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo trade.OrderRepository, eventBus shared.EventPublisher, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		eventBus:  eventBus,
		logger:    logger,
	}
}

// Create places an order with immutable product snapshots and
// publishes OrderCreated. Event delivery is asynchronous, a failing
// confirmation email never fails the order.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	lines := make([]trade.OrderLine, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = trade.OrderLine{
			ProductID:     l.ProductID,
			Name:          l.Name,
			Image:         l.Image,
			Price:         l.Price,
			DiscountPrice: l.DiscountPrice,
			Quantity:      l.Quantity,
			Stock:         l.Stock,
			Variants: trade.LineVariants{
				Size:  l.Size,
				Color: l.Color,
			},
		}
	}

	order, err := trade.NewOrder(
		generateOrderCode(),
		req.ClientName,
		req.City,
		req.Email,
		req.PhoneNumber,
		req.ShippingAddress,
		lines,
		req.TotalAmount,
		req.ShippingCost,
	)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	if err := s.eventBus.Publish(ctx, order.GetDomainEvents()...); err != nil {
		s.logger.Error("failed to publish order events",
			zap.String("order_id", order.ID.String()),
			zap.Error(err))
	}
	order.ClearDomainEvents()

	return ToOrderResponse(order), nil
}

// Update changes the order's fulfillment or payment status
func (s *OrderService) Update(ctx context.Context, id uuid.UUID, req UpdateOrderRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if err := order.UpdateStatus(*req.Status); err != nil {
			return nil, err
		}
	}
	if req.PaymentStatus != nil {
		if err := order.UpdatePaymentStatus(*req.PaymentStatus); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	return ToOrderResponse(order), nil
}

// Delete removes an order
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.orderRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.orderRepo.Delete(ctx, id)
}

// GetByID retrieves an order by ID
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// List retrieves orders with pagination
func (s *OrderService) List(ctx context.Context, filter shared.Filter) ([]OrderResponse, int64, error) {
	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = *ToOrderResponse(&orders[i])
	}
	return responses, total, nil
}

func generateOrderCode() string {
	return "BHS-" + strings.ToUpper(uuid.New().String()[:8])
}
