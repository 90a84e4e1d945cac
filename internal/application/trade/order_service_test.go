package trade

import (
	"context"
	"testing"

	"github.com/bhslighting/backend/internal/domain/shared"
	"github.com/bhslighting/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockOrderRepository is a mock implementation of trade.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// capturingBus records published events
type capturingBus struct {
	events []shared.DomainEvent
	err    error
}

func (b *capturingBus) Publish(_ context.Context, events ...shared.DomainEvent) error {
	b.events = append(b.events, events...)
	return b.err
}

func createRequest() CreateOrderRequest {
	return CreateOrderRequest{
		ClientName:      "Amine",
		City:            "Tunis",
		Email:           "amine@example.com",
		PhoneNumber:     "21612345",
		ShippingAddress: "12 rue de la Liberté",
		Lines: []OrderLineInput{
			{ProductID: uuid.New(), Name: "Lustre", Price: decimal.NewFromInt(100), DiscountPrice: decimal.NewFromInt(80), Quantity: 2},
			{ProductID: uuid.New(), Name: "Applique", Price: decimal.NewFromInt(50), Quantity: 1},
		},
		TotalAmount: decimal.NewFromInt(217),
	}
}

func TestOrderServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the order and publishes OrderCreated", func(t *testing.T) {
		repo := new(MockOrderRepository)
		bus := &capturingBus{}
		service := NewOrderService(repo, bus, zap.NewNop())

		repo.On("Save", ctx, mock.AnythingOfType("*trade.Order")).Return(nil)

		resp, err := service.Create(ctx, createRequest())
		require.NoError(t, err)

		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, "unpaid", resp.PaymentStatus)
		assert.NotEmpty(t, resp.Code)
		require.Len(t, bus.events, 1)
		assert.Equal(t, trade.EventTypeOrderCreated, bus.events[0].EventType())
	})

	t.Run("a failing event bus does not fail the order", func(t *testing.T) {
		repo := new(MockOrderRepository)
		bus := &capturingBus{err: assert.AnError}
		service := NewOrderService(repo, bus, zap.NewNop())

		repo.On("Save", ctx, mock.AnythingOfType("*trade.Order")).Return(nil)

		resp, err := service.Create(ctx, createRequest())
		require.NoError(t, err)
		assert.NotNil(t, resp)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		service := NewOrderService(new(MockOrderRepository), &capturingBus{}, zap.NewNop())

		req := createRequest()
		req.ClientName = ""
		_, err := service.Create(ctx, req)
		require.Error(t, err)
	})
}

func TestOrderServiceUpdate(t *testing.T) {
	ctx := context.Background()

	newOrder := func(t *testing.T) *trade.Order {
		t.Helper()
		order, err := trade.NewOrder("BHS-TEST", "Amine", "Tunis", "a@b.c", "216", "addr",
			[]trade.OrderLine{{ProductID: uuid.New(), Name: "Lustre", Price: decimal.NewFromInt(100), Quantity: 1}},
			decimal.NewFromInt(107), decimal.Zero)
		require.NoError(t, err)
		order.ClearDomainEvents()
		return order
	}

	t.Run("updates status and payment status", func(t *testing.T) {
		order := newOrder(t)
		repo := new(MockOrderRepository)
		service := NewOrderService(repo, &capturingBus{}, zap.NewNop())

		repo.On("FindByID", ctx, order.ID).Return(order, nil)
		repo.On("Save", ctx, order).Return(nil)

		shipped := trade.OrderStatusShipped
		paid := trade.PaymentStatusPaid
		resp, err := service.Update(ctx, order.ID, UpdateOrderRequest{Status: &shipped, PaymentStatus: &paid})
		require.NoError(t, err)
		assert.Equal(t, "shipped", resp.Status)
		assert.Equal(t, "paid", resp.PaymentStatus)
	})

	t.Run("rejects a status outside the closed set", func(t *testing.T) {
		order := newOrder(t)
		repo := new(MockOrderRepository)
		service := NewOrderService(repo, &capturingBus{}, zap.NewNop())

		repo.On("FindByID", ctx, order.ID).Return(order, nil)

		bogus := trade.OrderStatus("   ")
		_, err := service.Update(ctx, order.ID, UpdateOrderRequest{Status: &bogus})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
