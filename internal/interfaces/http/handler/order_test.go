package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apptrade "github.com/bhslighting/backend/internal/application/trade"
	"github.com/bhslighting/backend/internal/domain/shared"
	"github.com/bhslighting/backend/internal/domain/trade"
	"github.com/bhslighting/backend/internal/interfaces/http/dto"
	"github.com/bhslighting/backend/internal/interfaces/http/router"
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

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, ...shared.DomainEvent) error { return nil }

func newOrderRouter(repo *MockOrderRepository) *gin.Engine {
	engine := gin.New()
	r := router.New(engine)
	r.Register(NewOrderHandler(apptrade.NewOrderService(repo, noopPublisher{}, zap.NewNop())))
	return engine
}

func orderPayload() map[string]interface{} {
	return map[string]interface{}{
		"client_name":      "Amira Ben Salah",
		"city":             "Sousse",
		"email":            "amira@example.tn",
		"phone_number":     "+216 22 345 678",
		"shipping_address": "12 avenue Habib Bourguiba",
		"total_amount":     "258.500",
		"shipping_cost":    "8.000",
		"products": []map[string]interface{}{
			{
				"product_id": uuid.New().String(),
				"name":       "Suspension dorée",
				"price":      "250.500",
				"quantity":   1,
				"stock":      4,
			},
		},
	}
}

func postJSON(t *testing.T, engine *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestOrderHandlerCreate(t *testing.T) {
	t.Run("creates order", func(t *testing.T) {
		repo := new(MockOrderRepository)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*trade.Order")).Return(nil)
		engine := newOrderRouter(repo)

		w := postJSON(t, engine, "/api/v1/orders", orderPayload())

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := decodeResponse(t, w)
		require.True(t, resp.Success)

		data := resp.Data.(map[string]interface{})
		assert.NotEmpty(t, data["code"])
		assert.Equal(t, "pending", data["status"])
		assert.Equal(t, "unpaid", data["payment_status"])
		repo.AssertExpectations(t)
	})

	t.Run("missing client name rejected", func(t *testing.T) {
		engine := newOrderRouter(new(MockOrderRepository))

		payload := orderPayload()
		delete(payload, "client_name")
		w := postJSON(t, engine, "/api/v1/orders", payload)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty product list rejected", func(t *testing.T) {
		engine := newOrderRouter(new(MockOrderRepository))

		payload := orderPayload()
		payload["products"] = []map[string]interface{}{}
		w := postJSON(t, engine, "/api/v1/orders", payload)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrderHandlerUpdate(t *testing.T) {
	newOrder := func(t *testing.T) *trade.Order {
		t.Helper()
		order, err := trade.NewOrder(
			"CMD-TEST-0001",
			"Amira Ben Salah",
			"Sousse",
			"amira@example.tn",
			"+216 22 345 678",
			"12 avenue Habib Bourguiba",
			[]trade.OrderLine{{
				ProductID: uuid.New(),
				Name:      "Suspension dorée",
				Price:     decimal.RequireFromString("250.500"),
				Quantity:  1,
			}},
			decimal.RequireFromString("258.500"),
			decimal.RequireFromString("8.000"),
		)
		require.NoError(t, err)
		order.ClearDomainEvents()
		return order
	}

	t.Run("moves order to shipped", func(t *testing.T) {
		order := newOrder(t)
		repo := new(MockOrderRepository)
		repo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*trade.Order")).Return(nil)
		engine := newOrderRouter(repo)

		body := bytes.NewReader([]byte(`{"status":"shipped"}`))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/orders/"+order.ID.String(), body)
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		data := decodeResponse(t, w).Data.(map[string]interface{})
		assert.Equal(t, "shipped", data["status"])
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		order := newOrder(t)
		repo := new(MockOrderRepository)
		repo.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		engine := newOrderRouter(repo)

		body := bytes.NewReader([]byte(`{"status":"teleported"}`))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/orders/"+order.ID.String(), body)
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	})
}
