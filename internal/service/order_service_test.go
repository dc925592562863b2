package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"restaurant-api/internal/model"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) List(ctx context.Context, orderedBy string) ([]model.Order, error) {
	args := m.Called(ctx, orderedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) (model.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.DeleteResult), args.Error(1)
}

func (m *MockOrderRepository) TopSelling(ctx context.Context, limit int) ([]model.TopSellingItem, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TopSellingItem), args.Error(1)
}

func TestOrderService_Place(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Stores the order with a generated identifier", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, logger)

		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
			return o.ID != uuid.Nil && o.FoodID == "food-123" && o.Quantity == 3
		})).Return(nil)

		order, err := svc.Place(ctx, &model.OrderRequest{
			FoodID:    "food-123",
			Quantity:  3,
			OrderedBy: "user@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", order.OrderedBy)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown food reference is accepted", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, logger)

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		order, err := svc.Place(ctx, &model.OrderRequest{FoodID: "no-such-item", Quantity: 1})
		require.NoError(t, err)
		assert.Equal(t, "no-such-item", order.FoodID)
	})
}

func TestOrderService_List(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	testOrders := []model.Order{
		{ID: uuid.New(), FoodID: "A", Quantity: 5, OrderedBy: "user@example.com"},
		{ID: uuid.New(), FoodID: "B", Quantity: 2, OrderedBy: "user@example.com"},
	}

	t.Run("Filter matching caller is allowed", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, logger)

		mockRepo.On("List", mock.Anything, "user@example.com").Return(testOrders, nil)

		orders, err := svc.List(ctx, "user@example.com", "user@example.com")
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("Absent filter returns the full ledger", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, logger)

		mockRepo.On("List", mock.Anything, "").Return(testOrders, nil)

		orders, err := svc.List(ctx, "user@example.com", "")
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("Mismatched filter is forbidden before touching the store", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, logger)

		orders, err := svc.List(ctx, "user@example.com", "other@example.com")
		assert.Nil(t, orders)
		assert.ErrorIs(t, err, model.ErrForbidden)
		mockRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestOrderService_Delete(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	id := uuid.New()

	t.Run("Reports the deleted count", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, logger)

		mockRepo.On("Delete", mock.Anything, id).Return(model.DeleteResult{DeletedCount: 1}, nil)

		result, err := svc.Delete(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.DeletedCount)
	})

	t.Run("Unknown identifier is a zero-count success", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, logger)

		mockRepo.On("Delete", mock.Anything, id).Return(model.DeleteResult{}, nil)

		result, err := svc.Delete(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(0), result.DeletedCount)
	})
}

func TestOrderService_TopSelling(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Defaults to a limit of six", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, logger)

		mockRepo.On("TopSelling", mock.Anything, 6).Return([]model.TopSellingItem{}, nil)

		_, err := svc.TopSelling(ctx, 0)
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Explicit limit is forwarded", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, logger)

		want := []model.TopSellingItem{{FoodID: "A", TotalOrders: 5}}
		mockRepo.On("TopSelling", mock.Anything, 1).Return(want, nil)

		items, err := svc.TopSelling(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, want, items)
	})

	t.Run("Propagates repository error", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		svc := NewOrderService(mockRepo, logger)

		mockRepo.On("TopSelling", mock.Anything, 6).Return(nil, errors.New("database error"))

		items, err := svc.TopSelling(ctx, 0)
		assert.Error(t, err)
		assert.Nil(t, items)
	})
}
