package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"restaurant-api/internal/model"
)

// MockFoodRepository is a mock of the food repository for seed tests.
type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) Create(ctx context.Context, food *model.Food) error {
	args := m.Called(ctx, food)
	return args.Error(0)
}

func (m *MockFoodRepository) CreateBatch(ctx context.Context, foods []model.Food) error {
	args := m.Called(ctx, foods)
	return args.Error(0)
}

func (m *MockFoodRepository) List(ctx context.Context, ownerEmail string) ([]model.Food, error) {
	args := m.Called(ctx, ownerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Food), args.Error(1)
}

func (m *MockFoodRepository) ListAll(ctx context.Context, limit, offset int) ([]model.Food, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Food), args.Error(1)
}

func (m *MockFoodRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Food, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Food), args.Error(1)
}

func (m *MockFoodRepository) Replace(ctx context.Context, food *model.Food) (model.UpdateResult, error) {
	args := m.Called(ctx, food)
	return args.Get(0).(model.UpdateResult), args.Error(1)
}

func (m *MockFoodRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) (model.UpdateResult, error) {
	args := m.Called(ctx, id, quantity)
	return args.Get(0).(model.UpdateResult), args.Error(1)
}

func (m *MockFoodRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// stubLoader returns canned items or an error without touching any source.
type stubLoader struct {
	items []model.FoodRequest
	err   error
}

func (s *stubLoader) Load(ctx context.Context, location string) ([]model.FoodRequest, error) {
	return s.items, s.err
}

func TestApply(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Seeds an empty catalogue", func(t *testing.T) {
		repo := new(MockFoodRepository)
		repo.On("Count", ctx).Return(int64(0), nil)
		repo.On("CreateBatch", ctx, mock.MatchedBy(func(foods []model.Food) bool {
			if len(foods) != 2 {
				return false
			}
			for _, f := range foods {
				if f.ID == uuid.Nil || f.CreatedAt.IsZero() {
					return false
				}
			}
			return foods[0].Name == "Pad Thai" && foods[1].Quantity == 20
		})).Return(nil)

		loader := &stubLoader{items: []model.FoodRequest{
			{Name: "Pad Thai", Category: "Noodles", Price: 10.25, Quantity: 35},
			{Name: "Beef Pho", Category: "Soup", Price: 13.00, Quantity: 20},
		}}

		err := Apply(ctx, repo, loader, "data/foods.json", logger)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Skips seeding when the catalogue has items", func(t *testing.T) {
		repo := new(MockFoodRepository)
		repo.On("Count", ctx).Return(int64(12), nil)

		err := Apply(ctx, repo, &stubLoader{}, "data/foods.json", logger)

		assert.NoError(t, err)
		repo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})

	t.Run("Empty seed inserts nothing", func(t *testing.T) {
		repo := new(MockFoodRepository)
		repo.On("Count", ctx).Return(int64(0), nil)

		err := Apply(ctx, repo, &stubLoader{items: []model.FoodRequest{}}, "data/foods.json", logger)

		assert.NoError(t, err)
		repo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})

	t.Run("Loader failure is propagated", func(t *testing.T) {
		repo := new(MockFoodRepository)
		repo.On("Count", ctx).Return(int64(0), nil)

		err := Apply(ctx, repo, &stubLoader{err: errors.New("object not found")}, "s3://menu/foods.json", logger)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load seed")
	})

	t.Run("Count failure is propagated", func(t *testing.T) {
		repo := new(MockFoodRepository)
		repo.On("Count", ctx).Return(int64(0), errors.New("connection refused"))

		err := Apply(ctx, repo, &stubLoader{}, "data/foods.json", logger)

		assert.Error(t, err)
	})
}
