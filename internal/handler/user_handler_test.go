package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"restaurant-api/internal/model"
)

// MockUserService is a mock implementation of UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, req *model.UserRequest) (*model.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func TestUserHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockUserService)
	h := NewUserHandler(mockService, logger)

	created := &model.User{ID: uuid.New(), Email: "user@example.com", Name: "User"}
	mockService.On("Create", mock.Anything, mock.AnythingOfType("*model.UserRequest")).
		Return(created, nil)

	body := bytes.NewBufferString(`{"email": "user@example.com", "name": "User"}`)
	req := httptest.NewRequest(http.MethodPost, "/user", body)
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got model.User
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, created.ID, got.ID)
}

func TestUserHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockUserService)
	h := NewUserHandler(mockService, logger)

	users := []model.User{
		{ID: uuid.New(), Email: "a@example.com"},
		{ID: uuid.New(), Email: "b@example.com"},
	}
	mockService.On("List", mock.Anything).Return(users, nil)

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	w := httptest.NewRecorder()

	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []model.User
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Len(t, got, 2)
}
