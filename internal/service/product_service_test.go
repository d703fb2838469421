package service

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context, limit, offset int) ([]model.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, id int64, req *model.ProductRequest) (*model.Product, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) CreateBatch(ctx context.Context, products []model.Product) (int, error) {
	args := m.Called(ctx, products)
	return args.Int(0), args.Error(1)
}

func TestProductService_GetAll_ClampsPagination(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	repo := new(MockProductRepository)
	repo.On("GetAll", ctx, 20, 0).Return([]model.Product{}, nil)

	svc := NewProductService(repo, logger)

	_, err := svc.GetAll(ctx, -5, -3)
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestProductService_GetFeatured(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	products := []model.Product{{ID: 1, Name: "Mug"}, {ID: 2, Name: "Lamp"}}

	repo := new(MockProductRepository)
	repo.On("GetAll", ctx, 8, 0).Return(products, nil)

	svc := NewProductService(repo, logger)

	got, err := svc.GetFeatured(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	repo := new(MockProductRepository)
	repo.On("GetByID", ctx, int64(42)).Return(nil, nil)

	svc := NewProductService(repo, logger)

	_, err := svc.GetByID(ctx, 42)
	assert.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestProductService_Create_Validation(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name string
		req  *model.ProductRequest
	}{
		{"nil request", nil},
		{"missing name", &model.ProductRequest{Price: 10}},
		{"negative price", &model.ProductRequest{Name: "Mug", Price: -1}},
		{"rating out of range", &model.ProductRequest{Name: "Mug", Price: 10, Rating: 6}},
		{"negative review count", &model.ProductRequest{Name: "Mug", Price: 10, ReviewCount: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockProductRepository)
			svc := NewProductService(repo, logger)

			_, err := svc.Create(ctx, tt.req)
			assert.Error(t, err)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestProductService_Create_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := &model.ProductRequest{Name: "Mug", Price: 12.50, Category: "kitchen", Rating: 4.8}
	stored := &model.Product{ID: 3, Name: "Mug", Price: 12.50, Category: "kitchen", Rating: 4.8}

	repo := new(MockProductRepository)
	repo.On("Create", ctx, req).Return(stored, nil)

	svc := NewProductService(repo, logger)

	product, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(3), product.ID)
}

func TestProductService_Update_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := &model.ProductRequest{Name: "Mug", Price: 12.50}

	repo := new(MockProductRepository)
	repo.On("Update", ctx, int64(42), req).Return(nil, nil)

	svc := NewProductService(repo, logger)

	_, err := svc.Update(ctx, 42, req)
	assert.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestProductService_Delete(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	repo := new(MockProductRepository)
	repo.On("Delete", ctx, int64(3)).Return(true, nil)
	repo.On("Delete", ctx, int64(42)).Return(false, nil)

	svc := NewProductService(repo, logger)

	assert.NoError(t, svc.Delete(ctx, 3))
	assert.ErrorIs(t, svc.Delete(ctx, 42), model.ErrProductNotFound)
}

func TestProductService_GetAll_RepositoryError(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	repo := new(MockProductRepository)
	repo.On("GetAll", ctx, 20, 0).Return(nil, errors.New("connection refused"))

	svc := NewProductService(repo, logger)

	_, err := svc.GetAll(ctx, 0, 0)
	assert.Error(t, err)
}
