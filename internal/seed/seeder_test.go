package seed

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

// MockLoader is a mock implementation of Loader.
type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) Load(ctx context.Context, source string) ([]model.Product, error) {
	args := m.Called(ctx, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

// MockProductRepository is a mock implementation of repository.ProductRepository.
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

func TestSeeder_Run_Success(t *testing.T) {
	logger := zerolog.Nop()

	products := []model.Product{
		{ID: 1, Name: "Espresso Mug", Price: 12.50},
		{ID: 2, Name: "Desk Lamp", Price: 45.00},
	}

	loader := new(MockLoader)
	loader.On("Load", mock.Anything, "seed/products.jsonl.gz").Return(products, nil)

	repo := new(MockProductRepository)
	repo.On("CreateBatch", mock.Anything, products).Return(2, nil)

	seeder := NewSeeder(loader, repo, "seed/products.jsonl.gz", logger)
	inserted, err := seeder.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, inserted)
	loader.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestSeeder_Run_SkipsExistingRows(t *testing.T) {
	logger := zerolog.Nop()

	products := []model.Product{
		{ID: 1, Name: "Espresso Mug", Price: 12.50},
		{ID: 2, Name: "Desk Lamp", Price: 45.00},
	}

	loader := new(MockLoader)
	loader.On("Load", mock.Anything, "seed/products.jsonl.gz").Return(products, nil)

	// One of the rows already exists, so only one insert lands.
	repo := new(MockProductRepository)
	repo.On("CreateBatch", mock.Anything, products).Return(1, nil)

	seeder := NewSeeder(loader, repo, "seed/products.jsonl.gz", logger)
	inserted, err := seeder.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
}

func TestSeeder_Run_LoadFailure(t *testing.T) {
	logger := zerolog.Nop()

	loader := new(MockLoader)
	loader.On("Load", mock.Anything, "seed/missing.jsonl.gz").Return(nil, errors.New("no such file"))

	repo := new(MockProductRepository)

	seeder := NewSeeder(loader, repo, "seed/missing.jsonl.gz", logger)
	inserted, err := seeder.Run(context.Background())

	require.Error(t, err)
	assert.Zero(t, inserted)
	repo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestSeeder_Run_InsertFailure(t *testing.T) {
	logger := zerolog.Nop()

	products := []model.Product{{ID: 1, Name: "Espresso Mug", Price: 12.50}}

	loader := new(MockLoader)
	loader.On("Load", mock.Anything, "seed/products.jsonl.gz").Return(products, nil)

	repo := new(MockProductRepository)
	repo.On("CreateBatch", mock.Anything, products).Return(0, errors.New("database error"))

	seeder := NewSeeder(loader, repo, "seed/products.jsonl.gz", logger)
	_, err := seeder.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert seed products")
}
