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

// MockFavoriteRepository is a mock implementation of FavoriteRepository.
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) ListByUser(ctx context.Context, userID string) ([]model.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) GetByID(ctx context.Context, id int64) (*model.Favorite, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) GetByUserProduct(ctx context.Context, userID string, productID int64) (*model.Favorite, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) Upsert(ctx context.Context, fav *model.Favorite) (*model.Favorite, bool, error) {
	args := m.Called(ctx, fav)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.Favorite), args.Bool(1), args.Error(2)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestFavoriteService_Add_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := &model.AddFavoriteRequest{ProductID: 5, Name: "Cable", ImageURL: "/images/cable.jpg", Price: 19.99}
	stored := &model.Favorite{ID: 1, UserID: "u1", ProductID: 5, Name: "Cable", Price: 19.99}

	repo := new(MockFavoriteRepository)
	repo.On("Upsert", ctx, mock.MatchedBy(func(f *model.Favorite) bool {
		return f.UserID == "u1" && f.ProductID == 5 && f.Name == "Cable"
	})).Return(stored, true, nil)

	svc := NewFavoriteService(repo, logger)

	fav, err := svc.Add(ctx, "u1", req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), fav.ID)

	repo.AssertExpectations(t)
}

func TestFavoriteService_Add_RepeatedAddIsIdempotent(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	req := &model.AddFavoriteRequest{ProductID: 5, Name: "Cable", Price: 19.99}
	existing := &model.Favorite{ID: 1, UserID: "u1", ProductID: 5, Name: "Cable", Price: 19.99}

	repo := new(MockFavoriteRepository)
	repo.On("Upsert", ctx, mock.Anything).Return(existing, false, nil)

	svc := NewFavoriteService(repo, logger)

	fav, err := svc.Add(ctx, "u1", req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), fav.ID)
}

func TestFavoriteService_Add_Validation(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	svc := NewFavoriteService(new(MockFavoriteRepository), logger)

	_, err := svc.Add(ctx, "u1", &model.AddFavoriteRequest{})
	assert.Error(t, err)

	_, err = svc.Add(ctx, "u1", &model.AddFavoriteRequest{ProductID: 5, Price: -1})
	assert.ErrorIs(t, err, model.ErrInvalidPrice)
}

func TestFavoriteService_RemoveByID_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	existing := &model.Favorite{ID: 3, UserID: "u1", ProductID: 5}

	repo := new(MockFavoriteRepository)
	repo.On("GetByID", ctx, int64(3)).Return(existing, nil)
	repo.On("Delete", ctx, int64(3)).Return(true, nil)

	svc := NewFavoriteService(repo, logger)

	deleted, err := svc.RemoveByID(ctx, "u1", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted.ID)
}

func TestFavoriteService_RemoveByID_NotOwned(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	existing := &model.Favorite{ID: 3, UserID: "someone-else", ProductID: 5}

	repo := new(MockFavoriteRepository)
	repo.On("GetByID", ctx, int64(3)).Return(existing, nil)

	svc := NewFavoriteService(repo, logger)

	_, err := svc.RemoveByID(ctx, "u1", 3)
	assert.ErrorIs(t, err, model.ErrFavoriteNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestFavoriteService_RemoveByID_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	repo := new(MockFavoriteRepository)
	repo.On("GetByID", ctx, int64(3)).Return(nil, nil)

	svc := NewFavoriteService(repo, logger)

	_, err := svc.RemoveByID(ctx, "u1", 3)
	assert.ErrorIs(t, err, model.ErrFavoriteNotFound)
}

func TestFavoriteService_RemoveByProduct_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	existing := &model.Favorite{ID: 3, UserID: "u1", ProductID: 5}

	repo := new(MockFavoriteRepository)
	repo.On("GetByUserProduct", ctx, "u1", int64(5)).Return(existing, nil)
	repo.On("Delete", ctx, int64(3)).Return(true, nil)

	svc := NewFavoriteService(repo, logger)

	deleted, err := svc.RemoveByProduct(ctx, "u1", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted.ID)
}

func TestFavoriteService_RemoveByProduct_NotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	repo := new(MockFavoriteRepository)
	repo.On("GetByUserProduct", ctx, "u1", int64(5)).Return(nil, nil)

	svc := NewFavoriteService(repo, logger)

	_, err := svc.RemoveByProduct(ctx, "u1", 5)
	assert.ErrorIs(t, err, model.ErrFavoriteNotFound)
}

func TestFavoriteService_List_Success(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	favorites := []model.Favorite{
		{ID: 2, UserID: "u1", ProductID: 9},
		{ID: 1, UserID: "u1", ProductID: 5},
	}

	repo := new(MockFavoriteRepository)
	repo.On("ListByUser", ctx, "u1").Return(favorites, nil)

	svc := NewFavoriteService(repo, logger)

	got, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestFavoriteService_List_RepositoryError(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	repo := new(MockFavoriteRepository)
	repo.On("ListByUser", ctx, "u1").Return(nil, errors.New("connection refused"))

	svc := NewFavoriteService(repo, logger)

	_, err := svc.List(ctx, "u1")
	assert.Error(t, err)
}
