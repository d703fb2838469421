package integration

import (
	"context"
	"testing"

	"storefront/internal/model"
	"storefront/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewProductRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("GetAll returns seeded products", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		products, err := repo.GetAll(ctx, 10, 0)
		require.NoError(t, err)
		assert.Len(t, products, 5)
		assert.Equal(t, "Test Product 1", products[0].Name)
	})

	t.Run("GetAll with pagination", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedProducts(t, testDB.Pool)

		products, err := repo.GetAll(ctx, 2, 0)
		require.NoError(t, err)
		assert.Len(t, products, 2)

		products, err = repo.GetAll(ctx, 2, 2)
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("GetByID returns correct product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedProducts(t, testDB.Pool)

		product, err := repo.GetByID(ctx, ids[0])
		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, ids[0], product.ID)
		assert.Equal(t, "Test Product 1", product.Name)
		assert.Equal(t, 10.00, product.Price)
	})

	t.Run("GetByID returns nil for non-existent product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		product, err := repo.GetByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, product)
	})
}

func TestCartRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewCartRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("Repeated adds merge into one line", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedProducts(t, testDB.Pool)

		_, created, err := repo.UpsertIncrement(ctx, "user-1", ids[0], 1)
		require.NoError(t, err)
		assert.True(t, created)

		item, created, err := repo.UpsertIncrement(ctx, "user-1", ids[0], 4)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, 5, item.Quantity)

		items, err := repo.ListByUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})
}

func TestOrderRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)
	cartRepo := repository.NewCartRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("Order lines and cart clear commit together", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedProducts(t, testDB.Pool)

		_, _, err := cartRepo.UpsertIncrement(ctx, "user-1", ids[0], 2)
		require.NoError(t, err)

		lines := []model.Order{
			{UserID: "user-1", ProductID: ids[0], Name: "Test Product 1", Quantity: 2, Price: 10.00, Total: 20.00, Status: model.OrderStatusPending},
		}

		tx, err := orderRepo.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, orderRepo.CreateLines(ctx, tx, lines))
		require.NoError(t, cartRepo.DeleteAllByUser(ctx, tx, "user-1"))
		require.NoError(t, tx.Commit(ctx))

		orders, err := orderRepo.ListByUser(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, 20.00, orders[0].Total)

		items, err := cartRepo.ListByUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("Rollback leaves both tables untouched", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedProducts(t, testDB.Pool)

		_, _, err := cartRepo.UpsertIncrement(ctx, "user-1", ids[0], 2)
		require.NoError(t, err)

		lines := []model.Order{
			{UserID: "user-1", ProductID: ids[0], Name: "Test Product 1", Quantity: 2, Price: 10.00, Total: 20.00, Status: model.OrderStatusPending},
		}

		tx, err := orderRepo.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, orderRepo.CreateLines(ctx, tx, lines))
		require.NoError(t, cartRepo.DeleteAllByUser(ctx, tx, "user-1"))
		require.NoError(t, tx.Rollback(ctx))

		orders, err := orderRepo.ListByUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, orders)

		items, err := cartRepo.ListByUser(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})
}
