package repository

import (
	"context"
	"testing"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCartRepository_UpsertIncrement_MergesLines(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewCartRepository(pool, logger)
	ctx := context.Background()

	ids := seedProducts(t, pool, []model.Product{
		{Name: "Espresso Mug", Price: 12.50, Category: "kitchen"},
	})
	productID := ids[0]

	first, created, err := repo.UpsertIncrement(ctx, "u1", productID, 2)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.True(t, created)
	assert.Equal(t, 2, first.Quantity)

	second, created, err := repo.UpsertIncrement(ctx, "u1", productID, 3)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	items, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCartRepository_UpsertIncrement_SeparatePerUser(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewCartRepository(pool, logger)
	ctx := context.Background()

	ids := seedProducts(t, pool, []model.Product{
		{Name: "Espresso Mug", Price: 12.50, Category: "kitchen"},
	})

	_, _, err := repo.UpsertIncrement(ctx, "u1", ids[0], 1)
	require.NoError(t, err)
	_, _, err = repo.UpsertIncrement(ctx, "u2", ids[0], 1)
	require.NoError(t, err)

	u1Items, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	u2Items, err := repo.ListByUser(ctx, "u2")
	require.NoError(t, err)

	assert.Len(t, u1Items, 1)
	assert.Len(t, u2Items, 1)
	assert.NotEqual(t, u1Items[0].ID, u2Items[0].ID)
}

// Concurrent adds of the same product must land on a single line whose
// quantity is the sum of all adds.
func TestCartRepository_UpsertIncrement_Concurrent(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewCartRepository(pool, logger)
	ctx := context.Background()

	ids := seedProducts(t, pool, []model.Product{
		{Name: "Espresso Mug", Price: 12.50, Category: "kitchen"},
	})
	productID := ids[0]

	const workers = 20

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			_, _, err := repo.UpsertIncrement(gctx, "u1", productID, 1)
			return err
		})
	}
	require.NoError(t, g.Wait())

	items, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, workers, items[0].Quantity)
}

func TestCartRepository_UpdateQuantity(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewCartRepository(pool, logger)
	ctx := context.Background()

	ids := seedProducts(t, pool, []model.Product{
		{Name: "Espresso Mug", Price: 12.50, Category: "kitchen"},
	})

	item, _, err := repo.UpsertIncrement(ctx, "u1", ids[0], 1)
	require.NoError(t, err)

	updated, err := repo.UpdateQuantity(ctx, item.ID, 7)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 7, updated.Quantity)

	missing, err := repo.UpdateQuantity(ctx, 999999, 3)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCartRepository_Delete(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewCartRepository(pool, logger)
	ctx := context.Background()

	ids := seedProducts(t, pool, []model.Product{
		{Name: "Espresso Mug", Price: 12.50, Category: "kitchen"},
	})

	item, _, err := repo.UpsertIncrement(ctx, "u1", ids[0], 1)
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	got, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCartRepository_DeleteAllByUser(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewCartRepository(pool, logger)
	ctx := context.Background()

	ids := seedProducts(t, pool, []model.Product{
		{Name: "Espresso Mug", Price: 12.50, Category: "kitchen"},
		{Name: "Desk Lamp", Price: 45.00, Category: "office"},
	})

	for _, productID := range ids {
		_, _, err := repo.UpsertIncrement(ctx, "u1", productID, 1)
		require.NoError(t, err)
	}
	_, _, err := repo.UpsertIncrement(ctx, "u2", ids[0], 1)
	require.NoError(t, err)

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.DeleteAllByUser(ctx, tx, "u1"))
	require.NoError(t, tx.Commit(ctx))

	u1Items, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, u1Items)

	// Other users' carts are untouched.
	u2Items, err := repo.ListByUser(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, u2Items, 1)
}
