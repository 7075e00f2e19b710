package seed

import (
	"context"
	"testing"

	"github.com/auchan-scraper/auchan/storage"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducts_Deterministic(t *testing.T) {
	a := Products(5, gofakeit.New(42))
	b := Products(5, gofakeit.New(42))

	require.Len(t, a, 5)
	assert.Equal(t, a, b)

	for _, p := range a {
		assert.True(t, p.ProductName.Valid)
		assert.Contains(t, categories, p.CategoryName.String)
		assert.Contains(t, currencies, p.Currency.String)
		assert.Contains(t, units, p.Unit.String)
		assert.GreaterOrEqual(t, p.Price.Int64, int64(500))
		assert.GreaterOrEqual(t, p.PackageSize.Int64, int64(1))
	}
}

func TestRun_InsertsNRows(t *testing.T) {
	store, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)

	ctx := context.Background()
	require.NoError(t, store.Initialize(ctx))

	n, err := Run(ctx, store, 12, gofakeit.New(7))
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	products, err := store.SelectAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 12)
	assert.Equal(t, int64(1), products[0].ProductID)
	assert.Equal(t, int64(12), products[11].ProductID)
}

func TestRun_WithoutTableFails(t *testing.T) {
	store, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)

	_, err = Run(context.Background(), store, 1, gofakeit.New(1))
	assert.ErrorContains(t, err, "no such table")
}
