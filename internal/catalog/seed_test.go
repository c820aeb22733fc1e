package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedService_ListAndGet(t *testing.T) {
	svc := NewSeedService()
	ctx := context.Background()

	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, products)

	t.Run("GetKnownProduct", func(t *testing.T) {
		p, err := svc.GetProduct(ctx, "saree1")
		require.NoError(t, err)
		assert.Equal(t, "Embroidered Silk Saree", p.Name)
		assert.Equal(t, 15000, p.Price)
		assert.NotEmpty(t, p.FirstImage())
	})

	t.Run("GetUnknownProduct", func(t *testing.T) {
		_, err := svc.GetProduct(ctx, "ghost")
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestSeedService_FilterProducts(t *testing.T) {
	svc := NewSeedService()
	ctx := context.Background()

	t.Run("ByPriceRange", func(t *testing.T) {
		products, err := svc.FilterProducts(ctx, Criteria{MinPrice: 40000, MaxPrice: 50000})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "lehenga1", products[0].ID)
	})

	t.Run("ByMinimumPriceOnly", func(t *testing.T) {
		products, err := svc.FilterProducts(ctx, Criteria{MinPrice: 40000})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "lehenga1", products[0].ID)
	})

	t.Run("ByMaximumPriceOnly", func(t *testing.T) {
		products, err := svc.FilterProducts(ctx, Criteria{MaxPrice: 10000})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "kaftan2", products[0].ID)
	})

	t.Run("ByColor", func(t *testing.T) {
		products, err := svc.FilterProducts(ctx, Criteria{Colors: []string{"silver"}})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "cape1", products[0].ID)
	})

	t.Run("ByProductType", func(t *testing.T) {
		products, err := svc.FilterProducts(ctx, Criteria{ProductTypes: []string{"saree"}})
		require.NoError(t, err)
		assert.Len(t, products, 3)
	})

	t.Run("NoMatch", func(t *testing.T) {
		products, err := svc.FilterProducts(ctx, Criteria{Colors: []string{"chartreuse"}})
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestSeedService_GetFilterOptions(t *testing.T) {
	svc := NewSeedService()

	opts, err := svc.GetFilterOptions(context.Background())
	require.NoError(t, err)

	assert.Contains(t, opts.Colors, "gold")
	assert.Contains(t, opts.ProductTypes, "Saree")
	assert.Equal(t, 9500, opts.PriceRange.Min)
	assert.Equal(t, 45000, opts.PriceRange.Max)
}

func TestSeedService_Collections(t *testing.T) {
	svc := NewSeedService()

	t.Run("Featured", func(t *testing.T) {
		for _, p := range svc.FeaturedProducts() {
			assert.True(t, p.IsNew || p.IsSale)
		}
		assert.NotEmpty(t, svc.FeaturedProducts())
	})

	t.Run("ByCategory", func(t *testing.T) {
		sarees := svc.ProductsByCategory("Saree")
		assert.Len(t, sarees, 3)
		assert.Empty(t, svc.ProductsByCategory("Sherwani"))
	})

	t.Run("Related", func(t *testing.T) {
		related := svc.RelatedProducts("saree1", "Saree")
		assert.Len(t, related, 2)
		for _, p := range related {
			assert.NotEqual(t, "saree1", p.ID)
		}
	})
}
