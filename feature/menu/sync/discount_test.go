package sync

import (
	"context"
	"testing"

	"menu-manager/feature/menu"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOverlay_Apply(t *testing.T) {
	store := newMemStore()
	overlay := NewOverlay(store, 0, zap.NewNop())
	ctx := context.Background()

	discounted := decimal.RequireFromString("7.50")
	require.NoError(t, store.Set(ctx, menu.KeyDiscount("with-discount"), discounted, 0))
	require.NoError(t, store.Set(ctx, menu.KeyDiscount("stale"), decimal.RequireFromString("10.00"), 0))

	dishes := []DishRecord{
		{ID: "with-discount", Price: decimal.RequireFromString("10.00")},
		{ID: "stale", Price: decimal.RequireFromString("10.00")},
		{ID: "no-entry", Price: decimal.RequireFromString("10.00")},
	}

	overlay.Apply(ctx, dishes)

	require.NotNil(t, dishes[0].Discount)
	assert.True(t, dishes[0].Discount.Equal(discounted))

	// Cached price equal to the raw price means the entry outlived a price
	// change and must not surface as a discount.
	assert.Nil(t, dishes[1].Discount)
	assert.Nil(t, dishes[2].Discount)
}

func TestOverlay_Refresh(t *testing.T) {
	store := newMemStore()
	overlay := NewOverlay(store, 0, zap.NewNop())
	ctx := context.Background()

	discounted := decimal.RequireFromString("15.00")
	overlay.Refresh(ctx, DishRecord{
		ID: "discounted", Price: decimal.RequireFromString("20.00"), Discount: &discounted,
	})
	overlay.Refresh(ctx, DishRecord{
		ID: "plain", Price: decimal.RequireFromString("20.00"),
	})

	var got decimal.Decimal
	hit, err := store.Get(ctx, menu.KeyDiscount("discounted"), &got)
	require.NoError(t, err)
	require.True(t, hit)
	assert.True(t, got.Equal(discounted))

	hit, err = store.Get(ctx, menu.KeyDiscount("plain"), &got)
	require.NoError(t, err)
	assert.False(t, hit, "a nil discount must not write an overlay entry")
}
