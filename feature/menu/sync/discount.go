package sync

import (
	"context"
	"time"

	"menu-manager/core/cache"
	"menu-manager/feature/menu"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Overlay reads and writes the per-dish discounted price entries in the
// cache. Discounted prices never touch the relational store; this overlay is
// their only home.
type Overlay struct {
	store  cache.Store
	ttl    time.Duration
	logger *zap.Logger
}

// NewOverlay creates a discount overlay. A zero ttl keeps entries until they
// are explicitly superseded; anything shorter than the sync interval would
// make discounts flicker between passes.
func NewOverlay(store cache.Store, ttl time.Duration, logger *zap.Logger) *Overlay {
	return &Overlay{store: store, ttl: ttl, logger: logger}
}

// Apply fills in the Discount field of online dish records from the cache.
// A cached price equal to the raw price is normalized to no discount, which
// keeps an overlay entry that survived a price change from reporting a
// phantom discount. Read failures leave the record undiscounted.
func (o *Overlay) Apply(ctx context.Context, dishes []DishRecord) {
	for i := range dishes {
		var discounted decimal.Decimal
		hit, err := o.store.Get(ctx, menu.KeyDiscount(dishes[i].ID), &discounted)
		if err != nil {
			o.logger.Warn("discount read failed",
				zap.String("dish_id", dishes[i].ID), zap.Error(err))
			continue
		}
		if !hit || discounted.Equal(dishes[i].Price) {
			continue
		}
		dishes[i].Discount = &discounted
	}
}

// Refresh writes the dish's discounted price after a create or update. A nil
// discount writes nothing; stale entries are left for normalization in Apply
// rather than deleted here.
func (o *Overlay) Refresh(ctx context.Context, dish DishRecord) {
	if dish.Discount == nil {
		return
	}
	if err := o.store.Set(ctx, menu.KeyDiscount(dish.ID), *dish.Discount, o.ttl); err != nil {
		o.logger.Warn("discount write failed",
			zap.String("dish_id", dish.ID), zap.Error(err))
	}
}
