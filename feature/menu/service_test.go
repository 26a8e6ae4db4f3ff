package menu_test

import (
	"context"
	"encoding/json"
	stdsync "sync"
	"testing"
	"time"

	"menu-manager/feature/menu"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// memStore is an in-memory cache.Store. It is mutex guarded because the
// invalidator deletes keys from background goroutines.
type memStore struct {
	mu      stdsync.Mutex
	entries map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{entries: map[string][]byte{}}
}

func (s *memStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (s *memStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = data
	return nil
}

func (s *memStore) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.entries, k)
	}
	return nil
}

func (s *memStore) DeleteByPattern(ctx context.Context, patterns ...string) error {
	return nil
}

func (s *memStore) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[key]
	return ok
}

func newTestService(t *testing.T) (*menu.Service, *memStore, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	store := newMemStore()
	feature := menu.NewFeature(db, store, zap.NewNop(), time.Minute)
	return feature.Service(), store, db
}

func TestService_ReadThroughCache(t *testing.T) {
	svc, store, db := newTestService(t)
	ctx := context.Background()

	m, err := svc.CreateMenu(ctx, "", "Drinks", "Desc")
	require.NoError(t, err)

	menus, err := svc.ListMenus(ctx)
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.True(t, store.has(menu.KeyMenus), "the list read populates the cache")

	// Bypass the service and change the row directly: a cached read must not
	// see it, proof that the second call was served from the cache.
	require.NoError(t, db.Exec("UPDATE menus SET title = ? WHERE id = ?", "Changed", m.ID).Error)

	menus, err = svc.ListMenus(ctx)
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, "Drinks", menus[0].Title)
}

func TestService_UpdateInvalidatesMenuKeys(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	m, err := svc.CreateMenu(ctx, "", "Drinks", "Desc")
	require.NoError(t, err)

	_, err = svc.ListMenus(ctx)
	require.NoError(t, err)
	_, err = svc.GetMenu(ctx, m.ID)
	require.NoError(t, err)
	require.True(t, store.has(menu.KeyMenus))
	require.True(t, store.has(menu.KeyMenu(m.ID)))

	_, err = svc.UpdateMenu(ctx, m.ID, "Beverages", "Desc")
	require.NoError(t, err)

	// Invalidation runs in the background.
	assert.Eventually(t, func() bool {
		return !store.has(menu.KeyMenus) && !store.has(menu.KeyMenu(m.ID))
	}, time.Second, 10*time.Millisecond)

	menus, err := svc.ListMenus(ctx)
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, "Beverages", menus[0].Title)
}

func TestService_DishDiscountOverlay(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	m, err := svc.CreateMenu(ctx, "", "Drinks", "Desc")
	require.NoError(t, err)
	s, err := svc.CreateSubmenu(ctx, m.ID, "", "Coffee", "Desc")
	require.NoError(t, err)
	d, err := svc.CreateDish(ctx, m.ID, s.ID, "", "Latte", "Desc", decimal.RequireFromString("10.00"))
	require.NoError(t, err)

	view, err := svc.GetDish(ctx, m.ID, s.ID, d.ID)
	require.NoError(t, err)
	assert.Nil(t, view.Discount, "no overlay entry means no discount")

	require.NoError(t, store.Set(ctx, menu.KeyDiscount(d.ID), decimal.RequireFromString("7.50"), 0))

	view, err = svc.GetDish(ctx, m.ID, s.ID, d.ID)
	require.NoError(t, err)
	require.NotNil(t, view.Discount)
	assert.True(t, view.Discount.Equal(decimal.RequireFromString("7.50")))
	assert.True(t, view.Price.Equal(decimal.RequireFromString("10.00")),
		"the stored price stays pre-discount")
}

func TestService_DishDiscountNormalized(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	m, err := svc.CreateMenu(ctx, "", "Drinks", "Desc")
	require.NoError(t, err)
	s, err := svc.CreateSubmenu(ctx, m.ID, "", "Coffee", "Desc")
	require.NoError(t, err)
	d, err := svc.CreateDish(ctx, m.ID, s.ID, "", "Latte", "Desc", decimal.RequireFromString("10.00"))
	require.NoError(t, err)

	// Overlay entry equal to the raw price is a leftover from before a price
	// change and must read as no discount.
	require.NoError(t, store.Set(ctx, menu.KeyDiscount(d.ID), decimal.RequireFromString("10.00"), 0))

	views, err := svc.ListDishes(ctx, m.ID, s.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Nil(t, views[0].Discount)
}

func TestService_NotFoundPassesThrough(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	missing := "00000000-0000-0000-0000-000000000000"

	_, err := svc.GetMenu(ctx, missing)
	assert.ErrorIs(t, err, menu.ErrMenuNotFound)

	err = svc.DeleteDish(ctx, missing, missing, missing)
	assert.ErrorIs(t, err, menu.ErrDishNotFound)
}

func TestCatalog_CreatePreservesIDs(t *testing.T) {
	svc, _, _ := newTestService(t)
	catalog := menu.NewCatalog(svc)
	ctx := context.Background()

	menuID := "7f59f0a0-db4a-4b8f-9c99-056e8b9a2a01"
	submenuID := "8a6aa0b1-ec5b-4c90-ad00-167f9c0b3b02"
	dishID := "9b7bb1c2-fd6c-4da1-be11-27809d1c4c03"

	require.NoError(t, catalog.CreateMenu(ctx, menuID, "Drinks", "Desc"))
	require.NoError(t, catalog.CreateSubmenu(ctx, menuID, submenuID, "Coffee", "Desc"))
	require.NoError(t, catalog.CreateDish(ctx, menuID, submenuID, dishID,
		"Latte", "Desc", decimal.RequireFromString("4.50")))

	trees, err := catalog.FullHierarchy(ctx)
	require.NoError(t, err)
	require.Len(t, trees, 1)
	assert.Equal(t, menuID, trees[0].ID)
	require.Len(t, trees[0].Submenus, 1)
	assert.Equal(t, submenuID, trees[0].Submenus[0].ID)
	require.Len(t, trees[0].Submenus[0].Dishes, 1)
	assert.Equal(t, dishID, trees[0].Submenus[0].Dishes[0].ID)
}
