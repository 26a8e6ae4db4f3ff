package menu_test

import (
	"testing"
	"time"

	"menu-manager/core/cache/mocks"
	"menu-manager/feature/menu"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const (
	invMenuID    = "7f59f0a0-db4a-4b8f-9c99-056e8b9a2a01"
	invSubmenuID = "8a6aa0b1-ec5b-4c90-ad00-167f9c0b3b02"
	invDishID    = "9b7bb1c2-fd6c-4da1-be11-27809d1c4c03"
)

// await fails the test unless every channel closes within a second. The
// invalidator works from background goroutines, so assertions must wait for
// the mock calls to land.
func await(t *testing.T, chans ...chan struct{}) {
	t.Helper()
	for _, ch := range chans {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatal("invalidation call did not happen")
		}
	}
}

func signal(ch chan struct{}) func(mock.Arguments) {
	return func(mock.Arguments) { close(ch) }
}

func TestInvalidator_MenuCreated(t *testing.T) {
	store := new(mocks.Store)
	done := make(chan struct{})
	store.On("Delete", mock.Anything, menu.KeyMenus, menu.KeyFullHierarchy).
		Run(signal(done)).Return(nil)

	menu.NewInvalidator(store, zap.NewNop()).MenuCreated()

	await(t, done)
	store.AssertExpectations(t)
}

func TestInvalidator_MenuDeleted(t *testing.T) {
	store := new(mocks.Store)
	deleted := make(chan struct{})
	swept := make(chan struct{})

	store.On("Delete", mock.Anything,
		menu.KeyMenus, menu.KeyFullHierarchy, menu.KeySubmenus(invMenuID)).
		Run(signal(deleted)).Return(nil)
	// Detail keys under the menu path are swept by pattern, dish lists by
	// their menu-scoped prefix.
	store.On("DeleteByPattern", mock.Anything,
		menu.KeyMenu(invMenuID)+"*", "get_dishes:"+invMenuID+":*").
		Run(signal(swept)).Return(nil)

	menu.NewInvalidator(store, zap.NewNop()).MenuDeleted(invMenuID)

	await(t, deleted, swept)
	store.AssertExpectations(t)
}

func TestInvalidator_DishDeleted(t *testing.T) {
	store := new(mocks.Store)
	done := make(chan struct{})

	store.On("Delete", mock.Anything,
		menu.KeyMenus,
		menu.KeyFullHierarchy,
		menu.KeyMenu(invMenuID),
		menu.KeySubmenus(invMenuID),
		menu.KeySubmenu(invMenuID, invSubmenuID),
		menu.KeyDishes(invMenuID, invSubmenuID),
		menu.KeyDish(invMenuID, invSubmenuID, invDishID),
		menu.KeyDiscount(invDishID)).
		Run(signal(done)).Return(nil)

	menu.NewInvalidator(store, zap.NewNop()).DishDeleted(invMenuID, invSubmenuID, invDishID)

	await(t, done)
	store.AssertExpectations(t)
}

func TestInvalidator_SubmenuUpdated(t *testing.T) {
	store := new(mocks.Store)
	done := make(chan struct{})

	store.On("Delete", mock.Anything,
		menu.KeyFullHierarchy,
		menu.KeySubmenus(invMenuID),
		menu.KeySubmenu(invMenuID, invSubmenuID)).
		Run(signal(done)).Return(nil)

	menu.NewInvalidator(store, zap.NewNop()).SubmenuUpdated(invMenuID, invSubmenuID)

	await(t, done)
	store.AssertExpectations(t)
}
