package menu

import (
	"context"
	"time"

	"menu-manager/core/cache"
	"menu-manager/feature/menu/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service layers a read-through cache over the repository. Reads try the
// cache first and fall back to the database under singleflight, so a cold
// key costs one query no matter how many requests race on it. Writes go to
// the database and then kick off background invalidation.
type Service struct {
	repo        *Repository
	store       cache.Store
	invalidator *Invalidator
	logger      *zap.Logger
	ttl         time.Duration
	group       singleflight.Group
}

// NewService creates a catalog service.
func NewService(repo *Repository, store cache.Store, invalidator *Invalidator, logger *zap.Logger, ttl time.Duration) *Service {
	return &Service{
		repo:        repo,
		store:       store,
		invalidator: invalidator,
		logger:      logger,
		ttl:         ttl,
	}
}

// cached runs load under singleflight when key is absent from the cache,
// decoding into dest on a hit and caching the loaded value on a miss.
// Cache errors degrade to a database read rather than failing the request.
func cached[T any](ctx context.Context, s *Service, key string, load func() (T, error)) (T, error) {
	var dest T
	hit, err := s.store.Get(ctx, key, &dest)
	if err != nil {
		s.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		return dest, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		loaded, err := load()
		if err != nil {
			return loaded, err
		}
		if err := s.store.Set(ctx, key, loaded, s.ttl); err != nil {
			s.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
		return loaded, nil
	})
	if err != nil {
		return dest, err
	}
	return v.(T), nil
}

// ListMenus returns all menus.
func (s *Service) ListMenus(ctx context.Context) ([]models.Menu, error) {
	return cached(ctx, s, KeyMenus, func() ([]models.Menu, error) {
		return s.repo.ListMenus(ctx)
	})
}

// GetMenu returns one menu with its aggregate counts.
func (s *Service) GetMenu(ctx context.Context, menuID string) (*models.MenuDetail, error) {
	return cached(ctx, s, KeyMenu(menuID), func() (*models.MenuDetail, error) {
		return s.repo.GetMenuDetail(ctx, menuID)
	})
}

// CreateMenu creates a menu and invalidates the list views it appears in.
// An empty id gets a generated one; the sheet sync worker always supplies
// the sheet-assigned id.
func (s *Service) CreateMenu(ctx context.Context, id, title, description string) (*models.Menu, error) {
	menu := &models.Menu{ID: id, Title: title, Description: description}
	if err := s.repo.CreateMenu(ctx, menu); err != nil {
		return nil, err
	}
	s.invalidator.MenuCreated()
	return menu, nil
}

// UpdateMenu updates a menu's title and description.
func (s *Service) UpdateMenu(ctx context.Context, menuID, title, description string) (*models.Menu, error) {
	menu, err := s.repo.UpdateMenu(ctx, menuID, title, description)
	if err != nil {
		return nil, err
	}
	s.invalidator.MenuUpdated(menuID)
	return menu, nil
}

// DeleteMenu deletes a menu and its whole subtree.
func (s *Service) DeleteMenu(ctx context.Context, menuID string) error {
	if err := s.repo.DeleteMenu(ctx, menuID); err != nil {
		return err
	}
	s.invalidator.MenuDeleted(menuID)
	return nil
}

// ListSubmenus returns the submenus of a menu with dish counts.
func (s *Service) ListSubmenus(ctx context.Context, menuID string) ([]models.SubmenuDetail, error) {
	return cached(ctx, s, KeySubmenus(menuID), func() ([]models.SubmenuDetail, error) {
		return s.repo.ListSubmenus(ctx, menuID)
	})
}

// GetSubmenu returns one submenu of a menu with its dish count.
func (s *Service) GetSubmenu(ctx context.Context, menuID, submenuID string) (*models.SubmenuDetail, error) {
	return cached(ctx, s, KeySubmenu(menuID, submenuID), func() (*models.SubmenuDetail, error) {
		return s.repo.GetSubmenuDetail(ctx, menuID, submenuID)
	})
}

// CreateSubmenu creates a submenu under the given menu.
func (s *Service) CreateSubmenu(ctx context.Context, menuID, id, title, description string) (*models.Submenu, error) {
	submenu := &models.Submenu{ID: id, Title: title, Description: description, MenuID: menuID}
	if err := s.repo.CreateSubmenu(ctx, submenu); err != nil {
		return nil, err
	}
	s.invalidator.SubmenuCreated(menuID)
	return submenu, nil
}

// UpdateSubmenu updates a submenu's title and description.
func (s *Service) UpdateSubmenu(ctx context.Context, menuID, submenuID, title, description string) (*models.Submenu, error) {
	submenu, err := s.repo.UpdateSubmenu(ctx, menuID, submenuID, title, description)
	if err != nil {
		return nil, err
	}
	s.invalidator.SubmenuUpdated(menuID, submenuID)
	return submenu, nil
}

// DeleteSubmenu deletes a submenu and its dishes.
func (s *Service) DeleteSubmenu(ctx context.Context, menuID, submenuID string) error {
	if err := s.repo.DeleteSubmenu(ctx, menuID, submenuID); err != nil {
		return err
	}
	s.invalidator.SubmenuDeleted(menuID, submenuID)
	return nil
}

// ListDishes returns the dishes of a submenu with discounts overlaid.
func (s *Service) ListDishes(ctx context.Context, menuID, submenuID string) ([]models.DishView, error) {
	views, err := cached(ctx, s, KeyDishes(menuID, submenuID), func() ([]models.DishView, error) {
		dishes, err := s.repo.ListDishes(ctx, submenuID)
		if err != nil {
			return nil, err
		}
		views := make([]models.DishView, 0, len(dishes))
		for _, d := range dishes {
			views = append(views, models.DishView{Dish: d})
		}
		return views, nil
	})
	if err != nil {
		return nil, err
	}

	// Copy before overlaying: the cached slice may be shared between
	// concurrent callers via singleflight.
	out := make([]models.DishView, len(views))
	copy(out, views)
	for i := range out {
		out[i].Discount = s.discountFor(ctx, out[i].ID, out[i].Price)
	}
	return out, nil
}

// GetDish returns one dish with its discount overlaid.
func (s *Service) GetDish(ctx context.Context, menuID, submenuID, dishID string) (*models.DishView, error) {
	view, err := cached(ctx, s, KeyDish(menuID, submenuID, dishID), func() (*models.DishView, error) {
		dish, err := s.repo.GetDish(ctx, dishID)
		if err != nil {
			return nil, err
		}
		return &models.DishView{Dish: *dish}, nil
	})
	if err != nil {
		return nil, err
	}

	out := *view
	out.Discount = s.discountFor(ctx, out.ID, out.Price)
	return &out, nil
}

// CreateDish creates a dish under the given submenu.
func (s *Service) CreateDish(ctx context.Context, menuID, submenuID, id, title, description string, price decimal.Decimal) (*models.Dish, error) {
	dish := &models.Dish{ID: id, Title: title, Description: description, Price: price, SubmenuID: submenuID}
	if err := s.repo.CreateDish(ctx, dish); err != nil {
		return nil, err
	}
	s.invalidator.DishCreated(menuID, submenuID)
	return dish, nil
}

// UpdateDish updates a dish's title, description, and price.
func (s *Service) UpdateDish(ctx context.Context, menuID, submenuID, dishID, title, description string, price decimal.Decimal) (*models.Dish, error) {
	dish, err := s.repo.UpdateDish(ctx, dishID, title, description, price)
	if err != nil {
		return nil, err
	}
	s.invalidator.DishUpdated(menuID, submenuID, dishID)
	return dish, nil
}

// DeleteDish deletes a dish.
func (s *Service) DeleteDish(ctx context.Context, menuID, submenuID, dishID string) error {
	if err := s.repo.DeleteDish(ctx, dishID); err != nil {
		return err
	}
	s.invalidator.DishDeleted(menuID, submenuID, dishID)
	return nil
}

// FullHierarchy returns all menus with nested submenus and dishes.
func (s *Service) FullHierarchy(ctx context.Context) ([]models.MenuTree, error) {
	return cached(ctx, s, KeyFullHierarchy, func() ([]models.MenuTree, error) {
		return s.repo.FullHierarchy(ctx)
	})
}

// discountFor reads the dish's discounted price from the cache overlay. It
// returns nil when no overlay entry exists, the entry cannot be read, or the
// cached price equals the raw price (no effective discount).
func (s *Service) discountFor(ctx context.Context, dishID string, price decimal.Decimal) *decimal.Decimal {
	var discounted decimal.Decimal
	hit, err := s.store.Get(ctx, KeyDiscount(dishID), &discounted)
	if err != nil {
		s.logger.Warn("discount read failed", zap.String("dish_id", dishID), zap.Error(err))
		return nil
	}
	if !hit || discounted.Equal(price) {
		return nil
	}
	return &discounted
}
