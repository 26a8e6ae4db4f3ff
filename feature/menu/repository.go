package menu

import (
	"context"
	"errors"
	"fmt"

	"menu-manager/feature/menu/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Not-found sentinels, surfaced as 404s by the handler and as skipped
// actions by the sync driver.
var (
	ErrMenuNotFound    = errors.New("menu not found")
	ErrSubmenuNotFound = errors.New("submenu not found")
	ErrDishNotFound    = errors.New("dish not found")
)

// Repository provides database access for the catalog hierarchy.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new catalog repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListMenus returns all menus.
func (r *Repository) ListMenus(ctx context.Context) ([]models.Menu, error) {
	var menus []models.Menu
	if err := r.db.WithContext(ctx).Order("title").Find(&menus).Error; err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	return menus, nil
}

// GetMenuDetail returns a menu with its submenu and dish counts.
func (r *Repository) GetMenuDetail(ctx context.Context, menuID string) (*models.MenuDetail, error) {
	var menu models.Menu
	if err := r.db.WithContext(ctx).First(&menu, "id = ?", menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, fmt.Errorf("failed to load menu %s: %w", menuID, err)
	}

	detail := models.MenuDetail{Menu: menu}

	if err := r.db.WithContext(ctx).Model(&models.Submenu{}).
		Where("menu_id = ?", menuID).
		Count(&detail.SubmenusCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count submenus of %s: %w", menuID, err)
	}

	if err := r.db.WithContext(ctx).Model(&models.Dish{}).
		Joins("JOIN submenus ON submenus.id = dishes.submenu_id").
		Where("submenus.menu_id = ?", menuID).
		Count(&detail.DishesCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count dishes of %s: %w", menuID, err)
	}

	return &detail, nil
}

// CreateMenu inserts a new menu. An empty ID is assigned on insert.
func (r *Repository) CreateMenu(ctx context.Context, menu *models.Menu) error {
	if err := r.db.WithContext(ctx).Create(menu).Error; err != nil {
		return fmt.Errorf("failed to create menu %q: %w", menu.Title, err)
	}
	return nil
}

// UpdateMenu updates a menu's title and description.
func (r *Repository) UpdateMenu(ctx context.Context, menuID, title, description string) (*models.Menu, error) {
	var menu models.Menu
	if err := r.db.WithContext(ctx).First(&menu, "id = ?", menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, fmt.Errorf("failed to load menu %s: %w", menuID, err)
	}

	updates := map[string]any{"title": title, "description": description}
	if err := r.db.WithContext(ctx).Model(&menu).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update menu %s: %w", menuID, err)
	}

	menu.Title = title
	menu.Description = description
	return &menu, nil
}

// DeleteMenu removes a menu. Submenus and dishes cascade at the store layer.
func (r *Repository) DeleteMenu(ctx context.Context, menuID string) error {
	result := r.db.WithContext(ctx).Delete(&models.Menu{}, "id = ?", menuID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete menu %s: %w", menuID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMenuNotFound
	}
	return nil
}

// ListSubmenus returns the submenus of a menu with their dish counts.
func (r *Repository) ListSubmenus(ctx context.Context, menuID string) ([]models.SubmenuDetail, error) {
	var details []models.SubmenuDetail
	err := r.db.WithContext(ctx).Model(&models.Submenu{}).
		Select("submenus.*, count(dishes.id) AS dishes_count").
		Joins("LEFT JOIN dishes ON dishes.submenu_id = submenus.id").
		Where("submenus.menu_id = ?", menuID).
		Group("submenus.id").
		Order("submenus.title").
		Scan(&details).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list submenus of %s: %w", menuID, err)
	}
	return details, nil
}

// GetSubmenuDetail returns a submenu of the given menu with its dish count.
func (r *Repository) GetSubmenuDetail(ctx context.Context, menuID, submenuID string) (*models.SubmenuDetail, error) {
	var submenu models.Submenu
	err := r.db.WithContext(ctx).
		First(&submenu, "id = ? AND menu_id = ?", submenuID, menuID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmenuNotFound
		}
		return nil, fmt.Errorf("failed to load submenu %s: %w", submenuID, err)
	}

	detail := models.SubmenuDetail{Submenu: submenu}
	if err := r.db.WithContext(ctx).Model(&models.Dish{}).
		Where("submenu_id = ?", submenuID).
		Count(&detail.DishesCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count dishes of %s: %w", submenuID, err)
	}

	return &detail, nil
}

// CreateSubmenu inserts a new submenu under its parent menu.
func (r *Repository) CreateSubmenu(ctx context.Context, submenu *models.Submenu) error {
	var exists int64
	if err := r.db.WithContext(ctx).Model(&models.Menu{}).
		Where("id = ?", submenu.MenuID).Count(&exists).Error; err != nil {
		return fmt.Errorf("failed to check menu %s: %w", submenu.MenuID, err)
	}
	if exists == 0 {
		return ErrMenuNotFound
	}

	if err := r.db.WithContext(ctx).Create(submenu).Error; err != nil {
		return fmt.Errorf("failed to create submenu %q: %w", submenu.Title, err)
	}
	return nil
}

// UpdateSubmenu updates a submenu's title and description.
func (r *Repository) UpdateSubmenu(ctx context.Context, menuID, submenuID, title, description string) (*models.Submenu, error) {
	var submenu models.Submenu
	err := r.db.WithContext(ctx).
		First(&submenu, "id = ? AND menu_id = ?", submenuID, menuID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmenuNotFound
		}
		return nil, fmt.Errorf("failed to load submenu %s: %w", submenuID, err)
	}

	updates := map[string]any{"title": title, "description": description}
	if err := r.db.WithContext(ctx).Model(&submenu).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update submenu %s: %w", submenuID, err)
	}

	submenu.Title = title
	submenu.Description = description
	return &submenu, nil
}

// DeleteSubmenu removes a submenu of the given menu. Dishes cascade.
func (r *Repository) DeleteSubmenu(ctx context.Context, menuID, submenuID string) error {
	result := r.db.WithContext(ctx).
		Delete(&models.Submenu{}, "id = ? AND menu_id = ?", submenuID, menuID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete submenu %s: %w", submenuID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSubmenuNotFound
	}
	return nil
}

// ListDishes returns the dishes of a submenu.
func (r *Repository) ListDishes(ctx context.Context, submenuID string) ([]models.Dish, error) {
	var dishes []models.Dish
	err := r.db.WithContext(ctx).
		Where("submenu_id = ?", submenuID).
		Order("title").
		Find(&dishes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list dishes of %s: %w", submenuID, err)
	}
	return dishes, nil
}

// GetDish returns a single dish by id.
func (r *Repository) GetDish(ctx context.Context, dishID string) (*models.Dish, error) {
	var dish models.Dish
	if err := r.db.WithContext(ctx).First(&dish, "id = ?", dishID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, fmt.Errorf("failed to load dish %s: %w", dishID, err)
	}
	return &dish, nil
}

// CreateDish inserts a new dish under its parent submenu.
func (r *Repository) CreateDish(ctx context.Context, dish *models.Dish) error {
	var exists int64
	if err := r.db.WithContext(ctx).Model(&models.Submenu{}).
		Where("id = ?", dish.SubmenuID).Count(&exists).Error; err != nil {
		return fmt.Errorf("failed to check submenu %s: %w", dish.SubmenuID, err)
	}
	if exists == 0 {
		return ErrSubmenuNotFound
	}

	if err := r.db.WithContext(ctx).Create(dish).Error; err != nil {
		return fmt.Errorf("failed to create dish %q: %w", dish.Title, err)
	}
	return nil
}

// UpdateDish updates a dish's title, description, and price.
func (r *Repository) UpdateDish(ctx context.Context, dishID, title, description string, price decimal.Decimal) (*models.Dish, error) {
	var dish models.Dish
	if err := r.db.WithContext(ctx).First(&dish, "id = ?", dishID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, fmt.Errorf("failed to load dish %s: %w", dishID, err)
	}

	updates := map[string]any{"title": title, "description": description, "price": price}
	if err := r.db.WithContext(ctx).Model(&dish).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update dish %s: %w", dishID, err)
	}

	dish.Title = title
	dish.Description = description
	dish.Price = price
	return &dish, nil
}

// DeleteDish removes a dish by id.
func (r *Repository) DeleteDish(ctx context.Context, dishID string) error {
	result := r.db.WithContext(ctx).Delete(&models.Dish{}, "id = ?", dishID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete dish %s: %w", dishID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDishNotFound
	}
	return nil
}

// FullHierarchy returns all menus with their nested submenus and dishes as
// one self-consistent read. The sync worker compares only against full
// snapshots, never partial reads.
func (r *Repository) FullHierarchy(ctx context.Context) ([]models.MenuTree, error) {
	var menus []models.Menu
	err := r.db.WithContext(ctx).
		Preload("Submenus.Dishes").
		Order("title").
		Find(&menus).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load full hierarchy: %w", err)
	}

	trees := make([]models.MenuTree, 0, len(menus))
	for _, m := range menus {
		tree := models.MenuTree{Menu: m, Submenus: make([]models.SubmenuTree, 0, len(m.Submenus))}
		for _, s := range m.Submenus {
			tree.Submenus = append(tree.Submenus, models.SubmenuTree{
				Submenu: s,
				Dishes:  s.Dishes,
			})
		}
		tree.Menu.Submenus = nil
		trees = append(trees, tree)
	}
	return trees, nil
}
