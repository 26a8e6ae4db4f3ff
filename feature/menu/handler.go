package menu

import (
	"errors"

	"menu-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes. The static /menus/full route
// must be registered before the /:menu_id parameter route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	menus := app.Group("/menus")
	menus.Get("/", h.HandleListMenus)
	menus.Post("/", h.HandleCreateMenu)
	menus.Get("/full", h.HandleFullHierarchy)
	menus.Get("/:menu_id", h.HandleGetMenu)
	menus.Patch("/:menu_id", h.HandleUpdateMenu)
	menus.Delete("/:menu_id", h.HandleDeleteMenu)

	submenus := menus.Group("/:menu_id/submenus")
	submenus.Get("/", h.HandleListSubmenus)
	submenus.Post("/", h.HandleCreateSubmenu)
	submenus.Get("/:submenu_id", h.HandleGetSubmenu)
	submenus.Patch("/:submenu_id", h.HandleUpdateSubmenu)
	submenus.Delete("/:submenu_id", h.HandleDeleteSubmenu)

	dishes := submenus.Group("/:submenu_id/dishes")
	dishes.Get("/", h.HandleListDishes)
	dishes.Post("/", h.HandleCreateDish)
	dishes.Get("/:dish_id", h.HandleGetDish)
	dishes.Patch("/:dish_id", h.HandleUpdateDish)
	dishes.Delete("/:dish_id", h.HandleDeleteDish)
}

// MenuRequest is the request body for menu create and update. ID is
// honored on create only, for clients that pre-assign identifiers.
type MenuRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SubmenuRequest is the request body for submenu create and update.
type SubmenuRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DishRequest is the request body for dish create and update.
type DishRequest struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

func (h *Handler) fail(c *fiber.Ctx, err error, action string) error {
	l := logger.WithRayID(h.service.logger, c)

	switch {
	case errors.Is(err, ErrMenuNotFound),
		errors.Is(err, ErrSubmenuNotFound),
		errors.Is(err, ErrDishNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"detail": err.Error(),
		})
	default:
		l.Error(action+" failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}

// HandleListMenus returns all menus.
// @Summary List Menus
// @Description List all menus.
// @Tags menus
// @Produce json
// @Success 200 {array} models.Menu "Menus"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menus [get]
func (h *Handler) HandleListMenus(c *fiber.Ctx) error {
	menus, err := h.service.ListMenus(c.Context())
	if err != nil {
		return h.fail(c, err, "List menus")
	}
	return c.JSON(menus)
}

// HandleGetMenu returns one menu with its aggregate counts.
// @Summary Get Menu
// @Description Get a single menu with submenu and dish counts.
// @Tags menus
// @Produce json
// @Param menu_id path string true "Menu ID"
// @Success 200 {object} models.MenuDetail "Menu"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menus/{menu_id} [get]
func (h *Handler) HandleGetMenu(c *fiber.Ctx) error {
	menu, err := h.service.GetMenu(c.Context(), c.Params("menu_id"))
	if err != nil {
		return h.fail(c, err, "Get menu")
	}
	return c.JSON(menu)
}

// HandleCreateMenu creates a menu.
// @Summary Create Menu
// @Description Create a new menu.
// @Tags menus
// @Accept json
// @Produce json
// @Param body body MenuRequest true "Menu"
// @Success 201 {object} models.Menu "Created Menu"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menus [post]
func (h *Handler) HandleCreateMenu(c *fiber.Ctx) error {
	var req MenuRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": "invalid request body",
		})
	}

	menu, err := h.service.CreateMenu(c.Context(), req.ID, req.Title, req.Description)
	if err != nil {
		return h.fail(c, err, "Create menu")
	}
	return c.Status(fiber.StatusCreated).JSON(menu)
}

// HandleUpdateMenu updates a menu's title and description.
// @Summary Update Menu
// @Description Update an existing menu.
// @Tags menus
// @Accept json
// @Produce json
// @Param menu_id path string true "Menu ID"
// @Param body body MenuRequest true "Menu"
// @Success 200 {object} models.Menu "Updated Menu"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menus/{menu_id} [patch]
func (h *Handler) HandleUpdateMenu(c *fiber.Ctx) error {
	var req MenuRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": "invalid request body",
		})
	}

	menu, err := h.service.UpdateMenu(c.Context(), c.Params("menu_id"), req.Title, req.Description)
	if err != nil {
		return h.fail(c, err, "Update menu")
	}
	return c.JSON(menu)
}

// HandleDeleteMenu deletes a menu and its whole subtree.
// @Summary Delete Menu
// @Description Delete a menu with all its submenus and dishes.
// @Tags menus
// @Produce json
// @Param menu_id path string true "Menu ID"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menus/{menu_id} [delete]
func (h *Handler) HandleDeleteMenu(c *fiber.Ctx) error {
	if err := h.service.DeleteMenu(c.Context(), c.Params("menu_id")); err != nil {
		return h.fail(c, err, "Delete menu")
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

// HandleFullHierarchy returns all menus with nested submenus and dishes.
// @Summary Get Full Hierarchy
// @Description Get every menu with its nested submenus and dishes.
// @Tags menus
// @Produce json
// @Success 200 {array} models.MenuTree "Full Hierarchy"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menus/full [get]
func (h *Handler) HandleFullHierarchy(c *fiber.Ctx) error {
	trees, err := h.service.FullHierarchy(c.Context())
	if err != nil {
		return h.fail(c, err, "Full hierarchy")
	}
	return c.JSON(trees)
}

// HandleListSubmenus returns the submenus of a menu.
// @Summary List Submenus
// @Description List the submenus of a menu with dish counts.
// @Tags submenus
// @Produce json
// @Param menu_id path string true "Menu ID"
// @Success 200 {array} models.SubmenuDetail "Submenus"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menus/{menu_id}/submenus [get]
func (h *Handler) HandleListSubmenus(c *fiber.Ctx) error {
	submenus, err := h.service.ListSubmenus(c.Context(), c.Params("menu_id"))
	if err != nil {
		return h.fail(c, err, "List submenus")
	}
	return c.JSON(submenus)
}

// HandleGetSubmenu returns one submenu with its dish count.
// @Summary Get Submenu
// @Description Get a single submenu with its dish count.
// @Tags submenus
// @Produce json
// @Param menu_id path string true "Menu ID"
// @Param submenu_id path string true "Submenu ID"
// @Success 200 {object} models.SubmenuDetail "Submenu"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menus/{menu_id}/submenus/{submenu_id} [get]
func (h *Handler) HandleGetSubmenu(c *fiber.Ctx) error {
	submenu, err := h.service.GetSubmenu(c.Context(), c.Params("menu_id"), c.Params("submenu_id"))
	if err != nil {
		return h.fail(c, err, "Get submenu")
	}
	return c.JSON(submenu)
}

// HandleCreateSubmenu creates a submenu under a menu.
// @Summary Create Submenu
// @Description Create a new submenu under a menu.
// @Tags submenus
// @Accept json
// @Produce json
// @Param menu_id path string true "Menu ID"
// @Param body body SubmenuRequest true "Submenu"
// @Success 201 {object} models.Submenu "Created Submenu"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menus/{menu_id}/submenus [post]
func (h *Handler) HandleCreateSubmenu(c *fiber.Ctx) error {
	var req SubmenuRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": "invalid request body",
		})
	}

	submenu, err := h.service.CreateSubmenu(c.Context(), c.Params("menu_id"), req.ID, req.Title, req.Description)
	if err != nil {
		return h.fail(c, err, "Create submenu")
	}
	return c.Status(fiber.StatusCreated).JSON(submenu)
}

// HandleUpdateSubmenu updates a submenu's title and description.
// @Summary Update Submenu
// @Description Update an existing submenu.
// @Tags submenus
// @Accept json
// @Produce json
// @Param menu_id path string true "Menu ID"
// @Param submenu_id path string true "Submenu ID"
// @Param body body SubmenuRequest true "Submenu"
// @Success 200 {object} models.Submenu "Updated Submenu"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menus/{menu_id}/submenus/{submenu_id} [patch]
func (h *Handler) HandleUpdateSubmenu(c *fiber.Ctx) error {
	var req SubmenuRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": "invalid request body",
		})
	}

	submenu, err := h.service.UpdateSubmenu(c.Context(), c.Params("menu_id"), c.Params("submenu_id"), req.Title, req.Description)
	if err != nil {
		return h.fail(c, err, "Update submenu")
	}
	return c.JSON(submenu)
}

// HandleDeleteSubmenu deletes a submenu and its dishes.
// @Summary Delete Submenu
// @Description Delete a submenu with all its dishes.
// @Tags submenus
// @Produce json
// @Param menu_id path string true "Menu ID"
// @Param submenu_id path string true "Submenu ID"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menus/{menu_id}/submenus/{submenu_id} [delete]
func (h *Handler) HandleDeleteSubmenu(c *fiber.Ctx) error {
	if err := h.service.DeleteSubmenu(c.Context(), c.Params("menu_id"), c.Params("submenu_id")); err != nil {
		return h.fail(c, err, "Delete submenu")
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

// HandleListDishes returns the dishes of a submenu.
// @Summary List Dishes
// @Description List the dishes of a submenu with discounts applied.
// @Tags dishes
// @Produce json
// @Param menu_id path string true "Menu ID"
// @Param submenu_id path string true "Submenu ID"
// @Success 200 {array} models.DishView "Dishes"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menus/{menu_id}/submenus/{submenu_id}/dishes [get]
func (h *Handler) HandleListDishes(c *fiber.Ctx) error {
	dishes, err := h.service.ListDishes(c.Context(), c.Params("menu_id"), c.Params("submenu_id"))
	if err != nil {
		return h.fail(c, err, "List dishes")
	}
	return c.JSON(dishes)
}

// HandleGetDish returns one dish with its discount applied.
// @Summary Get Dish
// @Description Get a single dish with its discount applied.
// @Tags dishes
// @Produce json
// @Param menu_id path string true "Menu ID"
// @Param submenu_id path string true "Submenu ID"
// @Param dish_id path string true "Dish ID"
// @Success 200 {object} models.DishView "Dish"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menus/{menu_id}/submenus/{submenu_id}/dishes/{dish_id} [get]
func (h *Handler) HandleGetDish(c *fiber.Ctx) error {
	dish, err := h.service.GetDish(c.Context(), c.Params("menu_id"), c.Params("submenu_id"), c.Params("dish_id"))
	if err != nil {
		return h.fail(c, err, "Get dish")
	}
	return c.JSON(dish)
}

// HandleCreateDish creates a dish under a submenu.
// @Summary Create Dish
// @Description Create a new dish under a submenu.
// @Tags dishes
// @Accept json
// @Produce json
// @Param menu_id path string true "Menu ID"
// @Param submenu_id path string true "Submenu ID"
// @Param body body DishRequest true "Dish"
// @Success 201 {object} models.Dish "Created Dish"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menus/{menu_id}/submenus/{submenu_id}/dishes [post]
func (h *Handler) HandleCreateDish(c *fiber.Ctx) error {
	var req DishRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": "invalid request body",
		})
	}

	dish, err := h.service.CreateDish(c.Context(), c.Params("menu_id"), c.Params("submenu_id"), req.ID, req.Title, req.Description, req.Price)
	if err != nil {
		return h.fail(c, err, "Create dish")
	}
	return c.Status(fiber.StatusCreated).JSON(dish)
}

// HandleUpdateDish updates a dish's title, description, and price.
// @Summary Update Dish
// @Description Update an existing dish.
// @Tags dishes
// @Accept json
// @Produce json
// @Param menu_id path string true "Menu ID"
// @Param submenu_id path string true "Submenu ID"
// @Param dish_id path string true "Dish ID"
// @Param body body DishRequest true "Dish"
// @Success 200 {object} models.Dish "Updated Dish"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menus/{menu_id}/submenus/{submenu_id}/dishes/{dish_id} [patch]
func (h *Handler) HandleUpdateDish(c *fiber.Ctx) error {
	var req DishRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": "invalid request body",
		})
	}

	dish, err := h.service.UpdateDish(c.Context(), c.Params("menu_id"), c.Params("submenu_id"), c.Params("dish_id"), req.Title, req.Description, req.Price)
	if err != nil {
		return h.fail(c, err, "Update dish")
	}
	return c.JSON(dish)
}

// HandleDeleteDish deletes a dish.
// @Summary Delete Dish
// @Description Delete a dish.
// @Tags dishes
// @Produce json
// @Param menu_id path string true "Menu ID"
// @Param submenu_id path string true "Submenu ID"
// @Param dish_id path string true "Dish ID"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menus/{menu_id}/submenus/{submenu_id}/dishes/{dish_id} [delete]
func (h *Handler) HandleDeleteDish(c *fiber.Ctx) error {
	if err := h.service.DeleteDish(c.Context(), c.Params("menu_id"), c.Params("submenu_id"), c.Params("dish_id")); err != nil {
		return h.fail(c, err, "Delete dish")
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}
