package menu

import (
	"time"

	"menu-manager/core/cache"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new catalog feature.
func NewFeature(db *gorm.DB, store cache.Store, logger *zap.Logger, ttl time.Duration) *Feature {
	repo := NewRepository(db)
	inv := NewInvalidator(store, logger)
	svc := NewService(repo, store, inv, logger, ttl)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Service exposes the catalog service for wiring into the sync worker.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "menu"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
