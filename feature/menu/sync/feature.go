package sync

import (
	"bytes"
	"context"
	"time"

	"menu-manager/core/cache"
	"menu-manager/core/logger"
	"menu-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface. It exposes the workbook
// upload and manual-trigger endpoints, and runs the periodic pass loop.
type Feature struct {
	cfg    Config
	driver *Driver
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewFeature wires the sync worker: workbook source from object storage,
// catalog adapter for mutations, discount overlay on the cache store.
func NewFeature(cfg Config, catalog Catalog, client storage.Client, bucket string, store cache.Store, discountTTL time.Duration, log *zap.Logger) *Feature {
	source := NewWorkbookSource(client, bucket, cfg.Object, cfg.Sheet)
	overlay := NewOverlay(store, discountTTL, log)
	driver := NewDriver(source, catalog, overlay, log, time.Duration(cfg.TimeoutSeconds)*time.Second)

	return &Feature{
		cfg:    cfg,
		driver: driver,
		client: client,
		bucket: bucket,
		logger: log,
	}
}

// Driver exposes the pass driver for one-shot command invocations.
func (f *Feature) Driver() *Driver {
	return f.driver
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "sync"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.cfg.Enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	app.Put("/sheet", f.HandleUploadSheet)
	app.Post("/sync", f.HandleRunSync)
	return nil
}

// Loop runs reconciliation passes at the configured interval until the
// context is canceled. Pass errors are logged and the loop continues; only
// the next trigger retries.
func (f *Feature) Loop(ctx context.Context) {
	interval := time.Duration(f.cfg.IntervalSeconds) * time.Second
	if interval <= 0 {
		interval = 15 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	f.logger.Info("sheet sync worker started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			f.logger.Info("sheet sync worker stopped")
			return
		case <-ticker.C:
			if _, err := f.driver.Run(ctx); err != nil {
				f.logger.Error("sync pass failed", zap.Error(err))
			}
		}
	}
}

// HandleUploadSheet replaces the menu workbook in object storage.
// @Summary Upload Workbook
// @Description Upload a new menu workbook; the next sync pass picks it up.
// @Tags sync
// @Accept application/octet-stream
// @Produce json
// @Success 200 {object} map[string]string "Uploaded"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sheet [put]
func (f *Feature) HandleUploadSheet(c *fiber.Ctx) error {
	l := logger.WithRayID(f.logger, c)

	body := c.Body()
	if len(body) == 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": "empty workbook body",
		})
	}

	_, err := f.client.PutObject(c.Context(), f.bucket, f.cfg.Object,
		bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		})
	if err != nil {
		l.Error("Workbook upload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Info("Workbook uploaded", zap.String("object", f.cfg.Object), zap.Int("bytes", len(body)))
	return c.JSON(fiber.Map{"status": "uploaded", "object": f.cfg.Object})
}

// HandleRunSync triggers one reconciliation pass immediately.
// @Summary Run Sync Pass
// @Description Run one reconciliation pass against the stored workbook.
// @Tags sync
// @Produce json
// @Success 200 {object} Report "Pass Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync [post]
func (f *Feature) HandleRunSync(c *fiber.Ctx) error {
	l := logger.WithRayID(f.logger, c)

	report, err := f.driver.Run(c.Context())
	if err != nil {
		l.Error("Manual sync pass failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
