package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"menu-manager/core/cache"
	"menu-manager/core/config"
	"menu-manager/core/database"
	"menu-manager/core/loader"
	"menu-manager/core/logger"
	"menu-manager/core/middleware/auth"
	"menu-manager/core/middleware/rayid"
	"menu-manager/core/storage"

	"menu-manager/feature/menu"
	"menu-manager/feature/menu/models"
	"menu-manager/feature/menu/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "menu-manager/docs/swagger"
)

// @title Menu Manager API
// @version 1.0
// @description API for the restaurant catalog and its spreadsheet sync worker.
// @host localhost:8080
// @BasePath /api/v1

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the menu manager server",
	Long:  `Starts the HTTP server, the enabled features, and the sheet sync worker.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := models.Migrate(db); err != nil {
			logg.Fatal("Failed to run migrations", zap.Error(err))
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		// 4. Initialize Cache
		store, err := cache.NewStore(cfg.Cache)
		if err != nil {
			logg.Fatal("Failed to connect to cache", zap.Error(err))
		}

		// 5. Initialize Storage
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Initialize Features
		ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
		discountTTL := time.Duration(cfg.Cache.DiscountTTLSeconds) * time.Second

		menuFeature := menu.NewFeature(db, store, logg, ttl)
		syncFeature := sync.NewFeature(
			cfg.Sync,
			menu.NewCatalog(menuFeature.Service()),
			client,
			cfg.Storage.Bucket,
			store,
			discountTTL,
			logg,
		)

		mgr := loader.NewManager()
		mgr.Register(menuFeature)
		mgr.Register(syncFeature)

		api := app.Group("/api/v1")
		if err := mgr.LoadAll(api); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Sync Worker
		workerCtx, stopWorker := context.WithCancel(context.Background())
		defer stopWorker()
		if syncFeature.IsEnabled() {
			go syncFeature.Loop(workerCtx)
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("addr", cfg.Server.Addr()))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		stopWorker()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
