package cmd

import (
	"context"
	"log"
	"time"

	"menu-manager/core/cache"
	"menu-manager/core/config"
	"menu-manager/core/database"
	"menu-manager/core/logger"
	"menu-manager/core/storage"

	"menu-manager/feature/menu"
	"menu-manager/feature/menu/models"
	"menu-manager/feature/menu/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// syncCmd runs a single reconciliation pass and exits. Useful for applying a
// freshly uploaded workbook without waiting for the worker interval.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one sheet reconciliation pass",
	Long:  `Runs a single reconciliation pass against the stored workbook and exits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}
		if err := models.Migrate(db); err != nil {
			return err
		}

		store, err := cache.NewStore(cfg.Cache)
		if err != nil {
			return err
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}

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

		report, err := syncFeature.Driver().Run(context.Background())
		if err != nil {
			return err
		}

		logg.Info("Sync pass finished",
			zap.Any("menus", report.Menus),
			zap.Any("submenus", report.Submenus),
			zap.Any("dishes", report.Dishes),
			zap.Int("skipped_rows", report.SkippedRows),
			zap.Int("failed_actions", report.Failed),
			zap.String("duration", report.Duration))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(syncCmd)
}
