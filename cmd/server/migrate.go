package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"article-cms/internal/config"
	"article-cms/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the schema and seed configured categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()

		db, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close(db)

		return migrate(cmd.Context(), db, cfg, logger)
	},
}

func migrate(ctx context.Context, db *gorm.DB, cfg *config.Config, logger *zap.Logger) error {
	if err := database.AutoMigrate(db, logger); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	seeded, err := database.SeedCategories(ctx, db, cfg.Categories, logger)
	if err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	logger.Info("Database migrations completed", zap.Int("categories_seeded", seeded))
	return nil
}
