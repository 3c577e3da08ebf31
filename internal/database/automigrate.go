package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"article-cms/internal/domain"
)

// models lists every persisted entity in dependency order
func models() []interface{} {
	return []interface{}{
		&domain.Category{},
		&domain.Article{},
		&domain.Comment{},
	}
}

// AutoMigrate creates or updates tables, indexes and foreign keys for all domain models
func AutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()

	for _, model := range models() {
		existed := migrator.HasTable(model)
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
		logger.Info("Migrated table",
			zap.String("model", fmt.Sprintf("%T", model)),
			zap.Bool("was_existing", existed),
		)
	}

	return nil
}

// SeedCategories inserts every configured category name that does not exist yet.
// Blank and duplicate names are skipped. Returns the number of rows inserted.
func SeedCategories(ctx context.Context, db *gorm.DB, names []string, logger *zap.Logger) (int, error) {
	seen := make(map[string]struct{}, len(names))
	inserted := 0

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		var existing domain.Category
		err := db.WithContext(ctx).Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return inserted, fmt.Errorf("failed to look up category %q: %w", name, err)
		}

		if err := db.WithContext(ctx).Create(&domain.Category{Name: name}).Error; err != nil {
			return inserted, fmt.Errorf("failed to seed category %q: %w", name, err)
		}
		inserted++
	}

	if inserted > 0 {
		logger.Info("Seeded categories", zap.Int("inserted", inserted))
	}
	return inserted, nil
}
