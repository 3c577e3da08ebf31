package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"article-cms/internal/domain"
)

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(Config{Driver: "mysql", DSN: "x"})
	assert.Error(t, err)
}

func TestNew_SQLiteFile(t *testing.T) {
	db, err := New(Config{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "cms.db"),
	})
	require.NoError(t, err)
	defer Close(db)

	assert.NoError(t, Ping(context.Background(), db))

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "cms.db?_foreign_keys=on", sqliteDSN("cms.db"))
	assert.Equal(t, "file:cms.db?cache=shared&_foreign_keys=on", sqliteDSN("file:cms.db?cache=shared"))
	assert.Equal(t, "cms.db?_foreign_keys=off", sqliteDSN("cms.db?_foreign_keys=off"))
}

func TestAutoMigrate_CreatesTables(t *testing.T) {
	db, err := New(Config{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, AutoMigrate(db, zap.NewNop()))
	// idempotent
	require.NoError(t, AutoMigrate(db, zap.NewNop()))

	for _, table := range []string{"categories", "articles", "comments"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s", table)
	}
}

func TestSeedCategories(t *testing.T) {
	db, err := New(Config{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	defer Close(db)
	require.NoError(t, AutoMigrate(db, zap.NewNop()))
	ctx := context.Background()

	n, err := SeedCategories(ctx, db, []string{"News", " Sport ", "", "News"}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = SeedCategories(ctx, db, []string{"News", "Tech"}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var names []string
	require.NoError(t, db.Model(&domain.Category{}).Order("id").Pluck("name", &names).Error)
	assert.Equal(t, []string{"News", "Sport", "Tech"}, names)
}
