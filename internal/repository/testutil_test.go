package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"article-cms/internal/database"
	"article-cms/internal/domain"
)

// setupTestDB creates a migrated in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.New(database.Config{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db, zap.NewNop()))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func createArticle(t *testing.T, db *gorm.DB, title string) *domain.Article {
	t.Helper()
	article := &domain.Article{Title: title, Author: "Author", Text: "Body of " + title}
	require.NoError(t, NewArticleRepository(db).Create(context.Background(), article))
	return article
}

func createComment(t *testing.T, db *gorm.DB, articleID uint, text string) *domain.Comment {
	t.Helper()
	comment := &domain.Comment{Author: "Reader", Text: text, ArticleID: articleID}
	require.NoError(t, NewCommentRepository(db).Create(context.Background(), comment))
	return comment
}
