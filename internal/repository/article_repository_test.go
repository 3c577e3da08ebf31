package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"article-cms/internal/domain"
)

func TestArticleRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	category := &domain.Category{Name: "News"}
	require.NoError(t, NewCategoryRepository(db).Create(ctx, category))

	article := &domain.Article{
		Title:      "Hello",
		Author:     "Ann",
		Text:       "First post",
		CategoryID: &category.ID,
	}
	require.NoError(t, repo.Create(ctx, article))
	require.NotZero(t, article.ID)

	found, err := repo.FindByID(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", found.Title)
	assert.Equal(t, "Ann", found.Author)
	assert.Equal(t, "First post", found.Text)
	require.NotNil(t, found.Category)
	assert.Equal(t, "News", found.CategoryName())
	assert.Empty(t, found.Comments)
}

func TestArticleRepository_FindByID_NotFound(t *testing.T) {
	repo := NewArticleRepository(setupTestDB(t))

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestArticleRepository_FindByID_LoadsComments(t *testing.T) {
	db := setupTestDB(t)
	article := createArticle(t, db, "With comments")
	first := createComment(t, db, article.ID, "first")
	second := createComment(t, db, article.ID, "second")

	found, err := NewArticleRepository(db).FindByID(context.Background(), article.ID)
	require.NoError(t, err)
	require.Len(t, found.Comments, 2)
	assert.Equal(t, first.ID, found.Comments[0].ID)
	assert.Equal(t, second.ID, found.Comments[1].ID)
}

func TestArticleRepository_FindAll_AscendingID(t *testing.T) {
	db := setupTestDB(t)
	a := createArticle(t, db, "a")
	b := createArticle(t, db, "b")
	c := createArticle(t, db, "c")

	articles, err := NewArticleRepository(db).FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 3)
	assert.Equal(t, []uint{a.ID, b.ID, c.ID}, []uint{articles[0].ID, articles[1].ID, articles[2].ID})
}

func TestArticleRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	category := &domain.Category{Name: "Tech"}
	require.NoError(t, NewCategoryRepository(db).Create(ctx, category))
	article := &domain.Article{Title: "Old", Author: "Ann", Text: "old", CategoryID: &category.ID}
	require.NoError(t, repo.Create(ctx, article))

	article.Title = "New"
	article.Text = "new"
	article.CategoryID = nil
	require.NoError(t, repo.Update(ctx, article))

	found, err := repo.FindByID(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", found.Title)
	assert.Equal(t, "new", found.Text)
	assert.Nil(t, found.CategoryID)
}

func TestArticleRepository_Update_NotFound(t *testing.T) {
	repo := NewArticleRepository(setupTestDB(t))

	err := repo.Update(context.Background(), &domain.Article{BaseModel: domain.BaseModel{ID: 7}, Title: "x"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestArticleRepository_Delete_CascadesComments(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	keep := createArticle(t, db, "keep")
	gone := createArticle(t, db, "gone")
	createComment(t, db, gone.ID, "c1")
	createComment(t, db, gone.ID, "c2")
	kept := createComment(t, db, keep.ID, "c3")

	require.NoError(t, repo.Delete(ctx, gone.ID))

	_, err := repo.FindByID(ctx, gone.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	comments := NewCommentRepository(db)
	count, err := comments.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = comments.FindByID(ctx, kept.ID)
	assert.NoError(t, err)
}

func TestArticleRepository_Delete_NotFound(t *testing.T) {
	repo := NewArticleRepository(setupTestDB(t))
	assert.ErrorIs(t, repo.Delete(context.Background(), 3), gorm.ErrRecordNotFound)
}

func TestArticleRepository_ExistsAndCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	article := createArticle(t, db, "one")

	ok, err := repo.Exists(ctx, article.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, article.ID+1)
	require.NoError(t, err)
	assert.False(t, ok)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
