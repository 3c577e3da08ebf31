package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"article-cms/internal/domain"
)

func TestCategoryRepository(t *testing.T) {
	repo := NewCategoryRepository(setupTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Sport", "News"} {
		require.NoError(t, repo.Create(ctx, &domain.Category{Name: name}))
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "News", all[0].Name)

	byName, err := repo.FindByName(ctx, "Sport")
	require.NoError(t, err)

	byID, err := repo.FindByID(ctx, byName.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sport", byID.Name)

	_, err = repo.FindByName(ctx, "Missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.Error(t, repo.Create(ctx, &domain.Category{Name: "News"}), "names are unique")
}
