package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"article-cms/internal/domain"
)

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByID(ctx context.Context, id uint) (*domain.Comment, error)
	FindByArticleID(ctx context.Context, articleID uint) ([]*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id uint) error
	DeleteDangling(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// commentRepositoryImpl is the GORM implementation of CommentRepository
type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

// Create inserts a new comment and fills in its ID
func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(comment).Error
}

// FindByID finds a comment by its ID with its article loaded
func (r *commentRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.WithContext(ctx).Preload("Article").First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByArticleID returns the comments of an article ordered by ascending ID
func (r *commentRepositoryImpl) FindByArticleID(ctx context.Context, articleID uint) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Update overwrites all editable columns of an existing comment
func (r *commentRepositoryImpl) Update(ctx context.Context, comment *domain.Comment) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("id = ?", comment.ID).
		Updates(map[string]interface{}{
			"author":     comment.Author,
			"text":       comment.Text,
			"article_id": comment.ArticleID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a comment by ID
func (r *commentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteDangling removes comments whose article no longer exists
func (r *commentRepositoryImpl) DeleteDangling(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("article_id NOT IN (?)", r.db.Model(&domain.Article{}).Select("id")).
		Delete(&domain.Comment{})
	return result.RowsAffected, result.Error
}

// Count returns the number of comments
func (r *commentRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Comment{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
