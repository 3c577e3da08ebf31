package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"article-cms/internal/domain"
)

// ArticleRepository defines the interface for article data access
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	FindByID(ctx context.Context, id uint) (*domain.Article, error)
	FindAll(ctx context.Context) ([]*domain.Article, error)
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// articleRepositoryImpl is the GORM implementation of ArticleRepository
type articleRepositoryImpl struct {
	db *gorm.DB
}

// NewArticleRepository creates a new instance of ArticleRepository
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepositoryImpl{db: db}
}

// Create inserts a new article and fills in its ID
func (r *articleRepositoryImpl) Create(ctx context.Context, article *domain.Article) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(article).Error
}

// FindByID finds an article by its ID with its category and comments loaded
func (r *articleRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Article, error) {
	var article domain.Article
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.id ASC")
		}).
		First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// FindAll returns every article ordered by ascending ID
func (r *articleRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Article, error) {
	var articles []*domain.Article
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Order("articles.id ASC").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// Update overwrites all editable columns of an existing article
func (r *articleRepositoryImpl) Update(ctx context.Context, article *domain.Article) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("id = ?", article.ID).
		Updates(map[string]interface{}{
			"title":       article.Title,
			"author":      article.Author,
			"text":        article.Text,
			"category_id": article.CategoryID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes an article and its comments in a single transaction
func (r *articleRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.Article{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Exists reports whether an article with the given ID exists
func (r *articleRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Article{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the number of articles
func (r *articleRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Article{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
