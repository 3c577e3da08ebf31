package service

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"article-cms/internal/domain"
	"article-cms/internal/form"
	"article-cms/internal/metrics"
	"article-cms/internal/repository"
	"article-cms/internal/response"
)

// ArticleService defines the interface for article business logic
type ArticleService interface {
	ListArticles(ctx context.Context) ([]*domain.Article, error)
	GetArticle(ctx context.Context, id uint) (*domain.Article, error)
	CreateArticle(ctx context.Context, data *form.ArticleData) (*domain.Article, error)
	UpdateArticle(ctx context.Context, id uint, data *form.ArticleData) (*domain.Article, error)
	DeleteArticle(ctx context.Context, id uint) error
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	CategoryExists(ctx context.Context, id uint) (bool, error)
}

// articleServiceImpl is the implementation of ArticleService
type articleServiceImpl struct {
	articleRepo  repository.ArticleRepository
	categoryRepo repository.CategoryRepository
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewArticleService creates a new instance of ArticleService
func NewArticleService(
	articleRepo repository.ArticleRepository,
	categoryRepo repository.CategoryRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) ArticleService {
	return &articleServiceImpl{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		metrics:      m,
		logger:       logger,
	}
}

// ListArticles returns every article in ascending ID order
func (s *articleServiceImpl) ListArticles(ctx context.Context) ([]*domain.Article, error) {
	articles, err := s.articleRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewInternalError("Failed to fetch articles", err.Error())
	}
	return articles, nil
}

// GetArticle retrieves an article by ID
func (s *articleServiceImpl) GetArticle(ctx context.Context, id uint) (*domain.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Article not found", "Failed to fetch article", id)
	}
	return article, nil
}

// CreateArticle stores a validated article
func (s *articleServiceImpl) CreateArticle(ctx context.Context, data *form.ArticleData) (*domain.Article, error) {
	article := &domain.Article{
		Title:      data.Title,
		Author:     data.Author,
		Text:       data.Text,
		CategoryID: data.CategoryID,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, response.NewInternalError("Failed to create article", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementArticleCreated()
	}

	s.logger.Info("Article created", zap.Uint("article_id", article.ID))
	return article, nil
}

// UpdateArticle overwrites all editable fields of an existing article
func (s *articleServiceImpl) UpdateArticle(ctx context.Context, id uint, data *form.ArticleData) (*domain.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Article not found", "Failed to fetch article", id)
	}

	article.Title = data.Title
	article.Author = data.Author
	article.Text = data.Text
	article.CategoryID = data.CategoryID
	article.Category = nil

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, notFoundOr(err, "Article not found", "Failed to update article", id)
	}

	s.logger.Info("Article updated", zap.Uint("article_id", id))
	return article, nil
}

// DeleteArticle removes an article together with its comments
func (s *articleServiceImpl) DeleteArticle(ctx context.Context, id uint) error {
	if err := s.articleRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Article not found", "Failed to delete article", id)
	}
	s.logger.Info("Article deleted", zap.Uint("article_id", id))
	return nil
}

// ListCategories returns the categories offered by the article form
func (s *articleServiceImpl) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewInternalError("Failed to fetch categories", err.Error())
	}
	return categories, nil
}

// CategoryExists reports whether a category with the given ID exists
func (s *articleServiceImpl) CategoryExists(ctx context.Context, id uint) (bool, error) {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, response.NewInternalError("Failed to verify category", err.Error())
	}
	return true, nil
}

// notFoundOr maps gorm.ErrRecordNotFound to a NotFound AppError and anything
// else to an internal one
func notFoundOr(err error, notFoundMsg, internalMsg string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewNotFoundError(notFoundMsg, "id="+strconv.FormatUint(uint64(id), 10))
	}
	return response.NewInternalError(internalMsg, err.Error())
}
