package handler

import (
	"context"

	"article-cms/internal/domain"
	"article-cms/internal/form"
	"article-cms/internal/service"
)

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	ListArticlesFunc   func(ctx context.Context) ([]*domain.Article, error)
	GetArticleFunc     func(ctx context.Context, id uint) (*domain.Article, error)
	CreateArticleFunc  func(ctx context.Context, data *form.ArticleData) (*domain.Article, error)
	UpdateArticleFunc  func(ctx context.Context, id uint, data *form.ArticleData) (*domain.Article, error)
	DeleteArticleFunc  func(ctx context.Context, id uint) error
	ListCategoriesFunc func(ctx context.Context) ([]*domain.Category, error)
	CategoryExistsFunc func(ctx context.Context, id uint) (bool, error)
}

func (m *MockArticleService) ListArticles(ctx context.Context) ([]*domain.Article, error) {
	if m.ListArticlesFunc != nil {
		return m.ListArticlesFunc(ctx)
	}
	return nil, nil
}

func (m *MockArticleService) GetArticle(ctx context.Context, id uint) (*domain.Article, error) {
	if m.GetArticleFunc != nil {
		return m.GetArticleFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockArticleService) CreateArticle(ctx context.Context, data *form.ArticleData) (*domain.Article, error) {
	if m.CreateArticleFunc != nil {
		return m.CreateArticleFunc(ctx, data)
	}
	return nil, nil
}

func (m *MockArticleService) UpdateArticle(ctx context.Context, id uint, data *form.ArticleData) (*domain.Article, error) {
	if m.UpdateArticleFunc != nil {
		return m.UpdateArticleFunc(ctx, id, data)
	}
	return nil, nil
}

func (m *MockArticleService) DeleteArticle(ctx context.Context, id uint) error {
	if m.DeleteArticleFunc != nil {
		return m.DeleteArticleFunc(ctx, id)
	}
	return nil
}

func (m *MockArticleService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	return nil, nil
}

func (m *MockArticleService) CategoryExists(ctx context.Context, id uint) (bool, error) {
	if m.CategoryExistsFunc != nil {
		return m.CategoryExistsFunc(ctx, id)
	}
	return false, nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	GetCommentFunc    func(ctx context.Context, id uint) (*domain.Comment, error)
	CreateCommentFunc func(ctx context.Context, data *form.CommentData) (*domain.Comment, error)
	UpdateCommentFunc func(ctx context.Context, id uint, data *form.CommentData) (*domain.Comment, error)
	DeleteCommentFunc func(ctx context.Context, id uint) service.DeleteResult
	ListArticlesFunc  func(ctx context.Context) ([]*domain.Article, error)
	ArticleExistsFunc func(ctx context.Context, id uint) (bool, error)
	SweepDanglingFunc func(ctx context.Context) (int64, error)
}

func (m *MockCommentService) GetComment(ctx context.Context, id uint) (*domain.Comment, error) {
	if m.GetCommentFunc != nil {
		return m.GetCommentFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentService) CreateComment(ctx context.Context, data *form.CommentData) (*domain.Comment, error) {
	if m.CreateCommentFunc != nil {
		return m.CreateCommentFunc(ctx, data)
	}
	return nil, nil
}

func (m *MockCommentService) UpdateComment(ctx context.Context, id uint, data *form.CommentData) (*domain.Comment, error) {
	if m.UpdateCommentFunc != nil {
		return m.UpdateCommentFunc(ctx, id, data)
	}
	return nil, nil
}

func (m *MockCommentService) DeleteComment(ctx context.Context, id uint) service.DeleteResult {
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(ctx, id)
	}
	return service.DeleteResult{ID: id}
}

func (m *MockCommentService) ListArticles(ctx context.Context) ([]*domain.Article, error) {
	if m.ListArticlesFunc != nil {
		return m.ListArticlesFunc(ctx)
	}
	return nil, nil
}

func (m *MockCommentService) ArticleExists(ctx context.Context, id uint) (bool, error) {
	if m.ArticleExistsFunc != nil {
		return m.ArticleExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *MockCommentService) SweepDangling(ctx context.Context) (int64, error) {
	if m.SweepDanglingFunc != nil {
		return m.SweepDanglingFunc(ctx)
	}
	return 0, nil
}
