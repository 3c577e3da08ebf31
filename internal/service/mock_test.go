package service

import (
	"context"

	"article-cms/internal/domain"
)

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	CreateFunc   func(ctx context.Context, article *domain.Article) error
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Article, error)
	FindAllFunc  func(ctx context.Context) ([]*domain.Article, error)
	UpdateFunc   func(ctx context.Context, article *domain.Article) error
	DeleteFunc   func(ctx context.Context, id uint) error
	ExistsFunc   func(ctx context.Context, id uint) (bool, error)
	CountFunc    func(ctx context.Context) (int64, error)
}

func (m *MockArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, article)
	}
	return nil
}

func (m *MockArticleRepository) FindByID(ctx context.Context, id uint) (*domain.Article, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockArticleRepository) FindAll(ctx context.Context) ([]*domain.Article, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, article)
	}
	return nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockArticleRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc          func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc        func(ctx context.Context, id uint) (*domain.Comment, error)
	FindByArticleIDFunc func(ctx context.Context, articleID uint) ([]*domain.Comment, error)
	UpdateFunc          func(ctx context.Context, comment *domain.Comment) error
	DeleteFunc          func(ctx context.Context, id uint) error
	DeleteDanglingFunc  func(ctx context.Context) (int64, error)
	CountFunc           func(ctx context.Context) (int64, error)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uint) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByArticleID(ctx context.Context, articleID uint) ([]*domain.Comment, error) {
	if m.FindByArticleIDFunc != nil {
		return m.FindByArticleIDFunc(ctx, articleID)
	}
	return nil, nil
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockCommentRepository) DeleteDangling(ctx context.Context) (int64, error) {
	if m.DeleteDanglingFunc != nil {
		return m.DeleteDanglingFunc(ctx)
	}
	return 0, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	FindAllFunc    func(ctx context.Context) ([]*domain.Category, error)
	FindByIDFunc   func(ctx context.Context, id uint) (*domain.Category, error)
	FindByNameFunc func(ctx context.Context, name string) (*domain.Category, error)
	CreateFunc     func(ctx context.Context, category *domain.Category) error
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]*domain.Category, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uint) (*domain.Category, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, category)
	}
	return nil
}
