package service

import (
	"context"

	"go.uber.org/zap"

	"article-cms/internal/domain"
	"article-cms/internal/form"
	"article-cms/internal/metrics"
	"article-cms/internal/repository"
	"article-cms/internal/response"
)

// CommentService defines the interface for comment business logic
type CommentService interface {
	GetComment(ctx context.Context, id uint) (*domain.Comment, error)
	CreateComment(ctx context.Context, data *form.CommentData) (*domain.Comment, error)
	UpdateComment(ctx context.Context, id uint, data *form.CommentData) (*domain.Comment, error)
	DeleteComment(ctx context.Context, id uint) DeleteResult
	ListArticles(ctx context.Context) ([]*domain.Article, error)
	ArticleExists(ctx context.Context, id uint) (bool, error)
	SweepDangling(ctx context.Context) (int64, error)
}

// commentServiceImpl is the implementation of CommentService
type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	articleRepo repository.ArticleRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	articleRepo repository.ArticleRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		metrics:     m,
		logger:      logger,
	}
}

// GetComment retrieves a comment by ID
func (s *commentServiceImpl) GetComment(ctx context.Context, id uint) (*domain.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Comment not found", "Failed to fetch comment", id)
	}
	return comment, nil
}

// CreateComment stores a validated comment
func (s *commentServiceImpl) CreateComment(ctx context.Context, data *form.CommentData) (*domain.Comment, error) {
	comment := &domain.Comment{
		Author:    data.Author,
		Text:      data.Text,
		ArticleID: data.ArticleID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewInternalError("Failed to create comment", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementCommentCreated()
	}

	s.logger.Info("Comment created",
		zap.Uint("comment_id", comment.ID),
		zap.Uint("article_id", comment.ArticleID),
	)
	return comment, nil
}

// UpdateComment overwrites all editable fields of an existing comment
func (s *commentServiceImpl) UpdateComment(ctx context.Context, id uint, data *form.CommentData) (*domain.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Comment not found", "Failed to fetch comment", id)
	}

	comment.Author = data.Author
	comment.Text = data.Text
	comment.ArticleID = data.ArticleID
	comment.Article = nil

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, notFoundOr(err, "Comment not found", "Failed to update comment", id)
	}

	s.logger.Info("Comment updated", zap.Uint("comment_id", id))
	return comment, nil
}

// DeleteComment attempts to delete a comment and reports the outcome without
// deciding whether a failure matters
func (s *commentServiceImpl) DeleteComment(ctx context.Context, id uint) DeleteResult {
	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return DeleteResult{ID: id, Err: notFoundOr(err, "Comment not found", "Failed to delete comment", id)}
	}
	s.logger.Info("Comment deleted", zap.Uint("comment_id", id))
	return DeleteResult{ID: id}
}

// ListArticles returns the articles a comment can be attached to
func (s *commentServiceImpl) ListArticles(ctx context.Context) ([]*domain.Article, error) {
	articles, err := s.articleRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewInternalError("Failed to fetch articles", err.Error())
	}
	return articles, nil
}

// ArticleExists reports whether the referenced article exists
func (s *commentServiceImpl) ArticleExists(ctx context.Context, id uint) (bool, error) {
	ok, err := s.articleRepo.Exists(ctx, id)
	if err != nil {
		return false, response.NewInternalError("Failed to verify article", err.Error())
	}
	return ok, nil
}

// SweepDangling removes comments whose article no longer exists
func (s *commentServiceImpl) SweepDangling(ctx context.Context) (int64, error) {
	removed, err := s.commentRepo.DeleteDangling(ctx)
	if err != nil {
		return 0, response.NewInternalError("Failed to sweep dangling comments", err.Error())
	}
	if s.metrics != nil {
		s.metrics.AddDanglingCommentsRemoved(removed)
	}
	return removed, nil
}
