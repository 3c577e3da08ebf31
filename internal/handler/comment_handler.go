package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"article-cms/internal/form"
	"article-cms/internal/metrics"
	"article-cms/internal/response"
	"article-cms/internal/service"
	"article-cms/internal/view"
)

// Comment page templates
const (
	TemplateComment       = "comment.html"
	TemplateCommentCreate = "comment_create.html"
	TemplateCommentUpdate = "comment_update.html"
	TemplateCommentDelete = "comment_delete.html"
)

// CommentHandler serves the comment pages
type CommentHandler struct {
	pages
	commentService service.CommentService
	deletePolicy   service.DeletePolicy
	metrics        *metrics.Metrics
}

// NewCommentHandler creates a new CommentHandler. A nil policy means BestEffortDelete.
func NewCommentHandler(
	commentService service.CommentService,
	deletePolicy service.DeletePolicy,
	renderer view.Renderer,
	router view.Router,
	m *metrics.Metrics,
	logger *zap.Logger,
) *CommentHandler {
	if deletePolicy == nil {
		deletePolicy = service.BestEffortDelete
	}
	return &CommentHandler{
		pages:          pages{renderer: renderer, router: router, logger: logger},
		commentService: commentService,
		deletePolicy:   deletePolicy,
		metrics:        m,
	}
}

// Detail renders a single comment
func (h *CommentHandler) Detail(c *gin.Context) {
	id, ok := pkParam(c)
	if !ok {
		h.notFound(c, "")
		return
	}

	comment, err := h.commentService.GetComment(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.render(c, TemplateComment, gin.H{"comments": comment})
}

// CreateForm renders an empty comment form. ?article=<id> preselects the article.
func (h *CommentHandler) CreateForm(c *gin.Context) {
	state := form.CommentState{}
	if id, ok := form.ParseID(c.Query("article")); ok {
		if exists, err := h.commentService.ArticleExists(c.Request.Context(), id); err == nil && exists {
			state.Article = strconv.FormatUint(uint64(id), 10)
		}
	}
	h.renderForm(c, TemplateCommentCreate, state, nil)
}

// Create validates the submitted form and stores a new comment
func (h *CommentHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	in, err := h.parse(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	data, errs, err := form.ValidateComment(ctx, in, h.commentService)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if errs != nil {
		h.renderForm(c, TemplateCommentCreate, form.NewCommentState(in, errs), nil)
		return
	}

	comment, err := h.commentService.CreateComment(ctx, data)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.redirect(c, view.RouteCommentView, view.Params{"pk": comment.ID})
}

// UpdateForm renders the comment form pre-filled from the stored record
func (h *CommentHandler) UpdateForm(c *gin.Context) {
	id, ok := pkParam(c)
	if !ok {
		h.notFound(c, "")
		return
	}

	comment, err := h.commentService.GetComment(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.renderForm(c, TemplateCommentUpdate, form.CommentStateFrom(comment), gin.H{"comment": comment})
}

// Update validates the submitted form and overwrites the comment
func (h *CommentHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pkParam(c)
	if !ok {
		h.notFound(c, "")
		return
	}

	comment, err := h.commentService.GetComment(ctx, id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	in, err := h.parse(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	data, errs, err := form.ValidateComment(ctx, in, h.commentService)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if errs != nil {
		h.renderForm(c, TemplateCommentUpdate, form.NewCommentState(in, errs), gin.H{"comment": comment})
		return
	}

	if _, err := h.commentService.UpdateComment(ctx, id, data); err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.redirect(c, view.RouteCommentView, view.Params{"pk": id})
}

// DeleteConfirm renders the delete confirmation page
func (h *CommentHandler) DeleteConfirm(c *gin.Context) {
	id, ok := pkParam(c)
	if !ok {
		h.notFound(c, "")
		return
	}

	comment, err := h.commentService.GetComment(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.render(c, TemplateCommentDelete, gin.H{"comment": comment})
}

// Delete attempts to remove the comment and always redirects to comment_view.
// Failures go through the delete policy; discarded ones are logged and counted.
func (h *CommentHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pkParam(c)
	if !ok {
		h.notFound(c, "")
		return
	}

	if _, err := h.commentService.GetComment(ctx, id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	res := h.commentService.DeleteComment(ctx, id)
	if err := h.deletePolicy(res); err != nil {
		h.handleServiceError(c, err)
		return
	}
	if !res.OK() {
		h.logger.Warn("Comment delete failed, continuing",
			zap.Uint("comment_id", id),
			zap.Error(res.Err),
		)
		if h.metrics != nil {
			h.metrics.IncrementCommentDeleteFailure()
		}
	}

	h.redirect(c, view.RouteCommentView, view.Params{"pk": id})
}

func (h *CommentHandler) parse(c *gin.Context) (form.CommentInput, error) {
	if err := c.Request.ParseForm(); err != nil {
		return form.CommentInput{}, response.NewValidationError("Malformed form body", err.Error())
	}
	in, err := form.ParseComment(c.Request.PostForm)
	if err != nil {
		return in, response.NewValidationError("Malformed form body", err.Error())
	}
	return in, nil
}

// renderForm renders a comment form page with the article choices
func (h *CommentHandler) renderForm(c *gin.Context, name string, state form.CommentState, extra gin.H) {
	articles, err := h.commentService.ListArticles(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	ctx := gin.H{"form": state, "articles": articles}
	for k, v := range extra {
		ctx[k] = v
	}
	h.render(c, name, ctx)
}
