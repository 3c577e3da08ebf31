package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"article-cms/internal/form"
	"article-cms/internal/response"
	"article-cms/internal/service"
	"article-cms/internal/view"
)

// Article page templates
const (
	TemplateIndex         = "index.html"
	TemplateArticle       = "article.html"
	TemplateArticleCreate = "create.html"
	TemplateArticleUpdate = "update.html"
	TemplateArticleDelete = "delete.html"
)

// ArticleHandler serves the article pages
type ArticleHandler struct {
	pages
	articleService service.ArticleService
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(
	articleService service.ArticleService,
	renderer view.Renderer,
	router view.Router,
	logger *zap.Logger,
) *ArticleHandler {
	return &ArticleHandler{
		pages:          pages{renderer: renderer, router: router, logger: logger},
		articleService: articleService,
	}
}

// List renders every article
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articleService.ListArticles(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.render(c, TemplateIndex, gin.H{"articles": articles})
}

// Detail renders a single article with its comments
func (h *ArticleHandler) Detail(c *gin.Context) {
	id, ok := pkParam(c)
	if !ok {
		h.notFound(c, "")
		return
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.render(c, TemplateArticle, gin.H{"article": article, "title": article.Title})
}

// CreateForm renders an empty article form
func (h *ArticleHandler) CreateForm(c *gin.Context) {
	h.renderForm(c, TemplateArticleCreate, form.ArticleState{}, nil)
}

// Create validates the submitted form and stores a new article
func (h *ArticleHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	in, err := h.parse(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	data, errs, err := form.ValidateArticle(ctx, in, h.articleService)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if errs != nil {
		h.renderForm(c, TemplateArticleCreate, form.NewArticleState(in, errs), nil)
		return
	}

	article, err := h.articleService.CreateArticle(ctx, data)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.redirect(c, view.RouteArticleView, view.Params{"pk": article.ID})
}

// UpdateForm renders the article form pre-filled from the stored record
func (h *ArticleHandler) UpdateForm(c *gin.Context) {
	id, ok := pkParam(c)
	if !ok {
		h.notFound(c, "")
		return
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.renderForm(c, TemplateArticleUpdate, form.ArticleStateFrom(article), gin.H{"article": article})
}

// Update validates the submitted form and overwrites the article
func (h *ArticleHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pkParam(c)
	if !ok {
		h.notFound(c, "")
		return
	}

	article, err := h.articleService.GetArticle(ctx, id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	in, err := h.parse(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	data, errs, err := form.ValidateArticle(ctx, in, h.articleService)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if errs != nil {
		h.renderForm(c, TemplateArticleUpdate, form.NewArticleState(in, errs), gin.H{"article": article})
		return
	}

	if _, err := h.articleService.UpdateArticle(ctx, id, data); err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.redirect(c, view.RouteArticleView, view.Params{"pk": id})
}

// DeleteConfirm renders the delete confirmation page
func (h *ArticleHandler) DeleteConfirm(c *gin.Context) {
	id, ok := pkParam(c)
	if !ok {
		h.notFound(c, "")
		return
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.render(c, TemplateArticleDelete, gin.H{"article": article})
}

// Delete removes the article and its comments, then returns to the list
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := pkParam(c)
	if !ok {
		h.notFound(c, "")
		return
	}

	if err := h.articleService.DeleteArticle(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.redirect(c, view.RouteIndex, nil)
}

func (h *ArticleHandler) parse(c *gin.Context) (form.ArticleInput, error) {
	if err := c.Request.ParseForm(); err != nil {
		return form.ArticleInput{}, response.NewValidationError("Malformed form body", err.Error())
	}
	in, err := form.ParseArticle(c.Request.PostForm)
	if err != nil {
		return in, response.NewValidationError("Malformed form body", err.Error())
	}
	return in, nil
}

// renderForm renders an article form page with the category choices
func (h *ArticleHandler) renderForm(c *gin.Context, name string, state form.ArticleState, extra gin.H) {
	categories, err := h.articleService.ListCategories(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	ctx := gin.H{"form": state, "categories": categories}
	for k, v := range extra {
		ctx[k] = v
	}
	h.render(c, name, ctx)
}
