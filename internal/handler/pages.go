package handler

import (
	"github.com/gin-gonic/gin"

	"article-cms/internal/view"
)

// MethodHandlers holds the handlers of one page route
type MethodHandlers struct {
	GET  gin.HandlerFunc
	POST gin.HandlerFunc
}

// Pages maps every route name in view.Routes to its handlers
func Pages(articles *ArticleHandler, comments *CommentHandler) map[string]MethodHandlers {
	return map[string]MethodHandlers{
		view.RouteIndex:         {GET: articles.List},
		view.RouteArticleView:   {GET: articles.Detail},
		view.RouteArticleCreate: {GET: articles.CreateForm, POST: articles.Create},
		view.RouteArticleUpdate: {GET: articles.UpdateForm, POST: articles.Update},
		view.RouteArticleDelete: {GET: articles.DeleteConfirm, POST: articles.Delete},
		view.RouteCommentCreate: {GET: comments.CreateForm, POST: comments.Create},
		view.RouteCommentView:   {GET: comments.Detail},
		view.RouteCommentUpdate: {GET: comments.UpdateForm, POST: comments.Update},
		view.RouteCommentDelete: {GET: comments.DeleteConfirm, POST: comments.Delete},
	}
}
