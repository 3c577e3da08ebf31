package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"article-cms/internal/form"
	"article-cms/internal/response"
	"article-cms/internal/view"
)

// Error page templates
const (
	TemplateBadRequest  = "400.html"
	TemplateNotFound    = "404.html"
	TemplateServerError = "500.html"
)

// pages bundles the collaborators every page handler needs
type pages struct {
	renderer view.Renderer
	router   view.Router
	logger   *zap.Logger
}

// render sends the named template with a 200 status
func (p pages) render(c *gin.Context, name string, ctx gin.H) {
	p.renderer.Render(name, ctx).Send(c)
}

// redirect sends a 302 to the named route, or a 500 if it cannot be built
func (p pages) redirect(c *gin.Context, route string, params view.Params) {
	resp, err := p.router.Redirect(route, params)
	if err != nil {
		p.handleServiceError(c, err)
		return
	}
	resp.Send(c)
}

// notFound renders the 404 page
func (p pages) notFound(c *gin.Context, message string) {
	p.renderer.Render(TemplateNotFound, gin.H{"message": message}).
		WithStatus(http.StatusNotFound).
		Send(c)
}

// handleServiceError maps service layer errors to an error page
func (p pages) handleServiceError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p.notFound(c, "")
		return
	}

	var appErr *response.AppError
	if errors.As(err, &appErr) {
		status := mapErrorCodeToHTTPStatus(appErr.Code)
		switch status {
		case http.StatusNotFound:
			p.notFound(c, appErr.Message)
			return
		case http.StatusBadRequest:
			p.logger.Warn("Bad request",
				zap.String("message", appErr.Message),
				zap.String("details", appErr.Details),
				zap.String("path", c.Request.URL.Path),
			)
			p.renderer.Render(TemplateBadRequest, gin.H{"message": appErr.Message}).
				WithStatus(http.StatusBadRequest).
				Send(c)
			return
		}
		p.logger.Error("Service error",
			zap.String("code", appErr.Code),
			zap.String("message", appErr.Message),
			zap.String("details", appErr.Details),
			zap.String("path", c.Request.URL.Path),
		)
		p.renderer.Render(TemplateServerError, gin.H{}).WithStatus(status).Send(c)
		return
	}

	p.logger.Error("Unhandled error",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
	)
	p.renderer.Render(TemplateServerError, gin.H{}).
		WithStatus(http.StatusInternalServerError).
		Send(c)
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case response.ErrCodeNotFound:
		return http.StatusNotFound
	case response.ErrCodeValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// pkParam reads the :pk path parameter. Anything but a positive integer is treated as not found.
func pkParam(c *gin.Context) (uint, bool) {
	return form.ParseID(c.Param("pk"))
}
