package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery returns a middleware that recovers from panics and renders errorTemplate.
// With an empty template name the response is a bare 500.
func Recovery(logger *zap.Logger, errorTemplate string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered",
					zap.Any("error", err),
					zap.String("error_type", fmt.Sprintf("%T", err)),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.String("query", c.Request.URL.RawQuery),
					zap.String("request_id", RequestIDFrom(c)),
					zap.Stack("stacktrace"),
				)

				if errorTemplate == "" || c.Writer.Written() {
					c.AbortWithStatus(http.StatusInternalServerError)
					return
				}
				c.HTML(http.StatusInternalServerError, errorTemplate, gin.H{})
				c.Abort()
			}
		}()

		c.Next()
	}
}
