package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/paywrap/ezidebit-gateway/internal/interfaces/rest"
)

// Recovery recovers from handler panics and returns 500
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error(
					"panic recovered",
					"panic", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, rest.ErrorResponse{
					Success: false,
					Error: rest.ErrorDetail{
						Code:    "INTERNAL_ERROR",
						Message: "An internal error occurred",
					},
				})
			}
		}()

		c.Next()
	}
}
