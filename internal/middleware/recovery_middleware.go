package middleware

import (
	"net/http"

	"go-blog/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FaultView is the generic server error page.
const FaultView = "misc/500.html"

// Recovery turns a panicking handler into the generic 500 page.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.L.Error("Handler panicked",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
			zap.Stack("stack"))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"view": FaultView,
			"data": gin.H{"path": c.Request.URL.Path},
		})
	})
}
