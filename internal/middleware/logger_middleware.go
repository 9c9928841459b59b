package middleware

import (
	"net/http"
	"time"

	"go-blog/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func GinZapLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		// Process request
		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String()

		fields := []zap.Field{
			zap.Int("status", statusCode),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", latency),
			zap.String("user_agent", c.Request.UserAgent()),
		}
		if query != "" {
			fields = append(fields, zap.String("query", query))
		}
		if errorMessage != "" {
			fields = append(fields, zap.String("error", errorMessage))
		}
		if user := CurrentUser(c); user != nil {
			fields = append(fields, zap.Uint("userID", user.ID))
		}

		// Choose log level based on status code
		switch {
		case statusCode >= http.StatusInternalServerError:
			logger.L.Error("Request", fields...)
		case statusCode >= http.StatusBadRequest:
			logger.L.Warn("Request", fields...)
		default:
			logger.L.Info("Request", fields...)
		}
	}
}
