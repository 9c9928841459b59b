package api

import (
	"errors"
	"net/http"
	"strings"

	"go-blog/internal/middleware"
	"go-blog/internal/service"
	"go-blog/pkg/config"
	"go-blog/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.L.Warn("Failed to bind Register request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) || errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.L.Error("Error registering user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Register successful",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// LoginPage tells the renderer to show the login form.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	respond(c, Rendered("registration/login.html", gin.H{"next": safeNext(c.Query("next"))}))
}

// Login issues a token and stores it in a cookie. With a next parameter the
// client is sent back to the page that required the login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.authService.Login(req)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			logger.L.Error("Error logging in", zap.String("username", req.Username), zap.Error(err))
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
		return
	}

	maxAge := int(config.GlobalConfig.JWT.Expiration.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, maxAge, "/", "", false, true)
	logger.L.Info("User logged in", zap.Uint("userID", user.ID))

	next := c.Query("next")
	if next == "" {
		next = c.PostForm("next")
	}
	if next = safeNext(next); next != "" {
		c.Redirect(http.StatusFound, next)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"avatar":   user.Avatar,
		},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// safeNext only allows local paths as redirect targets.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	return next
}
