package api

import (
	"net/http"
	"strings"

	"go-blog/internal/middleware"
	"go-blog/internal/service"

	"github.com/gin-gonic/gin"
)

// RouterConfig holds what the router needs beyond the services.
type RouterConfig struct {
	LoginURL string
	// MediaRoot is served read-only at MediaPrefix when images are stored locally.
	MediaRoot   string
	MediaPrefix string
}

func NewRouter(cfg RouterConfig, auth *service.AuthService, h *Handler) *gin.Engine {
	if cfg.LoginURL == "" {
		cfg.LoginURL = "/auth/login"
	}

	r := gin.New()
	r.Use(middleware.GinZapLogger(), middleware.Recovery(), middleware.Authenticate(auth))
	r.NoRoute(handle(func(*gin.Context) Outcome { return NotFound() }))

	if cfg.MediaRoot != "" {
		prefix := strings.Trim(cfg.MediaPrefix, "/")
		if prefix == "" {
			prefix = "media"
		}
		r.Static("/"+prefix, cfg.MediaRoot)
	}

	authHandler := NewAuthHandler(auth)
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.GET("/login", authHandler.LoginPage)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/logout", authHandler.Logout)
	}

	// Public pages
	r.GET("/", handle(h.Index))
	r.GET("/group/:slug", handle(h.GroupPosts))
	r.GET("/profile/:username", handle(h.Profile))
	r.GET("/posts/:username/:post_id", handle(h.PostView))
	r.POST("/posts/:username/:post_id", handle(h.PostView))

	// Pages that need a signed-in user
	protected := r.Group("/", middleware.LoginRequired(cfg.LoginURL))
	{
		protected.GET("/groups", handle(h.Groups))
		protected.GET("/new", handle(h.NewPost))
		protected.POST("/new", handle(h.NewPost))
		protected.GET("/follow", handle(h.FollowIndex))
		protected.GET("/posts/:username/:post_id/edit", handle(h.PostEdit))
		protected.POST("/posts/:username/:post_id/edit", handle(h.PostEdit))
		protected.POST("/posts/:username/:post_id/comment", handle(h.AddComment))
		protected.Match([]string{http.MethodGet, http.MethodPost}, "/profile/:username/follow", handle(h.ProfileFollow))
		protected.Match([]string{http.MethodGet, http.MethodPost}, "/profile/:username/unfollow", handle(h.ProfileUnfollow))
	}

	return r
}
