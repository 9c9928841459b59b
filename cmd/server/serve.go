package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go-blog/internal/api"
	"go-blog/internal/event"
	"go-blog/internal/repository"
	"go-blog/internal/service"
	"go-blog/pkg/config"
	"go-blog/pkg/db"
	"go-blog/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var skipMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  serve,
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not migrate the schema on startup")
	rootCmd.AddCommand(serveCmd)
}

func serve(cmd *cobra.Command, args []string) error {
	cfg := config.GlobalConfig
	if cfg.Log.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	if !skipMigrate {
		if err := db.Migrate(db.DB); err != nil {
			return err
		}
	}

	publisher, err := event.CreatePublisher(cfg.Messaging)
	if err != nil {
		return err
	}
	defer publisher.Close()

	store, err := service.NewImageStore(cfg.Storage)
	if err != nil {
		return err
	}

	users := repository.NewUserRepository(db.DB)
	groups := repository.NewGroupRepository(db.DB)
	images := service.NewImageService(store, cfg.Storage.MaxFileSize)

	posts := service.NewPostService(
		repository.NewPostRepository(db.DB),
		repository.NewCommentRepository(db.DB),
		groups,
		users,
		images,
		publisher,
		cfg.Pagination.PostsPerPage,
	)
	handler := api.NewHandler(
		posts,
		service.NewGroupService(groups, cfg.Pagination.GroupsPerPage),
		service.NewFollowService(repository.NewFollowRepository(db.DB), users, publisher),
		images,
	)

	routerCfg := api.RouterConfig{LoginURL: cfg.Server.LoginURL, MediaPrefix: cfg.Storage.URLPrefix}
	if local, ok := store.(*service.LocalImageStore); ok {
		routerCfg.MediaRoot = local.BasePath()
	}
	router := api.NewRouter(routerCfg, service.NewAuthService(users), handler)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.L.Info("Server starting", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.L.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
