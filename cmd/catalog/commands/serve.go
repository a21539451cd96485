package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/ncobase/catalog/config"
	"github.com/ncobase/catalog/data"
	"github.com/ncobase/catalog/handler"
	"github.com/ncobase/catalog/logger"
	"github.com/ncobase/catalog/service"
)

// NewServeCommand creates the serve command running the HTTP API.
func NewServeCommand() *cobra.Command {
	var confPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the catalog HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(confPath)
		},
	}

	cmd.Flags().StringVar(&confPath, "conf", "", "path to config file, e.g. ./config.yaml")
	return cmd
}

func runServe(confPath string) error {
	cfg, err := config.Load(confPath)
	if err != nil {
		return err
	}

	log, cleanupLog, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer cleanupLog()

	ctx := context.Background()

	d, cleanupData, err := data.New(cfg.Data, log)
	if err != nil {
		return err
	}
	defer cleanupData()

	svc := service.NewService(d, log)
	h := handler.NewHandler(cfg, svc, log)

	if cfg.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handler.RequestID())
	router.Use(handler.RequestLogger(log))

	h.RegisterRoutes(router)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	cfg.Watch(func(next *config.Config) {
		log.Info(ctx, "configuration file changed; restart to apply", "run_mode", next.RunMode)
	})

	go func() {
		log.Info(ctx, "starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server forced to shutdown", "error", err)
		return err
	}

	log.Info(ctx, "server exited")
	return nil
}
