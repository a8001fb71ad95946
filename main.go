package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "err", err)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatal("Failed to set up logging", "err", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	content, err := LoadContent(cfg.ContentFile)
	if err != nil {
		logger.Fatal("Failed to load content", "err", err)
	}
	if err := content.Validate(); err != nil {
		logger.Fatal("Refusing to serve broken content", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := newServer(cfg, content, logger)
	go s.pages.run(ctx, cfg.SweepInterval)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s.router(),
	}
	go func() {
		logger.Info("Portfolio listening", "addr", srv.Addr, "content", contentSource(cfg))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server stopped", "err", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", "err", err)
	}
}

func contentSource(cfg Config) string {
	if cfg.ContentFile == "" {
		return "built-in"
	}
	return cfg.ContentFile
}
