package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"pdfhash/internal/api"
	"pdfhash/internal/config"
	"pdfhash/internal/database"
	"pdfhash/internal/handler"

	//Import registered hashing algorithms here
	_ "pdfhash/internal/hashing/blake3"
	_ "pdfhash/internal/hashing/sha256"
	_ "pdfhash/internal/hashing/sha512"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	// The audit store is optional: without DATABASE_URL digests are computed
	// but not recorded.
	var recorder handler.DigestRecorder
	if cfg.DatabaseURL != "" {
		dbPool, err := database.NewPostgresPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer dbPool.Close()
		logger.Info("connected to digest audit database")
		recorder = database.NewDigestStore(dbPool)
	}

	core := handler.New(cfg, logger, recorder)

	// Raw body ceiling: base64 expansion of the payload ceiling plus JSON framing.
	maxBody := cfg.MaxPayloadBytes*4/3 + 1024
	router := api.NewRouter(api.NewHandlers(core, logger, maxBody))

	// Create and start the HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  120 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited gracefully")
}

func newLogger() *zap.Logger {
	if os.Getenv("DEBUG") == "true" {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}
