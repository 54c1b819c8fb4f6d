package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"orderstock/api"
	"orderstock/config"
	"orderstock/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App Assembled application: HTTP server, router, optional database and
// outbox worker.
type App struct {
	config       *config.Config
	router       *api.Router
	server       *http.Server
	db           *gorm.DB
	outboxWorker outboxRunner
}

// outboxRunner is the background publisher loop; nil when the outbox is
// disabled or the memory adapter is in use.
type outboxRunner interface {
	Run(ctx context.Context) error
}

// Run Start the server and block until a shutdown signal arrives
// SIGINT/SIGTERM trigger a graceful shutdown bounded by
// server.shutdown_timeout; the outbox worker is stopped with the server.
func (a *App) Run() error {
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	if a.outboxWorker != nil {
		go func() {
			if err := a.outboxWorker.Run(workerCtx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("Outbox worker stopped", zap.Error(err))
			}
		}()
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	stopWorker()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced server shutdown", zap.Error(err))
		return err
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", zap.Error(err))
			}
		}
	}

	logger.Info("Server stopped")
	return logger.Sync()
}

// GetEngine Get the Gin engine (for tests)
func (a *App) GetEngine() *gin.Engine {
	return a.router.GetEngine()
}
