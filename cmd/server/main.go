// Command server starts the Resume Analyzer HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpserver "github.com/fairyhunter13/resume-analyzer/internal/adapter/httpserver"
	"github.com/fairyhunter13/resume-analyzer/internal/adapter/textextractor/local"
	"github.com/fairyhunter13/resume-analyzer/internal/analyzer"
	"github.com/fairyhunter13/resume-analyzer/internal/app"
	"github.com/fairyhunter13/resume-analyzer/internal/config"
	"github.com/fairyhunter13/resume-analyzer/internal/observability"
	"github.com/fairyhunter13/resume-analyzer/internal/usecase"
)

func main() {
	// Best-effort .env for local development; real deployments use the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)

	// Register Prometheus metrics once per process so /metrics exposes
	// HTTP and analysis instrumentation.
	observability.InitMetrics()

	// The engine is pure and stateless; one instance serves all requests.
	engine := analyzer.New()
	analyzeSvc := usecase.NewAnalyzeService(engine)
	extractor := local.New()

	srv := httpserver.NewServer(cfg, analyzeSvc, extractor)
	handler := app.BuildRouter(cfg, srv)

	srvHTTP := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", slog.Int("port", cfg.Port))
		errCh <- srvHTTP.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	_ = srvHTTP.Shutdown(shutdownCtx)
}
