// cmd/jobboard/main.go
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	http_api "job-board/internal/api/http"
	"job-board/internal/config"
	"job-board/internal/domain"
	"job-board/internal/infra/idgen"
	"job-board/internal/infra/memory"
	"job-board/internal/scheduler"
	"job-board/internal/seed"
	"job-board/internal/tracing"
	"job-board/internal/usecase"
	"job-board/internal/validation"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const resetTaskName = "board-reset"

// corsMiddleware wraps an http.Handler with CORS headers for local development.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, X-Request-ID")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize logger and tracer
	instanceID := uuid.New().String()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})).
		With("instance_id", instanceID)
	slog.SetDefault(logger)

	tracerShutdown, err := tracing.InitTracer("job-board", cfg.TracingEnabled, os.Stderr)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tracerShutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown tracer", "error", err)
		}
	}()

	logger.Info("starting job board", "addr", cfg.HttpListenAddr, "id_strategy", cfg.IDStrategy)

	// 3. Create root context for lifecycle management
	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupGracefulShutdown(cancel, logger)

	// 4. Instantiate components
	ids, err := idgen.New(cfg.IDStrategy)
	if err != nil {
		log.Fatalf("Failed to create id generator: %v", err)
	}

	var seedJobs []domain.JobFields
	if cfg.SeedSampleJobs {
		seedJobs, err = seed.Load(cfg.SeedFile)
		if err != nil {
			log.Fatalf("Failed to load seed jobs: %v", err)
		}
	}

	store := memory.NewJobStore(ids, logger)
	notifier := memory.NewNotifier(cfg.ToastTTL, logger)
	jobService := usecase.NewJobService(store, notifier, validation.New(), seedJobs, cfg.DeleteGracePeriod, logger)
	jobService.Seed(rootCtx)
	logger.Info("board seeded", "count", store.Count())

	// 5. Optional scheduled reset back to the seed listings
	if cfg.ResetSchedule != "" {
		cronScheduler := scheduler.NewCronScheduler(config.ScheduleParser, logger)
		if err := cronScheduler.AddTask(resetTaskName, cfg.ResetSchedule, func(ctx context.Context) {
			jobService.Reset(ctx)
		}); err != nil {
			log.Fatalf("Failed to schedule board reset: %v", err)
		}
		go func() {
			if err := cronScheduler.Start(rootCtx); err != nil && err != context.Canceled {
				logger.Error("scheduler stopped with error", "error", err)
			}
		}()
	}

	// 6. Register routes and metrics endpoint
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	http_api.NewBoardHandler(jobService, logger).RegisterRoutes(mux)
	http_api.NewJobHandler(jobService, logger).RegisterRoutes(mux)

	// 7. Start HTTP server with CORS middleware
	server := &http.Server{
		Addr:              cfg.HttpListenAddr,
		Handler:           corsMiddleware(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()
	logger.Info("HTTP server listening", "addr", cfg.HttpListenAddr)

	// 8. Block until shutdown
	<-rootCtx.Done()
	logger.Info("shutting down gracefully")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}

	logger.Info("job board shut down")
}

func setupGracefulShutdown(cancel context.CancelFunc, logger *slog.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("received signal, initiating graceful shutdown", "signal", sig.String())
		cancel()
	}()
}
