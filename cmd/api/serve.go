package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go-concurso-backend/config"
	"go-concurso-backend/internal/delivery/http/middleware"
	v1 "go-concurso-backend/internal/delivery/http/v1"
	"go-concurso-backend/internal/matching"
	"go-concurso-backend/internal/usecase"
	"go-concurso-backend/pkg/logger"
	"go-concurso-backend/pkg/metrics"
	"go-concurso-backend/pkg/redis"
	"go-concurso-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting concurso backend", "port", cfg.Port, "store", cfg.StoreDriver, "match_mode", cfg.ProfessionMatchMode)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Setup Stores
	st, err := openStores(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open stores: %w", err)
	}
	defer st.Close()

	checkers := st.healthCheckers()

	// 4. Setup Redis (optional, rate limiting falls back to memory)
	var redisClient *goredis.Client
	redisClient, err = redis.New(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
	switch {
	case errors.Is(err, redis.ErrNotConfigured):
		logger.Log.Info("Redis not configured, using in-memory rate limiting")
	case err != nil:
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	default:
		defer redisClient.Close()
		checkers = append(checkers, redis.Checker{Client: redisClient})
	}

	// 5. Setup UseCases
	normalize, err := matching.NormalizerFor(cfg.ProfessionMatchMode)
	if err != nil {
		return err
	}
	m := metrics.New()
	validate := validation.New()
	candidateUC := usecase.NewCandidateUsecase(st.candidates, validate, m)
	contestUC := usecase.NewContestUsecase(st.contests, validate, m)
	matchUC := usecase.NewMatchUsecase(st.candidates, st.contests, matching.New(normalize), m)
	healthUC := usecase.NewHealthUsecase(checkers...)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CandidateUC: candidateUC,
		ContestUC:   contestUC,
		MatchUC:     matchUC,
		HealthUC:    healthUC,
		RateLimiter: middleware.NewRateLimiter(redisClient),
		Metrics:     m,
		Config:      cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Log.Error("Server stopped with error", "error", err)
		return err
	}
	logger.Log.Info("Server exiting")
	return nil
}
