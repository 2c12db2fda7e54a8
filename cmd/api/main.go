package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"procurement-search/config"
	"procurement-search/internal/delivery/http/middleware"
	v1 "procurement-search/internal/delivery/http/v1"
	"procurement-search/internal/infrastructure/cache"
	"procurement-search/internal/repository"
	"procurement-search/internal/seed"
	"procurement-search/internal/usecase"
	"procurement-search/pkg/logger"

	"github.com/NYTimes/gziphandler"
	"golang.org/x/time/rate"
)

const serviceName = "procurement-search"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		stdlog.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Initialize storage
	store, err := repository.Open(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("Failed to open storage")
	}
	defer store.Close()

	// The memory backend starts empty; load fixtures into it when configured.
	if cfg.DBDriver == config.DriverMemory && cfg.SeedFile != "" {
		if _, err := seed.RunSource(context.Background(), cfg, store.Seeds, cfg.SeedFile); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed memory store")
		}
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newHandler(cfg, store),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	logger.ServiceStart(serviceName, cfg.DBDriver, cfg.Port)

	// Wait for interrupt signal via channel
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.ServiceStop(serviceName)
}

// newHandler wires repositories, usecases and handlers into the routed,
// middleware-wrapped HTTP handler.
func newHandler(cfg *config.Config, store *repository.Store) http.Handler {
	// Search Module
	searchUC := usecase.NewSearchUsecase(store.Records, store.Buyers, cfg.QueryTimeout)
	searchHandler := v1.NewSearchHandler(searchUC, cfg.MaxBodyBytes)

	// Buyer Module
	buyerUC := usecase.NewBuyerUsecase(store.Buyers, cfg.QueryTimeout)
	buyerHandler := v1.NewBuyerHandler(buyerUC)

	healthHandler := v1.NewHealthHandler(store, cfg.QueryTimeout)

	// Set up Router
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/records", searchHandler.Search)
	mux.HandleFunc("GET /api/buyers", buyerHandler.ListBuyers)
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Rate limiter clients live in a TTL store; idle entries are evicted every minute.
	rateLimiter := middleware.NewRateLimiter(
		cache.NewMemoryStore(cfg.RateLimitClientTTL, time.Minute),
		rate.Limit(cfg.RateLimitRPS),
		cfg.RateLimitBurst,
		cfg.RateLimitClientTTL,
	)

	// Outermost first: CORS, Request Logger, Recovery, Rate Limit, Gzip
	handler := gziphandler.GzipHandler(mux)
	handler = rateLimiter.Middleware()(handler)
	handler = middleware.Recovery(handler)
	handler = middleware.RequestLogger(handler)
	handler = middleware.NewCORSMiddleware(cfg)(handler)

	return handler
}
