package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gear-client/config"
	httpHandler "gear-client/internal/adapter/http/handler"
	"gear-client/internal/adapter/http/middleware"
	redisStorage "gear-client/internal/adapter/storage/redis"
	"gear-client/internal/core/ports"
	"gear-client/internal/service"
	"gear-client/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("GEAR_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("signature_scheme", cfg.Gateway.SignatureScheme).
		Msg("Starting Gear callback server")

	ctx := context.Background()

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, logger.Component(log, "redis"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Gateway client
	sigSvc, err := service.NewSignatureService(cfg.Gateway.SignatureScheme)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid signature scheme")
	}

	opts := []service.ClientOption{
		service.WithBaseURL(cfg.Gateway.BaseURL),
		service.WithWebsocketURL(cfg.Gateway.WebsocketURL),
		service.WithSignatureService(sigSvc),
	}
	if cfg.Gateway.RateLimit > 0 {
		opts = append(opts, service.WithRateLimiter(rate.NewLimiter(rate.Limit(cfg.Gateway.RateLimit), cfg.Gateway.RateBurst)))
	}

	gatewayClient, err := service.NewGatewayClient(
		cfg.Credentials(),
		&http.Client{Timeout: cfg.Gateway.Timeout},
		log,
		opts...,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize gateway client")
	}

	// Callback pipeline
	callbackSvc := service.NewCallbackService(
		gatewayClient,
		redisStorage.NewCallbackStore(rdb),
		service.NewLoggingCallbackProcessor(log),
		cfg.Callback.DedupeTTL,
		log,
	)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CallbackSvc:    callbackSvc,
		CallbackPath:   cfg.Callback.Path,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		CallbackLimit: middleware.RateLimitRule{
			Limit:  cfg.Callback.RateLimit,
			Window: cfg.Callback.RateWindow,
		},
		GatewayClient:  gatewayClient,
		OrderWatcher:   service.NewOrderWatcher(gatewayClient, nil, log),
		AdminToken:     cfg.Server.AdminToken,
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("callback_path", cfg.Callback.Path).
			Bool("admin_api", cfg.Server.AdminToken != "").
			Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
