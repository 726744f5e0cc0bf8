package handler

import (
	"net/http"

	"gear-client/internal/adapter/http/middleware"
	"gear-client/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxRequestBody = 64 << 10

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CallbackSvc    ports.CallbackService
	CallbackPath   string
	RateLimitStore middleware.RateLimitStore // nil = rate limiting disabled
	CallbackLimit  middleware.RateLimitRule
	GatewayClient  ports.GatewayClient // nil = admin API disabled
	OrderWatcher   ports.OrderWatcher  // nil = order events disabled
	AdminToken     string              // empty = admin API disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxRequestBody))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	callbackChain := []gin.HandlerFunc{}
	if deps.RateLimitStore != nil && deps.CallbackLimit.Limit > 0 {
		callbackChain = append(callbackChain,
			middleware.RateLimiter(deps.RateLimitStore, "callback", deps.CallbackLimit, deps.Logger))
	}
	callbackChain = append(callbackChain, NewCallbackHandler(deps.CallbackSvc, deps.Logger).Handle)

	// The gateway may deliver with either method.
	r.Handle(http.MethodGet, deps.CallbackPath, callbackChain...)
	r.Handle(http.MethodPost, deps.CallbackPath, callbackChain...)

	if deps.GatewayClient != nil && deps.AdminToken != "" {
		orderHandler := NewOrderHandler(deps.GatewayClient, deps.OrderWatcher)
		orders := r.Group("/api/v1/orders", middleware.AdminToken(deps.AdminToken))
		{
			orders.POST("", orderHandler.Create)
			orders.GET("/last-keychain-id", orderHandler.LastKeychainID)
			orders.GET("/:payment_id", orderHandler.Get)
			orders.POST("/:payment_id/cancel", orderHandler.Cancel)
			orders.GET("/:payment_id/events", orderHandler.Events)
		}
	}

	return r
}
