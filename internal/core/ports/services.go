package ports

import (
	"context"

	"gear-client/internal/core/domain"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// SignatureService computes and checks keyed signatures over a request's
// method and URL. Query parameters are signed in the order given.
type SignatureService interface {
	// Sign signs a request that carries no nonce and no body (gateway callbacks).
	Sign(secret, method, requestURL string) string
	// SignRequest signs an outbound API request.
	SignRequest(secret, method, requestURL, nonce string, body []byte) string
	// Verify reports whether presented is the signature of (method, requestURL).
	// Malformed or empty signatures yield false.
	Verify(secret, method, requestURL, presented string) bool
}

// CreateOrderOptions carries the optional order creation parameters.
type CreateOrderOptions struct {
	// CallbackData is echoed back by the gateway in every callback for this order.
	CallbackData string
}

// GatewayClient is the order API of the payment gateway.
type GatewayClient interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal, keychainID int64, opts CreateOrderOptions) (*domain.Order, error)
	CancelOrder(ctx context.Context, paymentID string) error
	CheckOrder(ctx context.Context, paymentID string) (*domain.Order, error)
	LastKeychainID(ctx context.Context) (int64, error)
	PaymentLink(paymentID string) string
	WebsocketLink(paymentID string) string
	CallbackValidator
}

// CallbackValidator checks the signature a gateway callback was delivered with.
type CallbackValidator interface {
	GatewayID() string
	IsOrderCallbackValid(method, callbackURL, signature string) bool
}

// CallbackProcessor is implemented by the host application to act on verified callbacks.
type CallbackProcessor interface {
	ProcessOrderCallback(ctx context.Context, cb *domain.Callback) error
}

// CallbackService verifies, de-duplicates and dispatches gateway callbacks.
type CallbackService interface {
	Handle(ctx context.Context, method, callbackURL, signature string) (*domain.Callback, error)
}

// OrderWatcher streams order snapshots pushed by the gateway.
type OrderWatcher interface {
	Watch(ctx context.Context, paymentID string) (<-chan domain.Order, error)
}
