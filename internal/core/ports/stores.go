package ports

import (
	"context"
	"net/http"
	"time"
)

//go:generate mockgen -source=stores.go -destination=mocks/mock_stores.go -package=mocks

// HTTPClient is the transport the gateway client sends requests through.
// *http.Client satisfies it; timeouts are the transport's concern.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// CallbackStore remembers which callbacks have already been processed.
type CallbackStore interface {
	// MarkSeen records key if absent. Returns true if the key is new,
	// false if it was already recorded within ttl.
	MarkSeen(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Forget removes key so a redelivery is processed again.
	Forget(ctx context.Context, key string) error
}
