package domain

import (
	"gear-client/pkg/apperror"

	"github.com/rs/zerolog"
)

// Credentials identify one gateway account. The secret keys every request
// signature and every callback check, so it is never rendered by String.
type Credentials struct {
	GatewayID     string
	GatewaySecret string
}

// Validate reports a configuration error when either field is empty.
func (c Credentials) Validate() error {
	if c.GatewayID == "" {
		return apperror.ErrConfiguration("gateway id is required")
	}
	if c.GatewaySecret == "" {
		return apperror.ErrConfiguration("gateway secret is required")
	}
	return nil
}

// String returns a representation safe for logs.
func (c Credentials) String() string {
	return "Credentials{GatewayID: " + c.GatewayID + ", GatewaySecret: " + mask(c.GatewaySecret) + "}"
}

// GoString keeps %#v from leaking the secret.
func (c Credentials) GoString() string {
	return c.String()
}

// MarshalZerologObject logs the gateway id only.
func (c Credentials) MarshalZerologObject(e *zerolog.Event) {
	e.Str("gateway_id", c.GatewayID)
}

func mask(s string) string {
	if s == "" {
		return `""`
	}
	return "[REDACTED]"
}
