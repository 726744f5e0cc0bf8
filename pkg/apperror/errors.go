package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind groups error codes by who is at fault and whether a retry can help.
type Kind string

const (
	KindConfiguration   Kind = "configuration"
	KindValidation      Kind = "validation"
	KindTransport       Kind = "transport"
	KindGatewayProtocol Kind = "gateway_protocol"
	KindSecurity        Kind = "security"
	KindCallback        Kind = "callback"
	KindRateLimit       Kind = "rate_limit"
	KindSystem          Kind = "system"
)

// AppError is a structured error shared by the gateway client and the callback endpoint.
type AppError struct {
	Kind       Kind   `json:"-"`
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`

	// Populated for gateway protocol errors only.
	GatewayStatus int    `json:"-"`
	GatewayBody   string `json:"-"`

	Err error `json:"-"` // Wrapped cause (not exposed to clients)
}

func (e *AppError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.GatewayStatus != 0 {
		msg = fmt.Sprintf("%s (gateway status %d)", msg, e.GatewayStatus)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(kind Kind, code string, message string, httpStatus int) *AppError {
	return &AppError{
		Kind:       kind,
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(kind Kind, code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Kind:       kind,
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// IsKind reports whether err is an AppError of the given kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// ---- Configuration (CFG) ----

func ErrConfiguration(message string) *AppError {
	return New(KindConfiguration, "CFG_001", message, http.StatusInternalServerError)
}

// ---- Request validation (REQ) ----

func Validation(message string) *AppError {
	return New(KindValidation, "REQ_001", message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return Validation("amount must be positive")
}

func ErrEmptyPaymentID() *AppError {
	return Validation("payment id is required")
}

// ---- Transport (NET) ----

// ErrTransport marks a request that never produced an HTTP response.
func ErrTransport(op string, err error) *AppError {
	return Wrap(KindTransport, "NET_001", fmt.Sprintf("%s: gateway request failed", op), http.StatusBadGateway, err)
}

// ---- Gateway protocol (GW) ----

// ErrGatewayStatus is returned when the gateway answers with a non-2xx status.
func ErrGatewayStatus(op string, status int, body string) *AppError {
	e := New(KindGatewayProtocol, "GW_001", fmt.Sprintf("%s: unexpected gateway response", op), http.StatusBadGateway)
	e.GatewayStatus = status
	e.GatewayBody = body
	return e
}

// ErrMalformedResponse is returned when a 2xx body does not decode into the expected shape.
func ErrMalformedResponse(op string, status int, body string, err error) *AppError {
	e := Wrap(KindGatewayProtocol, "GW_002", fmt.Sprintf("%s: malformed gateway response", op), http.StatusBadGateway, err)
	e.GatewayStatus = status
	e.GatewayBody = body
	return e
}

// ErrAddressInUse is returned by order creation when the keychain address already has an order.
func ErrAddressInUse(status int, body string) *AppError {
	e := New(KindGatewayProtocol, "GW_003", "invalid order: address already in use", http.StatusConflict)
	e.GatewayStatus = status
	e.GatewayBody = body
	return e
}

// ---- Security (SEC) ----

func ErrUnauthorized() *AppError {
	return New(KindSecurity, "SEC_001", "Missing or invalid admin token", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New(KindSecurity, "SEC_002", "Invalid signature", http.StatusUnauthorized)
}

// ---- Callbacks (CB) ----

func ErrDuplicateCallback() *AppError {
	return New(KindCallback, "CB_001", "Callback already processed", http.StatusOK)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(KindRateLimit, "RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(KindSystem, "SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
