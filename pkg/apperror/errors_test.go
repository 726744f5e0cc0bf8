package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   Validation("payment id is required"),
			expected: "[REQ_001] payment id is required",
		},
		{
			name:     "with wrapped error",
			appErr:   ErrTransport("CheckOrder", fmt.Errorf("connection refused")),
			expected: "[NET_001] CheckOrder: gateway request failed: connection refused",
		},
		{
			name:     "with gateway status",
			appErr:   ErrGatewayStatus("CancelOrder", 404, "not found"),
			expected: "[GW_001] CancelOrder: unexpected gateway response (gateway status 404)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("dial tcp: i/o timeout")
	appErr := ErrTransport("CreateOrder", inner)

	assert.True(t, errors.Is(appErr, inner))
	assert.Nil(t, Validation("x").Unwrap())
}

func TestIsKind(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", ErrGatewayStatus("CheckOrder", 500, "boom"))

	assert.True(t, IsKind(wrapped, KindGatewayProtocol))
	assert.False(t, IsKind(wrapped, KindTransport))
	assert.False(t, IsKind(errors.New("plain"), KindGatewayProtocol))
	assert.False(t, IsKind(nil, KindSystem))
}

func TestHasCode(t *testing.T) {
	assert.True(t, HasCode(ErrAddressInUse(422, "Invalid order: address already in use"), "GW_003"))
	assert.False(t, HasCode(ErrDuplicateCallback(), "GW_003"))
}

func TestGatewayErrors_CarryRawResponse(t *testing.T) {
	statusErr := ErrGatewayStatus("CheckOrder", 502, "<html>bad gateway</html>")
	assert.Equal(t, 502, statusErr.GatewayStatus)
	assert.Equal(t, "<html>bad gateway</html>", statusErr.GatewayBody)

	inner := errors.New("unexpected EOF")
	malformed := ErrMalformedResponse("CreateOrder", 200, "{", inner)
	assert.Equal(t, "GW_002", malformed.Code)
	assert.Equal(t, 200, malformed.GatewayStatus)
	assert.Equal(t, "{", malformed.GatewayBody)
	assert.True(t, errors.Is(malformed, inner))
}

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		kind       Kind
		code       string
		httpStatus int
	}{
		{"Configuration", ErrConfiguration("gateway secret is required"), KindConfiguration, "CFG_001", http.StatusInternalServerError},
		{"InvalidAmount", ErrInvalidAmount(), KindValidation, "REQ_001", http.StatusBadRequest},
		{"EmptyPaymentID", ErrEmptyPaymentID(), KindValidation, "REQ_001", http.StatusBadRequest},
		{"Transport", ErrTransport("op", errors.New("x")), KindTransport, "NET_001", http.StatusBadGateway},
		{"AddressInUse", ErrAddressInUse(422, ""), KindGatewayProtocol, "GW_003", http.StatusConflict},
		{"Unauthorized", ErrUnauthorized(), KindSecurity, "SEC_001", http.StatusUnauthorized},
		{"InvalidSignature", ErrInvalidSignature(), KindSecurity, "SEC_002", http.StatusUnauthorized},
		{"DuplicateCallback", ErrDuplicateCallback(), KindCallback, "CB_001", http.StatusOK},
		{"RateLimit", ErrRateLimitExceeded(), KindRateLimit, "RATE_001", http.StatusTooManyRequests},
		{"Internal", InternalError(errors.New("x")), KindSystem, "SYS_001", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}
