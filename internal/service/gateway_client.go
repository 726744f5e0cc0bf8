package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gear-client/internal/core/domain"
	"gear-client/internal/core/ports"
	"gear-client/pkg/apperror"
	"gear-client/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the gateway's public API host.
	DefaultBaseURL = "https://gateway.gear.mycelium.com"
	// DefaultWebsocketURL is the host serving order status websockets.
	DefaultWebsocketURL = "wss://gateway.gear.mycelium.com"

	// Header names for signed gateway requests
	HeaderNonce     = "X-Nonce"
	HeaderSignature = "X-Signature"

	addressInUseBody = "Invalid order: address already in use"
	maxResponseBytes = 1 << 20
)

var errMissingOrderIDs = errors.New("order has no id or payment_id")

// GatewayClient implements ports.GatewayClient. All fields are set at
// construction and never mutated, so one instance may be shared freely.
type GatewayClient struct {
	creds      domain.Credentials
	baseURL    string
	wsURL      string
	sigSvc     ports.SignatureService
	httpClient ports.HTTPClient
	limiter    *rate.Limiter
	nonce      func() int64
	log        zerolog.Logger
}

// ClientOption customises a GatewayClient.
type ClientOption func(*GatewayClient)

// WithBaseURL points the client at a different API host.
func WithBaseURL(u string) ClientOption {
	return func(c *GatewayClient) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithWebsocketURL points order status websockets at a different host.
func WithWebsocketURL(u string) ClientOption {
	return func(c *GatewayClient) { c.wsURL = strings.TrimRight(u, "/") }
}

// WithSignatureService replaces the gateway signature scheme.
func WithSignatureService(s ports.SignatureService) ClientOption {
	return func(c *GatewayClient) { c.sigSvc = s }
}

// WithRateLimiter throttles outbound requests. The limiter is waited on with
// the caller's context.
func WithRateLimiter(l *rate.Limiter) ClientOption {
	return func(c *GatewayClient) { c.limiter = l }
}

// WithNonceFunc overrides the X-Nonce source (unix seconds by default).
func WithNonceFunc(f func() int64) ClientOption {
	return func(c *GatewayClient) { c.nonce = f }
}

// NewGatewayClient creates a gateway client. Missing credentials or a nil
// transport are configuration errors reported before any request is made.
func NewGatewayClient(creds domain.Credentials, httpClient ports.HTTPClient, log zerolog.Logger, opts ...ClientOption) (*GatewayClient, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	if httpClient == nil {
		return nil, apperror.ErrConfiguration("http client is required")
	}

	c := &GatewayClient{
		creds:      creds,
		baseURL:    DefaultBaseURL,
		wsURL:      DefaultWebsocketURL,
		sigSvc:     NewGearSignatureService(),
		httpClient: httpClient,
		nonce:      func() int64 { return time.Now().Unix() },
		log:        logger.Component(log, "gateway_client").With().EmbedObject(creds).Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sigSvc == nil {
		return nil, apperror.ErrConfiguration("signature service is required")
	}
	return c, nil
}

// GatewayID returns the gateway account this client acts for.
func (c *GatewayClient) GatewayID() string {
	return c.creds.GatewayID
}

// CreateOrder asks the gateway for a new payment order. amount is in the
// gateway's configured currency; keychainID selects the HD-wallet index of
// the receiving address and its uniqueness is the caller's responsibility.
func (c *GatewayClient) CreateOrder(ctx context.Context, amount decimal.Decimal, keychainID int64, opts ports.CreateOrderOptions) (*domain.Order, error) {
	const op = "CreateOrder"
	if !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if keychainID < 0 {
		return nil, apperror.Validation("keychain id must not be negative")
	}

	params := queryParams{
		{"amount", amount.String()},
		{"keychain_id", strconv.FormatInt(keychainID, 10)},
	}
	if opts.CallbackData != "" {
		params = append(params, queryParam{"callback_data", opts.CallbackData})
	}

	status, body, err := c.do(ctx, op, http.MethodPost, "orders", params.encode())
	if err != nil {
		return nil, err
	}
	order, err := decodeOrder(op, status, body)
	if err != nil {
		return nil, err
	}

	c.log.Info().
		Str("payment_id", order.PaymentID).
		Str("order_id", order.OrderID).
		Int64("keychain_id", order.KeychainID).
		Msg("order created")
	return order, nil
}

// CancelOrder asks the gateway to cancel an order. The gateway's answer is
// authoritative; re-fetch with CheckOrder to observe the new state.
func (c *GatewayClient) CancelOrder(ctx context.Context, paymentID string) error {
	if paymentID == "" {
		return apperror.ErrEmptyPaymentID()
	}
	_, _, err := c.do(ctx, "CancelOrder", http.MethodPost, "orders/"+url.PathEscape(paymentID)+"/cancel", "")
	return err
}

// CheckOrder fetches the current snapshot of an order.
func (c *GatewayClient) CheckOrder(ctx context.Context, paymentID string) (*domain.Order, error) {
	const op = "CheckOrder"
	if paymentID == "" {
		return nil, apperror.ErrEmptyPaymentID()
	}
	status, body, err := c.do(ctx, op, http.MethodGet, "orders/"+url.PathEscape(paymentID), "")
	if err != nil {
		return nil, err
	}
	return decodeOrder(op, status, body)
}

// LastKeychainID returns the last keychain index the gateway has used.
func (c *GatewayClient) LastKeychainID(ctx context.Context) (int64, error) {
	const op = "LastKeychainID"
	status, body, err := c.do(ctx, op, http.MethodGet, "last_keychain_id", "")
	if err != nil {
		return 0, err
	}

	var info domain.KeychainInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return 0, apperror.ErrMalformedResponse(op, status, string(body), err)
	}
	return info.LastKeychainID, nil
}

// PaymentLink returns the hosted payment page of an order.
func (c *GatewayClient) PaymentLink(paymentID string) string {
	return c.baseURL + "/pay/" + url.PathEscape(paymentID)
}

// WebsocketLink returns the websocket URL streaming an order's status.
func (c *GatewayClient) WebsocketLink(paymentID string) string {
	return c.wsURL + c.endpoint("orders/"+url.PathEscape(paymentID)+"/websocket")
}

// IsOrderCallbackValid reports whether signature authenticates a callback
// delivered as method + callbackURL. callbackURL may be absolute or a request
// URI; the gateway signs the path and query only. method is signed as given,
// so it must match the case the gateway used. Any malformed input yields false.
func (c *GatewayClient) IsOrderCallbackValid(method, callbackURL, signature string) bool {
	if method == "" || callbackURL == "" || signature == "" {
		return false
	}
	requestURI, ok := callbackRequestURI(callbackURL)
	if !ok {
		return false
	}
	return c.sigSvc.Verify(c.creds.GatewaySecret, method, requestURI, signature)
}

func callbackRequestURI(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if u.Scheme == "" && u.Host == "" {
		return raw, true
	}
	return u.RequestURI(), true
}

func (c *GatewayClient) endpoint(resource string) string {
	return "/gateways/" + url.PathEscape(c.creds.GatewayID) + "/" + resource
}

// do sends one signed request and returns the status and body of a 2xx
// response. Everything else is mapped onto the apperror taxonomy.
func (c *GatewayClient) do(ctx context.Context, op, method, resource, query string) (int, []byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, nil, apperror.ErrTransport(op, err)
		}
	}

	requestURI := c.endpoint(resource) + query
	nonce := strconv.FormatInt(c.nonce(), 10)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+requestURI, nil)
	if err != nil {
		return 0, nil, apperror.ErrTransport(op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderNonce, nonce)
	req.Header.Set(HeaderSignature, c.sigSvc.SignRequest(c.creds.GatewaySecret, method, requestURI, nonce, nil))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("op", op).Str("method", method).Msg("gateway request failed")
		return 0, nil, apperror.ErrTransport(op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, apperror.ErrTransport(op, err)
	}

	c.log.Debug().
		Str("op", op).
		Str("method", method).
		Str("path", requestURI).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("gateway request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text := strings.TrimSpace(string(body))
		if text == addressInUseBody {
			return 0, nil, apperror.ErrAddressInUse(resp.StatusCode, text)
		}
		return 0, nil, apperror.ErrGatewayStatus(op, resp.StatusCode, string(body))
	}
	return resp.StatusCode, body, nil
}

func decodeOrder(op string, status int, body []byte) (*domain.Order, error) {
	var order domain.Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, apperror.ErrMalformedResponse(op, status, string(body), err)
	}
	if order.PaymentID == "" || order.OrderID == "" {
		return nil, apperror.ErrMalformedResponse(op, status, string(body), errMissingOrderIDs)
	}
	return &order, nil
}

// queryParams keeps parameters in insertion order; the gateway signs the
// query string exactly as sent.
type queryParams []queryParam

type queryParam struct {
	key, value string
}

func (p queryParams) encode() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for i, kv := range p {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.value))
	}
	return b.String()
}
