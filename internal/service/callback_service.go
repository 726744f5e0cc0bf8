package service

import (
	"context"
	"fmt"
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
)

// DefaultCallbackDedupeTTL bounds how long a processed callback is remembered.
const DefaultCallbackDedupeTTL = 24 * time.Hour

// CallbackService implements ports.CallbackService.
type CallbackService struct {
	validator ports.CallbackValidator
	store     ports.CallbackStore     // nil = no de-duplication
	processor ports.CallbackProcessor // nil = verify and parse only
	dedupeTTL time.Duration
	now       func() time.Time
	log       zerolog.Logger
}

// NewCallbackService creates a callback service.
func NewCallbackService(
	validator ports.CallbackValidator,
	store ports.CallbackStore,
	processor ports.CallbackProcessor,
	dedupeTTL time.Duration,
	log zerolog.Logger,
) *CallbackService {
	if dedupeTTL <= 0 {
		dedupeTTL = DefaultCallbackDedupeTTL
	}
	return &CallbackService{
		validator: validator,
		store:     store,
		processor: processor,
		dedupeTTL: dedupeTTL,
		now:       time.Now,
		log:       logger.Component(log, "callback_service"),
	}
}

// Handle verifies a callback, decodes its order snapshot and hands it to the
// processor once. Nothing in the query is trusted before the signature check.
// A redelivered callback returns the decoded callback together with a CB_001
// error so the caller can acknowledge it without acting twice.
func (s *CallbackService) Handle(ctx context.Context, method, callbackURL, signature string) (*domain.Callback, error) {
	if !s.validator.IsOrderCallbackValid(method, callbackURL, signature) {
		s.log.Warn().Str("method", method).Msg("callback: invalid signature")
		return nil, apperror.ErrInvalidSignature()
	}

	u, err := url.Parse(callbackURL)
	if err != nil {
		return nil, apperror.Validation("callback url is malformed")
	}
	order, err := ParseCallbackQuery(u.Query())
	if err != nil {
		s.log.Warn().Err(err).Msg("callback: malformed payload")
		return nil, err
	}

	cb := &domain.Callback{
		Order:      order,
		RawQuery:   u.RawQuery,
		Signature:  signature,
		ReceivedAt: s.now().UTC(),
	}

	// signature passed Verify, so it is the canonical spelling.
	key := s.validator.GatewayID() + ":" + signature
	if s.store != nil {
		isNew, err := s.store.MarkSeen(ctx, key, s.dedupeTTL)
		if err != nil {
			s.log.Warn().Err(err).Msg("callback store error, processing without de-duplication")
		} else if !isNew {
			s.log.Info().Str("order_id", order.OrderID).Int("status", int(order.Status)).Msg("callback: duplicate delivery ignored")
			return cb, apperror.ErrDuplicateCallback()
		}
	}

	if s.processor != nil {
		if err := s.processor.ProcessOrderCallback(ctx, cb); err != nil {
			if s.store != nil {
				if ferr := s.store.Forget(ctx, key); ferr != nil {
					s.log.Warn().Err(ferr).Msg("callback: failed to forget unprocessed callback")
				}
			}
			s.log.Error().Err(err).Str("order_id", order.OrderID).Msg("callback: processing failed")
			return cb, err
		}
	}

	s.log.Info().
		Str("order_id", order.OrderID).
		Str("payment_id", order.PaymentID).
		Str("status", order.Status.String()).
		Msg("callback: processed")
	return cb, nil
}

// ParseCallbackQuery decodes the order fields a gateway callback carries in
// its query string. order_id is required; every other field is optional.
func ParseCallbackQuery(q url.Values) (domain.Order, error) {
	order := domain.Order{
		OrderID:      q.Get("order_id"),
		PaymentID:    q.Get("payment_id"),
		Address:      q.Get("address"),
		CallbackData: q.Get("callback_data"),
	}
	if order.OrderID == "" {
		return domain.Order{}, apperror.Validation("callback: order_id is required")
	}

	decimals := []struct {
		key string
		dst *decimal.Decimal
	}{
		{"amount", &order.AmountFiat},
		{"amount_in_btc", &order.AmountBTC},
		{"amount_paid_in_btc", &order.AmountPaidBTC},
		{"amount_to_pay_in_btc", &order.AmountToPayBTC},
	}
	for _, f := range decimals {
		raw := q.Get(f.key)
		if raw == "" {
			continue
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.Order{}, apperror.Validation(fmt.Sprintf("callback: %s is not a number", f.key))
		}
		*f.dst = d
	}

	var status int64
	ints := []struct {
		key string
		dst *int64
	}{
		{"status", &status},
		{"keychain_id", &order.KeychainID},
		{"last_keychain_id", &order.LastKeychainID},
	}
	for _, f := range ints {
		raw := q.Get(f.key)
		if raw == "" {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.Order{}, apperror.Validation(fmt.Sprintf("callback: %s is not an integer", f.key))
		}
		*f.dst = n
	}
	order.Status = domain.OrderStatus(status)

	order.TransactionIDs = []string{}
	for _, key := range []string{"transaction_ids", "transaction_ids[]"} {
		for _, v := range q[key] {
			for _, id := range strings.Split(v, ",") {
				if id = strings.TrimSpace(id); id != "" {
					order.TransactionIDs = append(order.TransactionIDs, id)
				}
			}
		}
	}

	return order, nil
}
