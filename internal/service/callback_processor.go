package service

import (
	"context"

	"gear-client/internal/core/domain"
	"gear-client/pkg/logger"

	"github.com/rs/zerolog"
)

// LoggingCallbackProcessor records every accepted callback in the log. Host
// applications that settle orders supply their own ports.CallbackProcessor.
type LoggingCallbackProcessor struct {
	log zerolog.Logger
}

// NewLoggingCallbackProcessor creates a LoggingCallbackProcessor.
func NewLoggingCallbackProcessor(log zerolog.Logger) *LoggingCallbackProcessor {
	return &LoggingCallbackProcessor{log: logger.Component(log, "callback_processor")}
}

// ProcessOrderCallback implements ports.CallbackProcessor.
func (p *LoggingCallbackProcessor) ProcessOrderCallback(_ context.Context, cb *domain.Callback) error {
	event := p.log.Info()
	switch cb.Order.Status {
	case domain.OrderStatusUnderpaid, domain.OrderStatusOverpaid:
		event = p.log.Warn()
	}

	event.
		Str("order_id", cb.Order.OrderID).
		Str("payment_id", cb.Order.PaymentID).
		Stringer("status", cb.Order.Status).
		Str("amount_paid_in_btc", cb.Order.AmountPaidBTC.String()).
		Strs("transaction_ids", cb.Order.TransactionIDs).
		Time("received_at", cb.ReceivedAt).
		Msg("order callback")
	return nil
}
