package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"gear-client/internal/core/domain"
	"gear-client/pkg/apperror"
	"gear-client/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// websocketLinker builds the status stream URL of an order.
type websocketLinker interface {
	WebsocketLink(paymentID string) string
}

// OrderWatcher implements ports.OrderWatcher over the gateway's order
// status websocket.
type OrderWatcher struct {
	links  websocketLinker
	dialer *websocket.Dialer
	log    zerolog.Logger
}

// NewOrderWatcher creates a watcher. A nil dialer uses websocket.DefaultDialer.
func NewOrderWatcher(links websocketLinker, dialer *websocket.Dialer, log zerolog.Logger) *OrderWatcher {
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	return &OrderWatcher{
		links:  links,
		dialer: dialer,
		log:    logger.Component(log, "order_watcher"),
	}
}

// Watch streams every order snapshot the gateway pushes for paymentID. The
// channel is closed when ctx is done or the connection ends.
func (w *OrderWatcher) Watch(ctx context.Context, paymentID string) (<-chan domain.Order, error) {
	const op = "WatchOrder"
	if paymentID == "" {
		return nil, apperror.ErrEmptyPaymentID()
	}

	conn, resp, err := w.dialer.DialContext(ctx, w.links.WebsocketLink(paymentID), nil)
	if err != nil {
		if errors.Is(err, websocket.ErrBadHandshake) && resp != nil {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			resp.Body.Close()
			return nil, apperror.ErrGatewayStatus(op, resp.StatusCode, string(body))
		}
		return nil, apperror.ErrTransport(op, err)
	}

	out := make(chan domain.Order)
	go w.read(ctx, conn, paymentID, out)
	return out, nil
}

func (w *OrderWatcher) read(ctx context.Context, conn *websocket.Conn, paymentID string, out chan<- domain.Order) {
	defer close(out)
	defer conn.Close()

	// Closing the connection unblocks ReadMessage on cancellation.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()

	log := w.log.With().Str("payment_id", paymentID).Logger()
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn().Err(err).Msg("order stream read error")
			}
			return
		}

		var order domain.Order
		if err := json.Unmarshal(msg, &order); err != nil {
			log.Warn().Err(err).Msg("order stream: undecodable message skipped")
			continue
		}

		select {
		case out <- order:
		case <-ctx.Done():
			return
		}
	}
}
