package handler

import (
	"net/http"

	"gear-client/internal/adapter/http/dto"
	"gear-client/internal/core/domain"
	"gear-client/internal/core/ports"
	"gear-client/pkg/apperror"
	"gear-client/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// OrderHandler exposes the gateway client to operators of the host application.
type OrderHandler struct {
	client  ports.GatewayClient
	watcher ports.OrderWatcher
}

// NewOrderHandler creates a new OrderHandler. A nil watcher disables the
// events endpoint.
func NewOrderHandler(client ports.GatewayClient, watcher ports.OrderWatcher) *OrderHandler {
	return &OrderHandler{client: client, watcher: watcher}
}

// Create handles POST /api/v1/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	order, err := h.client.CreateOrder(c.Request.Context(), amount, *req.KeychainID, ports.CreateOrderOptions{
		CallbackData: req.CallbackData,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, h.toResponse(order))
}

// Get handles GET /api/v1/orders/:payment_id.
func (h *OrderHandler) Get(c *gin.Context) {
	paymentID, ok := bindPaymentID(c)
	if !ok {
		return
	}

	order, err := h.client.CheckOrder(c.Request.Context(), paymentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.toResponse(order))
}

// Cancel handles POST /api/v1/orders/:payment_id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	paymentID, ok := bindPaymentID(c)
	if !ok {
		return
	}

	if err := h.client.CancelOrder(c.Request.Context(), paymentID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"payment_id": paymentID, "canceled": true})
}

// LastKeychainID handles GET /api/v1/orders/last-keychain-id.
func (h *OrderHandler) LastKeychainID(c *gin.Context) {
	id, err := h.client.LastKeychainID(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.KeychainResponse{LastKeychainID: id})
}

// Events handles GET /api/v1/orders/:payment_id/events, relaying the
// gateway's websocket updates as server-sent events until the stream ends
// or the client goes away.
func (h *OrderHandler) Events(c *gin.Context) {
	paymentID, ok := bindPaymentID(c)
	if !ok {
		return
	}
	if h.watcher == nil {
		response.Error(c, apperror.New(apperror.KindConfiguration, "CFG_001", "order events are disabled", http.StatusNotImplemented))
		return
	}

	ctx := c.Request.Context()
	updates, err := h.watcher.Watch(ctx, paymentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Cache-Control", "no-cache")
	for {
		select {
		case order, ok := <-updates:
			if !ok {
				return
			}
			c.SSEvent("order", dto.NewOrderResponse(&order, ""))
			c.Writer.Flush()
		case <-ctx.Done():
			return
		}
	}
}

func (h *OrderHandler) toResponse(o *domain.Order) dto.OrderResponse {
	return dto.NewOrderResponse(o, h.client.PaymentLink(o.PaymentID))
}

func bindPaymentID(c *gin.Context) (string, bool) {
	var p dto.PaymentIDParam
	if err := c.ShouldBindUri(&p); err != nil {
		response.Error(c, apperror.Validation("invalid payment id"))
		return "", false
	}
	return p.PaymentID, true
}
