package dto

import (
	"gear-client/internal/core/domain"
)

// CreateOrderRequest is the request body for creating a gateway order.
type CreateOrderRequest struct {
	Amount       string `json:"amount" binding:"required,numeric"`
	KeychainID   *int64 `json:"keychain_id" binding:"required,gte=0"`
	CallbackData string `json:"callback_data,omitempty" binding:"max=255"`
}

// PaymentIDParam binds the :payment_id path segment.
type PaymentIDParam struct {
	PaymentID string `uri:"payment_id" binding:"required,safe_id"`
}

// OrderResponse is the order as returned to admin API callers.
type OrderResponse struct {
	OrderID        string   `json:"order_id"`
	PaymentID      string   `json:"payment_id"`
	Address        string   `json:"address"`
	Amount         string   `json:"amount"`
	AmountBTC      string   `json:"amount_in_btc"`
	AmountPaidBTC  string   `json:"amount_paid_in_btc"`
	AmountToPayBTC string   `json:"amount_to_pay_in_btc"`
	KeychainID     int64    `json:"keychain_id"`
	Status         int      `json:"status"`
	StatusName     string   `json:"status_name"`
	TransactionIDs []string `json:"transaction_ids"`
	CallbackData   string   `json:"callback_data,omitempty"`
	PaymentLink    string   `json:"payment_link,omitempty"`
}

// NewOrderResponse converts a domain order. Amounts are rendered as strings
// so no precision is lost in JSON clients.
func NewOrderResponse(o *domain.Order, paymentLink string) OrderResponse {
	return OrderResponse{
		OrderID:        o.OrderID,
		PaymentID:      o.PaymentID,
		Address:        o.Address,
		Amount:         o.AmountFiat.String(),
		AmountBTC:      o.AmountBTC.String(),
		AmountPaidBTC:  o.AmountPaidBTC.String(),
		AmountToPayBTC: o.AmountToPayBTC.String(),
		KeychainID:     o.KeychainID,
		Status:         int(o.Status),
		StatusName:     o.Status.String(),
		TransactionIDs: o.TransactionIDs,
		CallbackData:   o.CallbackData,
		PaymentLink:    paymentLink,
	}
}

// KeychainResponse is the response body for the last keychain id lookup.
type KeychainResponse struct {
	LastKeychainID int64 `json:"last_keychain_id"`
}

// CallbackAck acknowledges a gateway callback.
type CallbackAck struct {
	Result      string `json:"result"` // processed, duplicate
	OrderID     string `json:"order_id"`
	PaymentID   string `json:"payment_id,omitempty"`
	OrderStatus string `json:"order_status"`
}

const (
	CallbackProcessed = "processed"
	CallbackDuplicate = "duplicate"
)

// NewCallbackAck builds the acknowledgement for cb.
func NewCallbackAck(cb *domain.Callback, result string) CallbackAck {
	return CallbackAck{
		Result:      result,
		OrderID:     cb.Order.OrderID,
		PaymentID:   cb.Order.PaymentID,
		OrderStatus: cb.Order.Status.String(),
	}
}
