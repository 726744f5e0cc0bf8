package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// OrderStatus is the gateway's integer order state. Values are passed through
// untouched; the constants below mirror the gateway documentation.
type OrderStatus int

const (
	OrderStatusPending     OrderStatus = 0 // waiting for payment
	OrderStatusUnconfirmed OrderStatus = 1 // transaction seen, not enough confirmations
	OrderStatusPaid        OrderStatus = 2
	OrderStatusUnderpaid   OrderStatus = 3
	OrderStatusOverpaid    OrderStatus = 4
	OrderStatusExpired     OrderStatus = 5
	OrderStatusCanceled    OrderStatus = 6
)

var orderStatusNames = map[OrderStatus]string{
	OrderStatusPending:     "pending",
	OrderStatusUnconfirmed: "unconfirmed",
	OrderStatusPaid:        "paid",
	OrderStatusUnderpaid:   "underpaid",
	OrderStatusOverpaid:    "overpaid",
	OrderStatusExpired:     "expired",
	OrderStatusCanceled:    "canceled",
}

func (s OrderStatus) String() string {
	if name, ok := orderStatusNames[s]; ok {
		return name
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// Order is a snapshot of one payment request as reported by the gateway.
// The client never mutates it; every read is a fresh fetch or callback.
type Order struct {
	OrderID        string          `json:"id"`
	PaymentID      string          `json:"payment_id"`
	Address        string          `json:"address"`
	AmountFiat     decimal.Decimal `json:"amount"`
	AmountBTC      decimal.Decimal `json:"amount_in_btc"`
	AmountPaidBTC  decimal.Decimal `json:"amount_paid_in_btc"`
	AmountToPayBTC decimal.Decimal `json:"amount_to_pay_in_btc"`
	KeychainID     int64           `json:"keychain_id"`
	LastKeychainID int64           `json:"last_keychain_id"`
	Status         OrderStatus     `json:"status"`
	TransactionIDs []string        `json:"transaction_ids"`
	CallbackData   string          `json:"callback_data,omitempty"`
}

// UnmarshalJSON accepts the gateway's order id as either a number or a string
// and normalises a missing transaction list to an empty one.
func (o *Order) UnmarshalJSON(data []byte) error {
	type alias Order
	aux := struct {
		OrderID json.RawMessage `json:"id"`
		*alias
	}{alias: (*alias)(o)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	id, err := decodeFlexibleID(aux.OrderID)
	if err != nil {
		return fmt.Errorf("order id: %w", err)
	}
	o.OrderID = id

	if o.TransactionIDs == nil {
		o.TransactionIDs = []string{}
	}
	return nil
}

func decodeFlexibleID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

// KeychainInfo is the gateway's view of the last keychain index it handed out.
type KeychainInfo struct {
	LastKeychainID int64 `json:"last_keychain_id"`
}
