package dto

import (
	"testing"

	"gear-client/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"2a7f9c0e31", true},
		{"pay_1-a.b", true},
		{"..", false},
		{"a/b", false},
		{"a b", false},
		{"a?x=1", false},
		{"", false},
	}

	for _, tt := range tests {
		err := binding.Validator.ValidateStruct(&PaymentIDParam{PaymentID: tt.id})
		if tt.valid {
			assert.NoError(t, err, "id %q", tt.id)
		} else {
			assert.Error(t, err, "id %q", tt.id)
		}
	}
}

func TestCreateOrderRequest_Validation(t *testing.T) {
	zero, seven := int64(0), int64(7)
	negative := int64(-1)

	tests := []struct {
		name  string
		req   CreateOrderRequest
		valid bool
	}{
		{"valid", CreateOrderRequest{Amount: "12.5", KeychainID: &seven}, true},
		{"keychain zero", CreateOrderRequest{Amount: "1", KeychainID: &zero}, true},
		{"missing keychain", CreateOrderRequest{Amount: "1"}, false},
		{"negative keychain", CreateOrderRequest{Amount: "1", KeychainID: &negative}, false},
		{"missing amount", CreateOrderRequest{KeychainID: &seven}, false},
		{"non numeric amount", CreateOrderRequest{Amount: "ten", KeychainID: &seven}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.req)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNewOrderResponse(t *testing.T) {
	order := &domain.Order{
		OrderID:        "45",
		PaymentID:      "pay-45",
		AmountFiat:     decimal.NewFromInt(367380),
		AmountBTC:      decimal.RequireFromString("0.0036738"),
		Status:         domain.OrderStatusPaid,
		TransactionIDs: []string{"tx"},
	}

	resp := NewOrderResponse(order, "https://gateway.example/pay/pay-45")
	assert.Equal(t, "367380", resp.Amount)
	assert.Equal(t, "0.0036738", resp.AmountBTC)
	assert.Equal(t, 2, resp.Status)
	assert.Equal(t, "paid", resp.StatusName)
	require.Len(t, resp.TransactionIDs, 1)
	assert.Equal(t, "https://gateway.example/pay/pay-45", resp.PaymentLink)
}
