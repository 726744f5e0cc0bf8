package domain

import "time"

// Callback is a verified order notification received from the gateway.
type Callback struct {
	Order      Order     `json:"order"`
	RawQuery   string    `json:"raw_query"`
	Signature  string    `json:"-"`
	ReceivedAt time.Time `json:"received_at"`
}
