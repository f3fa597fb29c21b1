package core

import (
	"time"
)

// PaymentStatus mirrors the gateway's payment intent status values.
type PaymentStatus string

const (
	StatusSucceeded      PaymentStatus = "succeeded"
	StatusRequiresAction PaymentStatus = "requires_action"
	StatusProcessing     PaymentStatus = "processing"
	StatusCanceled       PaymentStatus = "canceled"
)

// IsSucceeded reports whether the gateway settled the payment. Only this
// status triggers a ledger write and an event publish.
func (s PaymentStatus) IsSucceeded() bool {
	return s == StatusSucceeded
}

// PaymentRecord is one completed payment in the local ledger. Records are
// written exactly once, after the gateway reports success, and are never
// updated or deleted.
type PaymentRecord struct {
	ID              uint          `json:"id"`
	PaymentIntentID string        `json:"payment_intent_id"`
	Amount          int64         `json:"amount"`
	Currency        string        `json:"currency"`
	Status          PaymentStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
}

// PaymentEvent is the ephemeral message broadcast to subscribers after a
// successful payment. It is not persisted here and no delivery confirmation
// is tracked. Field names are the wire contract.
type PaymentEvent struct {
	PaymentIntentID string        `json:"paymentIntentId"`
	Amount          int64         `json:"amount"`
	Currency        string        `json:"currency"`
	Status          PaymentStatus `json:"status"`
}

// GatewayPayment is the gateway's view of a payment intent, as returned by
// the create and retrieve calls.
type GatewayPayment struct {
	PaymentIntentID string
	Amount          int64
	Currency        string
	Status          PaymentStatus
}
