package input

import (
	"github.com/paystream/payments-api/internal/core"
)

// PaymentService is an input port (primary port) for payment operations.
// Primary adapters (HTTP handlers) will use this.
type PaymentService interface {
	// CreatePayment charges the gateway and, on success, records and
	// broadcasts the payment.
	CreatePayment(req CreatePaymentRequest) (*CreatePaymentResponse, error)

	// ListPayments returns every succeeded payment in the local ledger.
	ListPayments() ([]core.PaymentRecord, error)

	// GetPaymentStatus looks up a payment's live state at the gateway,
	// bypassing the local ledger.
	GetPaymentStatus(paymentIntentID string) (*PaymentStatusResponse, error)
}

// CreatePaymentRequest represents the request to create a payment.
type CreatePaymentRequest struct {
	Amount          int64
	Currency        string
	PaymentMethodID string
}

// CreatePaymentResponse carries the gateway reference and terminal status
// back to the caller.
type CreatePaymentResponse struct {
	PaymentIntentID string
	Status          core.PaymentStatus
}

// PaymentStatusResponse is the gateway's live view of a payment.
type PaymentStatusResponse struct {
	Status   core.PaymentStatus
	Amount   int64
	Currency string
}
