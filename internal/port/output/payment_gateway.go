package output

import (
	"github.com/paystream/payments-api/internal/core"
)

// PaymentGateway is an output port (secondary port) for the external payment
// processor. Every call is attempted exactly once; the adapter applies no
// retries or timeouts beyond the client library's defaults.
type PaymentGateway interface {
	// CreatePayment creates and immediately confirms a payment intent for
	// the given amount, currency and payment method, with automatic
	// payment-method selection and redirect-based flows disallowed.
	CreatePayment(amount int64, currency, paymentMethodID string) (*core.GatewayPayment, error)

	// GetPayment retrieves the live state of a payment intent by its
	// gateway reference id.
	GetPayment(paymentIntentID string) (*core.GatewayPayment, error)
}
