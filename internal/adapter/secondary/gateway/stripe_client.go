package gateway

import (
	"errors"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/paystream/payments-api/internal/core"
	"github.com/paystream/payments-api/internal/port/output"
)

// StripeGateway is a secondary adapter that implements the PaymentGateway
// output port against the Stripe API. Authorization, tokenization and
// settlement all live upstream; this adapter only maps requests and errors.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway creates a Stripe gateway client with the given secret key.
func NewStripeGateway(secretKey string) output.PaymentGateway {
	return newStripeGateway(secretKey, nil)
}

func newStripeGateway(secretKey string, backends *stripe.Backends) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, backends)
	return &StripeGateway{api: api}
}

// CreatePayment creates and immediately confirms a payment intent. Automatic
// payment methods are enabled with redirects disallowed, so the intent lands
// in a terminal or requires-action state within this single call.
func (g *StripeGateway) CreatePayment(amount int64, currency, paymentMethodID string) (*core.GatewayPayment, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amount),
		Currency:      stripe.String(currency),
		PaymentMethod: stripe.String(paymentMethodID),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, asGatewayError(err)
	}
	return toCore(intent), nil
}

// GetPayment retrieves the live state of a payment intent.
func (g *StripeGateway) GetPayment(paymentIntentID string) (*core.GatewayPayment, error) {
	intent, err := g.api.PaymentIntents.Get(paymentIntentID, nil)
	if err != nil {
		return nil, asGatewayError(err)
	}
	return toCore(intent), nil
}

// toCore converts a Stripe payment intent to the domain view.
func toCore(intent *stripe.PaymentIntent) *core.GatewayPayment {
	return &core.GatewayPayment{
		PaymentIntentID: intent.ID,
		Amount:          intent.Amount,
		Currency:        string(intent.Currency),
		Status:          core.PaymentStatus(intent.Status),
	}
}

// asGatewayError wraps any Stripe failure so the upstream message survives
// verbatim to the caller.
func asGatewayError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return &core.GatewayError{Message: stripeErr.Msg}
	}
	return &core.GatewayError{Message: err.Error()}
}
