package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripe "github.com/stripe/stripe-go/v76"

	"github.com/paystream/payments-api/internal/core"
)

func newStubbedGateway(t *testing.T, handler http.HandlerFunc) *StripeGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:           stripe.String(srv.URL),
		HTTPClient:    srv.Client(),
		LeveledLogger: &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return newStripeGateway("sk_test_123", &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})
}

func TestCreatePayment_SendsConfirmedIntentParams(t *testing.T) {
	gw := newStubbedGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.NoError(t, r.ParseForm())

		assert.Equal(t, "1000", r.Form.Get("amount"))
		assert.Equal(t, "usd", r.Form.Get("currency"))
		assert.Equal(t, "pm_card_visa", r.Form.Get("payment_method"))
		assert.Equal(t, "true", r.Form.Get("confirm"))
		assert.Equal(t, "true", r.Form.Get("automatic_payment_methods[enabled]"))
		assert.Equal(t, "never", r.Form.Get("automatic_payment_methods[allow_redirects]"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","object":"payment_intent","amount":1000,"currency":"usd","status":"succeeded"}`))
	})

	payment, err := gw.CreatePayment(1000, "usd", "pm_card_visa")
	require.NoError(t, err)
	assert.Equal(t, "pi_123", payment.PaymentIntentID)
	assert.Equal(t, int64(1000), payment.Amount)
	assert.Equal(t, "usd", payment.Currency)
	assert.Equal(t, core.StatusSucceeded, payment.Status)
}

func TestCreatePayment_DeclineBecomesGatewayError(t *testing.T) {
	gw := newStubbedGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`))
	})

	payment, err := gw.CreatePayment(1000, "usd", "pm_card_bad")
	require.Error(t, err)
	assert.Nil(t, payment)

	var gwErr *core.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "Your card was declined.", gwErr.Message)
}

func TestGetPayment_RetrievesLiveState(t *testing.T) {
	gw := newStubbedGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1/payment_intents/pi_123", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","object":"payment_intent","amount":1000,"currency":"usd","status":"requires_action"}`))
	})

	payment, err := gw.GetPayment("pi_123")
	require.NoError(t, err)
	assert.Equal(t, "pi_123", payment.PaymentIntentID)
	assert.Equal(t, core.StatusRequiresAction, payment.Status)
}

func TestGetPayment_UnknownReferenceBecomesGatewayError(t *testing.T) {
	gw := newStubbedGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"No such payment_intent: 'pi_nope'"}}`))
	})

	payment, err := gw.GetPayment("pi_nope")
	require.Error(t, err)
	assert.Nil(t, payment)

	var gwErr *core.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "No such payment_intent: 'pi_nope'", gwErr.Message)
}
