package service

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/paystream/payments-api/internal/core"
	"github.com/paystream/payments-api/internal/port/input"
	"github.com/paystream/payments-api/internal/port/output"
)

// PaymentServiceImpl implements the PaymentService input port. It coordinates
// the gateway call, the ledger write and the event publish for each request as
// one sequential unit.
type PaymentServiceImpl struct {
	ledger  output.PaymentLedger
	events  output.EventPublisher
	gateway output.PaymentGateway
	log     logrus.FieldLogger
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	ledger output.PaymentLedger,
	events output.EventPublisher,
	gateway output.PaymentGateway,
	log logrus.FieldLogger,
) input.PaymentService {
	return &PaymentServiceImpl{
		ledger:  ledger,
		events:  events,
		gateway: gateway,
		log:     log,
	}
}

// CreatePayment charges the gateway and, when it reports "succeeded", appends
// a ledger record and broadcasts a payment event. The publish is dispatched on
// a detached goroutine; its failure is logged, never surfaced, since the
// payment has already succeeded and must not be rolled back.
func (s *PaymentServiceImpl) CreatePayment(req input.CreatePaymentRequest) (*input.CreatePaymentResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	payment, err := s.gateway.CreatePayment(req.Amount, req.Currency, req.PaymentMethodID)
	if err != nil {
		return nil, err
	}

	if payment.Status.IsSucceeded() {
		record := &core.PaymentRecord{
			PaymentIntentID: payment.PaymentIntentID,
			Amount:          payment.Amount,
			Currency:        payment.Currency,
			Status:          payment.Status,
		}
		// The gateway has already charged the customer at this point; a
		// failing append leaves that charge unreconciled with the ledger.
		if err := s.ledger.Append(record); err != nil {
			return nil, err
		}

		event := core.PaymentEvent{
			PaymentIntentID: payment.PaymentIntentID,
			Amount:          payment.Amount,
			Currency:        payment.Currency,
			Status:          payment.Status,
		}
		go s.publishEvent(event)
	}

	return &input.CreatePaymentResponse{
		PaymentIntentID: payment.PaymentIntentID,
		Status:          payment.Status,
	}, nil
}

// publishEvent is the fire-and-forget dispatch path. Failures end in the log,
// decoupled from the request's response.
func (s *PaymentServiceImpl) publishEvent(event core.PaymentEvent) {
	if err := s.events.Publish(event); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"payment_intent_id": event.PaymentIntentID,
			"amount":            event.Amount,
			"currency":          event.Currency,
		}).Error("failed to publish payment event")
		return
	}
	s.log.WithField("payment_intent_id", event.PaymentIntentID).Debug("payment event published")
}

// ListPayments returns every succeeded payment in the ledger.
func (s *PaymentServiceImpl) ListPayments() ([]core.PaymentRecord, error) {
	return s.ledger.ListSucceeded()
}

// GetPaymentStatus retrieves the live payment state from the gateway.
func (s *PaymentServiceImpl) GetPaymentStatus(paymentIntentID string) (*input.PaymentStatusResponse, error) {
	payment, err := s.gateway.GetPayment(paymentIntentID)
	if err != nil {
		return nil, err
	}
	return &input.PaymentStatusResponse{
		Status:   payment.Status,
		Amount:   payment.Amount,
		Currency: payment.Currency,
	}, nil
}

// validateCreateRequest rejects incomplete requests before any gateway call.
func validateCreateRequest(req input.CreatePaymentRequest) error {
	if req.Amount <= 0 {
		return fmt.Errorf("%w: amount must be a positive integer", core.ErrInvalidRequest)
	}
	if strings.TrimSpace(req.Currency) == "" {
		return fmt.Errorf("%w: currency is required", core.ErrInvalidRequest)
	}
	if strings.TrimSpace(req.PaymentMethodID) == "" {
		return fmt.Errorf("%w: paymentMethodId is required", core.ErrInvalidRequest)
	}
	return nil
}
