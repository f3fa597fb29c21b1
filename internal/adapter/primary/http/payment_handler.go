package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paystream/payments-api/internal/core"
	"github.com/paystream/payments-api/internal/port/input"
)

// PaymentHandler is a primary adapter (HTTP handler).
type PaymentHandler struct {
	paymentService input.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService input.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreatePaymentRequest represents the HTTP request to create a payment.
type CreatePaymentRequest struct {
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	PaymentMethodID string `json:"paymentMethodId"`
}

// CreatePaymentResponse represents the HTTP response for a created payment.
type CreatePaymentResponse struct {
	Success         bool   `json:"success"`
	PaymentIntentID string `json:"paymentIntentId"`
	Status          string `json:"status"`
}

// ListPaymentsResponse wraps the full ledger listing.
type ListPaymentsResponse struct {
	Success bool                 `json:"success"`
	Data    []core.PaymentRecord `json:"data"`
}

// PaymentStatusResponse is the gateway's live view of a payment.
type PaymentStatusResponse struct {
	Status   string `json:"status"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Root answers the API banner route.
func (h *PaymentHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Payments API",
	})
}

// CreatePayment handles POST /api/payment.
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var req CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	response, err := h.paymentService.CreatePayment(input.CreatePaymentRequest{
		Amount:          req.Amount,
		Currency:        req.Currency,
		PaymentMethodID: req.PaymentMethodID,
	})
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, CreatePaymentResponse{
		Success:         true,
		PaymentIntentID: response.PaymentIntentID,
		Status:          string(response.Status),
	})
}

// ListPayments handles GET /api/payments.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	records, err := h.paymentService.ListPayments()
	if err != nil {
		return errorResponse(c, err)
	}

	if records == nil {
		records = []core.PaymentRecord{}
	}
	return c.JSON(http.StatusOK, ListPaymentsResponse{
		Success: true,
		Data:    records,
	})
}

// GetPaymentStatus handles GET /api/payment-status/:paymentIntentId.
func (h *PaymentHandler) GetPaymentStatus(c echo.Context) error {
	paymentIntentID := c.Param("paymentIntentId")
	if paymentIntentID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "paymentIntentId is required",
		})
	}

	response, err := h.paymentService.GetPaymentStatus(paymentIntentID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, PaymentStatusResponse{
		Status:   string(response.Status),
		Amount:   response.Amount,
		Currency: response.Currency,
	})
}

// errorResponse maps domain error kinds to HTTP codes: invalid input is the
// caller's fault, everything else (gateway, persistence) is a 500 carrying
// the underlying message.
func errorResponse(c echo.Context, err error) error {
	if errors.Is(err, core.ErrInvalidRequest) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": err.Error(),
	})
}
