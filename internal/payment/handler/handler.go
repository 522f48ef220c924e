package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"plotdesk/internal/payment"
	"plotdesk/internal/payment/gateway"
	dErrors "plotdesk/pkg/domain-errors"
	"plotdesk/pkg/platform/httputil"
	"plotdesk/pkg/requestcontext"
)

// Service defines the interface for payment operations.
type Service interface {
	Verify(ctx context.Context, req payment.VerificationRequest) (*payment.VerificationResult, error)
	CreateOrder(ctx context.Context, req gateway.OrderRequest) (*gateway.Order, error)
}

// Handler wires payment endpoints to the payment service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a payment handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts payment endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/payments/order", h.HandleCreateOrder)
	r.Post("/payments/verify", h.HandleVerify)
}

// VerifyRequest mirrors the field names the checkout widget posts back.
type VerifyRequest struct {
	RazorpayOrderID   string                 `json:"razorpay_order_id"`
	RazorpayPaymentID string                 `json:"razorpay_payment_id"`
	RazorpaySignature string                 `json:"razorpay_signature"`
	BookingDetails    payment.BookingDetails `json:"bookingDetails"`
}

// VerifyResponse is the success envelope.
type VerifyResponse struct {
	Verified  bool   `json:"verified"`
	PaymentID string `json:"paymentId"`
	OrderID   string `json:"orderId"`
}

// HandleVerify handles POST /payments/verify requests.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	// An unreadable callback is a server-class ERRORED outcome, kept distinct
	// from a signature mismatch so tampering and client bugs are separable.
	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "unreadable verification callback",
			"request_id", requestID,
			"error", err,
		)
		writeVerifyError(w, dErrors.New(dErrors.CodeMalformedRequest, "unreadable verification callback"))
		return
	}

	result, err := h.service.Verify(ctx, payment.VerificationRequest{
		OrderID:   req.RazorpayOrderID,
		PaymentID: req.RazorpayPaymentID,
		Signature: req.RazorpaySignature,
		Booking:   req.BookingDetails,
	})
	if err != nil {
		status := "unknown"
		if result != nil {
			status = string(result.Status)
		}
		h.logger.WarnContext(ctx, "payment verification failed",
			"request_id", requestID,
			"order_id", req.RazorpayOrderID,
			"status", status,
			"error", err,
		)
		writeVerifyError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "payment verified",
		"request_id", requestID,
		"order_id", result.OrderID,
		"payment_id", result.PaymentID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, VerifyResponse{
		Verified:  true,
		PaymentID: result.PaymentID,
		OrderID:   result.OrderID,
	})
}

// writeVerifyError renders the verification failure envelope. Unlike the
// shared error envelope this one carries the explicit verified flag the
// checkout widget branches on.
func writeVerifyError(w http.ResponseWriter, err error) {
	code := dErrors.GetCode(err)
	httputil.WriteJSON(w, dErrors.ToHTTPStatus(code), map[string]any{
		"verified": false,
		"error":    string(code),
	})
}

// OrderRequest is the create-order payload.
type OrderRequest struct {
	AmountPaise int64  `json:"amount_paise"`
	Currency    string `json:"currency"`
	Receipt     string `json:"receipt"`
}

// OrderResponse returns what the client-side checkout widget needs.
type OrderResponse struct {
	OrderID     string `json:"order_id"`
	AmountPaise int64  `json:"amount_paise"`
	Currency    string `json:"currency"`
}

// HandleCreateOrder handles POST /payments/order requests.
func (h *Handler) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.Decode[OrderRequest](w, r)
	if !ok {
		return
	}

	order, err := h.service.CreateOrder(ctx, gateway.OrderRequest{
		AmountPaise: req.AmountPaise,
		Currency:    req.Currency,
		Receipt:     req.Receipt,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "gateway order creation failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, OrderResponse{
		OrderID:     order.ID,
		AmountPaise: order.AmountPaise,
		Currency:    order.Currency,
	})
}
