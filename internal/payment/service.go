// Package payment verifies payment-gateway checkout callbacks and records
// the resulting bookings.
package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"plotdesk/internal/event"
	"plotdesk/internal/notify"
	"plotdesk/internal/payment/gateway"
	paymentmetrics "plotdesk/internal/payment/metrics"
	dErrors "plotdesk/pkg/domain-errors"
	"plotdesk/pkg/requestcontext"
)

// notificationTimeout bounds the best-effort confirmation mail so a slow
// relay cannot hold the response hostage.
const notificationTimeout = 10 * time.Second

// Service runs the verification protocol and, on success, the downstream
// side effects. Verification always completes before any side effect starts,
// and no side-effect failure can change the outcome already decided.
type Service struct {
	secret  string
	store   Store
	gateway gateway.Gateway
	sender  notify.Sender
	events  event.Publisher
	logger  *slog.Logger
	metrics *paymentmetrics.Metrics
}

func NewService(
	secret string,
	store Store,
	gw gateway.Gateway,
	sender notify.Sender,
	events event.Publisher,
	logger *slog.Logger,
	metrics *paymentmetrics.Metrics,
) *Service {
	return &Service{
		secret:  secret,
		store:   store,
		gateway: gw,
		sender:  sender,
		events:  events,
		logger:  logger,
		metrics: metrics,
	}
}

// Verify decides the terminal status for one callback:
//
//   - malformed request or unconfigured secret -> ERRORED (server-class,
//     distinguishable from tampering so callers can branch)
//   - signature mismatch -> REJECTED, fail closed, zero side effects
//   - match -> VERIFIED, then booking record, confirmation mail and domain
//     event, each best-effort
func (s *Service) Verify(ctx context.Context, req VerificationRequest) (*VerificationResult, error) {
	ctx, span := otel.Tracer("payment").Start(ctx, "payment.Verify")
	defer span.End()
	start := time.Now()
	defer func() { s.metrics.ObserveVerifyLatency(time.Since(start)) }()

	if s.secret == "" {
		// Misconfiguration must never degrade into unverified-but-ok.
		s.metrics.IncrementOutcome(string(StatusErrored))
		return &VerificationResult{Status: StatusErrored},
			dErrors.New(dErrors.CodeMalformedRequest, "payment gateway secret not configured")
	}
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		s.metrics.IncrementOutcome(string(StatusErrored))
		return &VerificationResult{Status: StatusErrored},
			dErrors.New(dErrors.CodeMalformedRequest, "order id, payment id and signature are required")
	}

	if !VerifySignature(s.secret, req.OrderID, req.PaymentID, req.Signature) {
		span.SetAttributes(attribute.String("payment.outcome", string(StatusRejected)))
		s.metrics.IncrementOutcome(string(StatusRejected))
		return &VerificationResult{Status: StatusRejected, OrderID: req.OrderID, PaymentID: req.PaymentID},
			dErrors.New(dErrors.CodeSignatureMismatch, "payment signature does not match")
	}

	span.SetAttributes(attribute.String("payment.outcome", string(StatusVerified)))
	s.metrics.IncrementOutcome(string(StatusVerified))
	result := &VerificationResult{
		Status:    StatusVerified,
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
	}

	// Side effects below are one-way dependents of the VERIFIED outcome.
	// Their failures are logged and swallowed.
	s.recordBooking(ctx, req)
	s.sendConfirmation(ctx, req)
	s.emitVerified(ctx, req)

	return result, nil
}

// CreateOrder opens a gateway order for the checkout widget.
func (s *Service) CreateOrder(ctx context.Context, req gateway.OrderRequest) (*gateway.Order, error) {
	if req.AmountPaise <= 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "amount must be greater than zero")
	}
	order, err := s.gateway.CreateOrder(ctx, req)
	if err != nil {
		s.metrics.IncrementOrders("error")
		return nil, err
	}
	s.metrics.IncrementOrders("ok")
	return order, nil
}

func (s *Service) recordBooking(ctx context.Context, req VerificationRequest) {
	booking := &Booking{
		ID:         uuid.New(),
		OrderID:    req.OrderID,
		PaymentID:  req.PaymentID,
		Details:    req.Booking,
		VerifiedAt: requestcontext.Now(ctx),
	}
	if err := s.store.SaveBooking(ctx, booking); err != nil {
		s.logger.ErrorContext(ctx, "failed to record verified booking",
			"request_id", requestcontext.RequestID(ctx),
			"order_id", req.OrderID,
			"error", err,
		)
	}
}

func (s *Service) sendConfirmation(ctx context.Context, req VerificationRequest) {
	if req.Booking.Email == "" {
		return
	}
	msg, err := notify.BookingMessage(notify.BookingConfirmation{
		CustomerName: req.Booking.CustomerName,
		Email:        req.Booking.Email,
		Project:      req.Booking.Project,
		PlotNumber:   req.Booking.PlotNumber,
		AmountPaise:  req.Booking.AmountPaise,
		PaymentID:    req.PaymentID,
		OrderID:      req.OrderID,
	})
	if err == nil {
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notificationTimeout)
		defer cancel()
		err = s.sender.Send(sendCtx, msg)
	}
	if err != nil {
		s.metrics.IncrementNotificationFailures()
		s.logger.ErrorContext(ctx, "confirmation mail failed after verification",
			"request_id", requestcontext.RequestID(ctx),
			"order_id", req.OrderID,
			"error", err,
		)
	}
}

func (s *Service) emitVerified(ctx context.Context, req VerificationRequest) {
	e := event.New(event.TypePaymentVerified, map[string]any{
		"order_id":     req.OrderID,
		"payment_id":   req.PaymentID,
		"project":      req.Booking.Project,
		"amount_paise": req.Booking.AmountPaise,
	})
	if err := s.events.Emit(ctx, e); err != nil {
		s.logger.WarnContext(ctx, "failed to emit payment event",
			"request_id", requestcontext.RequestID(ctx),
			"order_id", req.OrderID,
			"error", err,
		)
	}
}
