// Package lead captures and lists site inquiries.
package lead

import (
	"context"
	"log/slog"
	"time"

	"github.com/mssola/useragent"
	"go.opentelemetry.io/otel"

	"plotdesk/internal/event"
	leadmetrics "plotdesk/internal/lead/metrics"
	"plotdesk/internal/notify"
	dErrors "plotdesk/pkg/domain-errors"
	"plotdesk/pkg/requestcontext"
)

// acknowledgementTimeout bounds the best-effort thank-you mail.
const acknowledgementTimeout = 10 * time.Second

// CreateRequest is the validated-at-service form submission.
type CreateRequest struct {
	Name    string
	Email   string
	Phone   string
	Message string
	Project string
	Source  string
}

// Service orchestrates lead capture: validation, provenance enrichment,
// persistence, acknowledgement mail and the lead.created event.
type Service struct {
	store   Store
	sender  notify.Sender
	events  event.Publisher
	logger  *slog.Logger
	metrics *leadmetrics.Metrics
}

func NewService(
	store Store,
	sender notify.Sender,
	events event.Publisher,
	logger *slog.Logger,
	metrics *leadmetrics.Metrics,
) *Service {
	return &Service{
		store:   store,
		sender:  sender,
		events:  events,
		logger:  logger,
		metrics: metrics,
	}
}

// Create validates and persists one inquiry. Unlike the payment flow, a
// store failure here is surfaced: a lead that was never written is a lost
// customer, not a side effect.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Lead, error) {
	ctx, span := otel.Tracer("lead").Start(ctx, "lead.Create")
	defer span.End()

	l, err := NewLead(req.Name, req.Email, req.Phone, req.Message, req.Project,
		req.Source, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}

	l.ClientIP = requestcontext.ClientIP(ctx)
	if rawUA := requestcontext.UserAgent(ctx); rawUA != "" {
		ua := useragent.New(rawUA)
		name, version := ua.Browser()
		l.Browser = name
		if version != "" {
			l.Browser = name + " " + version
		}
		l.OS = ua.OS()
	}

	if err := s.store.Save(ctx, l); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save lead")
	}
	s.metrics.IncrementLeadsCreated(l.Source)

	s.acknowledge(ctx, l)
	s.emitCreated(ctx, l)

	return l, nil
}

// ListRecent returns the newest leads for the back office.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]*Lead, error) {
	leads, err := s.store.ListRecent(ctx, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list leads")
	}
	return leads, nil
}

func (s *Service) acknowledge(ctx context.Context, l *Lead) {
	if l.Email == "" {
		return
	}
	msg, err := notify.LeadMessage(notify.LeadAcknowledgement{
		Name:    l.Name,
		Email:   l.Email,
		Project: l.Project,
	})
	if err == nil {
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), acknowledgementTimeout)
		defer cancel()
		err = s.sender.Send(sendCtx, msg)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "lead acknowledgement mail failed",
			"request_id", requestcontext.RequestID(ctx),
			"lead_id", l.ID,
			"error", err,
		)
	}
}

func (s *Service) emitCreated(ctx context.Context, l *Lead) {
	e := event.New(event.TypeLeadCreated, map[string]any{
		"lead_id": l.ID.String(),
		"project": l.Project,
		"source":  l.Source,
	})
	if err := s.events.Emit(ctx, e); err != nil {
		s.logger.WarnContext(ctx, "failed to emit lead event",
			"request_id", requestcontext.RequestID(ctx),
			"lead_id", l.ID,
			"error", err,
		)
	}
}
