package event

import (
	"context"
	"log/slog"
)

// ChannelPublisher hands events to a buffered channel consumed by Worker.
// Emit never blocks the request path: when the buffer is full the event is
// dropped and counted against the logger, because lead and payment flows
// must not stall on eventing.
type ChannelPublisher struct {
	inbox  chan Event
	logger *slog.Logger
}

func NewChannelPublisher(buffer int, logger *slog.Logger) *ChannelPublisher {
	return &ChannelPublisher{
		inbox:  make(chan Event, buffer),
		logger: logger,
	}
}

func (p *ChannelPublisher) Emit(_ context.Context, e Event) error {
	select {
	case p.inbox <- e:
		return nil
	default:
		p.logger.Warn("event buffer full, dropping event",
			"event_type", e.Type,
			"event_id", e.ID,
		)
		return nil
	}
}

// Inbox exposes the channel for the worker.
func (p *ChannelPublisher) Inbox() <-chan Event {
	return p.inbox
}

// Worker consumes events from a channel and persists them. It keeps
// background processing testable without wiring broker implementations.
type Worker struct {
	store  Store
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(store Store, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, inbox: inbox, logger: logger}
}

// Run drains the inbox until ctx is cancelled, then flushes whatever is
// already buffered before returning.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return ctx.Err()
		case e := <-w.inbox:
			w.append(ctx, e)
		}
	}
}

func (w *Worker) drain() {
	for {
		select {
		case e := <-w.inbox:
			w.append(context.Background(), e)
		default:
			return
		}
	}
}

func (w *Worker) append(ctx context.Context, e Event) {
	if err := w.store.Append(ctx, e); err != nil {
		w.logger.Error("failed to persist event",
			"event_type", e.Type,
			"event_id", e.ID,
			"error", err,
		)
	}
}
