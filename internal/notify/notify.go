// Package notify sends transactional email. Sends are best-effort: callers
// log failures and move on, so nothing here may influence a caller's
// already-computed outcome.
package notify

import "context"

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers messages. Implementations must respect ctx cancellation;
// callers bound each send with its own timeout.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NopSender discards messages. Used when SMTP is not configured.
type NopSender struct{}

func (NopSender) Send(context.Context, Message) error { return nil }
