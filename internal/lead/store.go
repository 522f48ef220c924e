package lead

import "context"

// Store persists captured leads.
type Store interface {
	Save(ctx context.Context, l *Lead) error
	ListRecent(ctx context.Context, limit int) ([]*Lead, error)
}
