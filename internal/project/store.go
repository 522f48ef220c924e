package project

import "context"

// Store abstracts catalog persistence. FindBySlug returns
// sentinel.ErrNotFound when no project matches.
type Store interface {
	Save(ctx context.Context, p *Project) error
	List(ctx context.Context) ([]*Project, error)
	FindBySlug(ctx context.Context, slug string) (*Project, error)
}
