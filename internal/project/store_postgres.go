package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"plotdesk/pkg/platform/sentinel"
)

// PostgresStore persists the catalog in PostgreSQL. The area breakdown and
// plot inventory are document-shaped, so they live in JSONB columns.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, p *Project) error {
	totalArea, err := json.Marshal(p.TotalArea)
	if err != nil {
		return fmt.Errorf("marshal total area: %w", err)
	}
	breakdown, err := json.Marshal(p.Breakdown)
	if err != nil {
		return fmt.Errorf("marshal breakdown: %w", err)
	}
	plots, err := json.Marshal(p.Plots)
	if err != nil {
		return fmt.Errorf("marshal plots: %w", err)
	}
	query := `
		INSERT INTO projects (id, slug, name, location, rera_number, description,
			total_area, breakdown, plots, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			location = EXCLUDED.location,
			rera_number = EXCLUDED.rera_number,
			description = EXCLUDED.description,
			total_area = EXCLUDED.total_area,
			breakdown = EXCLUDED.breakdown,
			plots = EXCLUDED.plots,
			updated_at = EXCLUDED.updated_at
	`
	_, err = s.db.ExecContext(ctx, query, p.ID, p.Slug, p.Name, p.Location,
		p.RERANumber, p.Description, totalArea, breakdown, plots, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save project: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*Project, error) {
	query := `
		SELECT id, slug, name, location, rera_number, description,
			total_area, breakdown, plots, updated_at
		FROM projects
		ORDER BY name
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []*Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}

func (s *PostgresStore) FindBySlug(ctx context.Context, slug string) (*Project, error) {
	query := `
		SELECT id, slug, name, location, rera_number, description,
			total_area, breakdown, plots, updated_at
		FROM projects
		WHERE slug = $1
	`
	p, err := scanProject(s.db.QueryRowContext(ctx, query, slug).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sentinel.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func scanProject(scan func(...any) error) (*Project, error) {
	var (
		p         Project
		totalArea []byte
		breakdown []byte
		plots     []byte
	)
	if err := scan(&p.ID, &p.Slug, &p.Name, &p.Location, &p.RERANumber,
		&p.Description, &totalArea, &breakdown, &plots, &p.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	if err := json.Unmarshal(totalArea, &p.TotalArea); err != nil {
		return nil, fmt.Errorf("unmarshal total area: %w", err)
	}
	if err := json.Unmarshal(breakdown, &p.Breakdown); err != nil {
		return nil, fmt.Errorf("unmarshal breakdown: %w", err)
	}
	if err := json.Unmarshal(plots, &p.Plots); err != nil {
		return nil, fmt.Errorf("unmarshal plots: %w", err)
	}
	return &p, nil
}
