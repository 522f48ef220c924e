package payment

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"plotdesk/pkg/platform/sentinel"
)

// PostgresStore persists bookings in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) SaveBooking(ctx context.Context, b *Booking) error {
	details, err := json.Marshal(b.Details)
	if err != nil {
		return fmt.Errorf("marshal booking details: %w", err)
	}
	query := `
		INSERT INTO bookings (id, order_id, payment_id, details, verified_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (order_id) DO NOTHING
	`
	res, err := s.db.ExecContext(ctx, query, b.ID, b.OrderID, b.PaymentID, details, b.VerifiedAt)
	if err != nil {
		return fmt.Errorf("save booking: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return sentinel.ErrAlreadyUsed
	}
	return nil
}

func (s *PostgresStore) FindByOrderID(ctx context.Context, orderID string) (*Booking, error) {
	query := `
		SELECT id, order_id, payment_id, details, verified_at
		FROM bookings
		WHERE order_id = $1
	`
	var (
		b       Booking
		details []byte
	)
	err := s.db.QueryRowContext(ctx, query, orderID).
		Scan(&b.ID, &b.OrderID, &b.PaymentID, &details, &b.VerifiedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if err := json.Unmarshal(details, &b.Details); err != nil {
		return nil, fmt.Errorf("unmarshal booking details: %w", err)
	}
	return &b, nil
}
