package payment

import "context"

// Store persists verified bookings. Verification itself is stateless; the
// store is a downstream collaborator recorded only after a VERIFIED outcome.
type Store interface {
	SaveBooking(ctx context.Context, b *Booking) error
	FindByOrderID(ctx context.Context, orderID string) (*Booking, error)
}
