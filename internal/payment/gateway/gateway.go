// Package gateway wraps the payment gateway's server-side REST API. Only
// order creation is needed here; callback verification is pure HMAC work and
// lives in the payment package itself.
package gateway

import "context"

// OrderRequest asks the gateway to open an order for a token payment.
// Amounts are integer paise, the gateway's smallest currency unit.
type OrderRequest struct {
	AmountPaise int64
	Currency    string
	Receipt     string
}

// Order is the gateway's view of a created order. The ID is what the
// checkout widget needs client-side.
type Order struct {
	ID          string
	AmountPaise int64
	Currency    string
	Receipt     string
	Status      string
}

// Gateway creates orders with the payment provider.
type Gateway interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
}
