package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"plotdesk/internal/platform/config"
	dErrors "plotdesk/pkg/domain-errors"
	"plotdesk/pkg/platform/circuit"
)

// breakerCooldown is how long an open circuit sheds calls before the next
// probe is allowed through.
const breakerCooldown = 30 * time.Second

// RazorpayClient talks to the Razorpay orders API over HTTP basic auth.
// A circuit breaker sheds calls while the gateway is down so checkout pages
// fail fast instead of stacking up timeouts.
type RazorpayClient struct {
	cfg        config.RazorpayConfig
	httpClient *http.Client
	breaker    *circuit.Breaker

	mu       sync.Mutex
	openedAt time.Time
}

func NewRazorpayClient(cfg config.RazorpayConfig) *RazorpayClient {
	return &RazorpayClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    circuit.New("razorpay", circuit.WithFailureThreshold(5)),
	}
}

type orderPayload struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt,omitempty"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CreateOrder opens an order with the gateway. Gateway failures surface as
// unavailable-class domain errors; credentials never appear in error text.
func (c *RazorpayClient) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	if !c.allowCall() {
		return nil, dErrors.New(dErrors.CodeUnavailable, "payment gateway circuit open")
	}

	order, err := c.createOrder(ctx, req)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnavailable) {
			if _, change := c.breaker.RecordFailure(); change.Opened {
				c.mu.Lock()
				c.openedAt = time.Now()
				c.mu.Unlock()
			}
		}
		return nil, err
	}
	c.breaker.RecordSuccess()
	return order, nil
}

// allowCall lets calls through while the circuit is closed, and one probe
// per cooldown while it is open.
func (c *RazorpayClient) allowCall() bool {
	if !c.breaker.IsOpen() {
		return true
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if time.Since(c.openedAt) < breakerCooldown {
		return false
	}
	c.openedAt = time.Now()
	c.breaker.Reset()
	return true
}

func (c *RazorpayClient) createOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}
	body, err := json.Marshal(orderPayload{
		Amount:   req.AmountPaise,
		Currency: currency,
		Receipt:  req.Receipt,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal order payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.cfg.KeyID, c.cfg.KeySecret)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "payment gateway unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, dErrors.New(dErrors.CodeUnavailable,
			fmt.Sprintf("payment gateway returned status %d", resp.StatusCode))
	}

	var decoded orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "unreadable gateway response")
	}
	return &Order{
		ID:          decoded.ID,
		AmountPaise: decoded.Amount,
		Currency:    decoded.Currency,
		Receipt:     decoded.Receipt,
		Status:      decoded.Status,
	}, nil
}
