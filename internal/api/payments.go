package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// PaymentsAPI wraps the user-facing payment endpoints, including manual
// crypto payments.
type PaymentsAPI struct {
	c *Client
}

// Plans fetches the subscription plans.
func (p *PaymentsAPI) Plans(ctx context.Context) (*PlanList, error) {
	var list PlanList
	if err := p.c.do(ctx, http.MethodGet, "/payments/plans", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateCheckoutSession starts a PayPal/Stripe checkout for a plan and
// returns the provider payload (checkout URL etc.).
func (p *PaymentsAPI) CreateCheckoutSession(ctx context.Context, planID string) (json.RawMessage, error) {
	body := map[string]string{"planId": planID}
	var raw json.RawMessage
	if err := p.c.do(ctx, http.MethodPost, "/payments/create-checkout-session", nil, body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// SubmitCryptoPayment submits a payment proof (tx hash, currency, amount).
// Verification happens server-side; the panel only polls the status.
func (p *PaymentsAPI) SubmitCryptoPayment(ctx context.Context, input CryptoPaymentInput) (*CryptoPayment, error) {
	var wrapper struct {
		Payment CryptoPayment `json:"payment"`
	}
	if err := p.c.do(ctx, http.MethodPost, "/crypto-payments/submit", nil, input, &wrapper); err != nil {
		return nil, err
	}
	return &wrapper.Payment, nil
}

// CryptoWallets fetches the receiving addresses configured by the operator.
func (p *PaymentsAPI) CryptoWallets(ctx context.Context) (*WalletList, error) {
	var list WalletList
	if err := p.c.do(ctx, http.MethodGet, "/crypto-payments/wallets", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CheckStatus fetches the confirmation state of a submitted payment. Polled
// every 10 seconds by the payment view until IsConfirmed.
func (p *PaymentsAPI) CheckStatus(ctx context.Context, id int) (*PaymentStatus, error) {
	var status PaymentStatus
	if err := p.c.do(ctx, http.MethodGet, fmt.Sprintf("/crypto-payments/check-status/%d", id), nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// TicketsAPI wraps the user-facing /support-tickets endpoints.
type TicketsAPI struct {
	c *Client
}

// TicketInput is the create payload for a support ticket.
type TicketInput struct {
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Priority string `json:"priority,omitempty"`
}

// List fetches the user's tickets.
func (t *TicketsAPI) List(ctx context.Context) (*TicketList, error) {
	var list TicketList
	if err := t.c.do(ctx, http.MethodGet, "/support-tickets", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Get fetches one ticket with its thread.
func (t *TicketsAPI) Get(ctx context.Context, id int) (*SupportTicket, error) {
	var ticket SupportTicket
	if err := t.c.do(ctx, http.MethodGet, fmt.Sprintf("/support-tickets/%d", id), nil, nil, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Create opens a ticket.
func (t *TicketsAPI) Create(ctx context.Context, input TicketInput) (*SupportTicket, error) {
	var ticket SupportTicket
	if err := t.c.do(ctx, http.MethodPost, "/support-tickets", nil, input, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Reply appends a message to a ticket.
func (t *TicketsAPI) Reply(ctx context.Context, id int, message string) error {
	body := map[string]string{"message": message}
	return t.c.do(ctx, http.MethodPost, fmt.Sprintf("/support-tickets/%d/reply", id), nil, body, nil)
}

// Close closes a ticket.
func (t *TicketsAPI) Close(ctx context.Context, id int) error {
	return t.c.do(ctx, http.MethodPost, fmt.Sprintf("/support-tickets/%d/close", id), nil, nil, nil)
}

// QuantumAPI wraps the quantum-redirect diagnostics endpoints.
type QuantumAPI struct {
	c *Client
}

// Metrics fetches the redirect engine metrics.
func (q *QuantumAPI) Metrics(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := q.c.do(ctx, http.MethodGet, "/quantum/metrics", nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// SecurityDashboard fetches the redirect security dashboard.
func (q *QuantumAPI) SecurityDashboard(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := q.c.do(ctx, http.MethodGet, "/quantum/security-dashboard", nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// TestRedirect runs a redirect self-test.
func (q *QuantumAPI) TestRedirect(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := q.c.do(ctx, http.MethodGet, "/quantum/test-redirect", nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
