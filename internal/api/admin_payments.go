package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// AdminPaymentsAPI wraps the admin billing endpoints: subscriptions,
// invoices, transactions, plans, and manual crypto payment review.
type AdminPaymentsAPI struct {
	c *Client
}

// Subscriptions fetches all active subscriptions.
func (a *AdminPaymentsAPI) Subscriptions(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := a.c.do(ctx, http.MethodGet, "/admin/subscriptions", nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Invoices fetches all invoices.
func (a *AdminPaymentsAPI) Invoices(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := a.c.do(ctx, http.MethodGet, "/admin/invoices", nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Transactions fetches all payment transactions.
func (a *AdminPaymentsAPI) Transactions(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := a.c.do(ctx, http.MethodGet, "/admin/transactions", nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Plans fetches the configured subscription plans.
func (a *AdminPaymentsAPI) Plans(ctx context.Context) (*PlanList, error) {
	var list PlanList
	if err := a.c.do(ctx, http.MethodGet, "/admin/subscription-plans", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreatePlan adds a subscription plan.
func (a *AdminPaymentsAPI) CreatePlan(ctx context.Context, plan SubscriptionPlan) error {
	return a.c.do(ctx, http.MethodPost, "/admin/subscription-plans", nil, plan, nil)
}

// UpdatePlan replaces a subscription plan.
func (a *AdminPaymentsAPI) UpdatePlan(ctx context.Context, id string, plan SubscriptionPlan) error {
	return a.c.do(ctx, http.MethodPut, "/admin/subscription-plans/"+id, nil, plan, nil)
}

// CryptoPayments fetches the manual crypto payments awaiting review.
func (a *AdminPaymentsAPI) CryptoPayments(ctx context.Context) (*PaymentList, error) {
	var list PaymentList
	if err := a.c.do(ctx, http.MethodGet, "/admin/crypto-payments", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// VerifyCryptoPayment records the operator's verification verdict for a
// payment.
func (a *AdminPaymentsAPI) VerifyCryptoPayment(ctx context.Context, id int, verified bool) error {
	body := map[string]bool{"verified": verified}
	return a.c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/crypto-payments/%d/verify", id), nil, body, nil)
}
