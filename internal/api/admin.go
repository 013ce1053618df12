package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// AdminAPI wraps the admin dashboard endpoints.
type AdminAPI struct {
	c *Client
}

// Dashboard fetches the admin dashboard stats.
func (a *AdminAPI) Dashboard(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := a.c.do(ctx, http.MethodGet, "/admin/dashboard/stats", nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Metrics fetches the platform-wide metrics.
func (a *AdminAPI) Metrics(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := a.c.do(ctx, http.MethodGet, "/admin/metrics", nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// UsersGraph fetches the signup graph for the last days.
func (a *AdminAPI) UsersGraph(ctx context.Context, days int) (json.RawMessage, error) {
	if days <= 0 {
		days = 30
	}
	q := url.Values{"days": {strconv.Itoa(days)}}
	var raw json.RawMessage
	if err := a.c.do(ctx, http.MethodGet, "/admin/users/graph", q, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// RevenueChart fetches the revenue chart for the last months.
func (a *AdminAPI) RevenueChart(ctx context.Context, months int) (json.RawMessage, error) {
	if months <= 0 {
		months = 12
	}
	q := url.Values{"months": {strconv.Itoa(months)}}
	var raw json.RawMessage
	if err := a.c.do(ctx, http.MethodGet, "/admin/revenue/chart", q, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// AdminUsersAPI wraps the /admin/users management endpoints.
type AdminUsersAPI struct {
	c *Client
}

// List fetches users matching the filters (role, status, search, pagination).
func (a *AdminUsersAPI) List(ctx context.Context, filters url.Values) (*UserList, error) {
	var list UserList
	if err := a.c.do(ctx, http.MethodGet, "/admin/users", filters, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Get fetches one user.
func (a *AdminUsersAPI) Get(ctx context.Context, id int) (*User, error) {
	var user User
	if err := a.c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/users/%d", id), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create creates a user directly (bypassing registration approval).
func (a *AdminUsersAPI) Create(ctx context.Context, fields map[string]any) (*User, error) {
	var user User
	if err := a.c.do(ctx, http.MethodPost, "/admin/users", nil, fields, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update patches user fields.
func (a *AdminUsersAPI) Update(ctx context.Context, id int, fields map[string]any) error {
	return a.c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/users/%d", id), nil, fields, nil)
}

// Delete removes a user. The backend exposes this as a POST action.
func (a *AdminUsersAPI) Delete(ctx context.Context, id int) error {
	return a.c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/users/%d/delete", id), nil, nil, nil)
}

// Suspend suspends a user with a reason.
func (a *AdminUsersAPI) Suspend(ctx context.Context, id int, reason string) error {
	body := map[string]any{"suspend": true, "reason": reason}
	return a.c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/users/%d/suspend", id), nil, body, nil)
}

// Activate approves/unsuspends a user.
func (a *AdminUsersAPI) Activate(ctx context.Context, id int) error {
	return a.c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/users/%d/approve", id), nil, nil, nil)
}

// Impersonate obtains a session acting as the user.
func (a *AdminUsersAPI) Impersonate(ctx context.Context, id int) (*LoginResponse, error) {
	var resp LoginResponse
	if err := a.c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/users/%d/impersonate", id), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResetPassword resets a user's password to the platform default.
func (a *AdminUsersAPI) ResetPassword(ctx context.Context, id int) error {
	body := map[string]string{"new_password": "Password123!"}
	return a.c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/users/%d/reset-password", id), nil, body, nil)
}

// Pending fetches registrations awaiting approval.
func (a *AdminUsersAPI) Pending(ctx context.Context) (*UserList, error) {
	var list UserList
	if err := a.c.do(ctx, http.MethodGet, "/admin/pending-users", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ApprovePending approves a pending registration.
func (a *AdminUsersAPI) ApprovePending(ctx context.Context, id int) error {
	return a.c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/pending-users/%d/approve", id), nil, nil, nil)
}

// RejectPending rejects a pending registration with a reason.
func (a *AdminUsersAPI) RejectPending(ctx context.Context, id int, reason string) error {
	body := map[string]string{"reason": reason}
	return a.c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/pending-users/%d/reject", id), nil, body, nil)
}
