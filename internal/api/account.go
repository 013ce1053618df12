package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// SecurityAPI wraps the user-facing /security endpoints.
type SecurityAPI struct {
	c *Client
}

// Settings fetches the security settings of the account.
func (s *SecurityAPI) Settings(ctx context.Context) (map[string]any, error) {
	var settings map[string]any
	if err := s.c.do(ctx, http.MethodGet, "/security/settings", nil, nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettings replaces the security settings.
func (s *SecurityAPI) UpdateSettings(ctx context.Context, settings map[string]any) error {
	return s.c.do(ctx, http.MethodPut, "/security/settings", nil, settings, nil)
}

// Enable2FA starts two-factor enrollment.
func (s *SecurityAPI) Enable2FA(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := s.c.do(ctx, http.MethodPost, "/security/2fa/enable", nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Disable2FA turns off two-factor auth using a verification code.
func (s *SecurityAPI) Disable2FA(ctx context.Context, code string) error {
	body := map[string]string{"code": code}
	return s.c.do(ctx, http.MethodPost, "/security/2fa/disable", nil, body, nil)
}

// Sessions fetches the active sessions of the account.
func (s *SecurityAPI) Sessions(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := s.c.do(ctx, http.MethodGet, "/security/sessions", nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// RevokeSession terminates one session.
func (s *SecurityAPI) RevokeSession(ctx context.Context, sessionID string) error {
	return s.c.do(ctx, http.MethodDelete, "/security/sessions/"+sessionID, nil, nil, nil)
}

// LoginHistory fetches the recent login history.
func (s *SecurityAPI) LoginHistory(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := s.c.do(ctx, http.MethodGet, "/security/login-history", nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Threats fetches the threat feed for the account.
func (s *SecurityAPI) Threats(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := s.c.do(ctx, http.MethodGet, "/security/threats", nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// ProfileAPI wraps the /user profile endpoints.
type ProfileAPI struct {
	c *Client
}

// Get fetches the profile of the authenticated user.
func (p *ProfileAPI) Get(ctx context.Context) (*User, error) {
	var user User
	if err := p.c.do(ctx, http.MethodGet, "/user/profile", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update replaces profile fields (email, display name, preferences).
func (p *ProfileAPI) Update(ctx context.Context, fields map[string]any) error {
	return p.c.do(ctx, http.MethodPut, "/user/profile", nil, fields, nil)
}

// ChangePassword sets a new password, verified against the current one.
func (p *ProfileAPI) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{
		"current_password": current,
		"new_password":     next,
	}
	return p.c.do(ctx, http.MethodPost, "/user/change-password", nil, body, nil)
}

// NotificationsAPI wraps the /notifications endpoints.
type NotificationsAPI struct {
	c *Client
}

// List fetches all notifications.
func (n *NotificationsAPI) List(ctx context.Context) (*NotificationList, error) {
	var list NotificationList
	if err := n.c.do(ctx, http.MethodGet, "/notifications", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// MarkRead marks one notification as read.
func (n *NotificationsAPI) MarkRead(ctx context.Context, id int) error {
	return n.c.do(ctx, http.MethodPut, fmt.Sprintf("/notifications/%d/read", id), nil, nil, nil)
}

// MarkAllRead marks every notification as read.
func (n *NotificationsAPI) MarkAllRead(ctx context.Context) error {
	return n.c.do(ctx, http.MethodPut, "/notifications/mark-all-read", nil, nil, nil)
}

// Delete removes a notification.
func (n *NotificationsAPI) Delete(ctx context.Context, id int) error {
	return n.c.do(ctx, http.MethodDelete, fmt.Sprintf("/notifications/%d", id), nil, nil, nil)
}

// SettingsAPI wraps the account /settings endpoints, including API keys.
type SettingsAPI struct {
	c *Client
}

// Get fetches the account settings blob.
func (s *SettingsAPI) Get(ctx context.Context) (map[string]any, error) {
	var settings map[string]any
	if err := s.c.do(ctx, http.MethodGet, "/settings", nil, nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Update replaces the account settings.
func (s *SettingsAPI) Update(ctx context.Context, settings map[string]any) error {
	return s.c.do(ctx, http.MethodPut, "/settings", nil, settings, nil)
}

// APIKeys lists the account's API keys. Only key prefixes are returned.
func (s *SettingsAPI) APIKeys(ctx context.Context) (*APIKeyList, error) {
	var list APIKeyList
	if err := s.c.do(ctx, http.MethodGet, "/settings/api-keys", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateAPIKey creates a key. The returned APIKey carries the full secret;
// it is shown once and never retrievable again.
func (s *SettingsAPI) CreateAPIKey(ctx context.Context, name string) (*APIKey, error) {
	body := map[string]string{"name": name}
	var key APIKey
	if err := s.c.do(ctx, http.MethodPost, "/settings/api-keys", nil, body, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

// DeleteAPIKey revokes a key.
func (s *SettingsAPI) DeleteAPIKey(ctx context.Context, id int) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/settings/api-keys/%d", id), nil, nil, nil)
}
