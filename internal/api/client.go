// Package api is the single choke point for all calls to the link-tracker
// backend. It wraps net/http with bearer-token injection, the shared error
// taxonomy, and the per-group endpoint wrappers. Every call is fire-once:
// no retries, no backoff, no deduplication.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brainlink/trackpanel/internal/session"
)

// Client talks to the backend REST API. All domain call groups delegate to
// its do method.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
	log     *zap.Logger

	// authExpired is invoked when the session becomes unusable (missing,
	// malformed, or rejected with 401). It is the redirect-to-login analog.
	authExpired func()
	// expired guards authExpired so the expiry path runs exactly once per
	// expiry, never in a loop. Reset on the next successful login.
	expired atomic.Bool

	Auth           *AuthAPI
	Dashboard      *DashboardAPI
	Links          *LinksAPI
	Analytics      *AnalyticsAPI
	Campaigns      *CampaignsAPI
	LiveActivity   *LiveActivityAPI
	Geography      *GeographyAPI
	Security       *SecurityAPI
	Profile        *ProfileAPI
	Notifications  *NotificationsAPI
	Settings       *SettingsAPI
	Admin          *AdminAPI
	AdminUsers     *AdminUsersAPI
	AdminCampaigns *AdminCampaignsAPI
	AdminLinks     *AdminLinksAPI
	AdminPayments  *AdminPaymentsAPI
	AdminTickets   *AdminTicketsAPI
	AdminLogs      *AdminLogsAPI
	AdminSecurity  *AdminSecurityAPI
	AdminSettings  *AdminSettingsAPI
	Quantum        *QuantumAPI
	Shortener      *ShortenerAPI
	Domains        *DomainsAPI
	Payments       *PaymentsAPI
	Tickets        *TicketsAPI
}

// Option customizes a Client.
type Option func(*Client)

// WithAuthExpired sets the callback fired when the session expires.
func WithAuthExpired(fn func()) Option {
	return func(c *Client) { c.authExpired = fn }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New constructs a Client for the backend at baseURL (including the /api
// prefix). Cookies are kept across requests, matching the browser's
// credentials-include behavior.
func New(baseURL string, sess *session.Store, log *zap.Logger, opts ...Option) *Client {
	jar, _ := cookiejar.New(nil)
	c := &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
		session: sess,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Auth = &AuthAPI{c: c}
	c.Dashboard = &DashboardAPI{c: c}
	c.Links = &LinksAPI{c: c}
	c.Analytics = &AnalyticsAPI{c: c}
	c.Campaigns = &CampaignsAPI{c: c}
	c.LiveActivity = &LiveActivityAPI{c: c}
	c.Geography = &GeographyAPI{c: c}
	c.Security = &SecurityAPI{c: c}
	c.Profile = &ProfileAPI{c: c}
	c.Notifications = &NotificationsAPI{c: c}
	c.Settings = &SettingsAPI{c: c}
	c.Admin = &AdminAPI{c: c}
	c.AdminUsers = &AdminUsersAPI{c: c}
	c.AdminCampaigns = &AdminCampaignsAPI{c: c}
	c.AdminLinks = &AdminLinksAPI{c: c}
	c.AdminPayments = &AdminPaymentsAPI{c: c}
	c.AdminTickets = &AdminTicketsAPI{c: c}
	c.AdminLogs = &AdminLogsAPI{c: c}
	c.AdminSecurity = &AdminSecurityAPI{c: c}
	c.AdminSettings = &AdminSettingsAPI{c: c}
	c.Quantum = &QuantumAPI{c: c}
	c.Shortener = &ShortenerAPI{c: c}
	c.Domains = &DomainsAPI{c: c}
	c.Payments = &PaymentsAPI{c: c}
	c.Tickets = &TicketsAPI{c: c}
	return c
}

// Session exposes the underlying session store.
func (c *Client) Session() *session.Store {
	return c.session
}

// expire clears the session and fires the expiry callback at most once.
func (c *Client) expire() {
	_ = c.session.Clear()
	if c.expired.CompareAndSwap(false, true) {
		if c.authExpired != nil {
			c.authExpired()
		}
	}
}

// resetExpiry re-arms the expiry callback after a successful login.
func (c *Client) resetExpiry() {
	c.expired.Store(false)
}

// do performs an authenticated JSON request. A missing or malformed token is
// rejected before any network I/O and triggers the expiry path.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	token := c.session.Token()
	if !session.TokenLooksValid(token) {
		c.log.Warn("request without usable token", zap.String("path", path))
		c.expire()
		return fmt.Errorf("%s %s: %w", method, path, ErrAuthRequired)
	}
	return c.send(ctx, method, path, query, body, out, token)
}

// doPublic performs an unauthenticated JSON request (login, register, health).
func (c *Client) doPublic(ctx context.Context, method, path string, query url.Values, body, out any) error {
	return c.send(ctx, method, path, query, body, out, "")
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body, out any, token string) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug("api request", zap.String("method", method), zap.String("url", target))

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		c.log.Error("api transport failure", zap.String("url", target), zap.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, ErrNetwork)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	c.log.Debug("api response", zap.String("url", target), zap.Int("status", resp.StatusCode))

	if err := c.checkStatus(resp, token != ""); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// checkStatus maps the response status onto the error taxonomy. authed marks
// requests that carried a token: only those clear the session on 401.
func (c *Client) checkStatus(resp *http.Response, authed bool) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if authed {
			c.expire()
		}
		return &APIError{Status: resp.StatusCode, Message: ErrAuthRequired.Error(), err: ErrAuthRequired}
	case resp.StatusCode == http.StatusForbidden:
		return &APIError{Status: resp.StatusCode, Message: ErrPermission.Error(), err: ErrPermission}
	case resp.StatusCode == http.StatusNotFound:
		return &APIError{Status: resp.StatusCode, Message: ErrNotFound.Error(), err: ErrNotFound}
	case resp.StatusCode >= http.StatusInternalServerError:
		return &APIError{Status: resp.StatusCode, Message: ErrServer.Error(), err: ErrServer}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		var body errorBody
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return &APIError{Status: resp.StatusCode, Message: body.text()}
	}
	return nil
}

// HealthCheck reports whether the backend answers its health endpoint. It
// never requires a token.
func (c *Client) HealthCheck(ctx context.Context) bool {
	err := c.doPublic(ctx, http.MethodGet, "/health", nil, nil, nil)
	return err == nil
}
