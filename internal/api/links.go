package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// LinksAPI wraps the /links endpoints.
type LinksAPI struct {
	c *Client
}

// List fetches the tracking links matching the filters (status, campaign,
// search, pagination).
func (l *LinksAPI) List(ctx context.Context, filters url.Values) (*LinkList, error) {
	var list LinkList
	if err := l.c.do(ctx, http.MethodGet, "/links", filters, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Get fetches a single tracking link.
func (l *LinksAPI) Get(ctx context.Context, id int) (*TrackingLink, error) {
	var link TrackingLink
	if err := l.c.do(ctx, http.MethodGet, fmt.Sprintf("/links/%d", id), nil, nil, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// Create creates a tracking link and returns it with its short code.
func (l *LinksAPI) Create(ctx context.Context, input LinkInput) (*TrackingLink, error) {
	var link TrackingLink
	if err := l.c.do(ctx, http.MethodPost, "/links", nil, input, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// Update replaces a tracking link's settings.
func (l *LinksAPI) Update(ctx context.Context, id int, input LinkInput) error {
	return l.c.do(ctx, http.MethodPut, fmt.Sprintf("/links/%d", id), nil, input, nil)
}

// Delete removes a tracking link.
func (l *LinksAPI) Delete(ctx context.Context, id int) error {
	return l.c.do(ctx, http.MethodDelete, fmt.Sprintf("/links/%d", id), nil, nil, nil)
}

// Analytics fetches the per-link analytics payload.
func (l *LinksAPI) Analytics(ctx context.Context, id int) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := l.c.do(ctx, http.MethodGet, fmt.Sprintf("/links/%d/analytics", id), nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// BulkDelete removes several tracking links at once.
func (l *LinksAPI) BulkDelete(ctx context.Context, ids []int) error {
	body := map[string][]int{"ids": ids}
	return l.c.do(ctx, http.MethodPost, "/links/bulk-delete", nil, body, nil)
}

// ShortenerAPI wraps the /shorten endpoints.
type ShortenerAPI struct {
	c *Client
}

// ShortenOptions are the optional settings for a shortened URL.
type ShortenOptions struct {
	Domain     string `json:"domain,omitempty"`
	CustomCode string `json:"custom_code,omitempty"`
	ExpiresAt  string `json:"expires_at,omitempty"`
}

// Shorten creates a short link for the target URL.
func (s *ShortenerAPI) Shorten(ctx context.Context, target string, opts ShortenOptions) (*TrackingLink, error) {
	body := struct {
		URL string `json:"url"`
		ShortenOptions
	}{URL: target, ShortenOptions: opts}

	var link TrackingLink
	if err := s.c.do(ctx, http.MethodPost, "/shorten", nil, body, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// GenerateQR fetches the QR payload for a short code.
func (s *ShortenerAPI) GenerateQR(ctx context.Context, shortCode string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := s.c.do(ctx, http.MethodGet, "/shorten/"+shortCode+"/qr", nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// DomainsAPI wraps the user-facing /domains endpoints.
type DomainsAPI struct {
	c *Client
}

// List fetches the domains attached to the account.
func (d *DomainsAPI) List(ctx context.Context) (*DomainList, error) {
	var list DomainList
	if err := d.c.do(ctx, http.MethodGet, "/domains", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Available fetches the domains open for registration.
func (d *DomainsAPI) Available(ctx context.Context) (*DomainList, error) {
	var list DomainList
	if err := d.c.do(ctx, http.MethodGet, "/domains/available", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
