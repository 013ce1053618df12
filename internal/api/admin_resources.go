package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// AdminCampaignsAPI wraps the /admin/campaigns moderation endpoints.
type AdminCampaignsAPI struct {
	c *Client
}

// List fetches every campaign on the platform.
func (a *AdminCampaignsAPI) List(ctx context.Context) (*CampaignList, error) {
	var list CampaignList
	if err := a.c.do(ctx, http.MethodGet, "/admin/campaigns", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Suspend pauses a campaign platform-wide.
func (a *AdminCampaignsAPI) Suspend(ctx context.Context, id int) error {
	return a.c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/campaigns/%d/suspend", id), nil, nil, nil)
}

// Delete removes a campaign.
func (a *AdminCampaignsAPI) Delete(ctx context.Context, id int) error {
	return a.c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/campaigns/%d", id), nil, nil, nil)
}

// AdminLinksAPI wraps the /admin/links moderation endpoints.
type AdminLinksAPI struct {
	c *Client
}

// List fetches every tracking link on the platform.
func (a *AdminLinksAPI) List(ctx context.Context) (*LinkList, error) {
	var list LinkList
	if err := a.c.do(ctx, http.MethodGet, "/admin/links", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Delete removes a link. Shares the user-facing delete endpoint.
func (a *AdminLinksAPI) Delete(ctx context.Context, id int) error {
	return a.c.do(ctx, http.MethodDelete, fmt.Sprintf("/links/%d", id), nil, nil, nil)
}

// AdminTicketsAPI wraps the /admin/support-tickets endpoints.
type AdminTicketsAPI struct {
	c *Client
}

// List fetches tickets matching the filters (status, priority, assignee).
func (a *AdminTicketsAPI) List(ctx context.Context, filters url.Values) (*TicketList, error) {
	var list TicketList
	if err := a.c.do(ctx, http.MethodGet, "/admin/support-tickets", filters, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Get fetches one ticket with its thread.
func (a *AdminTicketsAPI) Get(ctx context.Context, id int) (*SupportTicket, error) {
	var ticket SupportTicket
	if err := a.c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/support-tickets/%d", id), nil, nil, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Update patches ticket fields (status, priority).
func (a *AdminTicketsAPI) Update(ctx context.Context, id int, fields map[string]any) error {
	return a.c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/support-tickets/%d", id), nil, fields, nil)
}

// Reply appends an operator message to a ticket.
func (a *AdminTicketsAPI) Reply(ctx context.Context, id int, message string) error {
	body := map[string]string{"message": message}
	return a.c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/support-tickets/%d/reply", id), nil, body, nil)
}

// Assign assigns a ticket to an admin.
func (a *AdminTicketsAPI) Assign(ctx context.Context, id, adminID int) error {
	body := map[string]int{"adminId": adminID}
	return a.c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/support-tickets/%d/assign", id), nil, body, nil)
}

// Close closes a ticket.
func (a *AdminTicketsAPI) Close(ctx context.Context, id int) error {
	return a.c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/support-tickets/%d/close", id), nil, nil, nil)
}

// AdminLogsAPI wraps the /admin/audit-logs endpoints.
type AdminLogsAPI struct {
	c *Client
}

// List fetches audit log entries matching the filters.
func (a *AdminLogsAPI) List(ctx context.Context, filters url.Values) (*AuditLogList, error) {
	var list AuditLogList
	if err := a.c.do(ctx, http.MethodGet, "/admin/audit-logs", filters, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Export requests an export of the audit logs (defaults to csv).
func (a *AdminLogsAPI) Export(ctx context.Context, format string) (json.RawMessage, error) {
	if format == "" {
		format = "csv"
	}
	q := url.Values{"format": {format}}
	var raw json.RawMessage
	if err := a.c.do(ctx, http.MethodGet, "/admin/audit-logs/export", q, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// AdminSecurityAPI wraps the /admin/security endpoints.
type AdminSecurityAPI struct {
	c *Client
}

// Threats fetches the platform threat feed.
func (a *AdminSecurityAPI) Threats(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := a.c.do(ctx, http.MethodGet, "/admin/security/threats", nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// ThreatDetails fetches one threat.
func (a *AdminSecurityAPI) ThreatDetails(ctx context.Context, id int) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := a.c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/security/threats/%d", id), nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// BlockedIPs fetches the blocked address list.
func (a *AdminSecurityAPI) BlockedIPs(ctx context.Context) (*BlockedIPList, error) {
	var list BlockedIPList
	if err := a.c.do(ctx, http.MethodGet, "/admin/security/blocked-ips", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// BlockIP blocks an address with a reason.
func (a *AdminSecurityAPI) BlockIP(ctx context.Context, ip, reason string) error {
	body := map[string]string{"ip": ip, "reason": reason}
	return a.c.do(ctx, http.MethodPost, "/admin/security/block-ip", nil, body, nil)
}

// UnblockIP removes an address from the block list.
func (a *AdminSecurityAPI) UnblockIP(ctx context.Context, ip string) error {
	body := map[string]string{"ip": ip}
	return a.c.do(ctx, http.MethodPost, "/admin/security/unblock-ip", nil, body, nil)
}

// QuarantineLink quarantines a flagged link.
func (a *AdminSecurityAPI) QuarantineLink(ctx context.Context, linkID int) error {
	body := map[string]int{"linkId": linkID}
	return a.c.do(ctx, http.MethodPost, "/admin/security/quarantine-link", nil, body, nil)
}
