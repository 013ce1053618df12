package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// AnalyticsAPI wraps the /analytics endpoints outside the dashboard summary.
type AnalyticsAPI struct {
	c *Client
}

func (a *AnalyticsAPI) getRaw(ctx context.Context, path string, q url.Values) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := a.c.do(ctx, http.MethodGet, path, q, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Overview fetches the analytics overview for a period.
func (a *AnalyticsAPI) Overview(ctx context.Context, period string) (json.RawMessage, error) {
	return a.getRaw(ctx, "/analytics/overview", url.Values{"period": {period}})
}

// ClicksOverTime fetches the click series for a period.
func (a *AnalyticsAPI) ClicksOverTime(ctx context.Context, period string) (json.RawMessage, error) {
	return a.getRaw(ctx, "/analytics/performance", url.Values{"period": {period}})
}

// VisitorsOverTime fetches the visitor series for a period.
func (a *AnalyticsAPI) VisitorsOverTime(ctx context.Context, period string) (json.RawMessage, error) {
	return a.getRaw(ctx, "/analytics/performance", url.Values{"period": {period}})
}

// Geography fetches the geographic breakdown.
func (a *AnalyticsAPI) Geography(ctx context.Context) (json.RawMessage, error) {
	return a.getRaw(ctx, "/analytics/geography", nil)
}

// Export requests an export of the analytics data in the given format
// (defaults to csv).
func (a *AnalyticsAPI) Export(ctx context.Context, format string) (json.RawMessage, error) {
	if format == "" {
		format = "csv"
	}
	return a.getRaw(ctx, "/analytics/export", url.Values{"format": {format}})
}

// LiveActivityAPI wraps the live click-event feed.
type LiveActivityAPI struct {
	c *Client
}

// LiveEvent is one row of the live activity feed.
type LiveEvent struct {
	ID        int    `json:"id"`
	IP        string `json:"ip"`
	Country   string `json:"country"`
	Device    string `json:"device"`
	ShortCode string `json:"short_code"`
	Status    string `json:"status"`
	IsBot     bool   `json:"is_bot"`
	CreatedAt string `json:"created_at"`
}

// LiveEventList wraps GET /events/live.
type LiveEventList struct {
	Events []LiveEvent `json:"events"`
}

// Events fetches the live events matching the filters.
func (a *LiveActivityAPI) Events(ctx context.Context, filters url.Values) (*LiveEventList, error) {
	var list LiveEventList
	if err := a.c.do(ctx, http.MethodGet, "/events/live", filters, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// EventDetails fetches one event.
func (a *LiveActivityAPI) EventDetails(ctx context.Context, id int) (*LiveEvent, error) {
	var ev LiveEvent
	if err := a.c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%d", id), nil, nil, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// BlockIP blocks the source address of a live event.
func (a *LiveActivityAPI) BlockIP(ctx context.Context, ip string) error {
	body := map[string]string{"ip": ip}
	return a.c.do(ctx, http.MethodPost, "/security/block-ip", nil, body, nil)
}

// GeographyAPI wraps the geography views and per-link geo-fencing.
type GeographyAPI struct {
	c *Client
}

// Countries fetches the per-country breakdown.
func (g *GeographyAPI) Countries(ctx context.Context) (json.RawMessage, error) {
	var data struct {
		Countries json.RawMessage `json:"countries"`
	}
	if err := g.c.do(ctx, http.MethodGet, "/analytics/geography", nil, nil, &data); err != nil {
		return nil, err
	}
	return data.Countries, nil
}

// Cities fetches the per-city breakdown.
func (g *GeographyAPI) Cities(ctx context.Context) (json.RawMessage, error) {
	var data struct {
		Cities json.RawMessage `json:"cities"`
	}
	if err := g.c.do(ctx, http.MethodGet, "/analytics/geography", nil, nil, &data); err != nil {
		return nil, err
	}
	return data.Cities, nil
}

// GeoFencing fetches the geo-targeting rules of a link.
func (g *GeographyAPI) GeoFencing(ctx context.Context, linkID int) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := g.c.do(ctx, http.MethodGet, fmt.Sprintf("/links/%d/geo-fencing", linkID), nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// UpdateGeoFencing replaces the geo-targeting rules of a link.
func (g *GeographyAPI) UpdateGeoFencing(ctx context.Context, linkID int, settings map[string]any) error {
	return g.c.do(ctx, http.MethodPut, fmt.Sprintf("/links/%d/geo-fencing", linkID), nil, settings, nil)
}
