package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// CampaignsAPI wraps the /campaigns endpoints.
type CampaignsAPI struct {
	c *Client
}

// List fetches all campaigns of the account.
func (a *CampaignsAPI) List(ctx context.Context) (*CampaignList, error) {
	var list CampaignList
	if err := a.c.do(ctx, http.MethodGet, "/campaigns", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Get fetches a single campaign.
func (a *CampaignsAPI) Get(ctx context.Context, id int) (*Campaign, error) {
	var campaign Campaign
	if err := a.c.do(ctx, http.MethodGet, fmt.Sprintf("/campaigns/%d", id), nil, nil, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// Create creates a campaign.
func (a *CampaignsAPI) Create(ctx context.Context, input CampaignInput) (*Campaign, error) {
	var campaign Campaign
	if err := a.c.do(ctx, http.MethodPost, "/campaigns", nil, input, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// Update replaces a campaign's settings.
func (a *CampaignsAPI) Update(ctx context.Context, id int, input CampaignInput) error {
	return a.c.do(ctx, http.MethodPut, fmt.Sprintf("/campaigns/%d", id), nil, input, nil)
}

// Delete removes a campaign.
func (a *CampaignsAPI) Delete(ctx context.Context, id int) error {
	return a.c.do(ctx, http.MethodDelete, fmt.Sprintf("/campaigns/%d", id), nil, nil, nil)
}

// Performance fetches the server-computed performance projection of a
// campaign.
func (a *CampaignsAPI) Performance(ctx context.Context, id int) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := a.c.do(ctx, http.MethodGet, fmt.Sprintf("/campaigns/%d/performance", id), nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
