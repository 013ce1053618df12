package panel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/brainlink/trackpanel/internal/api"
)

// ErrValidation marks input rejected before any request is sent.
var ErrValidation = errors.New("validation failed")

// validateCampaign applies the client-side checks run before a create or
// update request.
func validateCampaign(input api.CampaignInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: campaign name is required", ErrValidation)
	}
	if input.Budget < 0 {
		return fmt.Errorf("%w: budget cannot be negative", ErrValidation)
	}
	return nil
}

// ShowCampaigns renders the campaign list.
func (p *Panel) ShowCampaigns(ctx context.Context) {
	p.loading("campaigns")

	list, err := p.api.Campaigns.List(ctx)
	if err != nil {
		p.notify.Error("%v", err)
		return
	}
	if len(list.Campaigns) == 0 {
		fmt.Fprintln(p.out, "No campaigns yet.")
		return
	}

	w := p.table()
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tCLICKS\tVISITORS\tCONV\tBUDGET")
	for _, c := range list.Campaigns {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%.1f%%\t%.2f\n",
			c.ID, c.Name, badge(c.Status), c.TotalClicks, c.UniqueVisitors, c.ConversionRate, c.Budget)
	}
	_ = w.Flush()
}

// CreateCampaign validates the input, creates the campaign, toasts the
// outcome, and re-fetches the list. Invalid input never reaches the network.
func (p *Panel) CreateCampaign(ctx context.Context, input api.CampaignInput) {
	if err := validateCampaign(input); err != nil {
		p.notify.Error("%v", err)
		return
	}

	created, err := p.api.Campaigns.Create(ctx, input)
	if err != nil {
		p.notify.Error("failed to create campaign: %v", err)
		return
	}
	p.notify.Success("campaign %q created", created.Name)
	p.ShowCampaigns(ctx)
}

// UpdateCampaign validates and updates a campaign, then re-fetches the list.
func (p *Panel) UpdateCampaign(ctx context.Context, id int, input api.CampaignInput) {
	if err := validateCampaign(input); err != nil {
		p.notify.Error("%v", err)
		return
	}

	if err := p.api.Campaigns.Update(ctx, id, input); err != nil {
		p.notify.Error("failed to update campaign: %v", err)
		return
	}
	p.notify.Success("campaign %d updated", id)
	p.ShowCampaigns(ctx)
}

// DeleteCampaign asks for confirmation, deletes, and re-fetches the list.
func (p *Panel) DeleteCampaign(ctx context.Context, id int) {
	if !p.confirm(fmt.Sprintf("Delete campaign %d? This cannot be undone.", id)) {
		p.notify.Info("delete cancelled")
		return
	}

	if err := p.api.Campaigns.Delete(ctx, id); err != nil {
		p.notify.Error("failed to delete campaign: %v", err)
		return
	}
	p.notify.Success("campaign %d deleted", id)
	p.ShowCampaigns(ctx)
}

// PromptCreateCampaign collects the campaign fields interactively.
func (p *Panel) PromptCreateCampaign(ctx context.Context) {
	input := api.CampaignInput{
		Name:        p.prompt("Name"),
		Description: p.prompt("Description"),
	}
	fmt.Sscanf(p.prompt("Budget"), "%f", &input.Budget)
	p.CreateCampaign(ctx, input)
}
