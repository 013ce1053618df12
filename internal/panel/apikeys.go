package panel

import (
	"context"
	"fmt"
	"strings"
)

// ShowAPIKeys renders the API key list. Only prefixes are shown; the full
// secret appears once, at creation.
func (p *Panel) ShowAPIKeys(ctx context.Context) {
	p.loading("API keys")

	list, err := p.api.Settings.APIKeys(ctx)
	if err != nil {
		p.notify.Error("%v", err)
		return
	}
	if len(list.Keys) == 0 {
		fmt.Fprintln(p.out, "No API keys yet.")
		return
	}

	w := p.table()
	fmt.Fprintln(w, "ID\tNAME\tPREFIX\tPERMISSIONS\tSTATUS\tEXPIRES")
	for _, k := range list.Keys {
		perms := strings.Join(k.Permissions, ",")
		if perms == "" {
			perms = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s...\t%s\t%s\t%s\n",
			k.ID, k.Name, k.KeyPrefix, perms, badge(k.Status), k.ExpiresAt)
	}
	_ = w.Flush()
}

// CreateAPIKey creates a key and prints the full secret exactly once.
func (p *Panel) CreateAPIKey(ctx context.Context, name string) {
	if strings.TrimSpace(name) == "" {
		p.notify.Error("%v: key name is required", ErrValidation)
		return
	}

	key, err := p.api.Settings.CreateAPIKey(ctx, name)
	if err != nil {
		p.notify.Error("failed to create API key: %v", err)
		return
	}
	p.notify.Success("API key %q created", key.Name)
	fmt.Fprintf(p.out, "Secret (shown once, store it now): %s\n", key.Key)
	p.ShowAPIKeys(ctx)
}

// DeleteAPIKey asks for confirmation, revokes the key, and re-fetches the
// list.
func (p *Panel) DeleteAPIKey(ctx context.Context, id int) {
	if !p.confirm(fmt.Sprintf("Revoke API key %d? Integrations using it will stop working.", id)) {
		p.notify.Info("revoke cancelled")
		return
	}

	if err := p.api.Settings.DeleteAPIKey(ctx, id); err != nil {
		p.notify.Error("failed to revoke API key: %v", err)
		return
	}
	p.notify.Success("API key %d revoked", id)
	p.ShowAPIKeys(ctx)
}
