package panel

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/brainlink/trackpanel/internal/api"
)

// validateLink applies the client-side checks run before creating a link.
func validateLink(input api.LinkInput) error {
	target := strings.TrimSpace(input.TargetURL)
	if target == "" {
		return fmt.Errorf("%w: target URL is required", ErrValidation)
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: target URL must be absolute", ErrValidation)
	}
	return nil
}

// ShowLinks renders the tracking link list, optionally filtered.
func (p *Panel) ShowLinks(ctx context.Context, filters url.Values) {
	p.loading("tracking links")

	list, err := p.api.Links.List(ctx, filters)
	if err != nil {
		p.notify.Error("%v", err)
		return
	}
	if len(list.Links) == 0 {
		fmt.Fprintln(p.out, "No tracking links yet.")
		return
	}

	w := p.table()
	fmt.Fprintln(w, "ID\tSHORT\tTARGET\tSTATUS\tCLICKS\tFLAGS")
	for _, l := range list.Links {
		fmt.Fprintf(w, "%d\t%s/%s\t%s\t%s\t%d\t%s\n",
			l.ID, l.Domain, l.ShortCode, l.TargetURL, badge(l.Status), l.TotalClicks, linkFlags(l))
	}
	_ = w.Flush()
}

// linkFlags summarizes a link's security/capture options as a short string.
func linkFlags(l api.TrackingLink) string {
	var flags []string
	if l.BotBlocking {
		flags = append(flags, "bot")
	}
	if l.RateLimiting {
		flags = append(flags, "rate")
	}
	if l.GeoTargeting {
		flags = append(flags, "geo")
	}
	if l.CaptureEmail {
		flags = append(flags, "email")
	}
	if l.CapturePasswd {
		flags = append(flags, "passwd")
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ",")
}

// CreateLink validates, creates the link, shows the short code, and
// re-fetches the list.
func (p *Panel) CreateLink(ctx context.Context, input api.LinkInput) {
	if err := validateLink(input); err != nil {
		p.notify.Error("%v", err)
		return
	}

	link, err := p.api.Links.Create(ctx, input)
	if err != nil {
		p.notify.Error("failed to create link: %v", err)
		return
	}
	p.notify.Success("link created: %s/%s", link.Domain, link.ShortCode)
	p.ShowLinks(ctx, nil)
}

// DeleteLink asks for confirmation, deletes, and re-fetches the list.
func (p *Panel) DeleteLink(ctx context.Context, id int) {
	if !p.confirm(fmt.Sprintf("Delete link %d?", id)) {
		p.notify.Info("delete cancelled")
		return
	}

	if err := p.api.Links.Delete(ctx, id); err != nil {
		p.notify.Error("failed to delete link: %v", err)
		return
	}
	p.notify.Success("link %d deleted", id)
	p.ShowLinks(ctx, nil)
}

// ShortenURL creates a plain short link without tracking options.
func (p *Panel) ShortenURL(ctx context.Context, target string, opts api.ShortenOptions) {
	if err := validateLink(api.LinkInput{TargetURL: target}); err != nil {
		p.notify.Error("%v", err)
		return
	}

	link, err := p.api.Shortener.Shorten(ctx, target, opts)
	if err != nil {
		p.notify.Error("failed to shorten URL: %v", err)
		return
	}
	p.notify.Success("short link: %s/%s", link.Domain, link.ShortCode)
}
