package api

import (
	"context"
	"fmt"
	"net/http"
)

// AdminSettingsAPI wraps the /admin/settings endpoints: platform settings,
// crypto wallets, payment providers, domains, and messaging integrations.
type AdminSettingsAPI struct {
	c *Client
}

// Get fetches the platform settings blob.
func (a *AdminSettingsAPI) Get(ctx context.Context) (map[string]any, error) {
	var settings map[string]any
	if err := a.c.do(ctx, http.MethodGet, "/admin/settings", nil, nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Update replaces the platform settings.
func (a *AdminSettingsAPI) Update(ctx context.Context, settings map[string]any) error {
	return a.c.do(ctx, http.MethodPut, "/admin/settings", nil, settings, nil)
}

// CryptoWallets fetches the configured receiving wallets.
func (a *AdminSettingsAPI) CryptoWallets(ctx context.Context) (*WalletList, error) {
	var list WalletList
	if err := a.c.do(ctx, http.MethodGet, "/admin/settings/crypto-wallets", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// AddCryptoWallet adds a receiving wallet.
func (a *AdminSettingsAPI) AddCryptoWallet(ctx context.Context, wallet CryptoWallet) error {
	return a.c.do(ctx, http.MethodPost, "/admin/settings/crypto-wallets", nil, wallet, nil)
}

// UpdateCryptoWallet replaces a receiving wallet.
func (a *AdminSettingsAPI) UpdateCryptoWallet(ctx context.Context, id int, wallet CryptoWallet) error {
	return a.c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/settings/crypto-wallets/%d", id), nil, wallet, nil)
}

// DeleteCryptoWallet removes a receiving wallet.
func (a *AdminSettingsAPI) DeleteCryptoWallet(ctx context.Context, id int) error {
	return a.c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/settings/crypto-wallets/%d", id), nil, nil, nil)
}

// StripeSettings fetches the Stripe provider settings.
func (a *AdminSettingsAPI) StripeSettings(ctx context.Context) (map[string]any, error) {
	var settings map[string]any
	if err := a.c.do(ctx, http.MethodGet, "/admin/settings/stripe", nil, nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateStripeSettings replaces the Stripe provider settings.
func (a *AdminSettingsAPI) UpdateStripeSettings(ctx context.Context, settings map[string]any) error {
	return a.c.do(ctx, http.MethodPut, "/admin/settings/stripe", nil, settings, nil)
}

// TestStripeConnection verifies the configured Stripe credentials.
func (a *AdminSettingsAPI) TestStripeConnection(ctx context.Context) error {
	return a.c.do(ctx, http.MethodPost, "/admin/settings/stripe/test", nil, nil, nil)
}

// Domains fetches the platform short-link domains.
func (a *AdminSettingsAPI) Domains(ctx context.Context) (*DomainList, error) {
	var list DomainList
	if err := a.c.do(ctx, http.MethodGet, "/admin/settings/domains", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// AddDomain registers a platform domain.
func (a *AdminSettingsAPI) AddDomain(ctx context.Context, domain Domain) error {
	return a.c.do(ctx, http.MethodPost, "/admin/settings/domains", nil, domain, nil)
}

// UpdateDomain replaces a platform domain.
func (a *AdminSettingsAPI) UpdateDomain(ctx context.Context, id int, domain Domain) error {
	return a.c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/settings/domains/%d", id), nil, domain, nil)
}

// DeleteDomain removes a platform domain.
func (a *AdminSettingsAPI) DeleteDomain(ctx context.Context, id int) error {
	return a.c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/settings/domains/%d", id), nil, nil, nil)
}

// TelegramSettings fetches the Telegram notification settings.
func (a *AdminSettingsAPI) TelegramSettings(ctx context.Context) (map[string]any, error) {
	var settings map[string]any
	if err := a.c.do(ctx, http.MethodGet, "/admin/settings/telegram", nil, nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateTelegramSettings replaces the Telegram notification settings.
func (a *AdminSettingsAPI) UpdateTelegramSettings(ctx context.Context, settings map[string]any) error {
	return a.c.do(ctx, http.MethodPut, "/admin/settings/telegram", nil, settings, nil)
}

// TestTelegram sends a test notification.
func (a *AdminSettingsAPI) TestTelegram(ctx context.Context) error {
	return a.c.do(ctx, http.MethodPost, "/admin/settings/telegram/test", nil, nil, nil)
}

// SMTPSettings fetches the outbound mail settings.
func (a *AdminSettingsAPI) SMTPSettings(ctx context.Context) (map[string]any, error) {
	var settings map[string]any
	if err := a.c.do(ctx, http.MethodGet, "/admin/settings/smtp", nil, nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSMTPSettings replaces the outbound mail settings.
func (a *AdminSettingsAPI) UpdateSMTPSettings(ctx context.Context, settings map[string]any) error {
	return a.c.do(ctx, http.MethodPut, "/admin/settings/smtp", nil, settings, nil)
}

// TestSMTP sends a test email.
func (a *AdminSettingsAPI) TestSMTP(ctx context.Context) error {
	return a.c.do(ctx, http.MethodPost, "/admin/settings/smtp/test", nil, nil, nil)
}
