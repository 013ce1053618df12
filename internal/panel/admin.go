package panel

import (
	"context"
	"fmt"
	"net/url"

	"github.com/brainlink/trackpanel/internal/api"
)

// ShowAdminUsers renders the platform user table.
func (p *Panel) ShowAdminUsers(ctx context.Context, filters url.Values) {
	p.loading("users")

	list, err := p.api.AdminUsers.List(ctx, filters)
	if err != nil {
		p.notify.Error("%v", err)
		return
	}
	if len(list.Users) == 0 {
		fmt.Fprintln(p.out, "No users found.")
		return
	}

	w := p.table()
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tROLE\tPLAN\tSTATUS\tVERIFIED\tLAST LOGIN")
	for _, u := range list.Users {
		verified := "no"
		if u.IsVerified {
			verified = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Username, u.Email, u.Role, u.PlanType, badge(u.Status), verified, u.LastLogin)
	}
	_ = w.Flush()
}

// ShowPendingUsers renders registrations awaiting approval.
func (p *Panel) ShowPendingUsers(ctx context.Context) {
	p.loading("pending users")

	list, err := p.api.AdminUsers.Pending(ctx)
	if err != nil {
		p.notify.Error("%v", err)
		return
	}
	if len(list.Users) == 0 {
		fmt.Fprintln(p.out, "No pending registrations.")
		return
	}

	w := p.table()
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tREGISTERED")
	for _, u := range list.Users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, u.CreatedAt)
	}
	_ = w.Flush()
}

// ApproveUser approves a pending registration and re-fetches the queue.
func (p *Panel) ApproveUser(ctx context.Context, id int) {
	if err := p.api.AdminUsers.ApprovePending(ctx, id); err != nil {
		p.notify.Error("failed to approve user: %v", err)
		return
	}
	p.notify.Success("user %d approved", id)
	p.ShowPendingUsers(ctx)
}

// SuspendUser asks for confirmation and a reason, suspends, and re-fetches.
func (p *Panel) SuspendUser(ctx context.Context, id int) {
	if !p.confirm(fmt.Sprintf("Suspend user %d?", id)) {
		p.notify.Info("suspend cancelled")
		return
	}
	reason := p.prompt("Reason")

	if err := p.api.AdminUsers.Suspend(ctx, id, reason); err != nil {
		p.notify.Error("failed to suspend user: %v", err)
		return
	}
	p.notify.Success("user %d suspended", id)
	p.ShowAdminUsers(ctx, nil)
}

// DeleteUser asks for confirmation, deletes, and re-fetches.
func (p *Panel) DeleteUser(ctx context.Context, id int) {
	if !p.confirm(fmt.Sprintf("Delete user %d? All their links and campaigns go with them.", id)) {
		p.notify.Info("delete cancelled")
		return
	}

	if err := p.api.AdminUsers.Delete(ctx, id); err != nil {
		p.notify.Error("failed to delete user: %v", err)
		return
	}
	p.notify.Success("user %d deleted", id)
	p.ShowAdminUsers(ctx, nil)
}

// ShowAdminCampaigns renders every campaign on the platform.
func (p *Panel) ShowAdminCampaigns(ctx context.Context) {
	p.loading("campaigns")

	list, err := p.api.AdminCampaigns.List(ctx)
	if err != nil {
		p.notify.Error("%v", err)
		return
	}

	w := p.table()
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tCLICKS")
	for _, c := range list.Campaigns {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", c.ID, c.Name, badge(c.Status), c.TotalClicks)
	}
	_ = w.Flush()
}

// DeleteAdminCampaign asks for confirmation, deletes, and re-fetches.
func (p *Panel) DeleteAdminCampaign(ctx context.Context, id int) {
	if !p.confirm(fmt.Sprintf("Delete campaign %d platform-wide?", id)) {
		p.notify.Info("delete cancelled")
		return
	}

	if err := p.api.AdminCampaigns.Delete(ctx, id); err != nil {
		p.notify.Error("failed to delete campaign: %v", err)
		return
	}
	p.notify.Success("campaign %d deleted", id)
	p.ShowAdminCampaigns(ctx)
}

// ShowAdminPayments renders the manual crypto payments awaiting review.
func (p *Panel) ShowAdminPayments(ctx context.Context) {
	p.loading("crypto payments")

	list, err := p.api.AdminPayments.CryptoPayments(ctx)
	if err != nil {
		p.notify.Error("%v", err)
		return
	}
	if len(list.Payments) == 0 {
		fmt.Fprintln(p.out, "No payments awaiting review.")
		return
	}

	w := p.table()
	fmt.Fprintln(w, "ID\tTX HASH\tCURRENCY\tAMOUNT\tCONF\tSTATUS")
	for _, pay := range list.Payments {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.4f\t%d\t%s\n",
			pay.ID, pay.TxHash, pay.Currency, pay.Amount, pay.Confirmations, badge(pay.Status))
	}
	_ = w.Flush()
}

// VerifyPayment records the operator verdict and re-fetches the queue.
func (p *Panel) VerifyPayment(ctx context.Context, id int, verified bool) {
	if err := p.api.AdminPayments.VerifyCryptoPayment(ctx, id, verified); err != nil {
		p.notify.Error("failed to verify payment: %v", err)
		return
	}
	p.notify.Success("payment %d marked verified=%t", id, verified)
	p.ShowAdminPayments(ctx)
}

// ShowWalletManager renders the configured receiving wallets.
func (p *Panel) ShowWalletManager(ctx context.Context) {
	p.loading("crypto wallets")

	list, err := p.api.AdminSettings.CryptoWallets(ctx)
	if err != nil {
		p.notify.Error("%v", err)
		return
	}

	w := p.table()
	fmt.Fprintln(w, "ID\tCURRENCY\tADDRESS\tLABEL\tACTIVE")
	for _, wallet := range list.Wallets {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n",
			wallet.ID, wallet.Currency, wallet.Address, wallet.Label, wallet.Active)
	}
	_ = w.Flush()
}

// AddWallet validates and adds a receiving wallet, then re-fetches.
func (p *Panel) AddWallet(ctx context.Context, wallet api.CryptoWallet) {
	if wallet.Currency == "" || wallet.Address == "" {
		p.notify.Error("%v: currency and address are required", ErrValidation)
		return
	}

	if err := p.api.AdminSettings.AddCryptoWallet(ctx, wallet); err != nil {
		p.notify.Error("failed to add wallet: %v", err)
		return
	}
	p.notify.Success("wallet added for %s", wallet.Currency)
	p.ShowWalletManager(ctx)
}

// DeleteWallet asks for confirmation, removes the wallet, and re-fetches.
func (p *Panel) DeleteWallet(ctx context.Context, id int) {
	if !p.confirm(fmt.Sprintf("Delete wallet %d? Users will no longer see this address.", id)) {
		p.notify.Info("delete cancelled")
		return
	}

	if err := p.api.AdminSettings.DeleteCryptoWallet(ctx, id); err != nil {
		p.notify.Error("failed to delete wallet: %v", err)
		return
	}
	p.notify.Success("wallet %d deleted", id)
	p.ShowWalletManager(ctx)
}

// ShowBlockedIPs renders the blocked address list.
func (p *Panel) ShowBlockedIPs(ctx context.Context) {
	p.loading("blocked IPs")

	list, err := p.api.AdminSecurity.BlockedIPs(ctx)
	if err != nil {
		p.notify.Error("%v", err)
		return
	}
	if len(list.Blocked) == 0 {
		fmt.Fprintln(p.out, "No blocked addresses.")
		return
	}

	w := p.table()
	fmt.Fprintln(w, "IP\tREASON\tBLOCKED AT")
	for _, b := range list.Blocked {
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.IP, b.Reason, b.BlockedAt)
	}
	_ = w.Flush()
}

// BlockIP blocks an address and re-fetches the list.
func (p *Panel) BlockIP(ctx context.Context, ip, reason string) {
	if ip == "" {
		p.notify.Error("%v: IP address is required", ErrValidation)
		return
	}

	if err := p.api.AdminSecurity.BlockIP(ctx, ip, reason); err != nil {
		p.notify.Error("failed to block IP: %v", err)
		return
	}
	p.notify.Success("blocked %s", ip)
	p.ShowBlockedIPs(ctx)
}

// UnblockIP asks for confirmation, unblocks, and re-fetches the list.
func (p *Panel) UnblockIP(ctx context.Context, ip string) {
	if !p.confirm(fmt.Sprintf("Unblock %s?", ip)) {
		p.notify.Info("unblock cancelled")
		return
	}

	if err := p.api.AdminSecurity.UnblockIP(ctx, ip); err != nil {
		p.notify.Error("failed to unblock IP: %v", err)
		return
	}
	p.notify.Success("unblocked %s", ip)
	p.ShowBlockedIPs(ctx)
}
