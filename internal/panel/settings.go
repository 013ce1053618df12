package panel

import (
	"context"
	"fmt"
)

// ShowProfile renders the account profile.
func (p *Panel) ShowProfile(ctx context.Context) {
	p.loading("profile")

	user, err := p.api.Profile.Get(ctx)
	if err != nil {
		p.notify.Error("%v", err)
		return
	}

	w := p.table()
	fmt.Fprintf(w, "Username\t%s\n", user.Username)
	fmt.Fprintf(w, "Email\t%s\n", user.Email)
	fmt.Fprintf(w, "Role\t%s\n", user.Role)
	fmt.Fprintf(w, "Plan\t%s\n", user.PlanType)
	fmt.Fprintf(w, "Status\t%s\n", badge(user.Status))
	fmt.Fprintf(w, "Last login\t%s\n", user.LastLogin)
	_ = w.Flush()
}

// ChangePassword prompts for the current and new password. A mismatch
// between the new password and its confirmation never reaches the network.
func (p *Panel) ChangePassword(ctx context.Context) {
	current := p.prompt("Current password")
	next := p.prompt("New password")
	repeat := p.prompt("Repeat new password")

	if next == "" {
		p.notify.Error("%v: new password is required", ErrValidation)
		return
	}
	if next != repeat {
		p.notify.Error("%v: passwords do not match", ErrValidation)
		return
	}

	if err := p.api.Profile.ChangePassword(ctx, current, next); err != nil {
		p.notify.Error("failed to change password: %v", err)
		return
	}
	p.notify.Success("password changed")
}

// ShowNotifications renders the notification feed.
func (p *Panel) ShowNotifications(ctx context.Context) {
	p.loading("notifications")

	list, err := p.api.Notifications.List(ctx)
	if err != nil {
		p.notify.Error("%v", err)
		return
	}
	if len(list.Notifications) == 0 {
		fmt.Fprintln(p.out, "No notifications.")
		return
	}

	w := p.table()
	fmt.Fprintln(w, "ID\tTITLE\tREAD\tWHEN")
	for _, n := range list.Notifications {
		read := " "
		if n.Read {
			read = "✓"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", n.ID, n.Title, read, n.CreatedAt)
	}
	_ = w.Flush()
}

// MarkAllNotificationsRead marks the whole feed read and re-fetches it.
func (p *Panel) MarkAllNotificationsRead(ctx context.Context) {
	if err := p.api.Notifications.MarkAllRead(ctx); err != nil {
		p.notify.Error("failed to mark notifications: %v", err)
		return
	}
	p.notify.Success("all notifications marked read")
	p.ShowNotifications(ctx)
}
