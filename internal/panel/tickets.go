package panel

import (
	"context"
	"fmt"
	"strings"

	"github.com/brainlink/trackpanel/internal/api"
)

// ShowTickets renders the user's support tickets.
func (p *Panel) ShowTickets(ctx context.Context) {
	p.loading("support tickets")

	list, err := p.api.Tickets.List(ctx)
	if err != nil {
		p.notify.Error("%v", err)
		return
	}
	if len(list.Tickets) == 0 {
		fmt.Fprintln(p.out, "No support tickets.")
		return
	}

	w := p.table()
	fmt.Fprintln(w, "ID\tSUBJECT\tPRIORITY\tSTATUS\tOPENED")
	for _, t := range list.Tickets {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", t.ID, t.Subject, t.Priority, badge(t.Status), t.CreatedAt)
	}
	_ = w.Flush()
}

// ShowTicket renders one ticket with its message thread.
func (p *Panel) ShowTicket(ctx context.Context, id int) {
	ticket, err := p.api.Tickets.Get(ctx, id)
	if err != nil {
		p.notify.Error("%v", err)
		return
	}

	fmt.Fprintf(p.out, "#%d %s %s\n", ticket.ID, ticket.Subject, badge(ticket.Status))
	for _, m := range ticket.Messages {
		fmt.Fprintf(p.out, "  [%s] %s: %s\n", m.CreatedAt, m.Author, m.Message)
	}
}

// CreateTicket validates, opens a ticket, and re-fetches the list.
func (p *Panel) CreateTicket(ctx context.Context, input api.TicketInput) {
	if strings.TrimSpace(input.Subject) == "" || strings.TrimSpace(input.Message) == "" {
		p.notify.Error("%v: subject and message are required", ErrValidation)
		return
	}

	ticket, err := p.api.Tickets.Create(ctx, input)
	if err != nil {
		p.notify.Error("failed to open ticket: %v", err)
		return
	}
	p.notify.Success("ticket #%d opened", ticket.ID)
	p.ShowTickets(ctx)
}

// ReplyTicket appends a message and re-renders the thread.
func (p *Panel) ReplyTicket(ctx context.Context, id int, message string) {
	if strings.TrimSpace(message) == "" {
		p.notify.Error("%v: message is required", ErrValidation)
		return
	}

	if err := p.api.Tickets.Reply(ctx, id, message); err != nil {
		p.notify.Error("failed to reply: %v", err)
		return
	}
	p.notify.Success("reply sent")
	p.ShowTicket(ctx, id)
}

// CloseTicket asks for confirmation, closes, and re-fetches the list.
func (p *Panel) CloseTicket(ctx context.Context, id int) {
	if !p.confirm(fmt.Sprintf("Close ticket #%d?", id)) {
		p.notify.Info("close cancelled")
		return
	}

	if err := p.api.Tickets.Close(ctx, id); err != nil {
		p.notify.Error("failed to close ticket: %v", err)
		return
	}
	p.notify.Success("ticket #%d closed", id)
	p.ShowTickets(ctx)
}
