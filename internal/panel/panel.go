// Package panel implements the terminal views of the control panel. Every
// view follows the same pattern: fetch on entry, render a table, run user
// actions against the API, toast the outcome, re-fetch the list. Errors are
// always recovered at the view boundary.
package panel

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/brainlink/trackpanel/internal/api"
)

// Panel bundles the API client with the terminal in/out streams shared by
// all views.
type Panel struct {
	api    *api.Client
	in     *bufio.Scanner
	out    io.Writer
	notify *Notifier
	log    *zap.Logger
}

// New constructs a Panel reading commands from in and rendering to out.
func New(client *api.Client, in io.Reader, out io.Writer, log *zap.Logger) *Panel {
	return &Panel{
		api:    client,
		in:     bufio.NewScanner(in),
		out:    out,
		notify: NewNotifier(out),
		log:    log,
	}
}

// API exposes the underlying client.
func (p *Panel) API() *api.Client {
	return p.api
}

// Notify exposes the toast notifier.
func (p *Panel) Notify() *Notifier {
	return p.notify
}

// prompt prints a label and reads one line of input.
func (p *Panel) prompt(label string) string {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.in.Scan() {
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

// confirm blocks until the user answers the question with y/N. Anything but
// an explicit yes declines. Destructive actions must go through here.
func (p *Panel) confirm(question string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)
	if !p.in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(p.in.Text()))
	return answer == "y" || answer == "yes"
}

// table returns a tabwriter for list rendering; callers must Flush.
func (p *Panel) table() *tabwriter.Writer {
	return tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
}

// badge renders a status as the bracketed badge used across list views.
func badge(status string) string {
	if status == "" {
		status = "unknown"
	}
	return "[" + strings.ToUpper(status) + "]"
}

// loading prints the loading marker views show while fetching.
func (p *Panel) loading(what string) {
	fmt.Fprintf(p.out, "Loading %s...\n", what)
}
