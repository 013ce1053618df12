package panel

import (
	"context"
	"fmt"
)

// ShowDashboard renders the metric cards and the supporting tables.
func (p *Panel) ShowDashboard(ctx context.Context, period string) {
	p.loading("dashboard")

	metrics, err := p.api.Dashboard.GetMetrics(ctx, period)
	if err != nil {
		p.notify.Error("%v", err)
		return
	}

	fmt.Fprintf(p.out, "\nDashboard (%s)\n", period)
	w := p.table()
	fmt.Fprintf(w, "Total Links\t%d\t%+.1f%%\n", metrics.TotalLinks, metrics.TotalLinksChange)
	fmt.Fprintf(w, "Total Clicks\t%d\t%+.1f%%\n", metrics.TotalClicks, metrics.TotalClicksChange)
	fmt.Fprintf(w, "Real Visitors\t%d\t%+.1f%%\n", metrics.RealVisitors, metrics.RealVisitorsChange)
	fmt.Fprintf(w, "Captured Emails\t%d\t%+.1f%%\n", metrics.CapturedEmails, metrics.CapturedEmailsChange)
	fmt.Fprintf(w, "Active Links\t%d\t%+.1f%%\n", metrics.ActiveLinks, metrics.ActiveLinksChange)
	fmt.Fprintf(w, "Conversion Rate\t%.1f%%\t%+.1f%%\n", metrics.ConversionRate, metrics.ConversionRateChange)
	fmt.Fprintf(w, "Avg Clicks/Link\t%d\t\n", metrics.AvgClicksPerLink)
	fmt.Fprintf(w, "Countries\t%d\t\n", metrics.Countries)
	_ = w.Flush()

	countries, err := p.api.Dashboard.GetTopCountries(ctx)
	if err != nil {
		p.notify.Error("%v", err)
		return
	}
	if len(countries) > 0 {
		fmt.Fprintln(p.out, "\nTop Countries")
		w = p.table()
		fmt.Fprintln(w, "COUNTRY\tCLICKS\tEMAILS\tSHARE")
		for _, c := range countries {
			fmt.Fprintf(w, "%s %s\t%d\t%d\t%.1f%%\n", c.Flag, c.Name, c.Clicks, c.Emails, c.Percentage)
		}
		_ = w.Flush()
	}

	rows, err := p.api.Dashboard.GetCampaignPerformance(ctx)
	if err != nil {
		p.notify.Error("%v", err)
		return
	}
	if len(rows) > 0 {
		fmt.Fprintln(p.out, "\nCampaign Performance")
		w = p.table()
		fmt.Fprintln(w, "CAMPAIGN\tCLICKS\tCONVERSIONS\tRATE\tSTATUS")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", r.Name, r.Clicks, r.Conversions, r.ConversionRate, badge(r.Status))
		}
		_ = w.Flush()
	}
}
