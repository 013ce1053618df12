package api

import (
	"context"
	"math"
	"net/http"
	"net/url"
	"strconv"
)

// DashboardAPI wraps /analytics/dashboard and reshapes the raw payload into
// what the dashboard view renders. This is the only place the client computes
// anything; the defaulting rules are centralized here so they stay testable.
type DashboardAPI struct {
	c *Client
}

// Metrics is the reshaped dashboard summary. Every numeric field defaults to
// zero when the backend omits it.
type Metrics struct {
	TotalLinks     int     `json:"totalLinks"`
	TotalClicks    int     `json:"totalClicks"`
	RealVisitors   int     `json:"realVisitors"`
	CapturedEmails int     `json:"capturedEmails"`
	ActiveLinks    int     `json:"activeLinks"`
	ConversionRate float64 `json:"conversionRate"`
	// AvgClicksPerLink is derived client-side:
	// round(totalClicks / max(totalLinks, 1)).
	AvgClicksPerLink int `json:"avgClicksPerLink"`
	Countries        int `json:"countries"`

	TotalLinksChange     float64 `json:"totalLinksChange"`
	TotalClicksChange    float64 `json:"totalClicksChange"`
	RealVisitorsChange   float64 `json:"realVisitorsChange"`
	CapturedEmailsChange float64 `json:"capturedEmailsChange"`
	ActiveLinksChange    float64 `json:"activeLinksChange"`
	ConversionRateChange float64 `json:"conversionRateChange"`
}

// PerformancePoint is one day of the performance-over-time series.
type PerformancePoint struct {
	Date          string `json:"date"`
	Label         string `json:"label"`
	Clicks        int    `json:"clicks"`
	Visitors      int    `json:"visitors"`
	RealVisitors  int    `json:"realVisitors"`
	EmailCaptures int    `json:"emailCaptures"`
	Emails        int    `json:"emails"`
}

// PerformanceSeries is the reshaped performance-over-time chart data.
type PerformanceSeries struct {
	Labels        []string
	Clicks        []int
	Visitors      []int
	EmailCaptures []int
}

// DeviceBreakdown is the reshaped device chart data, rounded and ordered
// Desktop, Mobile, Tablet.
type DeviceBreakdown struct {
	Labels []string
	Data   []int
}

// CountryStat is one row of the top-countries table.
type CountryStat struct {
	Name       string  `json:"name"`
	Flag       string  `json:"flag"`
	Clicks     int     `json:"clicks"`
	Emails     int     `json:"emails"`
	Percentage float64 `json:"percentage"`
}

// CampaignPerformance is one row of the campaign performance table.
type CampaignPerformance struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Clicks         int    `json:"clicks"`
	Conversions    int    `json:"conversions"`
	ConversionRate string `json:"conversionRate"`
	Status         string `json:"status"`
}

// Capture is one recently captured email.
type Capture struct {
	Email     string `json:"email"`
	Link      string `json:"link"`
	Timestamp string `json:"timestamp"`
	Country   string `json:"country"`
}

// dashboardRaw mirrors the backend payload before reshaping.
type dashboardRaw struct {
	TotalLinks     int     `json:"totalLinks"`
	TotalClicks    int     `json:"totalClicks"`
	RealVisitors   int     `json:"realVisitors"`
	CapturedEmails int     `json:"capturedEmails"`
	ActiveLinks    int     `json:"activeLinks"`
	ConversionRate float64 `json:"conversionRate"`

	TotalLinksChange     float64 `json:"totalLinksChange"`
	TotalClicksChange    float64 `json:"totalClicksChange"`
	RealVisitorsChange   float64 `json:"realVisitorsChange"`
	CapturedEmailsChange float64 `json:"capturedEmailsChange"`
	ActiveLinksChange    float64 `json:"activeLinksChange"`
	ConversionRateChange float64 `json:"conversionRateChange"`

	TopCountries []struct {
		Country    string  `json:"country"`
		Name       string  `json:"name"`
		Flag       string  `json:"flag"`
		Clicks     int     `json:"clicks"`
		Emails     int     `json:"emails"`
		Percentage float64 `json:"percentage"`
	} `json:"topCountries"`

	PerformanceOverTime []PerformancePoint `json:"performanceOverTime"`

	DeviceBreakdown struct {
		Desktop float64 `json:"desktop"`
		Mobile  float64 `json:"mobile"`
		Tablet  float64 `json:"tablet"`
	} `json:"deviceBreakdown"`

	CampaignPerformance []struct {
		ID             int    `json:"id"`
		Name           string `json:"name"`
		Clicks         int    `json:"clicks"`
		Emails         int    `json:"emails"`
		Conversions    int    `json:"conversions"`
		Conversion     string `json:"conversion"`
		ConversionRate string `json:"conversionRate"`
		Status         string `json:"status"`
	} `json:"campaignPerformance"`

	RecentCaptures []struct {
		Email     string `json:"email"`
		Campaign  string `json:"campaign"`
		Link      string `json:"link"`
		Time      string `json:"time"`
		Timestamp string `json:"timestamp"`
		Country   string `json:"country"`
	} `json:"recentCaptures"`
}

func (d *DashboardAPI) fetch(ctx context.Context, period string) (*dashboardRaw, error) {
	q := url.Values{"period": {period}}
	var raw dashboardRaw
	if err := d.c.do(ctx, http.MethodGet, "/analytics/dashboard", q, nil, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

// AvgClicksPerLink derives the average clicks metric, guarding the
// divide-by-zero by dividing by 1 when there are no links.
func AvgClicksPerLink(totalClicks, totalLinks int) int {
	if totalLinks < 1 {
		totalLinks = 1
	}
	return int(math.Round(float64(totalClicks) / float64(totalLinks)))
}

// GetMetrics fetches the dashboard summary for the period (e.g. "7d") and
// applies the reshaping rules: zero defaults and the derived average.
func (d *DashboardAPI) GetMetrics(ctx context.Context, period string) (*Metrics, error) {
	if period == "" {
		period = "7d"
	}
	raw, err := d.fetch(ctx, period)
	if err != nil {
		return nil, err
	}
	return &Metrics{
		TotalLinks:           raw.TotalLinks,
		TotalClicks:          raw.TotalClicks,
		RealVisitors:         raw.RealVisitors,
		CapturedEmails:       raw.CapturedEmails,
		ActiveLinks:          raw.ActiveLinks,
		ConversionRate:       raw.ConversionRate,
		AvgClicksPerLink:     AvgClicksPerLink(raw.TotalClicks, raw.TotalLinks),
		Countries:            len(raw.TopCountries),
		TotalLinksChange:     raw.TotalLinksChange,
		TotalClicksChange:    raw.TotalClicksChange,
		RealVisitorsChange:   raw.RealVisitorsChange,
		CapturedEmailsChange: raw.CapturedEmailsChange,
		ActiveLinksChange:    raw.ActiveLinksChange,
		ConversionRateChange: raw.ConversionRateChange,
	}, nil
}

// GetPerformanceOverTime fetches the last days of chart data. Labels fall
// back from date to label, visitors from visitors to realVisitors, email
// captures from emailCaptures to emails.
func (d *DashboardAPI) GetPerformanceOverTime(ctx context.Context, days int) (*PerformanceSeries, error) {
	if days <= 0 {
		days = 30
	}
	raw, err := d.fetch(ctx, strconv.Itoa(days)+"d")
	if err != nil {
		return nil, err
	}

	series := &PerformanceSeries{}
	for _, p := range raw.PerformanceOverTime {
		label := p.Date
		if label == "" {
			label = p.Label
		}
		visitors := p.Visitors
		if visitors == 0 {
			visitors = p.RealVisitors
		}
		captures := p.EmailCaptures
		if captures == 0 {
			captures = p.Emails
		}
		series.Labels = append(series.Labels, label)
		series.Clicks = append(series.Clicks, p.Clicks)
		series.Visitors = append(series.Visitors, visitors)
		series.EmailCaptures = append(series.EmailCaptures, captures)
	}
	return series, nil
}

// GetDeviceBreakdown fetches the 30d device split, rounded per device.
func (d *DashboardAPI) GetDeviceBreakdown(ctx context.Context) (*DeviceBreakdown, error) {
	raw, err := d.fetch(ctx, "30d")
	if err != nil {
		return nil, err
	}
	return &DeviceBreakdown{
		Labels: []string{"Desktop", "Mobile", "Tablet"},
		Data: []int{
			int(math.Round(raw.DeviceBreakdown.Desktop)),
			int(math.Round(raw.DeviceBreakdown.Mobile)),
			int(math.Round(raw.DeviceBreakdown.Tablet)),
		},
	}, nil
}

// GetTopCountries fetches the 30d country table. The name falls back from
// country to name.
func (d *DashboardAPI) GetTopCountries(ctx context.Context) ([]CountryStat, error) {
	raw, err := d.fetch(ctx, "30d")
	if err != nil {
		return nil, err
	}
	stats := make([]CountryStat, 0, len(raw.TopCountries))
	for _, c := range raw.TopCountries {
		name := c.Country
		if name == "" {
			name = c.Name
		}
		stats = append(stats, CountryStat{
			Name:       name,
			Flag:       c.Flag,
			Clicks:     c.Clicks,
			Emails:     c.Emails,
			Percentage: c.Percentage,
		})
	}
	return stats, nil
}

// GetCampaignPerformance fetches the 30d campaign table. Conversions fall
// back from emails to conversions, the rate from conversion to
// conversionRate to "0%", the status to "active".
func (d *DashboardAPI) GetCampaignPerformance(ctx context.Context) ([]CampaignPerformance, error) {
	raw, err := d.fetch(ctx, "30d")
	if err != nil {
		return nil, err
	}
	rows := make([]CampaignPerformance, 0, len(raw.CampaignPerformance))
	for _, c := range raw.CampaignPerformance {
		conversions := c.Emails
		if conversions == 0 {
			conversions = c.Conversions
		}
		rate := c.Conversion
		if rate == "" {
			rate = c.ConversionRate
		}
		if rate == "" {
			rate = "0%"
		}
		status := c.Status
		if status == "" {
			status = CampaignActive
		}
		rows = append(rows, CampaignPerformance{
			ID:             c.ID,
			Name:           c.Name,
			Clicks:         c.Clicks,
			Conversions:    conversions,
			ConversionRate: rate,
			Status:         status,
		})
	}
	return rows, nil
}

// GetRecentCaptures fetches the 30d capture feed. The link falls back from
// campaign to link, the timestamp from time to timestamp, the country to
// "Unknown".
func (d *DashboardAPI) GetRecentCaptures(ctx context.Context) ([]Capture, error) {
	raw, err := d.fetch(ctx, "30d")
	if err != nil {
		return nil, err
	}
	captures := make([]Capture, 0, len(raw.RecentCaptures))
	for _, c := range raw.RecentCaptures {
		link := c.Campaign
		if link == "" {
			link = c.Link
		}
		ts := c.Time
		if ts == "" {
			ts = c.Timestamp
		}
		country := c.Country
		if country == "" {
			country = "Unknown"
		}
		captures = append(captures, Capture{
			Email:     c.Email,
			Link:      link,
			Timestamp: ts,
			Country:   country,
		})
	}
	return captures, nil
}
