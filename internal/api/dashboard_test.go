package api

import (
	"context"
	"net/http"
	"reflect"
	"testing"
)

func TestAvgClicksPerLink(t *testing.T) {
	tests := []struct {
		name        string
		totalClicks int
		totalLinks  int
		want        int
	}{
		{"no data", 0, 0, 0},
		{"zero links guards the division", 10, 0, 10},
		{"rounds down", 7, 3, 2},
		{"rounds half up", 9, 2, 5},
		{"exact", 100, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AvgClicksPerLink(tt.totalClicks, tt.totalLinks); got != tt.want {
				t.Errorf("AvgClicksPerLink(%d, %d) = %d; want %d", tt.totalClicks, tt.totalLinks, got, tt.want)
			}
		})
	}
}

// dashboardServer answers /analytics/dashboard with the fixed payload and
// records the requested period.
func dashboardServer(t *testing.T, payload string) (*Client, *string) {
	t.Helper()

	var period string
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/analytics/dashboard" {
			t.Errorf("path = %q; want /api/analytics/dashboard", r.URL.Path)
		}
		period = r.URL.Query().Get("period")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	if err := sess.SetToken("x.y.z"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	return client, &period
}

func TestGetMetrics(t *testing.T) {
	client, period := dashboardServer(t, `{
		"totalLinks": 8,
		"totalClicks": 100,
		"realVisitors": 61,
		"topCountries": [{"country":"US"},{"country":"DE"},{"country":"BR"}]
	}`)

	metrics, err := client.Dashboard.GetMetrics(context.Background(), "")
	if err != nil {
		t.Fatalf("GetMetrics() = %v", err)
	}

	if *period != "7d" {
		t.Errorf("period = %q; want default 7d", *period)
	}
	if metrics.AvgClicksPerLink != 13 {
		t.Errorf("AvgClicksPerLink = %d; want 13", metrics.AvgClicksPerLink)
	}
	if metrics.Countries != 3 {
		t.Errorf("Countries = %d; want 3", metrics.Countries)
	}
	// Fields the backend omitted default to zero.
	if metrics.CapturedEmails != 0 || metrics.ConversionRate != 0 || metrics.TotalClicksChange != 0 {
		t.Errorf("omitted fields not zeroed: %+v", metrics)
	}
}

func TestGetPerformanceOverTime(t *testing.T) {
	client, period := dashboardServer(t, `{
		"performanceOverTime": [
			{"date":"2026-08-01","clicks":10,"visitors":7,"emailCaptures":2},
			{"label":"Aug 02","clicks":4,"realVisitors":3,"emails":1}
		]
	}`)

	series, err := client.Dashboard.GetPerformanceOverTime(context.Background(), 0)
	if err != nil {
		t.Fatalf("GetPerformanceOverTime() = %v", err)
	}

	if *period != "30d" {
		t.Errorf("period = %q; want default 30d", *period)
	}
	if want := []string{"2026-08-01", "Aug 02"}; !reflect.DeepEqual(series.Labels, want) {
		t.Errorf("Labels = %v; want %v (label falls back from date)", series.Labels, want)
	}
	if want := []int{7, 3}; !reflect.DeepEqual(series.Visitors, want) {
		t.Errorf("Visitors = %v; want %v (falls back to realVisitors)", series.Visitors, want)
	}
	if want := []int{2, 1}; !reflect.DeepEqual(series.EmailCaptures, want) {
		t.Errorf("EmailCaptures = %v; want %v (falls back to emails)", series.EmailCaptures, want)
	}
}

func TestGetDeviceBreakdown(t *testing.T) {
	client, _ := dashboardServer(t, `{
		"deviceBreakdown": {"desktop": 61.4, "mobile": 30.5, "tablet": 8.1}
	}`)

	breakdown, err := client.Dashboard.GetDeviceBreakdown(context.Background())
	if err != nil {
		t.Fatalf("GetDeviceBreakdown() = %v", err)
	}

	if want := []string{"Desktop", "Mobile", "Tablet"}; !reflect.DeepEqual(breakdown.Labels, want) {
		t.Errorf("Labels = %v; want %v", breakdown.Labels, want)
	}
	if want := []int{61, 31, 8}; !reflect.DeepEqual(breakdown.Data, want) {
		t.Errorf("Data = %v; want %v (rounded per device)", breakdown.Data, want)
	}
}

func TestGetTopCountries(t *testing.T) {
	client, _ := dashboardServer(t, `{
		"topCountries": [
			{"country":"United States","clicks":50,"percentage":41.2},
			{"name":"Germany","clicks":20,"percentage":16.5}
		]
	}`)

	stats, err := client.Dashboard.GetTopCountries(context.Background())
	if err != nil {
		t.Fatalf("GetTopCountries() = %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d; want 2", len(stats))
	}
	if stats[0].Name != "United States" {
		t.Errorf("stats[0].Name = %q; want country field", stats[0].Name)
	}
	if stats[1].Name != "Germany" {
		t.Errorf("stats[1].Name = %q; want fallback to name field", stats[1].Name)
	}
}

func TestGetCampaignPerformance(t *testing.T) {
	client, _ := dashboardServer(t, `{
		"campaignPerformance": [
			{"id":1,"name":"Summer","clicks":40,"emails":12,"conversion":"30%","status":"paused"},
			{"id":2,"name":"Fall","clicks":10,"conversions":3,"conversionRate":"30%"},
			{"id":3,"name":"Bare","clicks":1}
		]
	}`)

	rows, err := client.Dashboard.GetCampaignPerformance(context.Background())
	if err != nil {
		t.Fatalf("GetCampaignPerformance() = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d; want 3", len(rows))
	}

	if rows[0].Conversions != 12 || rows[0].ConversionRate != "30%" || rows[0].Status != "paused" {
		t.Errorf("rows[0] = %+v; want emails/conversion/status used directly", rows[0])
	}
	if rows[1].Conversions != 3 || rows[1].ConversionRate != "30%" {
		t.Errorf("rows[1] = %+v; want conversions and conversionRate fallbacks", rows[1])
	}
	if rows[2].ConversionRate != "0%" || rows[2].Status != CampaignActive {
		t.Errorf("rows[2] = %+v; want 0%% rate and active status defaults", rows[2])
	}
}

func TestGetRecentCaptures(t *testing.T) {
	client, _ := dashboardServer(t, `{
		"recentCaptures": [
			{"email":"a@example.com","campaign":"Summer","time":"2026-08-01T10:00:00Z","country":"US"},
			{"email":"b@example.com","link":"promo-1","timestamp":"2026-08-02T11:00:00Z"}
		]
	}`)

	captures, err := client.Dashboard.GetRecentCaptures(context.Background())
	if err != nil {
		t.Fatalf("GetRecentCaptures() = %v", err)
	}
	if len(captures) != 2 {
		t.Fatalf("len(captures) = %d; want 2", len(captures))
	}

	if captures[0].Link != "Summer" || captures[0].Timestamp != "2026-08-01T10:00:00Z" {
		t.Errorf("captures[0] = %+v; want campaign/time used directly", captures[0])
	}
	if captures[1].Link != "promo-1" || captures[1].Timestamp != "2026-08-02T11:00:00Z" {
		t.Errorf("captures[1] = %+v; want link/timestamp fallbacks", captures[1])
	}
	if captures[1].Country != "Unknown" {
		t.Errorf("captures[1].Country = %q; want Unknown default", captures[1].Country)
	}
}
