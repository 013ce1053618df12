package panel

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"github.com/brainlink/trackpanel/internal/api"
	"github.com/brainlink/trackpanel/internal/session"
)

// newTestPanel wires a Panel to a stub backend, an authenticated session, and
// scripted terminal input.
func newTestPanel(t *testing.T, handler http.Handler, input string) (*Panel, *bytes.Buffer) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sess := session.New(filepath.Join(t.TempDir(), "session.json"))
	if err := sess.SetToken("x.y.z"); err != nil {
		t.Fatalf("set token: %v", err)
	}

	out := &bytes.Buffer{}
	client := api.New(server.URL+"/api", sess, zap.NewNop())
	return New(client, strings.NewReader(input), out, zap.NewNop()), out
}

func TestCreateCampaignValidation(t *testing.T) {
	tests := []struct {
		name  string
		input api.CampaignInput
	}{
		{"empty name", api.CampaignInput{}},
		{"whitespace name", api.CampaignInput{Name: "   "}},
		{"negative budget", api.CampaignInput{Name: "Promo", Budget: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits atomic.Int32
			p, out := newTestPanel(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
			}), "")

			p.CreateCampaign(context.Background(), tt.input)

			if got := hits.Load(); got != 0 {
				t.Errorf("server hits = %d; want 0, invalid input must not reach the network", got)
			}
			if !strings.Contains(out.String(), "✗") {
				t.Errorf("output %q missing error toast", out.String())
			}
		})
	}
}

func TestCreateCampaignRefetchesList(t *testing.T) {
	var created, listed atomic.Bool

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/campaigns", func(w http.ResponseWriter, r *http.Request) {
		created.Store(true)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":42,"name":"Promo","status":"active"}`))
	})
	mux.HandleFunc("GET /api/campaigns", func(w http.ResponseWriter, r *http.Request) {
		listed.Store(true)
		_, _ = w.Write([]byte(`{"campaigns":[{"id":42,"name":"Promo","status":"active"}]}`))
	})

	p, out := newTestPanel(t, mux, "")
	p.CreateCampaign(context.Background(), api.CampaignInput{Name: "Promo"})

	if !created.Load() {
		t.Error("create request never sent")
	}
	if !listed.Load() {
		t.Error("list not re-fetched after create")
	}
	if !strings.Contains(out.String(), "✓") {
		t.Errorf("output %q missing success toast", out.String())
	}
}

func TestShowCampaignsRendersRows(t *testing.T) {
	p, out := newTestPanel(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"campaigns":[{"id":1,"name":"Sale","status":"active","total_clicks":5}]}`))
	}), "")

	p.ShowCampaigns(context.Background())

	rendered := out.String()
	var row string
	for _, line := range strings.Split(rendered, "\n") {
		if strings.Contains(line, "Sale") {
			row = line
			break
		}
	}
	if row == "" {
		t.Fatalf("output %q has no row for the campaign", rendered)
	}
	if !strings.Contains(row, "5") {
		t.Errorf("row %q missing the clicks value", row)
	}
	if !strings.Contains(row, "[ACTIVE]") {
		t.Errorf("row %q missing the status badge", row)
	}
}

func TestDeleteCampaignDeclined(t *testing.T) {
	var hits atomic.Int32
	p, out := newTestPanel(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}), "n\n")

	p.DeleteCampaign(context.Background(), 7)

	if got := hits.Load(); got != 0 {
		t.Errorf("server hits = %d; want 0 when the delete is declined", got)
	}
	if !strings.Contains(out.String(), "delete cancelled") {
		t.Errorf("output %q missing cancel notice", out.String())
	}
}

func TestDeleteCampaignConfirmed(t *testing.T) {
	var deleted, listed atomic.Bool

	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/campaigns/7", func(w http.ResponseWriter, r *http.Request) {
		deleted.Store(true)
		_, _ = w.Write([]byte(`{"status":"deleted"}`))
	})
	mux.HandleFunc("GET /api/campaigns", func(w http.ResponseWriter, r *http.Request) {
		listed.Store(true)
		_, _ = w.Write([]byte(`{"campaigns":[]}`))
	})

	p, out := newTestPanel(t, mux, "y\n")
	p.DeleteCampaign(context.Background(), 7)

	if !deleted.Load() {
		t.Error("delete request never sent after confirmation")
	}
	if !listed.Load() {
		t.Error("list not re-fetched after delete")
	}
	if !strings.Contains(out.String(), "campaign 7 deleted") {
		t.Errorf("output %q missing success toast", out.String())
	}
}

func TestShowCampaignsRecoversFromErrors(t *testing.T) {
	p, out := newTestPanel(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}), "")

	// Must not panic; the failure surfaces as a toast.
	p.ShowCampaigns(context.Background())

	if !strings.Contains(out.String(), "✗") {
		t.Errorf("output %q missing error toast", out.String())
	}
}
