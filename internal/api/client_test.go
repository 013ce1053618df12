package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"github.com/brainlink/trackpanel/internal/session"
)

// newTestClient builds a Client against the given handler with an empty
// session store backed by a temp file.
func newTestClient(t *testing.T, handler http.Handler, opts ...Option) (*Client, *session.Store) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sess := session.New(filepath.Join(t.TempDir(), "session.json"))
	if err := sess.Load(); err != nil {
		t.Fatalf("load session: %v", err)
	}
	return New(server.URL+"/api", sess, zap.NewNop(), opts...), sess
}

func TestDoRejectsWithoutToken(t *testing.T) {
	var hits atomic.Int32
	var expiries atomic.Int32

	client, _ := newTestClient(t,
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		}),
		WithAuthExpired(func() { expiries.Add(1) }),
	)

	for i := 0; i < 3; i++ {
		_, err := client.Auth.CurrentUser(context.Background())
		if !errors.Is(err, ErrAuthRequired) {
			t.Fatalf("CurrentUser() error = %v; want ErrAuthRequired", err)
		}
	}

	if got := hits.Load(); got != 0 {
		t.Errorf("server hits = %d; want 0, the reject must happen before any I/O", got)
	}
	if got := expiries.Load(); got != 1 {
		t.Errorf("expiry callback fired %d times; want exactly 1", got)
	}
}

func TestDoAttachesBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string

	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"username":"demo"}`))
	}))

	if err := sess.SetToken("x.y.z"); err != nil {
		t.Fatalf("set token: %v", err)
	}

	user, err := client.Auth.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("CurrentUser() = %v", err)
	}
	if user.Username != "demo" {
		t.Errorf("Username = %q; want %q", user.Username, "demo")
	}
	if gotAuth != "Bearer x.y.z" {
		t.Errorf("Authorization = %q; want %q", gotAuth, "Bearer x.y.z")
	}
	if gotRequestID == "" {
		t.Error("X-Request-Id header is empty")
	}
}

func TestUnauthorizedClearsSession(t *testing.T) {
	var expiries atomic.Int32

	client, sess := newTestClient(t,
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}),
		WithAuthExpired(func() { expiries.Add(1) }),
	)

	if err := sess.SetToken("stale.but.shaped"); err != nil {
		t.Fatalf("set token: %v", err)
	}

	_, err := client.Auth.CurrentUser(context.Background())
	if !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("CurrentUser() error = %v; want ErrAuthRequired", err)
	}
	if got := sess.Token(); got != "" {
		t.Errorf("token after 401 = %q; want cleared", got)
	}

	// The next call fails pre-flight and must not fire the callback again.
	_, err = client.Auth.CurrentUser(context.Background())
	if !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("second CurrentUser() error = %v; want ErrAuthRequired", err)
	}
	if got := expiries.Load(); got != 1 {
		t.Errorf("expiry callback fired %d times; want exactly 1", got)
	}
}

func TestStatusTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"forbidden", http.StatusForbidden, ErrPermission},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"internal error", http.StatusInternalServerError, ErrServer},
		{"bad gateway", http.StatusBadGateway, ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			if err := sess.SetToken("x.y.z"); err != nil {
				t.Fatalf("set token: %v", err)
			}

			_, err := client.Auth.CurrentUser(context.Background())
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v; want %v", err, tt.want)
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error %v is not an *APIError", err)
			}
			if apiErr.Status != tt.status {
				t.Errorf("Status = %d; want %d", apiErr.Status, tt.status)
			}

			if got := sess.Token(); got != "x.y.z" {
				t.Errorf("token after %d = %q; want untouched", tt.status, got)
			}
		})
	}
}

func TestBadRequestMessage(t *testing.T) {
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"name is required"}`))
	}))
	if err := sess.SetToken("x.y.z"); err != nil {
		t.Fatalf("set token: %v", err)
	}

	_, err := client.Campaigns.Create(context.Background(), CampaignInput{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v; want *APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d; want 400", apiErr.Status)
	}
	if apiErr.Message != "name is required" {
		t.Errorf("Message = %q; want backend message passed through", apiErr.Message)
	}
}

func TestNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	sess := session.New(filepath.Join(t.TempDir(), "session.json"))
	if err := sess.SetToken("x.y.z"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	client := New(url+"/api", sess, zap.NewNop())

	_, err := client.Auth.CurrentUser(context.Background())
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("error = %v; want ErrNetwork", err)
	}
	if got := sess.Token(); got != "x.y.z" {
		t.Errorf("token after network failure = %q; want untouched", got)
	}
}

func TestLoginStoresSession(t *testing.T) {
	var expiries atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"aaa.bbb.ccc","user":{"id":1,"username":"demo","role":"member"}}`))
	})
	mux.HandleFunc("GET /api/user/profile", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer aaa.bbb.ccc" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"username":"demo"}`))
	})

	client, sess := newTestClient(t, mux, WithAuthExpired(func() { expiries.Add(1) }))

	// Exhaust the expiry callback first so login has something to re-arm.
	if _, err := client.Auth.CurrentUser(context.Background()); !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("pre-login CurrentUser() error = %v; want ErrAuthRequired", err)
	}

	resp, err := client.Auth.Login(context.Background(), Credentials{Username: "demo", Password: "hunter2"})
	if err != nil {
		t.Fatalf("Login() = %v", err)
	}
	if got := resp.BearerToken(); got != "aaa.bbb.ccc" {
		t.Errorf("BearerToken() = %q; want access_token fallback", got)
	}
	if got := sess.Token(); got != "aaa.bbb.ccc" {
		t.Errorf("stored token = %q; want %q", got, "aaa.bbb.ccc")
	}
	if sess.User() == nil {
		t.Error("user not cached in session after login")
	}

	// Subsequent authenticated calls reuse the stored token.
	if _, err := client.Auth.CurrentUser(context.Background()); err != nil {
		t.Errorf("CurrentUser() after login = %v", err)
	}

	// Login re-armed the callback, so a fresh expiry fires it again.
	_ = sess.Clear()
	_, _ = client.Auth.CurrentUser(context.Background())
	if got := expiries.Load(); got != 2 {
		t.Errorf("expiry callback fired %d times; want 2 (re-armed by login)", got)
	}
}

func TestHealthCheck(t *testing.T) {
	healthy, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/health" {
			t.Errorf("path = %q; want /api/health", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	if !healthy.HealthCheck(context.Background()) {
		t.Error("HealthCheck() = false; want true")
	}

	broken, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	if broken.HealthCheck(context.Background()) {
		t.Error("HealthCheck() = true; want false")
	}
}
