package mockapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := NewStore()
	handlers := NewHandlers(store, zap.NewNop())
	server := httptest.NewServer(NewRouter(handlers, zap.NewNop()))
	t.Cleanup(server.Close)
	return server
}

// doJSON issues a JSON request and decodes the response body into out when
// out is non-nil.
func doJSON(t *testing.T, method, url, token string, body, out any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// login authenticates against the stub and returns the issued token.
func login(t *testing.T, server *httptest.Server, username, password string) string {
	t.Helper()

	var body struct {
		Token string `json:"token"`
	}
	resp := doJSON(t, http.MethodPost, server.URL+"/api/auth/login", "",
		map[string]string{"username": username, "password": password}, &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestLoginIssuesToken(t *testing.T) {
	server := newTestServer(t)

	token := login(t, server, "demo", "anything")
	assert.Len(t, strings.Split(token, "."), 3, "token must have the JWT shape")

	resp := doJSON(t, http.MethodPost, server.URL+"/api/auth/login", "",
		map[string]string{"username": "nobody", "password": "x"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, server.URL+"/api/auth/login", "",
		map[string]string{"username": "demo"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "empty password is rejected")
}

func TestSuspendedAccountCannotLogin(t *testing.T) {
	server := newTestServer(t)
	adminToken := login(t, server, "admin", "secret")

	resp := doJSON(t, http.MethodPatch, server.URL+"/api/admin/users/2/suspend", adminToken,
		map[string]any{"suspend": true, "reason": "abuse"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, server.URL+"/api/auth/login", "",
		map[string]string{"username": "demo", "password": "anything"}, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodGet, server.URL+"/api/user/profile", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "missing token")

	resp = doJSON(t, http.MethodGet, server.URL+"/api/user/profile", "not.a.jwt", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "garbage token")

	token := login(t, server, "demo", "anything")
	var user User
	resp = doJSON(t, http.MethodGet, server.URL+"/api/user/profile", token, nil, &user)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "demo", user.Username)
}

func TestPaymentConfirmationProgression(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server, "demo", "anything")

	var submitted struct {
		Payment Payment `json:"payment"`
	}
	resp := doJSON(t, http.MethodPost, server.URL+"/api/crypto-payments/submit", token,
		map[string]any{"tx_hash": "0xabc123", "currency": "BTC", "amount": 0.01}, &submitted)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "pending", submitted.Payment.Status)

	statusURL := server.URL + "/api/crypto-payments/check-status/" + strconv.Itoa(submitted.Payment.ID)

	for i := 1; i <= confirmTarget; i++ {
		var checked struct {
			Payment Payment `json:"payment"`
		}
		resp = doJSON(t, http.MethodGet, statusURL, token, nil, &checked)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, i, checked.Payment.Confirmations)
		assert.Equal(t, i >= confirmTarget, checked.Payment.IsConfirmed)
	}

	// Once confirmed the count stays put.
	var final struct {
		Payment Payment `json:"payment"`
	}
	doJSON(t, http.MethodGet, statusURL, token, nil, &final)
	assert.Equal(t, confirmTarget, final.Payment.Confirmations)
	assert.True(t, final.Payment.IsConfirmed)
	assert.Equal(t, "confirmed", final.Payment.Status)
}

func TestRegisterCreatesPendingUser(t *testing.T) {
	server := newTestServer(t)

	var user User
	resp := doJSON(t, http.MethodPost, server.URL+"/api/auth/register", "",
		map[string]string{"username": "fresh", "email": "fresh@example.com", "password": "pw"}, &user)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "pending", user.Status)

	resp = doJSON(t, http.MethodPost, server.URL+"/api/auth/register", "",
		map[string]string{"username": "fresh", "password": "pw"}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestPlansListed(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server, "demo", "anything")

	var listed struct {
		Plans []Plan `json:"plans"`
	}
	resp := doJSON(t, http.MethodGet, server.URL+"/api/payments/plans", token, nil, &listed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, listed.Plans)
	assert.Equal(t, "free", listed.Plans[0].ID)
	for _, p := range listed.Plans {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Interval)
	}
}

func TestChangePassword(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server, "demo", "anything")

	resp := doJSON(t, http.MethodPost, server.URL+"/api/user/change-password", token,
		map[string]string{"current_password": "old", "new_password": "newpass"}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, server.URL+"/api/user/change-password", token,
		map[string]string{"current_password": "old"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "missing new password")

	resp = doJSON(t, http.MethodPost, server.URL+"/api/user/change-password", "",
		map[string]string{"current_password": "old", "new_password": "newpass"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "requires a token")
}

func TestAPIKeySecretShownOnce(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server, "demo", "anything")

	var created APIKey
	resp := doJSON(t, http.MethodPost, server.URL+"/api/settings/api-keys", token,
		map[string]string{"name": "ci"}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, strings.HasPrefix(created.Key, "blt_"), "secret %q should carry the blt_ prefix", created.Key)

	var listed struct {
		Keys []APIKey `json:"keys"`
	}
	resp = doJSON(t, http.MethodGet, server.URL+"/api/settings/api-keys", token, nil, &listed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, listed.Keys, 1)
	assert.Empty(t, listed.Keys[0].Key, "the full secret never appears in lists")
	assert.NotEmpty(t, listed.Keys[0].KeyPrefix)
}
