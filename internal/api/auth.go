package api

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// AuthAPI wraps the /auth endpoints. Login and Register are the only calls
// that never require a stored token.
type AuthAPI struct {
	c *Client
}

// Login authenticates with the backend and stores the returned bearer token
// (whichever of "token"/"access_token" is present) and user object in the
// session. A successful login re-arms the expiry callback.
func (a *AuthAPI) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	var resp LoginResponse
	if err := a.c.doPublic(ctx, http.MethodPost, "/auth/login", nil, creds, &resp); err != nil {
		return nil, err
	}

	token := resp.BearerToken()
	if token == "" {
		a.c.log.Warn("no token in login response")
		return &resp, nil
	}
	if err := a.c.session.SetToken(token); err != nil {
		return nil, err
	}
	if resp.User != nil {
		if err := a.c.session.SetUser(resp.User); err != nil {
			return nil, err
		}
	}
	a.c.resetExpiry()
	a.c.log.Info("login succeeded", zap.String("username", creds.Username))
	return &resp, nil
}

// Register creates a new account. The account typically lands in pending
// state until an admin approves it.
func (a *AuthAPI) Register(ctx context.Context, input RegisterInput) error {
	return a.c.doPublic(ctx, http.MethodPost, "/auth/register", nil, input, nil)
}

// Logout clears the stored session first, then notifies the backend. The
// local session is gone even if the request fails.
func (a *AuthAPI) Logout(ctx context.Context) error {
	token := a.c.session.Token()
	if err := a.c.session.Clear(); err != nil {
		return err
	}
	if token == "" {
		return nil
	}
	return a.c.send(ctx, http.MethodPost, "/auth/logout", nil, nil, nil, token)
}

// CurrentUser fetches the profile of the authenticated user.
func (a *AuthAPI) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := a.c.do(ctx, http.MethodGet, "/user/profile", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
