// Package session persists the authenticated session (bearer token and the
// cached user object) in a local JSON file, the panel's analog of the
// browser's localStorage/sessionStorage.
package session

import (
	"encoding/json"
	"os"
	"strings"
	"sync"
)

// Store holds the session values and the file they are persisted to.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// Storage keys, matching the browser storage keys of the original dashboard.
const (
	keyToken = "token"
	keyUser  = "user"
)

// New returns a Store backed by the file at path. The file is created on the
// first Save.
func New(path string) *Store {
	return &Store{
		path: path,
		data: make(map[string]json.RawMessage),
	}
}

// Load reads the session file. A missing file is not an error: the store is
// simply empty.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.data = make(map[string]json.RawMessage)
			return nil
		}
		return err
	}

	data := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}
	s.data = data
	return nil
}

// Save writes the session file with owner-only permissions.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

func (s *Store) save() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// Token returns the stored bearer token, or "" when none is stored.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.data[keyToken]
	if !ok {
		return ""
	}
	var token string
	if err := json.Unmarshal(raw, &token); err != nil {
		return ""
	}
	return token
}

// SetToken stores the bearer token and persists the session.
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(token)
	if err != nil {
		return err
	}
	s.data[keyToken] = raw
	return s.save()
}

// User returns the cached user object, or nil when none is stored.
func (s *Store) User() json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[keyUser]
}

// SetUser caches the user object returned by the backend and persists the
// session.
func (s *Store) SetUser(user json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[keyUser] = user
	return s.save()
}

// Clear removes both the token and the user keys and persists the now-empty
// session. Safe to call repeatedly.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, keyToken)
	delete(s.data, keyUser)
	return s.save()
}

// TokenLooksValid reports whether token has the three-part JWT shape. A token
// failing this check is treated the same as a missing one, so the request is
// rejected before any network I/O. Only the shape is checked; signature and
// claims are the backend's business.
func TokenLooksValid(token string) bool {
	if token == "" {
		return false
	}
	return len(strings.Split(token, ".")) == 3
}
