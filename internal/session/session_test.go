package session

import (
	"encoding/json"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "session.json"))
	if err := s.Load(); err != nil {
		t.Fatalf("Load() = %v; want nil for a missing file", err)
	}
	if got := s.Token(); got != "" {
		t.Errorf("Token() = %q; want empty", got)
	}
	if got := s.User(); got != nil {
		t.Errorf("User() = %s; want nil", got)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s := New(path)
	if err := s.SetToken("aaa.bbb.ccc"); err != nil {
		t.Fatalf("SetToken() = %v", err)
	}
	if err := s.SetUser(json.RawMessage(`{"id":1,"username":"demo"}`)); err != nil {
		t.Fatalf("SetUser() = %v", err)
	}

	reloaded := New(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if got := reloaded.Token(); got != "aaa.bbb.ccc" {
		t.Errorf("Token() = %q; want %q", got, "aaa.bbb.ccc")
	}
	if got := reloaded.User(); got == nil {
		t.Error("User() = nil; want cached user")
	}
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s := New(path)
	if err := s.SetToken("aaa.bbb.ccc"); err != nil {
		t.Fatalf("SetToken() = %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() = %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("second Clear() = %v; want repeat clears to be safe", err)
	}

	reloaded := New(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if got := reloaded.Token(); got != "" {
		t.Errorf("Token() after Clear = %q; want empty", got)
	}
}

func TestTokenLooksValid(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"empty", "", false},
		{"opaque", "abcdef", false},
		{"two parts", "aaa.bbb", false},
		{"three parts", "x.y.z", true},
		{"four parts", "a.b.c.d", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TokenLooksValid(tt.token); got != tt.want {
				t.Errorf("TokenLooksValid(%q) = %v; want %v", tt.token, got, tt.want)
			}
		})
	}
}
