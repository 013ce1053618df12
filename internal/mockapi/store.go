// Package mockapi is a development stand-in for the real backend. It serves
// the full endpoint surface the panel uses with canned, in-memory data so
// the panel can be exercised without the production API. It is a fixture:
// no persistence, no real verification.
package mockapi

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Store holds the in-memory state behind the stub endpoints.
type Store struct {
	mu sync.Mutex

	users     map[int]*User
	campaigns map[int]*Campaign
	links     map[int]*Link
	keys      map[int]*APIKey
	wallets   map[int]*Wallet
	payments  map[int]*Payment
	tickets   map[int]*Ticket
	notices   map[int]*Notification
	plans     []*Plan
	blocked   map[string]string // ip -> reason

	nextID int
}

// User is a stub platform account.
type User struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	PlanType   string `json:"plan_type"`
	Status     string `json:"status"`
	IsVerified bool   `json:"is_verified"`
	LastLogin  string `json:"last_login"`
	CreatedAt  string `json:"created_at"`
}

// Campaign is a stub campaign with fake metrics.
type Campaign struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Status         string  `json:"status"`
	Budget         float64 `json:"budget"`
	TotalClicks    int     `json:"total_clicks"`
	UniqueVisitors int     `json:"unique_visitors"`
	ConversionRate float64 `json:"conversion_rate"`
	CreatedAt      string  `json:"created_at"`
}

// Link is a stub tracking link.
type Link struct {
	ID           int    `json:"id"`
	TargetURL    string `json:"target_url"`
	ShortCode    string `json:"short_code"`
	Domain       string `json:"domain"`
	Status       string `json:"status"`
	BotBlocking  bool   `json:"bot_blocking"`
	RateLimiting bool   `json:"rate_limiting"`
	GeoTargeting bool   `json:"geo_targeting"`
	CaptureEmail bool   `json:"capture_email"`
	TotalClicks  int    `json:"total_clicks"`
	CreatedAt    string `json:"created_at"`
}

// APIKey is a stub credential. The full secret is returned once.
type APIKey struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Key       string `json:"key,omitempty"`
	KeyPrefix string `json:"key_prefix"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// Wallet is a stub receiving address.
type Wallet struct {
	ID       int    `json:"id"`
	Currency string `json:"currency"`
	Address  string `json:"address"`
	Label    string `json:"label"`
	Active   bool   `json:"active"`
}

// Payment is a stub crypto payment. Confirmations grow on every status
// check, confirming after confirmTarget checks, so the panel's poll loop can
// be watched end to end.
type Payment struct {
	ID            int     `json:"id"`
	TxHash        string  `json:"tx_hash"`
	Currency      string  `json:"currency"`
	Amount        float64 `json:"amount"`
	Confirmations int     `json:"confirmations"`
	Status        string  `json:"status"`
	IsConfirmed   bool    `json:"is_confirmed"`
	CreatedAt     string  `json:"created_at"`
}

// Ticket is a stub support ticket.
type Ticket struct {
	ID        int             `json:"id"`
	Subject   string          `json:"subject"`
	Status    string          `json:"status"`
	Priority  string          `json:"priority"`
	Messages  []TicketMessage `json:"messages"`
	CreatedAt string          `json:"created_at"`
}

// TicketMessage is one thread entry.
type TicketMessage struct {
	Author    string `json:"author"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// Plan is a stub subscription plan.
type Plan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Interval string   `json:"interval"`
	Features []string `json:"features"`
}

// Notification is a stub notice.
type Notification struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

const confirmTarget = 3

const seedDate = "2025-01-15T10:00:00Z"

// NewStore returns a Store seeded with demo data.
func NewStore() *Store {
	s := &Store{
		users:     make(map[int]*User),
		campaigns: make(map[int]*Campaign),
		links:     make(map[int]*Link),
		keys:      make(map[int]*APIKey),
		wallets:   make(map[int]*Wallet),
		payments:  make(map[int]*Payment),
		tickets:   make(map[int]*Ticket),
		notices:   make(map[int]*Notification),
		blocked:   make(map[string]string),
		nextID:    100,
	}
	s.seed()
	return s
}

func (s *Store) seed() {
	s.users[1] = &User{ID: 1, Username: "admin", Email: "admin@example.com", Role: "main_admin",
		PlanType: "enterprise", Status: "active", IsVerified: true, LastLogin: seedDate, CreatedAt: seedDate}
	s.users[2] = &User{ID: 2, Username: "demo", Email: "demo@example.com", Role: "member",
		PlanType: "free", Status: "active", IsVerified: true, LastLogin: seedDate, CreatedAt: seedDate}
	s.users[3] = &User{ID: 3, Username: "newcomer", Email: "new@example.com", Role: "member",
		PlanType: "free", Status: "pending", CreatedAt: seedDate}

	s.campaigns[10] = &Campaign{ID: 10, Name: "Summer Sale", Status: "active", Budget: 500,
		TotalClicks: 1240, UniqueVisitors: 890, ConversionRate: 4.2, CreatedAt: seedDate}
	s.campaigns[11] = &Campaign{ID: 11, Name: "Newsletter", Status: "paused", Budget: 120,
		TotalClicks: 310, UniqueVisitors: 270, ConversionRate: 2.1, CreatedAt: seedDate}

	s.links[20] = &Link{ID: 20, TargetURL: "https://example.com/landing", ShortCode: "sale24",
		Domain: "lnk.example", Status: "active", BotBlocking: true, TotalClicks: 412, CreatedAt: seedDate}

	s.wallets[30] = &Wallet{ID: 30, Currency: "BTC", Address: "bc1qexampleaddressxxxxxxxx", Label: "Main BTC", Active: true}
	s.wallets[31] = &Wallet{ID: 31, Currency: "ETH", Address: "0xExampleEthereumAddress00", Label: "Main ETH", Active: true}

	s.notices[40] = &Notification{ID: 40, Title: "Welcome", Message: "Your account is ready.", CreatedAt: seedDate}

	s.plans = []*Plan{
		{ID: "free", Name: "Free", Price: 0, Interval: "month",
			Features: []string{"5 tracking links", "basic analytics"}},
		{ID: "pro", Name: "Pro", Price: 29, Interval: "month",
			Features: []string{"unlimited links", "bot blocking", "email capture"}},
		{ID: "enterprise", Name: "Enterprise", Price: 99, Interval: "month",
			Features: []string{"everything in Pro", "custom domains", "priority support"}},
	}
}

func (s *Store) id() int {
	s.nextID++
	return s.nextID
}

// newKeySecret builds an API key secret with a recognizable prefix.
func newKeySecret() (secret, prefix string) {
	raw := "blt_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	return raw, raw[:12]
}
