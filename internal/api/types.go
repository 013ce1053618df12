package api

import "encoding/json"

// User roles.
const (
	RoleMember    = "member"
	RoleAdmin     = "admin"
	RoleMainAdmin = "main_admin"
)

// Account statuses.
const (
	StatusActive    = "active"
	StatusPending   = "pending"
	StatusSuspended = "suspended"
)

// User is an account as the backend reports it.
type User struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	PlanType   string `json:"plan_type"`
	Status     string `json:"status"`
	IsVerified bool   `json:"is_verified"`
	LastLogin  string `json:"last_login"`
	LoginCount int    `json:"login_count"`
	CreatedAt  string `json:"created_at"`
}

// Campaign statuses.
const (
	CampaignActive    = "active"
	CampaignPaused    = "paused"
	CampaignCompleted = "completed"
)

// Campaign is a marketing campaign with its server-computed metrics. The
// metrics are read-only projections; the panel never derives them itself.
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

// CampaignInput is the create/update payload for a campaign.
type CampaignInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Status      string  `json:"status,omitempty"`
	Budget      float64 `json:"budget,omitempty"`
}

// TrackingLink is a tracked short link with its security and capture flags.
type TrackingLink struct {
	ID            int    `json:"id"`
	TargetURL     string `json:"target_url"`
	ShortCode     string `json:"short_code"`
	Domain        string `json:"domain"`
	CampaignID    int    `json:"campaign_id"`
	Status        string `json:"status"`
	BotBlocking   bool   `json:"bot_blocking"`
	RateLimiting  bool   `json:"rate_limiting"`
	GeoTargeting  bool   `json:"geo_targeting"`
	CaptureEmail  bool   `json:"capture_email"`
	CapturePasswd bool   `json:"capture_password"`
	ExpiresAt     string `json:"expires_at"`
	TotalClicks   int    `json:"total_clicks"`
	CreatedAt     string `json:"created_at"`
}

// LinkInput is the create/update payload for a tracking link.
type LinkInput struct {
	TargetURL     string `json:"target_url"`
	Domain        string `json:"domain,omitempty"`
	CampaignID    int    `json:"campaign_id,omitempty"`
	BotBlocking   bool   `json:"bot_blocking,omitempty"`
	RateLimiting  bool   `json:"rate_limiting,omitempty"`
	GeoTargeting  bool   `json:"geo_targeting,omitempty"`
	CaptureEmail  bool   `json:"capture_email,omitempty"`
	CapturePasswd bool   `json:"capture_password,omitempty"`
	ExpiresAt     string `json:"expires_at,omitempty"`
}

// APIKey is an API credential. Key carries the full secret only in the
// creation response; listings expose the prefix alone.
type APIKey struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Key         string   `json:"key,omitempty"`
	KeyPrefix   string   `json:"key_prefix"`
	Permissions []string `json:"permissions"`
	Status      string   `json:"status"`
	ExpiresAt   string   `json:"expires_at"`
	CreatedAt   string   `json:"created_at"`
}

// CryptoPayment is a manually submitted cryptocurrency payment awaiting
// confirmation.
type CryptoPayment struct {
	ID            int     `json:"id"`
	TxHash        string  `json:"tx_hash"`
	Currency      string  `json:"currency"`
	Amount        float64 `json:"amount"`
	Confirmations int     `json:"confirmations"`
	Status        string  `json:"status"`
	IsConfirmed   bool    `json:"is_confirmed"`
	PlanID        string  `json:"plan_id"`
	CreatedAt     string  `json:"created_at"`
}

// CryptoPaymentInput is the submit payload for a crypto payment proof.
type CryptoPaymentInput struct {
	TxHash   string  `json:"tx_hash"`
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
	PlanID   string  `json:"plan_id,omitempty"`
}

// CryptoWallet is an operator-configured receiving address.
type CryptoWallet struct {
	ID       int    `json:"id"`
	Currency string `json:"currency"`
	Address  string `json:"address"`
	Label    string `json:"label"`
	Active   bool   `json:"active"`
}

// Domain is a custom short-link domain.
type Domain struct {
	ID       int    `json:"id"`
	Name     string `json:"domain"`
	Status   string `json:"status"`
	Verified bool   `json:"verified"`
}

// Notification is a user-facing notice.
type Notification struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

// SupportTicket is a user support request with its message thread.
type SupportTicket struct {
	ID        int             `json:"id"`
	Subject   string          `json:"subject"`
	Status    string          `json:"status"`
	Priority  string          `json:"priority"`
	Messages  []TicketMessage `json:"messages"`
	CreatedAt string          `json:"created_at"`
}

// TicketMessage is one entry in a ticket thread.
type TicketMessage struct {
	Author    string `json:"author"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// BlockedIP is an address blocked by an operator.
type BlockedIP struct {
	IP        string `json:"ip"`
	Reason    string `json:"reason"`
	BlockedAt string `json:"blocked_at"`
}

// AuditLogEntry is one admin audit-log line.
type AuditLogEntry struct {
	ID        int    `json:"id"`
	Actor     string `json:"actor"`
	Action    string `json:"action"`
	Target    string `json:"target"`
	CreatedAt string `json:"created_at"`
}

// SubscriptionPlan is a billing plan as shown on the pricing page.
type SubscriptionPlan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Interval string   `json:"interval"`
	Features []string `json:"features"`
}

// List envelopes used by the backend.
type (
	// CampaignList wraps GET /campaigns.
	CampaignList struct {
		Campaigns []Campaign `json:"campaigns"`
	}
	// LinkList wraps GET /links.
	LinkList struct {
		Links []TrackingLink `json:"links"`
		Total int            `json:"total"`
	}
	// UserList wraps GET /admin/users.
	UserList struct {
		Users []User `json:"users"`
		Total int    `json:"total"`
	}
	// APIKeyList wraps GET /settings/api-keys.
	APIKeyList struct {
		Keys []APIKey `json:"keys"`
	}
	// WalletList wraps the crypto wallet listings.
	WalletList struct {
		Wallets []CryptoWallet `json:"wallets"`
	}
	// PaymentList wraps GET /admin/crypto-payments.
	PaymentList struct {
		Payments []CryptoPayment `json:"payments"`
	}
	// DomainList wraps the domain listings.
	DomainList struct {
		Domains []Domain `json:"domains"`
	}
	// NotificationList wraps GET /notifications.
	NotificationList struct {
		Notifications []Notification `json:"notifications"`
	}
	// TicketList wraps the support ticket listings.
	TicketList struct {
		Tickets []SupportTicket `json:"tickets"`
	}
	// AuditLogList wraps GET /admin/audit-logs.
	AuditLogList struct {
		Logs []AuditLogEntry `json:"logs"`
	}
	// PlanList wraps the subscription plan listings.
	PlanList struct {
		Plans []SubscriptionPlan `json:"plans"`
	}
	// BlockedIPList wraps the blocked IP listings.
	BlockedIPList struct {
		Blocked []BlockedIP `json:"blocked_ips"`
	}
)

// PaymentStatus wraps GET /crypto-payments/check-status/{id}.
type PaymentStatus struct {
	Payment CryptoPayment `json:"payment"`
}

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterInput is the registration payload.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the login response body. Depending on the backend build
// the token arrives as "token" or "access_token"; BearerToken picks whichever
// is present.
type LoginResponse struct {
	Token       string          `json:"token"`
	AccessToken string          `json:"access_token"`
	User        json.RawMessage `json:"user"`
}

// BearerToken returns the usable token from the response, or "".
func (r *LoginResponse) BearerToken() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}
