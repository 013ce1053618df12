package mockapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handlers serves the stub endpoints from the in-memory store.
type Handlers struct {
	store *Store
	log   *zap.Logger
}

// NewHandlers builds the handler set.
func NewHandlers(store *Store, log *zap.Logger) *Handlers {
	return &Handlers{store: store, log: log}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func idParam(r *http.Request) int {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	return id
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Login accepts any known username with a non-empty password and returns a
// signed dev token plus the user object.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Username == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if creds.Password == "" {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	h.store.mu.Lock()
	var user *User
	for _, u := range h.store.users {
		if u.Username == creds.Username {
			user = u
			break
		}
	}
	if user != nil {
		user.LastLogin = now()
	}
	h.store.mu.Unlock()

	if user == nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if user.Status == "suspended" {
		writeError(w, http.StatusForbidden, "account suspended")
		return
	}

	token, err := IssueToken(user.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	h.log.Info("login", zap.String("username", user.Username))
	writeJSON(w, http.StatusOK, map[string]any{"token": token, "user": user})
}

// Register creates a pending account.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Username == "" || input.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	for _, u := range h.store.users {
		if u.Username == input.Username {
			writeError(w, http.StatusConflict, "user already exists")
			return
		}
	}
	user := &User{
		ID: h.store.id(), Username: input.Username, Email: input.Email,
		Role: "member", PlanType: "free", Status: "pending", CreatedAt: now(),
	}
	h.store.users[user.ID] = user
	writeJSON(w, http.StatusCreated, user)
}

// Logout acknowledges; the stub keeps no server-side session.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Profile returns the authenticated user.
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	username := UserFromContext(r.Context())

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	for _, u := range h.store.users {
		if u.Username == username {
			writeJSON(w, http.StatusOK, u)
			return
		}
	}
	writeError(w, http.StatusNotFound, "user not found")
}

// Dashboard returns a canned analytics payload shaped like the real one.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	totalLinks := len(h.store.links)
	totalClicks := 0
	for _, l := range h.store.links {
		totalClicks += l.TotalClicks
	}
	h.store.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"totalLinks":     totalLinks,
		"totalClicks":    totalClicks,
		"realVisitors":   318,
		"capturedEmails": 57,
		"activeLinks":    totalLinks,
		"conversionRate": 3.8,
		"topCountries": []map[string]any{
			{"country": "United States", "flag": "🇺🇸", "clicks": 210, "emails": 31, "percentage": 51.0},
			{"country": "Germany", "flag": "🇩🇪", "clicks": 98, "emails": 12, "percentage": 23.8},
		},
		"deviceBreakdown": map[string]float64{"desktop": 61.4, "mobile": 33.1, "tablet": 5.5},
		"performanceOverTime": []map[string]any{
			{"date": "2025-01-13", "clicks": 120, "visitors": 90, "emailCaptures": 11},
			{"date": "2025-01-14", "clicks": 150, "visitors": 110, "emailCaptures": 19},
		},
		"campaignPerformance": []map[string]any{
			{"id": 10, "name": "Summer Sale", "clicks": 1240, "emails": 52, "conversion": "4.2%", "status": "active"},
		},
		"recentCaptures": []map[string]any{
			{"email": "lead@example.com", "campaign": "Summer Sale", "time": seedDate, "country": "United States"},
		},
	})
}

// ListLinks returns every link.
func (h *Handlers) ListLinks(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	links := make([]*Link, 0, len(h.store.links))
	for _, l := range h.store.links {
		links = append(links, l)
	}
	writeJSON(w, http.StatusOK, map[string]any{"links": links, "total": len(links)})
}

// CreateLink adds a link with a generated short code.
func (h *Handlers) CreateLink(w http.ResponseWriter, r *http.Request) {
	var input Link
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.TargetURL == "" {
		writeError(w, http.StatusBadRequest, "target_url is required")
		return
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	link := &input
	link.ID = h.store.id()
	if link.ShortCode == "" {
		link.ShortCode = "c" + strconv.Itoa(link.ID)
	}
	if link.Domain == "" {
		link.Domain = "lnk.example"
	}
	link.Status = "active"
	link.CreatedAt = now()
	h.store.links[link.ID] = link
	writeJSON(w, http.StatusCreated, link)
}

// GetLink returns one link.
func (h *Handlers) GetLink(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	link, ok := h.store.links[idParam(r)]
	if !ok {
		writeError(w, http.StatusNotFound, "link not found")
		return
	}
	writeJSON(w, http.StatusOK, link)
}

// UpdateLink replaces link settings.
func (h *Handlers) UpdateLink(w http.ResponseWriter, r *http.Request) {
	var input Link
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	link, ok := h.store.links[idParam(r)]
	if !ok {
		writeError(w, http.StatusNotFound, "link not found")
		return
	}
	if input.TargetURL != "" {
		link.TargetURL = input.TargetURL
	}
	link.BotBlocking = input.BotBlocking
	link.RateLimiting = input.RateLimiting
	link.GeoTargeting = input.GeoTargeting
	link.CaptureEmail = input.CaptureEmail
	writeJSON(w, http.StatusOK, link)
}

// DeleteLink removes a link.
func (h *Handlers) DeleteLink(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	id := idParam(r)
	if _, ok := h.store.links[id]; !ok {
		writeError(w, http.StatusNotFound, "link not found")
		return
	}
	delete(h.store.links, id)
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// BulkDeleteLinks removes several links.
func (h *Handlers) BulkDeleteLinks(w http.ResponseWriter, r *http.Request) {
	var input struct {
		IDs []int `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	for _, id := range input.IDs {
		delete(h.store.links, id)
	}
	writeJSON(w, http.StatusOK, map[string]int{"deleted": len(input.IDs)})
}

// Shorten creates a bare short link.
func (h *Handlers) Shorten(w http.ResponseWriter, r *http.Request) {
	var input struct {
		URL        string `json:"url"`
		Domain     string `json:"domain"`
		CustomCode string `json:"custom_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	link := &Link{ID: h.store.id(), TargetURL: input.URL, Domain: input.Domain, Status: "active", CreatedAt: now()}
	if link.Domain == "" {
		link.Domain = "lnk.example"
	}
	link.ShortCode = input.CustomCode
	if link.ShortCode == "" {
		link.ShortCode = "s" + strconv.Itoa(link.ID)
	}
	h.store.links[link.ID] = link
	writeJSON(w, http.StatusCreated, link)
}

// ListCampaigns returns every campaign.
func (h *Handlers) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	campaigns := make([]*Campaign, 0, len(h.store.campaigns))
	for _, c := range h.store.campaigns {
		campaigns = append(campaigns, c)
	}
	writeJSON(w, http.StatusOK, map[string]any{"campaigns": campaigns})
}

// CreateCampaign adds a campaign.
func (h *Handlers) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var input Campaign
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	campaign := &input
	campaign.ID = h.store.id()
	campaign.Status = "active"
	campaign.CreatedAt = now()
	h.store.campaigns[campaign.ID] = campaign
	writeJSON(w, http.StatusCreated, campaign)
}

// GetCampaign returns one campaign.
func (h *Handlers) GetCampaign(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	campaign, ok := h.store.campaigns[idParam(r)]
	if !ok {
		writeError(w, http.StatusNotFound, "campaign not found")
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// UpdateCampaign replaces campaign settings.
func (h *Handlers) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var input Campaign
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	campaign, ok := h.store.campaigns[idParam(r)]
	if !ok {
		writeError(w, http.StatusNotFound, "campaign not found")
		return
	}
	if input.Name != "" {
		campaign.Name = input.Name
	}
	if input.Description != "" {
		campaign.Description = input.Description
	}
	if input.Status != "" {
		campaign.Status = input.Status
	}
	if input.Budget != 0 {
		campaign.Budget = input.Budget
	}
	writeJSON(w, http.StatusOK, campaign)
}

// DeleteCampaign removes a campaign.
func (h *Handlers) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	id := idParam(r)
	if _, ok := h.store.campaigns[id]; !ok {
		writeError(w, http.StatusNotFound, "campaign not found")
		return
	}
	delete(h.store.campaigns, id)
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListAPIKeys returns the key list with prefixes only.
func (h *Handlers) ListAPIKeys(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	keys := make([]APIKey, 0, len(h.store.keys))
	for _, k := range h.store.keys {
		masked := *k
		masked.Key = ""
		keys = append(keys, masked)
	}
	writeJSON(w, http.StatusOK, map[string]any{"keys": keys})
}

// CreateAPIKey mints a key; the secret appears only in this response.
func (h *Handlers) CreateAPIKey(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	secret, prefix := newKeySecret()
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	key := &APIKey{ID: h.store.id(), Name: input.Name, Key: secret, KeyPrefix: prefix, Status: "active", CreatedAt: now()}
	h.store.keys[key.ID] = key
	writeJSON(w, http.StatusCreated, key)
}

// DeleteAPIKey revokes a key.
func (h *Handlers) DeleteAPIKey(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	id := idParam(r)
	if _, ok := h.store.keys[id]; !ok {
		writeError(w, http.StatusNotFound, "key not found")
		return
	}
	delete(h.store.keys, id)
	writeJSON(w, http.StatusOK, map[string]string{"status": "revoked"})
}

// PaymentWallets returns the active receiving addresses.
func (h *Handlers) PaymentWallets(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	wallets := make([]*Wallet, 0, len(h.store.wallets))
	for _, wl := range h.store.wallets {
		if wl.Active {
			wallets = append(wallets, wl)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"wallets": wallets})
}

// SubmitPayment records a payment proof in pending state.
func (h *Handlers) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	var input Payment
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.TxHash == "" {
		writeError(w, http.StatusBadRequest, "tx_hash is required")
		return
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	payment := &input
	payment.ID = h.store.id()
	payment.Status = "pending"
	payment.CreatedAt = now()
	h.store.payments[payment.ID] = payment
	writeJSON(w, http.StatusCreated, map[string]any{"payment": payment})
}

// CheckPaymentStatus bumps the confirmation count and confirms the payment
// once it reaches the target, so polls resolve after a few ticks.
func (h *Handlers) CheckPaymentStatus(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	payment, ok := h.store.payments[idParam(r)]
	if !ok {
		writeError(w, http.StatusNotFound, "payment not found")
		return
	}
	if !payment.IsConfirmed {
		payment.Confirmations++
		if payment.Confirmations >= confirmTarget {
			payment.IsConfirmed = true
			payment.Status = "confirmed"
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"payment": payment})
}

// ListTickets returns the support tickets.
func (h *Handlers) ListTickets(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	tickets := make([]*Ticket, 0, len(h.store.tickets))
	for _, t := range h.store.tickets {
		tickets = append(tickets, t)
	}
	writeJSON(w, http.StatusOK, map[string]any{"tickets": tickets})
}

// GetTicket returns one ticket with its thread.
func (h *Handlers) GetTicket(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	ticket, ok := h.store.tickets[idParam(r)]
	if !ok {
		writeError(w, http.StatusNotFound, "ticket not found")
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

// CreateTicket opens a ticket.
func (h *Handlers) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Subject  string `json:"subject"`
		Message  string `json:"message"`
		Priority string `json:"priority"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Subject == "" {
		writeError(w, http.StatusBadRequest, "subject is required")
		return
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	ticket := &Ticket{
		ID: h.store.id(), Subject: input.Subject, Status: "open", Priority: input.Priority,
		Messages:  []TicketMessage{{Author: UserFromContext(r.Context()), Message: input.Message, CreatedAt: now()}},
		CreatedAt: now(),
	}
	h.store.tickets[ticket.ID] = ticket
	writeJSON(w, http.StatusCreated, ticket)
}

// ReplyTicket appends a message to the thread.
func (h *Handlers) ReplyTicket(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	ticket, ok := h.store.tickets[idParam(r)]
	if !ok {
		writeError(w, http.StatusNotFound, "ticket not found")
		return
	}
	ticket.Messages = append(ticket.Messages, TicketMessage{
		Author: UserFromContext(r.Context()), Message: input.Message, CreatedAt: now(),
	})
	writeJSON(w, http.StatusOK, ticket)
}

// CloseTicket closes a ticket.
func (h *Handlers) CloseTicket(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	ticket, ok := h.store.tickets[idParam(r)]
	if !ok {
		writeError(w, http.StatusNotFound, "ticket not found")
		return
	}
	ticket.Status = "closed"
	writeJSON(w, http.StatusOK, ticket)
}

// ListNotifications returns the notices.
func (h *Handlers) ListNotifications(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	notices := make([]*Notification, 0, len(h.store.notices))
	for _, n := range h.store.notices {
		notices = append(notices, n)
	}
	writeJSON(w, http.StatusOK, map[string]any{"notifications": notices})
}

// MarkNotificationRead marks one notice read.
func (h *Handlers) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	notice, ok := h.store.notices[idParam(r)]
	if !ok {
		writeError(w, http.StatusNotFound, "notification not found")
		return
	}
	notice.Read = true
	writeJSON(w, http.StatusOK, notice)
}

// MarkAllNotificationsRead marks the whole feed read.
func (h *Handlers) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	for _, n := range h.store.notices {
		n.Read = true
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// DeleteNotification removes a notice.
func (h *Handlers) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	delete(h.store.notices, idParam(r))
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListPlans returns the subscription plans.
func (h *Handlers) ListPlans(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"plans": h.store.plans})
}

// ChangePassword acknowledges a password change; the stub stores no
// credentials, so only the payload shape is enforced.
func (h *Handlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "new_password is required")
		return
	}
	if input.CurrentPassword == "" {
		writeError(w, http.StatusBadRequest, "current_password is required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Health answers the unauthenticated health probe.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
