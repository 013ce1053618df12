package mockapi

import (
	"encoding/json"
	"net/http"
)

// ListUsers returns every account.
func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	users := make([]*User, 0, len(h.store.users))
	for _, u := range h.store.users {
		users = append(users, u)
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": users, "total": len(users)})
}

// ListPendingUsers returns accounts awaiting approval.
func (h *Handlers) ListPendingUsers(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	users := make([]*User, 0)
	for _, u := range h.store.users {
		if u.Status == "pending" {
			users = append(users, u)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}

// ApprovePendingUser activates a pending account.
func (h *Handlers) ApprovePendingUser(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	user, ok := h.store.users[idParam(r)]
	if !ok {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	user.Status = "active"
	user.IsVerified = true
	writeJSON(w, http.StatusOK, user)
}

// SuspendUser suspends an account.
func (h *Handlers) SuspendUser(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Suspend bool   `json:"suspend"`
		Reason  string `json:"reason"`
	}
	_ = json.NewDecoder(r.Body).Decode(&input)

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	user, ok := h.store.users[idParam(r)]
	if !ok {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	user.Status = "suspended"
	writeJSON(w, http.StatusOK, user)
}

// DeleteUser removes an account.
func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	id := idParam(r)
	if _, ok := h.store.users[id]; !ok {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	delete(h.store.users, id)
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// AdminListCampaigns returns every campaign platform-wide.
func (h *Handlers) AdminListCampaigns(w http.ResponseWriter, r *http.Request) {
	h.ListCampaigns(w, r)
}

// AdminSuspendCampaign pauses a campaign.
func (h *Handlers) AdminSuspendCampaign(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	campaign, ok := h.store.campaigns[idParam(r)]
	if !ok {
		writeError(w, http.StatusNotFound, "campaign not found")
		return
	}
	campaign.Status = "paused"
	writeJSON(w, http.StatusOK, campaign)
}

// ListCryptoPayments returns every submitted payment.
func (h *Handlers) ListCryptoPayments(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	payments := make([]*Payment, 0, len(h.store.payments))
	for _, p := range h.store.payments {
		payments = append(payments, p)
	}
	writeJSON(w, http.StatusOK, map[string]any{"payments": payments})
}

// VerifyCryptoPayment records the operator verdict.
func (h *Handlers) VerifyCryptoPayment(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Verified bool `json:"verified"`
	}
	_ = json.NewDecoder(r.Body).Decode(&input)

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	payment, ok := h.store.payments[idParam(r)]
	if !ok {
		writeError(w, http.StatusNotFound, "payment not found")
		return
	}
	if input.Verified {
		payment.IsConfirmed = true
		payment.Status = "confirmed"
	} else {
		payment.Status = "rejected"
	}
	writeJSON(w, http.StatusOK, map[string]any{"payment": payment})
}

// ListWallets returns every configured wallet, active or not.
func (h *Handlers) ListWallets(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	wallets := make([]*Wallet, 0, len(h.store.wallets))
	for _, wl := range h.store.wallets {
		wallets = append(wallets, wl)
	}
	writeJSON(w, http.StatusOK, map[string]any{"wallets": wallets})
}

// AddWallet adds a receiving wallet.
func (h *Handlers) AddWallet(w http.ResponseWriter, r *http.Request) {
	var input Wallet
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Currency == "" || input.Address == "" {
		writeError(w, http.StatusBadRequest, "currency and address are required")
		return
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	wallet := &input
	wallet.ID = h.store.id()
	wallet.Active = true
	h.store.wallets[wallet.ID] = wallet
	writeJSON(w, http.StatusCreated, wallet)
}

// UpdateWallet replaces a wallet.
func (h *Handlers) UpdateWallet(w http.ResponseWriter, r *http.Request) {
	var input Wallet
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	wallet, ok := h.store.wallets[idParam(r)]
	if !ok {
		writeError(w, http.StatusNotFound, "wallet not found")
		return
	}
	if input.Address != "" {
		wallet.Address = input.Address
	}
	if input.Label != "" {
		wallet.Label = input.Label
	}
	wallet.Active = input.Active
	writeJSON(w, http.StatusOK, wallet)
}

// DeleteWallet removes a wallet.
func (h *Handlers) DeleteWallet(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	id := idParam(r)
	if _, ok := h.store.wallets[id]; !ok {
		writeError(w, http.StatusNotFound, "wallet not found")
		return
	}
	delete(h.store.wallets, id)
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListBlockedIPs returns the blocked addresses.
func (h *Handlers) ListBlockedIPs(w http.ResponseWriter, r *http.Request) {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	blocked := make([]map[string]string, 0, len(h.store.blocked))
	for ip, reason := range h.store.blocked {
		blocked = append(blocked, map[string]string{"ip": ip, "reason": reason, "blocked_at": seedDate})
	}
	writeJSON(w, http.StatusOK, map[string]any{"blocked_ips": blocked})
}

// BlockIP blocks an address.
func (h *Handlers) BlockIP(w http.ResponseWriter, r *http.Request) {
	var input struct {
		IP     string `json:"ip"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.IP == "" {
		writeError(w, http.StatusBadRequest, "ip is required")
		return
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	h.store.blocked[input.IP] = input.Reason
	writeJSON(w, http.StatusOK, map[string]string{"status": "blocked"})
}

// UnblockIP removes an address from the block list.
func (h *Handlers) UnblockIP(w http.ResponseWriter, r *http.Request) {
	var input struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.IP == "" {
		writeError(w, http.StatusBadRequest, "ip is required")
		return
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	delete(h.store.blocked, input.IP)
	writeJSON(w, http.StatusOK, map[string]string{"status": "unblocked"})
}
