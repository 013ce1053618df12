package panel

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/brainlink/trackpanel/internal/api"
)

func TestValidateCryptoPayment(t *testing.T) {
	tests := []struct {
		name    string
		input   api.CryptoPaymentInput
		wantErr bool
	}{
		{"valid", api.CryptoPaymentInput{TxHash: "0xabc", Currency: "ETH", Amount: 0.5}, false},
		{"missing hash", api.CryptoPaymentInput{Currency: "ETH", Amount: 0.5}, true},
		{"missing currency", api.CryptoPaymentInput{TxHash: "0xabc", Amount: 0.5}, true},
		{"zero amount", api.CryptoPaymentInput{TxHash: "0xabc", Currency: "ETH"}, true},
		{"negative amount", api.CryptoPaymentInput{TxHash: "0xabc", Currency: "ETH", Amount: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCryptoPayment(tt.input)
			if tt.wantErr && !errors.Is(err, ErrValidation) {
				t.Errorf("validateCryptoPayment() = %v; want ErrValidation", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("validateCryptoPayment() = %v; want nil", err)
			}
		})
	}
}

func TestSubmitCryptoPaymentRejectsInvalidInput(t *testing.T) {
	var hits atomic.Int32
	p, out := newTestPanel(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}), "")

	p.SubmitCryptoPayment(context.Background(), api.CryptoPaymentInput{Currency: "BTC"})

	if got := hits.Load(); got != 0 {
		t.Errorf("server hits = %d; want 0, invalid input must not reach the network", got)
	}
	if !strings.Contains(out.String(), "transaction hash is required") {
		t.Errorf("output %q missing validation message", out.String())
	}
}

func TestSubmitCryptoPaymentAlreadyConfirmed(t *testing.T) {
	var statusChecks atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/crypto-payments/submit", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"payment":{"id":9,"status":"confirmed","is_confirmed":true}}`))
	})
	mux.HandleFunc("GET /api/crypto-payments/check-status/9", func(w http.ResponseWriter, r *http.Request) {
		statusChecks.Add(1)
		_, _ = w.Write([]byte(`{"payment":{"id":9,"status":"confirmed","is_confirmed":true}}`))
	})

	p, out := newTestPanel(t, mux, "")
	p.SubmitCryptoPayment(context.Background(), api.CryptoPaymentInput{TxHash: "0xabc", Currency: "BTC", Amount: 0.01})

	if got := statusChecks.Load(); got != 0 {
		t.Errorf("status checks = %d; want 0, a confirmed payment is never polled", got)
	}
	if !strings.Contains(out.String(), "payment submitted") {
		t.Errorf("output %q missing submit toast", out.String())
	}
}

func TestNotifierHistory(t *testing.T) {
	n := NewNotifier(&strings.Builder{})
	for i := 0; i < historySize+5; i++ {
		n.Info("notice %d", i)
	}

	recent := n.Recent()
	if len(recent) != historySize {
		t.Fatalf("len(Recent()) = %d; want %d", len(recent), historySize)
	}
	if !strings.Contains(recent[len(recent)-1], "notice 24") {
		t.Errorf("newest notice = %q; want notice 24 last", recent[len(recent)-1])
	}
}
