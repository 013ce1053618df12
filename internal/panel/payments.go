package panel

import (
	"context"
	"fmt"
	"strings"

	"github.com/brainlink/trackpanel/internal/api"
)

// validateCryptoPayment applies the client-side checks run before submitting
// a payment proof.
func validateCryptoPayment(input api.CryptoPaymentInput) error {
	if strings.TrimSpace(input.TxHash) == "" {
		return fmt.Errorf("%w: transaction hash is required", ErrValidation)
	}
	if strings.TrimSpace(input.Currency) == "" {
		return fmt.Errorf("%w: currency is required", ErrValidation)
	}
	if input.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	return nil
}

// ShowCryptoWallets renders the operator receiving addresses to pay into.
func (p *Panel) ShowCryptoWallets(ctx context.Context) {
	p.loading("wallet addresses")

	list, err := p.api.Payments.CryptoWallets(ctx)
	if err != nil {
		p.notify.Error("%v", err)
		return
	}
	if len(list.Wallets) == 0 {
		fmt.Fprintln(p.out, "No payment wallets configured. Contact support.")
		return
	}

	w := p.table()
	fmt.Fprintln(w, "CURRENCY\tADDRESS\tLABEL")
	for _, wallet := range list.Wallets {
		fmt.Fprintf(w, "%s\t%s\t%s\n", wallet.Currency, wallet.Address, wallet.Label)
	}
	_ = w.Flush()
}

// SubmitCryptoPayment validates and submits a payment proof, then watches the
// confirmation status until it is confirmed or ctx is cancelled.
func (p *Panel) SubmitCryptoPayment(ctx context.Context, input api.CryptoPaymentInput) {
	if err := validateCryptoPayment(input); err != nil {
		p.notify.Error("%v", err)
		return
	}

	payment, err := p.api.Payments.SubmitCryptoPayment(ctx, input)
	if err != nil {
		p.notify.Error("failed to submit payment: %v", err)
		return
	}
	p.notify.Success("payment submitted, id %d, status %s", payment.ID, payment.Status)

	if payment.IsConfirmed {
		return
	}
	p.WatchPayment(ctx, payment.ID)
}

// WatchPayment polls the payment status every PollInterval, rendering each
// update, until the payment confirms or ctx is cancelled.
func (p *Panel) WatchPayment(ctx context.Context, paymentID int) {
	fmt.Fprintln(p.out, "Waiting for confirmation (Ctrl-C to stop watching)...")
	PollPaymentStatus(ctx, p.api.Payments, paymentID, PollInterval, p.log, func(payment api.CryptoPayment) {
		if payment.IsConfirmed {
			p.notify.Success("payment %d confirmed (%d confirmations)", payment.ID, payment.Confirmations)
			return
		}
		p.notify.Info("payment %d still %s (%d confirmations)", payment.ID, payment.Status, payment.Confirmations)
	})
}

// ShowPlans renders the subscription plans.
func (p *Panel) ShowPlans(ctx context.Context) {
	p.loading("plans")

	list, err := p.api.Payments.Plans(ctx)
	if err != nil {
		p.notify.Error("%v", err)
		return
	}

	w := p.table()
	fmt.Fprintln(w, "PLAN\tPRICE\tINTERVAL")
	for _, plan := range list.Plans {
		fmt.Fprintf(w, "%s\t%.2f\t%s\n", plan.Name, plan.Price, plan.Interval)
	}
	_ = w.Flush()
}
