package panel

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/brainlink/trackpanel/internal/api"
)

// PollInterval is how often the payment view re-checks a pending payment.
const PollInterval = 10 * time.Second

// StatusChecker fetches the confirmation state of a submitted payment.
type StatusChecker interface {
	CheckStatus(ctx context.Context, id int) (*api.PaymentStatus, error)
}

// PollPaymentStatus re-checks the payment every interval until it is
// confirmed or ctx is cancelled, whichever comes first. onUpdate runs after
// every successful check; no request is ever issued after confirmation or
// cancellation. Check errors are logged and the loop keeps going: the next
// tick is the retry.
func PollPaymentStatus(
	ctx context.Context,
	checker StatusChecker,
	paymentID int,
	interval time.Duration,
	log *zap.Logger,
	onUpdate func(api.CryptoPayment),
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			status, err := checker.CheckStatus(ctx, paymentID)
			if err != nil {
				log.Error("payment status check failed", zap.Int("payment_id", paymentID), zap.Error(err))
				continue
			}
			if onUpdate != nil {
				onUpdate(status.Payment)
			}
			if status.Payment.IsConfirmed {
				log.Info("payment confirmed", zap.Int("payment_id", paymentID))
				return
			}
		}
	}
}
