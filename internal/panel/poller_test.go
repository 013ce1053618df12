package panel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/brainlink/trackpanel/internal/api"
)

// fakeChecker confirms the payment on the confirmAt-th check and fails the
// first failures checks before that.
type fakeChecker struct {
	calls     atomic.Int32
	failures  int32
	confirmAt int32
}

func (f *fakeChecker) CheckStatus(ctx context.Context, id int) (*api.PaymentStatus, error) {
	n := f.calls.Add(1)
	if n <= f.failures {
		return nil, errors.New("temporarily unavailable")
	}
	return &api.PaymentStatus{Payment: api.CryptoPayment{
		ID:            id,
		Confirmations: int(n),
		IsConfirmed:   n >= f.confirmAt,
	}}, nil
}

func TestPollStopsWhenConfirmed(t *testing.T) {
	checker := &fakeChecker{confirmAt: 3}
	var updates atomic.Int32

	PollPaymentStatus(context.Background(), checker, 55, 2*time.Millisecond, zap.NewNop(),
		func(p api.CryptoPayment) { updates.Add(1) })

	if got := checker.calls.Load(); got != 3 {
		t.Errorf("checks = %d; want 3", got)
	}
	if got := updates.Load(); got != 3 {
		t.Errorf("onUpdate calls = %d; want one per successful check", got)
	}

	// No check may run once the poll has returned.
	time.Sleep(10 * time.Millisecond)
	if got := checker.calls.Load(); got != 3 {
		t.Errorf("checks after confirmation = %d; want still 3", got)
	}
}

func TestPollRetriesAfterErrors(t *testing.T) {
	checker := &fakeChecker{failures: 2, confirmAt: 4}
	var updates atomic.Int32

	PollPaymentStatus(context.Background(), checker, 55, 2*time.Millisecond, zap.NewNop(),
		func(p api.CryptoPayment) { updates.Add(1) })

	if got := checker.calls.Load(); got != 4 {
		t.Errorf("checks = %d; want 4, failed checks retry on the next tick", got)
	}
	if got := updates.Load(); got != 2 {
		t.Errorf("onUpdate calls = %d; want 2, errors must not reach the callback", got)
	}
}

func TestPollStopsOnCancel(t *testing.T) {
	checker := &fakeChecker{confirmAt: 1 << 30}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		PollPaymentStatus(ctx, checker, 55, 2*time.Millisecond, zap.NewNop(), nil)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poll did not return after cancellation")
	}

	after := checker.calls.Load()
	time.Sleep(10 * time.Millisecond)
	if got := checker.calls.Load(); got != after {
		t.Errorf("checks kept running after cancellation: %d -> %d", after, got)
	}
}
