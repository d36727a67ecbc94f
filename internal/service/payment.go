package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jkimaro/michango-system/internal/model"
)

const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateReference produces the 8-character uppercase token shown to users.
// Collisions are unlikely at demo scale but not ruled out.
func generateReference() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is effectively unrecoverable; fall back to
		// a constant so the transaction still gets a reference.
		return "REF00000"
	}
	for i, b := range buf {
		buf[i] = referenceAlphabet[int(b)%len(referenceAlphabet)]
	}
	return string(buf)
}

// SimulatePayment runs one mobile-money payment through its full lifecycle:
// a pending contribution is stored, the simulated network latency passes,
// and the payment settles as completed or failed. A completed payment
// credits the session user's balance; a failed one leaves it untouched and
// must be resubmitted as a brand-new payment.
//
// onSettled, when non-nil, is invoked with the settlement outcome before the
// final transaction is returned. The caller cannot abort an in-flight
// payment: once the pending transaction is stored, settlement runs to
// completion even if ctx is cancelled during the latency window.
func (s *Service) SimulatePayment(ctx context.Context, amount int64, network model.Network, onSettled func(success bool)) (*model.Transaction, error) {
	user, err := s.CurrentUser()
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if user == nil {
		return nil, ErrNotAuthenticated
	}

	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if network == "" {
		network = model.NetworkMPesa
	}
	if !network.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidNetwork, network)
	}

	tx := model.Transaction{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Amount:    amount,
		Type:      model.TypeContribution,
		Status:    model.StatusPending,
		Date:      time.Now(),
		Reference: generateReference(),
		Network:   network,
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	// Every stored transaction must reach a terminal state, so settlement
	// is detached from the caller's context from here on.
	ctx = context.WithoutCancel(ctx)

	time.Sleep(s.settleDelay)

	success := s.outcome()

	status := model.StatusFailed
	if success {
		status = model.StatusCompleted
	}

	settled, err := s.repo.SettleTransaction(ctx, tx.ID, status)
	if err != nil {
		return nil, fmt.Errorf("settle transaction: %w", err)
	}

	if success {
		if _, err := s.AdjustBalance(ctx, user.ID, amount); err != nil {
			return nil, fmt.Errorf("credit balance: %w", err)
		}
	}

	if onSettled != nil {
		onSettled(success)
	}

	return settled, nil
}

// GetPaymentsByUser returns the user's payment history, newest first.
func (s *Service) GetPaymentsByUser(ctx context.Context, userID string) ([]model.Transaction, error) {
	return s.repo.GetTransactionsByUser(ctx, userID)
}

func (s *Service) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
