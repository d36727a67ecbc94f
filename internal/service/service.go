// Package service implements the business logic of the michango service.
package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/jkimaro/michango-system/internal/model"
	"github.com/jkimaro/michango-system/internal/session"
	"github.com/jkimaro/michango-system/internal/validation"
)

// ErrInvalidPhone is returned for phone numbers outside the 255XXXXXXXXX format.
var (
	ErrInvalidPhone = errors.New("invalid phone number")
	// ErrInvalidName is returned for names shorter than two characters after trimming.
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidAmount is returned for non-positive payment amounts.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	// ErrInvalidNetwork is returned for unknown mobile-money networks.
	ErrInvalidNetwork = errors.New("unknown payment network")
	// ErrNotAuthenticated is returned when an operation requires a session user.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Repository describes the record-store contract used by the service.
type Repository interface {
	Close() error
	CreateUser(ctx context.Context, phone, name string) (*model.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	AdjustUserBalance(ctx context.Context, userID string, delta int64) (*model.User, error)
	CreateTransaction(ctx context.Context, tx model.Transaction) error
	SettleTransaction(ctx context.Context, id string, status model.TransactionStatus) (*model.Transaction, error)
	GetTransactionsByUser(ctx context.Context, userID string) ([]model.Transaction, error)
}

// OutcomeFunc decides whether a simulated payment settles successfully.
type OutcomeFunc func() bool

// Options tunes the simulated parts of the service. Zero values fall back
// to the demo defaults.
type Options struct {
	// SettlementDelay is the simulated mobile-money network latency.
	SettlementDelay time.Duration
	// ReportDelay is the simulated report rendering time.
	ReportDelay time.Duration
	// SuccessRate is the probability of a payment settling successfully.
	SuccessRate float64
	// Outcome overrides the random draw entirely when set.
	Outcome OutcomeFunc
}

// Service contains the business logic of the michango service.
type Service struct {
	repo        Repository
	sessions    session.Store
	outcome     OutcomeFunc
	settleDelay time.Duration
	reportDelay time.Duration
}

// NewService creates a service over the given record store and session slot.
func NewService(repo Repository, sessions session.Store, opts Options) *Service {
	if opts.SettlementDelay <= 0 {
		opts.SettlementDelay = 2 * time.Second
	}
	if opts.ReportDelay <= 0 {
		opts.ReportDelay = 2 * time.Second
	}
	if opts.SuccessRate <= 0 || opts.SuccessRate > 1 {
		opts.SuccessRate = 0.9
	}

	outcome := opts.Outcome
	if outcome == nil {
		rate := opts.SuccessRate
		outcome = func() bool { return rand.Float64() < rate }
	}

	return &Service{
		repo:        repo,
		sessions:    sessions,
		outcome:     outcome,
		settleDelay: opts.SettlementDelay,
		reportDelay: opts.ReportDelay,
	}
}

// Close releases the service's resources.
func (s *Service) Close() error {
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}

// RegisterUser creates a new user and establishes their session.
func (s *Service) RegisterUser(ctx context.Context, phone, name string) (*model.User, error) {
	if !validation.IsValidTanzanianPhone(phone) {
		return nil, ErrInvalidPhone
	}
	if !validation.IsValidName(name) {
		return nil, ErrInvalidName
	}

	u, err := s.repo.CreateUser(ctx, validation.CleanPhone(phone), name)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Set(u); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return u, nil
}

// LoginUser looks the user up by phone and writes the session slot,
// replacing any prior session.
func (s *Service) LoginUser(ctx context.Context, phone string) (*model.User, error) {
	if !validation.IsValidTanzanianPhone(phone) {
		return nil, ErrInvalidPhone
	}

	u, err := s.repo.GetUserByPhone(ctx, validation.CleanPhone(phone))
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Set(u); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return u, nil
}

// LogoutUser clears the session slot.
func (s *Service) LogoutUser() error {
	return s.sessions.Clear()
}

// CurrentUser returns the session user, or nil when no one is logged in.
func (s *Service) CurrentUser() (*model.User, error) {
	return s.sessions.Get()
}

// IsAuthenticated reports whether a session user exists.
func (s *Service) IsAuthenticated() bool {
	u, err := s.sessions.Get()
	return err == nil && u != nil
}

// AdjustBalance adds delta to the user's balance. When the adjusted user is
// the session user, the session slot is refreshed so callers see the new
// balance without logging in again.
func (s *Service) AdjustBalance(ctx context.Context, userID string, delta int64) (*model.User, error) {
	updated, err := s.repo.AdjustUserBalance(ctx, userID, delta)
	if err != nil {
		return nil, err
	}

	current, err := s.sessions.Get()
	if err == nil && current != nil && current.ID == userID {
		if err := s.sessions.Set(updated); err != nil {
			return nil, fmt.Errorf("refresh session: %w", err)
		}
	}

	return updated, nil
}
