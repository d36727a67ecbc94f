// Package repository contains the in-memory record store of the michango
// service. Records live for the lifetime of the process; there is no
// persistence across restarts.
package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jkimaro/michango-system/internal/model"
)

// ErrUserExists is returned when registering a phone number that already has a user.
var (
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrTransactionNotFound is returned when no transaction matches the lookup.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrTransactionSettled is returned when settling a transaction that already
	// reached a terminal status.
	ErrTransactionSettled = errors.New("transaction already settled")
)

// MemoryRepository keeps users and transactions in ordered in-memory tables.
// A single mutex serializes all access, so check-then-insert sequences like
// the duplicate-phone check run as one critical section.
type MemoryRepository struct {
	mu           sync.Mutex
	users        table[model.User]
	transactions table[model.Transaction]
}

// NewMemoryRepository creates an empty record store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Close releases the store. Present to satisfy the repository contract;
// an in-memory store has nothing to release.
func (r *MemoryRepository) Close() error {
	return nil
}

// Seed inserts the demo user used by local environments. Does nothing when
// the users table is not empty.
func (r *MemoryRepository) Seed() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.users.records) > 0 {
		return
	}

	r.users.insert(model.User{
		ID:        uuid.NewString(),
		Phone:     "255123456789",
		Name:      "Demo User",
		CreatedAt: time.Now(),
		Balance:   50000,
	})
}

// CreateUser creates a new user with a zero balance. The duplicate-phone
// check and the insert run under one lock.
func (r *MemoryRepository) CreateUser(ctx context.Context, phone, name string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing := r.users.selectWhere(func(u model.User) bool { return u.Phone == phone })
	if len(existing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUserExists, phone)
	}

	u := model.User{
		ID:        uuid.NewString(),
		Phone:     phone,
		Name:      name,
		CreatedAt: time.Now(),
		Balance:   0,
	}
	r.users.insert(u)

	return &u, nil
}

// GetUserByPhone returns the user registered with the given phone number.
func (r *MemoryRepository) GetUserByPhone(ctx context.Context, phone string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := r.users.selectWhere(func(u model.User) bool { return u.Phone == phone })
	if len(found) == 0 {
		return nil, ErrUserNotFound
	}

	u := found[0]
	return &u, nil
}

// GetUserByID returns the user with the given identifier.
func (r *MemoryRepository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := r.users.selectWhere(func(u model.User) bool { return u.ID == id })
	if len(found) == 0 {
		return nil, ErrUserNotFound
	}

	u := found[0]
	return &u, nil
}

// AdjustUserBalance adds delta to the user's balance in place and returns
// the updated user.
func (r *MemoryRepository) AdjustUserBalance(ctx context.Context, userID string, delta int64) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.users.updateWhere(
		func(u model.User) bool { return u.ID == userID },
		func(u *model.User) { u.Balance += delta },
	)
	if n == 0 {
		return nil, ErrUserNotFound
	}

	updated := r.users.selectWhere(func(u model.User) bool { return u.ID == userID })
	u := updated[0]
	return &u, nil
}

// CreateTransaction stores a new transaction. The referenced user must exist
// and the transaction must be in the pending state.
func (r *MemoryRepository) CreateTransaction(ctx context.Context, tx model.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	owner := r.users.selectWhere(func(u model.User) bool { return u.ID == tx.UserID })
	if len(owner) == 0 {
		return fmt.Errorf("transaction owner: %w", ErrUserNotFound)
	}

	if tx.Status != model.StatusPending {
		return fmt.Errorf("new transaction must be pending, got %q", tx.Status)
	}

	r.transactions.insert(tx)
	return nil
}

// SettleTransaction moves a pending transaction to a terminal status.
// Transactions that already reached a terminal status are never modified.
func (r *MemoryRepository) SettleTransaction(ctx context.Context, id string, status model.TransactionStatus) (*model.Transaction, error) {
	if !status.Terminal() {
		return nil, fmt.Errorf("settlement status must be terminal, got %q", status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	found := r.transactions.selectWhere(func(t model.Transaction) bool { return t.ID == id })
	if len(found) == 0 {
		return nil, ErrTransactionNotFound
	}
	if found[0].Status.Terminal() {
		return nil, fmt.Errorf("%w: %s", ErrTransactionSettled, id)
	}

	r.transactions.updateWhere(
		func(t model.Transaction) bool { return t.ID == id },
		func(t *model.Transaction) { t.Status = status },
	)

	settled := found[0]
	settled.Status = status
	return &settled, nil
}

// GetTransactionsByUser returns the user's transactions, newest first.
func (r *MemoryRepository) GetTransactionsByUser(ctx context.Context, userID string) ([]model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := r.transactions.selectWhere(func(t model.Transaction) bool { return t.UserID == userID })

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Date.After(res[j].Date)
	})

	return res, nil
}
