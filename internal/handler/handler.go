// Package handler contains the HTTP handlers of the michango API.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/jkimaro/michango-system/internal/middleware"
	"github.com/jkimaro/michango-system/internal/model"
	"github.com/jkimaro/michango-system/internal/repository"
	"github.com/jkimaro/michango-system/internal/service"
)

// Service defines the business-logic contract used by the HTTP handlers.
type Service interface {
	RegisterUser(ctx context.Context, phone, name string) (*model.User, error)
	LoginUser(ctx context.Context, phone string) (*model.User, error)
	LogoutUser() error
	SimulatePayment(ctx context.Context, amount int64, network model.Network, onSettled func(success bool)) (*model.Transaction, error)
	GetPaymentsByUser(ctx context.Context, userID string) ([]model.Transaction, error)
	GetStats(ctx context.Context, userID string) (*model.Stats, error)
	BuildReport(ctx context.Context) (*model.Report, error)
}

// Handler implements the HTTP handlers of the michango API.
type Handler struct {
	service Service
	logger  *zap.Logger
	gate    *middleware.SessionGate
}

// NewHandler creates a new HTTP handler instance.
func NewHandler(s Service, logger *zap.Logger, gate *middleware.SessionGate) *Handler {
	return &Handler{
		service: s,
		logger:  logger,
		gate:    gate,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

type registerRequest struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

// Register handles new user registration. A successful registration also
// logs the user in.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	u, err := h.service.RegisterUser(r.Context(), req.Phone, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPhone), errors.Is(err, service.ErrInvalidName):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, repository.ErrUserExists):
			http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
		default:
			h.logger.Error("register user error", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, u)
}

type loginRequest struct {
	Phone string `json:"phone"`
}

// Login authenticates a user by phone number and writes the session slot.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	u, err := h.service.LoginUser(r.Context(), req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPhone):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, repository.ErrUserNotFound):
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		default:
			h.logger.Error("login user error", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, u)
}

// Logout clears the session slot.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.LogoutUser(); err != nil {
		h.logger.Error("logout error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// CurrentUser returns the session user.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	h.writeJSON(w, u)
}

type balanceResponse struct {
	Balance int64 `json:"balance"`
}

// GetBalance returns the session user's balance.
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	h.writeJSON(w, balanceResponse{Balance: u.Balance})
}

type paymentRequest struct {
	Amount  int64  `json:"amount"`
	Network string `json:"network"`
}

// CreatePayment runs a simulated mobile-money payment to completion and
// returns the settled transaction. The response arrives only after the
// simulated network latency has passed.
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	tx, err := h.service.SimulatePayment(r.Context(), req.Amount, model.Network(req.Network), nil)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthenticated):
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		case errors.Is(err, service.ErrInvalidAmount), errors.Is(err, service.ErrInvalidNetwork):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			h.logger.Error("simulate payment error", zap.Error(err), zap.Int64("amount", req.Amount))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, tx)
}

// GetPayments returns the session user's payment history, newest first.
func (h *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	payments, err := h.service.GetPaymentsByUser(r.Context(), u.ID)
	if err != nil {
		h.logger.Error("get payments error", zap.Error(err), zap.String("userID", u.ID))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if len(payments) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.writeJSON(w, payments)
}

// GetStats returns the session user's contribution summary.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	stats, err := h.service.GetStats(r.Context(), u.ID)
	if err != nil {
		h.logger.Error("get stats error", zap.Error(err), zap.String("userID", u.ID))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, stats)
}

// GetReport builds and returns the contribution report document.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.BuildReport(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNotAuthenticated) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		h.logger.Error("build report error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, report)
}
