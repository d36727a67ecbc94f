package service

import (
	"context"
	"time"

	"github.com/jkimaro/michango-system/internal/model"
	"github.com/jkimaro/michango-system/internal/validation"
)

// GetStats derives the user's contribution summary from the transaction set.
// Nothing is cached; every call recomputes from the record store.
func (s *Service) GetStats(ctx context.Context, userID string) (*model.Stats, error) {
	payments, err := s.repo.GetTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var stats model.Stats
	for _, p := range payments {
		switch p.Status {
		case model.StatusCompleted:
			stats.SuccessfulPayments++
			if p.Type == model.TypeContribution {
				stats.TotalContributions += p.Amount
			}
		case model.StatusFailed:
			stats.FailedPayments++
		}
	}

	return &stats, nil
}

// BuildReport assembles the contribution report document for the session
// user. The document is what a renderer would turn into a PDF; rendering
// itself is simulated by waiting the configured report delay.
func (s *Service) BuildReport(ctx context.Context) (*model.Report, error) {
	user, err := s.CurrentUser()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotAuthenticated
	}

	payments, err := s.repo.GetTransactionsByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	stats, err := s.GetStats(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	rows := make([]model.ReportRow, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, model.ReportRow{
			Reference: p.Reference,
			Amount:    validation.FormatCurrency(p.Amount),
			Network:   p.Network.DisplayName(),
			Status:    string(p.Status),
			Date:      p.Date.Format(time.RFC3339),
		})
	}

	if err := s.wait(ctx, s.reportDelay); err != nil {
		return nil, err
	}

	return &model.Report{
		UserName:    user.Name,
		UserPhone:   validation.FormatPhone(user.Phone),
		Balance:     validation.FormatCurrency(user.Balance),
		Stats:       *stats,
		Rows:        rows,
		GeneratedAt: time.Now(),
	}, nil
}
