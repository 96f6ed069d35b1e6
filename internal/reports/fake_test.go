package reports_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/reports"
	"github.com/shopspring/decimal"
)

// fakeTransactions is an in-memory TransactionRepository.
type fakeTransactions struct {
	mu           sync.Mutex
	transactions []models.Transaction
	err          error
	filters      []reports.TransactionFilter
}

func (f *fakeTransactions) FindByUser(_ context.Context, userID uuid.UUID, filter reports.TransactionFilter) ([]models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}

	result := make([]models.Transaction, 0)
	for _, t := range f.transactions {
		if t.UserID != userID {
			continue
		}

		if filter.Type != "" && t.Type != filter.Type {
			continue
		}

		if !filter.FromDate.IsZero() && t.Date.Before(filter.FromDate) {
			continue
		}

		if !filter.UntilDate.IsZero() && !t.Date.Before(filter.UntilDate.AddDate(0, 0, 1)) {
			continue
		}

		result = append(result, t)
	}

	return result, nil
}

// fakeBudgets is an in-memory BudgetRepository.
type fakeBudgets struct {
	budgets []models.Budget
	err     error
}

func (f *fakeBudgets) FindByUser(_ context.Context, userID uuid.UUID) ([]models.Budget, error) {
	if f.err != nil {
		return nil, f.err
	}

	result := make([]models.Budget, 0)
	for _, b := range f.budgets {
		if b.UserID == userID {
			result = append(result, b)
		}
	}

	return result, nil
}

var user = uuid.MustParse("0b4f4a7e-7a0b-4c57-9c39-2f5d3b5c9a10")

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func expense(amount, category string, at time.Time) models.Transaction {
	return models.Transaction{UserID: user, Amount: d(amount), Type: models.TypeExpense, Category: category, Date: at}
}

func income(amount, category string, at time.Time) models.Transaction {
	return models.Transaction{UserID: user, Amount: d(amount), Type: models.TypeIncome, Category: category, Date: at}
}

func budget(category, limit string) models.Budget {
	return models.Budget{UserID: user, Category: category, Limit: d(limit), Period: models.PeriodMonthly}
}
