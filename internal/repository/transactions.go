package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/reports"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// Transactions reads transactions from the database.
type Transactions struct {
	DB *gorm.DB
}

// FindByUser returns the transactions of the user matching the filter,
// newest first. Transactions with the same date are ordered by creation time, newest first.
func (r Transactions) FindByUser(ctx context.Context, userID uuid.UUID, filter reports.TransactionFilter) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.query(ctx, userID, filter).Find(&transactions).Error
	if err != nil {
		return nil, unavailable(err)
	}

	if filter.CategoryMatch == "" {
		return transactions, nil
	}

	matching := make([]models.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if glob.Glob(filter.CategoryMatch, transaction.Category) {
			matching = append(matching, transaction)
		}
	}

	return matching, nil
}

// Page returns at most limit transactions matching the filter, starting at offset,
// and the total number of matching transactions. A negative limit returns all
// transactions after the offset.
func (r Transactions) Page(ctx context.Context, userID uuid.UUID, filter reports.TransactionFilter, offset uint, limit int) ([]models.Transaction, int64, error) {
	// Glob patterns are matched in Go, the page can only be cut afterwards
	if filter.CategoryMatch != "" {
		transactions, err := r.FindByUser(ctx, userID, filter)
		if err != nil {
			return nil, 0, err
		}

		return paginate(transactions, offset, limit), int64(len(transactions)), nil
	}

	q := r.query(ctx, userID, filter)

	var total int64
	err := q.Count(&total).Error
	if err != nil {
		return nil, 0, unavailable(err)
	}

	transactions := make([]models.Transaction, 0)
	err = q.Offset(int(offset)).Limit(limit).Find(&transactions).Error
	if err != nil {
		return nil, 0, unavailable(err)
	}

	return transactions, total, nil
}

// query returns a reusable query for the transactions of the user matching
// all parts of the filter except the category glob.
func (r Transactions) query(ctx context.Context, userID uuid.UUID, filter reports.TransactionFilter) *gorm.DB {
	q := r.DB.WithContext(ctx).
		Model(&models.Transaction{}).
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC").
		Where("transactions.user_id = ?", userID)

	if filter.Type != "" {
		q = q.Where("transactions.type = ?", filter.Type)
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("transactions.date >= date(?)", day(filter.FromDate))
	}

	// Compared by calendar day so that December 31st 9999 stays a valid bound
	if !filter.UntilDate.IsZero() {
		q = q.Where("date(transactions.date) <= date(?)", day(filter.UntilDate))
	}

	if filter.Category != "" {
		q = q.Where("transactions.category = ?", filter.Category)
	}

	if filter.Description != "" {
		q = q.Where("transactions.description LIKE ?", fmt.Sprintf("%%%s%%", filter.Description))
	}

	return q.Session(&gorm.Session{})
}

// day returns midnight UTC of the calendar day of t.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
