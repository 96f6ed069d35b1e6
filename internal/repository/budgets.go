package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Budgets reads and writes budgets in the database.
type Budgets struct {
	DB *gorm.DB
}

// BudgetFilter restricts the budgets returned by Page. Empty fields match all budgets.
type BudgetFilter struct {
	Category string
	Period   models.BudgetPeriod
}

// FindByUser returns all budgets of the user, ordered by category.
func (r Budgets) FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget

	err := r.query(ctx, userID, BudgetFilter{}).Find(&budgets).Error
	if err != nil {
		return nil, unavailable(err)
	}

	return budgets, nil
}

// Page returns at most limit budgets matching the filter, starting at offset,
// and the total number of matching budgets. A negative limit returns all
// budgets after the offset.
func (r Budgets) Page(ctx context.Context, userID uuid.UUID, filter BudgetFilter, offset uint, limit int) ([]models.Budget, int64, error) {
	q := r.query(ctx, userID, filter)

	var total int64
	err := q.Count(&total).Error
	if err != nil {
		return nil, 0, unavailable(err)
	}

	budgets := make([]models.Budget, 0)
	err = q.Offset(int(offset)).Limit(limit).Find(&budgets).Error
	if err != nil {
		return nil, 0, unavailable(err)
	}

	return budgets, total, nil
}

// Upsert creates the budget or, if the user already has a budget for the
// category, updates limit and period of the existing one in the same statement.
//
// The stored budget is returned.
func (r Budgets) Upsert(ctx context.Context, budget models.Budget) (models.Budget, error) {
	db := r.DB.WithContext(ctx)

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"spending_limit", "period", "updated_at"}),
	}).Create(&budget).Error
	if err != nil {
		return models.Budget{}, err
	}

	// On conflict, the ID generated for the new budget is not the stored one
	var stored models.Budget
	err = db.First(&stored, "user_id = ? AND category = ?", budget.UserID, budget.Category).Error
	if err != nil {
		return models.Budget{}, err
	}

	return stored, nil
}

func (r Budgets) query(ctx context.Context, userID uuid.UUID, filter BudgetFilter) *gorm.DB {
	q := r.DB.WithContext(ctx).
		Model(&models.Budget{}).
		Order("budgets.category ASC").
		Where("budgets.user_id = ?", userID)

	if filter.Category != "" {
		q = q.Where("budgets.category = ?", filter.Category)
	}

	if filter.Period != "" {
		q = q.Where("budgets.period = ?", filter.Period)
	}

	return q.Session(&gorm.Session{})
}
