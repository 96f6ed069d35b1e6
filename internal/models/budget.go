package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetPeriod is the period a budget limit is meant for.
//
// The report engine compares limits directly against the totals of the
// requested period, the period is informational.
type BudgetPeriod string

const (
	PeriodDaily   BudgetPeriod = "daily"
	PeriodWeekly  BudgetPeriod = "weekly"
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodYearly  BudgetPeriod = "yearly"
)

// Valid reports if p is a known budget period.
func (p BudgetPeriod) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// Budget is a spending limit for one category of a user.
type Budget struct {
	DefaultModel
	UserID   uuid.UUID       `gorm:"uniqueIndex:budget_user_category"`
	Category string          `gorm:"uniqueIndex:budget_user_category"`
	Limit    decimal.Decimal `gorm:"column:spending_limit;type:TEXT;check:limit_positive,CAST(spending_limit AS REAL) > 0"`
	Period   BudgetPeriod
}

// BeforeSave trims the category, defaults the period to monthly and
// validates limit and period.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Category = strings.TrimSpace(b.Category)

	if b.Period == "" {
		b.Period = PeriodMonthly
	}

	if b.Category == "" {
		return ErrBudgetCategoryMissing
	}

	if !b.Limit.IsPositive() {
		return ErrBudgetLimitNotPositive
	}

	if !b.Period.Valid() {
		return ErrBudgetPeriodInvalid
	}

	return nil
}
