package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType determines which totals a transaction contributes to.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports if t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

const maxDescriptionLength = 500

// Transaction is a single income or expense of a user.
type Transaction struct {
	DefaultModel
	UserID      uuid.UUID       `gorm:"index"`
	Amount      decimal.Decimal `gorm:"type:TEXT;check:amount_not_negative,CAST(amount AS REAL) >= 0"`
	Type        TransactionType `gorm:"index"`
	Date        time.Time       `gorm:"index"` // Accounting date, used for all time based reports
	Category    string
	Description string
}

// AfterFind enforces UTC for all times.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - trims whitespace from string fields
//   - sets the Date to now if it is unset and enforces UTC
//   - validates the amount, type, category and description
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Category = strings.TrimSpace(t.Category)
	t.Description = strings.TrimSpace(t.Description)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	if t.Amount.IsNegative() {
		return ErrTransactionAmountNegative
	}

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if t.Category == "" {
		return ErrTransactionCategoryMissing
	}

	if utf8.RuneCountInString(t.Description) > maxDescriptionLength {
		return ErrDescriptionTooLong
	}

	return nil
}
