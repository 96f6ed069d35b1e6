package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrTransactionAmountNegative  = errors.New("the transaction amount must not be negative")
	ErrTransactionTypeInvalid     = errors.New("the transaction type must be one of 'income' or 'expense'")
	ErrTransactionCategoryMissing = errors.New("the transaction category must be set")
	ErrDescriptionTooLong         = errors.New("the description must not be longer than 500 characters")
)

var (
	ErrBudgetCategoryNotUnique = errors.New("there already is a budget for this category")
	ErrBudgetCategoryMissing   = errors.New("the budget category must be set")
	ErrBudgetLimitNotPositive  = errors.New("the budget limit must be positive")
	ErrBudgetPeriodInvalid     = errors.New("the budget period must be one of 'daily', 'weekly', 'monthly' or 'yearly'")
)
