package reports

import (
	"github.com/ledgerbook/backend/internal/models"
	"github.com/shopspring/decimal"
)

// CategoryTotal is the sum of all transactions of one type in one category.
type CategoryTotal struct {
	Category string                 `json:"category" example:"food"`
	Total    decimal.Decimal        `json:"total" swaggertype:"number" example:"150"`
	Type     models.TransactionType `json:"-"`
}

// MonthTotal is the sum of all transactions of one type in one calendar month.
type MonthTotal struct {
	Month int             `json:"month" minimum:"1" maximum:"12" example:"3"`
	Total decimal.Decimal `json:"total" swaggertype:"number" example:"150"`
}

// BudgetAlert reports a category where spending exceeded the budget limit.
type BudgetAlert struct {
	Category string          `json:"category" example:"food"`
	Spent    decimal.Decimal `json:"spent" swaggertype:"number" example:"150"`
	Limit    decimal.Decimal `json:"limit" swaggertype:"number" example:"120"`
	Over     decimal.Decimal `json:"over" swaggertype:"number" example:"30"` // Always positive
}

type MonthlyReport struct {
	Expenses     []CategoryTotal `json:"expenses"` // Descending by total
	TotalIncome  decimal.Decimal `json:"totalIncome" swaggertype:"number" example:"2500"`
	BudgetAlerts []BudgetAlert   `json:"budgetAlerts"`
}

type YearlyReport struct {
	MonthlyExpenses  []MonthTotal    `json:"monthlyExpenses"`  // Always 12 entries, January first
	MonthlyIncomes   []MonthTotal    `json:"monthlyIncomes"`   // Always 12 entries, January first
	CategoryExpenses []CategoryTotal `json:"categoryExpenses"` // Descending by total
	TotalIncome      decimal.Decimal `json:"totalIncome" swaggertype:"number" example:"30000"`
	TotalExpense     decimal.Decimal `json:"totalExpense" swaggertype:"number" example:"24000"`
	Savings          decimal.Decimal `json:"savings" swaggertype:"number" example:"6000"` // Negative when more was spent than earned
}

// CategorySummary is the income and expense breakdown of one month.
type CategorySummary struct {
	Income   []CategoryTotal `json:"income"`
	Expenses []CategoryTotal `json:"expenses"`
}

// CashFlowMonth is the income and expense total of one month.
type CashFlowMonth struct {
	Month   int             `json:"month" minimum:"1" maximum:"12" example:"3"`
	Income  decimal.Decimal `json:"income" swaggertype:"number" example:"2500"`
	Expense decimal.Decimal `json:"expense" swaggertype:"number" example:"2000"`
}
