package reports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/models"
	"golang.org/x/sync/errgroup"
)

// TransactionFilter restricts the transactions returned by a TransactionRepository.
//
// Zero values do not filter. FromDate and UntilDate are calendar days, both
// are included.
type TransactionFilter struct {
	Type          models.TransactionType
	FromDate      time.Time
	UntilDate     time.Time
	Category      string // Exact match
	CategoryMatch string // Glob pattern, "*" matches any sequence of characters
	Description   string // Substring
}

// TransactionRepository supplies the transactions of a user, newest first.
type TransactionRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID, filter TransactionFilter) ([]models.Transaction, error)
}

// BudgetRepository supplies the budgets of a user.
type BudgetRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Budget, error)
}

// Builder assembles reports from the transactions and budgets of a user.
//
// A Builder holds no state besides its repositories and is safe for concurrent use.
type Builder struct {
	transactions TransactionRepository
	budgets      BudgetRepository
}

func NewBuilder(transactions TransactionRepository, budgets BudgetRepository) Builder {
	return Builder{
		transactions: transactions,
		budgets:      budgets,
	}
}

// Monthly builds the report for one month of one user.
func (b Builder) Monthly(ctx context.Context, userID uuid.UUID, year, month int) (MonthlyReport, error) {
	window, err := MonthWindow(year, month)
	if err != nil {
		return MonthlyReport{}, err
	}

	var expenses, incomes []models.Transaction
	var budgets []models.Budget

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		expenses, err = b.transactions.FindByUser(gctx, userID, window.filter(models.TypeExpense))
		return
	})
	g.Go(func() (err error) {
		incomes, err = b.transactions.FindByUser(gctx, userID, window.filter(models.TypeIncome))
		return
	})
	g.Go(func() (err error) {
		budgets, err = b.budgets.FindByUser(gctx, userID)
		return
	})

	if err := g.Wait(); err != nil {
		return MonthlyReport{}, err
	}

	categories := ByCategory(expenses, models.TypeExpense)

	return MonthlyReport{
		Expenses:     categories,
		TotalIncome:  sum(incomes, models.TypeIncome),
		BudgetAlerts: Evaluate(categories, budgets),
	}, nil
}

// Yearly builds the report for one year of one user.
func (b Builder) Yearly(ctx context.Context, userID uuid.UUID, year int) (YearlyReport, error) {
	window, err := YearWindow(year)
	if err != nil {
		return YearlyReport{}, err
	}

	expenses, incomes, err := b.expensesAndIncomes(ctx, userID, window)
	if err != nil {
		return YearlyReport{}, err
	}

	monthlyExpenses := ByMonth(expenses, models.TypeExpense)
	monthlyIncomes := ByMonth(incomes, models.TypeIncome)

	totalIncome := sumMonths(monthlyIncomes)
	totalExpense := sumMonths(monthlyExpenses)

	return YearlyReport{
		MonthlyExpenses:  monthlyExpenses,
		MonthlyIncomes:   monthlyIncomes,
		CategoryExpenses: ByCategory(expenses, models.TypeExpense),
		TotalIncome:      totalIncome,
		TotalExpense:     totalExpense,
		Savings:          totalIncome.Sub(totalExpense),
	}, nil
}

// CategorySummary builds the income and expense breakdown per category for one month.
func (b Builder) CategorySummary(ctx context.Context, userID uuid.UUID, year, month int) (CategorySummary, error) {
	window, err := MonthWindow(year, month)
	if err != nil {
		return CategorySummary{}, err
	}

	expenses, incomes, err := b.expensesAndIncomes(ctx, userID, window)
	if err != nil {
		return CategorySummary{}, err
	}

	return CategorySummary{
		Income:   ByCategory(incomes, models.TypeIncome),
		Expenses: ByCategory(expenses, models.TypeExpense),
	}, nil
}

// CashFlow returns income and expense totals for all months of a year.
func (b Builder) CashFlow(ctx context.Context, userID uuid.UUID, year int) ([]CashFlowMonth, error) {
	window, err := YearWindow(year)
	if err != nil {
		return nil, err
	}

	expenses, incomes, err := b.expensesAndIncomes(ctx, userID, window)
	if err != nil {
		return nil, err
	}

	monthlyExpenses := ByMonth(expenses, models.TypeExpense)
	monthlyIncomes := ByMonth(incomes, models.TypeIncome)

	flow := make([]CashFlowMonth, 0, 12)
	for i := range monthlyIncomes {
		flow = append(flow, CashFlowMonth{
			Month:   monthlyIncomes[i].Month,
			Income:  monthlyIncomes[i].Total,
			Expense: monthlyExpenses[i].Total,
		})
	}

	return flow, nil
}

// expensesAndIncomes fetches the expense and income transactions in the window concurrently.
func (b Builder) expensesAndIncomes(ctx context.Context, userID uuid.UUID, window Window) (expenses, incomes []models.Transaction, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		expenses, err = b.transactions.FindByUser(gctx, userID, window.filter(models.TypeExpense))
		return
	})
	g.Go(func() (err error) {
		incomes, err = b.transactions.FindByUser(gctx, userID, window.filter(models.TypeIncome))
		return
	})

	if err = g.Wait(); err != nil {
		return nil, nil, err
	}

	return expenses, incomes, nil
}
