package reports

import (
	"github.com/ledgerbook/backend/internal/models"
)

// Evaluate compares expense totals per category against the budgets and
// returns an alert for every category where the total exceeds the limit.
//
// Alerts are in the order of expenses. Budget categories are matched exactly.
// The budget period is not taken into account, limits are compared against
// the totals as they are.
func Evaluate(expenses []CategoryTotal, budgets []models.Budget) []BudgetAlert {
	alerts := make([]BudgetAlert, 0)

	limits := make(map[string]models.Budget, len(budgets))
	for _, budget := range budgets {
		limits[budget.Category] = budget
	}

	for _, expense := range expenses {
		budget, ok := limits[expense.Category]
		if !ok {
			continue
		}

		if !expense.Total.GreaterThan(budget.Limit) {
			continue
		}

		alerts = append(alerts, BudgetAlert{
			Category: expense.Category,
			Spent:    expense.Total,
			Limit:    budget.Limit,
			Over:     expense.Total.Sub(budget.Limit),
		})
	}

	return alerts
}
