package reports

import (
	"github.com/ledgerbook/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// ByCategory sums the amounts of all transactions of type t per category.
//
// The result is sorted by total, highest first. Categories with the same
// total keep the order in which they first appear in transactions.
func ByCategory(transactions []models.Transaction, t models.TransactionType) []CategoryTotal {
	totals := make([]CategoryTotal, 0)
	index := make(map[string]int)

	for _, transaction := range transactions {
		if transaction.Type != t {
			continue
		}

		i, ok := index[transaction.Category]
		if !ok {
			i = len(totals)
			index[transaction.Category] = i
			totals = append(totals, CategoryTotal{
				Category: transaction.Category,
				Total:    decimal.Zero,
				Type:     t,
			})
		}

		totals[i].Total = totals[i].Total.Add(transaction.Amount)
	}

	slices.SortStableFunc(totals, func(a, b CategoryTotal) int {
		return b.Total.Cmp(a.Total)
	})

	return totals
}

// ByMonth sums the amounts of all transactions of type t per calendar month.
//
// The year of the transaction date is not considered. The result always
// contains all 12 months, January first.
func ByMonth(transactions []models.Transaction, t models.TransactionType) []MonthTotal {
	totals := make([]MonthTotal, 12)
	for i := range totals {
		totals[i] = MonthTotal{Month: i + 1, Total: decimal.Zero}
	}

	for _, transaction := range transactions {
		if transaction.Type != t {
			continue
		}

		m := transaction.Date.UTC().Month()
		totals[m-1].Total = totals[m-1].Total.Add(transaction.Amount)
	}

	return totals
}

// sum returns the sum of all transaction amounts of type t.
func sum(transactions []models.Transaction, t models.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, transaction := range transactions {
		if transaction.Type == t {
			total = total.Add(transaction.Amount)
		}
	}

	return total
}

func sumMonths(months []MonthTotal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range months {
		total = total.Add(m.Total)
	}

	return total
}
