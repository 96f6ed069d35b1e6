package reports

import (
	"time"

	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
)

// Window is a range of calendar days. Both From and Until are included.
type Window struct {
	From  time.Time
	Until time.Time
}

// MonthWindow returns the window from the first to the last day of the month.
func MonthWindow(year, month int) (Window, error) {
	if month < 1 || month > 12 || !validYear(year) {
		return Window{}, ErrInvalidPeriod
	}

	m := types.NewMonth(year, time.Month(month))
	return Window{From: m.FirstDay(), Until: m.LastDay()}, nil
}

// YearWindow returns the window from January 1st to December 31st of the year.
func YearWindow(year int) (Window, error) {
	if !validYear(year) {
		return Window{}, ErrInvalidPeriod
	}

	return Window{
		From:  types.NewMonth(year, time.January).FirstDay(),
		Until: types.NewMonth(year, time.December).LastDay(),
	}, nil
}

func validYear(year int) bool {
	return year >= 1 && year <= 9999
}

// filter returns the repository filter for transactions of type t in the window.
func (w Window) filter(t models.TransactionType) TransactionFilter {
	return TransactionFilter{
		Type:      t,
		FromDate:  w.From,
		UntilDate: w.Until,
	}
}
