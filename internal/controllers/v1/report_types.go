package v1

import (
	"time"

	"github.com/ledgerbook/backend/internal/reports"
	"github.com/ledgerbook/backend/internal/types"
)

type QueryMonthly struct {
	Year  *int `form:"year" binding:"required" example:"2024"` // Year of the report
	Month *int `form:"month" binding:"required" example:"3"`   // Month of the report, 1 to 12
}

type QueryYearly struct {
	Year *int `form:"year" binding:"required" example:"2024"` // Year of the report
}

// QueryPeriod is a period that defaults to the current month or year.
type QueryPeriod struct {
	Year  *int `form:"year" example:"2024"` // Year, defaults to the current year
	Month *int `form:"month" example:"3"`   // Month, 1 to 12, defaults to the current month
}

// resolve returns year and month of the query, defaulting to the month of now.
func (q QueryPeriod) resolve(now time.Time) (int, int) {
	current := types.MonthOf(now)

	year := current.Year()
	if q.Year != nil {
		year = *q.Year
	}

	month := current.Number()
	if q.Month != nil {
		month = *q.Month
	}

	return year, month
}

type MonthlyReportResponse struct {
	Data  *reports.MonthlyReport `json:"data"`                                                                            // The report
	Error *string                `json:"error" example:"the requested period is invalid, month must be between 1 and 12"` // The error, if any occurred
}

type YearlyReportResponse struct {
	Data  *reports.YearlyReport `json:"data"`                                                                            // The report
	Error *string               `json:"error" example:"the requested period is invalid, month must be between 1 and 12"` // The error, if any occurred
}

type CategorySummaryResponse struct {
	Data  *reports.CategorySummary `json:"data"`                                                                            // The category summary
	Error *string                  `json:"error" example:"the requested period is invalid, month must be between 1 and 12"` // The error, if any occurred
}

type CashFlowResponse struct {
	Data  []reports.CashFlowMonth `json:"data"`                                                                            // Income and expense for each month, January first
	Error *string                 `json:"error" example:"the requested period is invalid, month must be between 1 and 12"` // The error, if any occurred
}
