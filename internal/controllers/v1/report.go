package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/httputil"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/reports"
	"github.com/ledgerbook/backend/internal/repository"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/monthly", OptionsReport)
	r.GET("/monthly", GetMonthlyReport)
	r.OPTIONS("/yearly", OptionsReport)
	r.GET("/yearly", GetYearlyReport)
	r.OPTIONS("/categories", OptionsReport)
	r.GET("/categories", GetCategorySummary)
	r.OPTIONS("/cashflow", OptionsReport)
	r.GET("/cashflow", GetCashFlow)
}

// builder returns a report builder reading from the database.
func builder() reports.Builder {
	return reports.NewBuilder(repository.Transactions{DB: models.DB}, repository.Budgets{DB: models.DB})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/monthly [options]
// @Router			/v1/reports/yearly [options]
// @Router			/v1/reports/categories [options]
// @Router			/v1/reports/cashflow [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Monthly report
// @Description	Returns the expenses per category, the total income and the budgets that have been exceeded in a month
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	MonthlyReportResponse
// @Failure		400		{object}	MonthlyReportResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	MonthlyReportResponse
// @Param			year	query		int	true	"Year"
// @Param			month	query		int	true	"Month, 1 to 12"
// @Router			/v1/reports/monthly [get]
func GetMonthlyReport(c *gin.Context) {
	var query QueryMonthly
	if err := c.ShouldBindQuery(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MonthlyReportResponse{
			Error: &s,
		})
		return
	}

	report, err := builder().Monthly(c.Request.Context(), userID(c), *query.Year, *query.Month)
	if err != nil {
		s := err.Error()
		_ = c.Error(err)
		c.JSON(status(err), MonthlyReportResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, MonthlyReportResponse{Data: &report})
}

// @Summary		Yearly report
// @Description	Returns expenses and income per month, expenses per category and the savings of a year
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	YearlyReportResponse
// @Failure		400		{object}	YearlyReportResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	YearlyReportResponse
// @Param			year	query		int	true	"Year"
// @Router			/v1/reports/yearly [get]
func GetYearlyReport(c *gin.Context) {
	var query QueryYearly
	if err := c.ShouldBindQuery(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, YearlyReportResponse{
			Error: &s,
		})
		return
	}

	report, err := builder().Yearly(c.Request.Context(), userID(c), *query.Year)
	if err != nil {
		s := err.Error()
		_ = c.Error(err)
		c.JSON(status(err), YearlyReportResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, YearlyReportResponse{Data: &report})
}

// @Summary		Category summary
// @Description	Returns income and expenses per category for a month
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	CategorySummaryResponse
// @Failure		400		{object}	CategorySummaryResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	CategorySummaryResponse
// @Param			year	query		int	false	"Year, defaults to the current year"
// @Param			month	query		int	false	"Month, 1 to 12, defaults to the current month"
// @Router			/v1/reports/categories [get]
func GetCategorySummary(c *gin.Context) {
	var query QueryPeriod
	if err := c.ShouldBindQuery(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategorySummaryResponse{
			Error: &s,
		})
		return
	}

	year, month := query.resolve(time.Now())

	summary, err := builder().CategorySummary(c.Request.Context(), userID(c), year, month)
	if err != nil {
		s := err.Error()
		_ = c.Error(err)
		c.JSON(status(err), CategorySummaryResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CategorySummaryResponse{Data: &summary})
}

// @Summary		Cash flow
// @Description	Returns the income and expense totals for every month of a year
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	CashFlowResponse
// @Failure		400		{object}	CashFlowResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	CashFlowResponse
// @Param			year	query		int	false	"Year, defaults to the current year"
// @Router			/v1/reports/cashflow [get]
func GetCashFlow(c *gin.Context) {
	var query QueryPeriod
	if err := c.ShouldBindQuery(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CashFlowResponse{
			Error: &s,
		})
		return
	}

	year, _ := query.resolve(time.Now())

	flow, err := builder().CashFlow(c.Request.Context(), userID(c), year)
	if err != nil {
		s := err.Error()
		_ = c.Error(err)
		c.JSON(status(err), CashFlowResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CashFlowResponse{Data: flow})
}
