package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/ledgerbook/backend/internal/controllers/v1"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/reports"
	"github.com/ledgerbook/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// seedMarch creates the transactions of March 2024 used by the report tests.
func seedMarch(t *testing.T) {
	for _, tr := range []v1.TransactionEditable{
		{Amount: decimal.NewFromFloat(100), Type: models.TypeExpense, Category: "food", Date: time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)},
		{Amount: decimal.NewFromFloat(50), Type: models.TypeExpense, Category: "food", Date: time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)},
		{Amount: decimal.NewFromFloat(800), Type: models.TypeExpense, Category: "rent", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Amount: decimal.NewFromFloat(2500), Type: models.TypeIncome, Category: "salary", Date: time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)},
		{Amount: decimal.NewFromFloat(70), Type: models.TypeExpense, Category: "food", Date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
		{Amount: decimal.NewFromFloat(40), Type: models.TypeExpense, Category: "food", Date: time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC)},
	} {
		_ = createTestTransaction(t, tr)
	}
}

func (suite *TestSuiteStandard) TestReportsMonthly() {
	seedMarch(suite.T())
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Category: "food", Limit: decimal.NewFromFloat(120)})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Category: "rent", Limit: decimal.NewFromFloat(1000)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/monthly?year=2024&month=3", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var rr v1.MonthlyReportResponse
	test.DecodeResponse(suite.T(), &r, &rr)

	report := rr.Data
	suite.Require().NotNil(report)
	suite.Assert().Nil(rr.Error)

	suite.Require().Len(report.Expenses, 2)
	suite.Assert().Equal("rent", report.Expenses[0].Category)
	suite.Assert().True(decimal.NewFromFloat(800).Equal(report.Expenses[0].Total))
	suite.Assert().Equal("food", report.Expenses[1].Category)
	suite.Assert().True(decimal.NewFromFloat(150).Equal(report.Expenses[1].Total))

	suite.Assert().True(decimal.NewFromFloat(2500).Equal(report.TotalIncome), "Income on the last second of the month must be included")

	suite.Require().Len(report.BudgetAlerts, 1)
	alert := report.BudgetAlerts[0]
	suite.Assert().Equal("food", alert.Category)
	suite.Assert().True(decimal.NewFromFloat(150).Equal(alert.Spent))
	suite.Assert().True(decimal.NewFromFloat(120).Equal(alert.Limit))
	suite.Assert().True(decimal.NewFromFloat(30).Equal(alert.Over))
}

func (suite *TestSuiteStandard) TestReportsMonthlyWithinBudget() {
	seedMarch(suite.T())
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Category: "food", Limit: decimal.NewFromFloat(200)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/monthly?year=2024&month=3", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var rr v1.MonthlyReportResponse
	test.DecodeResponse(suite.T(), &r, &rr)

	suite.Assert().NotNil(rr.Data.BudgetAlerts)
	suite.Assert().Len(rr.Data.BudgetAlerts, 0)
}

// TestReportsMonthlyEmpty verifies the exact response for a month without transactions.
func (suite *TestSuiteStandard) TestReportsMonthlyEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/monthly?year=2024&month=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{"data": {"expenses": [], "totalIncome": 0, "budgetAlerts": []}, "error": null}`, r.Body.String())
}

// TestReportsScopedToUser verifies that reports only contain the data of the requesting user.
func (suite *TestSuiteStandard) TestReportsScopedToUser() {
	seedMarch(suite.T())
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Category: "food", Limit: decimal.NewFromFloat(1)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/monthly?year=2024&month=3", "", test.UserHeader(uuid.NewString()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var rr v1.MonthlyReportResponse
	test.DecodeResponse(suite.T(), &r, &rr)

	suite.Assert().Len(rr.Data.Expenses, 0)
	suite.Assert().Len(rr.Data.BudgetAlerts, 0)
	suite.Assert().True(rr.Data.TotalIncome.IsZero())
}

func (suite *TestSuiteStandard) TestReportsYearly() {
	seedMarch(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/yearly?year=2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var rr v1.YearlyReportResponse
	test.DecodeResponse(suite.T(), &r, &rr)

	report := rr.Data
	suite.Require().NotNil(report)
	suite.Require().Len(report.MonthlyExpenses, 12)
	suite.Require().Len(report.MonthlyIncomes, 12)

	for i, m := range report.MonthlyExpenses {
		suite.Assert().Equal(i+1, m.Month)
	}

	suite.Assert().True(decimal.NewFromFloat(950).Equal(report.MonthlyExpenses[2].Total))
	suite.Assert().True(decimal.NewFromFloat(70).Equal(report.MonthlyExpenses[3].Total))
	suite.Assert().True(report.MonthlyExpenses[0].Total.IsZero())
	suite.Assert().True(decimal.NewFromFloat(2500).Equal(report.MonthlyIncomes[2].Total))

	suite.Require().Len(report.CategoryExpenses, 2)
	suite.Assert().Equal("rent", report.CategoryExpenses[0].Category)
	suite.Assert().Equal("food", report.CategoryExpenses[1].Category)
	suite.Assert().True(decimal.NewFromFloat(220).Equal(report.CategoryExpenses[1].Total))

	suite.Assert().True(decimal.NewFromFloat(2500).Equal(report.TotalIncome))
	suite.Assert().True(decimal.NewFromFloat(1020).Equal(report.TotalExpense))
	suite.Assert().True(decimal.NewFromFloat(1480).Equal(report.Savings))
}

func (suite *TestSuiteStandard) TestReportsCategorySummary() {
	seedMarch(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/categories?year=2024&month=3", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var rr v1.CategorySummaryResponse
	test.DecodeResponse(suite.T(), &r, &rr)

	suite.Require().Len(rr.Data.Income, 1)
	suite.Assert().Equal("salary", rr.Data.Income[0].Category)
	suite.Require().Len(rr.Data.Expenses, 2)
	suite.Assert().Equal("rent", rr.Data.Expenses[0].Category)
}

// TestReportsCategorySummaryDefaultsToCurrentMonth verifies that the current month is used
// when no period is given.
func (suite *TestSuiteStandard) TestReportsCategorySummaryDefaultsToCurrentMonth() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromFloat(12), Category: "coffee"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var rr v1.CategorySummaryResponse
	test.DecodeResponse(suite.T(), &r, &rr)

	suite.Require().Len(rr.Data.Expenses, 1)
	suite.Assert().Equal("coffee", rr.Data.Expenses[0].Category)
	suite.Assert().Len(rr.Data.Income, 0)
}

func (suite *TestSuiteStandard) TestReportsCashFlow() {
	seedMarch(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/cashflow?year=2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var rr v1.CashFlowResponse
	test.DecodeResponse(suite.T(), &r, &rr)

	suite.Require().Len(rr.Data, 12)
	suite.Assert().Equal(1, rr.Data[0].Month)
	suite.Assert().True(rr.Data[0].Income.IsZero())
	suite.Assert().True(decimal.NewFromFloat(2500).Equal(rr.Data[2].Income))
	suite.Assert().True(decimal.NewFromFloat(950).Equal(rr.Data[2].Expense))
	suite.Assert().True(decimal.NewFromFloat(70).Equal(rr.Data[3].Expense))
}

func (suite *TestSuiteStandard) TestReportsInvalidQuery() {
	tests := []struct {
		name string
		path string
		err  string
	}{
		{"Month 13", "monthly?year=2024&month=13", reports.ErrInvalidPeriod.Error()},
		{"Month 0", "monthly?year=2024&month=0", reports.ErrInvalidPeriod.Error()},
		{"Year 0", "yearly?year=0", reports.ErrInvalidPeriod.Error()},
		{"Year too large", "cashflow?year=10000", reports.ErrInvalidPeriod.Error()},
		{"Summary month", "categories?month=-1", reports.ErrInvalidPeriod.Error()},
		{"Month missing", "monthly?year=2024", ""},
		{"Year missing", "yearly", ""},
		{"Not a number", "monthly?year=2024&month=march", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			if tt.err != "" {
				assert.Equal(t, tt.err, test.DecodeError(t, r.Body.Bytes()))
				return
			}
			assert.NotEmpty(t, test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestReportsOptions() {
	for _, path := range []string{"monthly", "yearly", "categories", "cashflow"} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/reports/%s", path), "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestReportsDatabaseClosed() {
	suite.CloseDB()

	for _, path := range []string{"monthly?year=2024&month=3", "yearly?year=2024", "categories", "cashflow"} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/reports/%s", path), "")
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), reports.ErrRepositoryUnavailable.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestReportsYearlyExactAmounts() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.RequireFromString("12345678901.12345678"), Category: "rent", Date: time.Date(9999, 12, 31, 18, 0, 0, 0, time.UTC)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.RequireFromString("0.00000002"), Category: "rent", Date: time.Date(9999, 6, 5, 0, 0, 0, 0, time.UTC)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/yearly?year=9999", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var rr v1.YearlyReportResponse
	test.DecodeResponse(suite.T(), &r, &rr)

	suite.Require().NotNil(rr.Data)
	suite.Assert().Equal("12345678901.1234568", rr.Data.TotalExpense.String())
	suite.Assert().Equal("12345678901.12345678", rr.Data.MonthlyExpenses[11].Total.String())
	suite.Assert().Equal("-12345678901.1234568", rr.Data.Savings.String())
}
