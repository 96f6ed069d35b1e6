package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/ledgerbook/backend/internal/controllers/v1"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// createTestBudget creates or updates a budget via the v1 API.
func createTestBudget(t *testing.T, budget v1.BudgetEditable, headers ...map[string]string) v1.BudgetResponse {
	if budget.Category == "" {
		budget.Category = "food"
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", []v1.BudgetEditable{budget}, headers...)
	test.AssertHTTPStatus(t, &r, http.StatusCreated)

	var br v1.BudgetCreateResponse
	test.DecodeResponse(t, &r, &br)

	return br.Data[0]
}

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	tests := []struct {
		name   string
		body   v1.BudgetEditable
		status int
		err    error
	}{
		{"Default period", v1.BudgetEditable{Category: "food", Limit: decimal.NewFromFloat(120)}, http.StatusCreated, nil},
		{"Yearly", v1.BudgetEditable{Category: "travel", Limit: decimal.NewFromFloat(2000), Period: models.PeriodYearly}, http.StatusCreated, nil},
		{"No category", v1.BudgetEditable{Limit: decimal.NewFromFloat(1)}, http.StatusBadRequest, models.ErrBudgetCategoryMissing},
		{"Zero limit", v1.BudgetEditable{Category: "rent"}, http.StatusBadRequest, models.ErrBudgetLimitNotPositive},
		{"Negative limit", v1.BudgetEditable{Category: "rent", Limit: decimal.NewFromFloat(-10)}, http.StatusBadRequest, models.ErrBudgetLimitNotPositive},
		{"Invalid period", v1.BudgetEditable{Category: "rent", Limit: decimal.NewFromFloat(10), Period: "hourly"}, http.StatusBadRequest, models.ErrBudgetPeriodInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", []v1.BudgetEditable{tt.body})
			test.AssertHTTPStatus(t, &r, tt.status)

			var br v1.BudgetCreateResponse
			test.DecodeResponse(t, &r, &br)

			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), *br.Data[0].Error)
				return
			}

			assert.True(t, tt.body.Limit.Equal(br.Data[0].Data.Limit))
			assert.Equal(t, fmt.Sprintf("http://example.com/v1/budgets/%s", br.Data[0].Data.ID), br.Data[0].Data.Links.Self)

			if tt.body.Period == "" {
				assert.Equal(t, models.PeriodMonthly, br.Data[0].Data.Period)
			}
		})
	}
}

// TestBudgetsCreateUpserts verifies that there is only one budget per category and user.
func (suite *TestSuiteStandard) TestBudgetsCreateUpserts() {
	first := createTestBudget(suite.T(), v1.BudgetEditable{Category: "food", Limit: decimal.NewFromFloat(120)})
	second := createTestBudget(suite.T(), v1.BudgetEditable{Category: " food ", Limit: decimal.NewFromFloat(200), Period: models.PeriodWeekly})
	other := createTestBudget(suite.T(), v1.BudgetEditable{Category: "food", Limit: decimal.NewFromFloat(50)}, test.UserHeader(uuid.NewString()))

	suite.Assert().Equal(first.Data.ID, second.Data.ID, "The budget must be updated, not created")
	suite.Assert().NotEqual(first.Data.ID, other.Data.ID, "Budgets of other users must not be touched")
	suite.Assert().True(decimal.NewFromFloat(200).Equal(second.Data.Limit))
	suite.Assert().Equal(models.PeriodWeekly, second.Data.Period)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var lr v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &lr)
	suite.Require().Len(lr.Data, 1)
	suite.Assert().True(decimal.NewFromFloat(200).Equal(lr.Data[0].Limit))
}

func (suite *TestSuiteStandard) TestBudgetsList() {
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Category: "rent", Limit: decimal.NewFromFloat(1000)})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Category: "food", Limit: decimal.NewFromFloat(300)})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Category: "travel", Limit: decimal.NewFromFloat(2000), Period: models.PeriodYearly})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Category: "food", Limit: decimal.NewFromFloat(10)}, test.UserHeader(uuid.NewString()))

	tests := []struct {
		name       string
		query      string
		categories []string
		total      int64
	}{
		{"All, ordered by category", "", []string{"food", "rent", "travel"}, 3},
		{"Category", "category=rent", []string{"rent"}, 1},
		{"Period", "period=monthly", []string{"food", "rent"}, 2},
		{"Limit", "limit=1", []string{"food"}, 3},
		{"Offset", "offset=2", []string{"travel"}, 3},
		{"No match", "category=cinema", []string{}, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var lr v1.BudgetListResponse
			test.DecodeResponse(t, &r, &lr)

			categories := make([]string, 0)
			for _, b := range lr.Data {
				categories = append(categories, b.Category)
			}

			assert.Equal(t, tt.categories, categories)
			assert.Equal(t, len(tt.categories), lr.Pagination.Count)
			assert.Equal(t, tt.total, lr.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsListInvalidPeriod() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?period=hourly", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal(models.ErrBudgetPeriodInvalid.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestBudgetsGet() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Limit: decimal.NewFromFloat(300)})

	tests := []struct {
		name    string
		path    string
		headers map[string]string
		status  int
	}{
		{"Own budget", budget.Data.Links.Self, nil, http.StatusOK},
		{"Other user", budget.Data.Links.Self, test.UserHeader(uuid.NewString()), http.StatusNotFound},
		{"Does not exist", fmt.Sprintf("http://example.com/v1/budgets/%s", uuid.New()), nil, http.StatusNotFound},
		{"Invalid UUID", "http://example.com/v1/budgets/NotParseableAsUUID", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.path, "", tt.headers)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNotFound {
				assert.Equal(t, "there is no budget matching your query", test.DecodeError(t, r.Body.Bytes()))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Category: "food", Limit: decimal.NewFromFloat(300)})
	_ = createTestBudget(suite.T(), v1.BudgetEditable{Category: "rent", Limit: decimal.NewFromFloat(1000)})

	r := test.Request(suite.T(), http.MethodPatch, budget.Data.Links.Self, map[string]any{"limit": 350.5})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var br v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &br)
	suite.Assert().True(decimal.NewFromFloat(350.5).Equal(br.Data.Limit))
	suite.Assert().Equal("food", br.Data.Category)
	suite.Assert().Equal(models.PeriodMonthly, br.Data.Period)

	tests := []struct {
		name    string
		body    any
		headers map[string]string
		status  int
		err     string
	}{
		{"Category taken", map[string]any{"category": "rent"}, nil, http.StatusBadRequest, models.ErrBudgetCategoryNotUnique.Error()},
		{"Zero limit", map[string]any{"limit": 0}, nil, http.StatusBadRequest, models.ErrBudgetLimitNotPositive.Error()},
		{"Invalid period", map[string]any{"period": "hourly"}, nil, http.StatusBadRequest, models.ErrBudgetPeriodInvalid.Error()},
		{"Other user", map[string]any{"limit": 1}, test.UserHeader(uuid.NewString()), http.StatusNotFound, "there is no budget matching your query"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, budget.Data.Links.Self, tt.body, tt.headers)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.err, test.DecodeError(t, r.Body.Bytes()))
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Limit: decimal.NewFromFloat(300)})

	r := test.Request(suite.T(), http.MethodDelete, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Limit: decimal.NewFromFloat(300)})

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"List", "http://example.com/v1/budgets", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Detail", budget.Data.Links.Self, http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"Does not exist", fmt.Sprintf("http://example.com/v1/budgets/%s", uuid.New()), http.StatusNotFound, ""},
		{"Invalid UUID", "http://example.com/v1/budgets/NotParseableAsUUID", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsDatabaseClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", []v1.BudgetEditable{{Category: "food", Limit: decimal.NewFromFloat(1)}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
