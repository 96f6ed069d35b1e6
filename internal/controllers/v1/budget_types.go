package v1

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/repository"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	Category string              `json:"category" example:"food"`                                                                       // The category the limit applies to. Categories are matched exactly and case sensitively
	Limit    decimal.Decimal     `json:"limit" swaggertype:"number" example:"250" minimum:"0.00000001" maximum:"999999999999.99999999"` // The spending limit
	Period   models.BudgetPeriod `json:"period" example:"monthly" enums:"daily,weekly,monthly,yearly" default:"monthly"`                // The period of the budget. Alerts compare the limit to the totals of the report period as is
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		UserID:   userID,
		Category: strings.TrimSpace(editable.Category),
		Limit:    editable.Limit,
		Period:   editable.Period,
	}
}

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The budget itself
}

// Budget is the API v1 representation of a Budget.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Category: model.Category,
			Limit:    model.Limit,
			Period:   model.Period,
		},
		Links: BudgetLinks{
			Self: fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created or updated budgets
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this budget
	Data  *Budget `json:"data"`                                                          // Data for the budget
}

type BudgetQueryFilter struct {
	Category string              `form:"category"` // Exact category
	Period   models.BudgetPeriod `form:"period"`   // Period of the budget
	Offset   uint                `form:"offset"`   // The offset of the first Budget returned. Defaults to 0.
	Limit    int                 `form:"limit"`    // Maximum number of Budgets to return. Defaults to 50.
}

// filter returns the repository filter for the query.
func (f BudgetQueryFilter) filter() repository.BudgetFilter {
	return repository.BudgetFilter{
		Category: f.Category,
		Period:   f.Period,
	}
}
