package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/reports"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount      decimal.Decimal        `json:"amount" swaggertype:"number" example:"14.03" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount of the transaction
	Type        models.TransactionType `json:"type" example:"expense" enums:"income,expense"`                                                                   // Income or expense
	Category    string                 `json:"category" example:"food"`                                                                                         // Category of the transaction. Categories are matched exactly and case sensitively
	Date        time.Time              `json:"date" example:"2024-03-05T18:43:00.271152Z"`                                                                      // Date of the transaction. Defaults to the current time
	Description string                 `json:"description" example:"Weekly groceries" default:""`                                                               // A description, at most 500 characters
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:      userID,
		Amount:      editable.Amount,
		Type:        editable.Type,
		Category:    editable.Category,
		Date:        editable.Date,
		Description: editable.Description,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Amount:      model.Amount,
			Type:        model.Type,
			Category:    model.Category,
			Date:        model.Date,
			Description: model.Description,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	Type          models.TransactionType `form:"type"`                                            // Income or expense
	Category      string                 `form:"category"`                                        // Exact category
	CategoryMatch string                 `form:"categoryMatch"`                                   // Glob pattern for the category, e.g. "food*"
	Description   string                 `form:"description"`                                     // Description contains this string
	FromDate      time.Time              `form:"fromDate" time_format:"2006-01-02" time_utc:"1"`  // From this day, inclusive
	UntilDate     time.Time              `form:"untilDate" time_format:"2006-01-02" time_utc:"1"` // Until this day, inclusive
	Offset        uint                   `form:"offset"`                                          // The offset of the first Transaction returned. Defaults to 0.
	Limit         int                    `form:"limit"`                                           // Maximum number of transactions to return. Defaults to 50.
}

// filter returns the repository filter for the query.
func (f TransactionQueryFilter) filter() (reports.TransactionFilter, error) {
	if f.Type != "" && !f.Type.Valid() {
		return reports.TransactionFilter{}, models.ErrTransactionTypeInvalid
	}

	return reports.TransactionFilter{
		Type:          f.Type,
		Category:      f.Category,
		CategoryMatch: f.CategoryMatch,
		Description:   f.Description,
		FromDate:      f.FromDate,
		UntilDate:     f.UntilDate,
	}, nil
}
