package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ledgerbook/backend/internal/models"
	lb_uuid "github.com/ledgerbook/backend/internal/uuid"
)

type URIID struct {
	ID lb_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// userID returns the ID of the user the request is made for.
//
// It must only be used on routes behind the user middleware.
func userID(c *gin.Context) uuid.UUID {
	return c.MustGet(string(models.ContextUserID)).(uuid.UUID)
}
