package v1

import (
	"errors"
	"net/http"

	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/reports"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) || errors.Is(err, reports.ErrRepositoryUnavailable) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
