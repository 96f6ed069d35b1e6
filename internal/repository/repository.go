// Package repository implements the report engine's data access on top of gorm.
package repository

import (
	"fmt"

	"github.com/ledgerbook/backend/internal/reports"
)

// unavailable marks an error of the data store for the report engine.
func unavailable(err error) error {
	return fmt.Errorf("%w: %w", reports.ErrRepositoryUnavailable, err)
}

// paginate returns the page of items starting at offset with at most limit items.
// A negative limit returns all items after the offset.
func paginate[T any](items []T, offset uint, limit int) []T {
	page := make([]T, 0)
	if offset >= uint(len(items)) {
		return page
	}

	items = items[offset:]
	if limit >= 0 && limit < len(items) {
		items = items[:limit]
	}

	return append(page, items...)
}
