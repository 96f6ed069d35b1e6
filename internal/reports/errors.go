package reports

import "errors"

var (
	ErrInvalidPeriod         = errors.New("the requested period is invalid, month must be between 1 and 12 and year between 1 and 9999")
	ErrRepositoryUnavailable = errors.New("the data store could not be reached")
)
