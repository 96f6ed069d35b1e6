// Package types implements calendar types shared by the API and the report engine.
package types

import (
	"fmt"
	"time"
)

// Month is a month in a specific year, always the first instant of that month in UTC.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs, evaluated in UTC.
func MonthOf(t time.Time) Month {
	year, month, _ := t.UTC().Date()
	return NewMonth(year, month)
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year(), m.Number())
}

// Year returns the year of the month.
func (m Month) Year() int {
	return time.Time(m).Year()
}

// Number returns the month of the year, 1 to 12.
func (m Month) Number() int {
	return int(time.Time(m).Month())
}

// FirstDay returns midnight of the first day of the month.
func (m Month) FirstDay() time.Time {
	return time.Time(m)
}

// LastDay returns midnight of the last day of the month.
func (m Month) LastDay() time.Time {
	return time.Time(m).AddDate(0, 1, -1)
}
