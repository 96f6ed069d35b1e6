package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields returns the names of all fields of filter whose query
// parameter, taken from the "form" struct tag, is set in the URL.
//
// This allows differentiating between a parameter that is not set and
// a parameter explicitly set to its zero value.
func GetURLFields(url *url.URL, filter any) []string {
	var setFields []string

	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("form")

		if url.Query().Has(param) {
			setFields = append(setFields, field)
		}
	}

	return setFields
}
