package utils

import "reflect"

// ColumnList returns the list of "db" tags of the struct T, prefixed if asked.
// Used by dbmodels to keep SELECT column lists in sync with the row structs.
func ColumnList[T any](prefixes ...string) []string {
	var value T
	t := reflect.TypeOf(value)

	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag, ok := t.Field(i).Tag.Lookup("db")
		if !ok || tag == "-" {
			continue
		}
		column := tag
		for _, prefix := range prefixes {
			column = prefix + "." + column
		}
		columns = append(columns, column)
	}
	return columns
}
