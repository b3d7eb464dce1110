package postgrest

import "net/url"

// Direction is a sort direction for Order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Eq builds an equality filter: column=eq.value with the value URL-escaped.
func Eq(column, value string) string {
	return column + "=eq." + url.QueryEscape(value)
}

// Order builds an ordering clause: order=column.direction.
func Order(column string, dir Direction) string {
	return "order=" + column + "." + string(dir)
}

// deleteAllQuery is the store's wipe-everything predicate. A delete carrying
// it matches every row in the collection; there is no narrower scope.
const deleteAllQuery = "delete_all=true"
