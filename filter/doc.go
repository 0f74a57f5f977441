// Package filter selects rows with expr-lang expressions such as
//
//	has("$.id") && get("$.status") == "active"
package filter
