// Package query filters in-memory collection snapshots. All filters are
// conjunctive: every supplied criterion must match, empty criteria always
// match, and input order is preserved so relevance equals seed order.
package query

import "strings"

// contains is the case-insensitive substring test shared by every textual
// criterion. The needle is known to be non-empty at the call sites.
func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func containsAny(values []string, needle string) bool {
	for _, value := range values {
		if contains(value, needle) {
			return true
		}
	}
	return false
}
