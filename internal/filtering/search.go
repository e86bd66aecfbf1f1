// Package filtering is a toolkit of small pure helpers the dashboard
// endpoints apply to already-fetched collections: text search,
// categorical filters, field-aware sorting, insurance expiration
// bucketing and percentage-change derivation. Nothing here touches
// storage and nothing here panics on missing data.
package filtering

import "strings"

// MatchAll is the categorical filter sentinel meaning "no filter".
const MatchAll = "all"

// MatchesSearch reports whether any field contains the query,
// case-insensitively. An empty query matches everything.
func MatchesSearch(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// CategoryMatch is an exact-match filter on one field. The empty string
// and the "all" sentinel are always permissive.
func CategoryMatch(filter, value string) bool {
	filter = strings.TrimSpace(filter)
	if filter == "" || strings.EqualFold(filter, MatchAll) {
		return true
	}
	return filter == value
}

// Predicate decides whether one item passes a filter.
type Predicate[T any] func(T) bool

// And combines predicates; every active predicate must pass. With no
// predicates the result matches everything.
func And[T any](predicates ...Predicate[T]) Predicate[T] {
	return func(item T) bool {
		for _, predicate := range predicates {
			if predicate != nil && !predicate(item) {
				return false
			}
		}
		return true
	}
}

// Apply returns the items passing the predicate, preserving order.
func Apply[T any](items []T, predicate Predicate[T]) []T {
	if predicate == nil {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if predicate(item) {
			out = append(out, item)
		}
	}
	return out
}
