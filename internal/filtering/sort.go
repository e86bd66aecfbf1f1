package filtering

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var collator = collate.New(language.English, collate.IgnoreCase)

// SortState tracks the active sort column and direction. Selecting the
// same field again flips direction; selecting a new field resets to
// ascending.
type SortState struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// Toggle applies one field selection to the state.
func (s *SortState) Toggle(field string) {
	if s.Field == field {
		s.Descending = !s.Descending
		return
	}
	s.Field = field
	s.Descending = false
}

// CompareStrings is a locale-aware string comparison.
func CompareStrings(a, b string) int {
	return collator.CompareString(a, b)
}

// CompareFloats orders numeric fields by subtraction.
func CompareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// SortBy stably sorts items with the comparator, honoring the state's
// direction. A nil comparator leaves the slice untouched.
func SortBy[T any](items []T, state SortState, compare func(a, b T) int) {
	if compare == nil {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		result := compare(items[i], items[j])
		if state.Descending {
			return result > 0
		}
		return result < 0
	})
}
