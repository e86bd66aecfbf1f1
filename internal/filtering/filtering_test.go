package filtering

import (
	"testing"
	"time"
)

func TestMatchesSearch(t *testing.T) {
	if !MatchesSearch("", "anything") {
		t.Fatal("empty query must match everything")
	}
	if !MatchesSearch("ACME", "Acme Plumbing", "vendor") {
		t.Fatal("expected case-insensitive match")
	}
	if MatchesSearch("roof", "Acme Plumbing", "plumbing") {
		t.Fatal("expected no match")
	}
	if !MatchesSearch("  acme  ", "Acme Plumbing") {
		t.Fatal("expected trimmed query to match")
	}
}

func TestCategoryMatch(t *testing.T) {
	if !CategoryMatch("", "deposit") {
		t.Fatal("empty filter must be permissive")
	}
	if !CategoryMatch("all", "deposit") {
		t.Fatal("all sentinel must be permissive")
	}
	if !CategoryMatch("deposit", "deposit") {
		t.Fatal("expected exact match")
	}
	if CategoryMatch("deposit", "withdrawal") {
		t.Fatal("expected mismatch")
	}
}

func TestAndCombinesPredicates(t *testing.T) {
	type txn struct {
		Description string
		Type        string
	}
	items := []txn{
		{"Pool repair", "payment"},
		{"Pool deposit refund", "deposit"},
		{"Landscaping", "payment"},
	}
	predicate := And(
		func(item txn) bool { return MatchesSearch("pool", item.Description) },
		func(item txn) bool { return CategoryMatch("payment", item.Type) },
	)
	got := Apply(items, predicate)
	if len(got) != 1 || got[0].Description != "Pool repair" {
		t.Fatalf("expected single match, got %+v", got)
	}
}

func TestAndWithNoPredicatesMatchesAll(t *testing.T) {
	if !And[int]()(42) {
		t.Fatal("empty And must match")
	}
}

func TestSortStateToggle(t *testing.T) {
	var state SortState
	state.Toggle("name")
	if state.Field != "name" || state.Descending {
		t.Fatalf("expected name ascending, got %+v", state)
	}
	state.Toggle("name")
	if !state.Descending {
		t.Fatalf("expected same field to flip descending, got %+v", state)
	}
	state.Toggle("amount")
	if state.Field != "amount" || state.Descending {
		t.Fatalf("expected new field to reset ascending, got %+v", state)
	}
}

func TestSortByDirection(t *testing.T) {
	names := []string{"delta", "Alpha", "charlie"}
	SortBy(names, SortState{Field: "name"}, func(a, b string) int {
		return CompareStrings(a, b)
	})
	if names[0] != "Alpha" || names[2] != "delta" {
		t.Fatalf("expected case-insensitive ascending order, got %v", names)
	}

	amounts := []float64{10, 300, 25}
	SortBy(amounts, SortState{Field: "amount", Descending: true}, CompareFloats)
	if amounts[0] != 300 || amounts[2] != 10 {
		t.Fatalf("expected descending order, got %v", amounts)
	}
}

func TestBucketForBoundaries(t *testing.T) {
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name       string
		expiration time.Time
		want       ExpirationBucket
	}{
		{"yesterday", today.AddDate(0, 0, -1), BucketExpired},
		{"today", today, BucketExpiringSoon},
		{"in 29 days", today.AddDate(0, 0, 29), BucketExpiringSoon},
		// Exactly 30 days out is not strictly before the 30-day mark.
		{"exactly 30 days", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), BucketExpiringLater},
		{"in 89 days", today.AddDate(0, 0, 89), BucketExpiringLater},
		{"exactly 90 days", today.AddDate(0, 0, 90), BucketValid},
		{"next year", today.AddDate(1, 0, 0), BucketValid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BucketFor(today, tc.expiration); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestClassifyByExpirationOrdersByUrgency(t *testing.T) {
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	type policy struct {
		Name    string
		Expires *time.Time
	}
	date := func(days int) *time.Time {
		d := today.AddDate(0, 0, days)
		return &d
	}
	items := []policy{
		{"valid", date(200)},
		{"soon", date(10)},
		{"later", date(45)},
		{"expired", date(-5)},
		{"no date", nil},
		{"sooner", date(3)},
	}

	classified := ClassifyByExpiration(today, items, func(p policy) *time.Time { return p.Expires })
	if len(classified) != 5 {
		t.Fatalf("expected dateless item excluded, got %d items", len(classified))
	}
	order := make([]string, 0, len(classified))
	for _, c := range classified {
		order = append(order, c.Item.Name)
	}
	want := []string{"expired", "sooner", "soon", "later", "valid"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}
	if classified[1].DaysToExpiration != 3 {
		t.Fatalf("expected 3 days to expiration, got %d", classified[1].DaysToExpiration)
	}
}

func TestPercentChange(t *testing.T) {
	change := PercentChange(120, 100, false)
	if change.Percent != 20 || !change.Favorable {
		t.Fatalf("expected favorable +20%%, got %+v", change)
	}

	change = PercentChange(80, 100, true)
	if change.Percent != -20 || !change.Favorable {
		t.Fatalf("expected favorable -20%% for cost metric, got %+v", change)
	}

	change = PercentChange(120, 100, true)
	if change.Favorable {
		t.Fatalf("expected rising cost to be unfavorable, got %+v", change)
	}

	change = PercentChange(50, 0, false)
	if change.Percent != 0 {
		t.Fatalf("expected zero previous to report no change, got %+v", change)
	}

	// The denominator is the signed previous value, not its magnitude.
	change = PercentChange(50, -100, false)
	if change.Percent != -150 {
		t.Fatalf("expected -150%% against a negative base, got %+v", change)
	}
}
