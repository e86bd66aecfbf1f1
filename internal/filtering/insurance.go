package filtering

import (
	"sort"
	"time"
)

// ExpirationBucket classifies an insurance policy by how close its
// expiration date is to today.
type ExpirationBucket string

const (
	BucketExpired       ExpirationBucket = "expired"
	BucketExpiringSoon  ExpirationBucket = "expiring-soon"
	BucketExpiringLater ExpirationBucket = "expiring-later"
	BucketValid         ExpirationBucket = "valid"
)

var bucketPriority = map[ExpirationBucket]int{
	BucketExpired:       0,
	BucketExpiringSoon:  1,
	BucketExpiringLater: 2,
	BucketValid:         3,
}

// BucketFor places one expiration date relative to today. Comparisons
// are strictly-before: a policy expiring exactly 30 days out is not
// "soon", it lands in the later bucket.
func BucketFor(today, expiration time.Time) ExpirationBucket {
	switch {
	case expiration.Before(today):
		return BucketExpired
	case expiration.Before(today.AddDate(0, 0, 30)):
		return BucketExpiringSoon
	case expiration.Before(today.AddDate(0, 0, 90)):
		return BucketExpiringLater
	default:
		return BucketValid
	}
}

// Classified pairs an item with its expiration bucket.
type Classified[T any] struct {
	Item             T                `json:"item"`
	Bucket           ExpirationBucket `json:"bucket"`
	DaysToExpiration int              `json:"days_to_expiration"`
}

// ClassifyByExpiration buckets items by their expiration date and
// returns them ordered most urgent first: bucket priority, then days
// to expiration ascending. Items without an expiration date are
// excluded rather than guessed at.
func ClassifyByExpiration[T any](today time.Time, items []T, expiration func(T) *time.Time) []Classified[T] {
	classified := make([]Classified[T], 0, len(items))
	for _, item := range items {
		exp := expiration(item)
		if exp == nil {
			continue
		}
		classified = append(classified, Classified[T]{
			Item:             item,
			Bucket:           BucketFor(today, *exp),
			DaysToExpiration: int(exp.Sub(today).Hours() / 24),
		})
	}
	sort.SliceStable(classified, func(i, j int) bool {
		if bucketPriority[classified[i].Bucket] != bucketPriority[classified[j].Bucket] {
			return bucketPriority[classified[i].Bucket] < bucketPriority[classified[j].Bucket]
		}
		return classified[i].DaysToExpiration < classified[j].DaysToExpiration
	})
	return classified
}
