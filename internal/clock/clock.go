package clock

import "time"

// Clock abstracts time lookups so reporting windows stay testable.
// All consumers receive UTC instants; month and year boundaries are
// computed in UTC so aggregates are reproducible across deployments.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the host clock and normalizes to UTC.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// Fixed is a Clock pinned to a single instant, used in tests.
type Fixed struct {
	At time.Time
}

// Now returns the pinned instant in UTC.
func (f Fixed) Now() time.Time { return f.At.UTC() }
