package filtering

// Change is a derived period-over-period movement for a metric card.
type Change struct {
	Percent   float64 `json:"percent"`
	Favorable bool    `json:"favorable"`
}

// PercentChange derives the percentage movement from previous to
// current. A zero previous value reports no change rather than
// dividing by zero. For cost-like metrics pass lowerIsBetter so a drop
// reads as favorable.
func PercentChange(current, previous float64, lowerIsBetter bool) Change {
	if previous == 0 {
		return Change{Percent: 0, Favorable: !lowerIsBetter || current <= 0}
	}
	percent := (current - previous) / previous * 100
	favorable := percent >= 0
	if lowerIsBetter {
		favorable = percent <= 0
	}
	return Change{Percent: percent, Favorable: favorable}
}
