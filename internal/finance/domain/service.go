package domain

import "context"

// Service computes financial summaries. GetFinancialSummary never fails:
// storage errors degrade individual figures to zero, and a failed account
// fetch yields the zero summary.
type Service interface {
	GetFinancialSummary(ctx context.Context, associationID string) FinancialSummary
}
