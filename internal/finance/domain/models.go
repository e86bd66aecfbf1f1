package domain

import "github.com/shopspring/decimal"

// FinancialSummary is the derived dashboard figure set for one
// association. It is recomputed on demand and never persisted.
type FinancialSummary struct {
	OperatingBalance   decimal.Decimal `json:"operating_balance"`
	ReserveBalance     decimal.Decimal `json:"reserve_balance"`
	OtherBalance       decimal.Decimal `json:"other_balance"`
	TotalAssets        decimal.Decimal `json:"total_assets"`
	TotalLiabilities   decimal.Decimal `json:"total_liabilities"`
	MonthlyIncome      decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses    decimal.Decimal `json:"monthly_expenses"`
	YearToDateIncome   decimal.Decimal `json:"year_to_date_income"`
	YearToDateExpenses decimal.Decimal `json:"year_to_date_expenses"`
}

// ZeroSummary is the safe default returned when the account fetch fails.
func ZeroSummary() FinancialSummary {
	return FinancialSummary{
		OperatingBalance:   decimal.Zero,
		ReserveBalance:     decimal.Zero,
		OtherBalance:       decimal.Zero,
		TotalAssets:        decimal.Zero,
		TotalLiabilities:   decimal.Zero,
		MonthlyIncome:      decimal.Zero,
		MonthlyExpenses:    decimal.Zero,
		YearToDateIncome:   decimal.Zero,
		YearToDateExpenses: decimal.Zero,
	}
}
