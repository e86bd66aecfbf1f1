package sampledata

import (
	"math"
	"strings"
)

// Report variant multipliers, matched by substring on the report type in
// priority order: budget, then bank/cash, then billing. Only the first
// matching rule applies.
const (
	budgetBudgetedFactor = 1.2
	budgetActualFactor   = 1.15
	bankInflateFactor    = 1.2
	bankDeflateFactor    = 0.9
	billingInvoiceFactor = 1.1
)

// ApplyReportVariant applies the report-type specific post-processing to
// a generated dataset. Reconciliation-flavored bank and cash reports
// deflate balances; every other bank report inflates them. The input is
// not mutated; adjusted sections are copied first.
func ApplyReportVariant(reportType string, data FinancialDataset) FinancialDataset {
	name := strings.ToLower(strings.TrimSpace(reportType))
	switch {
	case strings.Contains(name, "budget"):
		data.Budget = append([]BudgetRow(nil), data.Budget...)
		for i := range data.Budget {
			data.Budget[i].Budgeted = math.Round(data.Budget[i].Budgeted * budgetBudgetedFactor)
			data.Budget[i].Actual = math.Round(data.Budget[i].Actual * budgetActualFactor)
			data.Budget[i].Variance = data.Budget[i].Budgeted - data.Budget[i].Actual
		}
	case strings.Contains(name, "bank"), strings.Contains(name, "cash"):
		factor := bankInflateFactor
		if strings.Contains(name, "reconciliation") {
			factor = bankDeflateFactor
		}
		data.BankAccounts = append([]BankAccountSnapshot(nil), data.BankAccounts...)
		var cash float64
		for i := range data.BankAccounts {
			data.BankAccounts[i].Balance = math.Round(data.BankAccounts[i].Balance * factor)
			cash += data.BankAccounts[i].Balance
		}
		data.Summary.CashOnHand = cash
	case strings.Contains(name, "billing"):
		data.Invoices = append([]SampleInvoice(nil), data.Invoices...)
		for i := range data.Invoices {
			data.Invoices[i].Amount = math.Round(data.Invoices[i].Amount * billingInvoiceFactor)
		}
	}
	return data
}
