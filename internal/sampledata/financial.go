package sampledata

import (
	"fmt"
	"math"
)

// MonthlyFinancial is one month of generated income and expenses.
type MonthlyFinancial struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// BankAccountSnapshot is a generated account balance row.
type BankAccountSnapshot struct {
	Name        string  `json:"name"`
	AccountType string  `json:"account_type"`
	Balance     float64 `json:"balance"`
}

// BudgetRow compares budgeted against actual spend for one category.
type BudgetRow struct {
	Category string  `json:"category"`
	Budgeted float64 `json:"budgeted"`
	Actual   float64 `json:"actual"`
	Variance float64 `json:"variance"`
}

// ExpenseSlice is one slice of the expense breakdown.
type ExpenseSlice struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Percent  float64 `json:"percent"`
}

// SampleInvoice is a generated payable row.
type SampleInvoice struct {
	Number  string  `json:"number"`
	Vendor  string  `json:"vendor"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status"`
	DueDate string  `json:"due_date"`
}

// SummaryBlock carries the generated totals.
type SummaryBlock struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	NetIncome     float64 `json:"net_income"`
	CashOnHand    float64 `json:"cash_on_hand"`
}

// FinancialDataset is the full generated financial picture for one
// association.
type FinancialDataset struct {
	Months           []MonthlyFinancial    `json:"months"`
	BankAccounts     []BankAccountSnapshot `json:"bank_accounts"`
	Budget           []BudgetRow           `json:"budget"`
	ExpenseBreakdown []ExpenseSlice        `json:"expense_breakdown"`
	Invoices         []SampleInvoice       `json:"invoices"`
	Summary          SummaryBlock          `json:"summary"`
}

var monthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var baseBankAccounts = []BankAccountSnapshot{
	{Name: "Operating Account", AccountType: "operating", Balance: 125000},
	{Name: "Reserve Fund", AccountType: "reserve", Balance: 450000},
	{Name: "CD Investment", AccountType: "cd", Balance: 200000},
	{Name: "Payroll Account", AccountType: "operating", Balance: 35000},
}

var baseBudget = []BudgetRow{
	{Category: "Landscaping", Budgeted: 48000},
	{Category: "Utilities", Budgeted: 96000},
	{Category: "Insurance", Budgeted: 72000},
	{Category: "Maintenance", Budgeted: 120000},
	{Category: "Administration", Budgeted: 60000},
}

var baseExpenseSlices = []ExpenseSlice{
	{Category: "Maintenance", Percent: 30},
	{Category: "Utilities", Percent: 24},
	{Category: "Insurance", Percent: 18},
	{Category: "Landscaping", Percent: 16},
	{Category: "Administration", Percent: 12},
}

var invoiceVendors = []string{
	"GreenScape Landscaping",
	"Metro Water & Power",
	"Shield Insurance Group",
	"Ace Pool Services",
}

var invoiceStatuses = []string{"paid", "pending", "overdue", "approved"}

// FinancialData generates twelve months of income and expenses within
// fixed bands, four account snapshots, budget rows, expense slices, eight
// invoices and a summary block, all scaled by the association multiplier.
func FinancialData(associationID string) FinancialDataset {
	scale := ScaleFor(associationID)
	r := seededRand(associationID)

	months := make([]MonthlyFinancial, 0, len(monthNames))
	var totalIncome, totalExpenses float64
	for _, name := range monthNames {
		income := math.Round((30000 + r.Float64()*20000) * scale)
		expenses := math.Round((25000 + r.Float64()*15000) * scale)
		totalIncome += income
		totalExpenses += expenses
		months = append(months, MonthlyFinancial{Month: name, Income: income, Expenses: expenses})
	}

	accounts := make([]BankAccountSnapshot, len(baseBankAccounts))
	var cashOnHand float64
	for i, account := range baseBankAccounts {
		account.Balance = math.Round(account.Balance * scale)
		cashOnHand += account.Balance
		accounts[i] = account
	}

	budget := make([]BudgetRow, len(baseBudget))
	for i, row := range baseBudget {
		row.Budgeted = math.Round(row.Budgeted * scale)
		row.Actual = math.Round(row.Budgeted * (0.85 + r.Float64()*0.3))
		row.Variance = row.Budgeted - row.Actual
		budget[i] = row
	}

	slices := make([]ExpenseSlice, len(baseExpenseSlices))
	for i, slice := range baseExpenseSlices {
		slice.Amount = math.Round(totalExpenses * slice.Percent / 100)
		slices[i] = slice
	}

	invoices := make([]SampleInvoice, 0, 8)
	for i := 0; i < 8; i++ {
		invoices = append(invoices, SampleInvoice{
			Number:  "INV-" + monthNames[i] + "-" + lastTwo(associationID),
			Vendor:  invoiceVendors[i%len(invoiceVendors)],
			Amount:  math.Round((1500 + r.Float64()*8500) * scale),
			Status:  invoiceStatuses[i%len(invoiceStatuses)],
			DueDate: fmt.Sprintf("2025-%02d-15", i+1),
		})
	}

	return FinancialDataset{
		Months:           months,
		BankAccounts:     accounts,
		Budget:           budget,
		ExpenseBreakdown: slices,
		Invoices:         invoices,
		Summary: SummaryBlock{
			TotalIncome:   totalIncome,
			TotalExpenses: totalExpenses,
			NetIncome:     totalIncome - totalExpenses,
			CashOnHand:    cashOnHand,
		},
	}
}
