package domain

import "github.com/shopspring/decimal"

// ValidateLines checks the per-line invariants that hold even for
// drafts: a known entry type and a non-negative amount.
func ValidateLines(lines []LineInput) error {
	if len(lines) == 0 {
		return ErrInvalidEntryLines
	}
	for _, line := range lines {
		if line.Amount.IsNegative() {
			return ErrInvalidLineAmount
		}
		if line.EntryType != EntryTypeDebit && line.EntryType != EntryTypeCredit {
			return ErrInvalidLineType
		}
		if line.GLAccountID == 0 {
			return ErrInvalidAccount
		}
	}
	return nil
}

// ValidateBalanced ensures lines sum to a balanced double-entry posting.
// Required before a journal entry may be posted.
func ValidateBalanced(lines []LineInput) error {
	if len(lines) < 2 {
		return ErrInvalidEntryLines
	}
	if err := ValidateLines(lines); err != nil {
		return err
	}

	debitTotal := decimal.Zero
	creditTotal := decimal.Zero
	for _, line := range lines {
		switch line.EntryType {
		case EntryTypeDebit:
			debitTotal = debitTotal.Add(line.Amount)
		case EntryTypeCredit:
			creditTotal = creditTotal.Add(line.Amount)
		}
	}

	if !debitTotal.Equal(creditTotal) {
		return ErrUnbalancedEntry
	}
	return nil
}
