package events

// Finance event types emitted through the outbox.
const (
	EventJournalEntryPosted      = "journal_entry_posted"
	EventBankTransactionRecorded = "bank_transaction_recorded"
	EventAccountBalanceUpdated   = "account_balance_updated"
	EventReportDataSeeded        = "report_data_seeded"
)

// JournalEntryPayload captures the minimal data consumers need to react
// to a posted journal entry.
type JournalEntryPayload struct {
	JournalEntryID string `json:"journal_entry_id"`
	Reference      string `json:"reference,omitempty"`
	PostedBy       string `json:"posted_by,omitempty"`
}

// ToMap converts the payload into an outbox-friendly map.
func (p JournalEntryPayload) ToMap() map[string]any {
	payload := map[string]any{
		"journal_entry_id": p.JournalEntryID,
	}
	if p.Reference != "" {
		payload["reference"] = p.Reference
	}
	if p.PostedBy != "" {
		payload["posted_by"] = p.PostedBy
	}
	return payload
}

// BankTransactionPayload captures the minimal data needed to roll up a
// recorded bank transaction.
type BankTransactionPayload struct {
	TransactionID   string `json:"transaction_id"`
	BankAccountID   string `json:"bank_account_id"`
	TransactionType string `json:"transaction_type"`
}

// ToMap converts the payload into an outbox-friendly map.
func (p BankTransactionPayload) ToMap() map[string]any {
	return map[string]any{
		"transaction_id":   p.TransactionID,
		"bank_account_id":  p.BankAccountID,
		"transaction_type": p.TransactionType,
	}
}
