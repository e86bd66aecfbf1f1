package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// LineInput is one requested posting line.
type LineInput struct {
	GLAccountID snowflake.ID    `json:"gl_account_id"`
	EntryType   EntryType       `json:"entry_type"`
	Amount      decimal.Decimal `json:"amount"`
}

// CreateJournalEntryRequest describes a draft journal entry with its lines.
type CreateJournalEntryRequest struct {
	AssociationID string      `json:"association_id"`
	EntryDate     time.Time   `json:"entry_date"`
	Reference     string      `json:"reference"`
	Description   string      `json:"description"`
	Lines         []LineInput `json:"lines"`
}

// Service writes journal entries and their ledger lines.
type Service interface {
	CreateJournalEntry(ctx context.Context, req CreateJournalEntryRequest) (*JournalEntry, error)
	PostJournalEntry(ctx context.Context, id snowflake.ID, postedBy string) error
	ListGLAccounts(ctx context.Context, associationID string) ([]GLAccount, error)
}

var (
	ErrInvalidAssociation = errors.New("invalid_association")
	ErrInvalidEntryDate   = errors.New("invalid_entry_date")
	ErrInvalidEntryLines  = errors.New("invalid_entry_lines")
	ErrInvalidLineAmount  = errors.New("invalid_line_amount")
	ErrInvalidLineType    = errors.New("invalid_line_type")
	ErrInvalidAccount     = errors.New("invalid_account")
	ErrUnbalancedEntry    = errors.New("unbalanced_entry")
	ErrJournalNotFound    = errors.New("journal_not_found")
	ErrAlreadyPosted      = errors.New("already_posted")
)
