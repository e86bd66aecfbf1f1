package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// RecordTransactionRequest describes one transaction to append to the log.
type RecordTransactionRequest struct {
	AssociationID   string          `json:"association_id"`
	BankAccountID   snowflake.ID    `json:"bank_account_id"`
	TransactionDate time.Time       `json:"transaction_date"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType TransactionType `json:"transaction_type"`
	Description     string          `json:"description"`
	StatementID     *string         `json:"statement_id,omitempty"`
}

// Service appends bank transactions and keeps account balances
// consistent with the transaction log.
type Service interface {
	RecordTransaction(ctx context.Context, req RecordTransactionRequest) (*BankTransaction, error)
	UpdateAccountBalance(ctx context.Context, accountID snowflake.ID) (decimal.Decimal, error)
	ListAccounts(ctx context.Context, associationID string) ([]BankAccount, error)
	ListTransactions(ctx context.Context, associationID string) ([]BankTransaction, error)
}

var (
	ErrInvalidAssociation     = errors.New("invalid_association")
	ErrInvalidAccount         = errors.New("invalid_account")
	ErrAccountNotFound        = errors.New("account_not_found")
	ErrInvalidAmount          = errors.New("invalid_amount")
	ErrInvalidTransactionType = errors.New("invalid_transaction_type")
	ErrInvalidTransactionDate = errors.New("invalid_transaction_date")
)
