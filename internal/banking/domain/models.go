package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// AccountType buckets bank accounts for the financial summary. Anything
// outside operating and reserve counts as "other".
type AccountType string

const (
	AccountTypeOperating AccountType = "operating"
	AccountTypeReserve   AccountType = "reserve"
	AccountTypeOther     AccountType = "other"
)

// TransactionType determines the credit or debit treatment of a
// transaction; stored amounts are always positive.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeTransfer   TransactionType = "transfer"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypePayment    TransactionType = "payment"
	TransactionTypeFee        TransactionType = "fee"
)

// CreditTypes lists the transaction types that increase a balance.
var CreditTypes = []TransactionType{TransactionTypeDeposit, TransactionTypeTransfer}

// DebitTypes lists the transaction types that decrease a balance.
var DebitTypes = []TransactionType{TransactionTypeWithdrawal, TransactionTypePayment, TransactionTypeFee}

// BankAccount holds a materialized running balance, recomputed from the
// transaction log rather than maintained incrementally.
type BankAccount struct {
	ID            snowflake.ID    `gorm:"primaryKey" json:"id"`
	AssociationID string          `gorm:"type:text;not null;index" json:"association_id"`
	Name          string          `gorm:"type:text;not null" json:"name"`
	AccountType   AccountType     `gorm:"type:text;not null;default:'operating'" json:"account_type"`
	Balance       decimal.Decimal `gorm:"type:numeric;not null" json:"balance"`
	IsActive      bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (BankAccount) TableName() string { return "bank_accounts" }

// BankTransaction is one row of the account's transaction log.
type BankTransaction struct {
	ID              snowflake.ID    `gorm:"primaryKey" json:"id"`
	AssociationID   string          `gorm:"type:text;not null;index" json:"association_id"`
	BankAccountID   snowflake.ID    `gorm:"not null;index" json:"bank_account_id"`
	TransactionDate time.Time       `gorm:"not null" json:"transaction_date"`
	Amount          decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	TransactionType TransactionType `gorm:"type:text;not null" json:"transaction_type"`
	Description     string          `gorm:"type:text;not null;default:''" json:"description"`
	IsReconciled    bool            `gorm:"not null;default:false" json:"is_reconciled"`
	StatementID     *string         `gorm:"type:text" json:"statement_id,omitempty"`
	CreatedAt       time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (BankTransaction) TableName() string { return "bank_transactions" }

// IsCredit reports whether the type increases the account balance.
func (t TransactionType) IsCredit() bool {
	return t == TransactionTypeDeposit || t == TransactionTypeTransfer
}

// IsDebit reports whether the type decreases the account balance.
func (t TransactionType) IsDebit() bool {
	return t == TransactionTypeWithdrawal || t == TransactionTypePayment || t == TransactionTypeFee
}
