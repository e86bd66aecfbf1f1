package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// GLAccountType classifies chart-of-accounts entries. Only Income and
// Expense drive the financial summary aggregates; the rest exist for
// balance sheet reporting.
type GLAccountType string

const (
	GLAccountTypeAsset     GLAccountType = "Asset"
	GLAccountTypeLiability GLAccountType = "Liability"
	GLAccountTypeEquity    GLAccountType = "Equity"
	GLAccountTypeIncome    GLAccountType = "Income"
	GLAccountTypeExpense   GLAccountType = "Expense"
)

// EntryType marks which side of a double-entry posting a ledger line
// carries. Amounts are stored non-negative; the sign lives here.
type EntryType string

const (
	EntryTypeDebit  EntryType = "debit"
	EntryTypeCredit EntryType = "credit"
)

// JournalStatus is the lifecycle state of a journal entry.
type JournalStatus string

const (
	JournalStatusDraft  JournalStatus = "draft"
	JournalStatusPosted JournalStatus = "posted"
)

// GLAccount defines a chart-of-accounts entry for one association.
type GLAccount struct {
	ID            snowflake.ID  `gorm:"primaryKey"`
	AssociationID string        `gorm:"type:text;not null;index;uniqueIndex:ux_gl_accounts_assoc_code,priority:1"`
	Code          string        `gorm:"type:text;not null;uniqueIndex:ux_gl_accounts_assoc_code,priority:2"`
	Name          string        `gorm:"type:text;not null"`
	Type          GLAccountType `gorm:"type:text;not null;index"`
	Category      string        `gorm:"type:text;not null;default:''"`
	IsActive      bool          `gorm:"not null;default:true"`
	CreatedAt     time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (GLAccount) TableName() string { return "gl_accounts" }

// JournalEntry is the header of a double-entry posting.
type JournalEntry struct {
	ID            snowflake.ID  `gorm:"primaryKey"`
	AssociationID string        `gorm:"type:text;not null;index"`
	EntryDate     time.Time     `gorm:"not null"`
	Reference     string        `gorm:"type:text;not null;default:''"`
	Description   string        `gorm:"type:text;not null;default:''"`
	Status        JournalStatus `gorm:"type:text;not null;default:'draft'"`
	PostedAt      *time.Time
	PostedBy      *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (JournalEntry) TableName() string { return "journal_entries" }

// LedgerEntry is one posting line. Amount is always non-negative; the
// entry type determines credit or debit treatment.
type LedgerEntry struct {
	ID              snowflake.ID    `gorm:"primaryKey"`
	AssociationID   string          `gorm:"type:text;not null;index"`
	JournalEntryID  snowflake.ID    `gorm:"not null;index"`
	GLAccountID     snowflake.ID    `gorm:"not null;index"`
	TransactionDate time.Time       `gorm:"not null"`
	EntryType       EntryType       `gorm:"type:text;not null"`
	Amount          decimal.Decimal `gorm:"type:numeric;not null"`
	CreatedAt       time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (LedgerEntry) TableName() string { return "ledger_entries" }
