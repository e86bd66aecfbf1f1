package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	bankingdomain "github.com/covenantworks/covenant/internal/banking/domain"
	ledgerdomain "github.com/covenantworks/covenant/internal/ledger/domain"
	"github.com/shopspring/decimal"
)

// AccountSource loads the bank accounts feeding the balance buckets.
type AccountSource interface {
	ActiveAccounts(ctx context.Context, associationID string) ([]bankingdomain.BankAccount, error)
}

// EntrySource resolves GL account sets and sums ledger entries. The
// window is half-open: [from, to).
type EntrySource interface {
	AccountIDsByType(ctx context.Context, associationID string, accountType ledgerdomain.GLAccountType) ([]snowflake.ID, error)
	SumEntries(ctx context.Context, associationID string, entryType ledgerdomain.EntryType, accountIDs []snowflake.ID, from, to time.Time) (decimal.Decimal, error)
}
