package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	bankingdomain "github.com/covenantworks/covenant/internal/banking/domain"
	"github.com/covenantworks/covenant/internal/cache"
	"github.com/covenantworks/covenant/internal/clock"
	financedomain "github.com/covenantworks/covenant/internal/finance/domain"
	ledgerdomain "github.com/covenantworks/covenant/internal/ledger/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const summaryCacheTTL = 30 * time.Second

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
}

type Service struct {
	log      *zap.Logger
	clock    clock.Clock
	accounts financedomain.AccountSource
	entries  financedomain.EntrySource

	summaryCache cache.Cache[string, financedomain.FinancialSummary]
}

func NewService(p ServiceParam) financedomain.Service {
	return &Service{
		log:          p.Log.Named("finance.service"),
		clock:        p.Clock,
		accounts:     &gormAccountSource{db: p.DB},
		entries:      &gormEntrySource{db: p.DB},
		summaryCache: cache.NewTTLCache[string, financedomain.FinancialSummary](),
	}
}

// GetFinancialSummary computes the dashboard summary for one
// association. Balance buckets come from the materialized bank account
// balances; income and expense figures come from ledger entry sums
// filtered by GL account type over UTC month and year-to-date windows.
// Individual query failures zero only their own figure.
func (s *Service) GetFinancialSummary(ctx context.Context, associationID string) financedomain.FinancialSummary {
	associationID = strings.TrimSpace(associationID)
	if associationID == "" {
		return financedomain.ZeroSummary()
	}

	if cached, ok := s.summaryCache.Get(associationID); ok {
		return cached
	}

	accounts, err := s.accounts.ActiveAccounts(ctx, associationID)
	if err != nil {
		s.log.Warn("bank account fetch failed, returning zero summary",
			zap.String("association_id", associationID),
			zap.Error(err))
		return financedomain.ZeroSummary()
	}

	summary := financedomain.ZeroSummary()
	for _, account := range accounts {
		switch account.AccountType {
		case bankingdomain.AccountTypeOperating:
			summary.OperatingBalance = summary.OperatingBalance.Add(account.Balance)
		case bankingdomain.AccountTypeReserve:
			summary.ReserveBalance = summary.ReserveBalance.Add(account.Balance)
		default:
			summary.OtherBalance = summary.OtherBalance.Add(account.Balance)
		}
	}
	summary.TotalAssets = summary.OperatingBalance.
		Add(summary.ReserveBalance).
		Add(summary.OtherBalance)
	// Liability-side aggregation is not implemented; the figure stays 0.

	now := s.clock.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	incomeIDs := s.accountIDs(ctx, associationID, ledgerdomain.GLAccountTypeIncome)
	expenseIDs := s.accountIDs(ctx, associationID, ledgerdomain.GLAccountTypeExpense)

	summary.MonthlyIncome = s.sum(ctx, associationID, ledgerdomain.EntryTypeCredit, incomeIDs, monthStart, monthEnd, "monthly income")
	summary.MonthlyExpenses = s.sum(ctx, associationID, ledgerdomain.EntryTypeDebit, expenseIDs, monthStart, monthEnd, "monthly expenses")
	summary.YearToDateIncome = s.sum(ctx, associationID, ledgerdomain.EntryTypeCredit, incomeIDs, yearStart, now, "ytd income")
	summary.YearToDateExpenses = s.sum(ctx, associationID, ledgerdomain.EntryTypeDebit, expenseIDs, yearStart, now, "ytd expenses")

	s.summaryCache.Set(associationID, summary, summaryCacheTTL)
	return summary
}

// accountIDs resolves the GL accounts of one type; a failed lookup
// degrades to an empty set so dependent sums report zero.
func (s *Service) accountIDs(ctx context.Context, associationID string, accountType ledgerdomain.GLAccountType) []snowflake.ID {
	ids, err := s.entries.AccountIDsByType(ctx, associationID, accountType)
	if err != nil {
		s.log.Warn("gl account lookup failed",
			zap.String("association_id", associationID),
			zap.String("account_type", string(accountType)),
			zap.Error(err))
		return nil
	}
	return ids
}

func (s *Service) sum(ctx context.Context, associationID string, entryType ledgerdomain.EntryType, accountIDs []snowflake.ID, from, to time.Time, figure string) decimal.Decimal {
	if len(accountIDs) == 0 {
		return decimal.Zero
	}
	total, err := s.entries.SumEntries(ctx, associationID, entryType, accountIDs, from, to)
	if err != nil {
		s.log.Warn("ledger sum failed, degrading figure to zero",
			zap.String("association_id", associationID),
			zap.String("figure", figure),
			zap.Error(err))
		return decimal.Zero
	}
	return total
}

type gormAccountSource struct {
	db *gorm.DB
}

func (g *gormAccountSource) ActiveAccounts(ctx context.Context, associationID string) ([]bankingdomain.BankAccount, error) {
	var accounts []bankingdomain.BankAccount
	err := g.db.WithContext(ctx).
		Where("association_id = ? AND is_active = ?", associationID, true).
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

type gormEntrySource struct {
	db *gorm.DB
}

func (g *gormEntrySource) AccountIDsByType(ctx context.Context, associationID string, accountType ledgerdomain.GLAccountType) ([]snowflake.ID, error) {
	var ids []snowflake.ID
	err := g.db.WithContext(ctx).
		Model(&ledgerdomain.GLAccount{}).
		Where("association_id = ? AND type = ? AND is_active = ?", associationID, accountType, true).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (g *gormEntrySource) SumEntries(ctx context.Context, associationID string, entryType ledgerdomain.EntryType, accountIDs []snowflake.ID, from, to time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	err := g.db.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(amount), 0) AS total
		 FROM ledger_entries
		 WHERE association_id = ?
		   AND entry_type = ?
		   AND gl_account_id IN ?
		   AND transaction_date >= ?
		   AND transaction_date < ?`,
		associationID,
		entryType,
		accountIDs,
		from,
		to,
	).Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}
