package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	bankingdomain "github.com/covenantworks/covenant/internal/banking/domain"
	"github.com/covenantworks/covenant/internal/cache"
	"github.com/covenantworks/covenant/internal/clock"
	financedomain "github.com/covenantworks/covenant/internal/finance/domain"
	ledgerdomain "github.com/covenantworks/covenant/internal/ledger/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int

func setupFinanceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDBSeq++
	dsn := fmt.Sprintf("file:financesvc%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&bankingdomain.BankAccount{},
		&ledgerdomain.GLAccount{},
		&ledgerdomain.LedgerEntry{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newFinanceService(db *gorm.DB, now time.Time) *Service {
	return &Service{
		log:          zap.NewNop(),
		clock:        clock.Fixed{At: now},
		accounts:     &gormAccountSource{db: db},
		entries:      &gormEntrySource{db: db},
		summaryCache: cache.NoopCache[string, financedomain.FinancialSummary]{},
	}
}

func seedAccount(t *testing.T, db *gorm.DB, id snowflake.ID, accountType bankingdomain.AccountType, balance int64, active bool) {
	t.Helper()
	account := bankingdomain.BankAccount{
		ID:            id,
		AssociationID: "assoc7",
		Name:          fmt.Sprintf("Account %d", id),
		AccountType:   accountType,
		Balance:       decimal.NewFromInt(balance),
		IsActive:      active,
	}
	if err := db.Create(&account).Error; err != nil {
		t.Fatalf("seed account: %v", err)
	}
}

func seedGLAccount(t *testing.T, db *gorm.DB, id snowflake.ID, accountType ledgerdomain.GLAccountType) {
	t.Helper()
	account := ledgerdomain.GLAccount{
		ID:            id,
		AssociationID: "assoc7",
		Code:          fmt.Sprintf("%d", id),
		Name:          fmt.Sprintf("GL %d", id),
		Type:          accountType,
		IsActive:      true,
	}
	if err := db.Create(&account).Error; err != nil {
		t.Fatalf("seed gl account: %v", err)
	}
}

func seedEntry(t *testing.T, db *gorm.DB, id, glAccountID snowflake.ID, entryType ledgerdomain.EntryType, amount int64, date time.Time) {
	t.Helper()
	entry := ledgerdomain.LedgerEntry{
		ID:              id,
		AssociationID:   "assoc7",
		JournalEntryID:  1,
		GLAccountID:     glAccountID,
		TransactionDate: date,
		EntryType:       entryType,
		Amount:          decimal.NewFromInt(amount),
	}
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("seed ledger entry: %v", err)
	}
}

func TestGetFinancialSummaryBucketsBalances(t *testing.T) {
	db := setupFinanceTestDB(t)
	seedAccount(t, db, 1, bankingdomain.AccountTypeOperating, 1000, true)
	seedAccount(t, db, 2, bankingdomain.AccountTypeOperating, 2000, true)
	seedAccount(t, db, 3, bankingdomain.AccountTypeReserve, 500, true)
	seedAccount(t, db, 4, "cd", 300, true)
	seedAccount(t, db, 5, bankingdomain.AccountTypeOperating, 9999, false)

	svc := newFinanceService(db, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	summary := svc.GetFinancialSummary(context.Background(), "assoc7")

	if !summary.OperatingBalance.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("expected operating 3000, got %s", summary.OperatingBalance)
	}
	if !summary.ReserveBalance.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected reserve 500, got %s", summary.ReserveBalance)
	}
	if !summary.OtherBalance.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected other 300, got %s", summary.OtherBalance)
	}
	if !summary.TotalAssets.Equal(decimal.NewFromInt(3800)) {
		t.Fatalf("expected total assets 3800, got %s", summary.TotalAssets)
	}
	if !summary.TotalLiabilities.IsZero() {
		t.Fatalf("expected zero liabilities placeholder, got %s", summary.TotalLiabilities)
	}
}

func TestGetFinancialSummaryWindowsAreUTC(t *testing.T) {
	db := setupFinanceTestDB(t)
	seedAccount(t, db, 1, bankingdomain.AccountTypeOperating, 100, true)
	seedGLAccount(t, db, 10, ledgerdomain.GLAccountTypeIncome)
	seedGLAccount(t, db, 20, ledgerdomain.GLAccountTypeExpense)

	// June entries fall inside the month window; May entries only in YTD.
	seedEntry(t, db, 101, 10, ledgerdomain.EntryTypeCredit, 900, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC))
	seedEntry(t, db, 102, 10, ledgerdomain.EntryTypeCredit, 400, time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC))
	seedEntry(t, db, 103, 20, ledgerdomain.EntryTypeDebit, 250, time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC))
	seedEntry(t, db, 104, 20, ledgerdomain.EntryTypeDebit, 150, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	// Wrong entry side must not count as income.
	seedEntry(t, db, 105, 10, ledgerdomain.EntryTypeDebit, 9999, time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC))
	// Prior-year entries stay out of every window.
	seedEntry(t, db, 106, 10, ledgerdomain.EntryTypeCredit, 5000, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))

	svc := newFinanceService(db, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	summary := svc.GetFinancialSummary(context.Background(), "assoc7")

	if !summary.MonthlyIncome.Equal(decimal.NewFromInt(900)) {
		t.Fatalf("expected monthly income 900, got %s", summary.MonthlyIncome)
	}
	if !summary.MonthlyExpenses.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("expected monthly expenses 250, got %s", summary.MonthlyExpenses)
	}
	if !summary.YearToDateIncome.Equal(decimal.NewFromInt(1300)) {
		t.Fatalf("expected ytd income 1300, got %s", summary.YearToDateIncome)
	}
	if !summary.YearToDateExpenses.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("expected ytd expenses 400, got %s", summary.YearToDateExpenses)
	}
}

// failingEntrySource wraps a real source and fails exactly one figure.
type failingEntrySource struct {
	inner      *gormEntrySource
	failType   ledgerdomain.EntryType
	failWindow time.Time
}

func (f *failingEntrySource) AccountIDsByType(ctx context.Context, associationID string, accountType ledgerdomain.GLAccountType) ([]snowflake.ID, error) {
	return f.inner.AccountIDsByType(ctx, associationID, accountType)
}

func (f *failingEntrySource) SumEntries(ctx context.Context, associationID string, entryType ledgerdomain.EntryType, accountIDs []snowflake.ID, from, to time.Time) (decimal.Decimal, error) {
	if entryType == f.failType && from.Equal(f.failWindow) {
		return decimal.Zero, errors.New("sum query failed")
	}
	return f.inner.SumEntries(ctx, associationID, entryType, accountIDs, from, to)
}

func TestGetFinancialSummaryIsolatesSubQueryFailure(t *testing.T) {
	db := setupFinanceTestDB(t)
	seedAccount(t, db, 1, bankingdomain.AccountTypeOperating, 100, true)
	seedGLAccount(t, db, 10, ledgerdomain.GLAccountTypeIncome)
	seedGLAccount(t, db, 20, ledgerdomain.GLAccountTypeExpense)
	seedEntry(t, db, 101, 10, ledgerdomain.EntryTypeCredit, 900, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC))
	seedEntry(t, db, 103, 20, ledgerdomain.EntryTypeDebit, 250, time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC))

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	monthStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	svc := newFinanceService(db, now)
	svc.entries = &failingEntrySource{
		inner:      &gormEntrySource{db: db},
		failType:   ledgerdomain.EntryTypeDebit,
		failWindow: monthStart,
	}

	summary := svc.GetFinancialSummary(context.Background(), "assoc7")
	if !summary.MonthlyExpenses.IsZero() {
		t.Fatalf("expected failed figure zeroed, got %s", summary.MonthlyExpenses)
	}
	if !summary.MonthlyIncome.Equal(decimal.NewFromInt(900)) {
		t.Fatalf("expected monthly income unaffected, got %s", summary.MonthlyIncome)
	}
	if !summary.YearToDateIncome.Equal(decimal.NewFromInt(900)) {
		t.Fatalf("expected ytd income unaffected, got %s", summary.YearToDateIncome)
	}
	if !summary.YearToDateExpenses.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("expected ytd expenses unaffected, got %s", summary.YearToDateExpenses)
	}
}

// failingAccountSource always errors.
type failingAccountSource struct{}

func (failingAccountSource) ActiveAccounts(ctx context.Context, associationID string) ([]bankingdomain.BankAccount, error) {
	return nil, errors.New("accounts unavailable")
}

func TestGetFinancialSummaryZeroedOnAccountFailure(t *testing.T) {
	db := setupFinanceTestDB(t)
	svc := newFinanceService(db, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	svc.accounts = failingAccountSource{}

	summary := svc.GetFinancialSummary(context.Background(), "assoc7")
	if !summary.TotalAssets.IsZero() || !summary.MonthlyIncome.IsZero() {
		t.Fatalf("expected fully zeroed summary, got %+v", summary)
	}
}

func TestGetFinancialSummaryServesCachedResult(t *testing.T) {
	db := setupFinanceTestDB(t)
	seedAccount(t, db, 1, bankingdomain.AccountTypeOperating, 1000, true)

	svc := newFinanceService(db, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	svc.summaryCache = cache.NewTTLCache[string, financedomain.FinancialSummary]()

	first := svc.GetFinancialSummary(context.Background(), "assoc7")
	if !first.OperatingBalance.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected operating 1000, got %s", first.OperatingBalance)
	}

	// Within the TTL the stored figure wins over fresh account data.
	if err := db.Model(&bankingdomain.BankAccount{}).
		Where("id = ?", 1).
		Update("balance", decimal.NewFromInt(9999)).Error; err != nil {
		t.Fatalf("update balance: %v", err)
	}
	second := svc.GetFinancialSummary(context.Background(), "assoc7")
	if !second.OperatingBalance.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected cached operating 1000, got %s", second.OperatingBalance)
	}
}
