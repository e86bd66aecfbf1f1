package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	reportdomain "github.com/covenantworks/covenant/internal/report/domain"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int

func setupReportTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDBSeq++
	dsn := fmt.Sprintf("file:reportsvc%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&reportdomain.ReportDataRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newReportService(t *testing.T, db *gorm.DB) *Service {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}
	return &Service{db: db, log: zap.NewNop(), genID: node}
}

func countRecords(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&reportdomain.ReportDataRecord{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return count
}

func TestGetReportDataPersistsExactlyOnce(t *testing.T) {
	db := setupReportTestDB(t)
	svc := newReportService(t, db)
	req := reportdomain.ReportRequest{
		AssociationID:  "3",
		ReportType:     "bank-balances",
		ReportCategory: "accounting",
		TimeRange:      "year",
	}

	first, err := svc.GetReportData(context.Background(), req)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := svc.GetReportData(context.Background(), req)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("expected identical payloads across calls")
	}
	if got := countRecords(t, db); got != 1 {
		t.Fatalf("expected exactly 1 persisted record, got %d", got)
	}
}

func TestGetReportDataAppliesBankVariant(t *testing.T) {
	db := setupReportTestDB(t)
	svc := newReportService(t, db)

	payload, err := svc.GetReportData(context.Background(), reportdomain.ReportRequest{
		AssociationID: "3",
		ReportType:    "bank-balances",
	})
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	var data struct {
		BankAccounts []struct {
			Balance float64 `json:"balance"`
		} `json:"bank_accounts"`
	}
	if err := json.Unmarshal(payload, &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// scale for "3" is 1.4; the bank variant inflates by 1.2.
	if want := 210000.0; data.BankAccounts[0].Balance != want {
		t.Fatalf("expected balance %v, got %v", want, data.BankAccounts[0].Balance)
	}
}

func TestGetReportDataReturnsStoredPayloadVerbatim(t *testing.T) {
	db := setupReportTestDB(t)
	svc := newReportService(t, db)
	req := reportdomain.ReportRequest{AssociationID: "3", ReportType: "bank-balances"}

	if _, err := svc.GetReportData(context.Background(), req); err != nil {
		t.Fatalf("first call: %v", err)
	}

	stored := `{"stored":true}`
	if err := db.Model(&reportdomain.ReportDataRecord{}).
		Where("association_id = ?", "3").
		Update("data", stored).Error; err != nil {
		t.Fatalf("mutate stored row: %v", err)
	}

	payload, err := svc.GetReportData(context.Background(), req)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if string(payload) != stored {
		t.Fatalf("expected stored payload verbatim, got %s", payload)
	}
}

func TestGetReportDataSentinelNeverPersists(t *testing.T) {
	db := setupReportTestDB(t)
	svc := newReportService(t, db)

	payload, err := svc.GetReportData(context.Background(), reportdomain.ReportRequest{
		AssociationID: "all",
		ReportType:    "financial-summary",
	})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(payload) == 0 {
		t.Fatalf("expected synthetic payload for sentinel")
	}
	if got := countRecords(t, db); got != 0 {
		t.Fatalf("expected no persisted records for sentinel, got %d", got)
	}
}

func TestGetReportDataValidatesKeyFields(t *testing.T) {
	db := setupReportTestDB(t)
	svc := newReportService(t, db)

	_, err := svc.GetReportData(context.Background(), reportdomain.ReportRequest{ReportType: "cash-flow"})
	if !errors.Is(err, reportdomain.ErrMissingAssociation) {
		t.Fatalf("expected missing association error, got %v", err)
	}
	_, err = svc.GetReportData(context.Background(), reportdomain.ReportRequest{AssociationID: "3"})
	if !errors.Is(err, reportdomain.ErrMissingReportType) {
		t.Fatalf("expected missing report type error, got %v", err)
	}
}

func TestForceRefreshOverwritesStoredPayload(t *testing.T) {
	db := setupReportTestDB(t)
	svc := newReportService(t, db)
	req := reportdomain.ReportRequest{AssociationID: "3", ReportType: "bank-balances"}

	if _, err := svc.GetReportData(context.Background(), req); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if err := db.Model(&reportdomain.ReportDataRecord{}).
		Where("association_id = ?", "3").
		Update("data", `{"stale":true}`).Error; err != nil {
		t.Fatalf("mutate stored row: %v", err)
	}

	req.ForceRefresh = true
	payload, err := svc.GetReportData(context.Background(), req)
	if err != nil {
		t.Fatalf("refresh call: %v", err)
	}
	if string(payload) == `{"stale":true}` {
		t.Fatalf("expected regenerated payload on force refresh")
	}
	if got := countRecords(t, db); got != 1 {
		t.Fatalf("expected single record after refresh, got %d", got)
	}

	var record reportdomain.ReportDataRecord
	if err := db.First(&record).Error; err != nil {
		t.Fatalf("load record: %v", err)
	}
	if string(record.Data) != string(payload) {
		t.Fatalf("expected stored row updated in place")
	}
}

func TestStoreReportDataRejectsEmptyPayload(t *testing.T) {
	db := setupReportTestDB(t)
	svc := newReportService(t, db)

	err := svc.StoreReportData(context.Background(), reportdomain.ReportRequest{
		AssociationID: "3",
		ReportType:    "cash-flow",
	}, datatypes.JSON(nil))
	if !errors.Is(err, reportdomain.ErrEmptyPayload) {
		t.Fatalf("expected empty payload error, got %v", err)
	}
}

func TestSeedInitialReportDataPopulatesCatalog(t *testing.T) {
	db := setupReportTestDB(t)
	svc := newReportService(t, db)

	if err := svc.SeedInitialReportData(context.Background(), "assoc7"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if got, want := countRecords(t, db), int64(len(reportdomain.SeedCatalog)); got != want {
		t.Fatalf("expected %d seeded records, got %d", want, got)
	}

	// A second seed run must not duplicate rows.
	if err := svc.SeedInitialReportData(context.Background(), "assoc7"); err != nil {
		t.Fatalf("re-seed: %v", err)
	}
	if got, want := countRecords(t, db), int64(len(reportdomain.SeedCatalog)); got != want {
		t.Fatalf("expected %d records after re-seed, got %d", want, got)
	}
}

func TestSeedInitialReportDataRejectsSentinel(t *testing.T) {
	db := setupReportTestDB(t)
	svc := newReportService(t, db)

	if err := svc.SeedInitialReportData(context.Background(), "all"); !errors.Is(err, reportdomain.ErrInvalidAssociation) {
		t.Fatalf("expected invalid association error, got %v", err)
	}
}
