package seed

import (
	"testing"

	associationdomain "github.com/covenantworks/covenant/internal/association/domain"
	ledgerdomain "github.com/covenantworks/covenant/internal/ledger/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:seedpkg?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&associationdomain.Association{}, &ledgerdomain.GLAccount{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.Exec("DELETE FROM gl_accounts")
	db.Exec("DELETE FROM associations")
	return db
}

func TestEnsureDefaultAssociationIsIdempotent(t *testing.T) {
	db := setupSeedTestDB(t)

	for i := 0; i < 2; i++ {
		if err := EnsureDefaultAssociation(db); err != nil {
			t.Fatalf("seed run %d: %v", i+1, err)
		}
	}

	var associations int64
	db.Model(&associationdomain.Association{}).Count(&associations)
	if associations != 1 {
		t.Fatalf("expected 1 association, got %d", associations)
	}

	var accounts int64
	db.Model(&ledgerdomain.GLAccount{}).Count(&accounts)
	if accounts != int64(len(chartOfAccounts)) {
		t.Fatalf("expected %d gl accounts, got %d", len(chartOfAccounts), accounts)
	}
}

func TestEnsureDefaultAssociationKeepsExistingRows(t *testing.T) {
	db := setupSeedTestDB(t)
	existing := associationdomain.Association{ID: "assoc1", Name: "Custom Name", IsActive: true}
	if err := db.Create(&existing).Error; err != nil {
		t.Fatalf("seed existing: %v", err)
	}

	if err := EnsureDefaultAssociation(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var got associationdomain.Association
	if err := db.First(&got, "id = ?", "assoc1").Error; err != nil {
		t.Fatalf("load association: %v", err)
	}
	if got.Name != "Custom Name" {
		t.Fatalf("existing row overwritten: %+v", got)
	}
}

func TestEnsureDefaultAssociationRequiresDB(t *testing.T) {
	if err := EnsureDefaultAssociation(nil); err == nil {
		t.Fatal("expected error for nil database handle")
	}
}
