package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	associationdomain "github.com/covenantworks/covenant/internal/association/domain"
	ledgerdomain "github.com/covenantworks/covenant/internal/ledger/domain"
	"gorm.io/gorm"
)

const (
	defaultAssociationID   = "assoc1"
	defaultAssociationName = "Sunrise Ridge HOA"
	defaultAssociationCity = "Austin"
)

// chartOfAccounts is the minimal GL chart a fresh association needs
// before journal entries can be drafted.
var chartOfAccounts = []struct {
	Code string
	Name string
	Type ledgerdomain.GLAccountType
}{
	{"1000", "Operating Cash", ledgerdomain.GLAccountTypeAsset},
	{"1100", "Reserve Cash", ledgerdomain.GLAccountTypeAsset},
	{"1200", "Assessments Receivable", ledgerdomain.GLAccountTypeAsset},
	{"2000", "Accounts Payable", ledgerdomain.GLAccountTypeLiability},
	{"3000", "Retained Earnings", ledgerdomain.GLAccountTypeEquity},
	{"4000", "Assessment Income", ledgerdomain.GLAccountTypeIncome},
	{"4100", "Late Fee Income", ledgerdomain.GLAccountTypeIncome},
	{"5000", "Landscaping Expense", ledgerdomain.GLAccountTypeExpense},
	{"5100", "Utilities Expense", ledgerdomain.GLAccountTypeExpense},
	{"5200", "Insurance Expense", ledgerdomain.GLAccountTypeExpense},
}

// EnsureDefaultAssociation seeds the bootstrap association and its GL
// chart of accounts. Safe to run on every startup.
func EnsureDefaultAssociation(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		association, err := ensureAssociationTx(ctx, tx)
		if err != nil {
			return err
		}
		return ensureChartOfAccountsTx(ctx, tx, node, association.ID)
	})
}

func ensureAssociationTx(ctx context.Context, tx *gorm.DB) (associationdomain.Association, error) {
	var association associationdomain.Association
	err := tx.WithContext(ctx).Where("id = ?", defaultAssociationID).First(&association).Error
	if err == nil {
		return association, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return association, err
	}
	now := time.Now().UTC()
	association = associationdomain.Association{
		ID:        defaultAssociationID,
		Name:      defaultAssociationName,
		City:      defaultAssociationCity,
		Units:     120,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.WithContext(ctx).Create(&association).Error; err != nil {
		return association, err
	}
	return association, nil
}

func ensureChartOfAccountsTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node, associationID string) error {
	for _, entry := range chartOfAccounts {
		var existing ledgerdomain.GLAccount
		err := tx.WithContext(ctx).
			Where("association_id = ? AND code = ?", associationID, entry.Code).
			First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		account := ledgerdomain.GLAccount{
			ID:            node.Generate(),
			AssociationID: associationID,
			Code:          entry.Code,
			Name:          entry.Name,
			Type:          entry.Type,
			IsActive:      true,
		}
		if err := tx.WithContext(ctx).Create(&account).Error; err != nil {
			return err
		}
	}
	return nil
}
