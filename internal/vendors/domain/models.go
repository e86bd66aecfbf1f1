package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/covenantworks/covenant/internal/filtering"
)

var (
	ErrMissingAssociation = errors.New("missing_association_id")
)

// Vendor is a service provider an association contracts with. The
// insurance fields back the compliance dashboard; a vendor without an
// expiration date is excluded from expiration tracking.
type Vendor struct {
	ID                  snowflake.ID `json:"id" gorm:"primaryKey"`
	AssociationID       string       `json:"association_id" gorm:"index:ix_vendors_assoc"`
	Name                string       `json:"name"`
	ServiceType         string       `json:"service_type"`
	InsuranceCarrier    *string      `json:"insurance_carrier,omitempty"`
	InsuranceExpiration *time.Time   `json:"insurance_expiration,omitempty"`
	IsActive            bool         `json:"is_active"`
	CreatedAt           time.Time    `json:"created_at"`
}

func (Vendor) TableName() string {
	return "vendors"
}

type Service interface {
	ListVendors(ctx context.Context, associationID string) ([]Vendor, error)
	InsuranceStatus(ctx context.Context, associationID string) ([]filtering.Classified[Vendor], error)
}
