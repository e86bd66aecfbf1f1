package service

import (
	"context"
	"strings"
	"time"

	"github.com/covenantworks/covenant/internal/clock"
	"github.com/covenantworks/covenant/internal/filtering"
	vendordomain "github.com/covenantworks/covenant/internal/vendors/domain"
	"github.com/covenantworks/covenant/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
}

type Service struct {
	vendors repository.Repository[vendordomain.Vendor]
	log     *zap.Logger
	clock   clock.Clock
}

func NewService(p ServiceParam) vendordomain.Service {
	return &Service{
		vendors: repository.ProvideStore[vendordomain.Vendor](p.DB),
		log:     p.Log.Named("vendor.service"),
		clock:   p.Clock,
	}
}

func (s *Service) ListVendors(ctx context.Context, associationID string) ([]vendordomain.Vendor, error) {
	associationID = strings.TrimSpace(associationID)
	if associationID == "" {
		return nil, vendordomain.ErrMissingAssociation
	}
	vendors, err := s.vendors.Find(ctx, "association_id = ?", associationID)
	if err != nil {
		return nil, err
	}
	filtering.SortBy(vendors, filtering.SortState{Field: "name"}, func(a, b vendordomain.Vendor) int {
		return filtering.CompareStrings(a.Name, b.Name)
	})
	return vendors, nil
}

// InsuranceStatus buckets active vendors by how close their insurance
// expiration is, most urgent first. Vendors with no expiration on file
// are left out of the result.
func (s *Service) InsuranceStatus(ctx context.Context, associationID string) ([]filtering.Classified[vendordomain.Vendor], error) {
	associationID = strings.TrimSpace(associationID)
	if associationID == "" {
		return nil, vendordomain.ErrMissingAssociation
	}
	vendors, err := s.vendors.Find(ctx, "association_id = ? AND is_active = ?", associationID, true)
	if err != nil {
		return nil, err
	}
	today := s.clock.Now()
	return filtering.ClassifyByExpiration(today, vendors, func(v vendordomain.Vendor) *time.Time {
		return v.InsuranceExpiration
	}), nil
}
