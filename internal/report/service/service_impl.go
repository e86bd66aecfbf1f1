package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	associationdomain "github.com/covenantworks/covenant/internal/association/domain"
	"github.com/covenantworks/covenant/internal/events"
	reportdomain "github.com/covenantworks/covenant/internal/report/domain"
	"github.com/covenantworks/covenant/internal/sampledata"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultCategory  = "general"
	defaultTimeRange = "year"
)

type ServiceParam struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Outbox *events.Outbox `optional:"true"`
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node
	outbox *events.Outbox
}

func NewService(p ServiceParam) reportdomain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("report.service"),
		genID:  p.GenID,
		outbox: p.Outbox,
	}
}

// GetReportData resolves the payload for one report request. The
// portfolio sentinel is always synthetic and never touches storage. For
// real associations a stored row wins; a miss generates, persists
// best-effort and returns the generated payload either way.
func (s *Service) GetReportData(ctx context.Context, req reportdomain.ReportRequest) (datatypes.JSON, error) {
	req, err := normalizeRequest(req)
	if err != nil {
		return nil, err
	}

	if req.AssociationID == associationdomain.AllAssociations {
		return s.generate(req)
	}

	if !req.ForceRefresh {
		var record reportdomain.ReportDataRecord
		err := s.db.WithContext(ctx).
			Where("association_id = ? AND report_type = ? AND report_category = ? AND time_range = ?",
				req.AssociationID, req.ReportType, req.ReportCategory, req.TimeRange).
			First(&record).Error
		switch {
		case err == nil:
			return record.Data, nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			// expected miss, fall through to generate-and-store
		default:
			s.log.Warn("report lookup failed, serving generated data",
				zap.String("association_id", req.AssociationID),
				zap.String("report_type", req.ReportType),
				zap.Error(err))
			return s.generate(req)
		}
	}

	payload, err := s.generate(req)
	if err != nil {
		return nil, err
	}
	if err := s.StoreReportData(ctx, req, payload); err != nil {
		s.log.Warn("report persist failed, serving generated data",
			zap.String("association_id", req.AssociationID),
			zap.String("report_type", req.ReportType),
			zap.Error(err))
	}
	return payload, nil
}

// StoreReportData upserts the payload for the request's tuple. The
// insert carries an ON CONFLICT update so two concurrent first writes
// for the same tuple cannot produce duplicate rows; the later write wins.
func (s *Service) StoreReportData(ctx context.Context, req reportdomain.ReportRequest, payload datatypes.JSON) error {
	req, err := normalizeRequest(req)
	if err != nil {
		return err
	}
	if req.AssociationID == associationdomain.AllAssociations {
		return reportdomain.ErrInvalidAssociation
	}
	if len(payload) == 0 {
		return reportdomain.ErrEmptyPayload
	}

	now := time.Now().UTC()

	var existing reportdomain.ReportDataRecord
	err = s.db.WithContext(ctx).
		Where("association_id = ? AND report_type = ? AND report_category = ? AND time_range = ?",
			req.AssociationID, req.ReportType, req.ReportCategory, req.TimeRange).
		First(&existing).Error
	if err == nil {
		return s.db.WithContext(ctx).
			Model(&reportdomain.ReportDataRecord{}).
			Where("id = ?", existing.ID).
			Updates(map[string]any{"data": payload, "updated_at": now}).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	record := reportdomain.ReportDataRecord{
		ID:             s.genID.Generate(),
		AssociationID:  req.AssociationID,
		ReportType:     req.ReportType,
		ReportCategory: req.ReportCategory,
		TimeRange:      req.TimeRange,
		Data:           payload,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "association_id"},
				{Name: "report_type"},
				{Name: "report_category"},
				{Name: "time_range"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&record).Error
}

// SeedInitialReportData pre-populates the report catalog for a newly
// onboarded association. Individual failures are logged and skipped.
func (s *Service) SeedInitialReportData(ctx context.Context, associationID string) error {
	associationID = strings.TrimSpace(associationID)
	if associationID == "" {
		return reportdomain.ErrMissingAssociation
	}
	if associationID == associationdomain.AllAssociations {
		return reportdomain.ErrInvalidAssociation
	}

	for _, item := range reportdomain.SeedCatalog {
		req := reportdomain.ReportRequest{
			AssociationID:  associationID,
			ReportType:     item.ReportType,
			ReportCategory: item.ReportCategory,
		}
		payload, err := s.generate(req)
		if err != nil {
			s.log.Warn("seed generate failed",
				zap.String("association_id", associationID),
				zap.String("report_type", item.ReportType),
				zap.Error(err))
			continue
		}
		if err := s.StoreReportData(ctx, req, payload); err != nil {
			s.log.Warn("seed persist failed",
				zap.String("association_id", associationID),
				zap.String("report_type", item.ReportType),
				zap.Error(err))
		}
	}

	if s.outbox != nil {
		if err := s.outbox.Publish(ctx, events.Event{
			AssociationID: associationID,
			Type:          events.EventReportDataSeeded,
			Payload:       map[string]any{"catalog_size": len(reportdomain.SeedCatalog)},
			DedupeKey:     "report_seed:" + associationID,
		}); err != nil {
			s.log.Warn("seed event publish failed",
				zap.String("association_id", associationID),
				zap.Error(err))
		}
	}
	return nil
}

// generate builds the synthetic payload for the request. Roster-style
// reports map to their catalogs; everything else is the financial
// dataset with the report-type variant applied.
func (s *Service) generate(req reportdomain.ReportRequest) (datatypes.JSON, error) {
	name := strings.ToLower(req.ReportType)

	var payload any
	switch {
	case strings.Contains(name, "property"):
		payload = sampledata.PropertyData(req.AssociationID)
	case strings.Contains(name, "resident"):
		payload = sampledata.ResidentData(req.AssociationID)
	case strings.Contains(name, "violation"):
		payload = sampledata.ViolationData(req.AssociationID)
	default:
		payload = sampledata.ApplyReportVariant(req.ReportType, sampledata.FinancialData(req.AssociationID))
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func normalizeRequest(req reportdomain.ReportRequest) (reportdomain.ReportRequest, error) {
	req.AssociationID = strings.TrimSpace(req.AssociationID)
	req.ReportType = strings.TrimSpace(req.ReportType)
	req.ReportCategory = strings.TrimSpace(req.ReportCategory)
	req.TimeRange = strings.TrimSpace(req.TimeRange)

	if req.AssociationID == "" {
		return req, reportdomain.ErrMissingAssociation
	}
	if req.ReportType == "" {
		return req, reportdomain.ErrMissingReportType
	}
	if req.ReportCategory == "" {
		req.ReportCategory = defaultCategory
	}
	if req.TimeRange == "" {
		req.TimeRange = defaultTimeRange
	}
	return req, nil
}
