package domain

import (
	"context"
	"errors"

	"gorm.io/datatypes"
)

// Service resolves report payloads, transparently backed by persisted
// storage with generated fallback data. A well-formed request always
// yields a usable payload; only missing key fields produce an error.
type Service interface {
	GetReportData(ctx context.Context, req ReportRequest) (datatypes.JSON, error)
	StoreReportData(ctx context.Context, req ReportRequest, payload datatypes.JSON) error
	SeedInitialReportData(ctx context.Context, associationID string) error
}

var (
	ErrMissingAssociation = errors.New("missing_association")
	ErrMissingReportType  = errors.New("missing_report_type")
	ErrInvalidAssociation = errors.New("invalid_association")
	ErrEmptyPayload       = errors.New("empty_payload")
)
