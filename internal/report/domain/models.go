package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// ReportDataRecord is a persisted report payload, uniquely identified by
// the (association, type, category, range) tuple. At most one row may
// exist per tuple; the resolver upserts, never duplicates.
type ReportDataRecord struct {
	ID             snowflake.ID   `gorm:"primaryKey"`
	AssociationID  string         `gorm:"type:text;not null;uniqueIndex:ux_report_data_key,priority:1"`
	ReportType     string         `gorm:"type:text;not null;uniqueIndex:ux_report_data_key,priority:2"`
	ReportCategory string         `gorm:"type:text;not null;uniqueIndex:ux_report_data_key,priority:3"`
	TimeRange      string         `gorm:"type:text;not null;uniqueIndex:ux_report_data_key,priority:4"`
	Data           datatypes.JSON `gorm:"not null"`
	CreatedAt      time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt      time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (ReportDataRecord) TableName() string { return "report_data" }

// ReportRequest identifies one report lookup.
type ReportRequest struct {
	AssociationID  string `json:"association_id"`
	ReportType     string `json:"report_type"`
	ReportCategory string `json:"report_category"`
	TimeRange      string `json:"time_range"`
	// ForceRefresh regenerates the payload and overwrites the stored row.
	ForceRefresh bool `json:"force_refresh"`
}

// SeedItem is one entry of the initial report catalog.
type SeedItem struct {
	ReportType     string
	ReportCategory string
}

// SeedCatalog lists the reports pre-generated for a newly onboarded
// association.
var SeedCatalog = []SeedItem{
	{ReportType: "financial-summary", ReportCategory: "financial"},
	{ReportType: "budget-variance", ReportCategory: "financial"},
	{ReportType: "bank-balances", ReportCategory: "accounting"},
	{ReportType: "cash-flow", ReportCategory: "accounting"},
	{ReportType: "billing-aging", ReportCategory: "accounting"},
	{ReportType: "property-roster", ReportCategory: "community"},
	{ReportType: "resident-directory", ReportCategory: "community"},
	{ReportType: "violation-log", ReportCategory: "compliance"},
}
