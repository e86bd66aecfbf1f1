package sampledata

import (
	associationdomain "github.com/covenantworks/covenant/internal/association/domain"
)

// Violation is a generated compliance case row.
type Violation struct {
	ID           string `json:"id"`
	Unit         int    `json:"unit"`
	Type         string `json:"type"`
	ReportedDate string `json:"reported_date"`
	Status       string `json:"status"`
}

var baseViolations = []Violation{
	{ID: "vio-01", Unit: 101, Type: "landscaping", ReportedDate: "2025-04-02", Status: "open"},
	{ID: "vio-02", Unit: 118, Type: "parking", ReportedDate: "2025-04-15", Status: "notice-sent"},
	{ID: "vio-03", Unit: 203, Type: "exterior-maintenance", ReportedDate: "2025-05-01", Status: "open"},
	{ID: "vio-04", Unit: 214, Type: "noise", ReportedDate: "2025-05-12", Status: "resolved"},
	{ID: "vio-05", Unit: 310, Type: "trash", ReportedDate: "2025-05-28", Status: "hearing-scheduled"},
}

// ViolationData returns the full base case list for the portfolio
// sentinel, otherwise the first three cases with unit numbers offset,
// ids suffixed and reported dates shifted by the id's last digit in days.
func ViolationData(associationID string) []Violation {
	if associationID == associationdomain.AllAssociations {
		out := make([]Violation, len(baseViolations))
		copy(out, baseViolations)
		return out
	}

	digit := lastDigit(associationID)
	suffix := lastTwo(associationID)

	out := make([]Violation, 0, 3)
	for _, violation := range baseViolations[:3] {
		violation.ID = violation.ID + "-" + suffix
		violation.Unit += digit
		violation.ReportedDate = shiftDate(violation.ReportedDate, digit)
		out = append(out, violation)
	}
	return out
}
