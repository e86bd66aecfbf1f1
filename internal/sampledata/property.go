package sampledata

import (
	"math"

	associationdomain "github.com/covenantworks/covenant/internal/association/domain"
)

// Property is a generated community property row.
type Property struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	City       string  `json:"city"`
	Units      int     `json:"units"`
	AnnualFees float64 `json:"annual_fees"`
}

var baseProperties = []Property{
	{ID: "prop-01", Name: "Willow Creek Estates", City: "Austin", Units: 120, AnnualFees: 288000},
	{ID: "prop-02", Name: "Lakeside Commons", City: "Round Rock", Units: 86, AnnualFees: 206400},
	{ID: "prop-03", Name: "Heritage Oaks", City: "Cedar Park", Units: 64, AnnualFees: 153600},
	{ID: "prop-04", Name: "Stonebridge Villas", City: "Georgetown", Units: 48, AnnualFees: 115200},
	{ID: "prop-05", Name: "Cypress Point", City: "Pflugerville", Units: 150, AnnualFees: 360000},
}

// PropertyData returns the full base catalog for the portfolio sentinel.
// For a specific association it returns the first three properties with
// the name suffixed by the id's trailing characters, units bumped by twice
// the id's last digit and fees scaled by the association multiplier.
func PropertyData(associationID string) []Property {
	if associationID == associationdomain.AllAssociations {
		out := make([]Property, len(baseProperties))
		copy(out, baseProperties)
		return out
	}

	scale := ScaleFor(associationID)
	digit := lastDigit(associationID)
	suffix := lastTwo(associationID)

	out := make([]Property, 0, 3)
	for _, property := range baseProperties[:3] {
		property.Name = property.Name + " " + suffix
		property.Units += 2 * digit
		property.AnnualFees = math.Round(property.AnnualFees * scale)
		out = append(out, property)
	}
	return out
}
