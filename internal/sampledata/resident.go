package sampledata

import (
	"time"

	associationdomain "github.com/covenantworks/covenant/internal/association/domain"
)

// Resident is a generated resident roster row.
type Resident struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Unit       int    `json:"unit"`
	Email      string `json:"email"`
	MoveInDate string `json:"move_in_date"`
	Status     string `json:"status"`
}

var baseResidents = []Resident{
	{ID: "res-01", Name: "Maria Alvarez", Unit: 101, Email: "maria.alvarez@example.com", MoveInDate: "2021-03-15", Status: "owner"},
	{ID: "res-02", Name: "James Porter", Unit: 104, Email: "james.porter@example.com", MoveInDate: "2019-08-01", Status: "owner"},
	{ID: "res-03", Name: "Lin Chen", Unit: 208, Email: "lin.chen@example.com", MoveInDate: "2022-11-20", Status: "tenant"},
	{ID: "res-04", Name: "Aisha Brown", Unit: 212, Email: "aisha.brown@example.com", MoveInDate: "2020-05-04", Status: "owner"},
	{ID: "res-05", Name: "Derek Olsen", Unit: 305, Email: "derek.olsen@example.com", MoveInDate: "2023-02-10", Status: "tenant"},
}

// ResidentData returns the full base roster for the portfolio sentinel,
// otherwise the first three residents with unit numbers offset and
// move-in dates shifted by the id's last digit in days.
func ResidentData(associationID string) []Resident {
	if associationID == associationdomain.AllAssociations {
		out := make([]Resident, len(baseResidents))
		copy(out, baseResidents)
		return out
	}

	digit := lastDigit(associationID)
	suffix := lastTwo(associationID)

	out := make([]Resident, 0, 3)
	for _, resident := range baseResidents[:3] {
		resident.ID = resident.ID + "-" + suffix
		resident.Unit += digit
		resident.MoveInDate = shiftDate(resident.MoveInDate, digit)
		out = append(out, resident)
	}
	return out
}

// shiftDate moves an ISO date forward by the given number of days; an
// unparseable date is returned unchanged.
func shiftDate(date string, days int) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.AddDate(0, 0, days).Format("2006-01-02")
}
