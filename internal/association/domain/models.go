package domain

import "time"

// AllAssociations is the sentinel id meaning "no specific association":
// dashboards showing the portfolio-wide view pass it instead of a real id.
const AllAssociations = "all"

// Association is the partition key for every financial record. IDs are
// opaque text; the sample data generator derives its scale multiplier
// from the id's trailing character.
type Association struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	City      string    `gorm:"type:text;not null;default:''" json:"city"`
	Units     int       `gorm:"not null;default:0" json:"units"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Association) TableName() string { return "associations" }
