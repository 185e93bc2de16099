package model

import (
	"time"

	"github.com/google/uuid"
)

// GeofenceModel is the GORM-specific struct for the 'geofences' table.
// Each location has at most one fence; the unique index on LocationID
// backs the upsert's conflict target.
type GeofenceModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LocationID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CenterLatitude  float64   `gorm:"type:decimal(10,8);not null"`
	CenterLongitude float64   `gorm:"type:decimal(11,8);not null"`
	// Note: center GEOMETRY(POINT, 4326) column exists in database but is not mapped here.
	// It is automatically calculated from CenterLatitude/CenterLongitude via database trigger.
	// Use raw SQL queries with PostGIS functions (ST_Distance, ST_DWithin) for geospatial operations.
	RadiusMeters float64 `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (GeofenceModel) TableName() string {
	return "geofences"
}
