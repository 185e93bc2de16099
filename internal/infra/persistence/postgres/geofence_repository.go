// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"nearbite/internal/domain/entity"
	domainerrors "nearbite/internal/domain/errors"
	"nearbite/internal/domain/repository"
	"nearbite/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// geofenceRepository implements the repository.GeofenceRepository interface.
type geofenceRepository struct {
	db *gorm.DB
}

// NewGeofenceRepository is the constructor for geofenceRepository.
func NewGeofenceRepository(db *gorm.DB) repository.GeofenceRepository {
	return &geofenceRepository{
		db: db,
	}
}

// UpsertGeofence creates the fence for a location or overwrites the existing
// one. The unique index on location_id is the conflict target.
func (repo *geofenceRepository) UpsertGeofence(ctx context.Context, geofence *entity.Geofence) error {
	geofenceM := fromGeofenceDomain(geofence)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "location_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"center_latitude", "center_longitude", "radius_meters", "updated_at",
			}),
		}).
		Create(geofenceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLocationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert geofence")
	}

	geofence.ID = geofenceM.ID
	geofence.CreatedAt = geofenceM.CreatedAt
	geofence.UpdatedAt = geofenceM.UpdatedAt

	return nil
}

// FindGeofenceByLocation retrieves the fence configured for a location.
func (repo *geofenceRepository) FindGeofenceByLocation(ctx context.Context, locationID uuid.UUID) (*entity.Geofence, error) {
	var geofenceM model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		First(&geofenceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGeofenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find geofence by location")
	}

	return toGeofenceDomain(&geofenceM), nil
}

// DeleteGeofence removes the fence for a location.
func (repo *geofenceRepository) DeleteGeofence(ctx context.Context, locationID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Delete(&model.GeofenceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete geofence")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGeofenceNotFound
	}

	return nil
}

// geofenceCandidateRow is the scan target for the prefilter query.
type geofenceCandidateRow struct {
	// Geofence columns
	GeofenceID      uuid.UUID
	CenterLatitude  float64
	CenterLongitude float64
	RadiusMeters    float64
	// Location columns
	LocationID        uuid.UUID
	UserID            uuid.UUID
	Name              string
	Address           string
	Description       string
	Status            string
	LocationCreatedAt time.Time
	LocationUpdatedAt time.Time
}

// FindCandidatesNear performs a PostGIS geographic query returning every
// geofence of an active location whose circle could contain the given point.
func (repo *geofenceRepository) FindCandidatesNear(ctx context.Context, lat, lon float64) ([]*repository.GeofenceCandidate, error) {
	var rows []*geofenceCandidateRow

	// Use PostGIS ST_DWithin for an index-backed coarse prefilter.
	// The exact haversine containment check still runs in the engine, so the
	// query may over-select but must never under-select.
	query := `
		SELECT
		  g.id AS geofence_id,
		  g.center_latitude,
		  g.center_longitude,
		  g.radius_meters,
		  l.id AS location_id,
		  l.user_id,
		  l.name,
		  l.address,
		  l.description,
		  l.status,
		  l.created_at AS location_created_at,
		  l.updated_at AS location_updated_at
		FROM geofences g
		JOIN locations l ON l.id = g.location_id
		WHERE l.status = 'active'
		  AND ST_DWithin(
		    g.center,
		    ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
		    g.radius_meters
		  )
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, lon, lat).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find geofence candidates")
	}

	candidates := make([]*repository.GeofenceCandidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, &repository.GeofenceCandidate{
			Geofence: &entity.Geofence{
				ID:              row.GeofenceID,
				LocationID:      row.LocationID,
				CenterLatitude:  row.CenterLatitude,
				CenterLongitude: row.CenterLongitude,
				RadiusMeters:    row.RadiusMeters,
			},
			Location: &entity.Location{
				ID:          row.LocationID,
				UserID:      row.UserID,
				Name:        row.Name,
				Address:     row.Address,
				Description: row.Description,
				Status:      entity.LocationStatus(row.Status),
				CreatedAt:   row.LocationCreatedAt,
				UpdatedAt:   row.LocationUpdatedAt,
			},
		})
	}

	return candidates, nil
}

// toGeofenceDomain converts a GORM model to a domain entity.
func toGeofenceDomain(data *model.GeofenceModel) *entity.Geofence {
	return &entity.Geofence{
		ID:              data.ID,
		LocationID:      data.LocationID,
		CenterLatitude:  data.CenterLatitude,
		CenterLongitude: data.CenterLongitude,
		RadiusMeters:    data.RadiusMeters,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromGeofenceDomain converts a domain entity to a GORM model.
func fromGeofenceDomain(data *entity.Geofence) *model.GeofenceModel {
	return &model.GeofenceModel{
		ID:              data.ID,
		LocationID:      data.LocationID,
		CenterLatitude:  data.CenterLatitude,
		CenterLongitude: data.CenterLongitude,
		RadiusMeters:    data.RadiusMeters,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
