// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"nearbite/internal/domain/entity"
	domainerrors "nearbite/internal/domain/errors"
	"nearbite/internal/domain/repository"
	"nearbite/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// CreateLocation persists a new restaurant location.
func (repo *locationRepository) CreateLocation(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLocation
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required location information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	// Update the entity with generated values
	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindLocationByID retrieves a location by its unique ID.
func (repo *locationRepository) FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// FindLocationsByOwner retrieves all locations belonging to a specific admin user, newest first.
func (repo *locationRepository) FindLocationsByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locations by owner")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// UpdateLocation persists changes to an existing location.
func (repo *locationRepository) UpdateLocation(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	result := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("id = ?", location.ID).
		Updates(map[string]any{
			"name":        locationM.Name,
			"address":     locationM.Address,
			"description": locationM.Description,
			"latitude":    locationM.Latitude,
			"longitude":   locationM.Longitude,
			"updated_at":  locationM.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// UpdateLocationStatus flips a location between active and paused.
func (repo *locationRepository) UpdateLocationStatus(ctx context.Context, id uuid.UUID, status entity.LocationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update location status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// DeleteLocation removes a location and its dependent geofence, automations and cooldown state.
func (repo *locationRepository) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("location_id = ?", id).Delete(&model.GeofenceModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("location_id = ?", id).Delete(&model.AutomationModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("location_id = ?", id).Delete(&model.CooldownStateModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.LocationModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrLocationNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete location")
	}

	return nil
}

// toLocationDomain converts a GORM model to a domain entity.
func toLocationDomain(data *model.LocationModel) *entity.Location {
	return &entity.Location{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		Address:     data.Address,
		Description: data.Description,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Status:      entity.LocationStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromLocationDomain converts a domain entity to a GORM model.
func fromLocationDomain(data *entity.Location) *model.LocationModel {
	return &model.LocationModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Name:        data.Name,
		Address:     data.Address,
		Description: data.Description,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Status:      string(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
