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
	"gorm.io/gorm/clause"
)

// visitorRepository implements the repository.VisitorRepository interface.
type visitorRepository struct {
	db *gorm.DB
}

// NewVisitorRepository is the constructor for visitorRepository.
func NewVisitorRepository(db *gorm.DB) repository.VisitorRepository {
	return &visitorRepository{
		db: db,
	}
}

// UpsertVisitor creates a visitor record or refreshes the contact details of
// an existing one.
func (repo *visitorRepository) UpsertVisitor(ctx context.Context, visitor *entity.Visitor) error {
	visitorM := fromVisitorDomain(visitor)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"phone_number", "email", "device_token", "updated_at",
			}),
		}).
		Create(visitorM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert visitor")
	}

	visitor.ID = visitorM.ID
	visitor.CreatedAt = visitorM.CreatedAt
	visitor.UpdatedAt = visitorM.UpdatedAt

	return nil
}

// FindVisitorByID retrieves a visitor by its unique ID.
func (repo *visitorRepository) FindVisitorByID(ctx context.Context, id uuid.UUID) (*entity.Visitor, error) {
	var visitorM model.VisitorModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&visitorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVisitorNotFound
		}

		return nil, errors.Wrap(err, "failed to find visitor by ID")
	}

	return toVisitorDomain(&visitorM), nil
}

// DeleteVisitor removes a visitor and its cooldown state.
func (repo *visitorRepository) DeleteVisitor(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("visitor_id = ?", id).Delete(&model.CooldownStateModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.VisitorModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrVisitorNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrVisitorNotFound) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete visitor")
	}

	return nil
}

// toVisitorDomain converts a GORM model to a domain entity.
func toVisitorDomain(data *model.VisitorModel) *entity.Visitor {
	return &entity.Visitor{
		ID:          data.ID,
		PhoneNumber: data.PhoneNumber,
		Email:       data.Email,
		DeviceToken: data.DeviceToken,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromVisitorDomain converts a domain entity to a GORM model.
func fromVisitorDomain(data *entity.Visitor) *model.VisitorModel {
	return &model.VisitorModel{
		ID:          data.ID,
		PhoneNumber: data.PhoneNumber,
		Email:       data.Email,
		DeviceToken: data.DeviceToken,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
