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

// automationRepository implements the repository.AutomationRepository interface.
type automationRepository struct {
	db *gorm.DB
}

// NewAutomationRepository is the constructor for automationRepository.
func NewAutomationRepository(db *gorm.DB) repository.AutomationRepository {
	return &automationRepository{
		db: db,
	}
}

// UpsertAutomation creates or overwrites the automation for a
// (location, channel) pair. The composite unique index is the conflict target.
func (repo *automationRepository) UpsertAutomation(ctx context.Context, automation *entity.Automation) error {
	automationM := fromAutomationDomain(automation)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "location_id"}, {Name: "channel"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"enabled", "cooldown_minutes", "start_time", "end_time",
				"template_subject", "template_body", "updated_at",
			}),
		}).
		Create(automationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLocationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert automation")
	}

	automation.ID = automationM.ID
	automation.CreatedAt = automationM.CreatedAt
	automation.UpdatedAt = automationM.UpdatedAt

	return nil
}

// FindAutomationsByLocation retrieves every automation configured for a location.
func (repo *automationRepository) FindAutomationsByLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.Automation, error) {
	var automationModels []*model.AutomationModel

	if err := repo.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("channel ASC").
		Find(&automationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find automations by location")
	}

	automations := make([]*entity.Automation, 0, len(automationModels))
	for _, automationM := range automationModels {
		automations = append(automations, toAutomationDomain(automationM))
	}

	return automations, nil
}

// FindAutomation retrieves the automation for a specific location and channel.
func (repo *automationRepository) FindAutomation(ctx context.Context, locationID uuid.UUID, channel entity.Channel) (*entity.Automation, error) {
	var automationM model.AutomationModel

	if err := repo.db.WithContext(ctx).
		Where("location_id = ? AND channel = ?", locationID, string(channel)).
		First(&automationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAutomationNotFound
		}

		return nil, errors.Wrap(err, "failed to find automation")
	}

	return toAutomationDomain(&automationM), nil
}

// toAutomationDomain converts a GORM model to a domain entity.
func toAutomationDomain(data *model.AutomationModel) *entity.Automation {
	return &entity.Automation{
		ID:              data.ID,
		LocationID:      data.LocationID,
		Channel:         entity.Channel(data.Channel),
		Enabled:         data.Enabled,
		CooldownMinutes: data.CooldownMinutes,
		StartTime:       data.StartTime,
		EndTime:         data.EndTime,
		TemplateSubject: data.TemplateSubject,
		TemplateBody:    data.TemplateBody,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromAutomationDomain converts a domain entity to a GORM model.
func fromAutomationDomain(data *entity.Automation) *model.AutomationModel {
	return &model.AutomationModel{
		ID:              data.ID,
		LocationID:      data.LocationID,
		Channel:         string(data.Channel),
		Enabled:         data.Enabled,
		CooldownMinutes: data.CooldownMinutes,
		StartTime:       data.StartTime,
		EndTime:         data.EndTime,
		TemplateSubject: data.TemplateSubject,
		TemplateBody:    data.TemplateBody,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
