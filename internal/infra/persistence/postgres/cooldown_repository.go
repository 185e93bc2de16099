// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"nearbite/internal/domain/entity"
	"nearbite/internal/domain/repository"
	"nearbite/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cooldownRepository implements the repository.CooldownRepository interface.
type cooldownRepository struct {
	db *gorm.DB
}

// NewCooldownRepository is the constructor for cooldownRepository.
func NewCooldownRepository(db *gorm.DB) repository.CooldownRepository {
	return &cooldownRepository{
		db: db,
	}
}

// LastSentAt retrieves the cooldown state for a triple, or (nil, nil) when no
// send has ever happened for it.
func (repo *cooldownRepository) LastSentAt(ctx context.Context, visitorID, locationID uuid.UUID, channel entity.Channel) (*entity.CooldownState, error) {
	var stateM model.CooldownStateModel

	if err := repo.db.WithContext(ctx).
		Where("visitor_id = ? AND location_id = ? AND channel = ?", visitorID, locationID, string(channel)).
		First(&stateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find cooldown state")
	}

	return &entity.CooldownState{
		VisitorID:  stateM.VisitorID,
		LocationID: stateM.LocationID,
		Channel:    entity.Channel(stateM.Channel),
		LastSentAt: stateM.LastSentAt,
	}, nil
}

// Claim atomically records a send attempt, but only when the previous send is
// at least cooldown old or absent.
//
// A single conditional upsert carries the whole race: the unique index on the
// triple serializes concurrent inserts, and the WHERE on the DO UPDATE arm
// rejects claims inside the cooldown. Exactly one of two racing evaluations
// sees an affected row.
func (repo *cooldownRepository) Claim(ctx context.Context, visitorID, locationID uuid.UUID, channel entity.Channel, now time.Time, cooldown time.Duration) (bool, error) {
	query := `
		INSERT INTO cooldown_states (visitor_id, location_id, channel, last_sent_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (visitor_id, location_id, channel)
		DO UPDATE SET last_sent_at = EXCLUDED.last_sent_at
		WHERE cooldown_states.last_sent_at <= ?
	`

	cutoff := now.Add(-cooldown)
	result := repo.db.WithContext(ctx).
		Exec(query, visitorID, locationID, string(channel), now, cutoff)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to claim cooldown slot")
	}

	return result.RowsAffected > 0, nil
}

// PruneBefore deletes cooldown rows whose last send predates the cutoff.
func (repo *cooldownRepository) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("last_sent_at < ?", cutoff).
		Delete(&model.CooldownStateModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to prune cooldown states")
	}

	return result.RowsAffected, nil
}
