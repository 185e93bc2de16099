// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"nearbite/internal/domain/entity"
	domainerrors "nearbite/internal/domain/errors"
	"nearbite/internal/domain/repository"
	"nearbite/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// AppendEvent persists a single audit event. Events are immutable once written.
func (repo *eventRepository) AppendEvent(ctx context.Context, event *entity.Event) error {
	eventM, err := fromEventDomain(event)
	if err != nil {
		return errors.Wrap(err, "failed to encode event metadata")
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// FindEventsByLocation retrieves events for a location, newest first,
// optionally filtered by event type.
func (repo *eventRepository) FindEventsByLocation(ctx context.Context, locationID uuid.UUID, eventType entity.EventType, limit, offset int) ([]*entity.Event, error) {
	var eventModels []*model.EventModel

	tx := repo.db.WithContext(ctx).Where("location_id = ?", locationID)
	if eventType != "" {
		tx = tx.Where("event_type = ?", string(eventType))
	}

	if err := tx.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find events by location")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, eventM := range eventModels {
		event, err := toEventDomain(eventM)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode event metadata")
		}
		events = append(events, event)
	}

	return events, nil
}

// dailySendStatsRow is the scan target for the per-day aggregation.
type dailySendStatsRow struct {
	Day     string
	Channel string
	Count   int
}

// CountSentByDay aggregates notification_sent events per calendar day per
// channel over the given interval.
func (repo *eventRepository) CountSentByDay(ctx context.Context, locationID uuid.UUID, from, to time.Time) ([]*entity.DailySendStats, error) {
	var rows []*dailySendStatsRow

	query := `
		SELECT
		  to_char(created_at::date, 'YYYY-MM-DD') AS day,
		  channel,
		  COUNT(*) AS count
		FROM events
		WHERE location_id = ?
		  AND event_type = 'notification_sent'
		  AND created_at >= ?
		  AND created_at < ?
		GROUP BY day, channel
		ORDER BY day ASC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, locationID, from, to).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count sent events by day")
	}

	// Fold per-channel rows into one stats row per day, keeping day order.
	statsByDay := make(map[string]*entity.DailySendStats)
	stats := make([]*entity.DailySendStats, 0, len(rows))
	for _, row := range rows {
		day, ok := statsByDay[row.Day]
		if !ok {
			day = &entity.DailySendStats{Date: row.Day}
			statsByDay[row.Day] = day
			stats = append(stats, day)
		}

		switch entity.Channel(row.Channel) {
		case entity.ChannelSMS:
			day.SMS = row.Count
		case entity.ChannelEmail:
			day.Email = row.Count
		case entity.ChannelPush:
			day.Push = row.Count
		}
	}

	return stats, nil
}

// toEventDomain converts a GORM model to a domain entity.
func toEventDomain(data *model.EventModel) (*entity.Event, error) {
	event := &entity.Event{
		ID:         data.ID,
		LocationID: data.LocationID,
		UserID:     data.UserID,
		VisitorID:  data.VisitorID,
		Channel:    entity.Channel(data.Channel),
		EventType:  entity.EventType(data.EventType),
		CreatedAt:  data.CreatedAt,
	}

	if len(data.Metadata) > 0 {
		if err := json.Unmarshal(data.Metadata, &event.Metadata); err != nil {
			return nil, err
		}
	}

	return event, nil
}

// fromEventDomain converts a domain entity to a GORM model.
func fromEventDomain(data *entity.Event) (*model.EventModel, error) {
	eventM := &model.EventModel{
		ID:         data.ID,
		LocationID: data.LocationID,
		UserID:     data.UserID,
		VisitorID:  data.VisitorID,
		Channel:    string(data.Channel),
		EventType:  string(data.EventType),
		CreatedAt:  data.CreatedAt,
	}

	if data.Metadata != nil {
		raw, err := json.Marshal(data.Metadata)
		if err != nil {
			return nil, err
		}
		eventM.Metadata = datatypes.JSON(raw)
	}

	return eventM, nil
}
