// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Automation is the per-location, per-channel notification configuration.
// At most one automation exists per (location, channel) pair; upserts are
// keyed on that pair. A channel with no automation row, or with
// enabled=false, never fires.
type Automation struct {
	ID              uuid.UUID `json:"id"`               // The Global Unique Identifier (GUID) for the automation.
	LocationID      uuid.UUID `json:"location_id"`      // The location this automation belongs to.
	Channel         Channel   `json:"channel"`          // sms, email or push.
	Enabled         bool      `json:"enabled"`          // Whether this channel may fire at all.
	CooldownMinutes int       `json:"cooldown_minutes"` // Minimum minutes between two sends to the same visitor.
	StartTime       string    `json:"start_time"`       // Active-window start as bare "HH:MM", empty for no window.
	EndTime         string    `json:"end_time"`         // Active-window end as bare "HH:MM", empty for no window.
	TemplateSubject string    `json:"template_subject"` // Subject template; required for email, absent for sms.
	TemplateBody    string    `json:"template_body"`    // Body template with {placeholder} variables.
	CreatedAt       time.Time `json:"created_at"`       // Timestamp of when this record was created.
	UpdatedAt       time.Time `json:"updated_at"`       // Timestamp of the last modification.
}

// Cooldown returns the configured cooldown as a duration.
func (a *Automation) Cooldown() time.Duration {
	return time.Duration(a.CooldownMinutes) * time.Minute
}

// Window parses the automation's active window. The second return value is
// false when no window is configured (either bound empty), meaning the
// channel may fire at any time of day.
func (a *Automation) Window() (TimeWindow, bool, error) {
	if a.StartTime == "" || a.EndTime == "" {
		return TimeWindow{}, false, nil
	}

	w, err := ParseTimeWindow(a.StartTime, a.EndTime)
	if err != nil {
		return TimeWindow{}, false, err
	}

	return w, true, nil
}

// TimeWindow is a time-of-day range during which a channel is permitted to
// send. Bounds are minutes since midnight; the window is half-open
// [Start, End). A window whose start is later than its end wraps past
// midnight (e.g. 22:00-06:00 accepts 23:30 and 02:00 but rejects 12:00).
type TimeWindow struct {
	StartMinute int
	EndMinute   int
}

const minutesPerDay = 24 * 60

// ParseTimeWindow parses two bare "HH:MM" wall-clock strings. The source
// schema stores these without a timezone; callers decide which zone the
// evaluation clock runs in.
func ParseTimeWindow(start, end string) (TimeWindow, error) {
	startMinute, err := parseWallClock(start)
	if err != nil {
		return TimeWindow{}, errors.Wrap(err, "invalid window start")
	}

	endMinute, err := parseWallClock(end)
	if err != nil {
		return TimeWindow{}, errors.Wrap(err, "invalid window end")
	}

	return TimeWindow{StartMinute: startMinute, EndMinute: endMinute}, nil
}

func parseWallClock(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %q as HH:MM", value)
	}

	return t.Hour()*60 + t.Minute(), nil
}

// Contains reports whether the given instant's wall clock falls inside the
// window. The instant must already be in the evaluation timezone.
func (w TimeWindow) Contains(t time.Time) bool {
	minute := t.Hour()*60 + t.Minute()

	if w.StartMinute == w.EndMinute {
		// Degenerate window: [x, x) is empty, nothing sends.
		return false
	}

	if w.StartMinute < w.EndMinute {
		return minute >= w.StartMinute && minute < w.EndMinute
	}

	// Wraps past midnight.
	return minute >= w.StartMinute || minute < w.EndMinute
}

// Minutes returns the window length in minutes, accounting for wraparound.
func (w TimeWindow) Minutes() int {
	if w.StartMinute <= w.EndMinute {
		return w.EndMinute - w.StartMinute
	}

	return minutesPerDay - w.StartMinute + w.EndMinute
}
