package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clockAt(hour, minute int) time.Time {
	return time.Date(2025, time.March, 10, hour, minute, 0, 0, time.UTC)
}

func TestParseTimeWindow(t *testing.T) {
	w, err := ParseTimeWindow("09:00", "21:00")
	require.NoError(t, err)
	assert.Equal(t, 9*60, w.StartMinute)
	assert.Equal(t, 21*60, w.EndMinute)

	_, err = ParseTimeWindow("9am", "21:00")
	assert.Error(t, err)

	_, err = ParseTimeWindow("09:00", "25:61")
	assert.Error(t, err)
}

func TestTimeWindow_Contains_DayWindow(t *testing.T) {
	w, err := ParseTimeWindow("09:00", "21:00")
	require.NoError(t, err)

	assert.True(t, w.Contains(clockAt(9, 0)), "start bound is inclusive")
	assert.True(t, w.Contains(clockAt(12, 30)))
	assert.True(t, w.Contains(clockAt(20, 59)))
	assert.False(t, w.Contains(clockAt(21, 0)), "end bound is exclusive")
	assert.False(t, w.Contains(clockAt(8, 59)))
	assert.False(t, w.Contains(clockAt(23, 0)))
}

func TestTimeWindow_Contains_WrapsPastMidnight(t *testing.T) {
	w, err := ParseTimeWindow("22:00", "06:00")
	require.NoError(t, err)

	assert.True(t, w.Contains(clockAt(23, 30)))
	assert.True(t, w.Contains(clockAt(2, 0)))
	assert.True(t, w.Contains(clockAt(22, 0)))
	assert.False(t, w.Contains(clockAt(6, 0)))
	assert.False(t, w.Contains(clockAt(12, 0)))
	assert.False(t, w.Contains(clockAt(21, 59)))
}

func TestTimeWindow_Contains_DegenerateWindowIsEmpty(t *testing.T) {
	w, err := ParseTimeWindow("10:00", "10:00")
	require.NoError(t, err)

	assert.False(t, w.Contains(clockAt(10, 0)))
	assert.False(t, w.Contains(clockAt(15, 0)))
}

func TestTimeWindow_Minutes(t *testing.T) {
	day, _ := ParseTimeWindow("09:00", "21:00")
	assert.Equal(t, 12*60, day.Minutes())

	night, _ := ParseTimeWindow("22:00", "06:00")
	assert.Equal(t, 8*60, night.Minutes())
}

func TestAutomation_Window(t *testing.T) {
	auto := &Automation{StartTime: "09:00", EndTime: "21:00"}
	w, ok, err := auto.Window()
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, w.Contains(clockAt(10, 0)))

	unbounded := &Automation{}
	_, ok, err = unbounded.Window()
	require.NoError(t, err)
	assert.False(t, ok, "missing bounds mean no window restriction")

	broken := &Automation{StartTime: "soon", EndTime: "21:00"}
	_, _, err = broken.Window()
	assert.Error(t, err)
}

func TestAutomation_Cooldown(t *testing.T) {
	auto := &Automation{CooldownMinutes: 60}
	assert.Equal(t, time.Hour, auto.Cooldown())
}

func TestVisitor_ContactFor(t *testing.T) {
	v := &Visitor{PhoneNumber: "+17345550100", DeviceToken: "tok-1"}

	to, ok := v.ContactFor(ChannelSMS)
	assert.True(t, ok)
	assert.Equal(t, "+17345550100", to)

	_, ok = v.ContactFor(ChannelEmail)
	assert.False(t, ok)

	to, ok = v.ContactFor(ChannelPush)
	assert.True(t, ok)
	assert.Equal(t, "tok-1", to)
}
