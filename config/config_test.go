package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOpeningHours(t *testing.T) {
	ranges, err := ParseOpeningHours("13:00-23:00")
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, 13*60, ranges[0].Open)
	assert.Equal(t, 23*60, ranges[0].Close)

	ranges, err = ParseOpeningHours("12:00-16:00, 20:00-24:00")
	require.NoError(t, err)
	require.Len(t, ranges, 2)
	assert.Equal(t, 24*60, ranges[1].Close)

	for _, bad := range []string{"", "13:00", "23:00-13:00", "13:00-13:00", "25:00-26:00", "13:xx-23:00"} {
		_, err = ParseOpeningHours(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestWithinOpeningHours(t *testing.T) {
	hours, err := ParseOpeningHours("13:00-23:00")
	require.NoError(t, err)
	cfg := &Config{OpeningHours: hours, ReservationDuration: 2 * time.Hour}

	at := func(hour, minute int) time.Time {
		return time.Date(2026, 9, 10, hour, minute, 0, 0, time.UTC)
	}

	assert.True(t, cfg.WithinOpeningHours(at(13, 0)))
	assert.True(t, cfg.WithinOpeningHours(at(18, 30)))
	// closing time itself is the last admissible start
	assert.True(t, cfg.WithinOpeningHours(at(23, 0)))

	assert.False(t, cfg.WithinOpeningHours(at(12, 59)))
	assert.False(t, cfg.WithinOpeningHours(at(23, 1)))
	assert.False(t, cfg.WithinOpeningHours(at(0, 0)))
}

func TestWithinOpeningHoursSplitSchedule(t *testing.T) {
	hours, err := ParseOpeningHours("12:00-16:00,20:00-24:00")
	require.NoError(t, err)
	cfg := &Config{OpeningHours: hours, ReservationDuration: 2 * time.Hour}

	at := func(hour, minute int) time.Time {
		return time.Date(2026, 9, 10, hour, minute, 0, 0, time.UTC)
	}

	assert.True(t, cfg.WithinOpeningHours(at(12, 0)))
	assert.True(t, cfg.WithinOpeningHours(at(15, 30)))
	assert.True(t, cfg.WithinOpeningHours(at(21, 0)))
	assert.True(t, cfg.WithinOpeningHours(at(23, 59)))

	assert.False(t, cfg.WithinOpeningHours(at(17, 0)))
	assert.False(t, cfg.WithinOpeningHours(at(11, 59)))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("OPENING_HOURS", "")
	t.Setenv("RESERVATION_DURATION", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.ReservationDuration)
	require.Len(t, cfg.OpeningHours, 1)
	assert.Equal(t, HourRange{Open: 13 * 60, Close: 23 * 60}, cfg.OpeningHours[0])
}
