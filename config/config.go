package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// HourRange is one stretch of opening time, in minutes since midnight.
// Close may be 1440 to express a range that runs until midnight.
type HourRange struct {
	Open  int
	Close int
}

type Config struct {
	Port                string
	OpeningHours        []HourRange
	ReservationDuration time.Duration
}

// Load reads service settings from the environment. Defaults give a single
// 13:00-23:00 window and two-hour seatings.
func Load() (*Config, error) {
	hours, err := ParseOpeningHours(getEnv("OPENING_HOURS", "13:00-23:00"))
	if err != nil {
		return nil, fmt.Errorf("OPENING_HOURS: %w", err)
	}

	duration, err := time.ParseDuration(getEnv("RESERVATION_DURATION", "2h"))
	if err != nil {
		return nil, fmt.Errorf("RESERVATION_DURATION: %w", err)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("RESERVATION_DURATION must be positive, got %s", duration)
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		OpeningHours:        hours,
		ReservationDuration: duration,
	}, nil
}

// ParseOpeningHours parses a comma-separated list of HH:MM-HH:MM ranges,
// e.g. "13:00-23:00" or "12:00-16:00,20:00-24:00".
func ParseOpeningHours(value string) ([]HourRange, error) {
	var ranges []HourRange
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		bounds := strings.Split(part, "-")
		if len(bounds) != 2 {
			return nil, fmt.Errorf("invalid range %q", part)
		}
		open, err := parseClock(bounds[0])
		if err != nil {
			return nil, fmt.Errorf("invalid range %q: %w", part, err)
		}
		close, err := parseClock(bounds[1])
		if err != nil {
			return nil, fmt.Errorf("invalid range %q: %w", part, err)
		}
		if close <= open {
			return nil, fmt.Errorf("invalid range %q: closes before it opens", part)
		}
		ranges = append(ranges, HourRange{Open: open, Close: close})
	}
	if len(ranges) == 0 {
		return nil, fmt.Errorf("no opening hours given")
	}
	return ranges, nil
}

func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("bad clock time %q", s)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("bad clock time %q", s)
	}
	return h*60 + m, nil
}

// WithinOpeningHours reports whether a seating may start at t. The closing
// bound is inclusive: with a 13:00-23:00 window the last admissible start is
// 23:00 sharp, so the final seating runs past closing until 01:00.
func (c *Config) WithinOpeningHours(t time.Time) bool {
	minutes := t.Hour()*60 + t.Minute()
	for _, r := range c.OpeningHours {
		if minutes >= r.Open && minutes <= r.Close {
			return true
		}
	}
	return false
}

// InitDB opens the configured database. DB_DRIVER selects mysql (default)
// or sqlite for local runs. TranslateError lets services match unique
// constraint violations as gorm.ErrDuplicatedKey on either driver.
func InitDB() (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}
	switch getEnv("DB_DRIVER", "mysql") {
	case "sqlite":
		return gorm.Open(sqlite.Open(getEnv("DB_PATH", "restobook.db")), gormCfg)
	default:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			getEnv("DB_USER", "root"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "127.0.0.1"),
			getEnv("DB_PORT", "3306"),
			getEnv("DB_NAME", "restobook"),
		)
		return gorm.Open(mysql.Open(dsn), gormCfg)
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
