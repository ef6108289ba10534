package models

import "time"

const (
	LocationInterior = "interior"
	LocationTerrace  = "terrace"
	LocationPrivate  = "private"
)

// Tables come in fixed sizes: 2, 4, 6 or 8 seats.
type Table struct {
	ID       uint   `gorm:"primaryKey"`
	Number   int    `gorm:"not null;uniqueIndex"`
	Capacity int    `gorm:"not null"`
	Location string `gorm:"type:varchar(20);not null"`
	// No default tag: gorm drops zero-valued fields that carry one from the
	// INSERT, which would turn Active: false into active = true on create.
	// The service applies the true default instead.
	Active    bool `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TablePatch struct {
	Number   *int    `json:"number"`
	Capacity *int    `json:"capacity"`
	Location *string `json:"location"`
	Active   *bool   `json:"active"`
}
