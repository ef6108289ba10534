package models

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Reservation references its customer and table by id only. Existence is
// checked by the rule engine at write time; a hard foreign key would pin
// customers and tables behind cancelled reservations, which stay on file
// forever.
type Reservation struct {
	ID         uint      `gorm:"primaryKey"`
	Code       string    `gorm:"type:varchar(36);not null;uniqueIndex"`
	CustomerID uint      `gorm:"not null;index"`
	TableID    uint      `gorm:"not null;index"`
	PartySize  int       `gorm:"not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending'"`
	StartTime  time.Time `gorm:"not null;index"`
	EndTime    time.Time `gorm:"not null"`
	Notes      *string   `gorm:"type:varchar(255)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ReservationPatch carries a partial update. EndTime is never patched
// directly; it follows StartTime.
type ReservationPatch struct {
	StartTime *time.Time `json:"start_time"`
	TableID   *uint      `json:"table_id"`
	PartySize *int       `json:"party_size"`
	Notes     *string    `json:"notes"`
}
