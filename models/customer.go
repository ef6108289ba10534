package models

import "time"

type Customer struct {
	ID        uint    `gorm:"primaryKey"`
	FullName  string  `gorm:"type:varchar(120);not null"`
	Email     string  `gorm:"type:varchar(120);not null;uniqueIndex"`
	Phone     string  `gorm:"type:varchar(9);not null"`
	Notes     *string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomerPatch carries a partial update. Nil fields are left untouched.
type CustomerPatch struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Notes    *string `json:"notes"`
}
