package services

import (
	"time"

	"github.com/acastell/restobook/models"
	"gorm.io/gorm"
)

// tableAvailable reports whether a table is free for the half-open window
// [start, end). Two windows overlap iff each starts before the other ends,
// so back-to-back seatings that touch at an endpoint do not collide.
// Cancelled reservations never block a slot. excludeID, when non-zero,
// leaves one reservation out of the check (the update path checking a
// reservation against its own old window).
func tableAvailable(tx *gorm.DB, tableID uint, start, end time.Time, excludeID uint) (bool, error) {
	query := tx.Model(&models.Reservation{}).
		Where("table_id = ?", tableID).
		Where("status <> ?", models.StatusCancelled).
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}
