package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/acastell/restobook/config"
	"github.com/acastell/restobook/models"
	"github.com/acastell/restobook/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservationService struct {
	DB  *gorm.DB
	cfg *config.Config
}

func NewReservationService(db *gorm.DB, cfg *config.Config) *ReservationService {
	return &ReservationService{DB: db, cfg: cfg}
}

type CreateReservationInput struct {
	CustomerID uint
	TableID    uint
	PartySize  int
	StartTime  time.Time
	Notes      *string
}

// ReservationFilter narrows List. Date matches reservations starting on
// that calendar day.
type ReservationFilter struct {
	Date       *time.Time
	CustomerID *uint
}

// Create runs the admission checks in a fixed order and stops at the first
// violated rule: start in the future, opening hours, customer exists, table
// exists, table active, capacity, free window. Check and insert share one
// serializable transaction so two concurrent requests for the same slot
// cannot both pass the overlap check: under weaker isolation MySQL would
// give both a consistent snapshot with zero overlaps.
func (s *ReservationService) Create(in CreateReservationInput) (*models.Reservation, error) {
	if !in.StartTime.After(time.Now()) {
		return nil, fmt.Errorf("%w: got %s", models.ErrPastStartTime, in.StartTime.Format(time.RFC3339))
	}
	if !s.cfg.WithinOpeningHours(in.StartTime) {
		return nil, fmt.Errorf("%w: start %s", models.ErrOutOfHours, in.StartTime.Format("15:04"))
	}

	end := in.StartTime.Add(s.cfg.ReservationDuration)
	reservation := &models.Reservation{
		Code:       uuid.New().String(),
		CustomerID: in.CustomerID,
		TableID:    in.TableID,
		PartySize:  in.PartySize,
		Status:     models.StatusPending,
		StartTime:  in.StartTime,
		EndTime:    end,
		Notes:      in.Notes,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, in.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id %d", models.ErrCustomerNotFound, in.CustomerID)
			}
			return err
		}

		if err := s.checkTableAndWindow(tx, reservation, 0); err != nil {
			return err
		}

		return tx.Create(reservation).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Reservation %s created: table %d, customer %d, %s",
		reservation.Code, reservation.TableID, reservation.CustomerID,
		reservation.StartTime.Format(time.RFC3339))
	return reservation, nil
}

// checkTableAndWindow validates the table-dependent rules for a reservation
// about to be written: the table must exist and be active, fit the party,
// and be free for the reservation's window. A missing and an inactive table
// surface the same error kind; callers cannot tell them apart, only logs.
func (s *ReservationService) checkTableAndWindow(tx *gorm.DB, r *models.Reservation, excludeID uint) error {
	var table models.Table
	if err := tx.First(&table, r.TableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: no table with id %d", models.ErrTableUnavailable, r.TableID)
		}
		return err
	}
	if !table.Active {
		return fmt.Errorf("%w: table %d is not active", models.ErrTableUnavailable, table.Number)
	}
	if r.PartySize > table.Capacity {
		return fmt.Errorf("%w: table %d seats at most %d", models.ErrCapacityExceeded, table.Number, table.Capacity)
	}

	free, err := tableAvailable(tx, table.ID, r.StartTime, r.EndTime, excludeID)
	if err != nil {
		return err
	}
	if !free {
		return fmt.Errorf("%w: table %d between %s and %s", models.ErrOverlappingReservation,
			table.Number, r.StartTime.Format("15:04"), r.EndTime.Format("15:04"))
	}
	return nil
}

// Update applies only the fields present in the patch. Changing the start
// time recomputes the end time and must land in the future; changing start,
// table or party size re-runs the admission checks with the reservation's
// own window excluded.
func (s *ReservationService) Update(id uint, patch models.ReservationPatch) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id %d", models.ErrReservationNotFound, id)
			}
			return err
		}

		if patch.TableID != nil {
			reservation.TableID = *patch.TableID
		}
		if patch.PartySize != nil {
			reservation.PartySize = *patch.PartySize
		}
		if patch.StartTime != nil {
			reservation.StartTime = *patch.StartTime
			reservation.EndTime = patch.StartTime.Add(s.cfg.ReservationDuration)
		}
		if patch.Notes != nil {
			reservation.Notes = patch.Notes
		}

		if patch.StartTime != nil || patch.TableID != nil || patch.PartySize != nil {
			if patch.StartTime != nil && !reservation.StartTime.After(time.Now()) {
				return fmt.Errorf("%w: got %s", models.ErrPastStartTime, reservation.StartTime.Format(time.RFC3339))
			}
			if !s.cfg.WithinOpeningHours(reservation.StartTime) {
				return fmt.Errorf("%w: start %s", models.ErrOutOfHours, reservation.StartTime.Format("15:04"))
			}
			if err := s.checkTableAndWindow(tx, &reservation, reservation.ID); err != nil {
				return err
			}
		}

		return tx.Save(&reservation).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Reservation %s updated", reservation.Code)
	return &reservation, nil
}

func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", models.ErrReservationNotFound, id)
		}
		return nil, err
	}
	return &reservation, nil
}

func (s *ReservationService) List(filter ReservationFilter) ([]models.Reservation, error) {
	query := s.DB.Order("start_time")
	if filter.Date != nil {
		dayStart := time.Date(filter.Date.Year(), filter.Date.Month(), filter.Date.Day(),
			0, 0, 0, 0, filter.Date.Location())
		query = query.Where("start_time >= ? AND start_time < ?", dayStart, dayStart.AddDate(0, 0, 1))
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}

	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// Confirm moves a pending reservation to confirmed.
func (s *ReservationService) Confirm(id uint) (*models.Reservation, error) {
	return s.transition(id, models.StatusConfirmed, []string{models.StatusPending})
}

// Complete marks a pending or confirmed reservation as completed.
func (s *ReservationService) Complete(id uint) (*models.Reservation, error) {
	return s.transition(id, models.StatusCompleted, []string{models.StatusPending, models.StatusConfirmed})
}

// Cancel is the only delete the API offers: the record stays, the slot is
// freed immediately. Completed and cancelled reservations stay as they are.
func (s *ReservationService) Cancel(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", models.ErrReservationNotFound, id)
		}
		return nil, err
	}

	if reservation.Status != models.StatusPending && reservation.Status != models.StatusConfirmed {
		return nil, fmt.Errorf("%w: reservation is %s", models.ErrCancellationNotAllowed, reservation.Status)
	}

	reservation.Status = models.StatusCancelled
	if err := s.DB.Save(&reservation).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Reservation %s cancelled", reservation.Code)
	return &reservation, nil
}

func (s *ReservationService) transition(id uint, target string, allowedFrom []string) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", models.ErrReservationNotFound, id)
		}
		return nil, err
	}

	allowed := false
	for _, from := range allowedFrom {
		if reservation.Status == from {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: cannot move %s reservation to %s",
			models.ErrInvalidTransition, reservation.Status, target)
	}

	reservation.Status = target
	if err := s.DB.Save(&reservation).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Reservation %s -> %s", reservation.Code, target)
	return &reservation, nil
}
