package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/acastell/restobook/config"
	"github.com/acastell/restobook/models"
	"github.com/acastell/restobook/utils"
	"gorm.io/gorm"
)

type TableService struct {
	DB  *gorm.DB
	cfg *config.Config
}

func NewTableService(db *gorm.DB, cfg *config.Config) *TableService {
	return &TableService{DB: db, cfg: cfg}
}

type CreateTableInput struct {
	Number   int
	Capacity int
	Location string
	Active   *bool
}

// Create adds a table, active unless the input says otherwise. Duplicate
// numbers are caught by the unique index rather than a racy pre-check.
func (s *TableService) Create(in CreateTableInput) (*models.Table, error) {
	table := &models.Table{
		Number:   in.Number,
		Capacity: in.Capacity,
		Location: in.Location,
		Active:   true,
	}
	if in.Active != nil {
		table.Active = *in.Active
	}
	if err := s.DB.Create(table).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: table number %d", models.ErrDuplicateKey, in.Number)
		}
		return nil, err
	}

	utils.InfoLogger.Printf("Table %d created (capacity %d, %s)", table.Number, table.Capacity, table.Location)
	return table, nil
}

func (s *TableService) GetByID(id uint) (*models.Table, error) {
	var table models.Table
	if err := s.DB.First(&table, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", models.ErrTableNotFound, id)
		}
		return nil, err
	}
	return &table, nil
}

func (s *TableService) List() ([]models.Table, error) {
	var tables []models.Table
	if err := s.DB.Order("number").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (s *TableService) Update(id uint, patch models.TablePatch) (*models.Table, error) {
	table, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Number != nil {
		table.Number = *patch.Number
	}
	if patch.Capacity != nil {
		table.Capacity = *patch.Capacity
	}
	if patch.Location != nil {
		table.Location = *patch.Location
	}
	if patch.Active != nil {
		table.Active = *patch.Active
	}

	if err := s.DB.Save(table).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: table number %d", models.ErrDuplicateKey, table.Number)
		}
		return nil, err
	}
	return table, nil
}

// FindAvailable returns the active tables that seat partySize and are free
// for one full seating starting at start.
func (s *TableService) FindAvailable(start time.Time, partySize int) ([]models.Table, error) {
	end := start.Add(s.cfg.ReservationDuration)

	occupied := s.DB.Model(&models.Reservation{}).
		Select("table_id").
		Where("status <> ?", models.StatusCancelled).
		Where("start_time < ? AND end_time > ?", end, start)

	var tables []models.Table
	err := s.DB.
		Where("capacity >= ?", partySize).
		Where("active = ?", true).
		Where("id NOT IN (?)", occupied).
		Order("number").
		Find(&tables).Error
	if err != nil {
		return nil, err
	}
	return tables, nil
}

// Delete removes a table unless an upcoming reservation still points at it.
func (s *TableService) Delete(id uint) error {
	table, err := s.GetByID(id)
	if err != nil {
		return err
	}

	var upcoming int64
	err = s.DB.Model(&models.Reservation{}).
		Where("table_id = ?", id).
		Where("status <> ?", models.StatusCancelled).
		Where("start_time > ?", time.Now()).
		Count(&upcoming).Error
	if err != nil {
		return err
	}
	if upcoming > 0 {
		return fmt.Errorf("%w: %d upcoming reservation(s)", models.ErrTableHasReservations, upcoming)
	}

	if err := s.DB.Delete(table).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Table %d deleted", table.Number)
	return nil
}
