package services

import (
	"math"
	"time"

	"github.com/acastell/restobook/models"
	"gorm.io/gorm"
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

type DailyOccupancy struct {
	Date             string  `json:"date"`
	Reservations     int64   `json:"reservations"`
	OccupancyPercent float64 `json:"occupancy_percent"`
}

type Summary struct {
	TotalReservations int64            `json:"total_reservations"`
	ByStatus          map[string]int64 `json:"by_status"`
	TotalCustomers    int64            `json:"total_customers"`
	TotalTables       int64            `json:"total_tables"`
}

// DailyOccupancy compares the day's non-cancelled reservations against the
// table count.
func (s *StatsService) DailyOccupancy(day time.Time) (*DailyOccupancy, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var reservations int64
	err := s.DB.Model(&models.Reservation{}).
		Where("start_time >= ? AND start_time < ?", dayStart, dayEnd).
		Where("status <> ?", models.StatusCancelled).
		Count(&reservations).Error
	if err != nil {
		return nil, err
	}

	var tables int64
	if err := s.DB.Model(&models.Table{}).Count(&tables).Error; err != nil {
		return nil, err
	}

	percent := 0.0
	if tables > 0 {
		percent = math.Round(float64(reservations)/float64(tables)*10000) / 100
	}

	return &DailyOccupancy{
		Date:             dayStart.Format("2006-01-02"),
		Reservations:     reservations,
		OccupancyPercent: percent,
	}, nil
}

func (s *StatsService) Summary() (*Summary, error) {
	summary := &Summary{ByStatus: make(map[string]int64)}

	if err := s.DB.Model(&models.Reservation{}).Count(&summary.TotalReservations).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Customer{}).Count(&summary.TotalCustomers).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Table{}).Count(&summary.TotalTables).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		Status string
		Count  int64
	}
	err := s.DB.Model(&models.Reservation{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		summary.ByStatus[row.Status] = row.Count
	}

	return summary, nil
}
