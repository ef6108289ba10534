package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/acastell/restobook/models"
	"github.com/acastell/restobook/utils"
	"gorm.io/gorm"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

type CreateCustomerInput struct {
	FullName string
	Email    string
	Phone    string
	Notes    *string
}

// Create registers a customer. The unique index on email is the source of
// truth for duplicates; a pre-check would leave a window for a concurrent
// insert to slip through.
func (s *CustomerService) Create(in CreateCustomerInput) (*models.Customer, error) {
	customer := &models.Customer{
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		Notes:    in.Notes,
	}
	if err := s.DB.Create(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email %s", models.ErrDuplicateKey, in.Email)
		}
		return nil, err
	}

	utils.InfoLogger.Printf("Customer %d registered (%s)", customer.ID, customer.Email)
	return customer, nil
}

func (s *CustomerService) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", models.ErrCustomerNotFound, id)
		}
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerService) List() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.DB.Order("id").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// Search matches name, email or phone, case-insensitively.
func (s *CustomerService) Search(text string) ([]models.Customer, error) {
	pattern := "%" + strings.ToLower(text) + "%"
	var customers []models.Customer
	err := s.DB.
		Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?", pattern, pattern, pattern).
		Order("id").
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *CustomerService) Update(id uint, patch models.CustomerPatch) (*models.Customer, error) {
	customer, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		customer.Email = *patch.Email
	}
	if patch.FullName != nil {
		customer.FullName = *patch.FullName
	}
	if patch.Phone != nil {
		customer.Phone = *patch.Phone
	}
	if patch.Notes != nil {
		customer.Notes = patch.Notes
	}

	if err := s.DB.Save(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email %s", models.ErrDuplicateKey, customer.Email)
		}
		return nil, err
	}
	return customer, nil
}

// Delete removes a customer, but only when no reservation that still counts
// (anything not cancelled) references them.
func (s *CustomerService) Delete(id uint) error {
	customer, err := s.GetByID(id)
	if err != nil {
		return err
	}

	var active int64
	err = s.DB.Model(&models.Reservation{}).
		Where("customer_id = ?", id).
		Where("status <> ?", models.StatusCancelled).
		Count(&active).Error
	if err != nil {
		return err
	}
	if active > 0 {
		return fmt.Errorf("%w: %d reservation(s)", models.ErrHasActiveReservations, active)
	}

	if err := s.DB.Delete(customer).Error; err != nil {
		return err
	}
	utils.InfoLogger.Printf("Customer %d deleted", id)
	return nil
}
