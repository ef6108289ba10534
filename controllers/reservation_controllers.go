package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/acastell/restobook/config"
	"github.com/acastell/restobook/models"
	"github.com/acastell/restobook/services"
	"github.com/acastell/restobook/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReservationController struct {
	svc *services.ReservationService
}

func NewReservationController(db *gorm.DB, cfg *config.Config) *ReservationController {
	return &ReservationController{svc: services.NewReservationService(db, cfg)}
}

// CreateReservation -> books a table. Status and end time are never taken
// from the request: every reservation starts pending and ends one service
// duration after it starts.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		CustomerID uint      `json:"customer_id" binding:"required"`
		TableID    uint      `json:"table_id" binding:"required"`
		PartySize  int       `json:"party_size" binding:"required,gt=0"`
		StartTime  time.Time `json:"start_time" binding:"required"`
		Notes      *string   `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.svc.Create(services.CreateReservationInput{
		CustomerID: req.CustomerID,
		TableID:    req.TableID,
		PartySize:  req.PartySize,
		StartTime:  req.StartTime,
		Notes:      req.Notes,
	})
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)
}

// ListReservations -> all reservations, optionally filtered by day
// (?date=2026-08-31) or customer (?customer_id=).
func (rc *ReservationController) ListReservations(c *gin.Context) {
	var filter services.ReservationFilter

	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		filter.Date = &date
	}
	if raw := c.Query("customer_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		customerID := uint(id)
		filter.CustomerID = &customerID
	}

	reservations, err := rc.svc.List(filter)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, err := pathID(c, "reservation_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.svc.GetByID(id)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// UpdateReservation -> partial update; absent fields stay as they are.
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, err := pathID(c, "reservation_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var patch models.ReservationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.svc.Update(id, patch)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}

// CancelReservation -> soft delete: the reservation is kept, its slot freed.
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	id, err := pathID(c, "reservation_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.svc.Cancel(id)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation cancelled", reservation)
}

func (rc *ReservationController) ConfirmReservation(c *gin.Context) {
	id, err := pathID(c, "reservation_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.svc.Confirm(id)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation confirmed", reservation)
}

func (rc *ReservationController) CompleteReservation(c *gin.Context) {
	id, err := pathID(c, "reservation_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.svc.Complete(id)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation completed", reservation)
}

func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
