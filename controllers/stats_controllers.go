package controllers

import (
	"net/http"
	"time"

	"github.com/acastell/restobook/services"
	"github.com/acastell/restobook/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StatsController struct {
	svc *services.StatsService
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{svc: services.NewStatsService(db)}
}

// GetDailyOccupancy -> ?date=2026-08-31
func (sc *StatsController) GetDailyOccupancy(c *gin.Context) {
	day, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	occupancy, err := sc.svc.DailyOccupancy(day)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daily occupancy", occupancy)
}

func (sc *StatsController) GetSummary(c *gin.Context) {
	summary, err := sc.svc.Summary()
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "System summary", summary)
}
