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

type TableController struct {
	svc *services.TableService
}

func NewTableController(db *gorm.DB, cfg *config.Config) *TableController {
	return &TableController{svc: services.NewTableService(db, cfg)}
}

// CreateTable -> adds a table; numbers are unique, capacities come in fixed
// sizes.
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		Number   int    `json:"number" binding:"required,min=1,max=99"`
		Capacity int    `json:"capacity" binding:"required,oneof=2 4 6 8"`
		Location string `json:"location" binding:"required,oneof=interior terrace private"`
		Active   *bool  `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.svc.Create(services.CreateTableInput{
		Number:   req.Number,
		Capacity: req.Capacity,
		Location: req.Location,
		Active:   req.Active,
	})
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Table created", table)
}

func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.svc.List()
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// FindAvailableTables -> ?date=RFC3339&party_size=N lists free tables for a
// full seating starting at date.
func (tc *TableController) FindAvailableTables(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("date"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	partySize, err := strconv.Atoi(c.Query("party_size"))
	if err != nil || partySize <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errParty)
		return
	}

	tables, err := tc.svc.FindAvailable(start, partySize)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Available tables", tables)
}

func (tc *TableController) GetTableByID(c *gin.Context) {
	id, err := pathID(c, "table_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.svc.GetByID(id)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

func (tc *TableController) UpdateTable(c *gin.Context) {
	id, err := pathID(c, "table_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var patch models.TablePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.svc.Update(id, patch)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// DeleteTable -> refused while upcoming reservations still point at it
func (tc *TableController) DeleteTable(c *gin.Context) {
	id, err := pathID(c, "table_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := tc.svc.Delete(id); err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": id})
}
