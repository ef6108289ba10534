package controllers

import (
	"errors"
	"net/http"

	"github.com/acastell/restobook/models"
	"github.com/acastell/restobook/services"
	"github.com/acastell/restobook/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CustomerController struct {
	svc *services.CustomerService
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{svc: services.NewCustomerService(db)}
}

// CreateCustomer -> registers a customer
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req struct {
		FullName string  `json:"full_name" binding:"required,min=3"`
		Email    string  `json:"email" binding:"required,email"`
		Phone    string  `json:"phone" binding:"required,len=9,numeric"`
		Notes    *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer, err := cc.svc.Create(services.CreateCustomerInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Notes:    req.Notes,
	})
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Customer created", customer)
}

func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	customers, err := cc.svc.List()
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}

// SearchCustomers -> ?q= matches name, email or phone
func (cc *CustomerController) SearchCustomers(c *gin.Context) {
	text := c.Query("q")
	if text == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("query parameter q is required"))
		return
	}

	customers, err := cc.svc.Search(text)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Matching customers", customers)
}

func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, err := pathID(c, "customer_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer, err := cc.svc.GetByID(id)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer detail", customer)
}

func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, err := pathID(c, "customer_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var patch models.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer, err := cc.svc.Update(id, patch)
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer updated", customer)
}

// DeleteCustomer -> only customers without live reservations can go
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, err := pathID(c, "customer_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := cc.svc.Delete(id); err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer deleted", gin.H{"id": id})
}
