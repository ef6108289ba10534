package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/acastell/restobook/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCustomerRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewCustomerController(db)
	router.POST("/customers", ctrl.CreateCustomer)
	router.GET("/customers", ctrl.GetAllCustomers)
	router.GET("/customers/search", ctrl.SearchCustomers)
	router.GET("/customers/:customer_id", ctrl.GetCustomerByID)
	router.PATCH("/customers/:customer_id", ctrl.UpdateCustomer)
	router.DELETE("/customers/:customer_id", ctrl.DeleteCustomer)
	return router
}

func TestCreateCustomerEndpoint(t *testing.T) {
	db := setupTestDB(t)
	router := setupCustomerRouter(db)

	w := doJSON(router, "POST", "/customers", gin.H{
		"full_name": "Maria Lopez",
		"email":     "maria@example.com",
		"phone":     "612345678",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// duplicate email
	w = doJSON(router, "POST", "/customers", gin.H{
		"full_name": "Maria Again",
		"email":     "maria@example.com",
		"phone":     "698765432",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// short name, bad email, bad phone all fail binding
	for _, payload := range []gin.H{
		{"full_name": "Ma", "email": "ok@example.com", "phone": "612345678"},
		{"full_name": "Maria Lopez", "email": "not-an-email", "phone": "612345678"},
		{"full_name": "Maria Lopez", "email": "ok@example.com", "phone": "1234"},
		{"full_name": "Maria Lopez", "email": "ok@example.com", "phone": "61234567a"},
	} {
		w = doJSON(router, "POST", "/customers", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestSearchCustomersEndpoint(t *testing.T) {
	db := setupTestDB(t)
	router := setupCustomerRouter(db)

	require.NoError(t, db.Create(&models.Customer{FullName: "Maria Lopez", Email: "maria@example.com", Phone: "612345678"}).Error)
	require.NoError(t, db.Create(&models.Customer{FullName: "Juan Garcia", Email: "juan@example.com", Phone: "698765432"}).Error)

	w := doJSON(router, "GET", "/customers/search?q=garcia", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Juan Garcia", data[0].(map[string]interface{})["FullName"])

	w = doJSON(router, "GET", "/customers/search", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteCustomerEndpoint(t *testing.T) {
	db := setupTestDB(t)
	router := setupCustomerRouter(db)
	customer, table := seedReservationFixtures(t, db)

	reservation := models.Reservation{
		Code:       "11111111-2222-3333-4444-555555555555",
		CustomerID: customer.ID,
		TableID:    table.ID,
		PartySize:  2,
		Status:     models.StatusPending,
		StartTime:  seatingAt(14, 0),
		EndTime:    seatingAt(16, 0),
	}
	require.NoError(t, db.Create(&reservation).Error)

	w := doJSON(router, "DELETE", fmt.Sprintf("/customers/%d", customer.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	require.NoError(t, db.Model(&reservation).Update("status", models.StatusCancelled).Error)

	w = doJSON(router, "DELETE", fmt.Sprintf("/customers/%d", customer.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "DELETE", fmt.Sprintf("/customers/%d", customer.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
