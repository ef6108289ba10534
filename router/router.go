package router

import (
	"github.com/acastell/restobook/config"
	"github.com/acastell/restobook/controllers"
	"github.com/acastell/restobook/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	customerCtrl := controllers.NewCustomerController(db)
	tableCtrl := controllers.NewTableController(db, cfg)
	reservationCtrl := controllers.NewReservationController(db, cfg)
	statsCtrl := controllers.NewStatsController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	writes := middlewares.NewStrictRateLimiter()

	customers := r.Group("/customers")
	{
		customers.POST("", writes, customerCtrl.CreateCustomer)
		customers.GET("", customerCtrl.GetAllCustomers)
		customers.GET("/search", customerCtrl.SearchCustomers)
		customers.GET("/:customer_id", customerCtrl.GetCustomerByID)
		customers.PATCH("/:customer_id", writes, customerCtrl.UpdateCustomer)
		customers.DELETE("/:customer_id", writes, customerCtrl.DeleteCustomer)
	}

	tables := r.Group("/tables")
	{
		tables.POST("", writes, tableCtrl.CreateTable)
		tables.GET("", tableCtrl.GetAllTables)
		tables.GET("/available", tableCtrl.FindAvailableTables)
		tables.GET("/:table_id", tableCtrl.GetTableByID)
		tables.PATCH("/:table_id", writes, tableCtrl.UpdateTable)
		tables.DELETE("/:table_id", writes, tableCtrl.DeleteTable)
	}

	reservations := r.Group("/reservations")
	{
		reservations.POST("", writes, reservationCtrl.CreateReservation)
		reservations.GET("", reservationCtrl.ListReservations)
		reservations.GET("/:reservation_id", reservationCtrl.GetReservationByID)
		reservations.PATCH("/:reservation_id", writes, reservationCtrl.UpdateReservation)
		reservations.DELETE("/:reservation_id", writes, reservationCtrl.CancelReservation)
		reservations.PATCH("/:reservation_id/confirm", writes, reservationCtrl.ConfirmReservation)
		reservations.PATCH("/:reservation_id/complete", writes, reservationCtrl.CompleteReservation)
	}

	stats := r.Group("/stats")
	{
		stats.GET("/occupancy/daily", statsCtrl.GetDailyOccupancy)
		stats.GET("/summary", statsCtrl.GetSummary)
	}

	return r
}
