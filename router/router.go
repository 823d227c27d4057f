package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-backoffice/controllers"
	"restaurant-backoffice/database"
	"restaurant-backoffice/middlewares"
)

func SetupRouter(db *gorm.DB, staffPhoneCol database.StaffPhoneColumn) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(cors.Default()) // dashboard runs on another origin
	r.Use(middlewares.LoggerMiddleware())

	customerCtrl := controllers.NewCustomerController(db)
	staffCtrl := controllers.NewStaffController(db, staffPhoneCol)
	orderCtrl := controllers.NewOrderController(db)
	reservationCtrl := controllers.NewReservationController(db)
	financialCtrl := controllers.NewFinancialController(db)
	attendanceCtrl := controllers.NewAttendanceController(db)
	summaryCtrl := controllers.NewSummaryController(db)
	userCtrl := controllers.NewUserController(db)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Restaurant API running with MySQL")
	})
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		api.GET("/customers", customerCtrl.GetAllCustomers)
		api.POST("/customers", customerCtrl.CreateCustomer)
		api.PUT("/customers/:id", customerCtrl.UpdateCustomer)
		api.DELETE("/customers/:id", customerCtrl.DeleteCustomer)

		api.GET("/staff", staffCtrl.GetAllStaff)
		api.POST("/staff", staffCtrl.CreateStaff)
		api.PUT("/staff/:id", staffCtrl.UpdateStaff)
		api.DELETE("/staff/:id", staffCtrl.DeleteStaff)

		api.GET("/orders", orderCtrl.GetAllOrders)
		api.POST("/orders", orderCtrl.CreateOrder)
		api.PUT("/orders/:id", orderCtrl.UpdateOrder)
		api.DELETE("/orders/:id", orderCtrl.DeleteOrder)

		api.GET("/reservations", reservationCtrl.GetAllReservations)
		api.POST("/reservations", reservationCtrl.CreateReservation)
		api.PUT("/reservations/:id", reservationCtrl.UpdateReservation)
		api.DELETE("/reservations/:id", reservationCtrl.DeleteReservation)

		api.GET("/financial", financialCtrl.GetAllEntries)
		api.POST("/financial", financialCtrl.CreateEntry)
		api.PUT("/financial/:id", financialCtrl.UpdateEntry)
		api.DELETE("/financial/:id", financialCtrl.DeleteEntry)

		api.GET("/attendance", attendanceCtrl.GetAllAttendance)
		api.POST("/attendance", attendanceCtrl.CreateAttendance)
		api.PUT("/attendance/:id", attendanceCtrl.UpdateAttendance)
		api.DELETE("/attendance/:id", attendanceCtrl.DeleteAttendance)

		api.GET("/summary", summaryCtrl.GetSummary)
	}

	auth := r.Group("/auth")
	{
		auth.POST("/register", userCtrl.Register)
		auth.POST("/login", userCtrl.Login)

		protected := auth.Group("")
		protected.Use(middlewares.AuthMiddleware())
		protected.GET("/profile", userCtrl.GetProfile)
	}

	return r
}
