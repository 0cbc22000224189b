package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-frontdesk/controllers"
	"hotel-frontdesk/middleware"
	"hotel-frontdesk/utils"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth         *controllers.AuthController
	Customers    *controllers.CustomerController
	Rooms        *controllers.RoomController
	Bookings     *controllers.BookingController
	Sessions     *controllers.BookingSessionController
	Transfers    *controllers.TransferController
	Promotions   *controllers.PromotionController
	Settings     *controllers.SettingsController
	Reports      *controllers.ReportController
	Activity     *controllers.ActivityController
	ServiceUsage *controllers.ServiceUsageController
}

func parseCorsOrigins() []string {
	raw := utils.EnvOrDefault("CORS_ORIGINS", "http://localhost:3000")
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// SetupRouter wires the gin engine: CORS, request logging, the public auth
// endpoints and the authenticated /employee surface.
func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.GinLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     parseCorsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/refresh", ctrl.Auth.Refresh)
	}

	employee := r.Group("/employee")
	employee.Use(middleware.AuthMiddleware())
	{
		employee.GET("/me", ctrl.Auth.Me)

		customers := employee.Group("/customers")
		{
			customers.GET("", ctrl.Customers.List)
			customers.POST("", ctrl.Customers.Create)
			customers.POST("/selection", ctrl.Customers.ResolveSelection)
			customers.GET("/:id", ctrl.Customers.Get)
			customers.PUT("/:id", ctrl.Customers.Update)
			customers.DELETE("/:id", ctrl.Customers.Delete)
			customers.GET("/:id/promotions", ctrl.Promotions.CustomerClaims)
		}

		rooms := employee.Group("/rooms")
		{
			rooms.GET("", ctrl.Rooms.List)
			rooms.GET("/available", ctrl.Rooms.Available)
			rooms.POST("", ctrl.Rooms.Create)
			rooms.GET("/:id", ctrl.Rooms.Get)
			rooms.PUT("/:id", ctrl.Rooms.Update)
			rooms.DELETE("/:id", ctrl.Rooms.Delete)
		}

		roomTypes := employee.Group("/room-types")
		{
			roomTypes.GET("", ctrl.Rooms.RoomTypes)
			roomTypes.POST("", ctrl.Rooms.CreateRoomType)
		}

		bookings := employee.Group("/bookings")
		{
			bookings.GET("", ctrl.Bookings.List)
			bookings.POST("", ctrl.Bookings.Create)
			bookings.GET("/checked-in-rooms", ctrl.Bookings.CheckedInRooms)
			bookings.GET("/:id", ctrl.Bookings.Get)
			bookings.PUT("/:id", ctrl.Bookings.Update)
			bookings.DELETE("/:id", ctrl.Bookings.Delete)
			bookings.POST("/:id/check-in", ctrl.Bookings.CheckIn)
			bookings.POST("/:id/checkout", ctrl.Bookings.Checkout)
			bookings.GET("/:id/service-usages", ctrl.ServiceUsage.ForBooking)
		}

		sessions := employee.Group("/booking-sessions")
		{
			sessions.POST("", ctrl.Sessions.Open)
			sessions.GET("/:sessionId", ctrl.Sessions.Get)
			sessions.DELETE("/:sessionId", ctrl.Sessions.Close)
			sessions.PUT("/:sessionId/customer", ctrl.Sessions.SelectCustomer)
			sessions.PUT("/:sessionId/dates", ctrl.Sessions.SetDates)
			sessions.POST("/:sessionId/rooms", ctrl.Sessions.AddRoom)
			sessions.DELETE("/:sessionId/rooms/:roomId", ctrl.Sessions.RemoveRoom)
			sessions.PUT("/:sessionId/deposit", ctrl.Sessions.SetDeposit)
			sessions.PUT("/:sessionId/notes", ctrl.Sessions.SetNotes)
			sessions.POST("/:sessionId/next", ctrl.Sessions.Next)
			sessions.POST("/:sessionId/back", ctrl.Sessions.Back)
			sessions.POST("/:sessionId/submit", ctrl.Sessions.Submit)
		}

		transfers := employee.Group("/room-transfers")
		{
			transfers.GET("", ctrl.Transfers.History)
			transfers.POST("", ctrl.Transfers.Create)
		}

		promotions := employee.Group("/promotions")
		{
			promotions.GET("", ctrl.Promotions.List)
			promotions.POST("", ctrl.Promotions.Create)
			promotions.POST("/claim", ctrl.Promotions.Claim)
			promotions.GET("/:id", ctrl.Promotions.Get)
			promotions.PUT("/:id", ctrl.Promotions.Update)
			promotions.DELETE("/:id", ctrl.Promotions.Delete)
		}

		settings := employee.Group("/app-settings")
		{
			settings.GET("/:key", ctrl.Settings.Get)
			settings.PUT("/:key", ctrl.Settings.Put)
		}

		reports := employee.Group("/reports")
		{
			reports.GET("/revenue", ctrl.Reports.Revenue)
			reports.GET("/occupancy", ctrl.Reports.Occupancy)
			reports.GET("/customers", ctrl.Reports.TopCustomers)
			reports.GET("/services", ctrl.Reports.ServiceBreakdown)
		}

		employee.GET("/activity", ctrl.Activity.Recent)
		employee.GET("/services", ctrl.ServiceUsage.Catalog)
		employee.POST("/service-usages", ctrl.ServiceUsage.Record)
	}

	return r
}
