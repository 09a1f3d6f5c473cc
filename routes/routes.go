package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"itinerary-backend/controllers"
	"itinerary-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires middleware and routes around the controller instances.
func SetupRouter(
	pc *controllers.PageController,
	ac *controllers.AuthController,
	cc *controllers.CustomerController,
	hc *controllers.HotelController,
	fc *controllers.FlightController,
	ic *controllers.ItineraryController,
	ec *controllers.ExtrasController,
	auc *controllers.AuditController,
	jwtSecret []byte,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Authenticate(jwtSecret))

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Read views
	r.GET("/", pc.Home)
	r.GET("/itinerary/:slug", pc.CustomerItinerary)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", ac.Login)
		}

		customersRoutes := api.Group("/customers")
		{
			customersRoutes.GET("", cc.ListCustomers)
			customersRoutes.POST("", cc.CreateCustomer)
			customersRoutes.GET("/:id", cc.GetCustomer)
			customersRoutes.PUT("/:id", cc.UpdateCustomer)
			customersRoutes.DELETE("/:id", cc.DeleteCustomer)

			customersRoutes.GET("/:id/hotels", hc.ListHotels)
			customersRoutes.POST("/:id/hotels", hc.CreateHotel)
			customersRoutes.PUT("/:id/hotels/:hotelID", hc.UpdateHotel)
			customersRoutes.DELETE("/:id/hotels/:hotelID", hc.DeleteHotel)

			customersRoutes.GET("/:id/flights", fc.ListFlights)
			customersRoutes.POST("/:id/flights", fc.CreateFlight)
			customersRoutes.DELETE("/:id/flights/:flightID", fc.DeleteFlight)

			customersRoutes.GET("/:id/days", ic.ListDays)
			customersRoutes.POST("/:id/days", ic.CreateDay)
			customersRoutes.DELETE("/:id/days/:dayID", ic.DeleteDay)
			customersRoutes.POST("/:id/days/:dayID/details", ic.AddDetail)
			customersRoutes.DELETE("/:id/days/:dayID/details/:detailID", ic.DeleteDetail)

			customersRoutes.PUT("/:id/video", ec.SetVideo)
			customersRoutes.DELETE("/:id/video", ec.DeleteVideo)
			customersRoutes.PUT("/:id/whatsapp", ec.SetWhatsApp)
			customersRoutes.DELETE("/:id/whatsapp", ec.DeleteWhatsApp)

			customersRoutes.POST("/:id/inclusions", ec.AddInclusion)
			customersRoutes.DELETE("/:id/inclusions/:itemID", ec.DeleteInclusion)
			customersRoutes.POST("/:id/exclusions", ec.AddExclusion)
			customersRoutes.DELETE("/:id/exclusions/:itemID", ec.DeleteExclusion)
		}

		api.GET("/audit-logs", auc.ListLogs)
	}

	return r
}
