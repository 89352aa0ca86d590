package routes

import (
	"time"

	"slotwise/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all endpoint groups onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)

	RegisterScheduleRoutes(r, hb)
	RegisterPreferenceRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterDigestRoutes(r, hb)
}

// RegisterScheduleRoutes registers the scheduling engine endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	schedule := r.Group("/api/schedule")
	{
		schedule.POST("/availability", hb.AvailabilityHandler)
		schedule.POST("/conflicts", hb.ConflictsHandler)
		schedule.POST("/alternatives", hb.AlternativesHandler)
		schedule.POST("/resolve", hb.ResolveHandler)
	}
}

// RegisterPreferenceRoutes registers stored-preference endpoints.
func RegisterPreferenceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	prefs := r.Group("/api/preferences")
	{
		prefs.GET("/:userID", hb.GetPreferencesHandler)
		prefs.PUT("/:userID", hb.PutPreferencesHandler)
		prefs.DELETE("/:userID", hb.ClearPreferencesHandler)
	}
}

// RegisterCalendarRoutes registers the live calendar availability endpoint.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	cal := r.Group("/api/calendar")
	{
		cal.GET("/availability", hb.CalendarAvailabilityHandler)
	}
}

// RegisterDigestRoutes registers the agenda digest endpoints.
func RegisterDigestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	digest := r.Group("/api/digest")
	{
		digest.POST("", hb.EnqueueDigestHandler)
		digest.GET("/:userID", hb.GetDigestHandler)
	}
}
