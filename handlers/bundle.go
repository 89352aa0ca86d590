package handlers

import (
	"net/http"

	"slotwise/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Scheduling endpoints.
	AvailabilityHandler gin.HandlerFunc
	ConflictsHandler    gin.HandlerFunc
	AlternativesHandler gin.HandlerFunc
	ResolveHandler      gin.HandlerFunc

	// Preference endpoints.
	GetPreferencesHandler   gin.HandlerFunc
	PutPreferencesHandler   gin.HandlerFunc
	ClearPreferencesHandler gin.HandlerFunc

	// Calendar collaborator endpoint.
	CalendarAvailabilityHandler gin.HandlerFunc

	// Agenda digest endpoints.
	EnqueueDigestHandler gin.HandlerFunc
	GetDigestHandler     gin.HandlerFunc
}

// HealthHandler reports the latest health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"deps":   utils.GetHealthStatus(),
	})
}
