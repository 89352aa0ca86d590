package handlers

import (
	"net/http"
	"strconv"
	"time"

	"slotwise/models"
	"slotwise/services/calendar"
	"slotwise/services/preferences"
	"slotwise/services/scheduling"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler runs an availability search against busy data fetched live
// from the external calendar, instead of caller-supplied busy lists.
type CalendarHandler struct {
	Fetcher calendar.BusyFetcher
	Engine  scheduling.SchedulingEngine
	Prefs   preferences.Store
	Logger  *zap.Logger
}

func NewCalendarHandler(fetcher calendar.BusyFetcher, engine scheduling.SchedulingEngine,
	prefs preferences.Store, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{Fetcher: fetcher, Engine: engine, Prefs: prefs, Logger: logger}
}

// Availability handles GET /api/calendar/availability.
// Query params: calendarId, windowStart, windowEnd (RFC 3339),
// durationMinutes, userId (optional, for stored preferences), maxResults.
func (h *CalendarHandler) Availability(c *gin.Context) {
	if h.Fetcher == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "calendar integration disabled",
			"no Google API key configured")
		return
	}

	calendarID := c.Query("calendarId")
	if calendarID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing calendarId", "")
		return
	}
	windowStart, err := time.Parse(time.RFC3339, c.Query("windowStart"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid windowStart", err.Error())
		return
	}
	windowEnd, err := time.Parse(time.RFC3339, c.Query("windowEnd"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid windowEnd", err.Error())
		return
	}
	durationMinutes, err := strconv.Atoi(c.DefaultQuery("durationMinutes", "30"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid durationMinutes", err.Error())
		return
	}
	maxResults, _ := strconv.Atoi(c.DefaultQuery("maxResults", "0"))

	busy, err := h.Fetcher.FetchBusy(c.Request.Context(), calendarID, windowStart, windowEnd)
	if err != nil {
		h.Logger.Error("free/busy fetch failed", zap.String("calendarID", calendarID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch calendar busy data", err.Error())
		return
	}

	prefs := &models.SchedulePreferences{}
	if userID := c.Query("userId"); userID != "" {
		stored, err := h.Prefs.Get(c.Request.Context(), userID)
		if err != nil {
			h.Logger.Warn("failed to load stored preferences, using defaults",
				zap.String("userID", userID), zap.Error(err))
		} else {
			prefs = stored
		}
	}

	slots, err := h.Engine.Availability(c.Request.Context(), busy, windowStart, windowEnd,
		durationMinutes, *prefs, maxResults)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid search parameters", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"calendarId": calendarID,
		"count":      len(slots),
		"slots":      slots,
	})
}
