package handlers

import (
	"errors"
	"net/http"
	"time"

	"slotwise/models"
	"slotwise/services/calendar"
	"slotwise/services/preferences"
	"slotwise/services/scheduling"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScheduleHandler exposes the availability and conflict endpoints.
type ScheduleHandler struct {
	Engine scheduling.SchedulingEngine
	Prefs  preferences.Store
	Logger *zap.Logger
}

func NewScheduleHandler(engine scheduling.SchedulingEngine, prefs preferences.Store, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{Engine: engine, Prefs: prefs, Logger: logger}
}

// Availability handles POST /api/schedule/availability.
func (h *ScheduleHandler) Availability(c *gin.Context) {
	var req models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	windowStart, err := time.Parse(time.RFC3339, req.WindowStart)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid windowStart", err.Error())
		return
	}
	windowEnd, err := time.Parse(time.RFC3339, req.WindowEnd)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid windowEnd", err.Error())
		return
	}

	busy, err := calendar.NormalizeBusyRecords(req.BusyEvents)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid busy events", err.Error())
		return
	}

	prefs, err := h.resolvePreferences(c, &req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid preferences", err.Error())
		return
	}

	slots, err := h.Engine.Availability(c.Request.Context(), busy, windowStart, windowEnd,
		req.DurationMinutes, *prefs, req.MaxResults)
	if err != nil {
		var windowErr *scheduling.InvalidWindowError
		var durationErr *scheduling.InvalidDurationError
		if errors.As(err, &windowErr) || errors.As(err, &durationErr) {
			utils.JSONError(c, http.StatusBadRequest, "invalid search parameters", err.Error())
			return
		}
		h.Logger.Error("availability search failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "availability search failed", err.Error())
		return
	}

	// An empty slot list is a valid outcome, not an error.
	c.JSON(http.StatusOK, gin.H{
		"requestId": uuid.New().String(),
		"count":     len(slots),
		"slots":     slots,
	})
}

// CheckConflicts handles POST /api/schedule/conflicts.
func (h *ScheduleHandler) CheckConflicts(c *gin.Context) {
	var req models.ConflictCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	proposed, busy, ok := h.parseProposal(c, req.Proposed, req.BusyEvents)
	if !ok {
		return
	}

	reports := h.Engine.Conflicts(proposed, busy)
	c.JSON(http.StatusOK, gin.H{
		"hasConflict": len(reports) > 0,
		"conflicts":   reports,
	})
}

// SuggestAlternatives handles POST /api/schedule/alternatives.
func (h *ScheduleHandler) SuggestAlternatives(c *gin.Context) {
	var req models.AlternativesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.DurationMinutes <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid durationMinutes", "duration must be positive")
		return
	}

	proposed, busy, ok := h.parseProposal(c, req.Proposed, req.BusyEvents)
	if !ok {
		return
	}

	suggestions := h.Engine.Alternatives(proposed, busy, req.DurationMinutes, req.MaxSuggestions, req.SearchDays)
	c.JSON(http.StatusOK, gin.H{
		"count":       len(suggestions),
		"suggestions": suggestions,
	})
}

// ResolveConflict handles POST /api/schedule/resolve.
func (h *ScheduleHandler) ResolveConflict(c *gin.Context) {
	var req models.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	proposed, busy, ok := h.parseProposal(c, req.Proposed, req.BusyEvents)
	if !ok {
		return
	}

	conflicts := h.Engine.Conflicts(proposed, busy)
	plan := h.Engine.Resolve(proposed, conflicts, req.ResolutionType)
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// parseProposal normalizes the proposed record and busy list, writing a 400
// response on malformed input.
func (h *ScheduleHandler) parseProposal(
	c *gin.Context,
	proposedRec models.BusyEventRecord,
	busyRecs []models.BusyEventRecord,
) (models.TimeInterval, []models.TimeInterval, bool) {
	proposed, err := calendar.NormalizeBusyRecord(proposedRec)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid proposed interval", err.Error())
		return models.TimeInterval{}, nil, false
	}
	busy, err := calendar.NormalizeBusyRecords(busyRecs)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid busy events", err.Error())
		return models.TimeInterval{}, nil, false
	}
	return proposed, busy, true
}

// resolvePreferences picks inline preferences when supplied, otherwise the
// stored preferences for the request's user, otherwise the permissive default.
func (h *ScheduleHandler) resolvePreferences(c *gin.Context, req *models.AvailabilityRequest) (*models.SchedulePreferences, error) {
	prefs := req.Preferences
	if prefs == nil && req.UserID != "" {
		stored, err := h.Prefs.Get(c.Request.Context(), req.UserID)
		if err != nil {
			h.Logger.Warn("failed to load stored preferences, using defaults",
				zap.String("userID", req.UserID), zap.Error(err))
		} else {
			prefs = stored
		}
	}
	if prefs == nil {
		prefs = &models.SchedulePreferences{}
	}
	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	return prefs, nil
}
