package handlers

import (
	"net/http"

	"slotwise/models"
	"slotwise/services/preferences"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PreferencesHandler exposes stored scheduling preferences.
type PreferencesHandler struct {
	Store  preferences.Store
	Logger *zap.Logger
}

func NewPreferencesHandler(store preferences.Store, logger *zap.Logger) *PreferencesHandler {
	return &PreferencesHandler{Store: store, Logger: logger}
}

// Get handles GET /api/preferences/:userID.
func (h *PreferencesHandler) Get(c *gin.Context) {
	userID := c.Param("userID")
	prefs, err := h.Store.Get(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to load preferences", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load preferences", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": userID, "preferences": prefs})
}

// Put handles PUT /api/preferences/:userID.
func (h *PreferencesHandler) Put(c *gin.Context) {
	userID := c.Param("userID")
	var prefs models.SchedulePreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := prefs.Validate(); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid preferences", err.Error())
		return
	}
	if err := h.Store.Set(c.Request.Context(), userID, &prefs); err != nil {
		h.Logger.Error("failed to save preferences", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to save preferences", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": userID, "preferences": prefs})
}

// Clear handles DELETE /api/preferences/:userID.
func (h *PreferencesHandler) Clear(c *gin.Context) {
	userID := c.Param("userID")
	if err := h.Store.Clear(c.Request.Context(), userID); err != nil {
		h.Logger.Error("failed to clear preferences", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear preferences", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": userID, "cleared": true})
}
