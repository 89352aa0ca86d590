package handlers

import (
	"net/http"

	"slotwise/cron"
	"slotwise/models"
	"slotwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DigestHandler enqueues agenda digest jobs and serves cached digests.
type DigestHandler struct {
	Queue  *asynq.Client
	Logger *zap.Logger
}

func NewDigestHandler(queue *asynq.Client, logger *zap.Logger) *DigestHandler {
	return &DigestHandler{Queue: queue, Logger: logger}
}

// Enqueue handles POST /api/digest.
func (h *DigestHandler) Enqueue(c *gin.Context) {
	var payload models.AgendaDigestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if payload.UserID == "" || payload.CalendarID == "" || payload.Date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "userId, calendarId and date are required")
		return
	}

	if err := cron.EnqueueAgendaDigest(h.Queue, payload); err != nil {
		h.Logger.Error("failed to enqueue digest", zap.String("userID", payload.UserID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to enqueue digest", err.Error())
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"queued": true, "userId": payload.UserID, "date": payload.Date})
}

// Get handles GET /api/digest/:userID?date=2006-01-02.
func (h *DigestHandler) Get(c *gin.Context) {
	userID := c.Param("userID")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "")
		return
	}

	digest, ok, err := cron.LoadDigest(c.Request.Context(), userID, date)
	if err != nil {
		h.Logger.Error("failed to load digest", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load digest", err.Error())
		return
	}
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "digest not found", "no digest cached for this user and date")
		return
	}
	c.JSON(http.StatusOK, digest)
}
