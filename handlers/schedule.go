package handlers

import (
	"errors"
	"net/http"

	scheduleRepo "vaktplan/database/repository/schedule"
	"vaktplan/models"
	"vaktplan/services/schedule"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes the schedule grid round trips over HTTP.
type ScheduleHandler struct {
	Service     schedule.ScheduleService
	Coordinator schedule.EditCoordinator
	History     scheduleRepo.HistoryRepository
	Logger      *zap.Logger
}

// NewScheduleHandler wires the schedule endpoints.
func NewScheduleHandler(svc schedule.ScheduleService, coord schedule.EditCoordinator, history scheduleRepo.HistoryRepository, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		Service:     svc,
		Coordinator: coord,
		History:     history,
		Logger:      logger,
	}
}

// GenerateHandler runs a generate round trip: roster in, rendered grid and
// a fresh session out.
func (h *ScheduleHandler) GenerateHandler(c *gin.Context) {
	var config models.ScheduleConfig
	if err := c.ShouldBindJSON(&config); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Service.Generate(c.Request.Context(), config)
	if err != nil {
		h.Logger.Warn("Schedule generation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// EditHandler accepts the full edited grid after a cell edit completes and
// runs one re-validation round for it.
func (h *ScheduleHandler) EditHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Grid models.GridView `json:"grid"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Coordinator.ApplyEdit(c.Request.Context(), sessionID, input.Grid)
	if err != nil {
		if errors.Is(err, schedule.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Warn("Schedule validation failed",
			zap.String("session_id", sessionID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ReportHandler returns the currently applied violation/discrepancy panels.
func (h *ScheduleHandler) ReportHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")

	view, err := h.Coordinator.Report(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, schedule.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": view})
}

// HistoryHandler lists the generate/validate log of one session.
func (h *ScheduleHandler) HistoryHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")

	records, err := h.History.ListBySession(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

// SampleConfigHandler returns the demo roster used to prefill the form.
func (h *ScheduleHandler) SampleConfigHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.SampleConfig())
}
