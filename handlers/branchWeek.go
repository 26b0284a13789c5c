package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"branchly/models"
	branchSvc "branchly/services/branch"
	"branchly/utils"
)

// GetReservationWeekHandler returns a branch's stored reservation week.
func (h *BranchHandler) GetReservationWeekHandler(c *gin.Context) {
	id := c.Param("id")

	week, err := h.Service.GetReservationWeek(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, branchSvc.ErrBranchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reservation week", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reservationWeek": week})
}

// ValidateReservationWeekHandler runs the schedule engine over a candidate
// week without persisting anything. The admin frontend calls this while the
// operator edits time fields; the verdict's error keys map to its
// localization catalog.
func (h *BranchHandler) ValidateReservationWeekHandler(c *gin.Context) {
	var req models.UpdateWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	verdict := h.Service.ValidateReservationWeek(req.ReservationWeek)
	c.JSON(http.StatusOK, verdict)
}

// UpdateReservationWeekHandler validates, normalizes and stores a branch's
// reservation week. Validation failures are not server errors: the verdict
// is returned with 422 so the frontend can paint per-day error state.
func (h *BranchHandler) UpdateReservationWeekHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req models.UpdateWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid reservation week request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	dto, verdict, err := h.Service.UpdateReservationWeek(c.Request.Context(), id, req.ReservationWeek)
	if err != nil {
		switch {
		case errors.Is(err, branchSvc.ErrBranchNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
		case errors.Is(err, branchSvc.ErrInvalidWeekday):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weekday key", "message": err.Error()})
		default:
			logger.Error("Failed to update reservation week", zap.String("branchID", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reservation week", "message": err.Error()})
		}
		return
	}
	if verdict != nil {
		c.JSON(http.StatusUnprocessableEntity, verdict)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reservation week updated", "settings": dto})
}

// GetSettingsSnapshotHandler returns the cached settings snapshot for a
// branch, the same view the reservation frontend consumes.
func (h *BranchHandler) GetSettingsSnapshotHandler(c *gin.Context) {
	id := c.Param("id")

	dto, err := h.Service.GetSettingsSnapshot(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, branchSvc.ErrBranchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto)
}
