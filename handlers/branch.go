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

// BranchHandler exposes branch management endpoints.
type BranchHandler struct {
	Service branchSvc.BranchService
}

// NewBranchHandler constructs a BranchHandler.
func NewBranchHandler(svc branchSvc.BranchService) *BranchHandler {
	return &BranchHandler{Service: svc}
}

// CreateBranchHandler registers a new branch.
func (h *BranchHandler) CreateBranchHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid create branch request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	branch, err := h.Service.CreateBranch(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create branch", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create branch", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"branch": branch})
}

// GetBranchHandler returns details for a specific branch.
func (h *BranchHandler) GetBranchHandler(c *gin.Context) {
	id := c.Param("id")

	branch, err := h.Service.GetBranch(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, branchSvc.ErrBranchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch branch", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, branch)
}

// ListBranchesHandler returns all branches.
func (h *BranchHandler) ListBranchesHandler(c *gin.Context) {
	branches, err := h.Service.ListBranches(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list branches", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list branches"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"branches": branches})
}

// UpdateBranchHandler applies partial profile updates to a branch.
func (h *BranchHandler) UpdateBranchHandler(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	branch, err := h.Service.UpdateBranch(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, branchSvc.ErrBranchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update branch", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"branch": branch})
}

// DeleteBranchHandler removes a branch.
func (h *BranchHandler) DeleteBranchHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.Service.DeleteBranch(c.Request.Context(), id); err != nil {
		if errors.Is(err, branchSvc.ErrBranchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete branch", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Branch deleted successfully"})
}

// EnableReservationsHandler switches a branch to accepting reservations.
func (h *BranchHandler) EnableReservationsHandler(c *gin.Context) {
	id := c.Param("id")

	branch, err := h.Service.EnableReservations(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, branchSvc.ErrBranchNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
		case errors.Is(err, branchSvc.ErrWeekNotValid), errors.Is(err, branchSvc.ErrNoSlots):
			c.JSON(http.StatusConflict, gin.H{"error": "Branch cannot accept reservations", "message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enable reservations", "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reservations enabled", "branch": branch})
}

// DisableReservationsHandler switches a branch to rejecting reservations.
func (h *BranchHandler) DisableReservationsHandler(c *gin.Context) {
	id := c.Param("id")

	branch, err := h.Service.DisableReservations(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, branchSvc.ErrBranchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to disable reservations", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reservations disabled", "branch": branch})
}
