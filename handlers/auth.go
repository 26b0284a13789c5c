package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"branchly/config"
	"branchly/models"
	"branchly/utils"
)

const adminTokenDuration = 12 * time.Hour

// AdminLoginHandler authenticates the configured admin and issues a bearer
// token for the admin API.
func AdminLoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	cfg := config.AppConfig
	if req.Email != cfg.AdminEmail || cfg.AdminPasswordHash == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Failed admin login attempt", zap.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(cfg.AdminEmail, adminTokenDuration)
	if err != nil {
		logger.Error("Failed to issue admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(adminTokenDuration.Seconds()),
	})
}
