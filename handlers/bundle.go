// File: branchly/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Auth endpoints
	AdminLoginHandler gin.HandlerFunc

	// Branch endpoints
	CreateBranchHandler gin.HandlerFunc
	GetBranchHandler    gin.HandlerFunc
	ListBranchesHandler gin.HandlerFunc
	UpdateBranchHandler gin.HandlerFunc
	DeleteBranchHandler gin.HandlerFunc

	// Reservation settings endpoints
	GetReservationWeekHandler      gin.HandlerFunc
	ValidateReservationWeekHandler gin.HandlerFunc
	UpdateReservationWeekHandler   gin.HandlerFunc
	GetSettingsSnapshotHandler     gin.HandlerFunc
	EnableReservationsHandler      gin.HandlerFunc
	DisableReservationsHandler     gin.HandlerFunc
}
