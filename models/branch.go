package models

import "time"

// Branch represents one restaurant branch and its reservation settings.
type Branch struct {
	ID              string          `bson:"id" json:"id"`
	Name            string          `bson:"name" json:"name"`
	Address         string          `bson:"address,omitempty" json:"address,omitempty"`
	Phone           string          `bson:"phone,omitempty" json:"phone,omitempty"`
	Timezone        string          `bson:"timezone,omitempty" json:"timezone,omitempty"`
	AcceptsReserves bool            `bson:"acceptsReserves" json:"acceptsReserves"` // reservations currently enabled
	ReservationWeek ReservationWeek `bson:"reservationWeek" json:"reservationWeek"`
	CreatedAt       time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// CreateBranchRequest defines the payload for registering a new branch.
type CreateBranchRequest struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Timezone string `json:"timezone"`
}

// UpdateBranchRequest carries partial branch profile updates.
type UpdateBranchRequest struct {
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
}

// UpdateWeekRequest defines the payload for replacing a branch's
// reservation week.
type UpdateWeekRequest struct {
	ReservationWeek ReservationWeek `json:"reservationWeek" binding:"required"`
}

// BranchSettingsDTO is the snapshot cached and returned after settings writes.
type BranchSettingsDTO struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	AcceptsReserves bool            `json:"acceptsReserves"`
	ReservationWeek ReservationWeek `json:"reservationWeek"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// AdminLoginRequest defines the admin authentication payload.
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
