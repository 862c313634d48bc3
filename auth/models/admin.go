package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin is the authentication source of truth. Only the bcrypt hash of the
// password is ever stored; the raw password never leaves the signup/login
// request scope.
type Admin struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Username  string         `json:"username" gorm:"uniqueIndex;not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Admin) TableName() string {
	return "admins"
}

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"required,email"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignupResponse struct {
	Status     string `json:"status"`
	StatusCode int    `json:"status_code"`
	UserID     uint   `json:"user_id"`
}

type LoginResponse struct {
	Status      string `json:"status"`
	StatusCode  int    `json:"status_code"`
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
}
