package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/PAARTH2608/workindia-task/auth/models"
	"github.com/PAARTH2608/workindia-task/auth/utils"
	"github.com/PAARTH2608/workindia-task/utils/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	DB           *gorm.DB
	TokenManager *utils.TokenManager
	BcryptCost   int
}

func NewAuthHandler(db *gorm.DB, tm *utils.TokenManager, bcryptCost int) *AuthHandler {
	return &AuthHandler{
		DB:           db,
		TokenManager: tm,
		BcryptCost:   bcryptCost,
	}
}

// @Summary Admin Signup
// @Description Register a new admin account
// @Tags auth
// @Accept json
// @Produce json
// @Param admin body models.SignupRequest true "Admin signup data"
// @Success 200 {object} models.SignupResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Admin
	err := h.DB.Where("username = ? OR email = ?", req.Username, req.Email).First(&existing).Error
	switch {
	case err == nil:
		if existing.Username == req.Username {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		} else {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
		}
		return
	case !errors.Is(err, gorm.ErrRecordNotFound):
		logger.Errorf("Failed to check existing admin: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	admin := models.Admin{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := h.DB.Create(&admin).Error; err != nil {
		// The unique indexes are the real guarantee: a concurrent signup
		// with the same username/email loses here, not in the pre-check.
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username or email already exists"})
			return
		}
		logger.Errorf("Failed to create admin: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, models.SignupResponse{
		Status:     "Admin Account successfully created",
		StatusCode: http.StatusOK,
		UserID:     admin.ID,
	})
}

// @Summary Admin Login
// @Description Login with username and password to get a JWT access token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Admin login credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Unknown username and wrong password both return the same message so
	// the response does not reveal which usernames exist.
	var admin models.Admin
	if err := h.DB.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "Incorrect username/password provided. Please retry"})
		return
	}

	if !utils.CheckPassword(req.Password, admin.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "Incorrect username/password provided. Please retry"})
		return
	}

	token, err := h.TokenManager.Generate(admin.ID)
	if err != nil {
		logger.Errorf("Failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Status:      "Login successful",
		StatusCode:  http.StatusOK,
		UserID:      fmt.Sprintf("%d", admin.ID),
		AccessToken: token,
	})
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
