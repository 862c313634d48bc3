package auth

import (
	"github.com/PAARTH2608/workindia-task/auth/handlers"
	"github.com/PAARTH2608/workindia-task/auth/middleware"
	"github.com/PAARTH2608/workindia-task/auth/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	Handler      *handlers.AuthHandler
	TokenManager *utils.TokenManager
}

func NewModule(db *gorm.DB, jwtSecret string, bcryptCost int) *Module {
	tm := utils.NewTokenManager(jwtSecret)
	return &Module{
		Handler:      handlers.NewAuthHandler(db, tm, bcryptCost),
		TokenManager: tm,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	admin := r.Group("/admin")
	{
		admin.POST("/signup", m.Handler.Signup)
		admin.POST("/login", m.Handler.Login)
	}
}

// JWTMiddleware returns the auth gate for routes that require a valid token.
func (m *Module) JWTMiddleware() gin.HandlerFunc {
	return middleware.JWTMiddleware(m.TokenManager)
}
