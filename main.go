package main

import (
	"log"

	"github.com/PAARTH2608/workindia-task/auth"
	"github.com/PAARTH2608/workindia-task/config"
	"github.com/PAARTH2608/workindia-task/core"
	_ "github.com/PAARTH2608/workindia-task/docs" // Swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Cricket Tournament Admin API
// @version         1.0
// @description     Administrative backend for a cricket tournament: admins, teams, players, matches and squads.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	config.ConnectDatabase()

	r := gin.Default()
	r.Use(cors.Default())

	authModule := auth.NewModule(config.DB, cfg.JWTSecret, cfg.BcryptCost)
	authModule.SetupRoutes(r)

	coreModule := core.NewModule(config.DB)
	coreModule.SetupRoutes(r, authModule.JWTMiddleware())

	if err := coreModule.StartScheduler(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer coreModule.StopScheduler()

	// Swagger endpoint
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", healthHandler)

	log.Printf("Server starting on port %s", cfg.Port)
	r.Run(":" + cfg.Port)
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Message  string `json:"message" example:"Server is running"`
	Database string `json:"database" example:"connected"`
}

// @Summary Health Check
// @Description Check if the server is running and database is connected
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func healthHandler(c *gin.Context) {
	c.JSON(200, HealthResponse{
		Message:  "Server is running",
		Database: "connected",
	})
}
