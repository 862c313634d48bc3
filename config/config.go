package config

import (
	"log"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Config holds the process-wide settings loaded once at startup.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	BcryptCost  int
}

// Load reads configuration from environment variables.
// JWT_SECRET is mandatory: the signing key is immutable for the process
// lifetime and every token verification depends on it.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		BcryptCost:  bcrypt.DefaultCost,
	}

	if costStr := os.Getenv("BCRYPT_COST"); costStr != "" {
		cost, err := strconv.Atoi(costStr)
		if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			log.Printf("Invalid BCRYPT_COST %q, falling back to default", costStr)
		} else {
			cfg.BcryptCost = cost
		}
	}

	return cfg, nil
}

// ConnectDatabase opens the Postgres connection and stores it in config.DB.
func ConnectDatabase() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	DB = db
	log.Println("Database connected")
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
