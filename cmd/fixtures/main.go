package main

import (
	"fmt"
	"log"
	"os"

	"github.com/PAARTH2608/workindia-task/config"
	"github.com/PAARTH2608/workindia-task/fixtures"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.ConnectDatabase()
	fixtureManager := fixtures.NewFixtures(config.DB)

	command := "load"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "load":
		if err := fixtureManager.Load(); err != nil {
			log.Fatal("Loading fixtures failed:", err)
		}
	case "clean":
		if err := fixtureManager.Clean(); err != nil {
			log.Fatal("Cleaning fixtures failed:", err)
		}
	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println("Usage:")
		fmt.Println("  go run ./cmd/fixtures load  - Seed demo data")
		fmt.Println("  go run ./cmd/fixtures clean - Remove seeded data")
	}
}
