package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/PAARTH2608/workindia-task/core/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// setupTestDB opens a fresh in-memory database per test. The shared-cache
// DSN keeps the database alive across the pool's connections.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Player{}, &models.Team{}, &models.Match{}); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	return db
}

func createTestTeam(t *testing.T, db *gorm.DB, name string) *models.Team {
	t.Helper()

	team, err := NewTeamService(db).CreateTeam(name)
	if err != nil {
		t.Fatalf("creating team %q: %v", name, err)
	}
	return team
}
