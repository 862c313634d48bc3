package fixtures

import (
	"fmt"
	"time"

	authModels "github.com/PAARTH2608/workindia-task/auth/models"
	authUtils "github.com/PAARTH2608/workindia-task/auth/utils"
	"github.com/PAARTH2608/workindia-task/core/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db}
}

// Load seeds a demo admin, two teams with squads and one upcoming match.
// Safe to rerun: it bails out if any admin already exists.
func (f *Fixtures) Load() error {
	var adminCount int64
	if err := f.db.Model(&authModels.Admin{}).Count(&adminCount).Error; err != nil {
		return err
	}
	if adminCount > 0 {
		fmt.Println("Fixtures already loaded, skipping")
		return nil
	}

	hashed, err := authUtils.HashPassword("admin123", bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := authModels.Admin{
		Username: "admin",
		Email:    "admin@example.com",
		Password: hashed,
	}
	if err := f.db.Create(&admin).Error; err != nil {
		return err
	}
	fmt.Printf("Created admin %q (id %d)\n", admin.Username, admin.ID)

	squads := map[string][]models.Player{
		"India": {
			{Name: "Rohit Sharma", Role: models.RoleBatter},
			{Name: "Jasprit Bumrah", Role: models.RoleBowler},
			{Name: "Hardik Pandya", Role: models.RoleAllRounder},
			{Name: "Rishabh Pant", Role: models.RoleWicketkeeper},
		},
		"Australia": {
			{Name: "Steve Smith", Role: models.RoleBatter},
			{Name: "Mitchell Starc", Role: models.RoleBowler},
			{Name: "Glenn Maxwell", Role: models.RoleAllRounder},
			{Name: "Alex Carey", Role: models.RoleWicketkeeper},
		},
	}

	teams := make(map[string]*models.Team, len(squads))
	for name, players := range squads {
		team := &models.Team{Name: name}
		if err := f.db.Create(team).Error; err != nil {
			return err
		}

		for i := range players {
			if err := f.db.Create(&players[i]).Error; err != nil {
				return err
			}
			if err := f.db.Model(team).Association("Players").Append(&players[i]); err != nil {
				return err
			}
		}

		teams[name] = team
		fmt.Printf("Created team %q with %d players\n", name, len(players))
	}

	match := models.Match{
		Team1ID: teams["India"].ID,
		Team2ID: teams["Australia"].ID,
		Date:    time.Now().AddDate(0, 0, 7),
		Venue:   "Wankhede Stadium",
		Status:  models.StatusUpcoming,
		Squads: models.MatchSquads{
			Team1: []models.SquadPlayer{},
			Team2: []models.SquadPlayer{},
		},
	}
	if err := f.db.Create(&match).Error; err != nil {
		return err
	}
	fmt.Printf("Created match %d (%s vs %s at %s)\n", match.ID, "India", "Australia", match.Venue)

	return nil
}

// Clean removes all seeded data. Intended for development databases only.
func (f *Fixtures) Clean() error {
	statements := []string{
		"DELETE FROM matches",
		"DELETE FROM team_players",
		"DELETE FROM players",
		"DELETE FROM teams",
		"DELETE FROM admins",
	}

	for _, stmt := range statements {
		if err := f.db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	fmt.Println("Fixtures cleaned")
	return nil
}
