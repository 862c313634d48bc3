package services

import (
	"errors"

	"github.com/PAARTH2608/workindia-task/core/models"

	"gorm.io/gorm"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{
		db: db,
	}
}

// CreateTeam registers a team with a server-generated id and an empty squad.
func (s *TeamService) CreateTeam(name string) (*models.Team, error) {
	team := &models.Team{
		Name: name,
	}

	result := s.db.Create(team)
	if result.Error != nil {
		return nil, result.Error
	}

	return team, nil
}

func (s *TeamService) GetTeamByID(id uint) (*models.Team, error) {
	var team models.Team

	result := s.db.First(&team, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, result.Error
	}

	return &team, nil
}

// GetSquad returns the team's live squad ordered by player id. An empty
// squad is valid for a newly created team.
func (s *TeamService) GetSquad(teamID uint) (*models.SquadResponse, error) {
	var team models.Team

	result := s.db.Preload("Players", func(db *gorm.DB) *gorm.DB {
		return db.Order("players.id ASC")
	}).First(&team, teamID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, result.Error
	}

	players := team.Players
	if players == nil {
		players = []models.Player{}
	}

	return &models.SquadResponse{
		TeamID:   team.ID,
		TeamName: team.Name,
		Players:  players,
	}, nil
}
