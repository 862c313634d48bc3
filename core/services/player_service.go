package services

import (
	"errors"

	"github.com/PAARTH2608/workindia-task/core/models"

	"gorm.io/gorm"
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{
		db: db,
	}
}

func (s *PlayerService) GetPlayerByID(id uint) (*models.Player, error) {
	var player models.Player

	result := s.db.First(&player, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, result.Error
	}

	return &player, nil
}

// CreatePlayer registers a player with optional stats. Stats left out of the
// request stay nil, meaning not yet recorded.
func (s *PlayerService) CreatePlayer(req models.CreatePlayerRequest) (*models.Player, error) {
	player := &models.Player{
		Name:          req.Name,
		Role:          req.Role,
		MatchesPlayed: req.MatchesPlayed,
		Runs:          req.Runs,
		Average:       req.Average,
		StrikeRate:    req.StrikeRate,
	}

	result := s.db.Create(player)
	if result.Error != nil {
		return nil, result.Error
	}

	return player, nil
}

// AddPlayerToSquad mints a new player and attaches it to the team's live
// squad. It never reuses an existing player record: repeating the call with
// the same name creates a second, distinct player.
func (s *PlayerService) AddPlayerToSquad(teamID uint, req models.AddSquadPlayerRequest) (*models.Player, error) {
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	player := &models.Player{
		Name: req.Name,
		Role: req.Role,
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(player).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(&team).Association("Players").Append(player); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return player, nil
}

func (s *PlayerService) GetPlayerStats(playerID uint) (*models.PlayerStatsResponse, error) {
	player, err := s.GetPlayerByID(playerID)
	if err != nil {
		return nil, err
	}

	return &models.PlayerStatsResponse{
		PlayerID:      player.ID,
		Name:          player.Name,
		MatchesPlayed: player.MatchesPlayed,
		Runs:          player.Runs,
		Average:       player.Average,
		StrikeRate:    player.StrikeRate,
	}, nil
}
