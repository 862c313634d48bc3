package services

import (
	"github.com/PAARTH2608/workindia-task/core/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		db: db,
	}
}

func (s *StatsService) GetStats() (*models.Stats, error) {
	var totalPlayers int64
	var totalTeams int64
	var totalMatches int64
	var upcomingMatches int64

	if err := s.db.Model(&models.Player{}).Count(&totalPlayers).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Team{}).Count(&totalTeams).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Match{}).Count(&totalMatches).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Match{}).
		Where("status = ?", models.StatusUpcoming).
		Count(&upcomingMatches).Error; err != nil {
		return nil, err
	}

	return &models.Stats{
		TotalPlayers:    totalPlayers,
		TotalTeams:      totalTeams,
		TotalMatches:    totalMatches,
		UpcomingMatches: upcomingMatches,
	}, nil
}
