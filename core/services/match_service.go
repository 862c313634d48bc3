package services

import (
	"errors"
	"time"

	"github.com/PAARTH2608/workindia-task/core/models"

	"gorm.io/gorm"
)

type MatchService struct {
	db *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{
		db: db,
	}
}

// CreateMatch schedules a match between two distinct existing teams. New
// matches always start as upcoming with empty squad snapshots; squads are
// filled later by ConfirmSquads.
func (s *MatchService) CreateMatch(req models.CreateMatchRequest) (*models.Match, error) {
	if req.Team1ID == req.Team2ID {
		return nil, ErrSameTeam
	}

	var team1, team2 models.Team
	if err := s.db.First(&team1, req.Team1ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	if err := s.db.First(&team2, req.Team2ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	match := &models.Match{
		Team1ID: req.Team1ID,
		Team2ID: req.Team2ID,
		Date:    req.Date,
		Venue:   req.Venue,
		Status:  models.StatusUpcoming,
		Squads: models.MatchSquads{
			Team1: []models.SquadPlayer{},
			Team2: []models.SquadPlayer{},
		},
	}

	if err := s.db.Create(match).Error; err != nil {
		return nil, err
	}

	return match, nil
}

// GetMatches returns the summary projection of all matches, ordered by date.
func (s *MatchService) GetMatches() ([]models.MatchSummary, error) {
	var matches []models.Match

	result := s.db.Order("date ASC").Find(&matches)
	if result.Error != nil {
		return nil, result.Error
	}

	summaries := make([]models.MatchSummary, 0, len(matches))
	for _, match := range matches {
		summaries = append(summaries, models.MatchSummary{
			MatchID: match.ID,
			Team1ID: match.Team1ID,
			Team2ID: match.Team2ID,
			Date:    match.Date,
			Venue:   match.Venue,
		})
	}

	return summaries, nil
}

// GetMatchByID resolves team ids to display names and returns the snapshot
// squads, not the teams' live rosters.
func (s *MatchService) GetMatchByID(id uint) (*models.MatchDetailResponse, error) {
	var match models.Match

	result := s.db.Preload("Team1").Preload("Team2").First(&match, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, result.Error
	}

	return &models.MatchDetailResponse{
		MatchID: match.ID,
		Team1:   match.Team1.Name,
		Team2:   match.Team2.Name,
		Date:    match.Date,
		Venue:   match.Venue,
		Status:  match.Status,
		Squads:  match.Squads,
	}, nil
}

// UpdateMatchStatus advances the match state machine. Only the forward
// transitions upcoming->live and live->completed are allowed; the status
// never regresses.
func (s *MatchService) UpdateMatchStatus(matchID uint, status string) (*models.Match, error) {
	var prev string
	switch status {
	case models.StatusLive:
		prev = models.StatusUpcoming
	case models.StatusCompleted:
		prev = models.StatusLive
	default:
		return nil, ErrInvalidTransition
	}

	// The status predicate makes the transition atomic: a concurrent writer
	// that moved the match first wins, and this update touches zero rows
	// instead of overwriting the newer state.
	result := s.db.Model(&models.Match{}).
		Where("id = ? AND status = ?", matchID, prev).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}

	var match models.Match
	if err := s.db.First(&match, matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	if result.RowsAffected == 0 {
		return nil, ErrInvalidTransition
	}

	return &match, nil
}

// ConfirmSquads freezes both teams' current rosters into the match. Once
// written the snapshot is authoritative: later roster edits do not touch it.
// Only allowed while the match is still upcoming.
func (s *MatchService) ConfirmSquads(matchID uint) (*models.Match, error) {
	var match models.Match
	if err := s.db.First(&match, matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	if match.Status != models.StatusUpcoming {
		return nil, ErrSquadLocked
	}

	squad1, err := s.snapshotSquad(match.Team1ID)
	if err != nil {
		return nil, err
	}
	squad2, err := s.snapshotSquad(match.Team2ID)
	if err != nil {
		return nil, err
	}

	match.Squads = models.MatchSquads{
		Team1: squad1,
		Team2: squad2,
	}

	// Guarded on status: if the match went live between the read above and
	// this write, the snapshot no longer applies and must not land.
	result := s.db.Model(&models.Match{}).
		Where("id = ? AND status = ?", matchID, models.StatusUpcoming).
		Update("squads", match.Squads)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrSquadLocked
	}

	return &match, nil
}

// snapshotSquad copies a team's current membership into frozen squad
// entries, so only confirmation-time members end up in the match.
func (s *MatchService) snapshotSquad(teamID uint) ([]models.SquadPlayer, error) {
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

	squad := make([]models.SquadPlayer, 0, len(team.Players))
	for _, player := range team.Players {
		squad = append(squad, models.SquadPlayer{
			PlayerID: player.ID,
			Name:     player.Name,
			Role:     player.Role,
		})
	}

	return squad, nil
}

// StartDueMatches flips upcoming matches to live once their scheduled date
// has passed. Run periodically by the cron scheduler.
func (s *MatchService) StartDueMatches(now time.Time) (int64, error) {
	result := s.db.Model(&models.Match{}).
		Where("status = ? AND date <= ?", models.StatusUpcoming, now).
		Update("status", models.StatusLive)

	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
