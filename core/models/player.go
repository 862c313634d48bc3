package models

import (
	"time"

	"gorm.io/gorm"
)

// Playing roles a player can be registered with.
const (
	RoleBatter       = "batter"
	RoleBowler       = "bowler"
	RoleAllRounder   = "all-rounder"
	RoleWicketkeeper = "wicketkeeper"
)

// Player stats fields are pointers: a nil value means "not yet recorded",
// which is different from a recorded zero.
type Player struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Role          string         `gorm:"size:20;not null" json:"role"`
	MatchesPlayed *int           `json:"matches_played"`
	Runs          *int           `json:"runs"`
	Average       *float64       `json:"average"`
	StrikeRate    *float64       `json:"strike_rate"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Teams []Team `gorm:"many2many:team_players" json:"teams,omitempty"`
}

func (Player) TableName() string {
	return "players"
}

type CreatePlayerRequest struct {
	Name          string   `json:"name" binding:"required"`
	Role          string   `json:"role" binding:"required,oneof=batter bowler all-rounder wicketkeeper"`
	MatchesPlayed *int     `json:"matches_played,omitempty"`
	Runs          *int     `json:"runs,omitempty"`
	Average       *float64 `json:"average,omitempty"`
	StrikeRate    *float64 `json:"strike_rate,omitempty"`
}

type AddSquadPlayerRequest struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"required,oneof=batter bowler all-rounder wicketkeeper"`
}

type PlayerStatsResponse struct {
	PlayerID      uint     `json:"player_id"`
	Name          string   `json:"name"`
	MatchesPlayed *int     `json:"matches_played"`
	Runs          *int     `json:"runs"`
	Average       *float64 `json:"average"`
	StrikeRate    *float64 `json:"strike_rate"`
}
