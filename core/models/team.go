package models

import (
	"time"

	"gorm.io/gorm"
)

// Team ids are always server-generated. The membership relation to players
// is a plain join table with no attributes of its own; a player may belong
// to any number of teams.
type Team struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Players []Player `gorm:"many2many:team_players" json:"players,omitempty"`
}

func (Team) TableName() string {
	return "teams"
}

type CreateTeamRequest struct {
	Name string `json:"name" binding:"required"`
}

type SquadResponse struct {
	TeamID   uint     `json:"team_id"`
	TeamName string   `json:"team_name"`
	Players  []Player `json:"players"`
}
