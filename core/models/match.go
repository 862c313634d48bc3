package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Match statuses, strictly forward: upcoming -> live -> completed.
const (
	StatusUpcoming  = "upcoming"
	StatusLive      = "live"
	StatusCompleted = "completed"
)

// SquadPlayer is a frozen projection of a player taken at squad
// confirmation time.
type SquadPlayer struct {
	PlayerID uint   `json:"player_id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// MatchSquads is the per-match squad snapshot, stored as a JSONB blob
// rather than a join so that later roster edits never rewrite match
// history.
type MatchSquads struct {
	Team1 []SquadPlayer `json:"team_1"`
	Team2 []SquadPlayer `json:"team_2"`
}

// Value implements driver.Valuer for GORM.
func (s MatchSquads) Value() (driver.Value, error) {
	if s.Team1 == nil {
		s.Team1 = []SquadPlayer{}
	}
	if s.Team2 == nil {
		s.Team2 = []SquadPlayer{}
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for GORM.
func (s *MatchSquads) Scan(value interface{}) error {
	if value == nil {
		*s = MatchSquads{Team1: []SquadPlayer{}, Team2: []SquadPlayer{}}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, s)
}

type Match struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Team1ID   uint           `gorm:"column:team_1;not null" json:"team_1"`
	Team2ID   uint           `gorm:"column:team_2;not null" json:"team_2"`
	Date      time.Time      `gorm:"not null" json:"date"`
	Venue     string         `gorm:"size:255;not null" json:"venue"`
	Status    string         `gorm:"size:20;not null;default:upcoming" json:"status"`
	Squads    MatchSquads    `gorm:"type:jsonb" json:"squads"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Team1 Team `gorm:"foreignKey:Team1ID;references:ID" json:"-"`
	Team2 Team `gorm:"foreignKey:Team2ID;references:ID" json:"-"`
}

func (Match) TableName() string {
	return "matches"
}

type CreateMatchRequest struct {
	Team1ID uint      `json:"team_1" binding:"required"`
	Team2ID uint      `json:"team_2" binding:"required"`
	Date    time.Time `json:"date" binding:"required"`
	Venue   string    `json:"venue" binding:"required"`
}

type UpdateMatchStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=live completed"`
}

// MatchSummary is the list projection: no squads, raw team ids.
type MatchSummary struct {
	MatchID uint      `json:"match_id"`
	Team1ID uint      `json:"team_1"`
	Team2ID uint      `json:"team_2"`
	Date    time.Time `json:"date"`
	Venue   string    `json:"venue"`
}

// MatchDetailResponse resolves team ids to display names and carries the
// snapshot squads.
type MatchDetailResponse struct {
	MatchID uint        `json:"match_id"`
	Team1   string      `json:"team_1"`
	Team2   string      `json:"team_2"`
	Date    time.Time   `json:"date"`
	Venue   string      `json:"venue"`
	Status  string      `json:"status"`
	Squads  MatchSquads `json:"squads"`
}
