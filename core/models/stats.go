package models

type Stats struct {
	TotalPlayers    int64 `json:"total_players"`
	TotalTeams      int64 `json:"total_teams"`
	TotalMatches    int64 `json:"total_matches"`
	UpcomingMatches int64 `json:"upcoming_matches"`
}
