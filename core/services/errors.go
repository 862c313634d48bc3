package services

import "errors"

// Sentinel errors handlers translate into HTTP statuses.
var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrMatchNotFound     = errors.New("match not found")
	ErrSameTeam          = errors.New("team_1 and team_2 must be different")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrSquadLocked       = errors.New("squads can only be confirmed while the match is upcoming")
)
