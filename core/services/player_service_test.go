package services

import (
	"errors"
	"testing"

	"github.com/PAARTH2608/workindia-task/core/models"
)

func TestCreatePlayer_OptionalStats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPlayerService(db)

	runs := 1200
	avg := 53.4
	player, err := svc.CreatePlayer(models.CreatePlayerRequest{
		Name:    "Virat",
		Role:    models.RoleBatter,
		Runs:    &runs,
		Average: &avg,
	})
	if err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}

	stats, err := svc.GetPlayerStats(player.ID)
	if err != nil {
		t.Fatalf("GetPlayerStats: %v", err)
	}
	if stats.Runs == nil || *stats.Runs != 1200 {
		t.Fatalf("expected runs 1200, got %v", stats.Runs)
	}
	if stats.Average == nil || *stats.Average != 53.4 {
		t.Fatalf("expected average 53.4, got %v", stats.Average)
	}
	// Unset fields stay unrecorded, not zero.
	if stats.MatchesPlayed != nil || stats.StrikeRate != nil {
		t.Fatalf("expected unset stats to be nil, got %+v", stats)
	}
}

func TestGetPlayerStats_NotFound(t *testing.T) {
	db := setupTestDB(t)

	if _, err := NewPlayerService(db).GetPlayerStats(404); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestAddPlayerToSquad_TeamNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := NewPlayerService(db).AddPlayerToSquad(42, models.AddSquadPlayerRequest{
		Name: "Virat",
		Role: models.RoleBatter,
	})
	if !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestAddPlayerToSquad_AppearsInSquad(t *testing.T) {
	db := setupTestDB(t)
	team := createTestTeam(t, db, "India")
	playerSvc := NewPlayerService(db)
	teamSvc := NewTeamService(db)

	player, err := playerSvc.AddPlayerToSquad(team.ID, models.AddSquadPlayerRequest{
		Name: "Virat",
		Role: models.RoleBatter,
	})
	if err != nil {
		t.Fatalf("AddPlayerToSquad: %v", err)
	}

	squad, err := teamSvc.GetSquad(team.ID)
	if err != nil {
		t.Fatalf("GetSquad: %v", err)
	}
	if len(squad.Players) != 1 || squad.Players[0].ID != player.ID {
		t.Fatalf("expected squad to contain player %d, got %+v", player.ID, squad.Players)
	}
}

func TestAddPlayerToSquad_SameNameMintsDistinctPlayers(t *testing.T) {
	db := setupTestDB(t)
	team := createTestTeam(t, db, "India")
	playerSvc := NewPlayerService(db)

	first, err := playerSvc.AddPlayerToSquad(team.ID, models.AddSquadPlayerRequest{
		Name: "Virat",
		Role: models.RoleBatter,
	})
	if err != nil {
		t.Fatalf("first AddPlayerToSquad: %v", err)
	}

	second, err := playerSvc.AddPlayerToSquad(team.ID, models.AddSquadPlayerRequest{
		Name: "Virat",
		Role: models.RoleBatter,
	})
	if err != nil {
		t.Fatalf("second AddPlayerToSquad: %v", err)
	}

	if first.ID == second.ID {
		t.Fatal("names are not unique keys: a repeated add must mint a new player")
	}

	squad, err := NewTeamService(db).GetSquad(team.ID)
	if err != nil {
		t.Fatalf("GetSquad: %v", err)
	}
	if len(squad.Players) != 2 {
		t.Fatalf("expected 2 squad members, got %d", len(squad.Players))
	}
}

func TestAddPlayerToSquad_MultiTeamMembership(t *testing.T) {
	db := setupTestDB(t)
	team1 := createTestTeam(t, db, "India")
	team2 := createTestTeam(t, db, "India A")
	playerSvc := NewPlayerService(db)

	player, err := playerSvc.AddPlayerToSquad(team1.ID, models.AddSquadPlayerRequest{
		Name: "Virat",
		Role: models.RoleBatter,
	})
	if err != nil {
		t.Fatalf("AddPlayerToSquad: %v", err)
	}

	// The model allows a player on several teams; append the existing
	// player to a second team directly through the membership relation.
	if err := db.Model(team2).Association("Players").Append(player); err != nil {
		t.Fatalf("appending membership edge: %v", err)
	}

	teamSvc := NewTeamService(db)
	for _, teamID := range []uint{team1.ID, team2.ID} {
		squad, err := teamSvc.GetSquad(teamID)
		if err != nil {
			t.Fatalf("GetSquad(%d): %v", teamID, err)
		}
		if len(squad.Players) != 1 || squad.Players[0].ID != player.ID {
			t.Fatalf("expected player %d in team %d squad, got %+v", player.ID, teamID, squad.Players)
		}
	}
}
