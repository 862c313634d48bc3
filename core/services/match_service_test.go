package services

import (
	"errors"
	"testing"
	"time"

	"github.com/PAARTH2608/workindia-task/core/models"

	"gorm.io/gorm"
)

func matchRequest(team1, team2 uint) models.CreateMatchRequest {
	return models.CreateMatchRequest{
		Team1ID: team1,
		Team2ID: team2,
		Date:    time.Now().AddDate(0, 0, 7),
		Venue:   "Eden Gardens",
	}
}

func TestCreateMatch_SameTeam(t *testing.T) {
	db := setupTestDB(t)
	team := createTestTeam(t, db, "India")

	_, err := NewMatchService(db).CreateMatch(matchRequest(team.ID, team.ID))
	if !errors.Is(err, ErrSameTeam) {
		t.Fatalf("expected ErrSameTeam, got %v", err)
	}
}

func TestCreateMatch_TeamNotFound(t *testing.T) {
	db := setupTestDB(t)
	team := createTestTeam(t, db, "India")
	svc := NewMatchService(db)

	if _, err := svc.CreateMatch(matchRequest(team.ID, 9999)); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound for missing team_2, got %v", err)
	}
	if _, err := svc.CreateMatch(matchRequest(9999, team.ID)); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound for missing team_1, got %v", err)
	}
}

func TestCreateMatch_StartsUpcomingWithEmptySquads(t *testing.T) {
	db := setupTestDB(t)
	team1 := createTestTeam(t, db, "India")
	team2 := createTestTeam(t, db, "Australia")

	match, err := NewMatchService(db).CreateMatch(matchRequest(team1.ID, team2.ID))
	if err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}
	if match.ID == 0 {
		t.Fatal("expected a generated match id")
	}

	var stored models.Match
	if err := db.First(&stored, match.ID).Error; err != nil {
		t.Fatalf("loading match: %v", err)
	}
	if stored.Status != models.StatusUpcoming {
		t.Fatalf("expected status %q, got %q", models.StatusUpcoming, stored.Status)
	}
	if len(stored.Squads.Team1) != 0 || len(stored.Squads.Team2) != 0 {
		t.Fatalf("expected empty squads, got %+v", stored.Squads)
	}
}

func TestGetMatches_SummaryProjection(t *testing.T) {
	db := setupTestDB(t)
	team1 := createTestTeam(t, db, "India")
	team2 := createTestTeam(t, db, "Australia")
	svc := NewMatchService(db)

	created, err := svc.CreateMatch(matchRequest(team1.ID, team2.ID))
	if err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}

	matches, err := svc.GetMatches()
	if err != nil {
		t.Fatalf("GetMatches: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	summary := matches[0]
	if summary.MatchID != created.ID || summary.Team1ID != team1.ID || summary.Team2ID != team2.ID {
		t.Fatalf("summary mismatch: %+v", summary)
	}
	if summary.Venue != "Eden Gardens" {
		t.Fatalf("expected venue to be projected, got %q", summary.Venue)
	}
}

func TestGetMatchByID_ResolvesTeamNames(t *testing.T) {
	db := setupTestDB(t)
	team1 := createTestTeam(t, db, "India")
	team2 := createTestTeam(t, db, "Australia")
	svc := NewMatchService(db)

	match, err := svc.CreateMatch(matchRequest(team1.ID, team2.ID))
	if err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}

	detail, err := svc.GetMatchByID(match.ID)
	if err != nil {
		t.Fatalf("GetMatchByID: %v", err)
	}
	if detail.Team1 != "India" || detail.Team2 != "Australia" {
		t.Fatalf("expected resolved team names, got %q / %q", detail.Team1, detail.Team2)
	}
	if detail.Status != models.StatusUpcoming {
		t.Fatalf("expected upcoming, got %q", detail.Status)
	}
}

func TestGetMatchByID_NotFound(t *testing.T) {
	db := setupTestDB(t)

	if _, err := NewMatchService(db).GetMatchByID(123); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestUpdateMatchStatus_ForwardOnly(t *testing.T) {
	db := setupTestDB(t)
	team1 := createTestTeam(t, db, "India")
	team2 := createTestTeam(t, db, "Australia")
	svc := NewMatchService(db)

	match, err := svc.CreateMatch(matchRequest(team1.ID, team2.ID))
	if err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}

	// Skipping a state is not allowed.
	if _, err := svc.UpdateMatchStatus(match.ID, models.StatusCompleted); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for upcoming->completed, got %v", err)
	}

	updated, err := svc.UpdateMatchStatus(match.ID, models.StatusLive)
	if err != nil {
		t.Fatalf("upcoming->live: %v", err)
	}
	if updated.Status != models.StatusLive {
		t.Fatalf("expected live, got %q", updated.Status)
	}

	if _, err := svc.UpdateMatchStatus(match.ID, models.StatusLive); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for live->live, got %v", err)
	}

	updated, err = svc.UpdateMatchStatus(match.ID, models.StatusCompleted)
	if err != nil {
		t.Fatalf("live->completed: %v", err)
	}
	if updated.Status != models.StatusCompleted {
		t.Fatalf("expected completed, got %q", updated.Status)
	}

	// Completed is terminal.
	if _, err := svc.UpdateMatchStatus(match.ID, models.StatusLive); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for completed->live, got %v", err)
	}
}

// interleaveMatchUpdate runs fn right before the first UPDATE on matches,
// standing in for a concurrent writer that commits between the service's
// validation read and its write.
func interleaveMatchUpdate(t *testing.T, db *gorm.DB, fn func()) {
	t.Helper()

	fired := false
	err := db.Callback().Update().Before("gorm:update").Register("interleaved_writer", func(tx *gorm.DB) {
		if fired || tx.Statement.Table != "matches" {
			return
		}
		fired = true
		fn()
	})
	if err != nil {
		t.Fatalf("registering callback: %v", err)
	}
}

func TestUpdateMatchStatus_StaleTransitionLoses(t *testing.T) {
	db := setupTestDB(t)
	team1 := createTestTeam(t, db, "India")
	team2 := createTestTeam(t, db, "Australia")
	svc := NewMatchService(db)

	match, err := svc.CreateMatch(matchRequest(team1.ID, team2.ID))
	if err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}

	// Another writer completes the match while this upcoming->live request
	// is in flight. The stale transition must not regress the status.
	interleaveMatchUpdate(t, db, func() {
		if err := db.Exec("UPDATE matches SET status = ? WHERE id = ?", models.StatusCompleted, match.ID).Error; err != nil {
			t.Fatalf("competing update: %v", err)
		}
	})

	if _, err := svc.UpdateMatchStatus(match.ID, models.StatusLive); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for stale transition, got %v", err)
	}

	var stored models.Match
	if err := db.First(&stored, match.ID).Error; err != nil {
		t.Fatalf("loading match: %v", err)
	}
	if stored.Status != models.StatusCompleted {
		t.Fatalf("status regressed to %q", stored.Status)
	}
}

func TestConfirmSquads_LosesWhenMatchGoesLive(t *testing.T) {
	db := setupTestDB(t)
	team1 := createTestTeam(t, db, "India")
	team2 := createTestTeam(t, db, "Australia")
	matchSvc := NewMatchService(db)
	playerSvc := NewPlayerService(db)

	if _, err := playerSvc.AddPlayerToSquad(team1.ID, models.AddSquadPlayerRequest{Name: "Virat", Role: models.RoleBatter}); err != nil {
		t.Fatalf("AddPlayerToSquad: %v", err)
	}

	match, err := matchSvc.CreateMatch(matchRequest(team1.ID, team2.ID))
	if err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}

	// The match goes live while the confirmation is in flight; the late
	// snapshot must not land on a live match.
	interleaveMatchUpdate(t, db, func() {
		if err := db.Exec("UPDATE matches SET status = ? WHERE id = ?", models.StatusLive, match.ID).Error; err != nil {
			t.Fatalf("competing update: %v", err)
		}
	})

	if _, err := matchSvc.ConfirmSquads(match.ID); !errors.Is(err, ErrSquadLocked) {
		t.Fatalf("expected ErrSquadLocked for late confirmation, got %v", err)
	}

	var stored models.Match
	if err := db.First(&stored, match.ID).Error; err != nil {
		t.Fatalf("loading match: %v", err)
	}
	if len(stored.Squads.Team1) != 0 {
		t.Fatalf("late snapshot landed: %+v", stored.Squads)
	}
}

func TestUpdateMatchStatus_NotFound(t *testing.T) {
	db := setupTestDB(t)

	if _, err := NewMatchService(db).UpdateMatchStatus(77, models.StatusLive); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestConfirmSquads_SnapshotSurvivesRosterChanges(t *testing.T) {
	db := setupTestDB(t)
	team1 := createTestTeam(t, db, "India")
	team2 := createTestTeam(t, db, "Australia")
	matchSvc := NewMatchService(db)
	playerSvc := NewPlayerService(db)

	if _, err := playerSvc.AddPlayerToSquad(team1.ID, models.AddSquadPlayerRequest{Name: "Virat", Role: models.RoleBatter}); err != nil {
		t.Fatalf("AddPlayerToSquad: %v", err)
	}
	if _, err := playerSvc.AddPlayerToSquad(team2.ID, models.AddSquadPlayerRequest{Name: "Starc", Role: models.RoleBowler}); err != nil {
		t.Fatalf("AddPlayerToSquad: %v", err)
	}

	match, err := matchSvc.CreateMatch(matchRequest(team1.ID, team2.ID))
	if err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}

	confirmed, err := matchSvc.ConfirmSquads(match.ID)
	if err != nil {
		t.Fatalf("ConfirmSquads: %v", err)
	}
	if len(confirmed.Squads.Team1) != 1 || confirmed.Squads.Team1[0].Name != "Virat" {
		t.Fatalf("team 1 snapshot mismatch: %+v", confirmed.Squads.Team1)
	}
	if len(confirmed.Squads.Team2) != 1 || confirmed.Squads.Team2[0].Name != "Starc" {
		t.Fatalf("team 2 snapshot mismatch: %+v", confirmed.Squads.Team2)
	}

	// A later roster edit must not rewrite the stored snapshot.
	if _, err := playerSvc.AddPlayerToSquad(team1.ID, models.AddSquadPlayerRequest{Name: "Rohit", Role: models.RoleBatter}); err != nil {
		t.Fatalf("AddPlayerToSquad: %v", err)
	}

	detail, err := matchSvc.GetMatchByID(match.ID)
	if err != nil {
		t.Fatalf("GetMatchByID: %v", err)
	}
	if len(detail.Squads.Team1) != 1 {
		t.Fatalf("snapshot changed after roster edit: %+v", detail.Squads.Team1)
	}
}

func TestConfirmSquads_OnlyWhileUpcoming(t *testing.T) {
	db := setupTestDB(t)
	team1 := createTestTeam(t, db, "India")
	team2 := createTestTeam(t, db, "Australia")
	svc := NewMatchService(db)

	match, err := svc.CreateMatch(matchRequest(team1.ID, team2.ID))
	if err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}
	if _, err := svc.UpdateMatchStatus(match.ID, models.StatusLive); err != nil {
		t.Fatalf("UpdateMatchStatus: %v", err)
	}

	if _, err := svc.ConfirmSquads(match.ID); !errors.Is(err, ErrSquadLocked) {
		t.Fatalf("expected ErrSquadLocked, got %v", err)
	}
}

func TestStartDueMatches(t *testing.T) {
	db := setupTestDB(t)
	team1 := createTestTeam(t, db, "India")
	team2 := createTestTeam(t, db, "Australia")
	svc := NewMatchService(db)

	due, err := svc.CreateMatch(models.CreateMatchRequest{
		Team1ID: team1.ID,
		Team2ID: team2.ID,
		Date:    time.Now().Add(-time.Hour),
		Venue:   "Eden Gardens",
	})
	if err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}

	future, err := svc.CreateMatch(matchRequest(team1.ID, team2.ID))
	if err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}

	started, err := svc.StartDueMatches(time.Now())
	if err != nil {
		t.Fatalf("StartDueMatches: %v", err)
	}
	if started != 1 {
		t.Fatalf("expected 1 started match, got %d", started)
	}

	var check models.Match
	if err := db.First(&check, due.ID).Error; err != nil {
		t.Fatalf("loading due match: %v", err)
	}
	if check.Status != models.StatusLive {
		t.Fatalf("due match should be live, got %q", check.Status)
	}

	var futureCheck models.Match
	if err := db.First(&futureCheck, future.ID).Error; err != nil {
		t.Fatalf("loading future match: %v", err)
	}
	if futureCheck.Status != models.StatusUpcoming {
		t.Fatalf("future match should stay upcoming, got %q", futureCheck.Status)
	}
}
