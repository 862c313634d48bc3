package core

import (
	"github.com/PAARTH2608/workindia-task/core/cron"
	"github.com/PAARTH2608/workindia-task/core/handlers"
	"github.com/PAARTH2608/workindia-task/core/services"
	"github.com/PAARTH2608/workindia-task/utils/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	PlayerHandler *handlers.PlayerHandler
	PlayerService *services.PlayerService
	TeamHandler   *handlers.TeamHandler
	TeamService   *services.TeamService
	MatchHandler  *handlers.MatchHandler
	MatchService  *services.MatchService
	StatsHandler  *handlers.StatsHandler
	StatsService  *services.StatsService
	Scheduler     *cron.Scheduler
}

func NewModule(db *gorm.DB) *Module {
	playerService := services.NewPlayerService(db)
	playerHandler := handlers.NewPlayerHandler(playerService)

	teamService := services.NewTeamService(db)
	teamHandler := handlers.NewTeamHandler(teamService)

	matchService := services.NewMatchService(db)
	matchHandler := handlers.NewMatchHandler(matchService)

	statsService := services.NewStatsService(db)
	statsHandler := handlers.NewStatsHandler(statsService)

	scheduler := cron.NewScheduler(matchService)

	return &Module{
		PlayerHandler: playerHandler,
		PlayerService: playerService,
		TeamHandler:   teamHandler,
		TeamService:   teamService,
		MatchHandler:  matchHandler,
		MatchService:  matchService,
		StatsHandler:  statsHandler,
		StatsService:  statsService,
		Scheduler:     scheduler,
	}
}

// SetupRoutes registers the data-plane routes. All admin-only mutations sit
// behind the auth gate; reads are public.
func (m *Module) SetupRoutes(r *gin.Engine, authGate gin.HandlerFunc) {
	admin := r.Group("/admin")
	admin.Use(authGate)
	{
		admin.POST("/create-player", m.PlayerHandler.CreatePlayer)
		admin.POST("/create-team", m.TeamHandler.CreateTeam)
	}

	teams := r.Group("/teams")
	{
		teams.POST("/:team_id/squad", authGate, m.PlayerHandler.AddPlayerToSquad)
		teams.GET("/:team_id/squad", m.TeamHandler.GetSquad)
	}

	players := r.Group("/players")
	{
		players.GET("/:player_id/stats", m.PlayerHandler.GetPlayerStats)
	}

	matches := r.Group("/matches")
	{
		matches.GET("", m.MatchHandler.GetMatches)
		matches.GET("/:match_id", m.MatchHandler.GetMatch)
		matches.POST("", authGate, m.MatchHandler.CreateMatch)
		matches.PATCH("/:match_id/status", authGate, m.MatchHandler.UpdateMatchStatus)
		matches.POST("/:match_id/squads", authGate, m.MatchHandler.ConfirmSquads)
	}

	r.GET("/stats", m.StatsHandler.GetStats)
}

// StartScheduler starts the cron scheduler that flips due matches to live.
func (m *Module) StartScheduler() error {
	logger.Info("Starting core module scheduler...")
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler.
func (m *Module) StopScheduler() {
	logger.Info("Stopping core module scheduler...")
	m.Scheduler.Stop()
}
