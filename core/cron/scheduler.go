package cron

import (
	"time"

	"github.com/PAARTH2608/workindia-task/core/services"
	"github.com/PAARTH2608/workindia-task/utils/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler periodically flips matches whose scheduled date has passed from
// upcoming to live, so the state machine advances without manual calls.
type Scheduler struct {
	cron         *cron.Cron
	matchService *services.MatchService
}

func NewScheduler(matchService *services.MatchService) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		matchService: matchService,
	}
}

// Start registers and starts the scheduled jobs.
func (s *Scheduler) Start() error {
	// Every minute is fine: StartDueMatches is a single bulk UPDATE.
	_, err := s.cron.AddFunc("* * * * *", s.runStartDueMatches)
	if err != nil {
		logger.Errorf("Error scheduling due-match job: %v", err)
		return err
	}

	s.cron.Start()
	logger.Info("Cron scheduler started")

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	logger.Info("Cron scheduler stopped")
}

func (s *Scheduler) runStartDueMatches() {
	started, err := s.matchService.StartDueMatches(time.Now())
	if err != nil {
		logger.Errorf("Error starting due matches: %v", err)
		return
	}

	if started > 0 {
		logger.Infof("Marked %d match(es) as live", started)
	}
}

// RunNow manually triggers the due-match job (useful for testing).
func (s *Scheduler) RunNow() {
	s.runStartDueMatches()
}
