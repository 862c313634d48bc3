package handlers

import (
	"net/http"

	"github.com/PAARTH2608/workindia-task/core/services"
	"github.com/PAARTH2608/workindia-task/utils/logger"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetStats returns tournament-wide counters
// @Summary Get tournament stats
// @Description Get counts of players, teams and matches
// @Tags stats
// @Produce json
// @Success 200 {object} models.Stats
// @Failure 500 {object} map[string]string
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetStats()
	if err != nil {
		logger.Errorf("Failed to compute stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
