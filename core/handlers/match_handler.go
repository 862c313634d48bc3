package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/PAARTH2608/workindia-task/auth/middleware"
	"github.com/PAARTH2608/workindia-task/core/models"
	"github.com/PAARTH2608/workindia-task/core/services"
	"github.com/PAARTH2608/workindia-task/utils/logger"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// CreateMatch schedules a new match
// @Summary Create a match
// @Description Schedule a match between two distinct existing teams
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param match body models.CreateMatchRequest true "Match data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req models.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.CreateMatch(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSameTeam):
			c.JSON(http.StatusBadRequest, gin.H{"error": "team_1 and team_2 must be different"})
		case errors.Is(err, services.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		default:
			logger.Errorf("Failed to create match: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if adminID, ok := middleware.GetAdminID(c); ok {
		logger.Infof("Admin %d scheduled match %d", adminID, match.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Match created successfully",
		"match_id": match.ID,
	})
}

// GetMatches lists all matches
// @Summary List matches
// @Description Get the summary projection of all matches (no squads)
// @Tags matches
// @Produce json
// @Success 200 {object} map[string][]models.MatchSummary
// @Failure 500 {object} map[string]string
// @Router /matches [get]
func (h *MatchHandler) GetMatches(c *gin.Context) {
	matches, err := h.matchService.GetMatches()
	if err != nil {
		logger.Errorf("Failed to fetch matches: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// GetMatch retrieves a single match with squads
// @Summary Get match detail
// @Description Get a match with resolved team names and snapshot squads
// @Tags matches
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} models.MatchDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches/{match_id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	detail, err := h.matchService.GetMatchByID(uint(matchID))
	if err != nil {
		if errors.Is(err, services.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
			return
		}
		logger.Errorf("Failed to fetch match: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// UpdateMatchStatus advances a match through its lifecycle
// @Summary Update match status
// @Description Move a match forward through upcoming -> live -> completed
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param match_id path int true "Match ID"
// @Param status body models.UpdateMatchStatusRequest true "Target status"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches/{match_id}/status [patch]
func (h *MatchHandler) UpdateMatchStatus(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	var req models.UpdateMatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, err := h.matchService.UpdateMatchStatus(uint(matchID), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		case errors.Is(err, services.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status transition"})
		default:
			logger.Errorf("Failed to update match status: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, match)
}

// ConfirmSquads snapshots both teams' rosters into the match
// @Summary Confirm match squads
// @Description Freeze both teams' current rosters into the match squads
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} models.Match
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /matches/{match_id}/squads [post]
func (h *MatchHandler) ConfirmSquads(c *gin.Context) {
	matchID, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match ID"})
		return
	}

	match, err := h.matchService.ConfirmSquads(uint(matchID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMatchNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		case errors.Is(err, services.ErrSquadLocked):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Squads can only be confirmed while the match is upcoming"})
		default:
			logger.Errorf("Failed to confirm squads: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Squads confirmed successfully",
		"match_id": match.ID,
		"squads":   match.Squads,
	})
}
