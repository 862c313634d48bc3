package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/PAARTH2608/workindia-task/core/models"
	"github.com/PAARTH2608/workindia-task/core/services"
	"github.com/PAARTH2608/workindia-task/utils/logger"

	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	playerService *services.PlayerService
}

func NewPlayerHandler(playerService *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// CreatePlayer registers a new player
// @Summary Create a player
// @Description Create a new player with an optional initial stats block
// @Tags players
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param player body models.CreatePlayerRequest true "Player data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/create-player [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req models.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.CreatePlayer(req)
	if err != nil {
		logger.Errorf("Failed to create player: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "Player successfully created",
		"status_code": http.StatusOK,
		"player_id":   player.ID,
	})
}

// AddPlayerToSquad creates a new player inside a team's squad
// @Summary Add player to team squad
// @Description Create a new player and attach it to the team's live squad
// @Tags teams
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param team_id path int true "Team ID"
// @Param player body models.AddSquadPlayerRequest true "Player data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /teams/{team_id}/squad [post]
func (h *PlayerHandler) AddPlayerToSquad(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	var req models.AddSquadPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.AddPlayerToSquad(uint(teamID), req)
	if err != nil {
		if errors.Is(err, services.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
			return
		}
		logger.Errorf("Failed to add player to squad: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Player added to squad successfully",
		"player_id": player.ID,
	})
}

// GetPlayerStats retrieves the stats projection for a player
// @Summary Get player stats
// @Description Get stored stats for a player; unrecorded fields come back null
// @Tags players
// @Produce json
// @Param player_id path int true "Player ID"
// @Success 200 {object} models.PlayerStatsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /players/{player_id}/stats [get]
func (h *PlayerHandler) GetPlayerStats(c *gin.Context) {
	playerID, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}

	stats, err := h.playerService.GetPlayerStats(uint(playerID))
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":      "Player not found",
				"status_code": http.StatusNotFound,
			})
			return
		}
		logger.Errorf("Failed to retrieve player stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
