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

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam registers a new team
// @Summary Create a team
// @Description Create a new team with a server-generated id and empty squad
// @Tags teams
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param team body models.CreateTeamRequest true "Team data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/create-team [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req models.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.CreateTeam(req.Name)
	if err != nil {
		logger.Errorf("Failed to create team: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":      "Team created successfully",
		"status_code": http.StatusCreated,
		"team_id":     team.ID,
	})
}

// GetSquad returns a team's current squad
// @Summary Get team squad
// @Description Get the team's live squad, ordered by player id
// @Tags teams
// @Produce json
// @Param team_id path int true "Team ID"
// @Success 200 {object} models.SquadResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /teams/{team_id}/squad [get]
func (h *TeamHandler) GetSquad(c *gin.Context) {
	teamID, err := strconv.ParseUint(c.Param("team_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	squad, err := h.teamService.GetSquad(uint(teamID))
	if err != nil {
		if errors.Is(err, services.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
			return
		}
		logger.Errorf("Failed to retrieve squad: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, squad)
}
