package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/personal_finance_api/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_api/internal/dto"
	"github.com/gin-gonic/gin"
)

type goalHandler struct {
	goalService portssvc.GoalSvc
	now         func() time.Time
}

func newGoalHandler(gs portssvc.GoalSvc) *goalHandler {
	return &goalHandler{goalService: gs, now: utcNow}
}

func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvc) {
	h := newGoalHandler(goalService)

	goals := rg.Group("/goals")
	{
		goals.GET("", h.listGoals)
		goals.POST("", h.createGoal)
		goals.GET("/:id", h.getGoal)
		goals.PUT("/:id", h.updateGoal)
		goals.DELETE("/:id", h.deleteGoal)
		goals.POST("/:id/contributions", h.addContribution)
	}
}

// listGoals godoc
// @Summary List goals
// @Description Lists the user's savings goals, highest priority first
// @Tags goals
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.ListGoalsResponse}
// @Security BearerAuth
// @Router /goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	goals, err := h.goalService.ListGoals(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListGoalsResponse(goals)))
}

// getGoal godoc
// @Summary Get a goal with its contributions
// @Tags goals
// @Produce json
// @Param id path int true "Goal ID"
// @Success 200 {object} dto.Envelope{data=dto.GoalResponse}
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /goals/{id} [get]
func (h *goalHandler) getGoal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	goal, err := h.goalService.GetGoal(c.Request.Context(), goalID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToGoalResponse(goal)))
}

// createGoal godoc
// @Summary Create a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body dto.GoalRequest true "Goal details"
// @Success 201 {object} dto.Envelope{data=dto.GoalResponse}
// @Failure 400 {object} dto.Envelope
// @Security BearerAuth
// @Router /goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.GoalRequest
	if !bindJSON(c, &req) {
		return
	}
	goal, err := req.ToDomain(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	created, err := h.goalService.CreateGoal(c.Request.Context(), goal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToGoalResponse(created)))
}

// updateGoal godoc
// @Summary Update a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param id path int true "Goal ID"
// @Param goal body dto.GoalRequest true "Goal details"
// @Success 200 {object} dto.Envelope{data=dto.GoalResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /goals/{id} [put]
func (h *goalHandler) updateGoal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.GoalRequest
	if !bindJSON(c, &req) {
		return
	}
	goal, err := req.ToDomain(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	updated, err := h.goalService.UpdateGoal(c.Request.Context(), goalID, goal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToGoalResponse(updated)))
}

// deleteGoal godoc
// @Summary Delete a goal
// @Tags goals
// @Param id path int true "Goal ID"
// @Success 204
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /goals/{id} [delete]
func (h *goalHandler) deleteGoal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.goalService.DeleteGoal(c.Request.Context(), goalID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// addContribution godoc
// @Summary Contribute to a goal
// @Description Records a contribution, advances the goal and marks it achieved once the target is reached
// @Tags goals
// @Accept json
// @Produce json
// @Param id path int true "Goal ID"
// @Param contribution body dto.ContributionRequest true "Contribution"
// @Success 201 {object} dto.Envelope{data=dto.GoalResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /goals/{id}/contributions [post]
func (h *goalHandler) addContribution(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ContributionRequest
	if !bindJSON(c, &req) {
		return
	}
	contribution, err := req.ToDomain(goalID, h.now())
	if err != nil {
		respondError(c, err)
		return
	}

	goal, err := h.goalService.AddContribution(c.Request.Context(), userID, contribution)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToGoalResponse(goal)))
}
