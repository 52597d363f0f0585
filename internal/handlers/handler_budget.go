package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/personal_finance_api/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_api/internal/dto"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to budgets. Every response
// carries the spend computed at request time.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets")
	{
		budgets.GET("", h.listBudgets)
		budgets.POST("", h.createBudget)
		budgets.GET("/:id", h.getBudget)
		budgets.PUT("/:id", h.updateBudget)
		budgets.DELETE("/:id", h.deleteBudget)
	}
}

// listBudgets godoc
// @Summary List budgets with spend
// @Description Lists the user's budgets, each with spent, percentage and alertTriggered as of now
// @Tags budgets
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.ListBudgetsResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListBudgetsResponse(budgets)))
}

// getBudget godoc
// @Summary Get a budget with spend
// @Tags budgets
// @Produce json
// @Param id path int true "Budget ID"
// @Success 200 {object} dto.Envelope{data=dto.BudgetResponse}
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /budgets/{id} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	budgetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	budget, err := h.budgetService.GetBudget(c.Request.Context(), budgetID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToBudgetResponse(budget)))
}

// createBudget godoc
// @Summary Create a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body dto.BudgetRequest true "Budget details"
// @Success 201 {object} dto.Envelope{data=dto.BudgetResponse}
// @Failure 400 {object} dto.Envelope "Validation error, including accounts the user does not own"
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.BudgetRequest
	if !bindJSON(c, &req) {
		return
	}
	budget, err := req.ToDomain(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.budgetService.CreateBudget(c.Request.Context(), budget)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToBudgetResponse(created)))
}

// updateBudget godoc
// @Summary Update a budget
// @Description Replaces the budget and its linked accounts
// @Tags budgets
// @Accept json
// @Produce json
// @Param id path int true "Budget ID"
// @Param budget body dto.BudgetRequest true "Budget details"
// @Success 200 {object} dto.Envelope{data=dto.BudgetResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /budgets/{id} [put]
func (h *budgetHandler) updateBudget(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	budgetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.BudgetRequest
	if !bindJSON(c, &req) {
		return
	}
	budget, err := req.ToDomain(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.budgetService.UpdateBudget(c.Request.Context(), budgetID, budget)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToBudgetResponse(updated)))
}

// deleteBudget godoc
// @Summary Delete a budget
// @Tags budgets
// @Param id path int true "Budget ID"
// @Success 204
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /budgets/{id} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	budgetID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.budgetService.DeleteBudget(c.Request.Context(), budgetID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
