package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/personal_finance_api/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_api/internal/dto"
	"github.com/SscSPs/personal_finance_api/internal/middleware"
	"github.com/SscSPs/personal_finance_api/internal/utils"
	"github.com/gin-gonic/gin"
)

// recurringHandler handles recurring rules and manual scheduler passes.
type recurringHandler struct {
	recurringService portssvc.RecurringSvcFacade
	posthogClient    *utils.PosthogClientWrapper
	now              func() time.Time
}

func newRecurringHandler(rs portssvc.RecurringSvcFacade, posthogClient *utils.PosthogClientWrapper) *recurringHandler {
	return &recurringHandler{recurringService: rs, posthogClient: posthogClient, now: utcNow}
}

func registerRecurringRoutes(rg *gin.RouterGroup, recurringService portssvc.RecurringSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := newRecurringHandler(recurringService, posthogClient)

	recurring := rg.Group("/recurring-transactions")
	{
		recurring.GET("", h.listRecurring)
		recurring.POST("", h.createRecurring)
		recurring.POST("/process", h.processDue)
		recurring.GET("/:id", h.getRecurring)
		recurring.PUT("/:id", h.updateRecurring)
		recurring.DELETE("/:id", h.deleteRecurring)
	}
}

// listRecurring godoc
// @Summary List recurring transactions
// @Description Lists the user's rules ordered by next due date. When enabled, due rules are processed first.
// @Tags recurring-transactions
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.ListRecurringResponse}
// @Security BearerAuth
// @Router /recurring-transactions [get]
func (h *recurringHandler) listRecurring(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if h.recurringService.ProcessOnList() {
		// A failed pass must not hide the rules themselves.
		today, _ := dto.ProcessRecurringParams{}.Today(h.now())
		res, err := h.recurringService.ProcessDue(ctx, &userID, today)
		if err != nil {
			middleware.GetLoggerFromCtx(ctx).Warn("Processing due rules before listing failed", slog.String("error", err.Error()))
		} else if len(res.Failed) > 0 {
			middleware.GetLoggerFromCtx(ctx).Warn("Some due rules could not be processed", slog.Int("failed", len(res.Failed)))
		}
	}

	rules, err := h.recurringService.ListRecurring(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListRecurringResponse(rules)))
}

// getRecurring godoc
// @Summary Get a recurring transaction
// @Tags recurring-transactions
// @Produce json
// @Param id path int true "Rule ID"
// @Success 200 {object} dto.Envelope{data=dto.RecurringResponse}
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /recurring-transactions/{id} [get]
func (h *recurringHandler) getRecurring(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	ruleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rule, err := h.recurringService.GetRecurring(c.Request.Context(), ruleID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToRecurringResponse(rule)))
}

// createRecurring godoc
// @Summary Create a recurring transaction
// @Description The first due date is the start date
// @Tags recurring-transactions
// @Accept json
// @Produce json
// @Param rule body dto.RecurringRequest true "Rule details"
// @Success 201 {object} dto.Envelope{data=dto.RecurringResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope "Account not found"
// @Security BearerAuth
// @Router /recurring-transactions [post]
func (h *recurringHandler) createRecurring(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.RecurringRequest
	if !bindJSON(c, &req) {
		return
	}
	rule, err := req.ToDomain(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.recurringService.CreateRecurring(c.Request.Context(), rule)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToRecurringResponse(created)))
}

// updateRecurring godoc
// @Summary Update a recurring transaction
// @Description Changing the start date, frequency or interval recomputes the next due date from the start date
// @Tags recurring-transactions
// @Accept json
// @Produce json
// @Param id path int true "Rule ID"
// @Param rule body dto.RecurringRequest true "Rule details"
// @Success 200 {object} dto.Envelope{data=dto.RecurringResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /recurring-transactions/{id} [put]
func (h *recurringHandler) updateRecurring(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	ruleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.RecurringRequest
	if !bindJSON(c, &req) {
		return
	}
	rule, err := req.ToDomain(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.recurringService.UpdateRecurring(c.Request.Context(), ruleID, rule)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToRecurringResponse(updated)))
}

// deleteRecurring godoc
// @Summary Delete a recurring transaction
// @Description Transactions already generated by the rule are kept
// @Tags recurring-transactions
// @Param id path int true "Rule ID"
// @Success 204
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /recurring-transactions/{id} [delete]
func (h *recurringHandler) deleteRecurring(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	ruleID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.recurringService.DeleteRecurring(c.Request.Context(), ruleID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// processDue godoc
// @Summary Process due recurring transactions
// @Description Materializes due auto-create rules and raises reminders for the caller as of the given date (default today)
// @Tags recurring-transactions
// @Produce json
// @Param date query string false "Processing date (YYYY-MM-DD)"
// @Success 200 {object} dto.Envelope{data=dto.ProcessResultResponse}
// @Failure 400 {object} dto.Envelope
// @Security BearerAuth
// @Router /recurring-transactions/process [post]
func (h *recurringHandler) processDue(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.ProcessRecurringParams
	if !bindQuery(c, &params) {
		return
	}
	today, err := params.Today(h.now())
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := h.recurringService.ProcessDue(c.Request.Context(), &userID, today)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "recurring_processed", map[string]any{
		"generated": res.Generated,
		"reminded":  res.Reminded,
		"failed":    len(res.Failed),
	})
	c.JSON(http.StatusOK, dto.OK(dto.ToProcessResultResponse(res)))
}
