package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/personal_finance_api/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_api/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/statistics", h.getStatistics)
		reportingGroup.GET("/by-category", h.getCategoryTotals)
	}
}

// getStatistics godoc
// @Summary Income and expense statistics
// @Description Sums income and expense over transactions that are not excluded from statistics, in account currency
// @Tags reports
// @Produce json
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Param accountId query int false "Account filter"
// @Success 200 {object} dto.Envelope{data=dto.StatisticsResponse}
// @Failure 400 {object} dto.Envelope "Invalid input"
// @Failure 401 {object} dto.Envelope "Unauthorized"
// @Failure 500 {object} dto.Envelope "Failed to generate report"
// @Security BearerAuth
// @Router /reports/statistics [get]
func (h *reportingHandler) getStatistics(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.StatisticsParams
	if !bindQuery(c, &params) {
		return
	}
	filter, err := params.ToFilter(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	stats, err := h.reportingService.GetStatistics(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToStatisticsResponse(stats)))
}

// getCategoryTotals godoc
// @Summary Totals by category
// @Description Groups non-excluded transactions by category. Defaults to expenses.
// @Tags reports
// @Produce json
// @Param startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Param accountId query int false "Account filter"
// @Param transactionType query string false "income or expense"
// @Success 200 {object} dto.Envelope{data=dto.CategoryTotalsResponse}
// @Failure 400 {object} dto.Envelope
// @Security BearerAuth
// @Router /reports/by-category [get]
func (h *reportingHandler) getCategoryTotals(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.StatisticsParams
	if !bindQuery(c, &params) {
		return
	}
	filter, err := params.ToFilter(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	rows, err := h.reportingService.GetCategoryTotals(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToCategoryTotalsResponse(rows)))
}
