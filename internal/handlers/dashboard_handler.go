package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finsight/internal/services"
)

// DashboardHandler serves the dashboard summary and chart data.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary returns the dashboard card totals
// @Summary     Dashboard summary
// @Description Revenue, expenses, savings, balance, and transaction count for the authenticated user
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} aggregate.Summary "Summary totals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.dashboardService.Summary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetChartData returns the dashboard chart series
// @Summary     Dashboard chart data
// @Description Monthly revenue/expense line chart and category pie chart, optionally narrowed by category or status
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       category query string false "Exact category filter for the charts"
// @Param       status query string false "Exact status filter for the charts"
// @Success     200 {object} services.ChartData "Chart series"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/chart-data [get]
func (h *DashboardHandler) GetChartData(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter := services.GraphFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}

	data, err := h.dashboardService.ChartData(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

// GetAnalytics returns the analytics page payload
// @Summary     Analytics report
// @Description Monthly trend, category breakdown, top expense categories, and month-over-month spend change
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.AnalyticsReport "Analytics report"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics [get]
func (h *DashboardHandler) GetAnalytics(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.dashboardService.Analytics(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
