package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finsight/internal/errors"
	"finsight/internal/services"
)

// ExportHandler handles transaction CSV exports.
type ExportHandler struct {
	exportService services.ExportServicer
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService services.ExportServicer) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportRequest represents the CSV export payload
type ExportRequest struct {
	Columns   string   `json:"columns" binding:"required"`
	Search    string   `json:"search"`
	Category  string   `json:"category"`
	Status    string   `json:"status"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	MinAmount *float64 `json:"min_amount"`
	MaxAmount *float64 `json:"max_amount"`
}

// ExportCSV renders the user's transactions as CSV
// @Summary     Export transactions as CSV
// @Description Renders the filtered transactions as a CSV attachment with the selected columns
// @Tags        export
// @Accept      json
// @Produce     text/csv
// @Security    BearerAuth
// @Param       request body ExportRequest true "Columns (comma-separated) and filters"
// @Success     200 {string} string "CSV content"
// @Failure     400 {object} ErrorResponse "Invalid columns or filters"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /export/csv [post]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := services.TransactionFilter{
		Search:    req.Search,
		Category:  req.Category,
		Status:    req.Status,
		MinAmount: req.MinAmount,
		MaxAmount: req.MaxAmount,
	}
	if req.StartDate != "" {
		start, parseErr := parseFlexibleTime(req.StartDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		filter.StartDate = &start
	}
	if req.EndDate != "" {
		end, parseErr := parseFlexibleTime(req.EndDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		filter.EndDate = &end
	}

	data, err := h.exportService.ExportCSV(userID, splitColumns(req.Columns), filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filename := fmt.Sprintf("transactions_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

// splitColumns parses a comma-separated column list, trimming whitespace and
// skipping empty entries.
func splitColumns(raw string) []string {
	parts := strings.Split(raw, ",")
	columns := make([]string, 0, len(parts))
	for _, part := range parts {
		if col := strings.TrimSpace(part); col != "" {
			columns = append(columns, col)
		}
	}
	return columns
}
