package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finsight/internal/errors"
	"finsight/internal/pagination"
	"finsight/internal/services"
)

// TransactionHandler handles transaction listing and upload requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// ListTransactionsQuery represents the query parameters for listing transactions
type ListTransactionsQuery struct {
	pagination.PageRequest
	Search    string   `form:"search"`
	Category  string   `form:"category"`
	Status    string   `form:"status"`
	StartDate string   `form:"start_date"`
	EndDate   string   `form:"end_date"`
	MinAmount *float64 `form:"min_amount"`
	MaxAmount *float64 `form:"max_amount"`
	SortBy    string   `form:"sort_by" binding:"omitempty,sort_field"`
	SortOrder string   `form:"sort_order" binding:"omitempty,sort_order"`
}

// ListTransactions returns a filtered, sorted, paginated transaction listing
// @Summary     List transactions
// @Description List the authenticated user's transactions with filtering, sorting, and pagination
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number (1-based)"
// @Param       page_size query int false "Rows per page"
// @Param       search query string false "Free-text search over category, status, and amount"
// @Param       category query string false "Exact category filter"
// @Param       status query string false "Exact status filter"
// @Param       start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param       end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param       min_amount query number false "Inclusive minimum amount"
// @Param       max_amount query number false "Inclusive maximum amount"
// @Param       sort_by query string false "Sort column: date, amount, category, status"
// @Param       sort_order query string false "Sort direction: asc or desc"
// @Success     200 {object} map[string]interface{} "Transactions and total count"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := services.TransactionFilter{
		Search:    query.Search,
		Category:  query.Category,
		Status:    query.Status,
		MinAmount: query.MinAmount,
		MaxAmount: query.MaxAmount,
	}
	if query.StartDate != "" {
		start, parseErr := parseFlexibleTime(query.StartDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		filter.StartDate = &start
	}
	if query.EndDate != "" {
		end, parseErr := parseFlexibleTime(query.EndDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		filter.EndDate = &end
	}

	sort := services.TransactionSort{By: query.SortBy, Desc: query.SortOrder != "asc"}
	if sort.By == "" {
		sort.By = "date"
	}

	result, err := h.transactionService.GetUserTransactions(userID, query.PageRequest, filter, sort)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": result.Data,
		"total":        result.TotalItems,
		"page":         result.Page,
		"page_size":    result.PageSize,
		"total_pages":  result.TotalPages,
	})
}

// uploadEnvelope matches the object form of an upload payload.
type uploadEnvelope struct {
	Transactions []services.UploadRow `json:"transactions"`
}

// UploadTransactions ingests a batch of transactions
// @Summary     Upload transactions
// @Description Batch-insert transactions for the authenticated user. Accepts a bare JSON array or an object with a transactions array.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     201 {object} map[string]interface{} "Upload result"
// @Failure     400 {object} ErrorResponse "Invalid transactions array"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/upload [post]
func (h *TransactionHandler) UploadTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidUpload, err))
		return
	}

	// Accept either a root array or an object with a transactions array
	var rows []services.UploadRow
	if err := json.Unmarshal(body, &rows); err != nil {
		var envelope uploadEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil || envelope.Transactions == nil {
			respondWithError(c, apperrors.ErrInvalidUpload)
			return
		}
		rows = envelope.Transactions
	}

	count, err := h.transactionService.BulkInsert(userID, rows)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Transactions uploaded successfully",
		"inserted": count,
	})
}
