package services

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "finsight/internal/errors"
	"finsight/internal/models"
	"finsight/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// sortableColumns whitelists the columns a listing may be ordered by.
var sortableColumns = map[string]string{
	"date":     "date",
	"amount":   "amount",
	"category": "category",
	"status":   "status",
}

// GetUserTransactions retrieves a paginated, filtered, sorted list of the
// user's transactions.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter, sort TransactionSort) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	column, ok := sortableColumns[sort.By]
	if !ok {
		column = "date"
	}
	order := column + " ASC"
	if sort.Desc {
		order = column + " DESC"
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order(order).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAllUserTransactions loads the user's full transaction set, oldest first.
// The dashboard and analytics aggregations run over this in memory.
func (s *transactionService) GetAllUserTransactions(userID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Where("user_id = ?", userID).Order("date ASC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		if amount, err := strconv.ParseFloat(strings.TrimSpace(f.Search), 64); err == nil {
			q = q.Where("LOWER(category) LIKE ? OR LOWER(status) LIKE ? OR amount = ?", like, like, amount)
		} else {
			q = q.Where("LOWER(category) LIKE ? OR LOWER(status) LIKE ?", like, like)
		}
	}
	if f.StartDate != nil {
		q = q.Where("date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("date <= ?", *f.EndDate)
	}
	if f.MinAmount != nil {
		q = q.Where("amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount <= ?", *f.MaxAmount)
	}
	return q
}

// UploadRow is one transaction in an upload payload. Unknown fields are kept
// in Extra instead of being dropped; a date that fails to parse is stored as
// the zero time and a missing or non-numeric amount as zero.
type UploadRow struct {
	Date     time.Time
	Amount   float64
	Category string
	Status   string
	Type     string
	Extra    map[string]any
}

// uploadDateLayouts are tried in order when parsing an uploaded date string.
var uploadDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// UnmarshalJSON pulls the typed fields out of the row and keeps the rest.
func (r *UploadRow) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for key, value := range raw {
		switch key {
		case "date":
			if str, ok := value.(string); ok {
				r.Date = parseUploadDate(str)
			}
		case "amount":
			switch v := value.(type) {
			case float64:
				r.Amount = v
			case string:
				if parsed, err := strconv.ParseFloat(v, 64); err == nil {
					r.Amount = parsed
				}
			}
		case "category":
			r.Category, _ = value.(string)
		case "status":
			r.Status, _ = value.(string)
		case "type":
			r.Type, _ = value.(string)
		default:
			if r.Extra == nil {
				r.Extra = make(map[string]any)
			}
			r.Extra[key] = value
		}
	}
	return nil
}

func parseUploadDate(s string) time.Time {
	for _, layout := range uploadDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// BulkInsert persists a batch of uploaded rows scoped to one user and returns
// the number of rows inserted.
func (s *transactionService) BulkInsert(userID string, rows []UploadRow) (int, error) {
	if len(rows) == 0 {
		return 0, apperrors.ErrInvalidUpload
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		// Type stays free text: a row typed "expense" must keep that value
		// for the classifier to see it.
		txType := models.TransactionType(row.Type)
		if txType == "" {
			txType = models.TransactionTypeOther
		}
		transactions = append(transactions, models.Transaction{
			UserID:   userID,
			Date:     row.Date,
			Amount:   row.Amount,
			Category: row.Category,
			Status:   row.Status,
			Type:     txType,
			Extra:    row.Extra,
		})
	}

	if err := s.db.Create(&transactions).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return len(transactions), nil
}
