package services

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"gorm.io/gorm"

	apperrors "finsight/internal/errors"
	"finsight/internal/models"
)

// exportableColumns whitelists the columns an export may select.
var exportableColumns = map[string]struct{}{
	"id": {}, "date": {}, "amount": {}, "category": {}, "status": {}, "type": {},
}

// exportService renders filtered transactions as CSV.
type exportService struct {
	db *gorm.DB
}

// NewExportService creates a new ExportServicer.
func NewExportService(db *gorm.DB) ExportServicer {
	return &exportService{db: db}
}

// ExportCSV writes the selected columns of the user's filtered transactions
// as a CSV document with a header row. Column order follows the request.
func (s *exportService) ExportCSV(userID string, columns []string, filter TransactionFilter) ([]byte, error) {
	if len(columns) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "No columns selected")
	}
	for _, col := range columns {
		if _, ok := exportableColumns[col]; !ok {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unknown column: "+col)
		}
	}

	q := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	q = applyTransactionFilters(q, filter)

	var transactions []models.Transaction
	if err := q.Order("date ASC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range transactions {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = columnValue(&transactions[i], col)
		}
		if err := w.Write(row); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return buf.Bytes(), nil
}

func columnValue(t *models.Transaction, column string) string {
	switch column {
	case "id":
		return t.ID
	case "date":
		if t.Date.IsZero() {
			return ""
		}
		return t.Date.Format("2006-01-02")
	case "amount":
		return strconv.FormatFloat(t.Amount, 'f', -1, 64)
	case "category":
		return t.Category
	case "status":
		return t.Status
	case "type":
		return string(t.Type)
	}
	return ""
}
