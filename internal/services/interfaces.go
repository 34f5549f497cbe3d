package services

import (
	"time"

	"finsight/internal/aggregate"
	"finsight/internal/models"
	"finsight/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(name, email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	UpdateUser(id string, update UserUpdate) (*models.User, error)
	SetProfilePic(id, path string) (*models.User, error)
}

// UserUpdate holds the editable profile fields. Nil fields are left unchanged.
type UserUpdate struct {
	Name  *string
	Email *string
}

// TransactionFilter holds optional filter parameters for listing transactions.
// All set fields combine with logical AND, mirroring the in-memory view.
type TransactionFilter struct {
	Search    string
	Category  string
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
	MinAmount *float64
	MaxAmount *float64
}

// TransactionSort selects the ordering of a transaction listing. By must be
// one of the whitelisted sortable columns.
type TransactionSort struct {
	By   string
	Desc bool
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter, sort TransactionSort) (*pagination.PageResponse[models.Transaction], error)
	GetAllUserTransactions(userID string) ([]models.Transaction, error)
	BulkInsert(userID string, rows []UploadRow) (int, error)
}

// WalletServicer defines the contract for wallet balance adjustments.
type WalletServicer interface {
	Balance(userID string) (float64, error)
	Add(userID string, amount float64) (float64, error)
	Withdraw(userID string, amount float64) (float64, error)
	History(userID string) ([]models.Transaction, error)
}

// MessageServicer defines the contract for the user inbox.
type MessageServicer interface {
	ListForUser(userID string) ([]models.Message, error)
	SubmitSupport(userID, title, body string) (*models.Message, error)
	MarkRead(userID, messageID string) (*models.Message, error)
	Broadcast(title, body string) (*models.Message, error)
}

// SettingsUpdate holds the editable settings fields. Nil fields are left unchanged.
type SettingsUpdate struct {
	Theme       *models.Theme
	Currency    *string
	EmailAlerts *bool
	Language    *string
}

// SettingsServicer defines the contract for per-user settings.
type SettingsServicer interface {
	GetByUser(userID string) (*models.Settings, error)
	Upsert(userID string, update SettingsUpdate) (*models.Settings, error)
	Delete(userID string) error
}

// GraphFilter narrows the chart-data transaction set before bucketing.
type GraphFilter struct {
	Category string
	Status   string
}

// ChartData carries the dashboard chart series.
type ChartData struct {
	LineChart []aggregate.MonthBucket  `json:"lineChart"`
	PieChart  []aggregate.CategoryTotal `json:"pieChart"`
}

// AnalyticsReport carries the analytics page payload.
type AnalyticsReport struct {
	MonthlyTrend      []aggregate.MonthBucket   `json:"monthlyTrend"`
	CategoryBreakdown []aggregate.CategoryTotal `json:"categoryBreakdown"`
	TopExpenses       []aggregate.CategoryTotal `json:"topExpenses"`
	SpendChange       aggregate.SpendChange     `json:"spendChange"`
}

// DashboardServicer computes dashboard and analytics figures through the
// aggregation engine.
type DashboardServicer interface {
	Summary(userID string) (aggregate.Summary, error)
	ChartData(userID string, filter GraphFilter) (ChartData, error)
	Analytics(userID string) (AnalyticsReport, error)
}

// ExportServicer renders filtered transactions as CSV.
type ExportServicer interface {
	ExportCSV(userID string, columns []string, filter TransactionFilter) ([]byte, error)
}
