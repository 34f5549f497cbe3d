package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"finsight/internal/handlers"
	"finsight/internal/logger"
	"finsight/internal/middleware"
	"finsight/internal/models"
	"finsight/internal/services"
	"finsight/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Transaction{},
		&models.Message{},
		&models.Settings{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	transactionService := services.NewTransactionService(db)
	walletService := services.NewWalletService(db)
	messageService := services.NewMessageService(db)
	settingsService := services.NewSettingsService(db)
	dashboardService := services.NewDashboardService(transactionService)
	exportService := services.NewExportService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	walletHandler := handlers.NewWalletHandler(walletService)
	messageHandler := handlers.NewMessageHandler(messageService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)
	protected.PUT("/users/me", userHandler.UpdateUser)

	transactions := protected.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("/upload", transactionHandler.UploadTransactions)

	dashboard := protected.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)
	dashboard.GET("/chart-data", dashboardHandler.GetChartData)

	protected.GET("/analytics", dashboardHandler.GetAnalytics)

	wallet := protected.Group("/wallet")
	wallet.GET("/balance", walletHandler.GetBalance)
	wallet.POST("/add", walletHandler.Add)
	wallet.POST("/withdraw", walletHandler.Withdraw)
	wallet.GET("/history", walletHandler.GetHistory)

	messages := protected.Group("/messages")
	messages.GET("", messageHandler.ListMessages)
	messages.POST("/support", messageHandler.SubmitSupport)
	messages.PUT("/:id/read", messageHandler.MarkRead)
	messages.POST("/broadcast", middleware.RequireAdmin(), messageHandler.Broadcast)

	settings := protected.Group("/settings")
	settings.GET("", settingsHandler.GetSettings)
	settings.PUT("", settingsHandler.UpdateSettings)
	settings.DELETE("", settingsHandler.DeleteSettings)

	protected.POST("/export/csv", exportHandler.ExportCSV)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the token and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (token, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"name":"Test User","email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(string)
}

// loginUser logs in and returns the token.
func (app *testApp) loginUser(t *testing.T, email, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["token"].(string)
}

// promoteToAdmin flips a user's role directly in the database. The caller must
// log in again afterwards because the role is baked into the token.
func (app *testApp) promoteToAdmin(t *testing.T, userID string) {
	t.Helper()
	if err := app.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("role", models.UserRoleAdmin).Error; err != nil {
		t.Fatalf("failed to promote user: %v", err)
	}
}

// uploadTransactions uploads a batch of rows for the token's user.
func (app *testApp) uploadTransactions(t *testing.T, token, body string) {
	t.Helper()
	rec := app.request("POST", "/api/v1/transactions/upload", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload failed: %d %s", rec.Code, rec.Body.String())
	}
}
