package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finsight/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates an analyst user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     fmt.Sprintf("Test User %d", nextID()),
		Email:    email,
		Password: string(hash),
		Role:     models.UserRoleAnalyst,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAdmin creates an admin user.
func CreateTestAdmin(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := CreateTestUser(t, db)
	user.Role = models.UserRoleAdmin
	if err := db.Save(user).Error; err != nil {
		t.Fatalf("failed to promote test user to admin: %v", err)
	}
	return user
}

// CreateTestTransaction creates a transaction with the given category and amount.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, category string, amount float64) *models.Transaction {
	t.Helper()
	return CreateTestTransactionOn(t, db, userID, category, amount, time.Now())
}

// CreateTestTransactionOn creates a transaction dated on the given day.
func CreateTestTransactionOn(t *testing.T, db *gorm.DB, userID, category string, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:   userID,
		Date:     date,
		Amount:   amount,
		Category: category,
		Status:   "completed",
		Type:     models.TransactionTypeOther,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestMessage creates a message addressed to the given user.
func CreateTestMessage(t *testing.T, db *gorm.DB, userID string) *models.Message {
	t.Helper()

	n := nextID()
	msg := &models.Message{
		UserID: &userID,
		Type:   models.MessageTypeSystem,
		Title:  fmt.Sprintf("Test Message %d", n),
		Body:   fmt.Sprintf("Test message body %d", n),
	}
	if err := db.Create(msg).Error; err != nil {
		t.Fatalf("failed to create test message: %v", err)
	}
	return msg
}

// CreateTestBroadcast creates a broadcast message visible to every user.
func CreateTestBroadcast(t *testing.T, db *gorm.DB) *models.Message {
	t.Helper()

	n := nextID()
	msg := &models.Message{
		Type:  models.MessageTypeBroadcast,
		Title: fmt.Sprintf("Test Broadcast %d", n),
		Body:  fmt.Sprintf("Test broadcast body %d", n),
	}
	if err := db.Create(msg).Error; err != nil {
		t.Fatalf("failed to create test broadcast: %v", err)
	}
	return msg
}
