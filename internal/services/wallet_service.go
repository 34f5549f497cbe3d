package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "finsight/internal/errors"
	"finsight/internal/models"
)

// Category labels attached to wallet adjustment transactions. Neither label
// is in the expense set, so the aggregation engine counts both sides of a
// wallet movement as revenue. That matches the original dashboard behavior
// and is deliberately left as is; see DESIGN.md.
const (
	WalletAddCategory      = "Wallet Add"
	WalletWithdrawCategory = "Wallet Withdraw"
)

// walletService handles wallet balance adjustments.
type walletService struct {
	db *gorm.DB
}

// NewWalletService creates a new WalletServicer.
func NewWalletService(db *gorm.DB) WalletServicer {
	return &walletService{db: db}
}

// Balance returns the user's current wallet balance.
func (s *walletService) Balance(userID string) (float64, error) {
	var user models.User
	if err := s.db.Select("wallet_balance").Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user.WalletBalance, nil
}

// Add credits the wallet and logs a "Wallet Add" transaction.
func (s *walletService) Add(userID string, amount float64) (float64, error) {
	return s.adjust(userID, amount, WalletAddCategory, amount)
}

// Withdraw debits the wallet and logs a "Wallet Withdraw" transaction. The
// logged amount is negative, the balance check happens before the debit.
func (s *walletService) Withdraw(userID string, amount float64) (float64, error) {
	return s.adjust(userID, -amount, WalletWithdrawCategory, amount)
}

// adjust applies a signed delta to the wallet balance and records the
// movement as a wallet transaction in the same database transaction.
func (s *walletService) adjust(userID string, delta float64, category string, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, apperrors.ErrInvalidAmount
	}

	var balance float64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if delta < 0 && user.WalletBalance < amount {
			return apperrors.ErrInsufficientBalance
		}

		user.WalletBalance += delta
		if err := tx.Model(&user).Update("wallet_balance", user.WalletBalance).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		record := models.Transaction{
			UserID:   userID,
			Date:     time.Now(),
			Amount:   delta,
			Category: category,
			Status:   "completed",
			Type:     models.TransactionTypeWallet,
		}
		if err := tx.Create(&record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		balance = user.WalletBalance
		return nil
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// History lists the user's wallet transactions, newest first.
func (s *walletService) History(userID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.
		Where("user_id = ? AND type = ?", userID, models.TransactionTypeWallet).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}
