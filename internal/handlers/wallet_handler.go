package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "finsight/internal/errors"
	"finsight/internal/services"
)

// WalletHandler handles wallet balance requests.
type WalletHandler struct {
	walletService services.WalletServicer
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletService services.WalletServicer) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// WalletAmountRequest represents a wallet add or withdraw payload
type WalletAmountRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// GetBalance returns the wallet balance
// @Summary     Wallet balance
// @Tags        wallet
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]float64 "Current balance"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /wallet/balance [get]
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	balance, err := h.walletService.Balance(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wallet_balance": balance})
}

// Add credits the wallet
// @Summary     Add funds to the wallet
// @Tags        wallet
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body WalletAmountRequest true "Amount to add"
// @Success     200 {object} map[string]float64 "New balance"
// @Failure     400 {object} ErrorResponse "Invalid amount"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /wallet/add [post]
func (h *WalletHandler) Add(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req WalletAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Invalid amount"))
		return
	}

	balance, err := h.walletService.Add(userID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wallet_balance": balance})
}

// Withdraw debits the wallet
// @Summary     Withdraw funds from the wallet
// @Tags        wallet
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body WalletAmountRequest true "Amount to withdraw"
// @Success     200 {object} map[string]float64 "New balance"
// @Failure     400 {object} ErrorResponse "Invalid amount or insufficient balance"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /wallet/withdraw [post]
func (h *WalletHandler) Withdraw(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req WalletAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidAmount, "Invalid amount"))
		return
	}

	balance, err := h.walletService.Withdraw(userID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wallet_balance": balance})
}

// GetHistory lists wallet transactions
// @Summary     Wallet history
// @Description Wallet adjustment transactions, newest first
// @Tags        wallet
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Wallet transactions"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /wallet/history [get]
func (h *WalletHandler) GetHistory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.walletService.History(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}
