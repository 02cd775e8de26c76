package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/walletworks/ewallet_app/internal/apperrors"
	"github.com/walletworks/ewallet_app/internal/core/domain"
	portssvc "github.com/walletworks/ewallet_app/internal/core/ports/services"
	"github.com/walletworks/ewallet_app/internal/dto"
	"github.com/walletworks/ewallet_app/internal/middleware"
)

// walletHandler handles all authenticated wallet endpoints. The customer is
// resolved by the auth middleware; handlers read it from the request context
// and pass the xid down explicitly.
type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

// newWalletHandler creates a new walletHandler.
func newWalletHandler(ws portssvc.WalletSvcFacade) *walletHandler {
	return &walletHandler{
		walletService: ws,
	}
}

// registerWalletRoutes registers all wallet routes on the (already
// auth-protected) group.
func registerWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade) {
	h := newWalletHandler(walletService)

	rg.POST("", h.enableWallet)
	rg.GET("", h.getBalance)
	rg.PATCH("", h.disableWallet)
	rg.GET("/transactions", h.listTransactions)
	rg.POST("/deposits", h.deposit)
	rg.POST("/withdrawals", h.withdraw)
}

// customerFromCtx pulls the authenticated customer out of the request
// context. A miss means the route was wired without the auth middleware.
func customerFromCtx(c *gin.Context) (*domain.Customer, bool) {
	customer, ok := middleware.GetCustomerFromCtx(c.Request.Context())
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Customer missing from request context")
		c.JSON(http.StatusUnauthorized, dto.Error("Unauthorized. User not found."))
	}
	return customer, ok
}

// enableWallet handles POST /v1/wallet.
func (h *walletHandler) enableWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customer, ok := customerFromCtx(c)
	if !ok {
		return
	}

	updated, err := h.walletService.Enable(c.Request.Context(), customer.CustomerXID)
	if err != nil {
		if errors.Is(err, apperrors.ErrWalletAlreadyEnabled) {
			logger.Warn("Enable rejected, wallet already enabled")
			c.JSON(http.StatusBadRequest, dto.Error("Already enabled"))
			return
		}
		logger.Error("Failed to enable wallet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to enable wallet"))
		return
	}

	logger.Info("Wallet enabled")
	c.JSON(http.StatusOK, dto.Success(dto.WalletStatusResponse{
		CustomerXID:   updated.CustomerXID,
		WalletEnabled: updated.WalletEnabled,
	}))
}

// disableWallet handles PATCH /v1/wallet. The flag is applied as-is: sending
// is_disabled=false re-enables without the already-enabled guard.
func (h *walletHandler) disableWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customer, ok := customerFromCtx(c)
	if !ok {
		return
	}

	var req dto.DisableWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for disable wallet request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Error("Invalid request body: is_disabled is required"))
		return
	}

	updated, err := h.walletService.Disable(c.Request.Context(), customer.CustomerXID, *req.IsDisabled)
	if err != nil {
		logger.Error("Failed to update wallet state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to update wallet state"))
		return
	}

	logger.Info("Wallet state updated", slog.Bool("wallet_enabled", updated.WalletEnabled))
	c.JSON(http.StatusOK, dto.Success(dto.WalletStatusResponse{
		CustomerXID:   updated.CustomerXID,
		WalletEnabled: updated.WalletEnabled,
	}))
}

// getBalance handles GET /v1/wallet.
func (h *walletHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customer, ok := customerFromCtx(c)
	if !ok {
		return
	}

	balance, err := h.walletService.Balance(c.Request.Context(), customer.CustomerXID)
	if err != nil {
		logger.Error("Failed to read balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to read balance"))
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.BalanceResponse{Balance: balance}))
}

// listTransactions handles GET /v1/wallet/transactions.
func (h *walletHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customer, ok := customerFromCtx(c)
	if !ok {
		return
	}

	txns, err := h.walletService.Transactions(c.Request.Context(), customer.CustomerXID)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to list transactions"))
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToTransactionsResponse(txns)))
}

// deposit handles POST /v1/wallet/deposits.
func (h *walletHandler) deposit(c *gin.Context) {
	h.appendEntry(c, h.walletService.Deposit)
}

// withdraw handles POST /v1/wallet/withdrawals.
func (h *walletHandler) withdraw(c *gin.Context) {
	h.appendEntry(c, h.walletService.Withdraw)
}

// appendEntry binds a ledger entry request and maps the write errors the
// ledger can surface. Deposits and withdrawals differ only in the service
// call, so they share this.
func (h *walletHandler) appendEntry(c *gin.Context, write func(ctx context.Context, customerXID string, amount decimal.Decimal, referenceID string) (*domain.Transaction, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	customer, ok := customerFromCtx(c)
	if !ok {
		return
	}

	var req dto.LedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ledger entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Error("Invalid request body: "+err.Error()))
		return
	}

	txn, err := write(c.Request.Context(), customer.CustomerXID, req.Amount, req.ReferenceID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Ledger entry rejected, invalid amount")
			c.JSON(http.StatusBadRequest, dto.Error("Amount must be greater than zero"))
		case errors.Is(err, apperrors.ErrWalletDisabled):
			logger.Warn("Ledger entry rejected, wallet disabled")
			c.JSON(http.StatusBadRequest, dto.Error("Wallet disabled"))
		case errors.Is(err, apperrors.ErrInsufficientBalance):
			logger.Warn("Withdrawal rejected, insufficient balance")
			c.JSON(http.StatusBadRequest, dto.Error("Insufficient balance"))
		case errors.Is(err, apperrors.ErrDuplicateReference):
			logger.Warn("Ledger entry rejected, duplicate reference id", slog.String("reference_id", req.ReferenceID))
			c.JSON(http.StatusConflict, dto.Error("Reference ID already used"))
		default:
			logger.Error("Failed to record ledger entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Error("Failed to record transaction"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.Success(dto.ToTransactionResponse(*txn)))
}
