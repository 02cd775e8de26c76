package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/walletworks/ewallet_app/internal/apperrors"
	portssvc "github.com/walletworks/ewallet_app/internal/core/ports/services"
	"github.com/walletworks/ewallet_app/internal/dto"
	"github.com/walletworks/ewallet_app/internal/middleware"
)

// authHandler handles the unauthenticated account endpoints: signup and
// token initialization.
type authHandler struct {
	customerService portssvc.CustomerSvcFacade
	tokenService    portssvc.TokenSvcFacade
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(cs portssvc.CustomerSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{
		customerService: cs,
		tokenService:    ts,
	}
}

// registerAuthRoutes sets up the public signup/init routes on the given group.
func registerAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Customer, services.Token)

	rg.POST("/signup", h.signup)
	rg.POST("/init", h.initToken)
}

// signup registers a new customer. The wallet starts disabled and no token
// is issued here; the client calls /v1/init afterwards.
func (h *authHandler) signup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for signup request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Error("Invalid request body: "+err.Error()))
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Signup rejected, email already registered")
			c.JSON(http.StatusConflict, dto.Error("Email is already registered"))
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Signup rejected, invalid input", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		default:
			logger.Error("Failed to create customer", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Error("Failed to create customer"))
		}
		return
	}

	logger.Info("Customer created", slog.String("customer_xid", customer.CustomerXID))
	c.JSON(http.StatusCreated, dto.Success(dto.SignupResponse{CustomerXID: customer.CustomerXID}))
}

// initToken issues (or rotates) the opaque bearer token for a customer xid.
func (h *authHandler) initToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.InitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for init request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Error("Invalid request body: "+err.Error()))
		return
	}

	token, err := h.tokenService.IssueToken(c.Request.Context(), req.CustomerXID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Init rejected, customer not found", slog.String("customer_xid", req.CustomerXID))
			c.JSON(http.StatusNotFound, dto.Error("Customer not found"))
			return
		}
		logger.Error("Failed to issue token", slog.String("error", err.Error()), slog.String("customer_xid", req.CustomerXID))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to issue token"))
		return
	}

	logger.Info("Token issued", slog.String("customer_xid", req.CustomerXID))
	c.JSON(http.StatusOK, dto.Success(dto.InitResponse{Token: token}))
}
