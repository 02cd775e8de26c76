package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/walletworks/ewallet_app/internal/apperrors"
	portssvc "github.com/walletworks/ewallet_app/internal/core/ports/services"
	"github.com/walletworks/ewallet_app/internal/dto"
	"github.com/walletworks/ewallet_app/internal/middleware"
)

// googleOAuthHandler handles the Google sign-in flow: the frontend posts an
// authorization code, we exchange it with Google, validate the ID token,
// find-or-create the customer, and hand back the same opaque wallet token
// /v1/init would have issued.
type googleOAuthHandler struct {
	oauthService    portssvc.GoogleOAuthSvcFacade
	customerService portssvc.CustomerSvcFacade
	tokenService    portssvc.TokenSvcFacade
}

func newGoogleOAuthHandler(os portssvc.GoogleOAuthSvcFacade, cs portssvc.CustomerSvcFacade, ts portssvc.TokenSvcFacade) *googleOAuthHandler {
	return &googleOAuthHandler{
		oauthService:    os,
		customerService: cs,
		tokenService:    ts,
	}
}

// registerGoogleOAuthRoutes registers the Google OAuth routes.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newGoogleOAuthHandler(services.GoogleOAuth, services.Customer, services.Token)
	rg.POST("/auth/google", h.exchangeCodeGoogle)
}

func (h *googleOAuthHandler) exchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for exchange code request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Error("Invalid request body: "+err.Error()))
		return
	}

	oauth2Token, err := h.oauthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") || strings.Contains(strings.ToLower(err.Error()), "bad request") {
			c.JSON(http.StatusBadRequest, dto.Error("Invalid or expired authorization code"))
			return
		}
		c.JSON(http.StatusBadGateway, dto.Error("Failed to communicate with Google"))
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token missing from Google token response")
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to retrieve ID token from Google"))
		return
	}

	payload, err := h.oauthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Error("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, dto.Error("Invalid Google ID token"))
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)
	avatarURL, _ := payload.Claims["picture"].(string)

	if email == "" || payload.Subject == "" {
		logger.Error("Essential claims missing from Google ID token payload")
		c.JSON(http.StatusInternalServerError, dto.Error("Essential user information missing from Google token"))
		return
	}

	customer, err := h.customerService.FindOrCreateOAuthCustomer(ctx, name, email, emailVerified, avatarURL)
	if err != nil {
		logger.Error("Failed to resolve OAuth customer", slog.String("error", err.Error()))
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.Code, dto.Error(appErr.Message))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to process authentication"))
		return
	}

	token, err := h.tokenService.IssueToken(ctx, customer.CustomerXID)
	if err != nil {
		logger.Error("Failed to issue token for OAuth customer", slog.String("error", err.Error()), slog.String("customer_xid", customer.CustomerXID))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to issue token"))
		return
	}

	logger.Info("Customer authenticated via Google", slog.String("customer_xid", customer.CustomerXID))
	c.JSON(http.StatusOK, dto.Success(dto.InitResponse{Token: token}))
}
