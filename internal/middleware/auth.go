package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/walletworks/ewallet_app/internal/apperrors"
	portssvc "github.com/walletworks/ewallet_app/internal/core/ports/services"
	"github.com/walletworks/ewallet_app/internal/dto"
)

// AuthMiddleware creates a Gin middleware handler that resolves the opaque
// bearer token from the Authorization header into a customer. The resolved
// customer is stored in the request context for handlers to pass onward.
func AuthMiddleware(tokenSvc portssvc.TokenSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("Unauthorized. User not found."))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || (!strings.EqualFold(parts[0], "token") && !strings.EqualFold(parts[0], "bearer")) {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("Authorization header format must be Bearer {token}"))
			return
		}

		customer, err := tokenSvc.ResolveToken(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Unknown bearer token")
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("Unauthorized. User not found."))
				return
			}
			logger.Error("Token resolution failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Error("Failed to authenticate request."))
			return
		}

		ctx := withCustomer(c.Request.Context(), customer)
		enrichedLogger := logger.With(slog.String("customer_xid", customer.CustomerXID))
		ctx = withLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
