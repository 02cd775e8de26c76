package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/walletworks/ewallet_app/internal/core/ports/services"
	"github.com/walletworks/ewallet_app/internal/middleware"
	"github.com/walletworks/ewallet_app/internal/platform/config"
	"github.com/walletworks/ewallet_app/internal/utils"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service facades.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	r.GET("/health", getHealth)

	// Public auth routes are rate limited per client IP.
	public := r.Group("/v1", authRateLimit(cfg))
	registerAuthRoutes(public, services)
	registerGoogleOAuthRoutes(public, services)

	// Every wallet route requires a resolved bearer token.
	wallet := r.Group("/v1/wallet",
		middleware.AuthMiddleware(services.Token),
		middleware.PosthogMiddleware(posthogClient),
	)
	registerWalletRoutes(wallet, services.Wallet)
}

// authRateLimit builds the IP rate limiter for the public auth endpoints
// from the configured "<count>-<period>" format.
func authRateLimit(cfg *config.Config) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		slog.Warn("Invalid auth rate limit format, falling back to 20-M", slog.String("configured", cfg.AuthRateLimit))
		rate, _ = limiter.NewRateFromFormatted("20-M")
	}
	store := memory.NewStore()
	return middleware.RateLimit(limiter.New(store, rate))
}
