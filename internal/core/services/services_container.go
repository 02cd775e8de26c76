package services

import (
	portsrepo "github.com/walletworks/ewallet_app/internal/core/ports/repositories"
	portssvc "github.com/walletworks/ewallet_app/internal/core/ports/services"
	"github.com/walletworks/ewallet_app/internal/platform/config"
)

// NewServiceContainer wires the services from the repository provider.
// tokenCache may be nil when no Redis is configured.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, tokenCache portsrepo.TokenCache) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Customer:    NewCustomerService(repos.CustomerRepo),
		Token:       NewTokenService(repos.CustomerRepo, tokenCache),
		Wallet:      NewWalletService(repos.CustomerRepo, repos.LedgerRepo),
		GoogleOAuth: NewGoogleOAuthService(cfg),
	}
}
