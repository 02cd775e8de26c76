package handlers_test

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/walletworks/ewallet_app/internal/core/domain"
	portssvc "github.com/walletworks/ewallet_app/internal/core/ports/services"
	"github.com/walletworks/ewallet_app/internal/dto"
	"github.com/walletworks/ewallet_app/internal/handlers"
	"github.com/walletworks/ewallet_app/internal/platform/config"
	"github.com/walletworks/ewallet_app/internal/utils"
)

// --- Mock CustomerService ---

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, req dto.SignupRequest) (*domain.Customer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) FindOrCreateOAuthCustomer(ctx context.Context, name, email string, emailVerified bool, avatarURL string) (*domain.Customer, error) {
	args := m.Called(ctx, name, email, emailVerified, avatarURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

var _ portssvc.CustomerSvcFacade = (*MockCustomerService)(nil)

// --- Mock TokenService ---

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) IssueToken(ctx context.Context, customerXID string) (string, error) {
	args := m.Called(ctx, customerXID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ResolveToken(ctx context.Context, token string) (*domain.Customer, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock WalletService ---

type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) Enable(ctx context.Context, customerXID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerXID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockWalletService) Disable(ctx context.Context, customerXID string, isDisabled bool) (*domain.Customer, error) {
	args := m.Called(ctx, customerXID, isDisabled)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockWalletService) Deposit(ctx context.Context, customerXID string, amount decimal.Decimal, referenceID string) (*domain.Transaction, error) {
	args := m.Called(ctx, customerXID, amount, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockWalletService) Withdraw(ctx context.Context, customerXID string, amount decimal.Decimal, referenceID string) (*domain.Transaction, error) {
	args := m.Called(ctx, customerXID, amount, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockWalletService) Balance(ctx context.Context, customerXID string) (decimal.Decimal, error) {
	args := m.Called(ctx, customerXID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockWalletService) Transactions(ctx context.Context, customerXID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, customerXID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

var _ portssvc.WalletSvcFacade = (*MockWalletService)(nil)

// --- Mock GoogleOAuthService ---

type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

var _ portssvc.GoogleOAuthSvcFacade = (*MockGoogleOAuthService)(nil)

// newTestRouter builds a full router through the real registration path with
// the given service facades plugged in.
func newTestRouter(services *portssvc.ServiceContainer, authRateLimit string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{AuthRateLimit: authRateLimit}
	handlers.RegisterRoutes(r, cfg, services, utils.InitializePosthogClient("", slog.Default()))
	return r
}

// envelope mirrors the response wrapper for assertions.
type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}
