package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/walletworks/ewallet_app/internal/apperrors"
	"github.com/walletworks/ewallet_app/internal/core/domain"
	portsrepo "github.com/walletworks/ewallet_app/internal/core/ports/repositories"
	"github.com/walletworks/ewallet_app/internal/core/services"
	portssvc "github.com/walletworks/ewallet_app/internal/core/ports/services"
	"github.com/walletworks/ewallet_app/internal/dto"
	"github.com/walletworks/ewallet_app/internal/utils"
)

// MockCustomerRepository is a mock type for the CustomerRepository interface
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByXID(ctx context.Context, customerXID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerXID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerByToken(ctx context.Context, token string) (*domain.Customer, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) UpdateAPIToken(ctx context.Context, customerXID string, token string) error {
	args := m.Called(ctx, customerXID, token)
	return args.Error(0)
}

func (m *MockCustomerRepository) SetWalletEnabled(ctx context.Context, customerXID string, enabled bool) error {
	args := m.Called(ctx, customerXID, enabled)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portsrepo.CustomerRepository = (*MockCustomerRepository)(nil)

// --- Test Suite Setup ---

type CustomerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCustomerRepository
	service  portssvc.CustomerSvcFacade
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCustomerRepository)
	suite.service = services.NewCustomerService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CustomerServiceTestSuite) TestCreateCustomer_Success() {
	ctx := context.Background()
	req := dto.SignupRequest{
		Name:     "Jane Doe",
		Email:    "Jane.Doe@Example.com",
		Password: "hunter22",
	}

	suite.mockRepo.On("SaveCustomer", ctx, mock.AnythingOfType("domain.Customer")).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(customer)
	suite.NotEmpty(customer.CustomerXID)
	suite.Equal("Jane Doe", customer.Name)
	suite.Equal("jane.doe@example.com", customer.Email, "email should be lowercased")
	suite.False(customer.WalletEnabled, "wallet must start disabled")
	suite.Nil(customer.APIToken, "no token is issued at signup")
	suite.True(utils.CheckPasswordHash("hunter22", customer.PasswordHash))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_ValidationErrors() {
	ctx := context.Background()
	cases := []struct {
		name string
		req  dto.SignupRequest
	}{
		{"empty name", dto.SignupRequest{Name: "  ", Email: "a@b.com", Password: "secret1"}},
		{"missing email", dto.SignupRequest{Name: "Jane", Email: "", Password: "secret1"}},
		{"malformed email", dto.SignupRequest{Name: "Jane", Email: "not-an-email", Password: "secret1"}},
		{"short password", dto.SignupRequest{Name: "Jane", Email: "a@b.com", Password: "abc"}},
	}

	for _, tc := range cases {
		_, err := suite.service.CreateCustomer(ctx, tc.req)
		suite.ErrorIs(err, apperrors.ErrValidation, tc.name)
	}

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCustomer")
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_DuplicateEmail() {
	ctx := context.Background()
	req := dto.SignupRequest{Name: "Jane", Email: "jane@example.com", Password: "secret1"}

	suite.mockRepo.On("SaveCustomer", ctx, mock.AnythingOfType("domain.Customer")).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateCustomer(ctx, req)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestFindOrCreateOAuthCustomer_ExistingByEmail() {
	ctx := context.Background()
	existing := &domain.Customer{CustomerXID: "xid-1", Email: "jane@example.com"}

	suite.mockRepo.On("FindCustomerByEmail", ctx, "jane@example.com").Return(existing, nil).Once()

	customer, err := suite.service.FindOrCreateOAuthCustomer(ctx, "Jane", "Jane@Example.com", true, "")

	suite.Require().NoError(err)
	suite.Equal("xid-1", customer.CustomerXID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCustomer")
}

func (suite *CustomerServiceTestSuite) TestFindOrCreateOAuthCustomer_CreatesOnFirstSignIn() {
	ctx := context.Background()

	suite.mockRepo.On("FindCustomerByEmail", ctx, "jane@example.com").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.Email == "jane@example.com" && c.EmailVerified && !c.WalletEnabled && c.PasswordHash == ""
	})).Return(nil).Once()

	customer, err := suite.service.FindOrCreateOAuthCustomer(ctx, "Jane", "jane@example.com", true, "https://example.com/p.png")

	suite.Require().NoError(err)
	suite.NotEmpty(customer.CustomerXID)
	suite.Equal("https://example.com/p.png", customer.AvatarURL)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestFindOrCreateOAuthCustomer_DuplicateRaceRereads() {
	ctx := context.Background()
	winner := &domain.Customer{CustomerXID: "xid-winner", Email: "jane@example.com"}

	suite.mockRepo.On("FindCustomerByEmail", ctx, "jane@example.com").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCustomer", ctx, mock.AnythingOfType("domain.Customer")).
		Return(apperrors.ErrDuplicate).Once()
	suite.mockRepo.On("FindCustomerByEmail", ctx, "jane@example.com").
		Return(winner, nil).Once()

	customer, err := suite.service.FindOrCreateOAuthCustomer(ctx, "Jane", "jane@example.com", true, "")

	suite.Require().NoError(err)
	suite.Equal("xid-winner", customer.CustomerXID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
