package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/walletworks/ewallet_app/internal/apperrors"
	"github.com/walletworks/ewallet_app/internal/core/domain"
	portsrepo "github.com/walletworks/ewallet_app/internal/core/ports/repositories"
	"github.com/walletworks/ewallet_app/internal/core/services"
	portssvc "github.com/walletworks/ewallet_app/internal/core/ports/services"
)

// fakeTokenCache is a map-backed TokenCache used to observe cache
// interactions without Redis.
type fakeTokenCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newFakeTokenCache() *fakeTokenCache {
	return &fakeTokenCache{entries: make(map[string]string)}
}

var _ portsrepo.TokenCache = (*fakeTokenCache)(nil)

func (c *fakeTokenCache) Get(_ context.Context, token string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	xid, ok := c.entries[token]
	return xid, ok
}

func (c *fakeTokenCache) Set(_ context.Context, token string, customerXID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[token] = customerXID
}

func (c *fakeTokenCache) Invalidate(_ context.Context, token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, token)
}

// --- Test Suite Setup ---

type TokenServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCustomerRepository
	cache    *fakeTokenCache
	service  portssvc.TokenSvcFacade
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCustomerRepository)
	suite.cache = newFakeTokenCache()
	suite.service = services.NewTokenService(suite.mockRepo, suite.cache)
}

// --- Test Cases ---

func (suite *TokenServiceTestSuite) TestIssueToken_UnknownCustomer() {
	ctx := context.Background()

	suite.mockRepo.On("FindCustomerByXID", ctx, "unknown-xid").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.IssueToken(ctx, "unknown-xid")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAPIToken")
}

func (suite *TokenServiceTestSuite) TestIssueToken_Success() {
	ctx := context.Background()
	customer := &domain.Customer{CustomerXID: "xid-1"}

	suite.mockRepo.On("FindCustomerByXID", ctx, "xid-1").Return(customer, nil).Once()

	var persisted string
	suite.mockRepo.On("UpdateAPIToken", ctx, "xid-1", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { persisted = args.String(2) }).
		Return(nil).Once()

	token, err := suite.service.IssueToken(ctx, "xid-1")

	suite.Require().NoError(err)
	suite.Len(token, 42, "token is a 42-character hex string")
	suite.Equal(token, persisted)

	xid, ok := suite.cache.Get(ctx, token)
	suite.True(ok)
	suite.Equal("xid-1", xid)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TokenServiceTestSuite) TestIssueToken_RotationInvalidatesOldToken() {
	ctx := context.Background()
	oldToken := "old-token"
	customer := &domain.Customer{CustomerXID: "xid-1", APIToken: &oldToken}
	suite.cache.Set(ctx, oldToken, "xid-1")

	suite.mockRepo.On("FindCustomerByXID", ctx, "xid-1").Return(customer, nil).Once()
	suite.mockRepo.On("UpdateAPIToken", ctx, "xid-1", mock.AnythingOfType("string")).Return(nil).Once()

	newToken, err := suite.service.IssueToken(ctx, "xid-1")

	suite.Require().NoError(err)
	suite.NotEqual(oldToken, newToken)

	_, ok := suite.cache.Get(ctx, oldToken)
	suite.False(ok, "old token must be evicted from the cache")
	_, ok = suite.cache.Get(ctx, newToken)
	suite.True(ok)
}

func (suite *TokenServiceTestSuite) TestResolveToken_EmptyToken() {
	_, err := suite.service.ResolveToken(context.Background(), "")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCustomerByToken")
}

func (suite *TokenServiceTestSuite) TestResolveToken_CacheHit() {
	ctx := context.Background()
	token := "valid-token"
	customer := &domain.Customer{CustomerXID: "xid-1", APIToken: &token}
	suite.cache.Set(ctx, token, "xid-1")

	suite.mockRepo.On("FindCustomerByXID", ctx, "xid-1").Return(customer, nil).Once()

	resolved, err := suite.service.ResolveToken(ctx, token)

	suite.Require().NoError(err)
	suite.Equal("xid-1", resolved.CustomerXID)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCustomerByToken")
}

func (suite *TokenServiceTestSuite) TestResolveToken_StaleCacheEntryFallsThrough() {
	ctx := context.Background()
	staleToken := "stale-token"
	currentToken := "current-token"
	customer := &domain.Customer{CustomerXID: "xid-1", APIToken: &currentToken}
	suite.cache.Set(ctx, staleToken, "xid-1")

	// The cached xid resolves to a customer whose token has since rotated;
	// the stale entry is evicted and the lookup misses.
	suite.mockRepo.On("FindCustomerByXID", ctx, "xid-1").Return(customer, nil).Once()
	suite.mockRepo.On("FindCustomerByToken", ctx, staleToken).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ResolveToken(ctx, staleToken)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	_, ok := suite.cache.Get(ctx, staleToken)
	suite.False(ok)
}

func (suite *TokenServiceTestSuite) TestResolveToken_CacheMissPopulatesCache() {
	ctx := context.Background()
	token := "valid-token"
	customer := &domain.Customer{CustomerXID: "xid-1", APIToken: &token}

	suite.mockRepo.On("FindCustomerByToken", ctx, token).Return(customer, nil).Once()

	resolved, err := suite.service.ResolveToken(ctx, token)

	suite.Require().NoError(err)
	suite.Equal("xid-1", resolved.CustomerXID)

	xid, ok := suite.cache.Get(ctx, token)
	suite.True(ok)
	suite.Equal("xid-1", xid)
}

func (suite *TokenServiceTestSuite) TestResolveToken_WorksWithoutCache() {
	ctx := context.Background()
	token := "valid-token"
	customer := &domain.Customer{CustomerXID: "xid-1", APIToken: &token}
	noCacheService := services.NewTokenService(suite.mockRepo, nil)

	suite.mockRepo.On("FindCustomerByToken", ctx, token).Return(customer, nil).Once()

	resolved, err := noCacheService.ResolveToken(ctx, token)

	suite.Require().NoError(err)
	suite.Equal("xid-1", resolved.CustomerXID)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
