package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/walletworks/ewallet_app/internal/apperrors"
	"github.com/walletworks/ewallet_app/internal/core/domain"
	portsrepo "github.com/walletworks/ewallet_app/internal/core/ports/repositories"
	portssvc "github.com/walletworks/ewallet_app/internal/core/ports/services"
	"github.com/walletworks/ewallet_app/internal/dto"
	"github.com/walletworks/ewallet_app/internal/middleware"
	"github.com/walletworks/ewallet_app/internal/utils"
)

const (
	maxNameLength     = 255
	maxEmailLength    = 255
	minPasswordLength = 6
)

// customerService provides customer identity operations.
type customerService struct {
	customerRepo portsrepo.CustomerRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepository) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

// Ensure customerService implements the portssvc.CustomerSvcFacade interface
var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func validateSignup(req dto.SignupRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > maxNameLength {
		return fmt.Errorf("%w: name must be non-empty and at most %d characters", apperrors.ErrValidation, maxNameLength)
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || len(email) > maxEmailLength || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid email of at most %d characters is required", apperrors.ErrValidation, maxEmailLength)
	}
	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrValidation, minPasswordLength)
	}
	return nil
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.SignupRequest) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateSignup(req); err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerXID:   uuid.NewString(),
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:  passwordHash,
		WalletEnabled: false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		logger.Error("Failed to save customer", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return &customer, nil
}

func (s *customerService) FindOrCreateOAuthCustomer(ctx context.Context, name, email string, emailVerified bool, avatarURL string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required for OAuth sign-in", apperrors.ErrValidation)
	}

	existing, err := s.customerRepo.FindCustomerByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up customer by email: %w", err)
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerXID:   uuid.NewString(),
		Name:          name,
		Email:         email,
		WalletEnabled: false,
		EmailVerified: emailVerified,
		AvatarURL:     avatarURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		// Two first sign-ins racing on the same email: the loser re-reads.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.customerRepo.FindCustomerByEmail(ctx, email)
		}
		logger.Error("Failed to save OAuth customer", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create OAuth customer: %w", err)
	}

	logger.Info("Created customer via OAuth sign-in", slog.String("customer_xid", customer.CustomerXID))
	return &customer, nil
}
