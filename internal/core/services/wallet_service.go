package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/walletworks/ewallet_app/internal/apperrors"
	"github.com/walletworks/ewallet_app/internal/core/domain"
	portsrepo "github.com/walletworks/ewallet_app/internal/core/ports/repositories"
	portssvc "github.com/walletworks/ewallet_app/internal/core/ports/services"
	"github.com/walletworks/ewallet_app/internal/middleware"
)

// walletService orchestrates wallet state transitions and ledger operations.
// All retries are client-driven; failures from the stores pass through
// unchanged so the caller can rely on reference_id idempotency.
type walletService struct {
	customerRepo portsrepo.CustomerRepository
	ledgerRepo   portsrepo.LedgerRepository
}

// NewWalletService creates a new WalletService.
func NewWalletService(customerRepo portsrepo.CustomerRepository, ledgerRepo portsrepo.LedgerRepository) portssvc.WalletSvcFacade {
	return &walletService{customerRepo: customerRepo, ledgerRepo: ledgerRepo}
}

// Ensure walletService implements the portssvc.WalletSvcFacade interface
var _ portssvc.WalletSvcFacade = (*walletService)(nil)

func (s *walletService) Enable(ctx context.Context, customerXID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByXID(ctx, customerXID)
	if err != nil {
		return nil, err
	}
	if customer.WalletEnabled {
		return nil, apperrors.ErrWalletAlreadyEnabled
	}

	if err := s.customerRepo.SetWalletEnabled(ctx, customerXID, true); err != nil {
		return nil, fmt.Errorf("failed to enable wallet: %w", err)
	}

	customer.WalletEnabled = true
	return customer, nil
}

// Disable writes enabled = !isDisabled with no already-disabled guard,
// mirroring Enable's asymmetric counterpart in the wallet API contract.
func (s *walletService) Disable(ctx context.Context, customerXID string, isDisabled bool) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByXID(ctx, customerXID)
	if err != nil {
		return nil, err
	}

	enabled := !isDisabled
	if err := s.customerRepo.SetWalletEnabled(ctx, customerXID, enabled); err != nil {
		return nil, fmt.Errorf("failed to set wallet state: %w", err)
	}

	customer.WalletEnabled = enabled
	return customer, nil
}

func (s *walletService) Deposit(ctx context.Context, customerXID string, amount decimal.Decimal, referenceID string) (*domain.Transaction, error) {
	return s.append(ctx, customerXID, domain.Deposit, amount, referenceID)
}

func (s *walletService) Withdraw(ctx context.Context, customerXID string, amount decimal.Decimal, referenceID string) (*domain.Transaction, error) {
	return s.append(ctx, customerXID, domain.Withdrawal, amount, referenceID)
}

func (s *walletService) append(ctx context.Context, customerXID string, kind domain.TransactionKind, amount decimal.Decimal, referenceID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	customer, err := s.customerRepo.FindCustomerByXID(ctx, customerXID)
	if err != nil {
		return nil, err
	}
	if !customer.WalletEnabled {
		return nil, apperrors.ErrWalletDisabled
	}

	// The ledger store re-checks the wallet flag and, for withdrawals, the
	// derived balance atomically with the insert; the check above only
	// short-circuits the obvious case.
	txn, err := s.ledgerRepo.AppendTransaction(ctx, customerXID, kind, amount, referenceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateReference) {
			logger.Warn("Duplicate reference id rejected",
				slog.String("customer_xid", customerXID),
				slog.String("reference_id", referenceID),
			)
		}
		return nil, err
	}

	logger.Info("Ledger entry recorded",
		slog.String("customer_xid", customerXID),
		slog.String("kind", string(kind)),
		slog.Int64("transaction_id", txn.ID),
	)
	return txn, nil
}

func (s *walletService) Balance(ctx context.Context, customerXID string) (decimal.Decimal, error) {
	if _, err := s.customerRepo.FindCustomerByXID(ctx, customerXID); err != nil {
		return decimal.Zero, err
	}
	balance, err := s.ledgerRepo.BalanceOf(ctx, customerXID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read balance: %w", err)
	}
	return balance, nil
}

func (s *walletService) Transactions(ctx context.Context, customerXID string) ([]domain.Transaction, error) {
	if _, err := s.customerRepo.FindCustomerByXID(ctx, customerXID); err != nil {
		return nil, err
	}
	txns, err := s.ledgerRepo.TransactionsOf(ctx, customerXID)
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return txns, nil
}
