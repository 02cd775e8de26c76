package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/walletworks/ewallet_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CustomerRepo: newPgxCustomerRepository(dbPool),
		LedgerRepo:   newPgxLedgerRepository(dbPool),
	}
}
