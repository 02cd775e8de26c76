package mapping

import (
	"github.com/walletworks/ewallet_app/internal/core/domain"
	"github.com/walletworks/ewallet_app/internal/models"
)

// ToDomainTransaction converts a database model to a domain.Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:          m.ID,
		CustomerXID: m.CustomerXID,
		Kind:        domain.TransactionKind(m.Kind),
		Amount:      m.Amount,
		ReferenceID: m.ReferenceID,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of models to domain transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
