package mapping

import (
	"database/sql"

	"github.com/walletworks/ewallet_app/internal/core/domain"
	"github.com/walletworks/ewallet_app/internal/models"
)

// ToModelCustomer converts a domain.Customer to its database model.
func ToModelCustomer(d domain.Customer) models.Customer {
	m := models.Customer{
		CustomerXID:   d.CustomerXID,
		Name:          d.Name,
		Email:         d.Email,
		WalletEnabled: d.WalletEnabled,
		EmailVerified: d.EmailVerified,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
		DeletedAt:     d.DeletedAt,
	}
	if d.PasswordHash != "" {
		m.PasswordHash = sql.NullString{String: d.PasswordHash, Valid: true}
	}
	if d.APIToken != nil {
		m.APIToken = sql.NullString{String: *d.APIToken, Valid: true}
	}
	if d.AvatarURL != "" {
		m.AvatarURL = sql.NullString{String: d.AvatarURL, Valid: true}
	}
	return m
}

// ToDomainCustomer converts a database model to a domain.Customer.
func ToDomainCustomer(m models.Customer) domain.Customer {
	d := domain.Customer{
		CustomerXID:   m.CustomerXID,
		Name:          m.Name,
		Email:         m.Email,
		WalletEnabled: m.WalletEnabled,
		EmailVerified: m.EmailVerified,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     m.DeletedAt,
	}
	if m.PasswordHash.Valid {
		d.PasswordHash = m.PasswordHash.String
	}
	if m.APIToken.Valid {
		token := m.APIToken.String
		d.APIToken = &token
	}
	if m.AvatarURL.Valid {
		d.AvatarURL = m.AvatarURL.String
	}
	return d
}
