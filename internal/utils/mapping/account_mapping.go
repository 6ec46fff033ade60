package mapping

import (
	"github.com/planwerk/planwerk_app/internal/core/domain"
	"github.com/planwerk/planwerk_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID: d.AccountID,
		Kind:      string(d.Kind),
		OwnerID:   d.OwnerID,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID: m.AccountID,
		Kind:      domain.AccountKind(m.Kind),
		OwnerID:   m.OwnerID,
		CreatedAt: m.CreatedAt,
	}
}
