package repositories

import (
	"context"

	"github.com/planwerk/planwerk_app/internal/core/domain"
)

// AccountReader defines read operations for ledger accounts.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its id.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts keyed by id. A missing
	// id yields apperrors.ErrNotFound.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
}

// AccountWriter defines write operations for ledger accounts. Accounts are
// created together with their owner and never deleted.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
