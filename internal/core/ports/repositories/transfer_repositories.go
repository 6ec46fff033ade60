package repositories

import (
	"context"

	"github.com/planwerk/planwerk_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferReader defines read operations over the immutable transfer log.
type TransferReader interface {
	// ListTransfersByAccountID retrieves all transfers debiting or
	// crediting the account, newest first.
	ListTransfersByAccountID(ctx context.Context, accountID string, limit, offset int) ([]domain.Transfer, error)

	// BalanceOfAccount folds the full transfer history of the account:
	// sum of credited values minus sum of debited values. No stored
	// balance exists anywhere.
	BalanceOfAccount(ctx context.Context, accountID string) (decimal.Decimal, error)

	// GlobalTotals returns the sums of all debited and all credited values
	// across the whole ledger. The two must always be equal.
	GlobalTotals(ctx context.Context) (debits decimal.Decimal, credits decimal.Decimal, err error)
}

// TransferWriter appends to the transfer log. Transfers are never updated
// or deleted.
type TransferWriter interface {
	// SaveTransfer appends a single transfer.
	SaveTransfer(ctx context.Context, transfer domain.Transfer) error
}

// TransferRepositoryFacade combines all transfer-related repository interfaces.
type TransferRepositoryFacade interface {
	TransferReader
	TransferWriter
}
