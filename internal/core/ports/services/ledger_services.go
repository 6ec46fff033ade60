package services

import (
	"context"
	"time"

	"github.com/planwerk/planwerk_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade is the double-entry transfer ledger. Every account
// balance in the system is derived from it.
type LedgerSvcFacade interface {
	// PostTransfer validates and appends a single transfer.
	PostTransfer(ctx context.Context, debitAccountID, creditAccountID string, value decimal.Decimal, transferType domain.TransferType, date time.Time) (*domain.Transfer, error)

	// PrepareTransfer validates and constructs a transfer without
	// persisting it. Callers that need several transfers applied
	// atomically with other writes prepare them here and hand them to the
	// owning repository's atomic method.
	PrepareTransfer(ctx context.Context, debitAccountID, creditAccountID string, value decimal.Decimal, transferType domain.TransferType, date time.Time) (*domain.Transfer, error)

	// AccountBalance folds the account's full transfer history.
	AccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error)

	// AccountStatement lists the account's transfers, newest first.
	AccountStatement(ctx context.Context, accountID string, limit, offset int) ([]domain.Transfer, error)

	// CheckGlobalBalance verifies that total debits equal total credits
	// over the whole ledger. A mismatch is an invariant violation.
	CheckGlobalBalance(ctx context.Context) error
}
