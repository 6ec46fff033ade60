package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planwerk/planwerk_app/internal/apperrors"
	"github.com/planwerk/planwerk_app/internal/core/domain"
	portsrepo "github.com/planwerk/planwerk_app/internal/core/ports/repositories"
	portssvc "github.com/planwerk/planwerk_app/internal/core/ports/services"
	"github.com/planwerk/planwerk_app/internal/middleware"
)

var (
	ErrNegativeValue   = errors.New("transfer value must not be negative")
	ErrSameAccount     = errors.New("transfer must involve two different accounts")
	ErrTransferAccount = errors.New("transfer account not found")
)

// ledgerService is the double-entry transfer ledger. All account balances
// in the system are folds over the log it maintains.
type ledgerService struct {
	accountRepo  portsrepo.AccountRepositoryFacade
	transferRepo portsrepo.TransferRepositoryFacade
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(accountRepo portsrepo.AccountRepositoryFacade, transferRepo portsrepo.TransferRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		accountRepo:  accountRepo,
		transferRepo: transferRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// PrepareTransfer validates the posting against the legality table and
// constructs the transfer without persisting it. Zero values are allowed:
// they record consumption of freely provided public products.
func (s *ledgerService) PrepareTransfer(ctx context.Context, debitAccountID, creditAccountID string, value decimal.Decimal, transferType domain.TransferType, date time.Time) (*domain.Transfer, error) {
	if value.IsNegative() {
		return nil, fmt.Errorf("%w: got %s", ErrNegativeValue, value.String())
	}
	if debitAccountID == creditAccountID {
		return nil, ErrSameAccount
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, []string{debitAccountID, creditAccountID})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTransferAccount, err.Error())
		}
		return nil, fmt.Errorf("failed to fetch transfer accounts: %w", err)
	}
	debit, ok := accounts[debitAccountID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTransferAccount, debitAccountID)
	}
	credit, ok := accounts[creditAccountID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTransferAccount, creditAccountID)
	}

	if !domain.LegalTransferPair(transferType, debit.Kind, credit.Kind) {
		return nil, fmt.Errorf("%w: type %s cannot debit %s and credit %s",
			apperrors.ErrInvalidTransferPair, transferType, debit.Kind, credit.Kind)
	}

	return &domain.Transfer{
		TransferID:      uuid.NewString(),
		Date:            date,
		DebitAccountID:  debitAccountID,
		CreditAccountID: creditAccountID,
		Value:           value,
		Type:            transferType,
	}, nil
}

// PostTransfer validates and appends a single transfer.
func (s *ledgerService) PostTransfer(ctx context.Context, debitAccountID, creditAccountID string, value decimal.Decimal, transferType domain.TransferType, date time.Time) (*domain.Transfer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	transfer, err := s.PrepareTransfer(ctx, debitAccountID, creditAccountID, value, transferType, date)
	if err != nil {
		return nil, err
	}

	if err := s.transferRepo.SaveTransfer(ctx, *transfer); err != nil {
		logger.Error("Failed to save transfer",
			slog.String("transfer_type", string(transferType)),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save transfer: %w", err)
	}

	return transfer, nil
}

// AccountBalance folds the account's full transfer history.
func (s *ledgerService) AccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return decimal.Zero, err
	}
	balance, err := s.transferRepo.BalanceOfAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute balance for account %s: %w", accountID, err)
	}
	return balance, nil
}

// AccountStatement lists the account's transfers, newest first.
func (s *ledgerService) AccountStatement(ctx context.Context, accountID string, limit, offset int) ([]domain.Transfer, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	transfers, err := s.transferRepo.ListTransfersByAccountID(ctx, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers for account %s: %w", accountID, err)
	}
	if transfers == nil {
		return []domain.Transfer{}, nil
	}
	return transfers, nil
}

// CheckGlobalBalance verifies that total debits equal total credits over
// the whole ledger.
func (s *ledgerService) CheckGlobalBalance(ctx context.Context) error {
	debits, credits, err := s.transferRepo.GlobalTotals(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute global totals: %w", err)
	}
	if !debits.Equal(credits) {
		return apperrors.NewInvariantViolation("ledger out of balance: debits %s, credits %s", debits.String(), credits.String())
	}
	return nil
}
