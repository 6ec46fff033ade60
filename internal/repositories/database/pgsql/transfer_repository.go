package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/planwerk/planwerk_app/internal/apperrors"
	"github.com/planwerk/planwerk_app/internal/core/domain"
	portsrepo "github.com/planwerk/planwerk_app/internal/core/ports/repositories"
	"github.com/planwerk/planwerk_app/internal/models"
	"github.com/planwerk/planwerk_app/internal/utils/mapping"
)

type PgxTransferRepository struct {
	BaseRepository
}

// newPgxTransferRepository creates a new repository for the transfer log.
func newPgxTransferRepository(pool *pgxpool.Pool) portsrepo.TransferRepositoryFacade {
	return &PgxTransferRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransferRepositoryFacade = (*PgxTransferRepository)(nil)

const insertTransferQuery = `
	INSERT INTO transfers (transfer_id, date, debit_account_id, credit_account_id, value, type)
	VALUES ($1, $2, $3, $4, $5, $6);
`

// SaveTransfer appends a single transfer. The log is append-only; there
// are no update or delete methods.
func (r *PgxTransferRepository) SaveTransfer(ctx context.Context, transfer domain.Transfer) error {
	m := mapping.ToModelTransfer(transfer)

	_, err := r.Pool.Exec(ctx, insertTransferQuery,
		m.TransferID, m.Date, m.DebitAccountID, m.CreditAccountID, m.Value, m.Type)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transfer with ID %s already exists", apperrors.ErrDuplicate, m.TransferID)
		}
		return fmt.Errorf("failed to save transfer %s: %w", m.TransferID, err)
	}
	return nil
}

// ListTransfersByAccountID retrieves the transfers touching the account,
// newest first.
func (r *PgxTransferRepository) ListTransfersByAccountID(ctx context.Context, accountID string, limit, offset int) ([]domain.Transfer, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT transfer_id, date, debit_account_id, credit_account_id, value, type
		FROM transfers
		WHERE debit_account_id = $1 OR credit_account_id = $1
		ORDER BY date DESC, transfer_id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers for account %s: %w", accountID, err)
	}
	defer rows.Close()

	transfers := []domain.Transfer{}
	for rows.Next() {
		var m models.Transfer
		if err := rows.Scan(&m.TransferID, &m.Date, &m.DebitAccountID, &m.CreditAccountID, &m.Value, &m.Type); err != nil {
			return nil, fmt.Errorf("failed to scan transfer row: %w", err)
		}
		transfers = append(transfers, mapping.ToDomainTransfer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transfer rows: %w", err)
	}
	return transfers, nil
}

// BalanceOfAccount folds the full transfer history of the account: sum of
// credited values minus sum of debited values.
func (r *PgxTransferRepository) BalanceOfAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN credit_account_id = $1 THEN value ELSE -value END), 0)
		FROM transfers
		WHERE debit_account_id = $1 OR credit_account_id = $1;
	`
	var balance decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, accountID).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to fold balance for account %s: %w", accountID, err)
	}
	return balance, nil
}

// GlobalTotals sums debited and credited values over the whole ledger.
// Each side joins against the accounts table, so a dangling account
// reference would surface as a mismatch.
func (r *PgxTransferRepository) GlobalTotals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(t.value) FROM transfers t
				JOIN accounts a ON a.account_id = t.debit_account_id), 0),
			COALESCE((SELECT SUM(t.value) FROM transfers t
				JOIN accounts a ON a.account_id = t.credit_account_id), 0);
	`
	var debits, credits decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query).Scan(&debits, &credits); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to compute global totals: %w", err)
	}
	return debits, credits, nil
}
