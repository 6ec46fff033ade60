package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planwerk/planwerk_app/internal/apperrors"
	"github.com/planwerk/planwerk_app/internal/core/domain"
	portsrepo "github.com/planwerk/planwerk_app/internal/core/ports/repositories"
	"github.com/planwerk/planwerk_app/internal/models"
	"github.com/planwerk/planwerk_app/internal/utils/mapping"
)

type PgxCoordinationRepository struct {
	BaseRepository
}

// newPgxCoordinationRepository creates a new repository for tenures and
// transfer requests.
func newPgxCoordinationRepository(pool *pgxpool.Pool) portsrepo.CoordinationRepositoryFacade {
	return &PgxCoordinationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CoordinationRepositoryFacade = (*PgxCoordinationRepository)(nil)

const insertTenureQuery = `
	INSERT INTO coordination_tenures (tenure_id, cooperation_id, coordinator_id, start_date, end_date)
	VALUES ($1, $2, $3, $4, $5);
`

const tenureColumns = `tenure_id, cooperation_id, coordinator_id, start_date, end_date`

func scanTenure(row pgx.Row) (*models.CoordinationTenure, error) {
	var m models.CoordinationTenure
	if err := row.Scan(&m.TenureID, &m.CooperationID, &m.CoordinatorID, &m.StartDate, &m.EndDate); err != nil {
		return nil, err
	}
	return &m, nil
}

// FindOpenTenure retrieves the tenure of the cooperation with no end
// date. A partial unique index guarantees there is at most one.
func (r *PgxCoordinationRepository) FindOpenTenure(ctx context.Context, cooperationID string) (*domain.CoordinationTenure, error) {
	query := `SELECT ` + tenureColumns + ` FROM coordination_tenures WHERE cooperation_id = $1 AND end_date IS NULL;`
	m, err := scanTenure(r.Pool.QueryRow(ctx, query, cooperationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no open tenure for cooperation %s", apperrors.ErrNotFound, cooperationID)
		}
		return nil, fmt.Errorf("failed to find open tenure for cooperation %s: %w", cooperationID, err)
	}
	d := mapping.ToDomainTenure(*m)
	return &d, nil
}

// FindTenureByID retrieves a tenure by its ID.
func (r *PgxCoordinationRepository) FindTenureByID(ctx context.Context, tenureID string) (*domain.CoordinationTenure, error) {
	query := `SELECT ` + tenureColumns + ` FROM coordination_tenures WHERE tenure_id = $1;`
	m, err := scanTenure(r.Pool.QueryRow(ctx, query, tenureID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: tenure %s", apperrors.ErrNotFound, tenureID)
		}
		return nil, fmt.Errorf("failed to find tenure by ID %s: %w", tenureID, err)
	}
	d := mapping.ToDomainTenure(*m)
	return &d, nil
}

// ListTenures retrieves all tenures of a cooperation, newest first.
func (r *PgxCoordinationRepository) ListTenures(ctx context.Context, cooperationID string) ([]domain.CoordinationTenure, error) {
	query := `SELECT ` + tenureColumns + ` FROM coordination_tenures WHERE cooperation_id = $1 ORDER BY start_date DESC;`
	rows, err := r.Pool.Query(ctx, query, cooperationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenures for cooperation %s: %w", cooperationID, err)
	}
	defer rows.Close()

	tenures := []domain.CoordinationTenure{}
	for rows.Next() {
		m, err := scanTenure(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenure row: %w", err)
		}
		tenures = append(tenures, mapping.ToDomainTenure(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenure rows: %w", err)
	}
	return tenures, nil
}

const requestColumns = `request_id, tenure_id, candidate_id, creation_date, status`

func scanRequest(row pgx.Row) (*models.CoordinationTransferRequest, error) {
	var m models.CoordinationTransferRequest
	if err := row.Scan(&m.RequestID, &m.TenureID, &m.CandidateID, &m.CreationDate, &m.Status); err != nil {
		return nil, err
	}
	return &m, nil
}

// FindRequestByID retrieves a transfer request by its ID.
func (r *PgxCoordinationRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.CoordinationTransferRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM coordination_transfer_requests WHERE request_id = $1;`
	m, err := scanRequest(r.Pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transfer request %s", apperrors.ErrNotFound, requestID)
		}
		return nil, fmt.Errorf("failed to find transfer request by ID %s: %w", requestID, err)
	}
	d := mapping.ToDomainTransferRequest(*m)
	return &d, nil
}

// FindPendingRequestByTenure retrieves the single pending request of a
// tenure, if any.
func (r *PgxCoordinationRepository) FindPendingRequestByTenure(ctx context.Context, tenureID string) (*domain.CoordinationTransferRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM coordination_transfer_requests WHERE tenure_id = $1 AND status = 'PENDING';`
	m, err := scanRequest(r.Pool.QueryRow(ctx, query, tenureID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no pending request for tenure %s", apperrors.ErrNotFound, tenureID)
		}
		return nil, fmt.Errorf("failed to find pending request for tenure %s: %w", tenureID, err)
	}
	d := mapping.ToDomainTransferRequest(*m)
	return &d, nil
}

// SaveTransferRequest inserts a new pending request. The partial unique
// index on (tenure_id) WHERE status = 'PENDING' turns a second pending
// request into a conflict.
func (r *PgxCoordinationRepository) SaveTransferRequest(ctx context.Context, request domain.CoordinationTransferRequest) error {
	m := mapping.ToModelTransferRequest(request)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO coordination_transfer_requests (request_id, tenure_id, candidate_id, creation_date, status)
		VALUES ($1, $2, $3, $4, $5);
	`, m.RequestID, m.TenureID, m.CandidateID, m.CreationDate, m.Status)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: tenure %s already has a pending transfer request", apperrors.ErrConflict, m.TenureID)
		}
		return fmt.Errorf("failed to save transfer request %s: %w", m.RequestID, err)
	}
	return nil
}

// CloseTransferRequest moves a pending request to the given closed
// status. Guarded on the pending status: a request already closed reports
// ErrInvalidStateTransition.
func (r *PgxCoordinationRepository) CloseTransferRequest(ctx context.Context, requestID string, status domain.TransferRequestStatus) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE coordination_transfer_requests
		SET status = $2
		WHERE request_id = $1 AND status = 'PENDING';
	`, requestID, string(status))
	if err != nil {
		return fmt.Errorf("failed to close transfer request %s: %w", requestID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transfer request %s is not pending", apperrors.ErrInvalidStateTransition, requestID)
	}
	return nil
}

// RotateTenure ends the current tenure, opens the new one and accepts the
// request in one transaction. Every step is guarded, so concurrent
// rotations cannot produce two open tenures.
func (r *PgxCoordinationRepository) RotateTenure(ctx context.Context, closing domain.CoordinationTenure, opening domain.CoordinationTenure, request domain.CoordinationTransferRequest) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	c := mapping.ToModelTenure(closing)
	cmdTag, err := tx.Exec(ctx, `
		UPDATE coordination_tenures
		SET end_date = $2
		WHERE tenure_id = $1 AND end_date IS NULL;
	`, c.TenureID, c.EndDate)
	if err != nil {
		return fmt.Errorf("failed to end tenure %s: %w", c.TenureID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: tenure %s already ended", apperrors.ErrInvalidStateTransition, c.TenureID)
	}

	o := mapping.ToModelTenure(opening)
	if _, err := tx.Exec(ctx, insertTenureQuery,
		o.TenureID, o.CooperationID, o.CoordinatorID, o.StartDate, o.EndDate); err != nil {
		return fmt.Errorf("failed to open tenure %s: %w", o.TenureID, err)
	}

	q := mapping.ToModelTransferRequest(request)
	cmdTag, err = tx.Exec(ctx, `
		UPDATE coordination_transfer_requests
		SET status = $2
		WHERE request_id = $1 AND status = 'PENDING';
	`, q.RequestID, q.Status)
	if err != nil {
		return fmt.Errorf("failed to accept transfer request %s: %w", q.RequestID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transfer request %s is not pending", apperrors.ErrInvalidStateTransition, q.RequestID)
	}

	return r.Commit(ctx, tx)
}
