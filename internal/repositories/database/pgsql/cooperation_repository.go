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

type PgxCooperationRepository struct {
	BaseRepository
}

// newPgxCooperationRepository creates a new repository for cooperations.
func newPgxCooperationRepository(pool *pgxpool.Pool) portsrepo.CooperationRepositoryFacade {
	return &PgxCooperationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CooperationRepositoryFacade = (*PgxCooperationRepository)(nil)

// memberPlanIDs loads the plan ids currently cooperating under the
// cooperation. Membership lives on the plans table.
func (r *PgxCooperationRepository) memberPlanIDs(ctx context.Context, cooperationID string) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT plan_id FROM plans WHERE cooperation_id = $1 ORDER BY plan_id;`, cooperationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query member plans of cooperation %s: %w", cooperationID, err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan member plan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member plan ids: %w", err)
	}
	return ids, nil
}

// FindCooperationByID retrieves a cooperation including its member plan ids.
func (r *PgxCooperationRepository) FindCooperationByID(ctx context.Context, cooperationID string) (*domain.Cooperation, error) {
	query := `
		SELECT cooperation_id, name, definition, account_id, creation_date
		FROM cooperations
		WHERE cooperation_id = $1;
	`
	var m models.Cooperation
	err := r.Pool.QueryRow(ctx, query, cooperationID).Scan(
		&m.CooperationID, &m.Name, &m.Definition, &m.AccountID, &m.CreationDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: cooperation %s", apperrors.ErrNotFound, cooperationID)
		}
		return nil, fmt.Errorf("failed to find cooperation by ID %s: %w", cooperationID, err)
	}

	memberIDs, err := r.memberPlanIDs(ctx, cooperationID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainCooperation(m, memberIDs)
	return &d, nil
}

// ListCooperations retrieves all cooperations with their member plan ids.
func (r *PgxCooperationRepository) ListCooperations(ctx context.Context) ([]domain.Cooperation, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT cooperation_id, name, definition, account_id, creation_date
		FROM cooperations
		ORDER BY name;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cooperations: %w", err)
	}
	defer rows.Close()

	modelRows := []models.Cooperation{}
	for rows.Next() {
		var m models.Cooperation
		if err := rows.Scan(&m.CooperationID, &m.Name, &m.Definition, &m.AccountID, &m.CreationDate); err != nil {
			return nil, fmt.Errorf("failed to scan cooperation row: %w", err)
		}
		modelRows = append(modelRows, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cooperation rows: %w", err)
	}

	coops := make([]domain.Cooperation, 0, len(modelRows))
	for _, m := range modelRows {
		memberIDs, err := r.memberPlanIDs(ctx, m.CooperationID)
		if err != nil {
			return nil, err
		}
		coops = append(coops, mapping.ToDomainCooperation(m, memberIDs))
	}
	return coops, nil
}

// SaveCooperation inserts the cooperation, its ledger account and the
// founding tenure in one transaction.
func (r *PgxCooperationRepository) SaveCooperation(ctx context.Context, cooperation domain.Cooperation, account domain.Account, tenure domain.CoordinationTenure) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	a := mapping.ToModelAccount(account)
	if _, err := tx.Exec(ctx, insertAccountQuery, a.AccountID, a.Kind, a.OwnerID, a.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert cooperation account %s: %w", a.AccountID, err)
	}

	c := mapping.ToModelCooperation(cooperation)
	_, err = tx.Exec(ctx, `
		INSERT INTO cooperations (cooperation_id, name, definition, account_id, creation_date)
		VALUES ($1, $2, $3, $4, $5);
	`, c.CooperationID, c.Name, c.Definition, c.AccountID, c.CreationDate)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: cooperation %s already exists", apperrors.ErrDuplicate, c.CooperationID)
		}
		return fmt.Errorf("failed to insert cooperation %s: %w", c.CooperationID, err)
	}

	t := mapping.ToModelTenure(tenure)
	_, err = tx.Exec(ctx, insertTenureQuery,
		t.TenureID, t.CooperationID, t.CoordinatorID, t.StartDate, t.EndDate)
	if err != nil {
		return fmt.Errorf("failed to insert founding tenure %s: %w", t.TenureID, err)
	}

	return r.Commit(ctx, tx)
}

// memberPlansForUpdate re-reads the cooperation's member plans inside
// the transaction, after the cooperation row lock has been taken.
func (r *PgxCooperationRepository) memberPlansForUpdate(ctx context.Context, tx pgx.Tx, cooperationID string) ([]domain.Plan, error) {
	rows, err := tx.Query(ctx, `
		SELECT `+planColumns+`
		FROM plans
		WHERE cooperation_id = $1
		ORDER BY plan_id;
	`, cooperationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query member plans of cooperation %s: %w", cooperationID, err)
	}
	defer rows.Close()

	plans := []domain.Plan{}
	for rows.Next() {
		m, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member plan row: %w", err)
		}
		plans = append(plans, mapping.ToDomainPlan(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member plan rows: %w", err)
	}
	return plans, nil
}

// CommitMembershipChange applies one membership change atomically: the
// cooperation row is locked, the member plans are re-read under that
// lock and repriced, and the updated plans and compensation transfers
// are written in the same transaction. Concurrent changes to the same
// cooperation serialize on the row lock, so every change prices against
// the membership it actually commits with.
func (r *PgxCooperationRepository) CommitMembershipChange(ctx context.Context, cooperationID string, reprice portsrepo.RepriceFunc) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var locked string
	err = tx.QueryRow(ctx, `SELECT cooperation_id FROM cooperations WHERE cooperation_id = $1 FOR UPDATE;`, cooperationID).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: cooperation %s", apperrors.ErrNotFound, cooperationID)
		}
		return fmt.Errorf("failed to lock cooperation %s: %w", cooperationID, err)
	}

	members, err := r.memberPlansForUpdate(ctx, tx, cooperationID)
	if err != nil {
		return err
	}
	plans, transfers, err := reprice(ctx, members)
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	planQuery := `
		UPDATE plans
		SET cooperation_id = $2, requested_cooperation_id = $3, price_per_unit = $4
		WHERE plan_id = $1;
	`
	for _, plan := range plans {
		m := mapping.ToModelPlan(plan)
		batch.Queue(planQuery, m.PlanID, m.CooperationID, m.RequestedCooperationID, m.PricePerUnit)
	}
	for _, transfer := range transfers {
		t := mapping.ToModelTransfer(transfer)
		batch.Queue(insertTransferQuery,
			t.TransferID, t.Date, t.DebitAccountID, t.CreditAccountID, t.Value, t.Type)
	}

	if batch.Len() > 0 {
		br := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("failed to apply membership change for cooperation %s: %w", cooperationID, err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to close membership change batch: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}
