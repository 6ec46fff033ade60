package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planwerk/planwerk_app/internal/apperrors"
	"github.com/planwerk/planwerk_app/internal/core/domain"
	portsrepo "github.com/planwerk/planwerk_app/internal/core/ports/repositories"
	"github.com/planwerk/planwerk_app/internal/models"
	"github.com/planwerk/planwerk_app/internal/utils/mapping"
)

type PgxPlanRepository struct {
	BaseRepository
}

// newPgxPlanRepository creates a new repository for drafts and plans.
func newPgxPlanRepository(pool *pgxpool.Pool) portsrepo.PlanRepositoryFacade {
	return &PgxPlanRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PlanRepositoryFacade = (*PgxPlanRepository)(nil)

const draftColumns = `draft_id, planner_id, costs_means, costs_raw, costs_labour,
	product_name, description, product_unit, amount, timeframe_days, is_public_service, creation_date`

const planColumns = `plan_id, planner_id, costs_means, costs_raw, costs_labour,
	product_name, description, product_unit, amount, timeframe_days, is_public_service,
	creation_date, filing_date, approval_date, rejection_date, activation_date, expiration_date,
	cooperation_id, requested_cooperation_id, price_per_unit, hidden_by_user`

func scanDraft(row pgx.Row) (*models.PlanDraft, error) {
	var m models.PlanDraft
	err := row.Scan(&m.DraftID, &m.PlannerID, &m.CostsMeans, &m.CostsRaw, &m.CostsLabour,
		&m.ProductName, &m.Description, &m.ProductUnit, &m.Amount, &m.TimeframeDays,
		&m.IsPublicService, &m.CreationDate)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanPlan(row pgx.Row) (*models.Plan, error) {
	var m models.Plan
	err := row.Scan(&m.PlanID, &m.PlannerID, &m.CostsMeans, &m.CostsRaw, &m.CostsLabour,
		&m.ProductName, &m.Description, &m.ProductUnit, &m.Amount, &m.TimeframeDays,
		&m.IsPublicService, &m.CreationDate, &m.FilingDate, &m.ApprovalDate, &m.RejectionDate,
		&m.ActivationDate, &m.ExpirationDate, &m.CooperationID, &m.RequestedCooperationID,
		&m.PricePerUnit, &m.HiddenByUser)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxPlanRepository) queryPlans(ctx context.Context, query string, args ...any) ([]domain.Plan, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query plans: %w", err)
	}
	defer rows.Close()

	plans := []domain.Plan{}
	for rows.Next() {
		m, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan row: %w", err)
		}
		plans = append(plans, mapping.ToDomainPlan(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plan rows: %w", err)
	}
	return plans, nil
}

// SaveDraft persists a new draft.
func (r *PgxPlanRepository) SaveDraft(ctx context.Context, draft domain.PlanDraft) error {
	m := mapping.ToModelPlanDraft(draft)
	query := `
		INSERT INTO plan_drafts (` + draftColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DraftID, m.PlannerID, m.CostsMeans, m.CostsRaw, m.CostsLabour,
		m.ProductName, m.Description, m.ProductUnit, m.Amount, m.TimeframeDays,
		m.IsPublicService, m.CreationDate)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: draft with ID %s already exists", apperrors.ErrDuplicate, m.DraftID)
		}
		return fmt.Errorf("failed to save draft %s: %w", m.DraftID, err)
	}
	return nil
}

// FindDraftByID retrieves a draft by its ID.
func (r *PgxPlanRepository) FindDraftByID(ctx context.Context, draftID string) (*domain.PlanDraft, error) {
	query := `SELECT ` + draftColumns + ` FROM plan_drafts WHERE draft_id = $1;`
	m, err := scanDraft(r.Pool.QueryRow(ctx, query, draftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: draft %s", apperrors.ErrNotFound, draftID)
		}
		return nil, fmt.Errorf("failed to find draft by ID %s: %w", draftID, err)
	}
	d := mapping.ToDomainPlanDraft(*m)
	return &d, nil
}

// ListDraftsByCompany retrieves all drafts of a planning company.
func (r *PgxPlanRepository) ListDraftsByCompany(ctx context.Context, companyID string) ([]domain.PlanDraft, error) {
	query := `SELECT ` + draftColumns + ` FROM plan_drafts WHERE planner_id = $1 ORDER BY creation_date DESC;`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query drafts for company %s: %w", companyID, err)
	}
	defer rows.Close()

	drafts := []domain.PlanDraft{}
	for rows.Next() {
		m, err := scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan draft row: %w", err)
		}
		drafts = append(drafts, mapping.ToDomainPlanDraft(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating draft rows: %w", err)
	}
	return drafts, nil
}

// DeleteDraft removes a draft.
func (r *PgxPlanRepository) DeleteDraft(ctx context.Context, draftID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM plan_drafts WHERE draft_id = $1;`, draftID)
	if err != nil {
		return fmt.Errorf("failed to delete draft %s: %w", draftID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: draft %s", apperrors.ErrNotFound, draftID)
	}
	return nil
}

const insertPlanQuery = `
	INSERT INTO plans (plan_id, planner_id, costs_means, costs_raw, costs_labour,
		product_name, description, product_unit, amount, timeframe_days, is_public_service,
		creation_date, filing_date, approval_date, rejection_date, activation_date, expiration_date,
		cooperation_id, requested_cooperation_id, price_per_unit, hidden_by_user)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
`

// FilePlanFromDraft inserts the filed plan and deletes its source draft
// in one transaction, so a draft can be filed at most once.
func (r *PgxPlanRepository) FilePlanFromDraft(ctx context.Context, plan domain.Plan, draftID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelPlan(plan)
	_, err = tx.Exec(ctx, insertPlanQuery,
		m.PlanID, m.PlannerID, m.CostsMeans, m.CostsRaw, m.CostsLabour,
		m.ProductName, m.Description, m.ProductUnit, m.Amount, m.TimeframeDays, m.IsPublicService,
		m.CreationDate, m.FilingDate, m.ApprovalDate, m.RejectionDate, m.ActivationDate, m.ExpirationDate,
		m.CooperationID, m.RequestedCooperationID, m.PricePerUnit, m.HiddenByUser)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: plan with ID %s already exists", apperrors.ErrDuplicate, m.PlanID)
		}
		return fmt.Errorf("failed to insert plan %s: %w", m.PlanID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM plan_drafts WHERE draft_id = $1;`, draftID)
	if err != nil {
		return fmt.Errorf("failed to delete source draft %s: %w", draftID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// The draft was filed or deleted concurrently.
		return fmt.Errorf("%w: draft %s no longer exists", apperrors.ErrConflict, draftID)
	}

	return r.Commit(ctx, tx)
}

// FindPlanByID retrieves a plan by its ID.
func (r *PgxPlanRepository) FindPlanByID(ctx context.Context, planID string) (*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE plan_id = $1;`
	m, err := scanPlan(r.Pool.QueryRow(ctx, query, planID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: plan %s", apperrors.ErrNotFound, planID)
		}
		return nil, fmt.Errorf("failed to find plan by ID %s: %w", planID, err)
	}
	d := mapping.ToDomainPlan(*m)
	return &d, nil
}

// ListPlansByCompany retrieves all plans of a planning company. Hidden
// plans are filtered out unless includeHidden is set.
func (r *PgxPlanRepository) ListPlansByCompany(ctx context.Context, companyID string, includeHidden bool) ([]domain.Plan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM plans
		WHERE planner_id = $1 AND (hidden_by_user = FALSE OR $2)
		ORDER BY filing_date DESC;
	`
	return r.queryPlans(ctx, query, companyID, includeHidden)
}

// ListActivePlans retrieves all plans active at the given instant.
func (r *PgxPlanRepository) ListActivePlans(ctx context.Context, now time.Time) ([]domain.Plan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM plans
		WHERE rejection_date IS NULL
			AND activation_date IS NOT NULL AND activation_date <= $1
			AND expiration_date > $1
		ORDER BY activation_date DESC;
	`
	return r.queryPlans(ctx, query, now)
}

// ListPlansOfCooperation retrieves the member plans of a cooperation.
func (r *PgxPlanRepository) ListPlansOfCooperation(ctx context.Context, cooperationID string) ([]domain.Plan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM plans
		WHERE cooperation_id = $1
		ORDER BY plan_id;
	`
	return r.queryPlans(ctx, query, cooperationID)
}

// ListPlansAwaitingActivation retrieves approved plans whose activation
// was deferred.
func (r *PgxPlanRepository) ListPlansAwaitingActivation(ctx context.Context) ([]domain.Plan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM plans
		WHERE approval_date IS NOT NULL AND rejection_date IS NULL AND activation_date IS NULL
		ORDER BY approval_date;
	`
	return r.queryPlans(ctx, query)
}

// ListExpiredPlansToSettle retrieves expired plans still holding a
// cooperation membership or a pending cooperation request. Plans settled
// by an earlier pass carry neither and do not reappear.
func (r *PgxPlanRepository) ListExpiredPlansToSettle(ctx context.Context, now time.Time) ([]domain.Plan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM plans
		WHERE expiration_date IS NOT NULL AND expiration_date <= $1
			AND (cooperation_id IS NOT NULL OR requested_cooperation_id IS NOT NULL)
		ORDER BY expiration_date;
	`
	return r.queryPlans(ctx, query, now)
}

// ApprovePlan stamps the approval fields and appends the crediting
// transfers in one transaction. The update is guarded on the plan being
// unreviewed, so a concurrent approval or rejection fails cleanly.
func (r *PgxPlanRepository) ApprovePlan(ctx context.Context, plan domain.Plan, credits []domain.Transfer) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelPlan(plan)
	cmdTag, err := tx.Exec(ctx, `
		UPDATE plans
		SET approval_date = $2, activation_date = $3, expiration_date = $4, price_per_unit = $5
		WHERE plan_id = $1 AND approval_date IS NULL AND rejection_date IS NULL;
	`, m.PlanID, m.ApprovalDate, m.ActivationDate, m.ExpirationDate, m.PricePerUnit)
	if err != nil {
		return fmt.Errorf("failed to approve plan %s: %w", m.PlanID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: plan %s was already reviewed", apperrors.ErrInvalidStateTransition, m.PlanID)
	}

	batch := &pgx.Batch{}
	for _, credit := range credits {
		t := mapping.ToModelTransfer(credit)
		batch.Queue(insertTransferQuery,
			t.TransferID, t.Date, t.DebitAccountID, t.CreditAccountID, t.Value, t.Type)
	}
	if batch.Len() > 0 {
		br := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("failed to insert credit transfer for plan %s: %w", m.PlanID, err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to close credit transfer batch: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

// RejectPlan stamps the rejection date. Guarded like ApprovePlan.
func (r *PgxPlanRepository) RejectPlan(ctx context.Context, plan domain.Plan) error {
	m := mapping.ToModelPlan(plan)
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE plans
		SET rejection_date = $2
		WHERE plan_id = $1 AND approval_date IS NULL AND rejection_date IS NULL;
	`, m.PlanID, m.RejectionDate)
	if err != nil {
		return fmt.Errorf("failed to reject plan %s: %w", m.PlanID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: plan %s was already reviewed", apperrors.ErrInvalidStateTransition, m.PlanID)
	}
	return nil
}

// UpdatePlanSchedule persists activation and expiration dates.
func (r *PgxPlanRepository) UpdatePlanSchedule(ctx context.Context, plan domain.Plan) error {
	m := mapping.ToModelPlan(plan)
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE plans
		SET activation_date = $2, expiration_date = $3
		WHERE plan_id = $1;
	`, m.PlanID, m.ActivationDate, m.ExpirationDate)
	if err != nil {
		return fmt.Errorf("failed to update schedule for plan %s: %w", m.PlanID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: plan %s", apperrors.ErrNotFound, m.PlanID)
	}
	return nil
}

// UpdatePlan persists the mutable plan fields: cooperation linkage, price
// and the hidden flag.
func (r *PgxPlanRepository) UpdatePlan(ctx context.Context, plan domain.Plan) error {
	m := mapping.ToModelPlan(plan)
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE plans
		SET cooperation_id = $2, requested_cooperation_id = $3, price_per_unit = $4, hidden_by_user = $5
		WHERE plan_id = $1;
	`, m.PlanID, m.CooperationID, m.RequestedCooperationID, m.PricePerUnit, m.HiddenByUser)
	if err != nil {
		return fmt.Errorf("failed to update plan %s: %w", m.PlanID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: plan %s", apperrors.ErrNotFound, m.PlanID)
	}
	return nil
}
