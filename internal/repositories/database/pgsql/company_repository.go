package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planwerk/planwerk_app/internal/apperrors"
	"github.com/planwerk/planwerk_app/internal/core/domain"
	portsrepo "github.com/planwerk/planwerk_app/internal/core/ports/repositories"
	"github.com/planwerk/planwerk_app/internal/models"
	"github.com/planwerk/planwerk_app/internal/utils/mapping"
)

// socialAccountingID is the fixed id of the singleton accounting
// authority row. It lands in UUID-typed columns (social_accounting.id,
// accounts.owner_id), so it must parse as one.
const socialAccountingID = "00000000-0000-0000-0000-000000000001"

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for companies, members
// and the accounting authority.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

const companyColumns = `company_id, name, means_account_id, resources_account_id, labour_account_id, product_account_id, registered_on`

func scanCompany(row pgx.Row) (*models.Company, error) {
	var m models.Company
	err := row.Scan(&m.CompanyID, &m.Name, &m.MeansAccountID, &m.ResourcesAccountID,
		&m.LabourAccountID, &m.ProductAccountID, &m.RegisteredOn)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveCompany inserts the company and its four accounts in one
// transaction.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company, accounts []domain.Account) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	for _, account := range accounts {
		a := mapping.ToModelAccount(account)
		if _, err := tx.Exec(ctx, insertAccountQuery, a.AccountID, a.Kind, a.OwnerID, a.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert company account %s: %w", a.AccountID, err)
		}
	}

	c := mapping.ToModelCompany(company)
	_, err = tx.Exec(ctx, `
		INSERT INTO companies (`+companyColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`, c.CompanyID, c.Name, c.MeansAccountID, c.ResourcesAccountID, c.LabourAccountID, c.ProductAccountID, c.RegisteredOn)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: company %s already exists", apperrors.ErrDuplicate, c.CompanyID)
		}
		return fmt.Errorf("failed to insert company %s: %w", c.CompanyID, err)
	}

	return r.Commit(ctx, tx)
}

// SaveMember inserts the member and its account in one transaction.
func (r *PgxCompanyRepository) SaveMember(ctx context.Context, member domain.Member, account domain.Account) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	a := mapping.ToModelAccount(account)
	if _, err := tx.Exec(ctx, insertAccountQuery, a.AccountID, a.Kind, a.OwnerID, a.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert member account %s: %w", a.AccountID, err)
	}

	m := mapping.ToModelMember(member)
	_, err = tx.Exec(ctx, `
		INSERT INTO members (member_id, name, account_id, registered_on)
		VALUES ($1, $2, $3, $4);
	`, m.MemberID, m.Name, m.AccountID, m.RegisteredOn)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: member %s already exists", apperrors.ErrDuplicate, m.MemberID)
		}
		return fmt.Errorf("failed to insert member %s: %w", m.MemberID, err)
	}

	return r.Commit(ctx, tx)
}

// FindCompanyByID retrieves a company by its ID.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_id = $1;`
	m, err := scanCompany(r.Pool.QueryRow(ctx, query, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: company %s", apperrors.ErrNotFound, companyID)
		}
		return nil, fmt.Errorf("failed to find company by ID %s: %w", companyID, err)
	}
	d := mapping.ToDomainCompany(*m)
	return &d, nil
}

// FindCompaniesByIDs retrieves multiple companies keyed by id.
func (r *PgxCompanyRepository) FindCompaniesByIDs(ctx context.Context, companyIDs []string) (map[string]domain.Company, error) {
	if len(companyIDs) == 0 {
		return map[string]domain.Company{}, nil
	}

	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, companyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies by IDs: %w", err)
	}
	defer rows.Close()

	companies := make(map[string]domain.Company)
	for rows.Next() {
		m, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company row during batch fetch: %w", err)
		}
		companies[m.CompanyID] = mapping.ToDomainCompany(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company rows during batch fetch: %w", err)
	}
	return companies, nil
}

// FindMemberByID retrieves a member by its ID.
func (r *PgxCompanyRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	query := `SELECT member_id, name, account_id, registered_on FROM members WHERE member_id = $1;`
	var m models.Member
	err := r.Pool.QueryRow(ctx, query, memberID).Scan(&m.MemberID, &m.Name, &m.AccountID, &m.RegisteredOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: member %s", apperrors.ErrNotFound, memberID)
		}
		return nil, fmt.Errorf("failed to find member by ID %s: %w", memberID, err)
	}
	d := mapping.ToDomainMember(m)
	return &d, nil
}

// IsWorkerAt reports whether the member works at the company.
func (r *PgxCompanyRepository) IsWorkerAt(ctx context.Context, memberID, companyID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM company_workers WHERE member_id = $1 AND company_id = $2);
	`, memberID, companyID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employment of member %s at company %s: %w", memberID, companyID, err)
	}
	return exists, nil
}

// AddWorker records the employment relation. Re-adding an existing worker
// is a no-op.
func (r *PgxCompanyRepository) AddWorker(ctx context.Context, companyID, memberID string) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO company_workers (company_id, member_id)
		VALUES ($1, $2)
		ON CONFLICT (company_id, member_id) DO NOTHING;
	`, companyID, memberID)
	if err != nil {
		return fmt.Errorf("failed to add worker %s to company %s: %w", memberID, companyID, err)
	}
	return nil
}

// SocialAccounting retrieves the accounting authority singleton.
func (r *PgxCompanyRepository) SocialAccounting(ctx context.Context) (*domain.SocialAccounting, error) {
	var m models.SocialAccounting
	err := r.Pool.QueryRow(ctx, `
		SELECT id, account_id, psf_account_id FROM social_accounting WHERE id = $1;
	`, socialAccountingID).Scan(&m.ID, &m.AccountID, &m.PSFAccountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: social accounting not seeded", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find social accounting: %w", err)
	}
	d := mapping.ToDomainSocialAccounting(m)
	return &d, nil
}

// EnsureSocialAccounting creates the singleton and its two accounts when
// absent. A concurrent creator wins through the primary key; the loser
// re-reads the row.
func (r *PgxCompanyRepository) EnsureSocialAccounting(ctx context.Context, now time.Time) (*domain.SocialAccounting, error) {
	sa, err := r.SocialAccounting(ctx)
	if err == nil {
		return sa, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	accountID := uuid.NewString()
	psfAccountID := uuid.NewString()

	accounts := []models.Account{
		{AccountID: accountID, Kind: string(domain.KindSocial), OwnerID: socialAccountingID, CreatedAt: now},
		{AccountID: psfAccountID, Kind: string(domain.KindSocial), OwnerID: socialAccountingID, CreatedAt: now},
	}
	for _, a := range accounts {
		if _, err := tx.Exec(ctx, insertAccountQuery, a.AccountID, a.Kind, a.OwnerID, a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to insert social accounting account %s: %w", a.AccountID, err)
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO social_accounting (id, account_id, psf_account_id)
		VALUES ($1, $2, $3);
	`, socialAccountingID, accountID, psfAccountID)
	if err != nil {
		if isUniqueViolation(err) {
			// Lost the race; the other creator's row is authoritative.
			if rbErr := r.Rollback(ctx, tx); rbErr != nil {
				return nil, rbErr
			}
			return r.SocialAccounting(ctx)
		}
		return nil, fmt.Errorf("failed to insert social accounting: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &domain.SocialAccounting{
		ID:           socialAccountingID,
		AccountID:    accountID,
		PSFAccountID: psfAccountID,
	}, nil
}
