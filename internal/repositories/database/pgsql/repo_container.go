package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/planwerk/planwerk_app/internal/core/ports/repositories"
)

// NewRepositoryProvider assembles all Postgres-backed repositories over
// one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      newPgxAccountRepository(dbPool),
		TransferRepo:     newPgxTransferRepository(dbPool),
		PlanRepo:         newPgxPlanRepository(dbPool),
		CooperationRepo:  newPgxCooperationRepository(dbPool),
		CoordinationRepo: newPgxCoordinationRepository(dbPool),
		CompanyRepo:      newPgxCompanyRepository(dbPool),
	}
}
