package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/casedrop/casedrop/internal/database/postgres"
	"github.com/casedrop/casedrop/internal/repository"
)

// Repositories groups all persistence implementations handed to the
// service layer.
type Repositories struct {
	User    repository.User
	Catalog repository.Catalog
	Ledger  repository.Ledger
	Opening repository.Opening
}

// InitializeRepositories constructs the postgres-backed repositories
// over a shared connection pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:    postgres.NewUserRepository(dbPool),
		Catalog: postgres.NewCatalogRepository(dbPool),
		Ledger:  postgres.NewLedgerRepository(dbPool),
		Opening: postgres.NewOpeningRepository(dbPool),
	}
}
