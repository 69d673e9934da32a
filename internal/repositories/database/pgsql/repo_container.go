package pgsql

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/sgcontabil/sgc_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository against the shared
// connection pool. The pool is injected; nothing here holds global state.
func NewRepositoryProvider(dbPool *pgxpool.Pool, queryTimeout time.Duration) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newPgxAccountRepository(dbPool, queryTimeout),
		EntryRepo:   newPgxEntryRepository(dbPool, queryTimeout),
		UserRepo:    newPgxUserRepository(dbPool, queryTimeout),
	}
}
