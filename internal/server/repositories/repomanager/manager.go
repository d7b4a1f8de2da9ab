package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/eduauth/internal/dbx"
	"github.com/dmitrijs2005/eduauth/internal/server/repositories/accounts"
)

// RepositoryManager vends repositories bound to a DBTX, so the same
// repository code runs against either the pooled connection or a
// transaction, and exposes a schema migration hook.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
}
