package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/eduauth/internal/dbx"
	"github.com/dmitrijs2005/eduauth/internal/server/repositories/accounts"
)

// InMemoryRepositoryManager backs the repositories with process memory.
// The DBTX handle is ignored; the in-memory store is atomic on its own.
type InMemoryRepositoryManager struct {
	accounts accounts.Repository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{accounts: accounts.NewInMemoryRepository()}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return m.accounts
}
