package accounts

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/eduauth/internal/common"
	"github.com/dmitrijs2005/eduauth/internal/server/models"
	"github.com/google/uuid"
)

// InMemoryRepository is a map-backed Repository used in tests and by the
// service wiring when no database is configured. It enforces the same
// (lookup, role) uniqueness rule as the Postgres schema.
type InMemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{accounts: make(map[string]*models.Account)}
}

func key(lookup string, role models.Role) string {
	return lookup + "/" + string(role)
}

func (r *InMemoryRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key(account.IdentifierLookup, account.Role)
	if _, ok := r.accounts[k]; ok {
		return nil, common.ErrorAlreadyExists
	}

	account.ID = uuid.NewString()
	account.CreatedAt = time.Now()

	stored := *account
	r.accounts[k] = &stored
	return account, nil
}

func (r *InMemoryRepository) Find(ctx context.Context, lookup string, role models.Role) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[key(lookup, role)]
	if !ok {
		return nil, common.ErrorNotFound
	}

	found := *account
	return &found, nil
}
