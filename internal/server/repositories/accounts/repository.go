package accounts

import (
	"context"

	"github.com/dmitrijs2005/eduauth/internal/server/models"
)

// Repository stores credential accounts keyed by (identifier lookup digest,
// role).
//
// Find returns common.ErrorNotFound when no account matches. Create returns
// common.ErrorAlreadyExists when the (lookup, role) pair is already taken;
// the store enforces this with a uniqueness constraint, so two concurrent
// registrations cannot both succeed.
type Repository interface {
	Find(ctx context.Context, lookup string, role models.Role) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
}
