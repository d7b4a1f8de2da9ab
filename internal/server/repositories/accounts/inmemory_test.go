package accounts

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/eduauth/internal/common"
	"github.com/dmitrijs2005/eduauth/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(role models.Role) *models.Account {
	return &models.Account{
		IdentifierLookup: "digest-1",
		IdentifierHash:   "id-hash",
		SecretHash:       "secret-hash",
		Role:             role,
	}
}

func TestInMemory_CreateAndFind(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newAccount(models.RoleStudent))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := repo.Find(ctx, "digest-1", models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestInMemory_DuplicateRejected(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newAccount(models.RoleStudent))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newAccount(models.RoleStudent))
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestInMemory_SameLookupDifferentRole(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newAccount(models.RoleStudent))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newAccount(models.RoleTeacher))
	require.NoError(t, err, "role is part of account identity")
}

func TestInMemory_FindAbsent(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := repo.Find(context.Background(), "digest-404", models.RoleStudent)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
