package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/eduauth/internal/common"
	"github.com/dmitrijs2005/eduauth/internal/dbx"
	"github.com/dmitrijs2005/eduauth/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the PostgreSQL error code for a violated unique
// constraint.
const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new account, assigning it an opaque id. A violated
// uniqueness constraint on (identifier_lookup, role) is reported as
// common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {

	account.ID = uuid.NewString()

	query :=
		`INSERT INTO accounts (id, identifier_lookup, identifier_hash, secret_hash, role)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		account.ID, account.IdentifierLookup, account.IdentifierHash,
		account.SecretHash, string(account.Role)).Scan(&account.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

// Find looks an account up by the deterministic identifier digest and role.
func (r *PostgresRepository) Find(ctx context.Context, lookup string, role models.Role) (*models.Account, error) {
	query :=
		`SELECT id, identifier_lookup, identifier_hash, secret_hash, role, created_at FROM accounts
		 WHERE identifier_lookup = $1 AND role = $2
		 `

	account := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, lookup, string(role)).Scan(
		&account.ID, &account.IdentifierLookup, &account.IdentifierHash,
		&account.SecretHash, &account.Role, &account.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}
