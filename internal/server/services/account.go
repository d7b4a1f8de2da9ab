// Package services contains server-side business logic. This file implements
// AccountService, which handles credential registration and the dual-hash
// login check.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/eduauth/internal/common"
	"github.com/dmitrijs2005/eduauth/internal/dbx"
	"github.com/dmitrijs2005/eduauth/internal/hashing"
	"github.com/dmitrijs2005/eduauth/internal/server/models"
	"github.com/dmitrijs2005/eduauth/internal/server/repositories/repomanager"
)

// AuthResult is what a successful login yields: the account's opaque id and
// role, nothing else. Hashes and the plaintext identifier never leave the
// service.
type AuthResult struct {
	AccountID string
	Role      models.Role
}

// AccountService provides the two credential workflows:
//   - Register: uniqueness check, independent hashing of identifier and
//     secret, persistence
//   - Authenticate: lookup by deterministic digest plus role, then double
//     verification of identifier and secret against the stored hashes
type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *hashing.Hasher
	lookup      *hashing.LookupKey
}

// NewAccountService constructs an AccountService over the given store handle
// and hashing primitives. db may be nil when the repository manager is
// memory-backed.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, hasher *hashing.Hasher, lookup *hashing.LookupKey) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		lookup:      lookup,
	}
}

// inTx runs fn inside a database transaction when a connection is present.
// Memory-backed repositories enforce uniqueness atomically themselves, so
// fn runs directly in that case.
func (s *AccountService) inTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	if s.db == nil {
		return fn(ctx, nil)
	}
	return dbx.WithTx(ctx, s.db, nil, fn)
}

// Register creates a new account for (identifier, role).
//
// The identifier and the secret are hashed independently, each with its own
// random salt. The duplicate check and the insert run in one transaction;
// the store's uniqueness constraint backs the check, so a concurrent
// duplicate surfaces as common.ErrorAlreadyExists either way.
func (s *AccountService) Register(ctx context.Context, identifier, secret, role string) (*models.Account, error) {

	parsedRole, err := s.validate(identifier, secret, role)
	if err != nil {
		return nil, err
	}

	identifierHash, err := s.hasher.Hash(identifier)
	if err != nil {
		return nil, fmt.Errorf("error hashing identifier: %w", err)
	}
	secretHash, err := s.hasher.Hash(secret)
	if err != nil {
		return nil, fmt.Errorf("error hashing secret: %w", err)
	}

	account := &models.Account{
		IdentifierLookup: s.lookup.Digest(identifier),
		IdentifierHash:   identifierHash,
		SecretHash:       secretHash,
		Role:             parsedRole,
	}

	if err := s.inTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		_, err := repo.Find(ctx, account.IdentifierLookup, account.Role)
		if err == nil {
			return common.ErrorAlreadyExists
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error searching account: %w", err)
		}

		if _, err := repo.Create(ctx, account); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return common.ErrorAlreadyExists
			}
			return fmt.Errorf("error creating account: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return account, nil
}

// Authenticate verifies (identifier, secret, role) against the stored
// hashes and returns the account's id and role on success.
//
// Every credential-dependent failure — unknown identifier, wrong role,
// wrong secret, malformed stored hash — yields the same
// common.ErrorUnauthorized, so a caller cannot probe which part failed or
// whether the identifier is registered at all.
func (s *AccountService) Authenticate(ctx context.Context, identifier, secret, role string) (*AuthResult, error) {

	parsedRole, err := s.validate(identifier, secret, role)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Accounts(s.db)
	account, err := repo.Find(ctx, s.lookup.Digest(identifier), parsedRole)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("%w: error searching account: %v", common.ErrorInternal, err)
	}

	// Both comparisons run regardless of the first one's outcome.
	identifierOK := s.hasher.Verify(identifier, account.IdentifierHash)
	secretOK := s.hasher.Verify(secret, account.SecretHash)

	if !identifierOK || !secretOK {
		return nil, common.ErrorUnauthorized
	}

	return &AuthResult{AccountID: account.ID, Role: account.Role}, nil
}

// validate checks the three caller inputs before any store or hashing work
// happens.
func (s *AccountService) validate(identifier, secret, role string) (models.Role, error) {
	if identifier == "" || secret == "" || role == "" {
		return "", fmt.Errorf("all fields are required: %w", common.ErrorValidation)
	}
	parsedRole, err := models.ParseRole(role)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, common.ErrorValidation)
	}
	return parsedRole, nil
}
