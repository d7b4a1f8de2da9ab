// Package token holds the token-issuance collaborator invoked by the HTTP
// layer after a successful login. The account service itself never mints
// tokens; deployments plug in an Issuer of their choice.
package token

import (
	"github.com/dmitrijs2005/eduauth/internal/server/models"
)

// Issuer mints an opaque session token for an authenticated account.
type Issuer interface {
	Issue(accountID string, role models.Role) (string, error)
}

// PlaceholderIssuer returns a fixed placeholder instead of a real token.
// It keeps deployments honest: anything that reaches production with this
// issuer visibly has no session layer.
type PlaceholderIssuer struct{}

func (PlaceholderIssuer) Issue(accountID string, role models.Role) (string, error) {
	return "token-pending-issuer", nil
}
