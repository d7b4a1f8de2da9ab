package token

import (
	"time"

	"github.com/dmitrijs2005/eduauth/internal/common"
	"github.com/dmitrijs2005/eduauth/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the standard claims plus the account id and role.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string
	Role      string
}

// JWTIssuer mints HS256-signed tokens with a fixed validity.
type JWTIssuer struct {
	secretKey        []byte
	validityDuration time.Duration
}

func NewJWTIssuer(secretKey []byte, validityDuration time.Duration) *JWTIssuer {
	return &JWTIssuer{secretKey: secretKey, validityDuration: validityDuration}
}

func (i *JWTIssuer) Issue(accountID string, role models.Role) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.validityDuration)),
		},
		AccountID: accountID,
		Role:      string(role),
	})

	tokenString, err := t.SignedString(i.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// AccountIDFromToken validates tokenString and extracts the account id.
func AccountIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !t.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.AccountID, nil
}
