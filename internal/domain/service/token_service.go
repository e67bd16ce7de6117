package service

import (
	"time"

	"tutoria/internal/domain/entity"
)

// TokenTTL is the fixed lifetime of every issued bearer token.
const TokenTTL = 24 * time.Hour

// MinSecretLength is the minimum signing secret size in bytes.
const MinSecretLength = 32

// TokenService issues and verifies signed bearer tokens.
// Implementations hold an immutable key and are safe for concurrent use.
type TokenService interface {
	// Issue signs a token for the given account that expires TokenTTL after issuance.
	Issue(userID int64, email string) (*entity.IssuedToken, error)

	// Verify checks signature, algorithm and expiry and returns the identity carried by the token.
	Verify(tokenString string) (*entity.Identity, error)
}
