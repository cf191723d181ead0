package service

import (
	"time"

	"dispatch/internal/domain/entity"
)

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed access token for the principal.
	Issue(principal *entity.Principal) (token string, expiresAt time.Time, err error)

	// Parse validates a token and returns the principal it was issued for.
	Parse(token string) (*entity.Principal, error)
}
