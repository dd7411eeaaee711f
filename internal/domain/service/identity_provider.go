package service

import "context"

// IdentityProvider resolves a bearer credential to the acting user.
type IdentityProvider interface {
	// VerifyToken validates the token and returns the user ID it was issued to.
	VerifyToken(ctx context.Context, token string) (string, error)
}
