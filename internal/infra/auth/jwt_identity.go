// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"pushsvc/config"
	"pushsvc/internal/domain/service"
)

var (
	// ErrMissingSubject is returned when a valid token carries no subject claim.
	ErrMissingSubject = errors.New("token has no subject")
)

// jwtIdentityProvider verifies HS256 access tokens issued by the platform's identity provider.
type jwtIdentityProvider struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTIdentityProvider is the constructor for jwtIdentityProvider.
// Expiry is always required; the audience is checked only when configured.
func NewJWTIdentityProvider(cfg *config.Config) (service.IdentityProvider, error) {
	if cfg.Identity.JWTSecret == "" {
		return nil, errors.New("identity jwt secret must be provided")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Identity.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Identity.Audience))
	}

	return &jwtIdentityProvider{
		secret: []byte(cfg.Identity.JWTSecret),
		parser: jwt.NewParser(opts...),
	}, nil
}

// VerifyToken validates the signature and claims and returns the subject.
func (p *jwtIdentityProvider) VerifyToken(_ context.Context, tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := p.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return p.secret, nil
	})
	if err != nil {
		return "", err
	}

	if claims.Subject == "" {
		return "", ErrMissingSubject
	}

	return claims.Subject, nil
}
