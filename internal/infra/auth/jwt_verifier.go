// Package auth provides concrete implementations of the identity verifier.
package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"houses/internal/domain/service"
)

// jwtVerifier validates HS256 session tokens signed with a shared secret.
// It stands in for Firebase in local development and integration tests.
type jwtVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(secret string) (service.IdentityVerifier, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}, nil
}

// VerifyToken returns the token subject. Expired tokens and tokens without a
// subject are rejected.
func (v *jwtVerifier) VerifyToken(_ context.Context, tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := v.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return "", errors.Wrap(err, "invalid session token")
	}

	if claims.Subject == "" {
		return "", errors.New("session token has no subject")
	}

	return claims.Subject, nil
}
