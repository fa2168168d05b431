package service

import (
	"context"
)

// IdentityVerifier verifies an opaque session token issued by the identity provider.
type IdentityVerifier interface {
	// VerifyToken returns the verified subject identifier.
	// Any failure (malformed, expired, bad signature, provider unreachable) is an error;
	// callers decide how much of it to surface.
	VerifyToken(ctx context.Context, token string) (string, error)
}
