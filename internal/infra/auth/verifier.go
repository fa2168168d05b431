package auth

import (
	"context"
	"log/slog"

	"houses/config"
	"houses/internal/domain/lifecycle"
	"houses/internal/domain/service"

	"github.com/pkg/errors"
)

// NewIdentityVerifier selects the verifier named by auth.provider.
func NewIdentityVerifier(cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	switch cfg.Auth.Provider {
	case config.AuthProviderJWT:
		logger.Info("Using shared-secret JWT identity verifier")

		return NewJWTVerifier(cfg.Auth.JWTSecret)
	case config.AuthProviderFirebase:
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		logger.Info("Using Firebase identity verifier")

		return NewFirebaseVerifier(ctx, cfg.Firebase)
	default:
		return nil, errors.Errorf("unsupported auth provider: %s", cfg.Auth.Provider)
	}
}
