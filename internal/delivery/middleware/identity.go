package middleware

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"houses/config"
	deliverycontext "houses/internal/delivery/context"
	"houses/internal/domain/service"
	"houses/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// IdentityMiddleware resolves the caller identity once per request. It never
// rejects a request: missing or invalid tokens leave the request anonymous and
// each operation decides whether that is acceptable.
type IdentityMiddleware struct {
	verifier      service.IdentityVerifier
	cookieName    string
	verifyTimeout time.Duration
	logger        *slog.Logger
}

// NewIdentityMiddleware is the constructor for IdentityMiddleware.
func NewIdentityMiddleware(verifier service.IdentityVerifier, cfg *config.Config, logger *slog.Logger) *IdentityMiddleware {
	return &IdentityMiddleware{
		verifier:      verifier,
		cookieName:    cfg.Auth.CookieName,
		verifyTimeout: cfg.Auth.VerifyTimeout,
		logger:        logger,
	}
}

// Resolve stores a usecase.RequestContext on the echo context.
func (m *IdentityMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		deliverycontext.SetRequestContext(c, m.resolve(c))

		return next(c)
	}
}

func (m *IdentityMiddleware) resolve(c echo.Context) usecase.RequestContext {
	token := m.extractToken(c)
	if token == "" {
		return usecase.RequestContext{}
	}

	ctx := c.Request().Context()
	if m.verifyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.verifyTimeout)
		defer cancel()
	}

	uid, err := m.verifier.VerifyToken(ctx, token)
	if err != nil {
		// The token itself is a credential and is never logged.
		deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Session token rejected",
			slog.Any("error", err),
		)

		return usecase.RequestContext{}
	}

	return usecase.NewRequestContext(uid)
}

// extractToken prefers the session cookie and falls back to a bearer header.
func (m *IdentityMiddleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(authHeader, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	}

	return ""
}
