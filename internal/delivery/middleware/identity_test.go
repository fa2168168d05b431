package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"houses/config"
	deliverycontext "houses/internal/delivery/context"
	mockService "houses/internal/mocks/service"
	"houses/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func identityConfig() *config.Config {
	return &config.Config{Auth: &config.AuthConfig{CookieName: "token", VerifyTimeout: time.Second}}
}

// runIdentity executes the middleware and returns the identity the handler saw.
func runIdentity(t *testing.T, m *IdentityMiddleware, req *http.Request) usecase.RequestContext {
	t.Helper()

	e := echo.New()
	c := e.NewContext(req, httptest.NewRecorder())

	var seen usecase.RequestContext
	err := m.Resolve(func(c echo.Context) error {
		seen = deliverycontext.GetRequestContext(c)

		return nil
	})(c)
	require.NoError(t, err)

	return seen
}

func TestIdentityMiddleware_NoToken(t *testing.T) {
	verifier := mockService.NewMockIdentityVerifier(t)
	m := NewIdentityMiddleware(verifier, identityConfig(), discardLogger())

	rc := runIdentity(t, m, httptest.NewRequest(http.MethodPost, "/api/operations", nil))
	assert.False(t, rc.Authenticated())
	verifier.AssertNotCalled(t, "VerifyToken", mock.Anything, mock.Anything)
}

func TestIdentityMiddleware_Cookie(t *testing.T) {
	verifier := mockService.NewMockIdentityVerifier(t)
	m := NewIdentityMiddleware(verifier, identityConfig(), discardLogger())

	verifier.EXPECT().VerifyToken(mock.Anything, "cookie-token").Return("user-1", nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/operations", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "cookie-token"})
	req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")

	rc := runIdentity(t, m, req)
	require.True(t, rc.Authenticated())
	assert.Equal(t, "user-1", rc.UserID())
}

func TestIdentityMiddleware_BearerFallback(t *testing.T) {
	verifier := mockService.NewMockIdentityVerifier(t)
	m := NewIdentityMiddleware(verifier, identityConfig(), discardLogger())

	verifier.EXPECT().VerifyToken(mock.Anything, "header-token").Return("user-2", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/operations", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")

	rc := runIdentity(t, m, req)
	assert.Equal(t, "user-2", rc.UserID())
}

func TestIdentityMiddleware_NonBearerHeaderIgnored(t *testing.T) {
	verifier := mockService.NewMockIdentityVerifier(t)
	m := NewIdentityMiddleware(verifier, identityConfig(), discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/operations", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")

	rc := runIdentity(t, m, req)
	assert.False(t, rc.Authenticated())
}

func TestIdentityMiddleware_InvalidTokenIsAnonymous(t *testing.T) {
	verifier := mockService.NewMockIdentityVerifier(t)
	m := NewIdentityMiddleware(verifier, identityConfig(), discardLogger())

	verifier.EXPECT().VerifyToken(mock.Anything, "expired").Return("", errors.New("token has expired"))

	req := httptest.NewRequest(http.MethodPost, "/api/operations", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "expired"})

	rc := runIdentity(t, m, req)
	assert.False(t, rc.Authenticated())
	assert.Nil(t, rc.UID)
}
