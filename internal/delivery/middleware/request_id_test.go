package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "houses/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, header string) (string, string, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var fromEcho, fromCtx string
	err := NewRequestIDMiddleware(discardLogger()).Process(func(c echo.Context) error {
		fromEcho = deliverycontext.GetRequestID(c)
		fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return nil
	})(c)
	require.NoError(t, err)

	return fromEcho, fromCtx, rec
}

func TestRequestIDMiddleware_UsesClientID(t *testing.T) {
	fromEcho, fromCtx, rec := runRequestID(t, "client-req-1")

	assert.Equal(t, "client-req-1", fromEcho)
	assert.Equal(t, "client-req-1", fromCtx)
	assert.Equal(t, "client-req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_GeneratesWhenMissingOrInvalid(t *testing.T) {
	for _, header := range []string{"", "has space", strings.Repeat("a", maxRequestIDLength+1)} {
		fromEcho, fromCtx, _ := runRequestID(t, header)

		_, err := uuid.Parse(fromEcho)
		assert.NoError(t, err)
		assert.Equal(t, fromEcho, fromCtx)
	}
}
