package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"houses/internal/delivery/api/response"
	domainerrors "houses/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(t *testing.T, err error) (int, response.ErrorResponse) {
	t.Helper()

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/operations", nil), rec)

	m.HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestHandleHTTPError_ValidationError(t *testing.T) {
	code, body := handle(t, domainerrors.NewValidationError("bedrooms", "must be between 1 and 10"))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "bedrooms: must be between 1 and 10", body.Error.Details)
}

func TestHandleHTTPError_NotAuthorized(t *testing.T) {
	code, body := handle(t, errors.Wrap(domainerrors.ErrNotAuthorized, "createHouse"))

	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "NOT_AUTHORIZED", body.Error.Code)
	assert.Equal(t, "not authorized", body.Error.Message)
	assert.Nil(t, body.Error.Details)
}

func TestHandleHTTPError_UpstreamHidesDetails(t *testing.T) {
	code, body := handle(t, domainerrors.NewUpstreamError(errors.New("dial tcp 10.0.0.5:5432"), "failed to find house"))

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", body.Error.Code)
	assert.Nil(t, body.Error.Details)
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	code, body := handle(t, echo.NewHTTPError(http.StatusRequestEntityTooLarge))

	assert.Equal(t, http.StatusRequestEntityTooLarge, code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestHandleHTTPError_UnknownError(t *testing.T) {
	code, body := handle(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, body.Error.Message, "boom")
}
