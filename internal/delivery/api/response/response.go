// Package response defines the JSON envelopes returned by the API.
package response

import (
	"net/http"

	deliverycontext "houses/internal/delivery/context"
	domainerrors "houses/internal/domain/errors"
	"houses/internal/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse wraps an operation result. Data is null when a query
// finds nothing.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse wraps a failed request.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo is the client-facing part of an error.
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable, e.g. "VALIDATION_FAILED"
	Message string `json:"message"`
	Details any    `json:"details,omitempty"` // Client errors only, e.g. "bedrooms: must be between 1 and 10"
}

// MetaInfo echoes the request id so clients can quote it.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success writes data in the success envelope.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes the error envelope. Details are dropped for server faults and
// authentication failures so nothing internal or identity related leaks.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if !exposesDetails(statusCode) {
		details = nil
	}
	if s, ok := details.(string); ok && s == "" {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func exposesDetails(statusCode int) bool {
	return statusCode < http.StatusInternalServerError &&
		statusCode != http.StatusUnauthorized &&
		statusCode != http.StatusForbidden
}

// AppError writes err using its own status and code.
func AppError(c echo.Context, err domainerrors.AppError) error {
	return Error(c, err.HTTPCode(), err.ErrorCode(), err.Message(), err.Details())
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError writes an AppError response, passing any other error on to
// the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
