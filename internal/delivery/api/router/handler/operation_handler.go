package handler

import (
	"log/slog"
	"net/http"

	"houses/internal/delivery/api/operation"
	"houses/internal/delivery/api/response"
	deliverycontext "houses/internal/delivery/context"
	domainerrors "houses/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OperationHandlerParams holds dependencies for OperationHandler, injected by Fx.
type OperationHandlerParams struct {
	fx.In

	Dispatcher *operation.Dispatcher
	Logger     *slog.Logger
}

// OperationHandler serves the single operations endpoint
type OperationHandler struct {
	dispatcher *operation.Dispatcher
	logger     *slog.Logger
}

// NewOperationHandler is the constructor for OperationHandler
func NewOperationHandler(params OperationHandlerParams) *OperationHandler {
	return &OperationHandler{
		dispatcher: params.Dispatcher,
		logger:     params.Logger,
	}
}

// Execute decodes the envelope and runs the named operation as the caller
// resolved by the identity middleware.
func (h *OperationHandler) Execute(c echo.Context) error {
	var req operation.Request
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.NewValidationError("body", "must be a JSON operation envelope"))
	}

	ctx := c.Request().Context()
	result, err := h.dispatcher.Dispatch(ctx, deliverycontext.GetRequestContext(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
