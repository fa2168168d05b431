package operation

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"

	deliverycontext "houses/internal/delivery/context"
	domainerrors "houses/internal/domain/errors"
	"houses/internal/infra/metrics"
	"houses/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Request is the envelope posted to the operations endpoint.
type Request struct {
	Operation string          `json:"operation" validate:"required,max=64"`
	Variables json.RawMessage `json:"variables"`
	Fields    []string        `json:"fields" validate:"omitempty,dive,oneof=nearby"`
}

// HouseVariables are the variables of the house query.
type HouseVariables struct {
	ID string `json:"id" validate:"required"`
}

// CreateHouseVariables are the variables of the createHouse mutation.
type CreateHouseVariables struct {
	Input *usecase.CreateHouseInput `json:"input" validate:"required"`
}

// DispatcherParams holds dependencies for Dispatcher, injected by Fx.
type DispatcherParams struct {
	fx.In

	HouseUC   usecase.HouseUsecase
	UploadUC  usecase.UploadUsecase
	Validator echo.Validator
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
}

// Dispatcher routes envelopes to the services according to the schema table.
type Dispatcher struct {
	houseUC   usecase.HouseUsecase
	uploadUC  usecase.UploadUsecase
	validator echo.Validator
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewDispatcher is the constructor for Dispatcher
func NewDispatcher(params DispatcherParams) *Dispatcher {
	return &Dispatcher{
		houseUC:   params.HouseUC,
		uploadUC:  params.UploadUC,
		validator: params.Validator,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

// Dispatch validates the envelope, enforces the operation's auth
// requirement, and runs its resolver. rc is the identity resolved once for
// the request.
func (d *Dispatcher) Dispatch(ctx context.Context, rc usecase.RequestContext, req *Request) (any, error) {
	if err := d.validator.Validate(req); err != nil {
		d.record("invalid", "invalid_request")

		return nil, err
	}

	def, ok := Lookup(req.Operation)
	if !ok {
		d.record("unknown", "unknown_operation")

		return nil, domainerrors.ErrUnknownOperation.WithDetails(req.Operation)
	}

	if def.RequiresAuth && !rc.Authenticated() {
		d.record(def.Name, "not_authorized")

		return nil, domainerrors.ErrNotAuthorized
	}

	result, err := def.resolve(d, ctx, rc, req)
	if err != nil {
		d.record(def.Name, outcome(err))

		return nil, err
	}

	d.record(def.Name, "ok")
	deliverycontext.GetLoggerOrDefault(ctx, d.logger).Debug("Operation resolved",
		slog.String("operation", def.Name),
		slog.String("kind", string(def.Kind)),
	)

	return result, nil
}

func (d *Dispatcher) resolveHouse(ctx context.Context, _ usecase.RequestContext, req *Request) (any, error) {
	var vars HouseVariables
	if err := d.decodeVariables(req, &vars); err != nil {
		return nil, err
	}

	house, err := d.houseUC.GetHouse(ctx, vars.ID)
	if err != nil {
		return nil, err
	}
	if house == nil {
		// Not found is a null result, not an error.
		return nil, nil
	}

	if !slices.Contains(req.Fields, FieldNearby) {
		return toHouseView(house), nil
	}

	nearby, err := d.houseUC.NearbyHouses(ctx, house)
	if err != nil {
		return nil, err
	}

	return &HouseWithNearbyView{
		HouseView: toHouseView(house),
		Nearby:    toHouseViews(nearby),
	}, nil
}

func (d *Dispatcher) resolveCreateHouse(ctx context.Context, rc usecase.RequestContext, req *Request) (any, error) {
	var vars CreateHouseVariables
	if err := d.decodeVariables(req, &vars); err != nil {
		return nil, err
	}
	if err := vars.Input.Validate(); err != nil {
		return nil, err
	}

	house, err := d.houseUC.CreateHouse(ctx, rc, vars.Input)
	if err != nil {
		return nil, err
	}

	return toHouseView(house), nil
}

func (d *Dispatcher) resolveCreateImageSignature(ctx context.Context, rc usecase.RequestContext, _ *Request) (any, error) {
	sig, err := d.uploadUC.CreateImageSignature(ctx, rc)
	if err != nil {
		return nil, err
	}

	return toImageSignatureView(sig), nil
}

// decodeVariables unmarshals and tag-validates the operation variables.
func (d *Dispatcher) decodeVariables(req *Request, target any) error {
	if len(req.Variables) == 0 || string(req.Variables) == "null" {
		return domainerrors.NewValidationError("variables", "is required")
	}

	if err := json.Unmarshal(req.Variables, target); err != nil {
		return domainerrors.NewValidationError("variables", "malformed JSON for "+req.Operation)
	}

	return d.validator.Validate(target)
}

func (d *Dispatcher) record(operation, result string) {
	if d.metrics == nil {
		return
	}
	d.metrics.OperationsTotal.WithLabelValues(operation, result).Inc()
}

// outcome labels a resolver failure by its error code.
func outcome(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return "error"
}
