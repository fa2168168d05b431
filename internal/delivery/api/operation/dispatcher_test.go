package operation

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"houses/internal/delivery/api/validator"
	"houses/internal/domain/entity"
	domainerrors "houses/internal/domain/errors"
	"houses/internal/infra/metrics"
	mockUsecase "houses/internal/mocks/usecase"
	"houses/internal/usecase"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatcherFixtures struct {
	dispatcher *Dispatcher
	houseUC    *mockUsecase.MockHouseUsecase
	uploadUC   *mockUsecase.MockUploadUsecase
	metrics    *metrics.Metrics
}

func createTestDispatcher(t *testing.T) dispatcherFixtures {
	houseUC := mockUsecase.NewMockHouseUsecase(t)
	uploadUC := mockUsecase.NewMockUploadUsecase(t)
	m := metrics.New()

	return dispatcherFixtures{
		dispatcher: NewDispatcher(DispatcherParams{
			HouseUC:   houseUC,
			UploadUC:  uploadUC,
			Validator: validator.New(),
			Metrics:   m,
			Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		houseUC:  houseUC,
		uploadUC: uploadUC,
		metrics:  m,
	}
}

func request(operation, variables string, fields ...string) *Request {
	req := &Request{Operation: operation, Fields: fields}
	if variables != "" {
		req.Variables = json.RawMessage(variables)
	}

	return req
}

func TestSchema_Table(t *testing.T) {
	defs := Definitions()
	require.Len(t, defs, 3)

	house, ok := Lookup(OpHouse)
	require.True(t, ok)
	assert.Equal(t, KindQuery, house.Kind)
	assert.False(t, house.RequiresAuth)

	for _, name := range []string{OpCreateHouse, OpCreateImageSignature} {
		def, ok := Lookup(name)
		require.True(t, ok)
		assert.Equal(t, KindMutation, def.Kind)
		assert.True(t, def.RequiresAuth)
	}

	_, ok = Lookup("deleteHouse")
	assert.False(t, ok)
}

func TestDispatch_UnknownOperation(t *testing.T) {
	fx := createTestDispatcher(t)

	result, err := fx.dispatcher.Dispatch(context.Background(), usecase.RequestContext{}, request("deleteHouse", `{"id":"1"}`))
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownOperation)
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.OperationsTotal.WithLabelValues("unknown", "unknown_operation")))
}

func TestDispatch_MissingOperation(t *testing.T) {
	fx := createTestDispatcher(t)

	_, err := fx.dispatcher.Dispatch(context.Background(), usecase.RequestContext{}, request("", ""))

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "operation", validationErr.Field)
}

func TestDispatch_HouseNotFoundIsNull(t *testing.T) {
	fx := createTestDispatcher(t)
	ctx := context.Background()

	fx.houseUC.EXPECT().GetHouse(ctx, "42").Return(nil, nil)

	result, err := fx.dispatcher.Dispatch(ctx, usecase.RequestContext{}, request(OpHouse, `{"id":"42"}`))
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestDispatch_HouseWithoutNearby(t *testing.T) {
	fx := createTestDispatcher(t)
	ctx := context.Background()
	house := &entity.House{ID: 7, UserID: "user-1", Image: "https://cdn.example/a/b/c123.jpg", Bedrooms: 2}

	fx.houseUC.EXPECT().GetHouse(ctx, "7").Return(house, nil)

	result, err := fx.dispatcher.Dispatch(ctx, usecase.RequestContext{}, request(OpHouse, `{"id":"7"}`))
	require.NoError(t, err)

	view, ok := result.(*HouseView)
	require.True(t, ok)
	assert.Equal(t, "7", view.ID)
	assert.Equal(t, "c123.jpg", view.PublicID)
	fx.houseUC.AssertNotCalled(t, "NearbyHouses", mock.Anything, mock.Anything)
}

func TestDispatch_HouseWithNearby(t *testing.T) {
	fx := createTestDispatcher(t)
	ctx := context.Background()
	house := &entity.House{ID: 7, Latitude: 45, Longitude: -75}

	fx.houseUC.EXPECT().GetHouse(ctx, "7").Return(house, nil)
	fx.houseUC.EXPECT().NearbyHouses(ctx, house).Return([]*entity.House{{ID: 8}, {ID: 9}}, nil)

	result, err := fx.dispatcher.Dispatch(ctx, usecase.RequestContext{}, request(OpHouse, `{"id":"7"}`, FieldNearby))
	require.NoError(t, err)

	view, ok := result.(*HouseWithNearbyView)
	require.True(t, ok)
	assert.Equal(t, "7", view.ID)
	require.Len(t, view.Nearby, 2)
	assert.Equal(t, "8", view.Nearby[0].ID)
}

func TestDispatch_HouseRequiresVariables(t *testing.T) {
	fx := createTestDispatcher(t)

	for _, vars := range []string{"", "null", `{}`, `{"id":`} {
		_, err := fx.dispatcher.Dispatch(context.Background(), usecase.RequestContext{}, request(OpHouse, vars))
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, vars)
	}
}

func TestDispatch_UnknownField(t *testing.T) {
	fx := createTestDispatcher(t)

	_, err := fx.dispatcher.Dispatch(context.Background(), usecase.RequestContext{}, request(OpHouse, `{"id":"7"}`, "owner"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDispatch_CreateHouseRequiresIdentity(t *testing.T) {
	fx := createTestDispatcher(t)

	vars := `{"input":{"address":"1 Main St","image":"img","coordinates":{"latitude":45,"longitude":-75},"bedrooms":3}}`
	result, err := fx.dispatcher.Dispatch(context.Background(), usecase.RequestContext{}, request(OpCreateHouse, vars))
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
	fx.houseUC.AssertNotCalled(t, "CreateHouse", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_CreateHouse(t *testing.T) {
	fx := createTestDispatcher(t)
	ctx := context.Background()
	rc := usecase.NewRequestContext("user-1")

	fx.houseUC.EXPECT().
		CreateHouse(ctx, rc, mock.MatchedBy(func(in *usecase.CreateHouseInput) bool {
			return in.Address == "1 Main St" && in.Coordinates != nil && *in.Coordinates.Latitude == 45 && in.Bedrooms == 3
		})).
		Return(&entity.House{ID: 101, UserID: "user-1", Address: "1 Main St", Latitude: 45, Longitude: -75, Image: "img", Bedrooms: 3}, nil)

	vars := `{"input":{"address":"1 Main St","image":"img","coordinates":{"latitude":45,"longitude":-75},"bedrooms":3}}`
	result, err := fx.dispatcher.Dispatch(ctx, rc, request(OpCreateHouse, vars))
	require.NoError(t, err)

	view, ok := result.(*HouseView)
	require.True(t, ok)
	assert.Equal(t, "101", view.ID)
	assert.Equal(t, "user-1", view.UserID)
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.OperationsTotal.WithLabelValues(OpCreateHouse, "ok")))
}

func TestDispatch_CreateHouseMissingInput(t *testing.T) {
	fx := createTestDispatcher(t)

	_, err := fx.dispatcher.Dispatch(context.Background(), usecase.NewRequestContext("user-1"), request(OpCreateHouse, `{}`))

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "input", validationErr.Field)
}

func TestDispatch_CreateHouseValidationFromService(t *testing.T) {
	fx := createTestDispatcher(t)
	ctx := context.Background()
	rc := usecase.NewRequestContext("user-1")

	fx.houseUC.EXPECT().
		CreateHouse(ctx, rc, mock.Anything).
		Return(nil, domainerrors.NewValidationError("latitude", "violates chk_houses_latitude"))

	vars := `{"input":{"address":"1 Main St","image":"img","coordinates":{"latitude":45,"longitude":-75},"bedrooms":3}}`
	_, err := fx.dispatcher.Dispatch(ctx, rc, request(OpCreateHouse, vars))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.OperationsTotal.WithLabelValues(OpCreateHouse, "VALIDATION_FAILED")))
}

func TestDispatch_CreateHouseRejectsIncompleteInput(t *testing.T) {
	tests := []struct {
		name      string
		vars      string
		wantField string
	}{
		{
			name:      "coordinates omitted",
			vars:      `{"input":{"address":"1 Main St","image":"img/x.jpg","bedrooms":3}}`,
			wantField: "coordinates",
		},
		{
			name:      "coordinates null",
			vars:      `{"input":{"address":"1 Main St","image":"img/x.jpg","coordinates":null,"bedrooms":3}}`,
			wantField: "coordinates",
		},
		{
			name:      "latitude null",
			vars:      `{"input":{"address":"1 Main St","image":"img/x.jpg","coordinates":{"latitude":null,"longitude":null},"bedrooms":3}}`,
			wantField: "coordinates.latitude",
		},
		{
			name:      "bedrooms out of range",
			vars:      `{"input":{"address":"1 Main St","image":"img/x.jpg","coordinates":{"latitude":45,"longitude":-75},"bedrooms":0}}`,
			wantField: "bedrooms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDispatcher(t)

			_, err := fx.dispatcher.Dispatch(context.Background(), usecase.NewRequestContext("user-1"), request(OpCreateHouse, tt.vars))

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
			fx.houseUC.AssertNotCalled(t, "CreateHouse", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestDispatch_CreateImageSignature(t *testing.T) {
	fx := createTestDispatcher(t)
	ctx := context.Background()
	rc := usecase.NewRequestContext("user-1")

	fx.uploadUC.EXPECT().CreateImageSignature(ctx, rc).Return(&entity.ImageSignature{
		Signature: "abc",
		Timestamp: 1700000000,
		APIKey:    "key",
		CloudName: "demo",
		UploadURL: "https://api.cloudinary.com/v1_1/demo/image/upload",
	}, nil)

	result, err := fx.dispatcher.Dispatch(ctx, rc, request(OpCreateImageSignature, ""))
	require.NoError(t, err)

	view, ok := result.(*ImageSignatureView)
	require.True(t, ok)
	assert.Equal(t, "abc", view.Signature)
	assert.Equal(t, int64(1700000000), view.Timestamp)
}

func TestDispatch_CreateImageSignatureRequiresIdentity(t *testing.T) {
	fx := createTestDispatcher(t)

	_, err := fx.dispatcher.Dispatch(context.Background(), usecase.RequestContext{}, request(OpCreateImageSignature, ""))
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}
