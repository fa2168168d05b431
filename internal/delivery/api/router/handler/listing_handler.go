package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"houses/config"
	"houses/internal/delivery/api/response"
	deliverycontext "houses/internal/delivery/context"
	domainerrors "houses/internal/domain/errors"
	"houses/internal/domain/service"
	"houses/internal/errors"
	"houses/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	HouseUC   usecase.HouseUsecase
	QRCodeSvc service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// ListingHandler serves shareable artifacts for a listing
type ListingHandler struct {
	houseUC   usecase.HouseUsecase
	qrCodeSvc service.QRCodeService
	baseURL   string
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		houseUC:   params.HouseUC,
		qrCodeSvc: params.QRCodeSvc,
		baseURL:   strings.TrimRight(params.Config.HTTP.PublicBaseURL, "/"),
		logger:    params.Logger,
	}
}

// GenerateListingQR returns a PNG QR code linking to the public listing page
func (h *ListingHandler) GenerateListingQR(c echo.Context) error {
	ctx := c.Request().Context()

	house, err := h.houseUC.GetHouse(ctx, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if house == nil {
		return response.HandleAppError(c, domainerrors.ErrHouseNotFound)
	}

	listingURL := h.baseURL + "/houses/" + strconv.FormatInt(house.ID, 10)
	png, err := h.qrCodeSvc.GenerateListingQR(listingURL)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Failed to generate listing QR code",
			slog.Int64("house_id", house.ID),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to generate listing QR code")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
