package handler

import (
	"net/http"

	"dispatch/internal/delivery/api/response"
	"dispatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// beaconSourceHTTP labels fixes posted to the API.
const beaconSourceHTTP = "http"

// PlaybackHandlerParams holds dependencies for PlaybackHandler, injected by Fx.
type PlaybackHandlerParams struct {
	fx.In

	PlaybackUC usecase.PlaybackUsecase
}

// PlaybackHandler serves beacon coordinates and day tracks.
type PlaybackHandler struct {
	playbackUC usecase.PlaybackUsecase
}

// NewPlaybackHandler is the constructor for PlaybackHandler
func NewPlaybackHandler(params PlaybackHandlerParams) *PlaybackHandler {
	return &PlaybackHandler{playbackUC: params.PlaybackUC}
}

// Record stores a fix posted by a beacon without MQTT access.
func (h *PlaybackHandler) Record(c echo.Context) error {
	var req usecase.BeaconInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	coordinate, err := h.playbackUC.Record(c.Request().Context(), &req, beaconSourceHTTP)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, coordinate)
}

// ByDay returns the fixes of ?date_str=YYYY-MM-DD.
func (h *PlaybackHandler) ByDay(c echo.Context) error {
	coordinates, err := h.playbackUC.ByDay(c.Request().Context(), c.QueryParam("date_str"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, coordinates)
}

// Track returns the GeoJSON route of ?date=YYYY-MM-DD.
func (h *PlaybackHandler) Track(c echo.Context) error {
	track, err := h.playbackUC.Track(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, track)
}
