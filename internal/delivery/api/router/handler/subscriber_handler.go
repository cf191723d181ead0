package handler

import (
	"net/http"

	"dispatch/internal/delivery/api/response"
	"dispatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriberHandlerParams holds dependencies for SubscriberHandler, injected by Fx.
type SubscriberHandlerParams struct {
	fx.In

	SubscriberUC usecase.SubscriberUsecase
}

// SubscriberHandler serves subscribers and address search.
type SubscriberHandler struct {
	subscriberUC usecase.SubscriberUsecase
}

// NewSubscriberHandler is the constructor for SubscriberHandler
func NewSubscriberHandler(params SubscriberHandlerParams) *SubscriberHandler {
	return &SubscriberHandler{subscriberUC: params.SubscriberUC}
}

// List returns every subscriber in address order.
func (h *SubscriberHandler) List(c echo.Context) error {
	subscribers, err := h.subscriberUC.List(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, subscribers)
}

func (h *SubscriberHandler) Get(c echo.Context) error {
	subscriber, err := h.subscriberUC.Get(c.Request().Context(), c.Param("contract"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, subscriber)
}

func (h *SubscriberHandler) Create(c echo.Context) error {
	var req usecase.CreateSubscriberInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	subscriber, err := h.subscriberUC.Create(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, subscriber)
}

func (h *SubscriberHandler) Update(c echo.Context) error {
	var req usecase.UpdateSubscriberInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	subscriber, err := h.subscriberUC.Update(c.Request().Context(), c.Param("contract"), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, subscriber)
}

// SuggestAddresses serves the address field autocomplete.
func (h *SubscriberHandler) SuggestAddresses(c echo.Context) error {
	addresses, err := h.subscriberUC.SuggestAddresses(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, addresses)
}

// SuggestHouses serves the house field autocomplete. key locks the address
// group picked from the address suggestions.
func (h *SubscriberHandler) SuggestHouses(c echo.Context) error {
	houses, err := h.subscriberUC.SuggestHouses(c.Request().Context(),
		c.QueryParam("address"), c.QueryParam("key"), c.QueryParam("house"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, houses)
}

// Search filters subscribers by address text and a house query such as "5",
// "5-12", "-3" or "10-".
func (h *SubscriberHandler) Search(c echo.Context) error {
	subscribers, err := h.subscriberUC.Search(c.Request().Context(), c.QueryParam("address"), c.QueryParam("house"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, subscribers)
}

// ContractQR renders the contract card QR code as PNG.
func (h *SubscriberHandler) ContractQR(c echo.Context) error {
	png, err := h.subscriberUC.ContractQR(c.Request().Context(), c.Param("contract"))
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Geocode resolves a free-form address with the configured geocoder.
func (h *SubscriberHandler) Geocode(c echo.Context) error {
	result, err := h.subscriberUC.Geocode(c.Request().Context(), c.QueryParam("address"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result)
}
