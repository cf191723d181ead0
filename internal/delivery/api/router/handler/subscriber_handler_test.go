package handler

import (
	"net/http"
	"testing"

	"dispatch/internal/addrindex"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	"dispatch/internal/domain/service"
	mockUsecase "dispatch/internal/mocks/usecase"
	"dispatch/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubscriberHandler_SuggestAddresses(t *testing.T) {
	subscriberUC := mockUsecase.NewMockSubscriberUsecase(t)
	h := NewSubscriberHandler(SubscriberHandlerParams{SubscriberUC: subscriberUC})

	subscriberUC.EXPECT().SuggestAddresses(mock.Anything, "лен").Return([]addrindex.Address{
		{Display: "Липецк, Ленина", Key: "липецк||ленина", City: "Липецк", Street: "Ленина"},
	}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/subscribers/suggest/addresses?q=%D0%BB%D0%B5%D0%BD", "")

	require.NoError(t, h.SuggestAddresses(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[[]addrindex.Address](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "Липецк, Ленина", got[0].Display)
}

func TestSubscriberHandler_SuggestHouses_PassesLockedKey(t *testing.T) {
	subscriberUC := mockUsecase.NewMockSubscriberUsecase(t)
	h := NewSubscriberHandler(SubscriberHandlerParams{SubscriberUC: subscriberUC})

	subscriberUC.EXPECT().SuggestHouses(mock.Anything, "Ленина", "k1", "1").
		Return([]addrindex.HouseEntry{{Display: "Липецк, Ленина, 1", House: "1", ContractNumber: "100"}}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/subscribers/suggest/houses?address=%D0%9B%D0%B5%D0%BD%D0%B8%D0%BD%D0%B0&key=k1&house=1", "")

	require.NoError(t, h.SuggestHouses(c))
	got := decodeData[[]addrindex.HouseEntry](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "100", got[0].ContractNumber)
}

func TestSubscriberHandler_Create(t *testing.T) {
	subscriberUC := mockUsecase.NewMockSubscriberUsecase(t)
	h := NewSubscriberHandler(SubscriberHandlerParams{SubscriberUC: subscriberUC})

	subscriberUC.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in *usecase.CreateSubscriberInput) bool {
		return in.ContractNumber == "100" && in.City == "Липецк" && in.House == "1"
	})).Return(&entity.Subscriber{ContractNumber: "100", City: "Липецк", House: "1"}, nil).Once()

	c, rec := newTestContext(http.MethodPost, "/subscribers",
		`{"contract_number":"100","city":"Липецк","street":"Ленина","house":"1"}`)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "100", decodeData[entity.Subscriber](t, rec).ContractNumber)
}

func TestSubscriberHandler_Create_Conflict(t *testing.T) {
	subscriberUC := mockUsecase.NewMockSubscriberUsecase(t)
	h := NewSubscriberHandler(SubscriberHandlerParams{SubscriberUC: subscriberUC})

	subscriberUC.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrSubscriberAlreadyExists).Once()

	c, _ := newTestContext(http.MethodPost, "/subscribers",
		`{"contract_number":"100","city":"Липецк","street":"Ленина","house":"1"}`)

	assert.ErrorIs(t, h.Create(c), domainerrors.ErrSubscriberAlreadyExists)
}

func TestSubscriberHandler_ContractQR(t *testing.T) {
	subscriberUC := mockUsecase.NewMockSubscriberUsecase(t)
	h := NewSubscriberHandler(SubscriberHandlerParams{SubscriberUC: subscriberUC})

	png := []byte{0x89, 'P', 'N', 'G'}
	subscriberUC.EXPECT().ContractQR(mock.Anything, "100").Return(png, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/subscribers/100/qr", "")
	withParams(c, "contract", "100")

	require.NoError(t, h.ContractQR(c))
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestSubscriberHandler_Geocode(t *testing.T) {
	subscriberUC := mockUsecase.NewMockSubscriberUsecase(t)
	h := NewSubscriberHandler(SubscriberHandlerParams{SubscriberUC: subscriberUC})

	subscriberUC.EXPECT().Geocode(mock.Anything, "Липецк").
		Return(service.GeocodeResult{Latitude: 52.6, Longitude: 39.6, Address: "Россия, Липецк"}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/geocode?address=%D0%9B%D0%B8%D0%BF%D0%B5%D1%86%D0%BA", "")

	require.NoError(t, h.Geocode(c))
	assert.InDelta(t, 52.6, decodeData[service.GeocodeResult](t, rec).Latitude, 1e-9)
}
