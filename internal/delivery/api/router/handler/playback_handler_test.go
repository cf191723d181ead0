package handler

import (
	"net/http"
	"testing"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	mockUsecase "dispatch/internal/mocks/usecase"
	"dispatch/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaybackHandler_Record(t *testing.T) {
	playbackUC := mockUsecase.NewMockPlaybackUsecase(t)
	h := NewPlaybackHandler(PlaybackHandlerParams{PlaybackUC: playbackUC})

	playbackUC.EXPECT().Record(mock.Anything, mock.MatchedBy(func(in *usecase.BeaconInput) bool {
		return in.Latitude == 52.6 && in.Longitude == 39.6 && in.RecordedAt == nil
	}), beaconSourceHTTP).Return(&entity.BeaconCoordinate{ID: 1, Latitude: 52.6, Longitude: 39.6}, nil).Once()

	c, rec := newTestContext(http.MethodPost, "/beacon-coordinates", `{"latitude":52.6,"longitude":39.6}`)

	require.NoError(t, h.Record(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPlaybackHandler_Record_OutOfRange(t *testing.T) {
	playbackUC := mockUsecase.NewMockPlaybackUsecase(t)
	h := NewPlaybackHandler(PlaybackHandlerParams{PlaybackUC: playbackUC})

	c, _ := newTestContext(http.MethodPost, "/beacon-coordinates", `{"latitude":152.6,"longitude":39.6}`)

	assert.Error(t, h.Record(c))
}

func TestPlaybackHandler_ByDay(t *testing.T) {
	playbackUC := mockUsecase.NewMockPlaybackUsecase(t)
	h := NewPlaybackHandler(PlaybackHandlerParams{PlaybackUC: playbackUC})

	playbackUC.EXPECT().ByDay(mock.Anything, "2024-03-05").
		Return([]entity.BeaconCoordinate{{ID: 1}, {ID: 2}}, nil).Once()
	playbackUC.EXPECT().ByDay(mock.Anything, "bad").Return(nil, domainerrors.ErrInvalidDate).Once()

	c, rec := newTestContext(http.MethodGet, "/beacon-coordinates?date_str=2024-03-05", "")
	require.NoError(t, h.ByDay(c))
	assert.Len(t, decodeData[[]entity.BeaconCoordinate](t, rec), 2)

	c, _ = newTestContext(http.MethodGet, "/beacon-coordinates?date_str=bad", "")
	assert.ErrorIs(t, h.ByDay(c), domainerrors.ErrInvalidDate)
}

func TestPlaybackHandler_Track(t *testing.T) {
	playbackUC := mockUsecase.NewMockPlaybackUsecase(t)
	h := NewPlaybackHandler(PlaybackHandlerParams{PlaybackUC: playbackUC})

	playbackUC.EXPECT().Track(mock.Anything, "2024-03-05").
		Return(&usecase.Track{Date: "2024-03-05", Points: 0}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/playback/track?date=2024-03-05", "")

	require.NoError(t, h.Track(c))
	got := decodeData[usecase.Track](t, rec)
	assert.Equal(t, "2024-03-05", got.Date)
	assert.Nil(t, got.Feature)
}
