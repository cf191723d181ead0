package impl

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	mockRepo "dispatch/internal/mocks/repository"
	mockService "dispatch/internal/mocks/service"
	"dispatch/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPlaybackService(t *testing.T) (*playbackService, *mockRepo.MockBeaconRepository, *mockService.MockMetricsRecorder) {
	t.Helper()

	repo := mockRepo.NewMockBeaconRepository(t)
	metrics := mockService.NewMockMetricsRecorder(t)

	srv, err := NewPlaybackService(PlaybackServiceParams{
		BeaconRepo: repo,
		Metrics:    metrics,
		Config:     newTestConfig(),
		Logger:     newTestLogger(),
	})
	require.NoError(t, err)

	return srv.(*playbackService), repo, metrics
}

func TestNewPlaybackService_UnknownTimezone(t *testing.T) {
	cfg := newTestConfig()
	cfg.Timezone = "Mars/Olympus"

	_, err := NewPlaybackService(PlaybackServiceParams{Config: cfg, Logger: newTestLogger()})
	require.Error(t, err)
}

func TestPlaybackService_RecordDefaultsTimestamp(t *testing.T) {
	srv, repo, metrics := newTestPlaybackService(t)
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 6, 0, 0, 0, time.UTC)
	srv.now = func() time.Time { return now }

	repo.EXPECT().Create(ctx, &entity.BeaconCoordinate{Latitude: 54.2, Longitude: 37.6, RecordedAt: now}).Return(nil)
	metrics.EXPECT().BeaconRecorded("mqtt").Return().Once()

	coordinate, err := srv.Record(ctx, &usecase.BeaconInput{Latitude: 54.2, Longitude: 37.6}, "mqtt")
	require.NoError(t, err)
	assert.Equal(t, now, coordinate.RecordedAt)
}

func TestPlaybackService_RecordRejectsOutOfRange(t *testing.T) {
	srv, _, _ := newTestPlaybackService(t)

	_, err := srv.Record(context.Background(), &usecase.BeaconInput{Latitude: 91}, "http")
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPlaybackService_ByDayUsesLocalDay(t *testing.T) {
	srv, repo, _ := newTestPlaybackService(t)
	ctx := context.Background()
	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	from := time.Date(2026, 5, 1, 0, 0, 0, 0, moscow)
	repo.EXPECT().ListBetween(ctx, mock.MatchedBy(func(ts time.Time) bool {
		return ts.Equal(from)
	}), mock.MatchedBy(func(ts time.Time) bool {
		return ts.Equal(from.Add(24 * time.Hour))
	})).Return([]entity.BeaconCoordinate{{ID: 1}}, nil)

	coordinates, err := srv.ByDay(ctx, "2026-05-01")
	require.NoError(t, err)
	assert.Len(t, coordinates, 1)

	// Midnight in Moscow is 21:00 UTC of the previous day.
	assert.Equal(t, time.Date(2026, 4, 30, 21, 0, 0, 0, time.UTC), from.UTC())
}

func TestPlaybackService_ByDayBadFormat(t *testing.T) {
	srv, _, _ := newTestPlaybackService(t)

	_, err := srv.ByDay(context.Background(), "01.05.2026")
	require.ErrorIs(t, err, domainerrors.ErrInvalidDate)
}

func TestPlaybackService_Track(t *testing.T) {
	start := time.Date(2026, 5, 1, 6, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		coordinates []entity.BeaconCoordinate
		wantFeature bool
		wantType    string
		minLength   float64
		maxLength   float64
	}{
		{name: "empty day"},
		{
			name:        "single fix",
			coordinates: []entity.BeaconCoordinate{{Latitude: 54.0, Longitude: 37.0, RecordedAt: start}},
			wantFeature: true,
			wantType:    orb.Point{}.GeoJSONType(),
		},
		{
			name: "route",
			coordinates: []entity.BeaconCoordinate{
				{Latitude: 54.0, Longitude: 37.0, RecordedAt: start},
				{Latitude: 54.01, Longitude: 37.0, RecordedAt: start.Add(time.Minute)},
				{Latitude: 54.02, Longitude: 37.0, RecordedAt: start.Add(2 * time.Minute)},
			},
			wantFeature: true,
			wantType:    orb.LineString{}.GeoJSONType(),
			// Two hundredths of a degree of latitude is about 2.2 km.
			minLength: 2200,
			maxLength: 2250,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, repo, _ := newTestPlaybackService(t)
			repo.EXPECT().ListBetween(mock.Anything, mock.Anything, mock.Anything).Return(tt.coordinates, nil)

			track, err := srv.Track(context.Background(), "2026-05-01")
			require.NoError(t, err)
			assert.Equal(t, len(tt.coordinates), track.Points)

			if !tt.wantFeature {
				assert.Nil(t, track.Feature)

				return
			}
			require.NotNil(t, track.Feature)
			assert.Equal(t, tt.wantType, track.Feature.Geometry.GeoJSONType())
			assert.Len(t, track.Feature.BBox, 4)
			if tt.maxLength > 0 {
				assert.GreaterOrEqual(t, track.LengthMeters, tt.minLength)
				assert.LessOrEqual(t, track.LengthMeters, tt.maxLength)
			}
		})
	}
}
