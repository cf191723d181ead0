package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"dispatch/config"
	mockService "dispatch/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Search:   &config.SearchConfig{SuggestionLimit: 10},
		Timezone: "Europe/Moscow",
	}
}

// newLenientMetrics accepts any metrics call.
func newLenientMetrics(t *testing.T) *mockService.MockMetricsRecorder {
	t.Helper()

	metrics := mockService.NewMockMetricsRecorder(t)
	metrics.EXPECT().IndexRebuilt(mock.Anything, mock.Anything).Return().Maybe()
	metrics.EXPECT().BeaconRecorded(mock.Anything).Return().Maybe()
	metrics.EXPECT().EventPublished(mock.Anything, mock.Anything).Return().Maybe()

	return metrics
}

func ptr[T any](v T) *T {
	return &v
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()

	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}

	return d
}
