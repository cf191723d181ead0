package geocode

import (
	"log/slog"

	"dispatch/config"
	"dispatch/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the Geocoder, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Redis  *redis.Client `optional:"true"`
}

// NewGeocoder builds the Yandex geocoder, cached in Redis when a client is available.
func NewGeocoder(params Params) service.Geocoder {
	geocoder := NewYandexGeocoder(params.Config.Geocoder, params.Logger)
	if params.Redis == nil || params.Config.Redis == nil {
		return geocoder
	}

	params.Logger.Info("Geocoder results cached in Redis",
		slog.Duration("ttl", params.Config.Redis.TTL),
	)

	return NewCachedGeocoder(geocoder, params.Redis, params.Config.Redis.TTL, params.Logger)
}
