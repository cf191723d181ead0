package mqtt

import (
	"context"
	"encoding/json"
	"log/slog"

	"dispatch/config"
	"dispatch/internal/delivery"
	deliverycontext "dispatch/internal/delivery/context"
	"dispatch/internal/domain/lifecycle"
	"dispatch/internal/errors"
	"dispatch/internal/usecase"

	paho "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/fx"
)

// beaconSourceMQTT labels fixes received from the broker.
const beaconSourceMQTT = "mqtt"

// ListenerParams holds dependencies for the beacon listener, injected by Fx.
type ListenerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	PlaybackUC usecase.PlaybackUsecase
}

type listener struct {
	cfg        *config.MQTTConfig
	logger     *slog.Logger
	playbackUC usecase.PlaybackUsecase
	client     Client
}

// NewListener creates the beacon coordinate listener. Without a configured
// broker it returns a delivery that only logs that MQTT is off.
func NewListener(params ListenerParams) delivery.Delivery {
	if params.Cfg.MQTT == nil || params.Cfg.MQTT.Broker == "" {
		return &disabledListener{logger: params.Logger}
	}

	l := &listener{
		cfg:        params.Cfg.MQTT,
		logger:     params.Logger,
		playbackUC: params.PlaybackUC,
	}
	l.client = paho.NewClient(newClientOptions(l.cfg, l.onConnect, l.onConnectionLost))

	params.Lc.Append(fx.Hook{
		OnStop: l.stop,
	})

	return l
}

// Serve connects to the broker. Subscribing happens in onConnect.
func (l *listener) Serve(ctx context.Context) error {
	l.logger.Info("Starting MQTT beacon listener",
		slog.String("broker", l.cfg.Broker),
		slog.String("topic", l.cfg.Topic),
	)

	if err := waitToken(l.client.Connect()); err != nil {
		return errors.Wrap(err, "connect to mqtt broker")
	}

	return nil
}

func (l *listener) onConnect(_ paho.Client) {
	if err := waitToken(l.client.Subscribe(l.cfg.Topic, l.cfg.QoS, l.handleMessage)); err != nil {
		l.logger.Error("Failed to subscribe to beacon topic", slog.String("topic", l.cfg.Topic), slog.Any("error", err))

		return
	}
	l.logger.Info("Subscribed to beacon topic", slog.String("topic", l.cfg.Topic))
}

func (l *listener) onConnectionLost(_ paho.Client, err error) {
	l.logger.Warn("MQTT connection lost", slog.Any("error", err))
}

// handleMessage stores one fix. Bad payloads are logged and dropped so the
// broker does not redeliver them forever.
func (l *listener) handleMessage(_ paho.Client, msg paho.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	ctx = deliverycontext.Scope(ctx, l.logger, deliverycontext.NewRequestID(""), slog.String("topic", msg.Topic()))
	logger := deliverycontext.GetLogger(ctx)

	var input usecase.BeaconInput
	if err := json.Unmarshal(msg.Payload(), &input); err != nil {
		logger.Warn("Dropping malformed beacon payload", slog.Any("error", err))

		return
	}

	if _, err := l.playbackUC.Record(ctx, &input, beaconSourceMQTT); err != nil {
		logger.Error("Failed to record beacon coordinate", slog.Any("error", err))
	}
}

func (l *listener) stop(_ context.Context) error {
	if !l.client.IsConnected() {
		return nil
	}

	l.logger.Info("Shutting down MQTT beacon listener")
	if err := waitToken(l.client.Unsubscribe(l.cfg.Topic)); err != nil {
		l.logger.Warn("Failed to unsubscribe from beacon topic", slog.Any("error", err))
	}
	l.client.Disconnect(disconnectWait)

	return nil
}

type disabledListener struct {
	logger *slog.Logger
}

func (d *disabledListener) Serve(_ context.Context) error {
	d.logger.Info("MQTT beacon listener disabled, no broker configured")

	return nil
}
