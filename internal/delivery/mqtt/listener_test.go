package mqtt

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"dispatch/config"
	"dispatch/internal/domain/entity"
	domainerrors "dispatch/internal/domain/errors"
	mockUsecase "dispatch/internal/mocks/usecase"
	"dispatch/internal/usecase"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type mockClient struct {
	connected    bool
	connectErr   error
	subscribed   []string
	disconnected bool
	handler      paho.MessageHandler
}

func (m *mockClient) Connect() paho.Token {
	m.connected = m.connectErr == nil

	return &mockToken{err: m.connectErr}
}
func (m *mockClient) IsConnected() bool       { return m.connected }
func (m *mockClient) Disconnect(quiesce uint) { m.disconnected = true; m.connected = false }
func (m *mockClient) Subscribe(topic string, qos byte, callback paho.MessageHandler) paho.Token {
	m.subscribed = append(m.subscribed, topic)
	m.handler = callback

	return &mockToken{}
}
func (m *mockClient) Unsubscribe(topics ...string) paho.Token { return &mockToken{} }

type mockToken struct {
	err error
}

func (t *mockToken) Wait() bool                       { return true }
func (t *mockToken) WaitTimeout(_ time.Duration) bool { return true }
func (t *mockToken) Error() error                     { return t.err }
func (t *mockToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)

	return ch
}

type mockMessage struct {
	paho.Message
	topic   string
	payload []byte
}

func (m *mockMessage) Topic() string   { return m.topic }
func (m *mockMessage) Payload() []byte { return m.payload }

func newTestListener(t *testing.T) (*listener, *mockClient, *mockUsecase.MockPlaybackUsecase) {
	t.Helper()

	playbackUC := mockUsecase.NewMockPlaybackUsecase(t)
	client := &mockClient{}

	return &listener{
		cfg:        &config.MQTTConfig{Broker: "tcp://localhost:1883", Topic: "beacon/coordinates", QoS: 1},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		playbackUC: playbackUC,
		client:     client,
	}, client, playbackUC
}

func TestListener_SubscribesOnConnect(t *testing.T) {
	l, client, playbackUC := newTestListener(t)

	require.NoError(t, l.Serve(context.Background()))
	l.onConnect(nil)
	require.Equal(t, []string{"beacon/coordinates"}, client.subscribed)

	recordedAt := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	playbackUC.EXPECT().Record(mock.Anything, mock.MatchedBy(func(in *usecase.BeaconInput) bool {
		return in.Latitude == 52.6 && in.Longitude == 39.6 && in.RecordedAt != nil && in.RecordedAt.Equal(recordedAt)
	}), beaconSourceMQTT).Return(&entity.BeaconCoordinate{ID: 1}, nil).Once()

	client.handler(nil, &mockMessage{
		topic:   "beacon/coordinates",
		payload: []byte(`{"latitude":52.6,"longitude":39.6,"recorded_at":"2024-03-05T09:00:00Z"}`),
	})
}

func TestListener_DropsBadPayloads(t *testing.T) {
	l, _, playbackUC := newTestListener(t)

	l.handleMessage(nil, &mockMessage{topic: "beacon/coordinates", payload: []byte("not json")})

	playbackUC.EXPECT().Record(mock.Anything, mock.Anything, beaconSourceMQTT).
		Return(nil, domainerrors.ErrValidationFailed).Once()
	l.handleMessage(nil, &mockMessage{topic: "beacon/coordinates", payload: []byte(`{"latitude":120,"longitude":0}`)})
}

func TestListener_ConnectError(t *testing.T) {
	l, client, _ := newTestListener(t)
	client.connectErr = errors.New("connection refused")

	assert.Error(t, l.Serve(context.Background()))
}

func TestListener_StopDisconnects(t *testing.T) {
	l, client, _ := newTestListener(t)
	require.NoError(t, l.Serve(context.Background()))

	require.NoError(t, l.stop(context.Background()))
	assert.True(t, client.disconnected)
}

func TestNewListener_DisabledWithoutBroker(t *testing.T) {
	d := NewListener(ListenerParams{
		Lc:         fxtest.NewLifecycle(t),
		Cfg:        &config.Config{},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		PlaybackUC: mockUsecase.NewMockPlaybackUsecase(t),
	})

	_, ok := d.(*disabledListener)
	assert.True(t, ok)
	assert.NoError(t, d.Serve(context.Background()))
}
