// Package mqtt delivers beacon coordinates published by the vehicle tracker.
package mqtt

import (
	"time"

	"dispatch/config"

	paho "github.com/eclipse/paho.mqtt.golang"
)

const (
	connectTimeout = 5 * time.Second
	disconnectWait = 250 // milliseconds
)

// Client is the subset of the paho client the listener needs.
type Client interface {
	Connect() paho.Token
	IsConnected() bool
	Disconnect(quiesce uint)
	Subscribe(topic string, qos byte, callback paho.MessageHandler) paho.Token
	Unsubscribe(topics ...string) paho.Token
}

// newClientOptions builds broker options with automatic reconnects.
// onConnect runs after every (re)connect so subscriptions survive broker restarts.
func newClientOptions(cfg *config.MQTTConfig, onConnect paho.OnConnectHandler, onLost paho.ConnectionLostHandler) *paho.ClientOptions {
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetConnectTimeout(connectTimeout).
		SetAutoReconnect(true).
		SetCleanSession(false).
		SetOnConnectHandler(onConnect).
		SetConnectionLostHandler(onLost)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	return opts
}

// waitToken waits for token and returns its error.
func waitToken(token paho.Token) error {
	token.Wait()

	return token.Error()
}
