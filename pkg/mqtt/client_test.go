package mqtt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validConfig() *Config {
	return &Config{
		BrokerURL:            "tcp://weather-station.local:1883",
		ClientID:             "alpacaserver-obscond-0",
		KeepAlive:            30 * time.Second,
		ConnectTimeout:       5 * time.Second,
		AutoReconnect:        true,
		MaxReconnectInterval: time.Minute,
	}
}

func TestNewClientRejectsNilConfig(t *testing.T) {
	client, err := NewClient(nil, zap.NewNop())
	require.Error(t, err)
	assert.Nil(t, client)
}

func TestNewClientBuildsDisconnectedClient(t *testing.T) {
	client, err := NewClient(validConfig(), zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.NotNil(t, client.conn)
	assert.False(t, client.IsConnected())
}

func TestNewClientDefaultsNilLogger(t *testing.T) {
	client, err := NewClient(validConfig(), nil)
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.NotNil(t, client.logger)
}

func TestPublishRequiresConnection(t *testing.T) {
	client, err := NewClient(validConfig(), zap.NewNop())
	require.NoError(t, err)

	err = client.Publish("observingconditions/readings", 0, false, []byte(`{}`))
	assert.Error(t, err)
}

func TestSubscribeRequiresConnection(t *testing.T) {
	client, err := NewClient(validConfig(), zap.NewNop())
	require.NoError(t, err)

	err = client.Subscribe("observingconditions/readings", 0, func(string, []byte) error { return nil })
	assert.Error(t, err)
}
