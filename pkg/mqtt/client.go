// Package mqtt wraps eclipse/paho.mqtt.golang with the reconnect and
// JSON-publish conveniences the observingconditions MQTT feed needs,
// without exposing the underlying client's wider option surface.
package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

// disconnectQuiesce is how long Disconnect waits for in-flight work to
// drain before the connection is torn down.
const disconnectQuiesce = 250 * time.Millisecond

// Config describes one broker connection.
type Config struct {
	// BrokerURL is the broker address, e.g. "tcp://weather-station:1883".
	BrokerURL string
	// ClientID identifies this connection to the broker.
	ClientID string
	// Username/Password authenticate against the broker; both optional.
	Username string
	Password string

	KeepAlive            time.Duration
	ConnectTimeout       time.Duration
	AutoReconnect        bool
	MaxReconnectInterval time.Duration
}

// MessageHandler processes one received message; a non-nil error is logged
// but never surfaced to the broker (the library has no negative-ack path).
type MessageHandler func(topic string, payload []byte) error

// Client is a broker connection plus the handful of pub/sub operations the
// observingconditions feed and any future MQTT-backed device need.
type Client struct {
	conn   paho.Client
	cfg    *Config
	logger *zap.Logger
}

// NewClient builds a disconnected Client from cfg. Call Connect before
// Publish/Subscribe.
func NewClient(cfg *Config, logger *zap.Logger) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mqtt: config is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "mqtt"), zap.String("broker", cfg.BrokerURL))

	opts := paho.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(cfg.ClientID).
		SetKeepAlive(cfg.KeepAlive).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetAutoReconnect(cfg.AutoReconnect).
		SetMaxReconnectInterval(cfg.MaxReconnectInterval)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	opts.SetConnectionLostHandler(func(paho.Client, error) {
		logger.Warn("broker connection lost, will auto-reconnect")
	})
	opts.SetReconnectingHandler(func(paho.Client, *paho.ClientOptions) {
		logger.Info("reconnecting to broker")
	})
	opts.SetOnConnectHandler(func(paho.Client) {
		logger.Info("connected to broker")
	})

	return &Client{conn: paho.NewClient(opts), cfg: cfg, logger: logger}, nil
}

// Connect blocks until the broker handshake completes or ConnectTimeout
// elapses.
func (c *Client) Connect() error {
	token := c.conn.Connect()
	if !token.WaitTimeout(c.cfg.ConnectTimeout) {
		return fmt.Errorf("mqtt: connect to %s timed out after %s", c.cfg.BrokerURL, c.cfg.ConnectTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt: connect to %s: %w", c.cfg.BrokerURL, err)
	}
	return nil
}

// Disconnect closes the connection, letting any in-flight publish/subscribe
// finish within disconnectQuiesce.
func (c *Client) Disconnect() {
	c.conn.Disconnect(uint(disconnectQuiesce.Milliseconds()))
}

func (c *Client) IsConnected() bool { return c.conn.IsConnected() }

// Publish sends payload to topic; the call blocks until the broker
// acknowledges (or rejects) delivery at the given QoS.
func (c *Client) Publish(topic string, qos byte, retained bool, payload []byte) error {
	if !c.IsConnected() {
		return fmt.Errorf("mqtt: publish to %s: not connected", topic)
	}
	token := c.conn.Publish(topic, qos, retained, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt: publish to %s: %w", topic, err)
	}
	return nil
}

// PublishJSON marshals payload and publishes the result.
func (c *Client) PublishJSON(topic string, qos byte, retained bool, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("mqtt: marshal payload for %s: %w", topic, err)
	}
	return c.Publish(topic, qos, retained, data)
}

// Subscribe registers handler for every message delivered on topic.
// handler's errors are logged, not returned to the caller — they surface
// asynchronously off the broker's own delivery thread.
func (c *Client) Subscribe(topic string, qos byte, handler MessageHandler) error {
	if !c.IsConnected() {
		return fmt.Errorf("mqtt: subscribe to %s: not connected", topic)
	}
	token := c.conn.Subscribe(topic, qos, func(_ paho.Client, msg paho.Message) {
		if err := handler(msg.Topic(), msg.Payload()); err != nil {
			c.logger.Error("message handler failed",
				zap.String("topic", msg.Topic()), zap.Error(err))
		}
	})
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt: subscribe to %s: %w", topic, err)
	}
	return nil
}

// Unsubscribe stops delivery on topic.
func (c *Client) Unsubscribe(topic string) error {
	if !c.IsConnected() {
		return fmt.Errorf("mqtt: unsubscribe from %s: not connected", topic)
	}
	token := c.conn.Unsubscribe(topic)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt: unsubscribe from %s: %w", topic, err)
	}
	return nil
}
