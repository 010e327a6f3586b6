package obscond

import (
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/stellarbridge/alpacaserver/pkg/mqtt"
)

// mqttPayload is the wire shape expected on the subscribed topic: a flat
// JSON object of whichever properties the weather station publishes. Any
// field omitted (or explicitly null) keeps its previous value, which stays
// unset until some message carries it.
type mqttPayload struct {
	CloudCover     *float64 `json:"cloud_cover"`
	DewPoint       *float64 `json:"dew_point"`
	Humidity       *float64 `json:"humidity"`
	Pressure       *float64 `json:"pressure"`
	RainRate       *float64 `json:"rain_rate"`
	SkyBrightness  *float64 `json:"sky_brightness"`
	SkyQuality     *float64 `json:"sky_quality"`
	SkyTemperature *float64 `json:"sky_temperature"`
	StarFWHM       *float64 `json:"star_fwhm"`
	Temperature    *float64 `json:"temperature"`
	WindDirection  *float64 `json:"wind_direction"`
	WindGust       *float64 `json:"wind_gust"`
	WindSpeed      *float64 `json:"wind_speed"`
}

// MQTTSource subscribes to a topic of JSON weather-station readings and
// keeps the most recent one in memory; Refresh is a no-op since updates
// arrive asynchronously off the wire.
type MQTTSource struct {
	client *mqtt.Client
	topic  string
	logger *zap.Logger

	mu      sync.Mutex
	reading Reading
}

// NewMQTTSource connects to the broker described by cfg and subscribes to
// topic, applying incoming messages to the live Reading as they arrive.
func NewMQTTSource(cfg *mqtt.Config, topic string, logger *zap.Logger) (*MQTTSource, error) {
	client, err := mqtt.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("obscond: building mqtt client: %w", err)
	}
	if err := client.Connect(); err != nil {
		return nil, fmt.Errorf("obscond: connecting to broker: %w", err)
	}

	s := &MQTTSource{client: client, topic: topic, logger: logger}
	if err := client.Subscribe(topic, 0, s.handle); err != nil {
		return nil, fmt.Errorf("obscond: subscribing to %s: %w", topic, err)
	}
	return s, nil
}

func (s *MQTTSource) handle(topic string, payload []byte) error {
	var p mqttPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("decoding weather payload: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if p.CloudCover != nil {
		s.reading.CloudCover = p.CloudCover
	}
	if p.DewPoint != nil {
		s.reading.DewPoint = p.DewPoint
	}
	if p.Humidity != nil {
		s.reading.Humidity = p.Humidity
	}
	if p.Pressure != nil {
		s.reading.Pressure = p.Pressure
	}
	if p.RainRate != nil {
		s.reading.RainRate = p.RainRate
	}
	if p.SkyBrightness != nil {
		s.reading.SkyBrightness = p.SkyBrightness
	}
	if p.SkyQuality != nil {
		s.reading.SkyQuality = p.SkyQuality
	}
	if p.SkyTemperature != nil {
		s.reading.SkyTemperature = p.SkyTemperature
	}
	if p.StarFWHM != nil {
		s.reading.StarFWHM = p.StarFWHM
	}
	if p.Temperature != nil {
		s.reading.Temperature = p.Temperature
	}
	if p.WindDirection != nil {
		s.reading.WindDirection = p.WindDirection
	}
	if p.WindGust != nil {
		s.reading.WindGust = p.WindGust
	}
	if p.WindSpeed != nil {
		s.reading.WindSpeed = p.WindSpeed
	}
	return nil
}

func (s *MQTTSource) Latest() Reading {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reading
}

// Refresh is a no-op: readings are pushed by the broker, not pulled.
func (s *MQTTSource) Refresh() error { return nil }

// Close disconnects the underlying MQTT client.
func (s *MQTTSource) Close() {
	s.client.Disconnect()
}
