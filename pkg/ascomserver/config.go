package ascomserver

import (
	"fmt"
	"time"

	"github.com/stellarbridge/alpacaserver/internal/auth"
)

// Config holds all configuration settings for the ASCOM Alpaca server. This
// structure is populated by viper from YAML/JSON/env, per the teacher's
// convention (see cmd/alpacaserver).
type Config struct {
	Server  ServerConfig   `mapstructure:"server"`
	Auth    auth.Config    `mapstructure:"auth"`
	CORS    CORSConfig     `mapstructure:"cors"`
	TLS     TLSConfig      `mapstructure:"tls"`
	Logging LoggingConfig  `mapstructure:"logging"`
	Audit   AuditConfig    `mapstructure:"audit"`
	Devices []DeviceConfig `mapstructure:"devices"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	ListenAddress       string        `mapstructure:"listen_address"`
	DiscoveryPort       int           `mapstructure:"discovery_port"`
	ServerName          string        `mapstructure:"server_name"`
	Manufacturer        string        `mapstructure:"manufacturer"`
	ManufacturerVersion string        `mapstructure:"manufacturer_version"`
	Location            string        `mapstructure:"location"`
	ReadTimeout         time.Duration `mapstructure:"read_timeout"`
	WriteTimeout        time.Duration `mapstructure:"write_timeout"`
	IdleTimeout         time.Duration `mapstructure:"idle_timeout"`
}

// CORSConfig contains Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// TLSConfig contains TLS/SSL configuration for HTTPS.
type TLSConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	CertFile   string `mapstructure:"cert_file"`
	KeyFile    string `mapstructure:"key_file"`
	MinVersion string `mapstructure:"min_version"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level            string   `mapstructure:"level"`
	Format           string   `mapstructure:"format"`
	OutputPaths      []string `mapstructure:"output_paths"`
	ErrorOutputPaths []string `mapstructure:"error_output_paths"`
}

// AuditConfig selects the transaction Recorder backend.
type AuditConfig struct {
	// Backend is "memory" (default, ring buffer) or "postgres".
	Backend string `mapstructure:"backend"`
	// RingSize is the memory backend's buffer capacity.
	RingSize int `mapstructure:"ring_size"`
	// PostgresDSN is the connection string used when Backend is "postgres".
	PostgresDSN string `mapstructure:"postgres_dsn"`
}

// DeviceConfig defines one simulated device exposed by the server.
type DeviceConfig struct {
	// Type is the ASCOM device type (telescope, camera, dome, etc.), always
	// lower-case per the Alpaca wire convention.
	Type string `mapstructure:"type"`

	// Name is the human-readable device name.
	Name string `mapstructure:"name"`

	// Backend selects the concrete implementation for device types that
	// support more than one (currently only observingconditions: "simulated"
	// or "mqtt"). Ignored by other device types.
	Backend string `mapstructure:"backend"`

	// MQTTBroker/MQTTTopic configure the "mqtt" backend for
	// observingconditions devices.
	MQTTBroker string `mapstructure:"mqtt_broker"`
	MQTTTopic  string `mapstructure:"mqtt_topic"`

	// FilterNames configures a filterwheel device's slot names, in order.
	FilterNames []string `mapstructure:"filter_names"`

	// MaxStep configures a focuser device's travel range.
	MaxStep int `mapstructure:"max_step"`

	// SwitchCount configures a switch device's number of lines.
	SwitchCount int `mapstructure:"switch_count"`

	// SensorWidth/SensorHeight configure a camera device's simulated sensor.
	SensorWidth  int `mapstructure:"sensor_width"`
	SensorHeight int `mapstructure:"sensor_height"`
}

// Validate checks the configuration for errors and fills in defaults.
func (c *Config) Validate() error {
	if c.Server.ListenAddress == "" {
		c.Server.ListenAddress = fmt.Sprintf(":%d", DefaultAPIPort)
	}
	if c.Server.DiscoveryPort == 0 {
		c.Server.DiscoveryPort = DefaultDiscoveryPort
	}
	if c.Server.ServerName == "" {
		c.Server.ServerName = DefaultServerName
	}
	if c.Server.Manufacturer == "" {
		c.Server.Manufacturer = DefaultManufacturer
	}
	if c.Server.ManufacturerVersion == "" {
		c.Server.ManufacturerVersion = "1.0.0"
	}
	if c.Server.Location == "" {
		c.Server.Location = DefaultLocation
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 30 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60 * time.Second
	}

	if c.Auth.Mode == "" {
		c.Auth.Mode = auth.ModeNone
	}
	switch c.Auth.Mode {
	case auth.ModeNone, auth.ModeBasic, auth.ModeJWT:
	default:
		return fmt.Errorf("invalid auth mode: %s (must be 'none', 'basic', or 'jwt')", c.Auth.Mode)
	}

	if c.CORS.Enabled {
		if len(c.CORS.AllowedOrigins) == 0 {
			c.CORS.AllowedOrigins = []string{"*"}
		}
		if len(c.CORS.AllowedMethods) == 0 {
			c.CORS.AllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
		}
		if len(c.CORS.AllowedHeaders) == 0 {
			c.CORS.AllowedHeaders = []string{"*"}
		}
		if c.CORS.MaxAge == 0 {
			c.CORS.MaxAge = 3600
		}
	}

	if c.Audit.Backend == "" {
		c.Audit.Backend = "memory"
	}
	switch c.Audit.Backend {
	case "memory", "postgres":
	default:
		return fmt.Errorf("invalid audit backend: %s (must be 'memory' or 'postgres')", c.Audit.Backend)
	}
	if c.Audit.RingSize == 0 {
		c.Audit.RingSize = 256
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if len(c.Logging.OutputPaths) == 0 {
		c.Logging.OutputPaths = []string{"stdout"}
	}
	if len(c.Logging.ErrorOutputPaths) == 0 {
		c.Logging.ErrorOutputPaths = []string{"stderr"}
	}

	if len(c.Devices) == 0 {
		return fmt.Errorf("at least one device must be configured")
	}
	for i, dev := range c.Devices {
		if dev.Type == "" {
			return fmt.Errorf("device %d: type is required", i)
		}
		if dev.Name == "" {
			c.Devices[i].Name = fmt.Sprintf("%s #%d", dev.Type, i)
		}
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults and a single
// simulated telescope, for quick local evaluation.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddress:       fmt.Sprintf(":%d", DefaultAPIPort),
			DiscoveryPort:       DefaultDiscoveryPort,
			ServerName:          DefaultServerName,
			Manufacturer:        DefaultManufacturer,
			ManufacturerVersion: "1.0.0",
			Location:            DefaultLocation,
			ReadTimeout:         30 * time.Second,
			WriteTimeout:        30 * time.Second,
			IdleTimeout:         60 * time.Second,
		},
		Auth: auth.Config{Mode: auth.ModeNone},
		CORS: CORSConfig{
			Enabled:          true,
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: false,
			MaxAge:           3600,
		},
		Logging: LoggingConfig{
			Level:            "info",
			Format:           "json",
			OutputPaths:      []string{"stdout"},
			ErrorOutputPaths: []string{"stderr"},
		},
		Audit: AuditConfig{Backend: "memory", RingSize: 256},
		Devices: []DeviceConfig{
			{Type: "telescope", Name: "Simulated Telescope"},
		},
	}
}
