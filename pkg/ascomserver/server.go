package ascomserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/stellarbridge/alpacaserver/internal/audit"
	"github.com/stellarbridge/alpacaserver/internal/auth"
	"github.com/stellarbridge/alpacaserver/internal/camera"
	"github.com/stellarbridge/alpacaserver/internal/device"
	"github.com/stellarbridge/alpacaserver/internal/devices/covercalibrator"
	"github.com/stellarbridge/alpacaserver/internal/devices/dome"
	"github.com/stellarbridge/alpacaserver/internal/devices/filterwheel"
	"github.com/stellarbridge/alpacaserver/internal/devices/focuser"
	"github.com/stellarbridge/alpacaserver/internal/devices/obscond"
	"github.com/stellarbridge/alpacaserver/internal/devices/rotator"
	"github.com/stellarbridge/alpacaserver/internal/devices/safetymonitor"
	"github.com/stellarbridge/alpacaserver/internal/devices/switchdevice"
	"github.com/stellarbridge/alpacaserver/internal/devices/telescope"
	"github.com/stellarbridge/alpacaserver/internal/dispatch"
	"github.com/stellarbridge/alpacaserver/internal/registry"
	"github.com/stellarbridge/alpacaserver/pkg/mqtt"
)

// NewServer creates a new ASCOM Alpaca server instance with the given configuration.
// The server must be started with Start() before it will accept requests.
func NewServer(ctx context.Context, config *Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	typeCounters := map[string]int{}
	devices := make([]device.Device, 0, len(config.Devices))
	for i, dc := range config.Devices {
		number := typeCounters[dc.Type]
		typeCounters[dc.Type] = number + 1

		d, err := buildDevice(number, dc, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to build device %s #%d: %w", dc.Type, i, err)
		}
		devices = append(devices, d)
	}

	reg := registry.New(devices)
	dispatcher := dispatch.New(reg)

	auditor, err := buildAuditor(ctx, config.Audit, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to configure audit backend: %w", err)
	}

	server := &Server{
		config:     config,
		logger:     logger.With(zap.String("component", "ascom_server")),
		registry:   reg,
		dispatcher: dispatcher,
		auditor:    auditor,
	}

	server.logger.Info("ASCOM Alpaca server created",
		zap.Int("device_count", len(devices)),
		zap.String("listen_address", config.Server.ListenAddress))

	return server, nil
}

// buildDevice instantiates the concrete simulator for one configured device.
// number is this device's zero-based ordinal within its own type tag,
// assigned by the caller in configuration order.
func buildDevice(number int, dc DeviceConfig, logger *zap.Logger) (device.Device, error) {
	switch dc.Type {
	case "telescope":
		return telescope.New(number, dc.Name), nil
	case "dome":
		return dome.New(number, dc.Name), nil
	case "rotator":
		return rotator.New(number, dc.Name), nil
	case "safetymonitor":
		return safetymonitor.New(number, dc.Name), nil
	case "focuser":
		maxStep := dc.MaxStep
		if maxStep == 0 {
			maxStep = 100000
		}
		return focuser.New(number, dc.Name, maxStep), nil
	case "filterwheel":
		names := dc.FilterNames
		if len(names) == 0 {
			names = []string{"Red", "Green", "Blue", "Luminance"}
		}
		return filterwheel.New(number, dc.Name, names), nil
	case "switch":
		count := dc.SwitchCount
		if count == 0 {
			count = 8
		}
		return switchdevice.New(number, dc.Name, count), nil
	case "covercalibrator":
		return covercalibrator.New(number, dc.Name), nil
	case "camera":
		width, height := dc.SensorWidth, dc.SensorHeight
		if width == 0 {
			width = 1024
		}
		if height == 0 {
			height = 1024
		}
		native := camera.NewSimulator(width, height)
		return camera.New(number, dc.Name, native)
	case "observingconditions":
		return buildObservingConditions(number, dc, logger)
	default:
		return nil, fmt.Errorf("unknown device type %q", dc.Type)
	}
}

// buildObservingConditions branches on DeviceConfig.Backend: "mqtt" wires a
// live weather-station feed, anything else (including the empty default)
// falls back to the simulated source.
func buildObservingConditions(number int, dc DeviceConfig, logger *zap.Logger) (device.Device, error) {
	if dc.Backend != "mqtt" {
		return obscond.New(number, dc.Name, obscond.NewSimulatedSource()), nil
	}

	src, err := obscond.NewMQTTSource(&mqtt.Config{
		BrokerURL:            dc.MQTTBroker,
		ClientID:             fmt.Sprintf("alpacaserver-obscond-%d", number),
		KeepAlive:            30 * time.Second,
		ConnectTimeout:       10 * time.Second,
		AutoReconnect:        true,
		MaxReconnectInterval: time.Minute,
	}, dc.MQTTTopic, logger)
	if err != nil {
		return nil, fmt.Errorf("mqtt observingconditions source: %w", err)
	}
	return obscond.New(number, dc.Name, src), nil
}

func buildAuditor(ctx context.Context, cfg AuditConfig, logger *zap.Logger) (audit.Recorder, error) {
	switch cfg.Backend {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return audit.NewPGRecorder(pool, logger), nil
	default:
		return audit.NewRingRecorder(cfg.RingSize), nil
	}
}

// Start starts the ASCOM Alpaca server and begins accepting requests.
// This method blocks until the server is shut down or an error occurs.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("Starting ASCOM Alpaca server")

	apiPort := extractPort(s.config.Server.ListenAddress)
	if apiPort == 0 {
		apiPort = DefaultAPIPort
	}

	s.discovery = NewDiscoveryService(s.config.Server.DiscoveryPort, apiPort, s.logger)
	if err := s.discovery.Start(); err != nil {
		return fmt.Errorf("failed to start discovery service: %w", err)
	}

	s.logger.Info("Discovery service started",
		zap.Int("udp_port", s.config.Server.DiscoveryPort),
		zap.Int("api_port", apiPort))

	router := s.setupRouter()

	s.httpServer = &http.Server{
		Addr:         s.config.Server.ListenAddress,
		Handler:      router,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	serverErrors := make(chan error, 1)

	go func() {
		defer wg.Done()
		s.logger.Info("HTTP server starting", zap.String("address", s.httpServer.Addr))
		if s.config.TLS.Enabled {
			serverErrors <- s.httpServer.ListenAndServeTLS(s.config.TLS.CertFile, s.config.TLS.KeyFile)
		} else {
			serverErrors <- s.httpServer.ListenAndServe()
		}
	}()

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("HTTP server error: %w", err)
		}
	case <-ctx.Done():
		s.logger.Info("Shutdown signal received")
	}

	s.logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Error during HTTP server shutdown", zap.Error(err))
	}

	s.discovery.Stop()
	wg.Wait()

	s.logger.Info("Server shutdown complete")
	return nil
}

// setupRouter initializes the Gin router with all middleware and routes.
func (s *Server) setupRouter() *gin.Engine {
	if s.config.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(ErrorHandlerMiddleware(s.logger))
	router.Use(LoggingMiddleware(s.logger))

	if s.config.CORS.Enabled {
		router.Use(CORSMiddleware(s.config.CORS))
	}

	router.Use(auth.Middleware(s.config.Auth, s.logger))

	managementAPI := NewManagementAPI(s)
	managementAPI.RegisterRoutes(router.Group(""))

	deviceRoutes := NewDeviceRoutes(s)
	deviceRoutes.RegisterRoutes(router.Group(""))

	s.logger.Info("HTTP router configured",
		zap.Bool("cors_enabled", s.config.CORS.Enabled),
		zap.String("auth_mode", string(s.config.Auth.Mode)),
		zap.Bool("tls_enabled", s.config.TLS.Enabled))

	return router
}

// extractPort extracts the port number from a listen address string.
// Handles formats like ":8080", "0.0.0.0:8080", "localhost:8080".
// Returns 0 if the port cannot be extracted.
func extractPort(address string) int {
	colonIndex := -1
	for i := len(address) - 1; i >= 0; i-- {
		if address[i] == ':' {
			colonIndex = i
			break
		}
	}
	if colonIndex == -1 {
		return 0
	}
	portStr := address[colonIndex+1:]
	var port int
	_, err := fmt.Sscanf(portStr, "%d", &port)
	if err != nil {
		return 0
	}
	return port
}
