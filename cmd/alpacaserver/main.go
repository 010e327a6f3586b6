// Package main is the entry point for the ASCOM Alpaca device server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/stellarbridge/alpacaserver/pkg/ascomserver"
)

func main() {
	configFile := flag.String("config", "", "Path to a YAML/JSON/TOML configuration file")
	listenAddress := flag.String("listen-address", "", "HTTP listen address for the ASCOM API (overrides config)")
	discoveryPort := flag.Int("discovery-port", 0, "ASCOM Alpaca UDP discovery port (overrides config)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (overrides config)")
	flag.Parse()

	config, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	if *listenAddress != "" {
		config.Server.ListenAddress = *listenAddress
	}
	if *discoveryPort != 0 {
		config.Server.DiscoveryPort = *discoveryPort
	}
	if *logLevel != "" {
		config.Logging.Level = *logLevel
	}

	if err := config.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	logger, err := buildLogger(config.Logging.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting ASCOM Alpaca server",
		zap.String("listen_address", config.Server.ListenAddress),
		zap.Int("discovery_port", config.Server.DiscoveryPort),
		zap.Int("device_count", len(config.Devices)))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	server, err := ascomserver.NewServer(ctx, config, logger)
	if err != nil {
		logger.Fatal("failed to create server", zap.Error(err))
	}

	if err := server.Start(ctx); err != nil {
		logger.Fatal("server exited with error", zap.Error(err))
	}

	logger.Info("ASCOM Alpaca server stopped")
}

// loadConfig reads configuration via viper, layering an explicit file over
// ascomserver.DefaultConfig()'s built-in defaults. With a file,
// ALPACASERVER_-prefixed environment variables override the keys that file
// sets. Without a file, the defaults are returned unchanged and the
// environment is not consulted.
func loadConfig(path string) (*ascomserver.Config, error) {
	config := ascomserver.DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix("alpacaserver")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		return config, nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return config, nil
}

func buildLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(levelOrDefault(level))); err != nil {
		return nil, err
	}
	return cfg.Build()
}

func levelOrDefault(level string) string {
	if level == "" {
		return "info"
	}
	return level
}
