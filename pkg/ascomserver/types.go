// Package ascomserver provides a native ASCOM Alpaca REST API server
// implementation: UDP discovery, the management API, and the generic
// per-device-type HTTP surface that forwards into internal/dispatch.
//
// The ASCOM Alpaca protocol is a RESTful HTTP API standard for astronomical
// equipment developed by the ASCOM Initiative (https://ascom-standards.org/).
package ascomserver

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/stellarbridge/alpacaserver/internal/audit"
	"github.com/stellarbridge/alpacaserver/internal/dispatch"
	"github.com/stellarbridge/alpacaserver/internal/registry"
)

// Constants for ASCOM Alpaca protocol compliance.
const (
	// AlpacaAPIVersion is the supported Alpaca API version.
	AlpacaAPIVersion = 1

	// AlpacaDiscoveryMessage is the UDP broadcast message used for device discovery.
	AlpacaDiscoveryMessage = "alpacadiscovery1"

	// DefaultDiscoveryPort is the standard UDP port for ASCOM Alpaca discovery broadcasts.
	DefaultDiscoveryPort = 32227

	// DefaultAPIPort is the default HTTP port for the ASCOM Alpaca REST API.
	DefaultAPIPort = 11111

	// DefaultServerName is the default name reported in the management API.
	DefaultServerName = "alpacaserver"

	// DefaultManufacturer is the default manufacturer name.
	DefaultManufacturer = "stellarbridge"

	// DefaultLocation is the default location string.
	DefaultLocation = "Observatory"

	// RequestTimeout is the default HTTP request timeout.
	RequestTimeout = 30 * time.Second

	// DiscoveryTimeout is how long to wait for discovery responses.
	DiscoveryTimeout = 5 * time.Second
)

// Server is the running ASCOM Alpaca HTTP + UDP discovery server. It holds
// no device logic of its own — every action is forwarded to dispatcher,
// which resolves it against registry.
type Server struct {
	config     *Config
	logger     *zap.Logger
	registry   *registry.Registry
	dispatcher *dispatch.Dispatcher
	auditor    audit.Recorder
	discovery  *DiscoveryService
	httpServer *http.Server
}

// DiscoveryService answers the ASCOM Alpaca UDP discovery broadcast: a
// client sends AlpacaDiscoveryMessage to port, and every Alpaca server on
// the network that hears it answers with the HTTP port its REST API
// listens on, so the client never has to be told the address up front.
type DiscoveryService struct {
	port    int
	apiPort int
	logger  *zap.Logger
	cancel  context.CancelFunc
	done    chan struct{}
}

// DiscoveryResponse is the JSON response sent to discovery broadcasts.
type DiscoveryResponse struct {
	AlpacaPort int `json:"AlpacaPort"`
}

// DeviceKey generates a unique key for a device based on type and number,
// used only for log correlation (registry itself keys on (type, number)
// directly rather than a formatted string).
func DeviceKey(deviceType string, deviceNumber int) string {
	return deviceType + "-" + strconv.Itoa(deviceNumber)
}
