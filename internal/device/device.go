// Package device defines the capability surface every Alpaca device
// implements (C7): the common base every device type shares, plus one
// capability interface per device type that the schema's action handlers
// type-assert a registered device against.
package device

import (
	"sync"

	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
)

// Device is the minimum surface the registry and dispatcher require of
// every registered device, regardless of type. Type-specific behavior is
// reached by type-asserting a Device to one of the capability interfaces
// declared alongside it (CameraDevice, TelescopeDevice, ...).
type Device interface {
	DeviceType() string
	DeviceNumber() int

	Name() string
	Description() string
	DriverInfo() string
	DriverVersion() string
	InterfaceVersion() int
	SupportedActions() []string

	Connected() bool
	SetConnected(bool) *ascomerr.Error

	// Action, CommandBlind, CommandBool and CommandString are the raw
	// vendor-specific passthroughs every ASCOM device must expose even when
	// it implements none of them; the default Base implementation reports
	// ActionNotImplemented / NotImplemented for all of them.
	Action(action string, parameters string) (string, *ascomerr.Error)
	CommandBlind(command string, raw bool) *ascomerr.Error
	CommandBool(command string, raw bool) (bool, *ascomerr.Error)
	CommandString(command string, raw bool) (string, *ascomerr.Error)
}

// Base implements the common (__common__) interface's bookkeeping so each
// concrete device type only has to supply its identity strings and embed
// Base for the rest. It is deliberately not thread-safe beyond the
// connected flag — the registry's per-device lock (C6) serializes all other
// access.
type Base struct {
	deviceType        string
	deviceNumber      int
	name              string
	description       string
	driverInfo        string
	driverVersion     string
	interfaceVersion  int
	supportedActions  []string
	connectedMu       sync.RWMutex
	connected         bool
}

// NewBase constructs the common bookkeeping for a device. supportedActions
// lists the custom (non-ASCOM-standard) action names this device answers
// via Action/CommandBlind/CommandBool/CommandString; it is what
// SupportedActions() reports to clients doing capability discovery.
func NewBase(deviceType string, deviceNumber int, name, description, driverInfo, driverVersion string, interfaceVersion int, supportedActions []string) *Base {
	return &Base{
		deviceType:       deviceType,
		deviceNumber:     deviceNumber,
		name:             name,
		description:      description,
		driverInfo:       driverInfo,
		driverVersion:    driverVersion,
		interfaceVersion: interfaceVersion,
		supportedActions: supportedActions,
	}
}

func (b *Base) DeviceType() string   { return b.deviceType }
func (b *Base) DeviceNumber() int    { return b.deviceNumber }
func (b *Base) Name() string         { return b.name }
func (b *Base) Description() string  { return b.description }
func (b *Base) DriverInfo() string   { return b.driverInfo }
func (b *Base) DriverVersion() string { return b.driverVersion }
func (b *Base) InterfaceVersion() int { return b.interfaceVersion }

func (b *Base) SupportedActions() []string {
	out := make([]string, len(b.supportedActions))
	copy(out, b.supportedActions)
	return out
}

func (b *Base) Connected() bool {
	b.connectedMu.RLock()
	defer b.connectedMu.RUnlock()
	return b.connected
}

func (b *Base) SetConnected(v bool) *ascomerr.Error {
	b.connectedMu.Lock()
	defer b.connectedMu.Unlock()
	b.connected = v
	return nil
}

// Action is the default implementation for devices that support no custom
// actions; a concrete device overrides it when SupportedActions is
// non-empty.
func (b *Base) Action(action string, parameters string) (string, *ascomerr.Error) {
	return "", ascomerr.ActionNotImplementedErr()
}

func (b *Base) CommandBlind(command string, raw bool) *ascomerr.Error {
	return ascomerr.New(ascomerr.NotImplemented, "")
}

func (b *Base) CommandBool(command string, raw bool) (bool, *ascomerr.Error) {
	return false, ascomerr.New(ascomerr.NotImplemented, "")
}

func (b *Base) CommandString(command string, raw bool) (string, *ascomerr.Error) {
	return "", ascomerr.New(ascomerr.NotImplemented, "")
}
