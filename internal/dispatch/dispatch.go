// Package dispatch implements the request dispatcher (C5): given a parsed
// device type/number/action/verb, it locates the device, resolves the
// action against the schema's action table, invokes the handler under the
// device's lock, and packages the result into a response envelope.
//
// This is the one place spec §4.5's eight-step algorithm lives; the gin
// adapter in pkg/ascomserver only does HTTP-shape translation around it.
package dispatch

import (
	"fmt"

	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/envelope"
	"github.com/stellarbridge/alpacaserver/internal/registry"
	"github.com/stellarbridge/alpacaserver/internal/request"
	"github.com/stellarbridge/alpacaserver/internal/schema"
)

// Interfaces maps each valid Alpaca device type tag to its resolved action
// table. Device type tags are case-sensitive lower-case per §4.1; a URL
// segment that doesn't match exactly is not a known device type, never a
// fuzzy match.
var Interfaces = map[string]*schema.Interface{
	"camera":              schema.Camera,
	"covercalibrator":     schema.CoverCalibrator,
	"dome":                schema.Dome,
	"filterwheel":         schema.FilterWheel,
	"focuser":             schema.Focuser,
	"observingconditions": schema.ObservingConditions,
	"rotator":             schema.Rotator,
	"safetymonitor":       schema.SafetyMonitor,
	"switch":              schema.Switch,
	"telescope":           schema.Telescope,
}

// ErrUnknownDeviceType reports a device_type segment with no corresponding
// interface — the adapter maps this to HTTP 400, not an ASCOM error, since
// it describes a malformed request rather than a device-level failure.
type ErrUnknownDeviceType struct{ Type string }

func (e ErrUnknownDeviceType) Error() string {
	return fmt.Sprintf("unknown device type %q", e.Type)
}

// ErrUnknownDevice reports a (type, number) pair with no configured device;
// the adapter maps this to HTTP 404 per §4.5 step 1.
type ErrUnknownDevice struct {
	Type   string
	Number int
}

func (e ErrUnknownDevice) Error() string {
	return fmt.Sprintf("no %s device numbered %d", e.Type, e.Number)
}

// ErrPoisoned reports a device whose lock was poisoned by a previous
// handler panic; the adapter maps this to HTTP 500 per §4.6.
type ErrPoisoned struct {
	Type   string
	Number int
}

func (e ErrPoisoned) Error() string {
	return registry.ErrPoisoned().Error()
}

// Dispatcher ties together the device registry, the schema's action tables
// and the transaction ID counter to answer one Alpaca device action call.
type Dispatcher struct {
	Registry *registry.Registry
	Counter  *envelope.Counter
}

// New builds a Dispatcher over reg, with its own transaction counter.
func New(reg *registry.Registry) *Dispatcher {
	return &Dispatcher{Registry: reg, Counter: &envelope.Counter{}}
}

// Dispatch runs the full C5 algorithm for one action call and returns the
// envelope ready to serialize, or a plain Go error for the cases that are
// HTTP-transport failures rather than ASCOM-level ones (unknown device
// type, unknown device, poisoned device).
func (d *Dispatcher) Dispatch(deviceType string, deviceNumber int, action string, verb schema.Verb, params *request.Parsed) (envelope.Envelope, error) {
	iface, ok := Interfaces[deviceType]
	if !ok {
		return envelope.Envelope{}, ErrUnknownDeviceType{Type: deviceType}
	}

	entry, ok := d.Registry.Lookup(deviceType, deviceNumber)
	if !ok {
		return envelope.Envelope{}, ErrUnknownDevice{Type: deviceType, Number: deviceNumber}
	}

	if err := entry.Lock(); err != nil {
		return envelope.Envelope{}, ErrPoisoned{Type: deviceType, Number: deviceNumber}
	}

	result, aerr := d.invoke(entry, iface, action, verb, params)

	return d.pack(params, result, aerr), nil
}

// invoke calls the matched handler under the device's lock, recovering from
// a handler panic by poisoning the device rather than letting it take down
// the whole server (§4.6): one misbehaving driver must not affect requests
// to any other device.
func (d *Dispatcher) invoke(entry *registry.Entry, iface *schema.Interface, action string, verb schema.Verb, params *request.Parsed) (res schema.Result, aerr *ascomerr.Error) {
	defer func() {
		if r := recover(); r != nil {
			entry.Poison()
			aerr = ascomerr.Unspecifiedf("panic in device handler: %v", r)
			return
		}
		entry.Unlock()
	}()

	act, ok := iface.Lookup(action, verb)
	if !ok {
		return schema.Result{}, ascomerr.ActionNotImplementedErr()
	}
	return act.Handler(entry.Device, params)
}

// pack builds the response envelope for a handler result, allocating a new
// server transaction ID and echoing the client's transaction ID only if it
// supplied one, per §4.2.
func (d *Dispatcher) pack(params *request.Parsed, result schema.Result, aerr *ascomerr.Error) envelope.Envelope {
	env := envelope.Envelope{
		ClientTransactionID: params.ClientTransactionID,
		ServerTransactionID: d.Counter.Next(),
	}
	if aerr != nil {
		env.ErrorNumber = int32(aerr.Code)
		env.ErrorMessage = aerr.Message
		return env
	}
	switch result.Kind {
	case schema.ResultVoid:
		// Fields stays nil; envelope carries only the transaction/error fields.
	case schema.ResultValue:
		env.Fields = envelope.Scalar(result.Value)
	case schema.ResultObject:
		env.Fields = result.Object
	}
	return env
}
