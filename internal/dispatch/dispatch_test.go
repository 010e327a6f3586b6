package dispatch

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
	"github.com/stellarbridge/alpacaserver/internal/registry"
	"github.com/stellarbridge/alpacaserver/internal/request"
	"github.com/stellarbridge/alpacaserver/internal/schema"
)

type fakeSafetyMonitor struct {
	*device.Base
	safe      bool
	panicOnce bool
}

func (f *fakeSafetyMonitor) IsSafe() bool {
	if f.panicOnce {
		f.panicOnce = false
		panic("simulated driver fault")
	}
	return f.safe
}

func newFakeSafetyMonitor(number int, safe bool) *fakeSafetyMonitor {
	return &fakeSafetyMonitor{
		Base: device.NewBase("safetymonitor", number, "Test Safety Monitor", "fake", "fake driver", "1.0", 1, nil),
		safe: safe,
	}
}

func parse(t *testing.T, raw url.Values) *request.Parsed {
	t.Helper()
	p, err := request.Parse(raw)
	require.NoError(t, err)
	return p
}

func TestDispatchValue(t *testing.T) {
	dev := newFakeSafetyMonitor(0, true)
	reg := registry.New([]device.Device{dev})
	d := New(reg)

	env, err := d.Dispatch("safetymonitor", 0, "issafe", schema.GET, parse(t, url.Values{}))
	require.NoError(t, err)
	assert.Equal(t, int32(ascomerr.OK), env.ErrorNumber)
	assert.Equal(t, true, env.Fields["Value"])
	assert.Equal(t, uint32(1), env.ServerTransactionID)
}

func TestDispatchEchoesClientTransactionID(t *testing.T) {
	dev := newFakeSafetyMonitor(0, false)
	reg := registry.New([]device.Device{dev})
	d := New(reg)

	env, err := d.Dispatch("safetymonitor", 0, "issafe", schema.GET, parse(t, url.Values{"ClientTransactionID": {"42"}}))
	require.NoError(t, err)
	require.NotNil(t, env.ClientTransactionID)
	assert.Equal(t, uint32(42), *env.ClientTransactionID)
}

func TestDispatchUnknownDeviceType(t *testing.T) {
	reg := registry.New(nil)
	d := New(reg)

	_, err := d.Dispatch("spectrograph", 0, "connected", schema.GET, parse(t, url.Values{}))
	require.Error(t, err)
	assert.IsType(t, ErrUnknownDeviceType{}, err)
}

func TestDispatchUnknownDeviceNumber(t *testing.T) {
	dev := newFakeSafetyMonitor(0, true)
	reg := registry.New([]device.Device{dev})
	d := New(reg)

	_, err := d.Dispatch("safetymonitor", 1, "issafe", schema.GET, parse(t, url.Values{}))
	require.Error(t, err)
	assert.IsType(t, ErrUnknownDevice{}, err)
}

func TestDispatchActionNotImplemented(t *testing.T) {
	dev := newFakeSafetyMonitor(0, true)
	reg := registry.New([]device.Device{dev})
	d := New(reg)

	env, err := d.Dispatch("safetymonitor", 0, "issafe", schema.PUT, parse(t, url.Values{}))
	require.NoError(t, err)
	assert.Equal(t, int32(ascomerr.ActionNotImplemented), env.ErrorNumber)
}

func TestDispatchPoisonsDeviceOnPanic(t *testing.T) {
	dev := newFakeSafetyMonitor(0, true)
	dev.panicOnce = true
	reg := registry.New([]device.Device{dev})
	d := New(reg)

	env, err := d.Dispatch("safetymonitor", 0, "issafe", schema.GET, parse(t, url.Values{}))
	require.NoError(t, err)
	assert.Equal(t, int32(ascomerr.Unspecified), env.ErrorNumber)

	_, err = d.Dispatch("safetymonitor", 0, "issafe", schema.GET, parse(t, url.Values{}))
	require.Error(t, err)
	assert.IsType(t, ErrPoisoned{}, err)
}

func TestDispatchConcurrentDevicesDontBlockEachOther(t *testing.T) {
	devA := newFakeSafetyMonitor(0, true)
	devB := newFakeSafetyMonitor(1, false)
	reg := registry.New([]device.Device{devA, devB})
	d := New(reg)

	// Hold device A's lock while dispatching to device B: B must still answer.
	entryA, ok := reg.Lookup("safetymonitor", 0)
	require.True(t, ok)
	require.NoError(t, entryA.Lock())
	envB, err := d.Dispatch("safetymonitor", 1, "issafe", schema.GET, parse(t, url.Values{}))
	entryA.Unlock()
	require.NoError(t, err)
	envA, err := d.Dispatch("safetymonitor", 0, "issafe", schema.GET, parse(t, url.Values{}))
	require.NoError(t, err)

	assert.Equal(t, true, envA.Fields["Value"])
	assert.Equal(t, false, envB.Fields["Value"])
	assert.NotEqual(t, envA.ServerTransactionID, envB.ServerTransactionID)
}
