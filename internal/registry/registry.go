// Package registry implements the device registry (C6): the mapping from
// (device type tag, device number) to a live device instance, with a
// per-device lock so a single slow or misbehaving device never blocks
// requests to any other device.
//
// The registry is built once at startup from the configured device list and
// is read-only after that — adding or removing devices means restarting the
// server, matching the teacher's own config-at-boot convention
// (pkg/ascomserver/config.go).
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/stellarbridge/alpacaserver/internal/device"
)

// Entry is one registered device plus its own mutex and poison flag. A
// poisoned entry refuses all further access: a handler panic is evidence the
// device's internal state may be inconsistent, and letting subsequent
// requests through could compound that rather than surface it.
type Entry struct {
	Type   string
	Number int
	Device device.Device

	mu       sync.Mutex
	poisoned bool
}

// Lock acquires the device's lock. It returns an error instead of the lock
// if the device was poisoned by a prior handler panic.
func (e *Entry) Lock() error {
	e.mu.Lock()
	if e.poisoned {
		e.mu.Unlock()
		return errPoisoned
	}
	return nil
}

func (e *Entry) Unlock() {
	e.mu.Unlock()
}

// Poison marks the device permanently unusable and releases the lock. Call
// it from a recover() in the dispatcher when a handler panics while holding
// the lock.
func (e *Entry) Poison() {
	e.poisoned = true
	e.mu.Unlock()
}

var errPoisoned = fmt.Errorf("this device can't be accessed anymore due to a previous fatal error")

// ErrPoisoned is returned by Lock when the device has been poisoned.
func ErrPoisoned() error { return errPoisoned }

type key struct {
	typeTag string
	number  int
}

// Registry looks up devices by (type tag, device number) and lists the
// devices of a given type in device-number order. The numbers are the
// devices' own; the server hands them out as contiguous zero-based indexes
// per type in configuration order before building the Registry.
type Registry struct {
	entries map[key]*Entry
	byType  map[string][]*Entry
}

// New builds a Registry from devices, keying each on its own DeviceType()
// and DeviceNumber(). It does not assign or renumber devices.
func New(devices []device.Device) *Registry {
	r := &Registry{
		entries: map[key]*Entry{},
		byType:  map[string][]*Entry{},
	}
	counts := map[string]int{}
	for _, d := range devices {
		tag := d.DeviceType()
		n := counts[tag]
		counts[tag] = n + 1
		e := &Entry{Type: tag, Number: d.DeviceNumber(), Device: d}
		r.entries[key{typeTag: tag, number: d.DeviceNumber()}] = e
		r.byType[tag] = append(r.byType[tag], e)
	}
	for _, list := range r.byType {
		sort.Slice(list, func(i, j int) bool { return list[i].Number < list[j].Number })
	}
	return r
}

// Lookup finds the entry for (typeTag, number). ok is false if no such
// device was configured — the dispatcher turns this into HTTP 404 per
// §4.5 step 1.
func (r *Registry) Lookup(typeTag string, number int) (*Entry, bool) {
	e, ok := r.entries[key{typeTag: typeTag, number: number}]
	return e, ok
}

// ByType lists the devices of a given type tag in device-number order, for
// the management API's configured-devices listing.
func (r *Registry) ByType(typeTag string) []*Entry {
	return r.byType[typeTag]
}

// Types lists every device type tag that has at least one configured
// device, sorted for deterministic management API output.
func (r *Registry) Types() []string {
	out := make([]string, 0, len(r.byType))
	for t := range r.byType {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// All lists every configured entry, grouped by type in Types() order then by
// device number — the order the management API's "configureddevices" action
// reports them in.
func (r *Registry) All() []*Entry {
	out := make([]*Entry, 0, len(r.entries))
	for _, t := range r.Types() {
		out = append(out, r.byType[t]...)
	}
	return out
}
