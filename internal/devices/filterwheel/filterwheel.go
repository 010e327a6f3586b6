// Package filterwheel implements a simulated ASCOM filter wheel.
package filterwheel

import (
	"sync"

	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
)

// FilterWheel is a simulated filter wheel that moves between named
// positions instantly.
type FilterWheel struct {
	*device.Base

	mu           sync.Mutex
	names        []string
	focusOffsets []int
	position     int
}

// New builds a filter wheel with the given filter names, in slot order.
func New(deviceNumber int, name string, filterNames []string) *FilterWheel {
	offsets := make([]int, len(filterNames))
	names := make([]string, len(filterNames))
	copy(names, filterNames)
	return &FilterWheel{
		Base:         device.NewBase("filterwheel", deviceNumber, name, "Simulated filter wheel", "alpacaserver", "1.0", 2, nil),
		names:        names,
		focusOffsets: offsets,
	}
}

func (f *FilterWheel) FocusOffsets() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]int, len(f.focusOffsets))
	copy(out, f.focusOffsets)
	return out
}

func (f *FilterWheel) Names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

func (f *FilterWheel) Position() (int, *ascomerr.Error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.position, nil
}

func (f *FilterWheel) SetPosition(v int) *ascomerr.Error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v < -1 || v >= len(f.names) {
		return ascomerr.InvalidValuef("position %d out of range [-1,%d)", v, len(f.names))
	}
	f.position = v
	return nil
}
