// Package safetymonitor implements a simulated ASCOM safety monitor.
package safetymonitor

import (
	"sync"

	"github.com/stellarbridge/alpacaserver/internal/device"
)

// SafetyMonitor reports a fixed safe/unsafe state, toggleable for testing
// via SetSafe (not an Alpaca action — there is no wire-level way to write
// IsSafe, per the ASCOM spec).
type SafetyMonitor struct {
	*device.Base

	mu   sync.Mutex
	safe bool
}

func New(deviceNumber int, name string) *SafetyMonitor {
	return &SafetyMonitor{
		Base: device.NewBase("safetymonitor", deviceNumber, name, "Simulated safety monitor", "alpacaserver", "1.0", 1, nil),
		safe: true,
	}
}

func (s *SafetyMonitor) IsSafe() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.safe
}

// SetSafe is an operator/test hook, not an Alpaca action.
func (s *SafetyMonitor) SetSafe(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.safe = v
}
