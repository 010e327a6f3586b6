package safetymonitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafetyMonitorDefaultsSafe(t *testing.T) {
	s := New(0, "Test Monitor")
	assert.True(t, s.IsSafe())
}

func TestSafetyMonitorSetSafe(t *testing.T) {
	s := New(0, "Test Monitor")
	s.SetSafe(false)
	assert.False(t, s.IsSafe())
	s.SetSafe(true)
	assert.True(t, s.IsSafe())
}
