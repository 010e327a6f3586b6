// Package focuser implements a simulated ASCOM absolute focuser.
package focuser

import (
	"sync"

	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
)

// Focuser is a simulated absolute focuser; Move completes synchronously.
type Focuser struct {
	*device.Base

	mu          sync.Mutex
	position    int
	maxStep     int
	maxIncrement int
	stepSize    float64
	tempComp    bool
	temperature float64
}

func New(deviceNumber int, name string, maxStep int) *Focuser {
	return &Focuser{
		Base:         device.NewBase("focuser", deviceNumber, name, "Simulated absolute focuser", "alpacaserver", "1.0", 3, nil),
		maxStep:      maxStep,
		maxIncrement: maxStep,
		stepSize:     1.0,
		temperature:  20.0,
	}
}

func (f *Focuser) Absolute() bool     { return true }
func (f *Focuser) IsMoving() bool     { return false }
func (f *Focuser) MaxIncrement() int  { return f.maxIncrement }
func (f *Focuser) MaxStep() int       { return f.maxStep }

func (f *Focuser) Position() (int, *ascomerr.Error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.position, nil
}

func (f *Focuser) StepSize() (float64, *ascomerr.Error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stepSize, nil
}

func (f *Focuser) TempComp() bool { f.mu.Lock(); defer f.mu.Unlock(); return f.tempComp }
func (f *Focuser) SetTempComp(v bool) *ascomerr.Error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tempComp = v
	return nil
}
func (f *Focuser) TempCompAvailable() bool { return true }

func (f *Focuser) Temperature() (float64, *ascomerr.Error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.temperature, nil
}

func (f *Focuser) Halt() *ascomerr.Error { return nil }

func (f *Focuser) Move(position int) *ascomerr.Error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if position < 0 || position > f.maxStep {
		return ascomerr.InvalidValuef("position %d out of range [0,%d]", position, f.maxStep)
	}
	f.position = position
	return nil
}
