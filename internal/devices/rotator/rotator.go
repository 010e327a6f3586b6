// Package rotator implements a simulated ASCOM field rotator.
package rotator

import (
	"sync"

	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
)

func norm360(v float64) float64 {
	for v < 0 {
		v += 360
	}
	for v >= 360 {
		v -= 360
	}
	return v
}

// Rotator is a simulated field rotator; Move/MoveAbsolute resolve
// synchronously.
type Rotator struct {
	*device.Base

	mu                 sync.Mutex
	position           float64
	mechanicalPosition float64
	targetPosition     float64
	reverse            bool
}

func New(deviceNumber int, name string) *Rotator {
	return &Rotator{Base: device.NewBase("rotator", deviceNumber, name, "Simulated field rotator", "alpacaserver", "1.0", 3, nil)}
}

func (r *Rotator) CanReverse() bool { return true }
func (r *Rotator) IsMoving() bool   { return false }

func (r *Rotator) MechanicalPosition() (float64, *ascomerr.Error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mechanicalPosition, nil
}

func (r *Rotator) Position() (float64, *ascomerr.Error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.position, nil
}

func (r *Rotator) Reverse() (bool, *ascomerr.Error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reverse, nil
}

func (r *Rotator) SetReverse(v bool) *ascomerr.Error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reverse = v
	return nil
}

func (r *Rotator) StepSize() (float64, *ascomerr.Error) { return 0.1, nil }

func (r *Rotator) TargetPosition() (float64, *ascomerr.Error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.targetPosition, nil
}

func (r *Rotator) Halt() *ascomerr.Error { return nil }

func (r *Rotator) Move(deltaDegrees float64) *ascomerr.Error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.targetPosition = norm360(r.position + deltaDegrees)
	r.position = r.targetPosition
	r.mechanicalPosition = r.position
	return nil
}

func (r *Rotator) MoveAbsolute(degrees float64) *ascomerr.Error {
	if degrees < 0 || degrees >= 360 {
		return ascomerr.InvalidValuef("position %g out of range [0,360)", degrees)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.targetPosition = degrees
	r.position = degrees
	r.mechanicalPosition = degrees
	return nil
}

func (r *Rotator) MoveMechanical(degrees float64) *ascomerr.Error {
	if degrees < 0 || degrees >= 360 {
		return ascomerr.InvalidValuef("position %g out of range [0,360)", degrees)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mechanicalPosition = degrees
	r.position = degrees
	return nil
}

func (r *Rotator) Sync(degrees float64) *ascomerr.Error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.position = norm360(degrees)
	return nil
}
