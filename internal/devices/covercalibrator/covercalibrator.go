// Package covercalibrator implements a simulated ASCOM cover calibrator.
package covercalibrator

import (
	"sync"

	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
)

// Calibrator state values per the ASCOM CalibratorStatus enum.
const (
	calibratorNotPresent = 0
	calibratorOff        = 1
	calibratorNotReady   = 2
	calibratorReady      = 3
)

// Cover state values per the ASCOM CoverStatus enum.
const (
	coverNotPresent = 0
	coverClosed     = 1
	coverMoving     = 2
	coverOpen       = 3
)

// CoverCalibrator is a simulated flat-field panel with a motorized cover;
// both open/close and calibrator on/off resolve synchronously.
type CoverCalibrator struct {
	*device.Base

	mu              sync.Mutex
	brightness      int
	maxBrightness   int
	calibratorState int
	coverState      int
}

func New(deviceNumber int, name string) *CoverCalibrator {
	return &CoverCalibrator{
		Base:            device.NewBase("covercalibrator", deviceNumber, name, "Simulated cover calibrator", "alpacaserver", "1.0", 1, nil),
		maxBrightness:   255,
		calibratorState: calibratorOff,
		coverState:      coverClosed,
	}
}

func (c *CoverCalibrator) Brightness() (int, *ascomerr.Error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calibratorState == calibratorNotReady {
		return 0, ascomerr.New(ascomerr.InvalidOperation, "calibrator not ready")
	}
	return c.brightness, nil
}

func (c *CoverCalibrator) CalibratorState() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calibratorState
}

func (c *CoverCalibrator) CoverState() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.coverState
}

func (c *CoverCalibrator) MaxBrightness() int { return c.maxBrightness }

func (c *CoverCalibrator) CalibratorOff() *ascomerr.Error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.brightness = 0
	c.calibratorState = calibratorOff
	return nil
}

func (c *CoverCalibrator) CalibratorOn(brightness int) *ascomerr.Error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if brightness < 0 || brightness > c.maxBrightness {
		return ascomerr.InvalidValuef("brightness %d out of range [0,%d]", brightness, c.maxBrightness)
	}
	c.brightness = brightness
	c.calibratorState = calibratorReady
	return nil
}

func (c *CoverCalibrator) CloseCover() *ascomerr.Error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.coverState = coverClosed
	return nil
}

func (c *CoverCalibrator) HaltCover() *ascomerr.Error {
	return nil
}

func (c *CoverCalibrator) OpenCover() *ascomerr.Error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.coverState = coverOpen
	return nil
}
