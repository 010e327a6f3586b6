// Package dome implements a simulated ASCOM dome/roll-off-roof controller.
package dome

import (
	"sync"

	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
)

const (
	shutterOpen = iota
	shutterClosed
	shutterOpening
	shutterClosing
	shutterError
)

// Dome is a simulated dome: shutter and azimuth operations resolve
// instantly rather than animating a real motor.
type Dome struct {
	*device.Base

	mu            sync.Mutex
	altitude      float64
	azimuth       float64
	atHome        bool
	atPark        bool
	shutterStatus int
	slaved        bool
	slewing       bool
}

func New(deviceNumber int, name string) *Dome {
	return &Dome{
		Base:          device.NewBase("dome", deviceNumber, name, "Simulated dome", "alpacaserver", "1.0", 2, nil),
		atPark:        true,
		shutterStatus: shutterClosed,
	}
}

func (d *Dome) Altitude() (float64, *ascomerr.Error) { d.mu.Lock(); defer d.mu.Unlock(); return d.altitude, nil }
func (d *Dome) AtHome() bool                         { d.mu.Lock(); defer d.mu.Unlock(); return d.atHome }
func (d *Dome) AtPark() bool                         { d.mu.Lock(); defer d.mu.Unlock(); return d.atPark }
func (d *Dome) Azimuth() (float64, *ascomerr.Error)  { d.mu.Lock(); defer d.mu.Unlock(); return d.azimuth, nil }
func (d *Dome) CanFindHome() bool                    { return true }
func (d *Dome) CanPark() bool                        { return true }
func (d *Dome) CanSetAltitude() bool                 { return true }
func (d *Dome) CanSetAzimuth() bool                  { return true }
func (d *Dome) CanSetPark() bool                      { return true }
func (d *Dome) CanSetShutter() bool                  { return true }
func (d *Dome) CanSlave() bool                       { return true }
func (d *Dome) CanSyncAzimuth() bool                 { return true }
func (d *Dome) ShutterStatus() int                   { d.mu.Lock(); defer d.mu.Unlock(); return d.shutterStatus }
func (d *Dome) Slaved() bool                         { d.mu.Lock(); defer d.mu.Unlock(); return d.slaved }
func (d *Dome) SetSlaved(v bool) *ascomerr.Error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.slaved = v
	return nil
}
func (d *Dome) Slewing() bool { d.mu.Lock(); defer d.mu.Unlock(); return d.slewing }

func (d *Dome) AbortSlew() *ascomerr.Error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.slewing = false
	return nil
}

func (d *Dome) CloseShutter() *ascomerr.Error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shutterStatus = shutterClosed
	return nil
}

func (d *Dome) FindHome() *ascomerr.Error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.atHome = true
	d.azimuth = 0
	return nil
}

func (d *Dome) OpenShutter() *ascomerr.Error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shutterStatus = shutterOpen
	return nil
}

func (d *Dome) Park() *ascomerr.Error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.atPark = true
	return nil
}

func (d *Dome) SetPark() *ascomerr.Error { return nil }

func (d *Dome) SlewToAltitude(v float64) *ascomerr.Error {
	if v < 0 || v > 90 {
		return ascomerr.InvalidValuef("altitude %g out of range", v)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.altitude = v
	d.atPark = false
	return nil
}

func (d *Dome) SlewToAzimuth(v float64) *ascomerr.Error {
	if v < 0 || v >= 360 {
		return ascomerr.InvalidValuef("azimuth %g out of range", v)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.azimuth = v
	d.atPark = false
	d.atHome = false
	return nil
}

func (d *Dome) SyncToAzimuth(v float64) *ascomerr.Error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.azimuth = v
	return nil
}
