// Package telescope implements a simulated ASCOM telescope: a sidereal
// mount model sufficient to exercise every action on the "telescope"
// interface end to end, modeled on the field shapes of
// internal/models.TelescopeStatus/TelescopeConfig from the repository this
// was adapted from.
package telescope

import (
	"fmt"
	"sync"
	"time"

	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
)

// Telescope is a simulated equatorial mount: slews complete instantly and
// tracking is modeled as a boolean flag rather than real sidereal motion.
type Telescope struct {
	*device.Base

	mu sync.Mutex

	ra, dec             float64
	targetRA, targetDec *float64
	azimuth, altitude   float64
	tracking            bool
	trackingRate        int
	atPark              bool
	slewing             bool
	doesRefraction      bool
	raRate, decRate     float64
	siteLat, siteLon    float64
	siteElevation       float64
	slewSettleTime      int
}

// New builds a parked simulated telescope pointed at the celestial pole.
func New(deviceNumber int, name string) *Telescope {
	return &Telescope{
		Base:          device.NewBase("telescope", deviceNumber, name, "Simulated equatorial telescope", "alpacaserver", "1.0", 3, nil),
		dec:           90,
		atPark:        true,
		siteLat:       0,
		siteLon:       0,
		siteElevation: 0,
	}
}

func (t *Telescope) AlignmentMode() int     { return 2 } // german equatorial
func (t *Telescope) ApertureArea() float64  { return 0.0314 }
func (t *Telescope) ApertureDiameter() float64 { return 0.2 }
func (t *Telescope) EquatorialSystem() int  { return 2 } // J2000
func (t *Telescope) FocalLength() float64   { return 2.0 }
func (t *Telescope) SiderealTime() float64 {
	return float64(time.Now().UTC().Hour())
}

func (t *Telescope) AtHome() bool { t.mu.Lock(); defer t.mu.Unlock(); return t.atPark }
func (t *Telescope) AtPark() bool { t.mu.Lock(); defer t.mu.Unlock(); return t.atPark }
func (t *Telescope) CanFindHome() bool   { return true }
func (t *Telescope) CanPark() bool       { return true }
func (t *Telescope) CanPulseGuide() bool { return true }
func (t *Telescope) CanSetTracking() bool { return true }
func (t *Telescope) CanSlew() bool       { return true }
func (t *Telescope) CanSync() bool       { return true }
func (t *Telescope) CanUnpark() bool     { return true }

func (t *Telescope) Altitude() (float64, *ascomerr.Error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.altitude, nil
}
func (t *Telescope) Azimuth() (float64, *ascomerr.Error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.azimuth, nil
}
func (t *Telescope) Declination() (float64, *ascomerr.Error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dec, nil
}
func (t *Telescope) DeclinationRate() (float64, *ascomerr.Error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.decRate, nil
}
func (t *Telescope) SetDeclinationRate(v float64) *ascomerr.Error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.decRate = v
	return nil
}
func (t *Telescope) DoesRefraction() (bool, *ascomerr.Error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.doesRefraction, nil
}
func (t *Telescope) SetDoesRefraction(v bool) *ascomerr.Error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.doesRefraction = v
	return nil
}
func (t *Telescope) RightAscension() (float64, *ascomerr.Error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ra, nil
}
func (t *Telescope) RightAscensionRate() (float64, *ascomerr.Error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.raRate, nil
}
func (t *Telescope) SetRightAscensionRate(v float64) *ascomerr.Error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.raRate = v
	return nil
}
func (t *Telescope) SideOfPier() (int, *ascomerr.Error) { return 0, nil }
func (t *Telescope) SiteElevation() (float64, *ascomerr.Error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.siteElevation, nil
}
func (t *Telescope) SetSiteElevation(v float64) *ascomerr.Error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.siteElevation = v
	return nil
}
func (t *Telescope) SiteLatitude() (float64, *ascomerr.Error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.siteLat, nil
}
func (t *Telescope) SetSiteLatitude(v float64) *ascomerr.Error {
	if v < -90 || v > 90 {
		return ascomerr.InvalidValuef("latitude %g out of range", v)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.siteLat = v
	return nil
}
func (t *Telescope) SiteLongitude() (float64, *ascomerr.Error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.siteLon, nil
}
func (t *Telescope) SetSiteLongitude(v float64) *ascomerr.Error {
	if v < -180 || v > 180 {
		return ascomerr.InvalidValuef("longitude %g out of range", v)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.siteLon = v
	return nil
}
func (t *Telescope) Slewing() bool { t.mu.Lock(); defer t.mu.Unlock(); return t.slewing }
func (t *Telescope) SlewSettleTime() int { t.mu.Lock(); defer t.mu.Unlock(); return t.slewSettleTime }
func (t *Telescope) SetSlewSettleTime(v int) *ascomerr.Error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.slewSettleTime = v
	return nil
}
func (t *Telescope) TargetDeclination() (float64, *ascomerr.Error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.targetDec == nil {
		return 0, ascomerr.New(ascomerr.ValueNotSet, "")
	}
	return *t.targetDec, nil
}
func (t *Telescope) SetTargetDeclination(v float64) *ascomerr.Error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.targetDec = &v
	return nil
}
func (t *Telescope) TargetRightAscension() (float64, *ascomerr.Error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.targetRA == nil {
		return 0, ascomerr.New(ascomerr.ValueNotSet, "")
	}
	return *t.targetRA, nil
}
func (t *Telescope) SetTargetRightAscension(v float64) *ascomerr.Error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.targetRA = &v
	return nil
}
func (t *Telescope) Tracking() bool { t.mu.Lock(); defer t.mu.Unlock(); return t.tracking }
func (t *Telescope) SetTracking(v bool) *ascomerr.Error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tracking = v
	return nil
}
func (t *Telescope) TrackingRate() (int, *ascomerr.Error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.trackingRate, nil
}
func (t *Telescope) SetTrackingRate(v int) *ascomerr.Error {
	if v < 0 || v > 3 {
		return ascomerr.InvalidValuef("tracking rate %d out of range", v)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.trackingRate = v
	return nil
}
func (t *Telescope) UTCDate() (string, *ascomerr.Error) {
	return time.Now().UTC().Format(time.RFC3339), nil
}
func (t *Telescope) SetUTCDate(v string) *ascomerr.Error {
	if _, err := time.Parse(time.RFC3339, v); err != nil {
		return ascomerr.InvalidValuef("invalid UTCDate %q: %s", v, err)
	}
	return nil
}

func (t *Telescope) AbortSlew() *ascomerr.Error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.slewing = false
	return nil
}

func (t *Telescope) AxisRates(axis int) ([]device.AxisRate, *ascomerr.Error) {
	if axis < 0 || axis > 2 {
		return nil, ascomerr.InvalidValuef("axis %d out of range", axis)
	}
	return []device.AxisRate{{Minimum: 0, Maximum: 3}}, nil
}
func (t *Telescope) CanMoveAxis(axis int) bool { return axis >= 0 && axis <= 2 }

func (t *Telescope) DestinationSideOfPier(ra, dec float64) (int, *ascomerr.Error) { return 0, nil }

func (t *Telescope) FindHome() *ascomerr.Error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.atPark = false
	t.ra, t.dec = 0, 90
	return nil
}

func (t *Telescope) MoveAxis(axis int, rate float64) *ascomerr.Error {
	if !t.CanMoveAxis(axis) {
		return ascomerr.InvalidValuef("axis %d not supported", axis)
	}
	return nil
}

func (t *Telescope) Park() *ascomerr.Error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.atPark = true
	t.tracking = false
	t.slewing = false
	return nil
}

func (t *Telescope) PulseGuide(direction int, durationMs int) *ascomerr.Error {
	if durationMs < 0 {
		return ascomerr.InvalidValuef("duration must be non-negative")
	}
	return nil
}

func (t *Telescope) SetPark() *ascomerr.Error { return nil }

func (t *Telescope) SlewToCoordinates(ra, dec float64) *ascomerr.Error {
	if err := t.requireUnparked(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ra, t.dec = ra, dec
	t.slewing = false
	return nil
}

func (t *Telescope) SlewToTarget() *ascomerr.Error {
	t.mu.Lock()
	ra, dec := t.targetRA, t.targetDec
	t.mu.Unlock()
	if ra == nil || dec == nil {
		return ascomerr.New(ascomerr.ValueNotSet, "target coordinates not set")
	}
	return t.SlewToCoordinates(*ra, *dec)
}

func (t *Telescope) SyncToCoordinates(ra, dec float64) *ascomerr.Error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ra, t.dec = ra, dec
	return nil
}

func (t *Telescope) SyncToTarget() *ascomerr.Error {
	t.mu.Lock()
	ra, dec := t.targetRA, t.targetDec
	t.mu.Unlock()
	if ra == nil || dec == nil {
		return ascomerr.New(ascomerr.ValueNotSet, "target coordinates not set")
	}
	return t.SyncToCoordinates(*ra, *dec)
}

func (t *Telescope) Unpark() *ascomerr.Error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.atPark = false
	return nil
}

func (t *Telescope) requireUnparked() *ascomerr.Error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.atPark {
		return ascomerr.New(ascomerr.InvalidWhileParked, fmt.Sprintf("cannot slew while parked"))
	}
	return nil
}
