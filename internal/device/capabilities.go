package device

import "github.com/stellarbridge/alpacaserver/internal/ascomerr"

// AxisRate is a single (minimum, maximum) speed pair as returned by the
// telescope's AxisRates action; its fields are flattened (not wrapped under
// "Value") because it is a composite result per §4.5.
type AxisRate struct {
	Minimum float64 `json:"Minimum"`
	Maximum float64 `json:"Maximum"`
}

// TelescopeDevice is the capability interface for the "telescope"
// interface. It covers the subset of the ASCOM ITelescopeV3 surface that a
// typical Alpaca client exercises end to end.
type TelescopeDevice interface {
	Device

	AlignmentMode() int
	Altitude() (float64, *ascomerr.Error)
	Azimuth() (float64, *ascomerr.Error)
	ApertureArea() float64
	ApertureDiameter() float64
	AtHome() bool
	AtPark() bool
	CanFindHome() bool
	CanPark() bool
	CanPulseGuide() bool
	CanSetTracking() bool
	CanSlew() bool
	CanSync() bool
	CanUnpark() bool
	Declination() (float64, *ascomerr.Error)
	DeclinationRate() (float64, *ascomerr.Error)
	SetDeclinationRate(float64) *ascomerr.Error
	DoesRefraction() (bool, *ascomerr.Error)
	SetDoesRefraction(bool) *ascomerr.Error
	EquatorialSystem() int
	FocalLength() float64
	RightAscension() (float64, *ascomerr.Error)
	RightAscensionRate() (float64, *ascomerr.Error)
	SetRightAscensionRate(float64) *ascomerr.Error
	SideOfPier() (int, *ascomerr.Error)
	SiderealTime() float64
	SiteElevation() (float64, *ascomerr.Error)
	SetSiteElevation(float64) *ascomerr.Error
	SiteLatitude() (float64, *ascomerr.Error)
	SetSiteLatitude(float64) *ascomerr.Error
	SiteLongitude() (float64, *ascomerr.Error)
	SetSiteLongitude(float64) *ascomerr.Error
	Slewing() bool
	SlewSettleTime() int
	SetSlewSettleTime(int) *ascomerr.Error
	TargetDeclination() (float64, *ascomerr.Error)
	SetTargetDeclination(float64) *ascomerr.Error
	TargetRightAscension() (float64, *ascomerr.Error)
	SetTargetRightAscension(float64) *ascomerr.Error
	Tracking() bool
	SetTracking(bool) *ascomerr.Error
	TrackingRate() (int, *ascomerr.Error)
	SetTrackingRate(int) *ascomerr.Error
	UTCDate() (string, *ascomerr.Error)
	SetUTCDate(string) *ascomerr.Error

	AbortSlew() *ascomerr.Error
	AxisRates(axis int) ([]AxisRate, *ascomerr.Error)
	CanMoveAxis(axis int) bool
	DestinationSideOfPier(ra, dec float64) (int, *ascomerr.Error)
	FindHome() *ascomerr.Error
	MoveAxis(axis int, rate float64) *ascomerr.Error
	Park() *ascomerr.Error
	PulseGuide(direction int, durationMs int) *ascomerr.Error
	SetPark() *ascomerr.Error
	SlewToCoordinates(ra, dec float64) *ascomerr.Error
	SlewToTarget() *ascomerr.Error
	SyncToCoordinates(ra, dec float64) *ascomerr.Error
	SyncToTarget() *ascomerr.Error
	Unpark() *ascomerr.Error
}

// DomeDevice is the capability interface for the "dome" interface.
type DomeDevice interface {
	Device

	Altitude() (float64, *ascomerr.Error)
	AtHome() bool
	AtPark() bool
	Azimuth() (float64, *ascomerr.Error)
	CanFindHome() bool
	CanPark() bool
	CanSetAltitude() bool
	CanSetAzimuth() bool
	CanSetPark() bool
	CanSetShutter() bool
	CanSlave() bool
	CanSyncAzimuth() bool
	ShutterStatus() int
	Slaved() bool
	SetSlaved(bool) *ascomerr.Error
	Slewing() bool

	AbortSlew() *ascomerr.Error
	CloseShutter() *ascomerr.Error
	FindHome() *ascomerr.Error
	OpenShutter() *ascomerr.Error
	Park() *ascomerr.Error
	SetPark() *ascomerr.Error
	SlewToAltitude(float64) *ascomerr.Error
	SlewToAzimuth(float64) *ascomerr.Error
	SyncToAzimuth(float64) *ascomerr.Error
}

// FilterWheelDevice is the capability interface for "filterwheel".
type FilterWheelDevice interface {
	Device

	FocusOffsets() []int
	Names() []string
	Position() (int, *ascomerr.Error)
	SetPosition(int) *ascomerr.Error
}

// FocuserDevice is the capability interface for "focuser".
type FocuserDevice interface {
	Device

	Absolute() bool
	IsMoving() bool
	MaxIncrement() int
	MaxStep() int
	Position() (int, *ascomerr.Error)
	StepSize() (float64, *ascomerr.Error)
	TempComp() bool
	SetTempComp(bool) *ascomerr.Error
	TempCompAvailable() bool
	Temperature() (float64, *ascomerr.Error)

	Halt() *ascomerr.Error
	Move(position int) *ascomerr.Error
}

// RotatorDevice is the capability interface for "rotator".
type RotatorDevice interface {
	Device

	CanReverse() bool
	IsMoving() bool
	MechanicalPosition() (float64, *ascomerr.Error)
	Position() (float64, *ascomerr.Error)
	Reverse() (bool, *ascomerr.Error)
	SetReverse(bool) *ascomerr.Error
	StepSize() (float64, *ascomerr.Error)
	TargetPosition() (float64, *ascomerr.Error)

	Halt() *ascomerr.Error
	Move(deltaDegrees float64) *ascomerr.Error
	MoveAbsolute(degrees float64) *ascomerr.Error
	MoveMechanical(degrees float64) *ascomerr.Error
	Sync(degrees float64) *ascomerr.Error
}

// SwitchDevice is the capability interface for "switch".
type SwitchDevice interface {
	Device

	MaxSwitch() int
	CanWrite(id int) (bool, *ascomerr.Error)
	GetSwitch(id int) (bool, *ascomerr.Error)
	GetSwitchDescription(id int) (string, *ascomerr.Error)
	GetSwitchName(id int) (string, *ascomerr.Error)
	GetSwitchValue(id int) (float64, *ascomerr.Error)
	MinSwitchValue(id int) (float64, *ascomerr.Error)
	MaxSwitchValue(id int) (float64, *ascomerr.Error)
	SwitchStep(id int) (float64, *ascomerr.Error)
	SetSwitch(id int, state bool) *ascomerr.Error
	SetSwitchName(id int, name string) *ascomerr.Error
	SetSwitchValue(id int, value float64) *ascomerr.Error
}

// SafetyMonitorDevice is the capability interface for "safetymonitor".
type SafetyMonitorDevice interface {
	Device

	IsSafe() bool
}

// ObservingConditionsDevice is the capability interface for
// "observingconditions".
type ObservingConditionsDevice interface {
	Device

	AveragePeriod() (float64, *ascomerr.Error)
	SetAveragePeriod(float64) *ascomerr.Error
	CloudCover() (float64, *ascomerr.Error)
	DewPoint() (float64, *ascomerr.Error)
	Humidity() (float64, *ascomerr.Error)
	Pressure() (float64, *ascomerr.Error)
	RainRate() (float64, *ascomerr.Error)
	SkyBrightness() (float64, *ascomerr.Error)
	SkyQuality() (float64, *ascomerr.Error)
	SkyTemperature() (float64, *ascomerr.Error)
	StarFWHM() (float64, *ascomerr.Error)
	Temperature() (float64, *ascomerr.Error)
	WindDirection() (float64, *ascomerr.Error)
	WindGust() (float64, *ascomerr.Error)
	WindSpeed() (float64, *ascomerr.Error)
	SensorDescription(propertyName string) (string, *ascomerr.Error)
	TimeSinceLastUpdate(propertyName string) (float64, *ascomerr.Error)
	Refresh() *ascomerr.Error
}

// CoverCalibratorDevice is the capability interface for "covercalibrator".
type CoverCalibratorDevice interface {
	Device

	Brightness() (int, *ascomerr.Error)
	CalibratorState() int
	CoverState() int
	MaxBrightness() int

	CalibratorOff() *ascomerr.Error
	CalibratorOn(brightness int) *ascomerr.Error
	CloseCover() *ascomerr.Error
	HaltCover() *ascomerr.Error
	OpenCover() *ascomerr.Error
}
