package camera

import (
	"sync"
	"time"

	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
	"github.com/stellarbridge/alpacaserver/internal/imaging"
)

type exposureSignal int

const (
	sigStop exposureSignal = iota + 1
	sigAbort
)

// exposureCtx is the state one in-flight exposure's background goroutine
// and its controlling Camera share. Camera.current points at it for the
// lifetime of the exposure; a StartExposure/AbortExposure/StopExposure call
// talks to the goroutine only through signal, never by touching Camera
// state directly from outside the goroutine's own lock sections.
type exposureCtx struct {
	signal chan exposureSignal
	bulb   *BulbExposure
}

// Camera is the concrete device.CameraDevice this server exposes: the
// exposure state machine, subframe/binning/cooler bookkeeping, and the
// cached-radio/bulb-control adapters, all driving a NativeCamera
// collaborator (§4.8).
type Camera struct {
	*device.Base

	native NativeCamera

	gain, offset, readoutMode *CachedRadio
	bulbKind                  BulbControlKind
	bulbRadio                 *CachedRadio

	mu      sync.Mutex
	current *exposureCtx

	state                 device.CameraState
	imageReady            bool
	percent               int
	lastDuration          *float64
	lastStart             *time.Time
	lastImage             *imaging.Image
	lastSensorType        device.SensorType
	lastErr               *ascomerr.Error

	startX, startY, numX, numY int
	binX, binY                 int
	fastReadout                bool
	coolerOn                   bool
	setCCDTemperature          float64
	subExposureDuration        float64

	cameraXSize, cameraYSize           int
	maxBinX, maxBinY                   int
	canAsymmetricBin                   bool
	exposureMin, exposureMax           float64
	exposureResolution                 float64
	sensorName                         string
	bayerOffsetX, bayerOffsetY         int
	electronsPerADU, fullWellCapacity  float64
	maxADU                             int
	pixelSizeX, pixelSizeY             float64
}

// New builds a Camera of number deviceNumber over native, detecting its
// bulb mechanism and snapshotting its gain/offset/readoutmode choice lists
// at construction per §4.8.1/§4.8.2.
func New(deviceNumber int, name string, native NativeCamera) (*Camera, error) {
	gain, err := NewCachedRadio(native, "gain")
	if err != nil {
		return nil, err
	}
	offset, err := NewCachedRadio(native, "offset")
	if err != nil {
		return nil, err
	}
	readoutMode, err := NewCachedRadio(native, "readoutmode")
	if err != nil {
		return nil, err
	}
	bulbKind, bulbRadio, err := DetectBulbControl(native)
	if err != nil {
		return nil, err
	}

	w, h := native.SensorWidth(), native.SensorHeight()
	c := &Camera{
		Base:                device.NewBase("camera", deviceNumber, name, "Simulated ASCOM camera", "alpacaserver", "1.0", 3, nil),
		native:              native,
		gain:                gain,
		offset:              offset,
		readoutMode:         readoutMode,
		bulbKind:            bulbKind,
		bulbRadio:           bulbRadio,
		state:               device.CameraIdle,
		startX:              0,
		startY:              0,
		numX:                w,
		numY:                h,
		binX:                1,
		binY:                1,
		cameraXSize:         w,
		cameraYSize:         h,
		maxBinX:             4,
		maxBinY:             4,
		canAsymmetricBin:    false,
		exposureMin:         0.001,
		exposureMax:         3600,
		exposureResolution:  0.001,
		sensorName:          "Simulated RGGB Sensor",
		electronsPerADU:     1.0,
		fullWellCapacity:    65535,
		maxADU:              65535,
		pixelSizeX:          3.8,
		pixelSizeY:          3.8,
		setCCDTemperature:   0,
	}
	return c, nil
}

// --- state/observability ---

func (c *Camera) CameraState() device.CameraState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Camera) ImageReady() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.imageReady
}

func (c *Camera) PercentCompleted() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.percent
}

func (c *Camera) LastExposureDuration() (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastDuration == nil {
		return 0, false
	}
	return *c.lastDuration, true
}

func (c *Camera) LastExposureStartTime() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastStart == nil {
		return time.Time{}, false
	}
	return *c.lastStart, true
}

// --- subframe / binning ---

func (c *Camera) CameraXSize() int { return c.cameraXSize }
func (c *Camera) CameraYSize() int { return c.cameraYSize }

func (c *Camera) StartX() int { c.mu.Lock(); defer c.mu.Unlock(); return c.startX }
func (c *Camera) StartY() int { c.mu.Lock(); defer c.mu.Unlock(); return c.startY }

func (c *Camera) SetStartXY(x, y int) *ascomerr.Error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.validateSubframeLocked(x, y, c.numX, c.numY); err != nil {
		return err
	}
	c.startX, c.startY = x, y
	return nil
}

func (c *Camera) NumX() int { c.mu.Lock(); defer c.mu.Unlock(); return c.numX }
func (c *Camera) NumY() int { c.mu.Lock(); defer c.mu.Unlock(); return c.numY }

func (c *Camera) SetNumXY(x, y int) *ascomerr.Error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.validateSubframeLocked(c.startX, c.startY, x, y); err != nil {
		return err
	}
	c.numX, c.numY = x, y
	return nil
}

// validateSubframeLocked enforces StartX+NumX <= CameraXSize/BinX (and the
// Y equivalent) per §4.8.3. Caller must hold c.mu.
func (c *Camera) validateSubframeLocked(startX, startY, numX, numY int) *ascomerr.Error {
	if numX <= 0 || numY <= 0 {
		return ascomerr.InvalidValuef("numx/numy must be positive")
	}
	if startX < 0 || startY < 0 {
		return ascomerr.InvalidValuef("startx/starty must be non-negative")
	}
	if startX+numX > c.cameraXSize/c.binX {
		return ascomerr.InvalidValuef("startx+numx %d exceeds CameraXSize/BinX %d", startX+numX, c.cameraXSize/c.binX)
	}
	if startY+numY > c.cameraYSize/c.binY {
		return ascomerr.InvalidValuef("starty+numy %d exceeds CameraYSize/BinY %d", startY+numY, c.cameraYSize/c.binY)
	}
	return nil
}

func (c *Camera) BinX() int { c.mu.Lock(); defer c.mu.Unlock(); return c.binX }
func (c *Camera) BinY() int { c.mu.Lock(); defer c.mu.Unlock(); return c.binY }

func (c *Camera) SetBinX(v int) *ascomerr.Error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v < 1 || v > c.maxBinX {
		return ascomerr.InvalidValuef("binx %d out of range [1,%d]", v, c.maxBinX)
	}
	if !c.canAsymmetricBin && v != c.binY {
		return ascomerr.InvalidValuef("this camera requires binx == biny")
	}
	c.binX = v
	return nil
}

func (c *Camera) SetBinY(v int) *ascomerr.Error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v < 1 || v > c.maxBinY {
		return ascomerr.InvalidValuef("biny %d out of range [1,%d]", v, c.maxBinY)
	}
	if !c.canAsymmetricBin && v != c.binX {
		return ascomerr.InvalidValuef("this camera requires binx == biny")
	}
	c.binY = v
	return nil
}

func (c *Camera) MaxBinX() int           { return c.maxBinX }
func (c *Camera) MaxBinY() int           { return c.maxBinY }
func (c *Camera) CanAsymmetricBin() bool { return c.canAsymmetricBin }

// --- exposure bounds / shutter / fast readout ---

func (c *Camera) ExposureMin() float64        { return c.exposureMin }
func (c *Camera) ExposureMax() float64        { return c.exposureMax }
func (c *Camera) ExposureResolution() float64 { return c.exposureResolution }
func (c *Camera) HasShutter() bool            { return true }
func (c *Camera) CanAbortExposure() bool      { return true }
func (c *Camera) CanStopExposure() bool       { return true }
func (c *Camera) CanFastReadout() bool        { return false }

func (c *Camera) FastReadout() (bool, *ascomerr.Error) {
	if !c.CanFastReadout() {
		return false, ascomerr.New(ascomerr.NotImplemented, "")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fastReadout, nil
}

func (c *Camera) SetFastReadout(v bool) *ascomerr.Error {
	if !c.CanFastReadout() {
		return ascomerr.New(ascomerr.NotImplemented, "")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fastReadout = v
	return nil
}

// --- sensor geometry ---

func (c *Camera) SensorType() device.SensorType {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastImage != nil {
		return c.lastSensorType
	}
	return device.SensorRGGB
}
func (c *Camera) SensorName() string        { return c.sensorName }
func (c *Camera) BayerOffsetX() int         { return c.bayerOffsetX }
func (c *Camera) BayerOffsetY() int         { return c.bayerOffsetY }
func (c *Camera) ElectronsPerADU() float64  { return c.electronsPerADU }
func (c *Camera) FullWellCapacity() float64 { return c.fullWellCapacity }
func (c *Camera) MaxADU() int               { return c.maxADU }
func (c *Camera) PixelSizeX() float64       { return c.pixelSizeX }
func (c *Camera) PixelSizeY() float64       { return c.pixelSizeY }

// --- cooler / temperature ---

func (c *Camera) CCDTemperature() (float64, *ascomerr.Error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setCCDTemperature, nil
}
func (c *Camera) CanGetCoolerPower() bool { return false }
func (c *Camera) CoolerPower() (float64, *ascomerr.Error) {
	return 0, ascomerr.New(ascomerr.NotImplemented, "")
}
func (c *Camera) CoolerOn() (bool, *ascomerr.Error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.coolerOn, nil
}
func (c *Camera) SetCoolerOn(v bool) *ascomerr.Error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.coolerOn = v
	return nil
}
func (c *Camera) CanSetCCDTemperature() bool { return true }
func (c *Camera) SetCCDTemperature() (float64, *ascomerr.Error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setCCDTemperature, nil
}
func (c *Camera) SetSetCCDTemperature(v float64) *ascomerr.Error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setCCDTemperature = v
	return nil
}
func (c *Camera) HeatSinkTemperature() (float64, *ascomerr.Error) {
	return 20.0, nil
}

// --- gain / offset / readout mode (cached radio adapters) ---

func (c *Camera) Gain() (int, *ascomerr.Error)          { return c.gain.Index() }
func (c *Camera) SetGain(v int) *ascomerr.Error         { return c.gain.SetIndex(v) }
func (c *Camera) Gains() ([]string, *ascomerr.Error)    { return c.gain.Choices(), nil }
func (c *Camera) GainMin() (int, *ascomerr.Error)       { return 0, nil }
func (c *Camera) GainMax() (int, *ascomerr.Error)       { return len(c.gain.Choices()) - 1, nil }

func (c *Camera) Offset() (int, *ascomerr.Error)       { return c.offset.Index() }
func (c *Camera) SetOffset(v int) *ascomerr.Error      { return c.offset.SetIndex(v) }
func (c *Camera) Offsets() ([]string, *ascomerr.Error) { return c.offset.Choices(), nil }
func (c *Camera) OffsetMin() (int, *ascomerr.Error)     { return 0, nil }
func (c *Camera) OffsetMax() (int, *ascomerr.Error)     { return len(c.offset.Choices()) - 1, nil }

func (c *Camera) ReadoutMode() (int, *ascomerr.Error)      { return c.readoutMode.Index() }
func (c *Camera) SetReadoutMode(v int) *ascomerr.Error     { return c.readoutMode.SetIndex(v) }
func (c *Camera) ReadoutModes() ([]string, *ascomerr.Error) { return c.readoutMode.Choices(), nil }

func (c *Camera) SubExposureDuration() (float64, *ascomerr.Error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subExposureDuration, nil
}
func (c *Camera) SetSubExposureDuration(v float64) *ascomerr.Error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subExposureDuration = v
	return nil
}
