package device

import (
	"io"
	"time"

	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
)

// CameraState mirrors the ASCOM CameraState enumeration (schema §4.4).
type CameraState int

const (
	CameraIdle CameraState = iota
	CameraWaiting
	CameraExposing
	CameraReading
	CameraDownload
	CameraError
)

// SensorType mirrors the ASCOM SensorType enumeration.
type SensorType int

const (
	SensorMonochrome SensorType = iota
	SensorColor
	SensorRGGB
	SensorCMYG
	SensorCMYG2
	SensorLRGB
)

// ImageArray is the decoded last-exposure pixel buffer already transposed
// into ASCOM axis order (x outer, y next, plane/channel innermost);
// see internal/imaging for the transposition and the two wire encodings.
type ImageArray struct {
	Rank int // 2 for mono/Bayer, 3 for color
	Type int // element type code: 1=i16, 2=i32, 3=f64
	Dims [3]int
	Data any // [][]any (rank 2) or [][][]any (rank 3); each leaf is int64 or float64 per Type
}

// ImageBytesWriter is implemented by camera devices that can serialize
// their most recent frame directly to the Alpaca ImageBytes binary
// encoding, letting the HTTP layer skip building the nested-array JSON
// value entirely when a client's Accept header asks for it.
type ImageBytesWriter interface {
	WriteImageBytes(w io.Writer, clientTransactionID, serverTransactionID uint32) error
}

// CameraDevice is the capability interface the dispatcher asserts a Device
// against for every action declared on the "camera" interface in schema.
type CameraDevice interface {
	Device

	CameraState() CameraState
	ImageReady() bool
	PercentCompleted() int
	LastExposureDuration() (float64, bool)
	LastExposureStartTime() (time.Time, bool)

	CameraXSize() int
	CameraYSize() int
	StartX() int
	StartY() int
	SetStartXY(x, y int) *ascomerr.Error
	NumX() int
	NumY() int
	SetNumXY(x, y int) *ascomerr.Error
	BinX() int
	BinY() int
	SetBinX(int) *ascomerr.Error
	SetBinY(int) *ascomerr.Error
	MaxBinX() int
	MaxBinY() int
	CanAsymmetricBin() bool

	ExposureMin() float64
	ExposureMax() float64
	ExposureResolution() float64
	HasShutter() bool
	CanAbortExposure() bool
	CanStopExposure() bool
	CanFastReadout() bool
	FastReadout() (bool, *ascomerr.Error)
	SetFastReadout(bool) *ascomerr.Error

	SensorType() SensorType
	SensorName() string
	BayerOffsetX() int
	BayerOffsetY() int
	ElectronsPerADU() float64
	FullWellCapacity() float64
	MaxADU() int
	PixelSizeX() float64
	PixelSizeY() float64

	CCDTemperature() (float64, *ascomerr.Error)
	CanGetCoolerPower() bool
	CoolerPower() (float64, *ascomerr.Error)
	CoolerOn() (bool, *ascomerr.Error)
	SetCoolerOn(bool) *ascomerr.Error
	CanSetCCDTemperature() bool
	SetCCDTemperature() (float64, *ascomerr.Error)
	SetSetCCDTemperature(float64) *ascomerr.Error
	HeatSinkTemperature() (float64, *ascomerr.Error)

	Gain() (int, *ascomerr.Error)
	SetGain(int) *ascomerr.Error
	Gains() ([]string, *ascomerr.Error)
	GainMin() (int, *ascomerr.Error)
	GainMax() (int, *ascomerr.Error)
	Offset() (int, *ascomerr.Error)
	SetOffset(int) *ascomerr.Error
	Offsets() ([]string, *ascomerr.Error)
	OffsetMin() (int, *ascomerr.Error)
	OffsetMax() (int, *ascomerr.Error)
	ReadoutMode() (int, *ascomerr.Error)
	SetReadoutMode(int) *ascomerr.Error
	ReadoutModes() ([]string, *ascomerr.Error)
	SubExposureDuration() (float64, *ascomerr.Error)
	SetSubExposureDuration(float64) *ascomerr.Error

	StartExposure(duration float64, light bool) *ascomerr.Error
	AbortExposure() *ascomerr.Error
	StopExposure() *ascomerr.Error
	ImageArray() (*ImageArray, *ascomerr.Error)
}
