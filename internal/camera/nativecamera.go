// Package camera implements the camera pipeline (C8): the cached
// configuration-radio adapter, bulb control, the exposure state machine,
// RAW/processed image decoding, and the concrete device.CameraDevice this
// server exposes over Alpaca.
package camera

import "time"

// NativeCamera is the external collaborator the pipeline drives: a native
// camera-control library exposing toggle and radio-choice widgets plus
// asynchronous image retrieval (§4.8). Simulator is this package's in-repo
// stand-in; no real vendor SDK binding exists in this repository, so it is
// never exercised as a fabricated third-party dependency — it models the
// same asynchronous widget/capture contract a real one would.
type NativeCamera interface {
	Toggles() []string
	GetToggle(name string) (bool, error)
	SetToggle(name string, v bool) error

	Radios() []string
	RadioChoices(name string) ([]string, error)
	GetRadioChoice(name string) (string, error)
	SetRadioChoice(name string, choice string) error

	// StartExposure begins an exposure of the given duration; light
	// distinguishes a light frame from a dark frame per §4.8.3.
	StartExposure(duration time.Duration, light bool) error
	AbortExposure() error

	// FetchCapture blocks until the most recently started exposure's frame
	// is available and returns it already read off the sensor, in whichever
	// of the two shapes §4.8.4 describes (RAW or processed).
	FetchCapture() (Capture, error)

	MaxNativeExposure() time.Duration
	SensorWidth() int
	SensorHeight() int
}

// Capture is one decoded frame as handed back by the native collaborator.
// Modeling it as an already-parsed struct (rather than an opaque file the
// server would need a RAW/EXIF-parsing library to decode) is a deliberate
// simplification: no such library appears anywhere in the retrieval pack,
// so the simulator plays the role both of the hardware and of that missing
// decode step, and DecodeCapture below applies exactly the same acceptance
// policy a real decode path would.
type Capture struct {
	// Raw is true for a RAW-format frame, false for a processed (JPEG/PNG-
	// equivalent) frame.
	Raw bool

	// CFA is the raw sensor's color filter array string (e.g. "RGGB");
	// meaningless when Raw is false.
	CFA string
	// FloatingPoint is true when a RAW frame's sample format is
	// floating-point rather than integer; meaningless when Raw is false.
	FloatingPoint bool

	Width, Height, Channels int
	// Pixels holds Width*Height*Channels samples in row-major (y, x, c)
	// order, matching imaging.Image's native layout.
	Pixels []float64

	// ExposureTime is the exposure time the native decoder derived from the
	// frame's own metadata: the EXIF ExposureTime tag for a processed image,
	// or the equivalent field off the RAW decoder's metadata block for a RAW
	// one. Nil if the decoder found no such tag; the caller falls back to
	// the wall-clock exposure time it measured itself in that case.
	ExposureTime *float64
}
