package camera

import (
	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
	"github.com/stellarbridge/alpacaserver/internal/imaging"
)

// DecodeCapture applies §4.8.4's two decode paths to a frame handed back by
// the native collaborator, returning the ASCOM-ready pixel buffer, the
// sensor type to report, and the exposure duration to record (nil if the
// decoder's own metadata didn't carry one, leaving the wall-clock measured
// duration as the caller's fallback).
//
// RAW frames are accepted only when their CFA is RGGB Bayer and their
// sample format is integer; both a non-RGGB CFA and a floating-point
// payload are rejected outright rather than guessed at, since this server
// has no way to validate a debayer result for patterns or sample formats it
// was never told how to handle.
func DecodeCapture(c Capture) (*imaging.Image, device.SensorType, *float64, *ascomerr.Error) {
	if c.Raw {
		return decodeRaw(c)
	}
	return decodeProcessed(c)
}

func decodeRaw(c Capture) (*imaging.Image, device.SensorType, *float64, *ascomerr.Error) {
	if c.FloatingPoint {
		return nil, 0, nil, ascomerr.InvalidOperationf("floating-point RAW payloads are not supported")
	}
	if c.CFA != "RGGB" {
		return nil, 0, nil, ascomerr.InvalidOperationf("unsupported color filter array %q: only RGGB is supported", c.CFA)
	}
	img := &imaging.Image{
		Width:       c.Width,
		Height:      c.Height,
		Channels:    1,
		ElementType: imaging.Int16,
		Data:        c.Pixels,
	}
	return img, device.SensorRGGB, c.ExposureTime, nil
}

func decodeProcessed(c Capture) (*imaging.Image, device.SensorType, *float64, *ascomerr.Error) {
	channels := c.Channels
	if channels <= 0 {
		channels = 1
	}
	sensorType := device.SensorMonochrome
	if channels > 1 {
		sensorType = device.SensorColor
	}
	img := &imaging.Image{
		Width:       c.Width,
		Height:      c.Height,
		Channels:    channels,
		ElementType: imaging.Int16,
		Data:        c.Pixels,
	}
	return img, sensorType, c.ExposureTime, nil
}
