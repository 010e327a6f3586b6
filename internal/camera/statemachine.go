package camera

import (
	"io"
	"math"
	"time"

	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
	"github.com/stellarbridge/alpacaserver/internal/imaging"
)

// StartExposure validates and begins an exposure, transitioning Idle to
// Waiting and returning immediately: the actual wait/expose/read/download
// sequence runs on a background goroutine that reacquires the lock only for
// its own brief state transitions, per §5's "long-running work runs on a
// background task owned by the camera" rule.
func (c *Camera) StartExposure(duration float64, light bool) *ascomerr.Error {
	c.mu.Lock()

	if c.state != device.CameraIdle {
		c.mu.Unlock()
		return ascomerr.InvalidOperationf("cannot start exposure while camera is in state %d", c.state)
	}
	if duration < c.exposureMin || duration > c.exposureMax {
		c.mu.Unlock()
		return ascomerr.InvalidValuef("duration %g out of range [%g,%g]", duration, c.exposureMin, c.exposureMax)
	}
	if c.exposureResolution > 0 {
		duration = math.Round(duration/c.exposureResolution) * c.exposureResolution
	}

	needBulb := time.Duration(duration*float64(time.Second)) > c.native.MaxNativeExposure()
	if needBulb && c.bulbKind == BulbNone {
		c.mu.Unlock()
		return ascomerr.InvalidValuef("duration %g exceeds native maximum and this camera has no bulb control", duration)
	}

	ctx := &exposureCtx{signal: make(chan exposureSignal, 1)}
	c.current = ctx
	c.state = device.CameraWaiting
	c.imageReady = false
	c.percent = 0
	c.lastErr = nil
	c.mu.Unlock()

	go c.runExposure(ctx, duration, light, needBulb)
	return nil
}

func (c *Camera) runExposure(ctx *exposureCtx, duration float64, light, needBulb bool) {
	c.mu.Lock()
	if c.current == ctx {
		c.state = device.CameraExposing
	}
	c.mu.Unlock()

	if needBulb {
		bulb, aerr := StartBulb(c.native, c.bulbKind, c.bulbRadio)
		if aerr != nil {
			c.failLocked(ctx, aerr)
			return
		}
		ctx.bulb = bulb
	} else if err := c.native.StartExposure(time.Duration(duration*float64(time.Second)), light); err != nil {
		c.failLocked(ctx, ascomerr.Unspecifiedf("native StartExposure: %s", err))
		return
	}

	started := time.Now()
	sig := exposureSignal(0)
	select {
	case <-time.After(time.Duration(duration * float64(time.Second))):
	case sig = <-ctx.signal:
	}

	if ctx.bulb != nil {
		ctx.bulb.Stop()
	}

	if sig == sigAbort {
		// AbortExposure already reset state to Idle and detached ctx; nothing
		// further to do. The (possibly still in-flight) native capture is
		// simply discarded.
		return
	}

	c.mu.Lock()
	if c.current != ctx {
		c.mu.Unlock()
		return
	}
	c.state = device.CameraReading
	c.percent = 50
	c.mu.Unlock()

	capture, err := c.native.FetchCapture()
	if err != nil {
		c.failLocked(ctx, ascomerr.Unspecifiedf("FetchCapture: %s", err))
		return
	}

	c.mu.Lock()
	if c.current != ctx {
		c.mu.Unlock()
		return
	}
	c.state = device.CameraDownload
	c.percent = 90
	c.mu.Unlock()

	actualDuration := time.Since(started).Seconds()
	img, sensorType, exposureTime, aerr := DecodeCapture(capture)
	if aerr != nil {
		c.failLocked(ctx, aerr)
		return
	}

	recorded := actualDuration
	if exposureTime != nil {
		recorded = *exposureTime
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != ctx {
		return
	}
	c.lastImage = img
	c.lastSensorType = sensorType
	c.lastDuration = &recorded
	c.lastStart = &started
	c.imageReady = true
	c.state = device.CameraIdle
	c.percent = 100
	c.current = nil
}

// failLocked records a terminal exposure error: the camera moves to Error
// and stays there (ImageReady stays false) until AbortExposure resets it to
// Idle; StartExposure is rejected while the camera is in Error.
func (c *Camera) failLocked(ctx *exposureCtx, aerr *ascomerr.Error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != ctx {
		return
	}
	c.state = device.CameraError
	c.imageReady = false
	c.lastErr = aerr
	c.current = nil
}

// AbortExposure discards any partial image and returns the camera to Idle
// immediately; idempotent when already Idle. Also the only client-reachable
// way out of Error (per §4.8.3's "* (except Idle)" row), since failLocked
// leaves c.current nil once a capture has failed.
func (c *Camera) AbortExposure() *ascomerr.Error {
	c.mu.Lock()
	if c.state == device.CameraIdle {
		c.mu.Unlock()
		return nil
	}
	ctx := c.current
	c.current = nil
	c.state = device.CameraIdle
	c.imageReady = false
	c.percent = 0
	c.mu.Unlock()

	if ctx != nil {
		sendSignal(ctx, sigAbort)
		if ctx.bulb != nil {
			ctx.bulb.Stop()
		}
	}
	_ = c.native.AbortExposure()
	return nil
}

// StopExposure forces an early shutter close but lets the in-flight
// goroutine continue through Reading/Download so a possibly-short image is
// still produced, per §4.8.3. Idempotent when already Idle.
func (c *Camera) StopExposure() *ascomerr.Error {
	c.mu.Lock()
	ctx := c.current
	c.mu.Unlock()
	if ctx == nil {
		return nil
	}
	sendSignal(ctx, sigStop)
	return nil
}

func sendSignal(ctx *exposureCtx, sig exposureSignal) {
	select {
	case ctx.signal <- sig:
	default:
	}
}

// ImageArray packages the last decoded frame, already transposed into
// ASCOM axis order, for the "imagearray"/"imagearrayvariant" actions.
func (c *Camera) ImageArray() (*device.ImageArray, *ascomerr.Error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.imageReady || c.lastImage == nil {
		return nil, ascomerr.New(ascomerr.ValueNotSet, "no image has been downloaded yet")
	}
	img := c.lastImage
	return &device.ImageArray{
		Rank: img.Rank(),
		Type: int(img.ElementType),
		Dims: img.Dims(),
		Data: img.ASCOMArray(),
	}, nil
}

// WriteImageBytes implements device.ImageBytesWriter, serializing the last
// decoded frame straight to the ImageBytes wire encoding without building
// the nested-array JSON value first.
func (c *Camera) WriteImageBytes(w io.Writer, clientTransactionID, serverTransactionID uint32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.imageReady || c.lastImage == nil {
		return ascomerr.New(ascomerr.ValueNotSet, "no image has been downloaded yet")
	}
	return imaging.WriteImageBytes(w, clientTransactionID, serverTransactionID, 0, c.lastImage)
}
