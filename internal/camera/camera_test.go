package camera

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellarbridge/alpacaserver/internal/device"
)

// failingCamera wraps Simulator but always fails FetchCapture, so tests can
// drive the camera into CameraError without a real faulty sensor.
type failingCamera struct {
	*Simulator
}

func (f *failingCamera) FetchCapture() (Capture, error) {
	return Capture{}, fmt.Errorf("simulated sensor failure")
}

func newTestCamera(t *testing.T) *Camera {
	t.Helper()
	sim := NewSimulator(16, 12)
	cam, err := New(0, "Test Camera", sim)
	require.NoError(t, err)
	return cam
}

func waitForState(t *testing.T, cam *Camera, want device.CameraState, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cam.CameraState() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("camera did not reach state %d within %s (last state %d)", want, timeout, cam.CameraState())
}

func TestStartExposureCompletesAndProducesImage(t *testing.T) {
	cam := newTestCamera(t)
	assert.Equal(t, device.CameraIdle, cam.CameraState())

	aerr := cam.StartExposure(0.01, true)
	require.Nil(t, aerr)
	assert.Equal(t, device.CameraWaiting, cam.CameraState())

	waitForState(t, cam, device.CameraIdle, time.Second)
	assert.True(t, cam.ImageReady())
	assert.Equal(t, 100, cam.PercentCompleted())

	img, aerr := cam.ImageArray()
	require.Nil(t, aerr)
	assert.Equal(t, 2, img.Rank)
	assert.Equal(t, [3]int{16, 12, 0}, img.Dims)
}

func TestStartExposureRejectsOutOfRangeDuration(t *testing.T) {
	cam := newTestCamera(t)
	aerr := cam.StartExposure(10000, true)
	require.NotNil(t, aerr)
	assert.Equal(t, int32(1025), int32(aerr.Code)) // INVALID_VALUE = 0x401
}

func TestStartExposureRejectsWhileNotIdle(t *testing.T) {
	cam := newTestCamera(t)
	require.Nil(t, cam.StartExposure(1, true))
	aerr := cam.StartExposure(1, true)
	require.NotNil(t, aerr)
}

func TestAbortExposureDiscardsImage(t *testing.T) {
	cam := newTestCamera(t)
	require.Nil(t, cam.StartExposure(5, true))
	assert.Equal(t, device.CameraWaiting, cam.CameraState())

	require.Nil(t, cam.AbortExposure())
	assert.Equal(t, device.CameraIdle, cam.CameraState())
	assert.False(t, cam.ImageReady())

	// idempotent
	require.Nil(t, cam.AbortExposure())
}

func TestAbortExposureRecoversFromError(t *testing.T) {
	sim := NewSimulator(16, 12)
	cam, err := New(0, "Test Camera", &failingCamera{sim})
	require.NoError(t, err)

	require.Nil(t, cam.StartExposure(0.01, true))
	waitForState(t, cam, device.CameraError, time.Second)
	assert.False(t, cam.ImageReady())

	require.Nil(t, cam.AbortExposure())
	assert.Equal(t, device.CameraIdle, cam.CameraState())
	assert.False(t, cam.ImageReady())

	// idempotent once already Idle
	require.Nil(t, cam.AbortExposure())
}

func TestImageArrayUnsetBeforeFirstExposure(t *testing.T) {
	cam := newTestCamera(t)
	_, aerr := cam.ImageArray()
	require.NotNil(t, aerr)
}

func TestGainOffsetReadoutModeCachedRadios(t *testing.T) {
	cam := newTestCamera(t)

	gains, aerr := cam.Gains()
	require.Nil(t, aerr)
	assert.Contains(t, gains, "100")

	idx, aerr := cam.Gain()
	require.Nil(t, aerr)
	assert.Equal(t, 0, idx)

	require.Nil(t, cam.SetGain(1))
	idx, aerr = cam.Gain()
	require.Nil(t, aerr)
	assert.Equal(t, 1, idx)

	aerr = cam.SetGain(99)
	require.NotNil(t, aerr)
}

func TestSubframeValidation(t *testing.T) {
	cam := newTestCamera(t)
	require.Nil(t, cam.SetNumXY(16, 12))
	aerr := cam.SetNumXY(17, 12)
	require.NotNil(t, aerr)
}

func TestBinningRequiresSymmetryWhenUnsupported(t *testing.T) {
	cam := newTestCamera(t)
	assert.False(t, cam.CanAsymmetricBin())
	aerr := cam.SetBinX(2)
	require.NotNil(t, aerr)
}
