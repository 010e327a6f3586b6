package covercalibrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialState(t *testing.T) {
	c := New(0, "Test Panel")
	assert.Equal(t, coverClosed, c.CoverState())
	assert.Equal(t, calibratorOff, c.CalibratorState())
	assert.Equal(t, 255, c.MaxBrightness())
}

func TestCalibratorOnOff(t *testing.T) {
	c := New(0, "Test Panel")

	aerr := c.CalibratorOn(128)
	require.Nil(t, aerr)
	assert.Equal(t, calibratorReady, c.CalibratorState())
	b, berr := c.Brightness()
	require.Nil(t, berr)
	assert.Equal(t, 128, b)

	aerr = c.CalibratorOff()
	require.Nil(t, aerr)
	assert.Equal(t, calibratorOff, c.CalibratorState())
	b, berr = c.Brightness()
	require.Nil(t, berr)
	assert.Equal(t, 0, b)
}

func TestCalibratorOnRejectsOutOfRangeBrightness(t *testing.T) {
	c := New(0, "Test Panel")
	aerr := c.CalibratorOn(256)
	require.NotNil(t, aerr)
}

func TestCoverOpenClose(t *testing.T) {
	c := New(0, "Test Panel")

	require.Nil(t, c.OpenCover())
	assert.Equal(t, coverOpen, c.CoverState())

	require.Nil(t, c.CloseCover())
	assert.Equal(t, coverClosed, c.CoverState())

	require.Nil(t, c.HaltCover())
}
