package obscond

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedSourceProvidesAllReadings(t *testing.T) {
	oc := New(0, "Test Station", NewSimulatedSource())

	_, aerr := oc.CloudCover()
	require.Nil(t, aerr)
	_, aerr = oc.Temperature()
	require.Nil(t, aerr)
	_, aerr = oc.WindSpeed()
	require.Nil(t, aerr)
}

func TestRefreshUpdatesTimeSinceLastUpdate(t *testing.T) {
	oc := New(0, "Test Station", NewSimulatedSource())

	aerr := oc.Refresh()
	require.Nil(t, aerr)

	elapsed, terr := oc.TimeSinceLastUpdate("")
	require.Nil(t, terr)
	assert.GreaterOrEqual(t, elapsed, 0.0)
}

func TestTimeSinceLastUpdateRejectsUnknownProperty(t *testing.T) {
	oc := New(0, "Test Station", NewSimulatedSource())
	_, terr := oc.TimeSinceLastUpdate("not-a-real-property")
	require.NotNil(t, terr)
}

func TestSensorDescriptionRejectsUnknownProperty(t *testing.T) {
	oc := New(0, "Test Station", NewSimulatedSource())
	_, serr := oc.SensorDescription("not-a-real-property")
	require.NotNil(t, serr)
}

func TestAveragePeriodRoundTrip(t *testing.T) {
	oc := New(0, "Test Station", NewSimulatedSource())

	aerr := oc.SetAveragePeriod(5)
	require.Nil(t, aerr)
	v, gerr := oc.AveragePeriod()
	require.Nil(t, gerr)
	assert.Equal(t, 5.0, v)
}

func TestSetAveragePeriodRejectsNegative(t *testing.T) {
	oc := New(0, "Test Station", NewSimulatedSource())
	aerr := oc.SetAveragePeriod(-1)
	require.NotNil(t, aerr)
}

// unsetSource never populates any reading, exercising the ValueNotSet path.
type unsetSource struct{}

func (unsetSource) Latest() Reading { return Reading{} }
func (unsetSource) Refresh() error  { return nil }

func TestUnsetPropertyReturnsValueNotSet(t *testing.T) {
	oc := New(0, "Test Station", unsetSource{})
	_, aerr := oc.CloudCover()
	require.NotNil(t, aerr)
}
