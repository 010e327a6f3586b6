package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellarbridge/alpacaserver/internal/device"
)

type fakeDevice struct {
	*device.Base
}

func newFakeDevice(typeTag string, number int) *fakeDevice {
	return &fakeDevice{Base: device.NewBase(typeTag, number, "fake", "fake", "fake", "1.0", 1, nil)}
}

func TestRegistryLookup(t *testing.T) {
	r := New([]device.Device{
		newFakeDevice("telescope", 0),
		newFakeDevice("camera", 0),
		newFakeDevice("camera", 1),
	})

	e, ok := r.Lookup("camera", 1)
	require.True(t, ok)
	assert.Equal(t, "camera", e.Type)
	assert.Equal(t, 1, e.Number)

	_, ok = r.Lookup("camera", 2)
	assert.False(t, ok)

	_, ok = r.Lookup("dome", 0)
	assert.False(t, ok)
}

func TestRegistryByTypeOrdering(t *testing.T) {
	r := New([]device.Device{
		newFakeDevice("switch", 2),
		newFakeDevice("switch", 0),
		newFakeDevice("switch", 1),
	})

	list := r.ByType("switch")
	require.Len(t, list, 3)
	assert.Equal(t, 0, list[0].Number)
	assert.Equal(t, 1, list[1].Number)
	assert.Equal(t, 2, list[2].Number)
}

func TestRegistryAllGroupedByTypeThenNumber(t *testing.T) {
	r := New([]device.Device{
		newFakeDevice("telescope", 0),
		newFakeDevice("camera", 1),
		newFakeDevice("camera", 0),
	})

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "camera", all[0].Type)
	assert.Equal(t, 0, all[0].Number)
	assert.Equal(t, "camera", all[1].Type)
	assert.Equal(t, 1, all[1].Number)
	assert.Equal(t, "telescope", all[2].Type)
}

func TestEntryPoisonBlocksFurtherLocks(t *testing.T) {
	r := New([]device.Device{newFakeDevice("dome", 0)})
	e, ok := r.Lookup("dome", 0)
	require.True(t, ok)

	require.NoError(t, e.Lock())
	e.Poison()

	err := e.Lock()
	assert.ErrorIs(t, err, ErrPoisoned())
}
