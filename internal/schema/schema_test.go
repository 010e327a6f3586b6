package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
	"github.com/stellarbridge/alpacaserver/internal/request"
)

func TestChildShadowsParentOnCollision(t *testing.T) {
	parent := &Interface{
		Tag: "__test_parent__",
		Actions: []Action{
			{Name: "name", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
				return Val("parent"), nil
			}},
		},
	}
	child := &Interface{
		Tag:    "__test_child__",
		Parent: parent,
		Actions: []Action{
			{Name: "name", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
				return Val("child"), nil
			}},
		},
	}

	act, ok := child.Lookup("name", GET)
	assert.True(t, ok)
	res, err := act.Handler(nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, "child", res.Value)
}

func TestLookupFallsBackToParent(t *testing.T) {
	act, ok := Camera.Lookup("connected", GET)
	assert.True(t, ok)
	assert.NotNil(t, act.Handler)
}

func TestLookupMissesUnknownAction(t *testing.T) {
	_, ok := Telescope.Lookup("doesnotexist", GET)
	assert.False(t, ok)
}

func TestLookupRespectsVerb(t *testing.T) {
	_, ok := Common.Lookup("connected", PUT)
	assert.True(t, ok)
	_, ok = Common.Lookup("description", PUT)
	assert.False(t, ok)
}

func TestEveryDeviceInterfaceResolvesCommonActions(t *testing.T) {
	for _, iface := range []*Interface{Camera, Telescope, Dome, FilterWheel, Focuser, Rotator, Switch, SafetyMonitor, ObservingConditions, CoverCalibrator} {
		_, ok := iface.Lookup("connected", GET)
		assert.True(t, ok, "interface %s should inherit connected", iface.Tag)
		_, ok = iface.Lookup("supportedactions", GET)
		assert.True(t, ok, "interface %s should inherit supportedactions", iface.Tag)
	}
}
