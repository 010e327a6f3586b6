package schema

import (
	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
	"github.com/stellarbridge/alpacaserver/internal/request"
)

func asSwitch(d device.Device) (device.SwitchDevice, *ascomerr.Error) {
	v, ok := d.(device.SwitchDevice)
	if !ok {
		return nil, ascomerr.ActionNotImplementedErr()
	}
	return v, nil
}

func switchIndexedGET(name string, get func(device.SwitchDevice, int) (any, *ascomerr.Error)) Action {
	return Action{Name: name, Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
		v, err := asSwitch(d)
		if err != nil {
			return Result{}, err
		}
		id, err := requireInt(p, "id")
		if err != nil {
			return Result{}, err
		}
		x, aerr := get(v, id)
		if aerr != nil {
			return Result{}, aerr
		}
		return Val(x), nil
	}}
}

var Switch = &Interface{
	Tag:    "switch",
	Parent: Common,
	Actions: []Action{
		{Name: "maxswitch", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asSwitch(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.MaxSwitch()), nil
		}},
		switchIndexedGET("canwrite", func(v device.SwitchDevice, id int) (any, *ascomerr.Error) { return v.CanWrite(id) }),
		switchIndexedGET("getswitch", func(v device.SwitchDevice, id int) (any, *ascomerr.Error) { return v.GetSwitch(id) }),
		switchIndexedGET("getswitchdescription", func(v device.SwitchDevice, id int) (any, *ascomerr.Error) { return v.GetSwitchDescription(id) }),
		switchIndexedGET("getswitchname", func(v device.SwitchDevice, id int) (any, *ascomerr.Error) { return v.GetSwitchName(id) }),
		switchIndexedGET("getswitchvalue", func(v device.SwitchDevice, id int) (any, *ascomerr.Error) { return v.GetSwitchValue(id) }),
		switchIndexedGET("minswitchvalue", func(v device.SwitchDevice, id int) (any, *ascomerr.Error) { return v.MinSwitchValue(id) }),
		switchIndexedGET("maxswitchvalue", func(v device.SwitchDevice, id int) (any, *ascomerr.Error) { return v.MaxSwitchValue(id) }),
		switchIndexedGET("switchstep", func(v device.SwitchDevice, id int) (any, *ascomerr.Error) { return v.SwitchStep(id) }),
		{Name: "setswitch", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asSwitch(d)
			if err != nil {
				return Result{}, err
			}
			id, err := requireInt(p, "id")
			if err != nil {
				return Result{}, err
			}
			state, err := requireBool(p, "state")
			if err != nil {
				return Result{}, err
			}
			if aerr := v.SetSwitch(id, state); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "setswitchname", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asSwitch(d)
			if err != nil {
				return Result{}, err
			}
			id, err := requireInt(p, "id")
			if err != nil {
				return Result{}, err
			}
			name, err := requireString(p, "name")
			if err != nil {
				return Result{}, err
			}
			if aerr := v.SetSwitchName(id, name); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "setswitchvalue", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asSwitch(d)
			if err != nil {
				return Result{}, err
			}
			id, err := requireInt(p, "id")
			if err != nil {
				return Result{}, err
			}
			value, err := requireFloat(p, "value")
			if err != nil {
				return Result{}, err
			}
			if aerr := v.SetSwitchValue(id, value); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
	},
}
