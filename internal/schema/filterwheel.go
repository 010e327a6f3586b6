package schema

import (
	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
	"github.com/stellarbridge/alpacaserver/internal/request"
)

func asFilterWheel(d device.Device) (device.FilterWheelDevice, *ascomerr.Error) {
	v, ok := d.(device.FilterWheelDevice)
	if !ok {
		return nil, ascomerr.ActionNotImplementedErr()
	}
	return v, nil
}

var FilterWheel = &Interface{
	Tag:    "filterwheel",
	Parent: Common,
	Actions: []Action{
		{Name: "focusoffsets", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asFilterWheel(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.FocusOffsets()), nil
		}},
		{Name: "names", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asFilterWheel(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.Names()), nil
		}},
		{Name: "position", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asFilterWheel(d)
			if err != nil {
				return Result{}, err
			}
			x, aerr := v.Position()
			if aerr != nil {
				return Result{}, aerr
			}
			return Val(x), nil
		}},
		{Name: "position", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asFilterWheel(d)
			if err != nil {
				return Result{}, err
			}
			x, err := requireInt(p, "position")
			if err != nil {
				return Result{}, err
			}
			if aerr := v.SetPosition(x); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
	},
}
