package schema

import (
	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
	"github.com/stellarbridge/alpacaserver/internal/request"
)

func asFocuser(d device.Device) (device.FocuserDevice, *ascomerr.Error) {
	v, ok := d.(device.FocuserDevice)
	if !ok {
		return nil, ascomerr.ActionNotImplementedErr()
	}
	return v, nil
}

var Focuser = &Interface{
	Tag:    "focuser",
	Parent: Common,
	Actions: []Action{
		{Name: "absolute", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asFocuser(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.Absolute()), nil
		}},
		{Name: "ismoving", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asFocuser(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.IsMoving()), nil
		}},
		{Name: "maxincrement", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asFocuser(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.MaxIncrement()), nil
		}},
		{Name: "maxstep", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asFocuser(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.MaxStep()), nil
		}},
		{Name: "position", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asFocuser(d)
			if err != nil {
				return Result{}, err
			}
			x, aerr := v.Position()
			if aerr != nil {
				return Result{}, aerr
			}
			return Val(x), nil
		}},
		{Name: "stepsize", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asFocuser(d)
			if err != nil {
				return Result{}, err
			}
			x, aerr := v.StepSize()
			if aerr != nil {
				return Result{}, aerr
			}
			return Val(x), nil
		}},
		{Name: "tempcomp", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asFocuser(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.TempComp()), nil
		}},
		{Name: "tempcomp", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asFocuser(d)
			if err != nil {
				return Result{}, err
			}
			b, err := requireBool(p, "tempcomp")
			if err != nil {
				return Result{}, err
			}
			if aerr := v.SetTempComp(b); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "tempcompavailable", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asFocuser(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.TempCompAvailable()), nil
		}},
		{Name: "temperature", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asFocuser(d)
			if err != nil {
				return Result{}, err
			}
			x, aerr := v.Temperature()
			if aerr != nil {
				return Result{}, aerr
			}
			return Val(x), nil
		}},
		{Name: "halt", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asFocuser(d)
			if err != nil {
				return Result{}, err
			}
			if aerr := v.Halt(); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "move", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asFocuser(d)
			if err != nil {
				return Result{}, err
			}
			pos, err := requireInt(p, "position")
			if err != nil {
				return Result{}, err
			}
			if aerr := v.Move(pos); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
	},
}
