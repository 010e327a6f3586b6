package schema

import (
	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
	"github.com/stellarbridge/alpacaserver/internal/request"
)

func asRotator(d device.Device) (device.RotatorDevice, *ascomerr.Error) {
	v, ok := d.(device.RotatorDevice)
	if !ok {
		return nil, ascomerr.ActionNotImplementedErr()
	}
	return v, nil
}

var Rotator = &Interface{
	Tag:    "rotator",
	Parent: Common,
	Actions: []Action{
		{Name: "canreverse", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asRotator(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.CanReverse()), nil
		}},
		{Name: "ismoving", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asRotator(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.IsMoving()), nil
		}},
		{Name: "mechanicalposition", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asRotator(d)
			if err != nil {
				return Result{}, err
			}
			x, aerr := v.MechanicalPosition()
			if aerr != nil {
				return Result{}, aerr
			}
			return Val(x), nil
		}},
		{Name: "position", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asRotator(d)
			if err != nil {
				return Result{}, err
			}
			x, aerr := v.Position()
			if aerr != nil {
				return Result{}, aerr
			}
			return Val(x), nil
		}},
		{Name: "reverse", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asRotator(d)
			if err != nil {
				return Result{}, err
			}
			x, aerr := v.Reverse()
			if aerr != nil {
				return Result{}, aerr
			}
			return Val(x), nil
		}},
		{Name: "reverse", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asRotator(d)
			if err != nil {
				return Result{}, err
			}
			b, err := requireBool(p, "reverse")
			if err != nil {
				return Result{}, err
			}
			if aerr := v.SetReverse(b); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "stepsize", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asRotator(d)
			if err != nil {
				return Result{}, err
			}
			x, aerr := v.StepSize()
			if aerr != nil {
				return Result{}, aerr
			}
			return Val(x), nil
		}},
		{Name: "targetposition", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asRotator(d)
			if err != nil {
				return Result{}, err
			}
			x, aerr := v.TargetPosition()
			if aerr != nil {
				return Result{}, aerr
			}
			return Val(x), nil
		}},
		{Name: "halt", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asRotator(d)
			if err != nil {
				return Result{}, err
			}
			if aerr := v.Halt(); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "move", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asRotator(d)
			if err != nil {
				return Result{}, err
			}
			x, err := requireFloat(p, "position")
			if err != nil {
				return Result{}, err
			}
			if aerr := v.Move(x); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "moveabsolute", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asRotator(d)
			if err != nil {
				return Result{}, err
			}
			x, err := requireFloat(p, "position")
			if err != nil {
				return Result{}, err
			}
			if aerr := v.MoveAbsolute(x); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "movemechanical", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asRotator(d)
			if err != nil {
				return Result{}, err
			}
			x, err := requireFloat(p, "position")
			if err != nil {
				return Result{}, err
			}
			if aerr := v.MoveMechanical(x); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "sync", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asRotator(d)
			if err != nil {
				return Result{}, err
			}
			x, err := requireFloat(p, "position")
			if err != nil {
				return Result{}, err
			}
			if aerr := v.Sync(x); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
	},
}
