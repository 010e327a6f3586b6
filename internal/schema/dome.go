package schema

import (
	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
	"github.com/stellarbridge/alpacaserver/internal/request"
)

func asDome(d device.Device) (device.DomeDevice, *ascomerr.Error) {
	v, ok := d.(device.DomeDevice)
	if !ok {
		return nil, ascomerr.ActionNotImplementedErr()
	}
	return v, nil
}

var Dome = &Interface{
	Tag:    "dome",
	Parent: Common,
	Actions: []Action{
		{Name: "altitude", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			x, aerr := v.Altitude()
			if aerr != nil {
				return Result{}, aerr
			}
			return Val(x), nil
		}},
		{Name: "athome", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.AtHome()), nil
		}},
		{Name: "atpark", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.AtPark()), nil
		}},
		{Name: "azimuth", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			x, aerr := v.Azimuth()
			if aerr != nil {
				return Result{}, aerr
			}
			return Val(x), nil
		}},
		{Name: "canfindhome", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.CanFindHome()), nil
		}},
		{Name: "canpark", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.CanPark()), nil
		}},
		{Name: "cansetaltitude", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.CanSetAltitude()), nil
		}},
		{Name: "cansetazimuth", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.CanSetAzimuth()), nil
		}},
		{Name: "cansetpark", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.CanSetPark()), nil
		}},
		{Name: "cansetshutter", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.CanSetShutter()), nil
		}},
		{Name: "canslave", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.CanSlave()), nil
		}},
		{Name: "cansyncazimuth", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.CanSyncAzimuth()), nil
		}},
		{Name: "shutterstatus", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.ShutterStatus()), nil
		}},
		{Name: "slaved", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.Slaved()), nil
		}},
		{Name: "slaved", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			b, err := requireBool(p, "slaved")
			if err != nil {
				return Result{}, err
			}
			if aerr := v.SetSlaved(b); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "slewing", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.Slewing()), nil
		}},
		{Name: "abortslew", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			if aerr := v.AbortSlew(); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "closeshutter", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			if aerr := v.CloseShutter(); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "findhome", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			if aerr := v.FindHome(); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "openshutter", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			if aerr := v.OpenShutter(); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "park", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			if aerr := v.Park(); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "setpark", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			if aerr := v.SetPark(); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "slewtoaltitude", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			x, err := requireFloat(p, "altitude")
			if err != nil {
				return Result{}, err
			}
			if aerr := v.SlewToAltitude(x); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "slewtoazimuth", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			x, err := requireFloat(p, "azimuth")
			if err != nil {
				return Result{}, err
			}
			if aerr := v.SlewToAzimuth(x); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "synctoazimuth", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asDome(d)
			if err != nil {
				return Result{}, err
			}
			x, err := requireFloat(p, "azimuth")
			if err != nil {
				return Result{}, err
			}
			if aerr := v.SyncToAzimuth(x); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
	},
}
