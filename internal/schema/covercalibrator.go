package schema

import (
	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
	"github.com/stellarbridge/alpacaserver/internal/request"
)

func asCoverCalibrator(d device.Device) (device.CoverCalibratorDevice, *ascomerr.Error) {
	v, ok := d.(device.CoverCalibratorDevice)
	if !ok {
		return nil, ascomerr.ActionNotImplementedErr()
	}
	return v, nil
}

var CoverCalibrator = &Interface{
	Tag:    "covercalibrator",
	Parent: Common,
	Actions: []Action{
		{Name: "brightness", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asCoverCalibrator(d)
			if err != nil {
				return Result{}, err
			}
			x, aerr := v.Brightness()
			if aerr != nil {
				return Result{}, aerr
			}
			return Val(x), nil
		}},
		{Name: "calibratorstate", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asCoverCalibrator(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.CalibratorState()), nil
		}},
		{Name: "coverstate", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asCoverCalibrator(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.CoverState()), nil
		}},
		{Name: "maxbrightness", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asCoverCalibrator(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.MaxBrightness()), nil
		}},
		{Name: "calibratoroff", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asCoverCalibrator(d)
			if err != nil {
				return Result{}, err
			}
			if aerr := v.CalibratorOff(); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "calibratoron", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asCoverCalibrator(d)
			if err != nil {
				return Result{}, err
			}
			b, err := requireInt(p, "brightness")
			if err != nil {
				return Result{}, err
			}
			if aerr := v.CalibratorOn(b); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "closecover", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asCoverCalibrator(d)
			if err != nil {
				return Result{}, err
			}
			if aerr := v.CloseCover(); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "haltcover", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asCoverCalibrator(d)
			if err != nil {
				return Result{}, err
			}
			if aerr := v.HaltCover(); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "opencover", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asCoverCalibrator(d)
			if err != nil {
				return Result{}, err
			}
			if aerr := v.OpenCover(); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
	},
}
