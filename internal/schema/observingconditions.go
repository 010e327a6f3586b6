package schema

import (
	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
	"github.com/stellarbridge/alpacaserver/internal/request"
)

func asObservingConditions(d device.Device) (device.ObservingConditionsDevice, *ascomerr.Error) {
	v, ok := d.(device.ObservingConditionsDevice)
	if !ok {
		return nil, ascomerr.ActionNotImplementedErr()
	}
	return v, nil
}

func ocGET(name string, get func(device.ObservingConditionsDevice) (any, *ascomerr.Error)) Action {
	return Action{Name: name, Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
		v, err := asObservingConditions(d)
		if err != nil {
			return Result{}, err
		}
		x, aerr := get(v)
		if aerr != nil {
			return Result{}, aerr
		}
		return Val(x), nil
	}}
}

var ObservingConditions = &Interface{
	Tag:    "observingconditions",
	Parent: Common,
	Actions: []Action{
		ocGET("averageperiod", func(v device.ObservingConditionsDevice) (any, *ascomerr.Error) { return v.AveragePeriod() }),
		{Name: "averageperiod", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asObservingConditions(d)
			if err != nil {
				return Result{}, err
			}
			x, err := requireFloat(p, "averageperiod")
			if err != nil {
				return Result{}, err
			}
			if aerr := v.SetAveragePeriod(x); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		ocGET("cloudcover", func(v device.ObservingConditionsDevice) (any, *ascomerr.Error) { return v.CloudCover() }),
		ocGET("dewpoint", func(v device.ObservingConditionsDevice) (any, *ascomerr.Error) { return v.DewPoint() }),
		ocGET("humidity", func(v device.ObservingConditionsDevice) (any, *ascomerr.Error) { return v.Humidity() }),
		ocGET("pressure", func(v device.ObservingConditionsDevice) (any, *ascomerr.Error) { return v.Pressure() }),
		ocGET("rainrate", func(v device.ObservingConditionsDevice) (any, *ascomerr.Error) { return v.RainRate() }),
		ocGET("skybrightness", func(v device.ObservingConditionsDevice) (any, *ascomerr.Error) { return v.SkyBrightness() }),
		ocGET("skyquality", func(v device.ObservingConditionsDevice) (any, *ascomerr.Error) { return v.SkyQuality() }),
		ocGET("skytemperature", func(v device.ObservingConditionsDevice) (any, *ascomerr.Error) { return v.SkyTemperature() }),
		ocGET("starfwhm", func(v device.ObservingConditionsDevice) (any, *ascomerr.Error) { return v.StarFWHM() }),
		ocGET("temperature", func(v device.ObservingConditionsDevice) (any, *ascomerr.Error) { return v.Temperature() }),
		ocGET("winddirection", func(v device.ObservingConditionsDevice) (any, *ascomerr.Error) { return v.WindDirection() }),
		ocGET("windgust", func(v device.ObservingConditionsDevice) (any, *ascomerr.Error) { return v.WindGust() }),
		ocGET("windspeed", func(v device.ObservingConditionsDevice) (any, *ascomerr.Error) { return v.WindSpeed() }),
		{Name: "sensordescription", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asObservingConditions(d)
			if err != nil {
				return Result{}, err
			}
			name, err := requireString(p, "sensorname")
			if err != nil {
				return Result{}, err
			}
			x, aerr := v.SensorDescription(name)
			if aerr != nil {
				return Result{}, aerr
			}
			return Val(x), nil
		}},
		{Name: "timesincelastupdate", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asObservingConditions(d)
			if err != nil {
				return Result{}, err
			}
			name := optionalString(p, "sensorname", "")
			x, aerr := v.TimeSinceLastUpdate(name)
			if aerr != nil {
				return Result{}, aerr
			}
			return Val(x), nil
		}},
		{Name: "refresh", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asObservingConditions(d)
			if err != nil {
				return Result{}, err
			}
			if aerr := v.Refresh(); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
	},
}
