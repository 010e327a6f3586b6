package schema

import (
	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
	"github.com/stellarbridge/alpacaserver/internal/request"
)

func asSafetyMonitor(d device.Device) (device.SafetyMonitorDevice, *ascomerr.Error) {
	v, ok := d.(device.SafetyMonitorDevice)
	if !ok {
		return nil, ascomerr.ActionNotImplementedErr()
	}
	return v, nil
}

var SafetyMonitor = &Interface{
	Tag:    "safetymonitor",
	Parent: Common,
	Actions: []Action{
		{Name: "issafe", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := asSafetyMonitor(d)
			if err != nil {
				return Result{}, err
			}
			return Val(v.IsSafe()), nil
		}},
	},
}
