package schema

import (
	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
	"github.com/stellarbridge/alpacaserver/internal/request"
)

// Common is the __common__ interface every device-type interface inherits
// (§4.7): connected, the five identity properties (description, driverinfo,
// driverversion, interfaceversion, name), supportedactions, and the
// action/command* passthroughs.
var Common = &Interface{
	Tag: "__common__",
	Actions: []Action{
		{Name: "connected", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			return Val(d.Connected()), nil
		}},
		{Name: "connected", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			v, err := requireBool(p, "connected")
			if err != nil {
				return Result{}, err
			}
			if err := d.SetConnected(v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		{Name: "description", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			return Val(d.Description()), nil
		}},
		{Name: "driverinfo", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			return Val(d.DriverInfo()), nil
		}},
		{Name: "driverversion", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			return Val(d.DriverVersion()), nil
		}},
		{Name: "interfaceversion", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			return Val(d.InterfaceVersion()), nil
		}},
		{Name: "name", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			return Val(d.Name()), nil
		}},
		{Name: "supportedactions", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			return Val(d.SupportedActions()), nil
		}},
		{Name: "action", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			action, err := requireString(p, "action")
			if err != nil {
				return Result{}, err
			}
			params := optionalString(p, "parameters", "")
			out, aerr := d.Action(action, params)
			if aerr != nil {
				return Result{}, aerr
			}
			return Val(out), nil
		}},
		{Name: "commandblind", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			cmd, err := requireString(p, "command")
			if err != nil {
				return Result{}, err
			}
			raw, err := optionalBool(p, "raw", false)
			if err != nil {
				return Result{}, err
			}
			if aerr := d.CommandBlind(cmd, raw); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "commandbool", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			cmd, err := requireString(p, "command")
			if err != nil {
				return Result{}, err
			}
			raw, err := optionalBool(p, "raw", false)
			if err != nil {
				return Result{}, err
			}
			out, aerr := d.CommandBool(cmd, raw)
			if aerr != nil {
				return Result{}, aerr
			}
			return Val(out), nil
		}},
		{Name: "commandstring", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			cmd, err := requireString(p, "command")
			if err != nil {
				return Result{}, err
			}
			raw, err := optionalBool(p, "raw", false)
			if err != nil {
				return Result{}, err
			}
			out, aerr := d.CommandString(cmd, raw)
			if aerr != nil {
				return Result{}, aerr
			}
			return Val(out), nil
		}},
	},
}
