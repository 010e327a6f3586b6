package schema

import (
	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
	"github.com/stellarbridge/alpacaserver/internal/request"
)

func asTelescope(d device.Device) (device.TelescopeDevice, *ascomerr.Error) {
	t, ok := d.(device.TelescopeDevice)
	if !ok {
		return nil, ascomerr.ActionNotImplementedErr()
	}
	return t, nil
}

func telGET(name string, get func(device.TelescopeDevice) any) Action {
	return Action{Name: name, Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
		t, err := asTelescope(d)
		if err != nil {
			return Result{}, err
		}
		return Val(get(t)), nil
	}}
}

func telGETErr(name string, get func(device.TelescopeDevice) (any, *ascomerr.Error)) Action {
	return Action{Name: name, Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
		t, err := asTelescope(d)
		if err != nil {
			return Result{}, err
		}
		v, aerr := get(t)
		if aerr != nil {
			return Result{}, aerr
		}
		return Val(v), nil
	}}
}

// Telescope is the device interface for the "telescope" URL segment.
var Telescope = &Interface{
	Tag:    "telescope",
	Parent: Common,
	Actions: []Action{
		telGET("alignmentmode", func(t device.TelescopeDevice) any { return t.AlignmentMode() }),
		telGETErr("altitude", func(t device.TelescopeDevice) (any, *ascomerr.Error) { return t.Altitude() }),
		telGET("aperturearea", func(t device.TelescopeDevice) any { return t.ApertureArea() }),
		telGET("aperturediameter", func(t device.TelescopeDevice) any { return t.ApertureDiameter() }),
		telGET("athome", func(t device.TelescopeDevice) any { return t.AtHome() }),
		telGET("atpark", func(t device.TelescopeDevice) any { return t.AtPark() }),
		telGETErr("azimuth", func(t device.TelescopeDevice) (any, *ascomerr.Error) { return t.Azimuth() }),
		telGET("canfindhome", func(t device.TelescopeDevice) any { return t.CanFindHome() }),
		telGET("canpark", func(t device.TelescopeDevice) any { return t.CanPark() }),
		telGET("canpulseguide", func(t device.TelescopeDevice) any { return t.CanPulseGuide() }),
		telGET("cansettracking", func(t device.TelescopeDevice) any { return t.CanSetTracking() }),
		telGET("canslew", func(t device.TelescopeDevice) any { return t.CanSlew() }),
		telGET("cansync", func(t device.TelescopeDevice) any { return t.CanSync() }),
		telGET("canunpark", func(t device.TelescopeDevice) any { return t.CanUnpark() }),
		telGETErr("declination", func(t device.TelescopeDevice) (any, *ascomerr.Error) { return t.Declination() }),
		telGETErr("declinationrate", func(t device.TelescopeDevice) (any, *ascomerr.Error) { return t.DeclinationRate() }),
		{Name: "declinationrate", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireFloat(p, "declinationrate")
			if err != nil {
				return Result{}, err
			}
			if err := t.SetDeclinationRate(v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		telGETErr("doesrefraction", func(t device.TelescopeDevice) (any, *ascomerr.Error) { return t.DoesRefraction() }),
		{Name: "doesrefraction", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireBool(p, "doesrefraction")
			if err != nil {
				return Result{}, err
			}
			if err := t.SetDoesRefraction(v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		telGET("equatorialsystem", func(t device.TelescopeDevice) any { return t.EquatorialSystem() }),
		telGET("focallength", func(t device.TelescopeDevice) any { return t.FocalLength() }),
		telGETErr("rightascension", func(t device.TelescopeDevice) (any, *ascomerr.Error) { return t.RightAscension() }),
		telGETErr("rightascensionrate", func(t device.TelescopeDevice) (any, *ascomerr.Error) { return t.RightAscensionRate() }),
		{Name: "rightascensionrate", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireFloat(p, "rightascensionrate")
			if err != nil {
				return Result{}, err
			}
			if err := t.SetRightAscensionRate(v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		telGETErr("sideofpier", func(t device.TelescopeDevice) (any, *ascomerr.Error) { return t.SideOfPier() }),
		telGET("siderealtime", func(t device.TelescopeDevice) any { return t.SiderealTime() }),
		telGETErr("siteelevation", func(t device.TelescopeDevice) (any, *ascomerr.Error) { return t.SiteElevation() }),
		{Name: "siteelevation", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireFloat(p, "siteelevation")
			if err != nil {
				return Result{}, err
			}
			if err := t.SetSiteElevation(v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		telGETErr("sitelatitude", func(t device.TelescopeDevice) (any, *ascomerr.Error) { return t.SiteLatitude() }),
		{Name: "sitelatitude", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireFloat(p, "sitelatitude")
			if err != nil {
				return Result{}, err
			}
			if err := t.SetSiteLatitude(v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		telGETErr("sitelongitude", func(t device.TelescopeDevice) (any, *ascomerr.Error) { return t.SiteLongitude() }),
		{Name: "sitelongitude", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireFloat(p, "sitelongitude")
			if err != nil {
				return Result{}, err
			}
			if err := t.SetSiteLongitude(v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		telGET("slewing", func(t device.TelescopeDevice) any { return t.Slewing() }),
		telGET("slewsettletime", func(t device.TelescopeDevice) any { return t.SlewSettleTime() }),
		{Name: "slewsettletime", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireInt(p, "slewsettletime")
			if err != nil {
				return Result{}, err
			}
			if err := t.SetSlewSettleTime(v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		telGETErr("targetdeclination", func(t device.TelescopeDevice) (any, *ascomerr.Error) { return t.TargetDeclination() }),
		{Name: "targetdeclination", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireFloat(p, "targetdeclination")
			if err != nil {
				return Result{}, err
			}
			if err := t.SetTargetDeclination(v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		telGETErr("targetrightascension", func(t device.TelescopeDevice) (any, *ascomerr.Error) { return t.TargetRightAscension() }),
		{Name: "targetrightascension", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireFloat(p, "targetrightascension")
			if err != nil {
				return Result{}, err
			}
			if err := t.SetTargetRightAscension(v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		telGET("tracking", func(t device.TelescopeDevice) any { return t.Tracking() }),
		{Name: "tracking", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireBool(p, "tracking")
			if err != nil {
				return Result{}, err
			}
			if err := t.SetTracking(v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		telGETErr("trackingrate", func(t device.TelescopeDevice) (any, *ascomerr.Error) { return t.TrackingRate() }),
		{Name: "trackingrate", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireInt(p, "trackingrate")
			if err != nil {
				return Result{}, err
			}
			if err := t.SetTrackingRate(v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		telGETErr("utcdate", func(t device.TelescopeDevice) (any, *ascomerr.Error) { return t.UTCDate() }),
		{Name: "utcdate", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireString(p, "utcdate")
			if err != nil {
				return Result{}, err
			}
			if err := t.SetUTCDate(v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},

		{Name: "abortslew", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			if aerr := t.AbortSlew(); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "axisrates", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			axis, err := requireInt(p, "axis")
			if err != nil {
				return Result{}, err
			}
			rates, aerr := t.AxisRates(axis)
			if aerr != nil {
				return Result{}, aerr
			}
			return Val(rates), nil
		}},
		{Name: "canmoveaxis", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			axis, err := requireInt(p, "axis")
			if err != nil {
				return Result{}, err
			}
			return Val(t.CanMoveAxis(axis)), nil
		}},
		{Name: "destinationsideofpier", Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			ra, err := requireFloat(p, "rightascension")
			if err != nil {
				return Result{}, err
			}
			dec, err := requireFloat(p, "declination")
			if err != nil {
				return Result{}, err
			}
			v, aerr := t.DestinationSideOfPier(ra, dec)
			if aerr != nil {
				return Result{}, aerr
			}
			return Val(v), nil
		}},
		{Name: "findhome", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			if aerr := t.FindHome(); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "moveaxis", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			axis, err := requireInt(p, "axis")
			if err != nil {
				return Result{}, err
			}
			rate, err := requireFloat(p, "rate")
			if err != nil {
				return Result{}, err
			}
			if aerr := t.MoveAxis(axis, rate); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "park", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			if aerr := t.Park(); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "pulseguide", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			dir, err := requireInt(p, "direction")
			if err != nil {
				return Result{}, err
			}
			dur, err := requireInt(p, "duration")
			if err != nil {
				return Result{}, err
			}
			if aerr := t.PulseGuide(dir, dur); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "setpark", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			if aerr := t.SetPark(); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "slewtocoordinates", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			ra, err := requireFloat(p, "rightascension")
			if err != nil {
				return Result{}, err
			}
			dec, err := requireFloat(p, "declination")
			if err != nil {
				return Result{}, err
			}
			if aerr := t.SlewToCoordinates(ra, dec); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "slewtotarget", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			if aerr := t.SlewToTarget(); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "synctocoordinates", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			ra, err := requireFloat(p, "rightascension")
			if err != nil {
				return Result{}, err
			}
			dec, err := requireFloat(p, "declination")
			if err != nil {
				return Result{}, err
			}
			if aerr := t.SyncToCoordinates(ra, dec); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "synctotarget", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			if aerr := t.SyncToTarget(); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "unpark", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			t, err := asTelescope(d)
			if err != nil {
				return Result{}, err
			}
			if aerr := t.Unpark(); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
	},
}
