package schema

import (
	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
	"github.com/stellarbridge/alpacaserver/internal/request"
)

func asCamera(d device.Device) (device.CameraDevice, *ascomerr.Error) {
	c, ok := d.(device.CameraDevice)
	if !ok {
		return nil, ascomerr.ActionNotImplementedErr()
	}
	return c, nil
}

// cameraGET declares a read-only float/int/bool GET action that needs no
// parameters and cannot itself fail.
func cameraGET(name string, get func(device.CameraDevice) any) Action {
	return Action{Name: name, Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
		c, err := asCamera(d)
		if err != nil {
			return Result{}, err
		}
		return Val(get(c)), nil
	}}
}

func cameraGETErr(name string, get func(device.CameraDevice) (any, *ascomerr.Error)) Action {
	return Action{Name: name, Verb: GET, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
		c, err := asCamera(d)
		if err != nil {
			return Result{}, err
		}
		v, aerr := get(c)
		if aerr != nil {
			return Result{}, aerr
		}
		return Val(v), nil
	}}
}

// Camera is the device interface for the "camera" URL segment.
var Camera = &Interface{
	Tag:    "camera",
	Parent: Common,
	Actions: []Action{
		cameraGET("camerastate", func(c device.CameraDevice) any { return int(c.CameraState()) }),
		cameraGET("imageready", func(c device.CameraDevice) any { return c.ImageReady() }),
		cameraGET("percentcompleted", func(c device.CameraDevice) any { return c.PercentCompleted() }),
		cameraGETErr("lastexposureduration", func(c device.CameraDevice) (any, *ascomerr.Error) {
			v, ok := c.LastExposureDuration()
			if !ok {
				return nil, ascomerr.New(ascomerr.ValueNotSet, "")
			}
			return v, nil
		}),
		cameraGETErr("lastexposurestarttime", func(c device.CameraDevice) (any, *ascomerr.Error) {
			t, ok := c.LastExposureStartTime()
			if !ok {
				return nil, ascomerr.New(ascomerr.ValueNotSet, "")
			}
			return t.UTC().Format("2006-01-02T15:04:05.000"), nil
		}),

		cameraGET("cameraxsize", func(c device.CameraDevice) any { return c.CameraXSize() }),
		cameraGET("cameraysize", func(c device.CameraDevice) any { return c.CameraYSize() }),
		cameraGET("startx", func(c device.CameraDevice) any { return c.StartX() }),
		cameraGET("starty", func(c device.CameraDevice) any { return c.StartY() }),
		{Name: "startx", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			c, err := asCamera(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireInt(p, "startx")
			if err != nil {
				return Result{}, err
			}
			if err := c.SetStartXY(v, c.StartY()); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		{Name: "starty", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			c, err := asCamera(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireInt(p, "starty")
			if err != nil {
				return Result{}, err
			}
			if err := c.SetStartXY(c.StartX(), v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		cameraGET("numx", func(c device.CameraDevice) any { return c.NumX() }),
		cameraGET("numy", func(c device.CameraDevice) any { return c.NumY() }),
		{Name: "numx", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			c, err := asCamera(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireInt(p, "numx")
			if err != nil {
				return Result{}, err
			}
			if err := c.SetNumXY(v, c.NumY()); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		{Name: "numy", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			c, err := asCamera(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireInt(p, "numy")
			if err != nil {
				return Result{}, err
			}
			if err := c.SetNumXY(c.NumX(), v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		cameraGET("binx", func(c device.CameraDevice) any { return c.BinX() }),
		cameraGET("biny", func(c device.CameraDevice) any { return c.BinY() }),
		{Name: "binx", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			c, err := asCamera(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireInt(p, "binx")
			if err != nil {
				return Result{}, err
			}
			if err := c.SetBinX(v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		{Name: "biny", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			c, err := asCamera(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireInt(p, "biny")
			if err != nil {
				return Result{}, err
			}
			if err := c.SetBinY(v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		cameraGET("maxbinx", func(c device.CameraDevice) any { return c.MaxBinX() }),
		cameraGET("maxbiny", func(c device.CameraDevice) any { return c.MaxBinY() }),
		cameraGET("canasymmetricbin", func(c device.CameraDevice) any { return c.CanAsymmetricBin() }),

		cameraGET("exposuremin", func(c device.CameraDevice) any { return c.ExposureMin() }),
		cameraGET("exposuremax", func(c device.CameraDevice) any { return c.ExposureMax() }),
		cameraGET("exposureresolution", func(c device.CameraDevice) any { return c.ExposureResolution() }),
		cameraGET("hasshutter", func(c device.CameraDevice) any { return c.HasShutter() }),
		cameraGET("canabortexposure", func(c device.CameraDevice) any { return c.CanAbortExposure() }),
		cameraGET("canstopexposure", func(c device.CameraDevice) any { return c.CanStopExposure() }),
		cameraGET("canfastreadout", func(c device.CameraDevice) any { return c.CanFastReadout() }),
		cameraGETErr("fastreadout", func(c device.CameraDevice) (any, *ascomerr.Error) { return c.FastReadout() }),
		{Name: "fastreadout", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			c, err := asCamera(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireBool(p, "fastreadout")
			if err != nil {
				return Result{}, err
			}
			if err := c.SetFastReadout(v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},

		cameraGET("sensortype", func(c device.CameraDevice) any { return int(c.SensorType()) }),
		cameraGET("sensorname", func(c device.CameraDevice) any { return c.SensorName() }),
		cameraGET("bayeroffsetx", func(c device.CameraDevice) any { return c.BayerOffsetX() }),
		cameraGET("bayeroffsety", func(c device.CameraDevice) any { return c.BayerOffsetY() }),
		cameraGET("electronsperadu", func(c device.CameraDevice) any { return c.ElectronsPerADU() }),
		cameraGET("fullwellcapacity", func(c device.CameraDevice) any { return c.FullWellCapacity() }),
		cameraGET("maxadu", func(c device.CameraDevice) any { return c.MaxADU() }),
		cameraGET("pixelsizex", func(c device.CameraDevice) any { return c.PixelSizeX() }),
		cameraGET("pixelsizey", func(c device.CameraDevice) any { return c.PixelSizeY() }),

		cameraGETErr("ccdtemperature", func(c device.CameraDevice) (any, *ascomerr.Error) { return c.CCDTemperature() }),
		cameraGET("cangetcoolerpower", func(c device.CameraDevice) any { return c.CanGetCoolerPower() }),
		cameraGETErr("coolerpower", func(c device.CameraDevice) (any, *ascomerr.Error) { return c.CoolerPower() }),
		cameraGETErr("cooleron", func(c device.CameraDevice) (any, *ascomerr.Error) { return c.CoolerOn() }),
		{Name: "cooleron", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			c, err := asCamera(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireBool(p, "cooleron")
			if err != nil {
				return Result{}, err
			}
			if err := c.SetCoolerOn(v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		cameraGET("cansetccdtemperature", func(c device.CameraDevice) any { return c.CanSetCCDTemperature() }),
		cameraGETErr("setccdtemperature", func(c device.CameraDevice) (any, *ascomerr.Error) { return c.SetCCDTemperature() }),
		{Name: "setccdtemperature", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			c, err := asCamera(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireFloat(p, "setccdtemperature")
			if err != nil {
				return Result{}, err
			}
			if err := c.SetSetCCDTemperature(v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		cameraGETErr("heatsinktemperature", func(c device.CameraDevice) (any, *ascomerr.Error) { return c.HeatSinkTemperature() }),

		cameraGETErr("gain", func(c device.CameraDevice) (any, *ascomerr.Error) { return c.Gain() }),
		{Name: "gain", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			c, err := asCamera(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireInt(p, "gain")
			if err != nil {
				return Result{}, err
			}
			if err := c.SetGain(v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		cameraGETErr("gains", func(c device.CameraDevice) (any, *ascomerr.Error) { return c.Gains() }),
		cameraGETErr("gainmin", func(c device.CameraDevice) (any, *ascomerr.Error) { return c.GainMin() }),
		cameraGETErr("gainmax", func(c device.CameraDevice) (any, *ascomerr.Error) { return c.GainMax() }),

		cameraGETErr("offset", func(c device.CameraDevice) (any, *ascomerr.Error) { return c.Offset() }),
		{Name: "offset", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			c, err := asCamera(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireInt(p, "offset")
			if err != nil {
				return Result{}, err
			}
			if err := c.SetOffset(v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		cameraGETErr("offsets", func(c device.CameraDevice) (any, *ascomerr.Error) { return c.Offsets() }),
		cameraGETErr("offsetmin", func(c device.CameraDevice) (any, *ascomerr.Error) { return c.OffsetMin() }),
		cameraGETErr("offsetmax", func(c device.CameraDevice) (any, *ascomerr.Error) { return c.OffsetMax() }),

		cameraGETErr("readoutmode", func(c device.CameraDevice) (any, *ascomerr.Error) { return c.ReadoutMode() }),
		{Name: "readoutmode", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			c, err := asCamera(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireInt(p, "readoutmode")
			if err != nil {
				return Result{}, err
			}
			if err := c.SetReadoutMode(v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},
		cameraGETErr("readoutmodes", func(c device.CameraDevice) (any, *ascomerr.Error) { return c.ReadoutModes() }),
		cameraGETErr("subexposureduration", func(c device.CameraDevice) (any, *ascomerr.Error) { return c.SubExposureDuration() }),
		{Name: "subexposureduration", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			c, err := asCamera(d)
			if err != nil {
				return Result{}, err
			}
			v, err := requireFloat(p, "subexposureduration")
			if err != nil {
				return Result{}, err
			}
			if err := c.SetSubExposureDuration(v); err != nil {
				return Result{}, err
			}
			return Void(), nil
		}},

		{Name: "startexposure", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			c, err := asCamera(d)
			if err != nil {
				return Result{}, err
			}
			duration, err := requireFloat(p, "duration")
			if err != nil {
				return Result{}, err
			}
			light, err := optionalBool(p, "light", true)
			if err != nil {
				return Result{}, err
			}
			if aerr := c.StartExposure(duration, light); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "abortexposure", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			c, err := asCamera(d)
			if err != nil {
				return Result{}, err
			}
			if aerr := c.AbortExposure(); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "stopexposure", Verb: PUT, Handler: func(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
			c, err := asCamera(d)
			if err != nil {
				return Result{}, err
			}
			if aerr := c.StopExposure(); aerr != nil {
				return Result{}, aerr
			}
			return Void(), nil
		}},
		{Name: "imagearray", Verb: GET, Handler: imageArrayHandler},
		{Name: "imagearrayvariant", Verb: GET, Handler: imageArrayHandler},
	},
}

func imageArrayHandler(d device.Device, p *request.Parsed) (Result, *ascomerr.Error) {
	c, err := asCamera(d)
	if err != nil {
		return Result{}, err
	}
	img, aerr := c.ImageArray()
	if aerr != nil {
		return Result{}, aerr
	}
	return Obj(map[string]any{
		"Type":  img.Type,
		"Rank":  img.Rank,
		"Value": img.Data,
	}), nil
}
