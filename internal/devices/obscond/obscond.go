// Package obscond implements the ASCOM ObservingConditions device type
// backed by a pluggable Source — either an in-process simulated generator
// or an MQTT-fed weather station.
package obscond

import (
	"sync"
	"time"

	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
)

// ObservingConditions adapts a Source to device.ObservingConditionsDevice,
// tracking one last-update timestamp shared by all properties (set at
// construction and on each Refresh) and an (unused by either built-in
// Source, but ASCOM-mandated) averaging period.
type ObservingConditions struct {
	*device.Base

	source Source

	mu            sync.Mutex
	averagePeriod float64
	lastUpdate    time.Time
}

func New(deviceNumber int, name string, source Source) *ObservingConditions {
	return &ObservingConditions{
		Base:       device.NewBase("observingconditions", deviceNumber, name, "Observing conditions station", "alpacaserver", "1.0", 1, nil),
		source:     source,
		lastUpdate: time.Now(),
	}
}

func (o *ObservingConditions) AveragePeriod() (float64, *ascomerr.Error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.averagePeriod, nil
}

func (o *ObservingConditions) SetAveragePeriod(v float64) *ascomerr.Error {
	if v < 0 {
		return ascomerr.InvalidValuef("average period %g must be >= 0", v)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.averagePeriod = v
	return nil
}

func (o *ObservingConditions) Refresh() *ascomerr.Error {
	if err := o.source.Refresh(); err != nil {
		return ascomerr.New(ascomerr.Unspecified, err.Error())
	}
	o.mu.Lock()
	o.lastUpdate = time.Now()
	o.mu.Unlock()
	return nil
}

func (o *ObservingConditions) SensorDescription(propertyName string) (string, *ascomerr.Error) {
	if _, ok := propertyNames[propertyName]; !ok {
		return "", ascomerr.InvalidValuef("unknown property %q", propertyName)
	}
	switch o.source.(type) {
	case *MQTTSource:
		return "MQTT weather station", nil
	default:
		return "Simulated sensor", nil
	}
}

func (o *ObservingConditions) TimeSinceLastUpdate(propertyName string) (float64, *ascomerr.Error) {
	if propertyName != "" {
		if _, ok := propertyNames[propertyName]; !ok {
			return 0, ascomerr.InvalidValuef("unknown property %q", propertyName)
		}
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return time.Since(o.lastUpdate).Seconds(), nil
}

var propertyNames = map[string]struct{}{
	"cloudcover": {}, "dewpoint": {}, "humidity": {}, "pressure": {}, "rainrate": {},
	"skybrightness": {}, "skyquality": {}, "skytemperature": {}, "starfwhm": {},
	"temperature": {}, "winddirection": {}, "windgust": {}, "windspeed": {},
}

func (o *ObservingConditions) CloudCover() (float64, *ascomerr.Error)  { return get(o, o.source.Latest().CloudCover) }
func (o *ObservingConditions) DewPoint() (float64, *ascomerr.Error)    { return get(o, o.source.Latest().DewPoint) }
func (o *ObservingConditions) Humidity() (float64, *ascomerr.Error)    { return get(o, o.source.Latest().Humidity) }
func (o *ObservingConditions) Pressure() (float64, *ascomerr.Error)    { return get(o, o.source.Latest().Pressure) }
func (o *ObservingConditions) RainRate() (float64, *ascomerr.Error)    { return get(o, o.source.Latest().RainRate) }
func (o *ObservingConditions) SkyBrightness() (float64, *ascomerr.Error) {
	return get(o, o.source.Latest().SkyBrightness)
}
func (o *ObservingConditions) SkyQuality() (float64, *ascomerr.Error) { return get(o, o.source.Latest().SkyQuality) }
func (o *ObservingConditions) SkyTemperature() (float64, *ascomerr.Error) {
	return get(o, o.source.Latest().SkyTemperature)
}
func (o *ObservingConditions) StarFWHM() (float64, *ascomerr.Error)    { return get(o, o.source.Latest().StarFWHM) }
func (o *ObservingConditions) Temperature() (float64, *ascomerr.Error) { return get(o, o.source.Latest().Temperature) }
func (o *ObservingConditions) WindDirection() (float64, *ascomerr.Error) {
	return get(o, o.source.Latest().WindDirection)
}
func (o *ObservingConditions) WindGust() (float64, *ascomerr.Error)  { return get(o, o.source.Latest().WindGust) }
func (o *ObservingConditions) WindSpeed() (float64, *ascomerr.Error) { return get(o, o.source.Latest().WindSpeed) }

// get reports ValueNotSet for any property the active Source has never
// populated, per the ASCOM contract for sensors a station doesn't carry.
func get(o *ObservingConditions, v *float64) (float64, *ascomerr.Error) {
	if v == nil {
		return 0, ascomerr.New(ascomerr.ValueNotSet, "sensor not available on this station")
	}
	return *v, nil
}
