package obscond

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Reading is one snapshot of every ASCOM ObservingConditions property this
// repository implements. A Source fills in whichever fields it knows about;
// fields it never touches keep returning ValueNotSet from the device.
type Reading struct {
	CloudCover     *float64
	DewPoint       *float64
	Humidity       *float64
	Pressure       *float64
	RainRate       *float64
	SkyBrightness  *float64
	SkyQuality     *float64
	SkyTemperature *float64
	StarFWHM       *float64
	Temperature    *float64
	WindDirection  *float64
	WindGust       *float64
	WindSpeed      *float64
}

// Source produces observing-conditions readings. Refresh is called
// synchronously from the Alpaca "refresh" action; implementations that are
// fed asynchronously (e.g. MQTT) may treat Refresh as a no-op and instead
// update the latest Reading in the background.
type Source interface {
	Latest() Reading
	Refresh() error
}

// SimulatedSource synthesizes slowly drifting weather readings via a random
// walk, seeded at construction to plausible clear-night values.
type SimulatedSource struct {
	mu      sync.Mutex
	reading Reading
	rng     *rand.Rand
}

func NewSimulatedSource() *SimulatedSource {
	s := &SimulatedSource{rng: rand.New(rand.NewSource(1))}
	s.reading = Reading{
		CloudCover:     f(10),
		DewPoint:       f(5),
		Humidity:       f(45),
		Pressure:       f(1013),
		RainRate:       f(0),
		SkyBrightness:  f(0.1),
		SkyQuality:     f(21.5),
		SkyTemperature: f(-10),
		StarFWHM:       f(2.5),
		Temperature:    f(12),
		WindDirection:  f(180),
		WindGust:       f(3),
		WindSpeed:      f(1.5),
	}
	return s
}

func f(v float64) *float64 { return &v }

func (s *SimulatedSource) Latest() Reading {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reading
}

// Refresh perturbs every reading by a small bounded random walk.
func (s *SimulatedSource) Refresh() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	walk := func(p *float64, step, min, max float64) {
		v := *p + (s.rng.Float64()*2-1)*step
		*p = math.Min(max, math.Max(min, v))
	}
	walk(s.reading.CloudCover, 5, 0, 100)
	walk(s.reading.DewPoint, 0.5, -30, 30)
	walk(s.reading.Humidity, 2, 0, 100)
	walk(s.reading.Pressure, 1, 950, 1050)
	walk(s.reading.RainRate, 0.1, 0, 50)
	walk(s.reading.SkyBrightness, 0.02, 0, 1)
	walk(s.reading.SkyQuality, 0.1, 15, 22)
	walk(s.reading.SkyTemperature, 0.5, -40, 20)
	walk(s.reading.StarFWHM, 0.1, 1, 8)
	walk(s.reading.Temperature, 0.3, -30, 45)
	walk(s.reading.WindDirection, 10, 0, 360)
	walk(s.reading.WindGust, 0.5, 0, 40)
	walk(s.reading.WindSpeed, 0.3, 0, 30)
	_ = time.Now // timestamps are tracked by the owning device, not the source
	return nil
}
