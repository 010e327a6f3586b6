package camera

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// Simulator is the in-repo stand-in for a real vendor camera SDK binding
// (no such dependency exists anywhere in the retrieval pack, so there is
// nothing to wire here beyond this simulated backend). It answers toggle
// and radio widget queries synchronously and synthesizes a flat-field frame
// for every exposure, mirroring the shape a real driver would hand back
// through the same NativeCamera contract.
type Simulator struct {
	width, height int

	mu       sync.Mutex
	toggles  map[string]bool
	radios   map[string][]string
	radioSel map[string]string

	lastDuration time.Duration
	lastLight    bool
	aborted      bool
}

// NewSimulator builds a simulated camera of the given sensor size, with a
// "bulb" toggle and gain/offset/readoutmode radio widgets pre-populated.
func NewSimulator(width, height int) *Simulator {
	return &Simulator{
		width:  width,
		height: height,
		toggles: map[string]bool{
			"bulb": false,
		},
		radios: map[string][]string{
			"gain":        {"0", "100", "200", "300"},
			"offset":      {"0", "10", "20"},
			"readoutmode": {"Normal", "Fast", "High Dynamic Range"},
		},
		radioSel: map[string]string{
			"gain":        "0",
			"offset":      "0",
			"readoutmode": "Normal",
		},
	}
}

func (s *Simulator) Toggles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.toggles))
	for t := range s.toggles {
		out = append(out, t)
	}
	return out
}

func (s *Simulator) GetToggle(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.toggles[name]
	if !ok {
		return false, fmt.Errorf("no such toggle %q", name)
	}
	return v, nil
}

func (s *Simulator) SetToggle(name string, v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.toggles[name]; !ok {
		return fmt.Errorf("no such toggle %q", name)
	}
	s.toggles[name] = v
	return nil
}

func (s *Simulator) Radios() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.radios))
	for r := range s.radios {
		out = append(out, r)
	}
	return out
}

func (s *Simulator) RadioChoices(name string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	choices, ok := s.radios[name]
	if !ok {
		return nil, fmt.Errorf("no such radio %q", name)
	}
	out := make([]string, len(choices))
	copy(out, choices)
	return out, nil
}

func (s *Simulator) GetRadioChoice(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.radioSel[name]
	if !ok {
		return "", fmt.Errorf("no such radio %q", name)
	}
	return v, nil
}

func (s *Simulator) SetRadioChoice(name string, choice string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	choices, ok := s.radios[name]
	if !ok {
		return fmt.Errorf("no such radio %q", name)
	}
	if indexOf(choices, choice) < 0 {
		return fmt.Errorf("%q is not a valid choice for %q", choice, name)
	}
	s.radioSel[name] = choice
	return nil
}

func (s *Simulator) StartExposure(duration time.Duration, light bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastDuration = duration
	s.lastLight = light
	s.aborted = false
	return nil
}

func (s *Simulator) AbortExposure() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aborted = true
	return nil
}

// FetchCapture synthesizes a flat-field monochrome RAW RGGB frame whose
// pixel value encodes the commanded exposure, so tests can assert on it
// without a real sensor. A dark frame (light=false) reads back as zero.
func (s *Simulator) FetchCapture() (Capture, error) {
	s.mu.Lock()
	w, h, duration, light, aborted := s.width, s.height, s.lastDuration, s.lastLight, s.aborted
	s.mu.Unlock()

	if aborted {
		return Capture{}, fmt.Errorf("exposure aborted")
	}

	level := 0.0
	if light {
		level = math.Min(65535, duration.Seconds()*1000)
	}
	pixels := make([]float64, w*h)
	for i := range pixels {
		pixels[i] = level
	}
	return Capture{
		Raw:      true,
		CFA:      "RGGB",
		Width:    w,
		Height:   h,
		Channels: 1,
		Pixels:   pixels,
	}, nil
}

func (s *Simulator) MaxNativeExposure() time.Duration { return 30 * time.Second }
func (s *Simulator) SensorWidth() int                 { return s.width }
func (s *Simulator) SensorHeight() int                { return s.height }
