// Package switchdevice implements a simulated ASCOM switch bank: a fixed
// number of independently named switch lines.
package switchdevice

import (
	"sync"

	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
)

type switchLine struct {
	name        string
	description string
	writable    bool
	value       float64
	min, max    float64
	step        float64
}

// Switch is a simulated bank of switches. Each line carries a float value
// with its own min/max/step, matching the ASCOM switch model's unification
// of boolean and analog switches; New creates only boolean lines (min=0,
// max=1, step=1).
type Switch struct {
	*device.Base

	mu    sync.Mutex
	lines []switchLine
}

// New builds a switch bank of n boolean on/off lines named "Switch 0".."Switch n-1".
func New(deviceNumber int, name string, n int) *Switch {
	lines := make([]switchLine, n)
	for i := range lines {
		lines[i] = switchLine{
			name:        defaultName(i),
			description: "simulated switch",
			writable:    true,
			min:         0,
			max:         1,
			step:        1,
		}
	}
	return &Switch{
		Base:  device.NewBase("switch", deviceNumber, name, "Simulated switch bank", "alpacaserver", "2.0", 2, nil),
		lines: lines,
	}
}

func defaultName(i int) string {
	return "Switch " + itoa(i)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	digits := []byte{}
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	return string(digits)
}

func (s *Switch) MaxSwitch() int { s.mu.Lock(); defer s.mu.Unlock(); return len(s.lines) }

func (s *Switch) line(id int) (*switchLine, *ascomerr.Error) {
	if id < 0 || id >= len(s.lines) {
		return nil, ascomerr.InvalidValuef("switch id %d out of range [0,%d)", id, len(s.lines))
	}
	return &s.lines[id], nil
}

func (s *Switch) CanWrite(id int) (bool, *ascomerr.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.line(id)
	if err != nil {
		return false, err
	}
	return l.writable, nil
}

func (s *Switch) GetSwitch(id int) (bool, *ascomerr.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.line(id)
	if err != nil {
		return false, err
	}
	return l.value != 0, nil
}

func (s *Switch) GetSwitchDescription(id int) (string, *ascomerr.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.line(id)
	if err != nil {
		return "", err
	}
	return l.description, nil
}

func (s *Switch) GetSwitchName(id int) (string, *ascomerr.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.line(id)
	if err != nil {
		return "", err
	}
	return l.name, nil
}

func (s *Switch) GetSwitchValue(id int) (float64, *ascomerr.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.line(id)
	if err != nil {
		return 0, err
	}
	return l.value, nil
}

func (s *Switch) MinSwitchValue(id int) (float64, *ascomerr.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.line(id)
	if err != nil {
		return 0, err
	}
	return l.min, nil
}

func (s *Switch) MaxSwitchValue(id int) (float64, *ascomerr.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.line(id)
	if err != nil {
		return 0, err
	}
	return l.max, nil
}

func (s *Switch) SwitchStep(id int) (float64, *ascomerr.Error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.line(id)
	if err != nil {
		return 0, err
	}
	return l.step, nil
}

func (s *Switch) SetSwitch(id int, state bool) *ascomerr.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.line(id)
	if err != nil {
		return err
	}
	if !l.writable {
		return ascomerr.New(ascomerr.NotImplemented, "switch is read-only")
	}
	if state {
		l.value = l.max
	} else {
		l.value = l.min
	}
	return nil
}

func (s *Switch) SetSwitchName(id int, name string) *ascomerr.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.line(id)
	if err != nil {
		return err
	}
	l.name = name
	return nil
}

func (s *Switch) SetSwitchValue(id int, value float64) *ascomerr.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.line(id)
	if err != nil {
		return err
	}
	if !l.writable {
		return ascomerr.New(ascomerr.NotImplemented, "switch is read-only")
	}
	if value < l.min || value > l.max {
		return ascomerr.InvalidValuef("value %g out of range [%g,%g]", value, l.min, l.max)
	}
	l.value = value
	return nil
}
