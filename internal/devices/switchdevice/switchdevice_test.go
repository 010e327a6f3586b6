package switchdevice

import "testing"

func TestNewCreatesNBooleanWritableLines(t *testing.T) {
	s := New(0, "Test Switch", 4)
	if s.MaxSwitch() != 4 {
		t.Fatalf("expected 4 switches, got %d", s.MaxSwitch())
	}
	name, err := s.GetSwitchName(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Switch 0" {
		t.Fatalf("expected name 'Switch 0', got %q", name)
	}
	writable, _ := s.CanWrite(3)
	if !writable {
		t.Fatal("expected switch 3 to be writable")
	}
}

func TestLineOutOfRange(t *testing.T) {
	s := New(0, "Test Switch", 2)
	if _, err := s.GetSwitch(2); err == nil {
		t.Fatal("expected error for out-of-range switch id")
	}
	if _, err := s.GetSwitch(-1); err == nil {
		t.Fatal("expected error for negative switch id")
	}
}

func TestSetSwitchTogglesBetweenMinAndMax(t *testing.T) {
	s := New(0, "Test Switch", 1)
	if err := s.SetSwitch(0, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	on, _ := s.GetSwitch(0)
	if !on {
		t.Fatal("expected switch on after SetSwitch(true)")
	}
	val, _ := s.GetSwitchValue(0)
	if val != 1 {
		t.Fatalf("expected value 1, got %g", val)
	}

	if err := s.SetSwitch(0, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	val, _ = s.GetSwitchValue(0)
	if val != 0 {
		t.Fatalf("expected value 0, got %g", val)
	}
}

func TestSetSwitchValueRejectsOutOfRange(t *testing.T) {
	s := New(0, "Test Switch", 1)
	if err := s.SetSwitchValue(0, 1.5); err == nil {
		t.Fatal("expected error for value above max")
	}
	if err := s.SetSwitchValue(0, -0.5); err == nil {
		t.Fatal("expected error for value below min")
	}
	if err := s.SetSwitchValue(0, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetSwitchNameRenames(t *testing.T) {
	s := New(0, "Test Switch", 1)
	if err := s.SetSwitchName(0, "Dew Heater"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	name, _ := s.GetSwitchName(0)
	if name != "Dew Heater" {
		t.Fatalf("expected renamed switch, got %q", name)
	}
}
