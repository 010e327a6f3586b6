package dome

import "testing"

func TestNewStartsParkedAndClosed(t *testing.T) {
	d := New(0, "Test Dome")
	if !d.AtPark() {
		t.Fatal("expected new dome to start parked")
	}
	if d.ShutterStatus() != shutterClosed {
		t.Fatalf("expected shutter closed, got %d", d.ShutterStatus())
	}
}

func TestSlewToAzimuthRejectsOutOfRange(t *testing.T) {
	d := New(0, "Test Dome")
	if err := d.SlewToAzimuth(360); err == nil {
		t.Fatal("expected error for azimuth 360")
	}
	if err := d.SlewToAzimuth(-1); err == nil {
		t.Fatal("expected error for negative azimuth")
	}
	if err := d.SlewToAzimuth(180); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	az, _ := d.Azimuth()
	if az != 180 {
		t.Fatalf("expected azimuth 180, got %g", az)
	}
	if d.AtPark() {
		t.Fatal("expected slewing to clear AtPark")
	}
}

func TestSlewToAltitudeRejectsOutOfRange(t *testing.T) {
	d := New(0, "Test Dome")
	if err := d.SlewToAltitude(91); err == nil {
		t.Fatal("expected error for altitude 91")
	}
	if err := d.SlewToAltitude(45); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	alt, _ := d.Altitude()
	if alt != 45 {
		t.Fatalf("expected altitude 45, got %g", alt)
	}
}

func TestFindHomeSetsAtHomeAndZeroesAzimuth(t *testing.T) {
	d := New(0, "Test Dome")
	_ = d.SlewToAzimuth(200)
	if err := d.FindHome(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.AtHome() {
		t.Fatal("expected AtHome after FindHome")
	}
	az, _ := d.Azimuth()
	if az != 0 {
		t.Fatalf("expected azimuth reset to 0, got %g", az)
	}
}

func TestShutterOpenClose(t *testing.T) {
	d := New(0, "Test Dome")
	if err := d.OpenShutter(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ShutterStatus() != shutterOpen {
		t.Fatalf("expected shutter open, got %d", d.ShutterStatus())
	}
	if err := d.CloseShutter(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ShutterStatus() != shutterClosed {
		t.Fatalf("expected shutter closed, got %d", d.ShutterStatus())
	}
}
