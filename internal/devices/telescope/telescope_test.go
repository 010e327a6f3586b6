package telescope

import (
	"testing"

	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
)

func TestNewStartsParked(t *testing.T) {
	tel := New(0, "Test Scope")
	if !tel.AtPark() {
		t.Fatal("expected new telescope to start parked")
	}
	if dec, _ := tel.Declination(); dec != 90 {
		t.Fatalf("expected declination 90, got %g", dec)
	}
}

func TestSlewToCoordinatesRequiresUnparked(t *testing.T) {
	tel := New(0, "Test Scope")
	if err := tel.SlewToCoordinates(10, 20); err == nil || err.Code != ascomerr.InvalidWhileParked {
		t.Fatalf("expected InvalidWhileParked, got %v", err)
	}

	if err := tel.Unpark(); err != nil {
		t.Fatalf("unexpected unpark error: %v", err)
	}
	if err := tel.SlewToCoordinates(10, 20); err != nil {
		t.Fatalf("unexpected slew error: %v", err)
	}
	ra, _ := tel.RightAscension()
	dec, _ := tel.Declination()
	if ra != 10 || dec != 20 {
		t.Fatalf("expected ra/dec 10/20, got %g/%g", ra, dec)
	}
}

func TestSlewToTargetRequiresTargetSet(t *testing.T) {
	tel := New(0, "Test Scope")
	_ = tel.Unpark()
	if err := tel.SlewToTarget(); err == nil || err.Code != ascomerr.ValueNotSet {
		t.Fatalf("expected ValueNotSet, got %v", err)
	}

	if err := tel.SetTargetRightAscension(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tel.SetTargetDeclination(15); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tel.SlewToTarget(); err != nil {
		t.Fatalf("unexpected slew error: %v", err)
	}
}

func TestSetSiteLatitudeRejectsOutOfRange(t *testing.T) {
	tel := New(0, "Test Scope")
	if err := tel.SetSiteLatitude(100); err == nil || err.Code != ascomerr.InvalidValue {
		t.Fatalf("expected InvalidValue, got %v", err)
	}
	if err := tel.SetSiteLatitude(45); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lat, _ := tel.SiteLatitude()
	if lat != 45 {
		t.Fatalf("expected latitude 45, got %g", lat)
	}
}

func TestParkStopsTrackingAndSlewing(t *testing.T) {
	tel := New(0, "Test Scope")
	_ = tel.Unpark()
	_ = tel.SetTracking(true)
	if err := tel.Park(); err != nil {
		t.Fatalf("unexpected park error: %v", err)
	}
	if !tel.AtPark() {
		t.Fatal("expected telescope to be parked")
	}
	if tel.Tracking() {
		t.Fatal("expected tracking to stop when parked")
	}
}
