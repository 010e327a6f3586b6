package rotator

import "testing"

func TestNorm360(t *testing.T) {
	cases := map[float64]float64{
		0:    0,
		350:  350,
		360:  0,
		370:  10,
		-10:  350,
		-370: 350,
	}
	for in, want := range cases {
		if got := norm360(in); got != want {
			t.Fatalf("norm360(%g) = %g, want %g", in, got, want)
		}
	}
}

func TestMoveAccumulatesPositionModulo360(t *testing.T) {
	r := New(0, "Test Rotator")
	if err := r.Move(350); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Move(20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pos, _ := r.Position()
	if pos != 10 {
		t.Fatalf("expected position 10, got %g", pos)
	}
}

func TestMoveAbsoluteRejectsOutOfRange(t *testing.T) {
	r := New(0, "Test Rotator")
	if err := r.MoveAbsolute(360); err == nil {
		t.Fatal("expected error for position 360")
	}
	if err := r.MoveAbsolute(-1); err == nil {
		t.Fatal("expected error for negative position")
	}
	if err := r.MoveAbsolute(90); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pos, _ := r.Position()
	mech, _ := r.MechanicalPosition()
	if pos != 90 || mech != 90 {
		t.Fatalf("expected position/mechanical 90/90, got %g/%g", pos, mech)
	}
}

func TestMoveMechanicalTracksSeparatelyFromSync(t *testing.T) {
	r := New(0, "Test Rotator")
	if err := r.MoveMechanical(30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Sync(45); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pos, _ := r.Position()
	mech, _ := r.MechanicalPosition()
	if pos != 45 {
		t.Fatalf("expected synced position 45, got %g", pos)
	}
	if mech != 30 {
		t.Fatalf("expected mechanical position unaffected by sync, got %g", mech)
	}
}

func TestSetReverse(t *testing.T) {
	r := New(0, "Test Rotator")
	if rev, _ := r.Reverse(); rev {
		t.Fatal("expected reverse to start false")
	}
	if err := r.SetReverse(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rev, _ := r.Reverse(); !rev {
		t.Fatal("expected reverse true after SetReverse(true)")
	}
}
