package focuser

import "testing"

func TestNewStartsAtZero(t *testing.T) {
	f := New(0, "Test Focuser", 50000)
	pos, _ := f.Position()
	if pos != 0 {
		t.Fatalf("expected position 0, got %d", pos)
	}
	if f.MaxStep() != 50000 {
		t.Fatalf("expected max step 50000, got %d", f.MaxStep())
	}
}

func TestMoveRejectsOutOfRange(t *testing.T) {
	f := New(0, "Test Focuser", 1000)
	if err := f.Move(-1); err == nil {
		t.Fatal("expected error for negative position")
	}
	if err := f.Move(1001); err == nil {
		t.Fatal("expected error for position beyond max step")
	}
	if err := f.Move(500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pos, _ := f.Position()
	if pos != 500 {
		t.Fatalf("expected position 500, got %d", pos)
	}
}

func TestSetTempComp(t *testing.T) {
	f := New(0, "Test Focuser", 1000)
	if f.TempComp() {
		t.Fatal("expected temp comp to start false")
	}
	if err := f.SetTempComp(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.TempComp() {
		t.Fatal("expected temp comp true after SetTempComp(true)")
	}
}
