package filterwheel

import "testing"

func TestNewCopiesNamesAndOffsets(t *testing.T) {
	f := New(0, "Test Wheel", []string{"Red", "Green", "Blue"})
	names := f.Names()
	if len(names) != 3 || names[0] != "Red" || names[2] != "Blue" {
		t.Fatalf("unexpected names: %v", names)
	}
	offsets := f.FocusOffsets()
	if len(offsets) != 3 {
		t.Fatalf("expected 3 focus offsets, got %d", len(offsets))
	}
}

func TestSetPositionRejectsOutOfRange(t *testing.T) {
	f := New(0, "Test Wheel", []string{"Red", "Green", "Blue"})
	if err := f.SetPosition(3); err == nil {
		t.Fatal("expected error for position 3 with 3 filters")
	}
	if err := f.SetPosition(-2); err == nil {
		t.Fatal("expected error for position -2")
	}
	if err := f.SetPosition(-1); err != nil {
		t.Fatalf("unexpected error for -1 (unknown/between positions): %v", err)
	}
	if err := f.SetPosition(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pos, _ := f.Position()
	if pos != 1 {
		t.Fatalf("expected position 1, got %d", pos)
	}
}

func TestNamesAndOffsetsAreCopiesNotAliases(t *testing.T) {
	f := New(0, "Test Wheel", []string{"Red", "Green"})
	names := f.Names()
	names[0] = "Mutated"
	if got := f.Names()[0]; got != "Red" {
		t.Fatalf("expected internal names unaffected by caller mutation, got %q", got)
	}
	offsets := f.FocusOffsets()
	offsets[0] = 99
	if got := f.FocusOffsets()[0]; got != 0 {
		t.Fatalf("expected internal focus offsets unaffected by caller mutation, got %d", got)
	}
}
