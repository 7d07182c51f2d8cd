package mathx

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %d", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1,0,10) = %d", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11,0,10) = %d", got)
	}
	// Swapped bounds.
	if got := Clamp(11, 10, 0); got != 10 {
		t.Errorf("Clamp(11,10,0) = %d", got)
	}
}

func TestBetween(t *testing.T) {
	if !Between(5, 0, 10) || Between(11, 0, 10) {
		t.Error("Between misbehaves")
	}
	if !Between(5, 10, 0) {
		t.Error("Between should be order-insensitive")
	}
}
