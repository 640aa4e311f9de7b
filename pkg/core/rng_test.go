package core

import "testing"

func TestFillDeterministic(t *testing.T) {
	a := make([]uint8, 64)
	b := make([]uint8, 64)
	Fill(NewRNG(5), a, 3)
	Fill(NewRNG(5), b, 3)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d differs: %d vs %d", i, a[i], b[i])
		}
		if a[i] >= 3 {
			t.Fatalf("index %d out of range: %d", i, a[i])
		}
	}
}

func TestUint8nZero(t *testing.T) {
	if got := NewRNG(1).Uint8n(0); got != 0 {
		t.Fatalf("Uint8n(0) = %d, want 0", got)
	}
}
