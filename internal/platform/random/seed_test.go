package random

import "testing"

func TestNewSeed(t *testing.T) {
	first, err := NewSeed()
	if err != nil {
		t.Fatalf("new seed: %v", err)
	}

	// Two draws colliding is possible but vanishingly unlikely; a collision
	// here almost certainly means the entropy source is broken.
	second, err := NewSeed()
	if err != nil {
		t.Fatalf("new seed: %v", err)
	}
	if first == second {
		t.Fatalf("consecutive seeds identical: %d", first)
	}
}
