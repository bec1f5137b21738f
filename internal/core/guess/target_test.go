package guess

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewTarget_WithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		target, err := NewTarget(rng, 1, 100)
		if err != nil {
			t.Fatalf("NewTarget: %v", err)
		}
		if target < 1 || target > 100 {
			t.Fatalf("NewTarget = %d, out of range [1, 100]", target)
		}
	}
}

func TestNewTarget_Determinism(t *testing.T) {
	first, err := NewTarget(rand.New(rand.NewSource(12345)), 1, 100)
	if err != nil {
		t.Fatalf("NewTarget: %v", err)
	}
	for i := 0; i < 5; i++ {
		target, err := NewTarget(rand.New(rand.NewSource(12345)), 1, 100)
		if err != nil {
			t.Fatalf("NewTarget: %v", err)
		}
		if target != first {
			t.Fatalf("same seed produced %d then %d", first, target)
		}
	}
}

func TestNewTarget_SingleValueRange(t *testing.T) {
	target, err := NewTarget(rand.New(rand.NewSource(1)), 7, 7)
	if err != nil {
		t.Fatalf("NewTarget: %v", err)
	}
	if target != 7 {
		t.Errorf("NewTarget on [7, 7] = %d, want 7", target)
	}
}

func TestNewTarget_InvertedBounds(t *testing.T) {
	if _, err := NewTarget(rand.New(rand.NewSource(1)), 100, 1); !errors.Is(err, ErrInvalidBounds) {
		t.Fatalf("expected ErrInvalidBounds, got %v", err)
	}
}

func TestNewTarget_NilSource(t *testing.T) {
	if _, err := NewTarget(nil, 1, 100); err == nil {
		t.Fatal("expected error for nil random source")
	}
}
