package sleep

import "testing"

func TestNewRandDeterministic(t *testing.T) {
	a := NewRand(12345)
	b := NewRand(12345)

	for i := 0; i < 20; i++ {
		gotA := a.Float64()
		gotB := b.Float64()
		if gotA != gotB {
			t.Fatalf("expected deterministic sequence, mismatch at %d: %v != %v", i, gotA, gotB)
		}
	}
}

func TestSeedWordChangesWithSalt(t *testing.T) {
	if seedWord(99, "a") == seedWord(99, "b") {
		t.Fatalf("expected different seed words for different salts")
	}
}
