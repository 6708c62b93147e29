package sleep

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestResolveWakeOnTimeWhenRollPasses(t *testing.T) {
	w := ResolveWake(&scriptedRand{floats: []float64{0.7}}, 0.25, 0.7, 1440)
	if w.Early || w.At != 360 {
		t.Fatalf("expected on-time wake at 360, got %+v", w)
	}
}

func TestResolveWakeEarlyWithinBound(t *testing.T) {
	w := ResolveWake(&scriptedRand{floats: []float64{0.5, 1}}, 0.5, 0, 1440)
	if !w.Early {
		t.Fatalf("expected early wake")
	}
	if math.Abs(w.EarlyBy-576) > 1e-9 || math.Abs(w.At-144) > 1e-9 {
		t.Fatalf("expected 576 early at 144, got %+v", w)
	}
}

func TestResolveWakeNeverLate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64Min(1).Draw(t, "seed")
		q := rapid.Float64Range(0, 1).Draw(t, "quality")
		frac := rapid.Float64Range(0, 0.999).Draw(t, "wake")
		const day = 1440.0

		w := ResolveWake(NewRand(seed), frac, q, day)
		if w.At < 0 || w.At >= day {
			t.Fatalf("wake %v outside the day", w.At)
		}
		back := math.Mod(w.Requested-w.At+day, day)
		if back > day*MaxEarlyFraction*(1-q)+1e-9 {
			t.Fatalf("woke %v early, more than allowed at quality %v", back, q)
		}
		if q == 1 && w.Early {
			t.Fatalf("full quality must never wake early")
		}
	})
}
