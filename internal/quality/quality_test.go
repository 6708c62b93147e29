package quality

import "testing"

func TestLocationScoreTable(t *testing.T) {
	tests := []struct {
		name string
		rc   RestingContext
		want float64
	}{
		{name: "standing", rc: RestingContext{}, want: 0.1},
		{name: "bench", rc: RestingContext{Seated: true, Furniture: true}, want: 0.25},
		{name: "driver", rc: RestingContext{Seated: true, Vehicle: true, Driver: true}, want: 0.55},
		{name: "rear", rc: RestingContext{Seated: true, Vehicle: true}, want: 0.7},
		{name: "bed", rc: RestingContext{Seated: true, Bed: true}, want: 1.0},
		{name: "chair", rc: RestingContext{Seated: true}, want: 0.4},
		// Flags that are ignored without a seat.
		{name: "bed flag standing", rc: RestingContext{Bed: true}, want: 0.1},
		// Earlier rules win.
		{name: "bench bed", rc: RestingContext{Seated: true, Furniture: true, Bed: true}, want: 0.25},
		{name: "camper bed", rc: RestingContext{Seated: true, Vehicle: true, Bed: true}, want: 0.7},
	}
	for _, tc := range tests {
		if got := LocationScore(tc.rc); got != tc.want {
			t.Fatalf("%s: LocationScore=%v want=%v", tc.name, got, tc.want)
		}
	}
}

type scaledEnv float64

func (s scaledEnv) Score(RestingContext) float64 { return float64(s) }

func TestEvaluateAppliesEnvironmentAndClamps(t *testing.T) {
	bed := SurfaceBed.Context()
	if got := NewEvaluator().Evaluate(bed); got != 1 {
		t.Fatalf("expected fixed environment to leave bed at 1, got %v", got)
	}
	if got := (Evaluator{Environment: scaledEnv(0.5)}).Evaluate(bed); got != 0.5 {
		t.Fatalf("expected halved score, got %v", got)
	}
	if got := (Evaluator{Environment: scaledEnv(3)}).Evaluate(bed); got != 1 {
		t.Fatalf("expected clamp to 1, got %v", got)
	}
	if got := (Evaluator{Environment: scaledEnv(-1)}).Evaluate(bed); got != 0 {
		t.Fatalf("expected clamp to 0, got %v", got)
	}
	if got := (Evaluator{}).Evaluate(SurfaceVehicleRear.Context()); got != 0.7 {
		t.Fatalf("expected nil environment to act as 1, got %v", got)
	}
}

func TestSurfacesRoundTrip(t *testing.T) {
	for _, s := range Surfaces() {
		got, ok := ParseSurface(" " + string(s) + " ")
		if !ok || got != s {
			t.Fatalf("ParseSurface(%q)=%q,%v", s, got, ok)
		}
		if s.Label() == "" {
			t.Fatalf("expected label for %q", s)
		}
	}
	if _, ok := ParseSurface("hammock"); ok {
		t.Fatalf("did not expect hammock to parse")
	}
}
