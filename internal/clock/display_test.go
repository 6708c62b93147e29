package clock

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestFormatTable(t *testing.T) {
	tests := []struct {
		fraction float64
		twelve   bool
		want     string
	}{
		{fraction: 0, want: "00:00"},
		{fraction: 0.25, want: "06:00"},
		{fraction: 0.5, want: "12:00"},
		{fraction: 0.75 + FiveMinutes, want: "18:05"},
		{fraction: 1.25, want: "06:00"},
		{fraction: -0.25, want: "18:00"},
		{fraction: 0, twelve: true, want: "12:00 AM"},
		{fraction: 0.5, twelve: true, want: "12:00 PM"},
		{fraction: 13.0 / 24, twelve: true, want: "01:00 PM"},
		{fraction: 7.5 / 24, twelve: true, want: "07:30 AM"},
	}
	for _, tc := range tests {
		got := Format(tc.fraction, tc.twelve)
		if got != tc.want {
			t.Fatalf("Format(%v, %v)=%q want=%q", tc.fraction, tc.twelve, got, tc.want)
		}
	}
}

func TestFormatStepValuesNeverDropAMinute(t *testing.T) {
	for n := 0; n < StepsPerDay; n++ {
		got := Format(FromSteps(n), false)
		minutes := n * 5
		want := Format((float64(minutes)+0.5)/MinutesPerDay, false)
		if got != want {
			t.Fatalf("step %d: got %q want %q", n, got, want)
		}
	}
}

func TestProperty_FormatPeriodicInWholeDays(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		minute := rapid.IntRange(0, MinutesPerDay-1).Draw(t, "minute")
		days := rapid.IntRange(-3, 3).Draw(t, "days")
		twelve := rapid.Bool().Draw(t, "twelve")
		f := (float64(minute) + 0.5) / MinutesPerDay

		base := Format(f, twelve)
		if got := Format(f+float64(days), twelve); got != base {
			t.Fatalf("Format(%v+%d)=%q want %q", f, days, got, base)
		}
		if Format(f+1, twelve) != base || Format(f-1, twelve) != base {
			t.Fatalf("Format not periodic at %v", f)
		}
	})
}

func TestDialAngles(t *testing.T) {
	hour, minute := DialAngles(0.25)
	if math.Abs(hour-180) > 1e-9 {
		t.Fatalf("expected hour hand at 180 for 06:00, got %v", hour)
	}
	if math.Abs(minute) > 1e-9 && math.Abs(minute-360) > 1e-9 {
		t.Fatalf("expected minute hand at 0 for 06:00, got %v", minute)
	}

	hour, minute = DialAngles(3.5 / 24)
	if math.Abs(hour-105) > 1e-9 {
		t.Fatalf("expected hour hand at 105 for 03:30, got %v", hour)
	}
	if math.Abs(minute-180) > 1e-9 {
		t.Fatalf("expected minute hand at 180 for 03:30, got %v", minute)
	}
}

func TestSnapAndSteps(t *testing.T) {
	if got := Step(0.5); got != StepsPerDay/2 {
		t.Fatalf("expected step %d for noon, got %d", StepsPerDay/2, got)
	}
	if got := Step(1 - FiveMinutes/4); got != 0 {
		t.Fatalf("expected near-midnight to snap to step 0, got %d", got)
	}
	if got := WrapSteps(-1); got != StepsPerDay-1 {
		t.Fatalf("expected -1 to wrap to %d, got %d", StepsPerDay-1, got)
	}
	if got := Format(Snap(0.5+2.4/MinutesPerDay), false); got != "12:00" {
		t.Fatalf("expected 12:02 to snap to 12:00, got %s", got)
	}
	if got := Format(Snap(0.5+2.6/MinutesPerDay), false); got != "12:05" {
		t.Fatalf("expected 12:03 to snap to 12:05, got %s", got)
	}
}

func TestElapsedWrapsOnce(t *testing.T) {
	d, ok := Elapsed(1400, 20, 1440)
	if !ok || d != 60 {
		t.Fatalf("expected 60 across midnight, got %v ok=%v", d, ok)
	}
	d, ok = Elapsed(3000, 20, 1440)
	if ok || d != 0 {
		t.Fatalf("expected clamped fault, got %v ok=%v", d, ok)
	}
	if h := Hours(360, 1440); h != 6 {
		t.Fatalf("expected 6 hours, got %v", h)
	}
}
