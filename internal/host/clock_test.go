package host

import (
	"math"
	"testing"
	"time"

	"github.com/appengine-ltd/better-sleep/internal/quality"
)

func TestWorldClockAdvancesAndWraps(t *testing.T) {
	c := NewWorldClock(1440, 60, 0.99)
	if got := c.Now(); math.Abs(got-1425.6) > 1e-9 {
		t.Fatalf("expected start at 1425.6, got %v", got)
	}
	c.Advance(time.Second)
	if got := c.Now(); math.Abs(got-45.6) > 1e-9 {
		t.Fatalf("expected wrap to 45.6, got %v", got)
	}
}

func TestWorldClockPausedIgnoresAdvance(t *testing.T) {
	c := NewWorldClock(1440, 10, 0.5)
	c.SetPaused(true)
	c.Advance(time.Minute)
	if c.DayFraction() != 0.5 {
		t.Fatalf("expected paused clock to stay at 0.5, got %v", c.DayFraction())
	}
}

func TestWorldClockWarpOffset(t *testing.T) {
	c := NewWorldClock(1440, 1, 0.75)
	c.SetWarpOffset(c.WarpOffset() + 600)
	c.SetWarpOffset(c.WarpOffset() + 600)
	if got := c.Now(); math.Abs(got-840) > 1e-9 {
		t.Fatalf("expected 840, got %v", got)
	}
	if c.WarpOffset() != 1200 {
		t.Fatalf("expected accumulated offset 1200, got %v", c.WarpOffset())
	}
}

func TestWorldClockSkipScalesToDayLength(t *testing.T) {
	c := NewWorldClock(720, 1, 0)
	c.Skip(60)
	if c.Now() != 30 {
		t.Fatalf("expected an hour to be 30 units on a half-length day, got %v", c.Now())
	}
}

func TestWorldClockResumeAtIsExact(t *testing.T) {
	c := NewWorldClock(1440, 1, 0.9)
	c.SetWarpOffset(500)
	c.ResumeAt(1416.3)
	if got := c.Now(); got != 1416.3 {
		t.Fatalf("expected exact resume at 1416.3, got %v", got)
	}
	if c.WarpOffset() != 0 {
		t.Fatalf("expected warp offset cleared, got %v", c.WarpOffset())
	}
	c.ResumeAt(math.NaN())
	if got := c.Now(); got != 1416.3 {
		t.Fatalf("expected NaN resume ignored, got %v", got)
	}
}

func TestSpotContext(t *testing.T) {
	s := NewSpot("")
	if s.Surface() != quality.SurfaceNone {
		t.Fatalf("expected standing by default, got %q", s.Surface())
	}
	s.Sit(quality.SurfaceBed)
	if !s.RestingContext().Bed {
		t.Fatalf("expected bed context")
	}
	s.Stand()
	if s.RestingContext().Seated {
		t.Fatalf("expected standing context")
	}
}
