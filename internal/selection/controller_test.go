package selection

import (
	"math"
	"testing"
	"time"

	"github.com/appengine-ltd/better-sleep/internal/clock"
	"github.com/appengine-ltd/better-sleep/internal/hud"
	"github.com/appengine-ltd/better-sleep/internal/input"
)

type stubClock struct{ fraction float64 }

func (s stubClock) Now() float64         { return s.fraction * 1440 }
func (s stubClock) DayFraction() float64 { return s.fraction }
func (s stubClock) DayLength() float64   { return 1440 }
func (s stubClock) WarpOffset() float64  { return 0 }
func (s stubClock) SetWarpOffset(float64) {}

func newTestController(start float64) (*Controller, *hud.State) {
	state := hud.NewState()
	c := NewController(state, stubClock{fraction: start}, false)
	c.Start(start)
	return c, state
}

const frame = 16 * time.Millisecond

func TestStartSnapsAndPausesHUD(t *testing.T) {
	c, state := newTestController(0.5 + 2.0/clock.MinutesPerDay)
	if c.BaseTime() != 0.5 || c.Offset() != 0 {
		t.Fatalf("expected base snapped to 0.5, got base=%v offset=%v", c.BaseTime(), c.Offset())
	}
	if !state.Paused || state.Crosshair || state.Selection == nil {
		t.Fatalf("expected paused, hidden crosshair and overlay, got %+v", state)
	}
	if state.Selection.Wake != "12:00" || state.Selection.Current != "Current time: 12:02" {
		t.Fatalf("unexpected overlay %+v", state.Selection)
	}
}

func TestThreeScrollUpsAddFifteenMinutes(t *testing.T) {
	c, state := newTestController(0.5)
	for i := 0; i < 3; i++ {
		c.Update(input.Frame{Scroll: 1}, frame)
	}
	want := 0.5 + 3*clock.FiveMinutes
	if math.Abs(c.WakeFraction()-want) > 1e-12 {
		t.Fatalf("expected %v, got %v", want, c.WakeFraction())
	}
	if state.Selection.Wake != "12:15" {
		t.Fatalf("expected 12:15 displayed, got %q", state.Selection.Wake)
	}
}

func holdFor(c *Controller, dir int, total, step time.Duration) {
	f := input.Frame{Up: dir > 0, Down: dir < 0, DirectionPressed: true}
	c.Update(f, step)
	f.DirectionPressed = false
	for held := time.Duration(0); held < total; held += step {
		c.Update(f, step)
	}
}

func TestHoldTwoSecondsFiresThirtyOneSteps(t *testing.T) {
	for _, step := range []time.Duration{50 * time.Millisecond, 16 * time.Millisecond, 10 * time.Millisecond} {
		c, _ := newTestController(0)
		holdFor(c, 1, 2*time.Second, step)
		if got := c.offsetSteps; got != 31 {
			t.Fatalf("frame %s: expected 31 adjustments, got %d", step, got)
		}
	}
}

func TestHoldBelowDelayFiresOnce(t *testing.T) {
	c, _ := newTestController(0)
	holdFor(c, -1, 400*time.Millisecond, frame)
	if c.offsetSteps != -1 {
		t.Fatalf("expected a single step, got %d", c.offsetSteps)
	}
	if got := clock.Format(c.WakeFraction(), false); got != "23:55" {
		t.Fatalf("expected wrap to 23:55, got %s", got)
	}
}

func TestDirectionChangeResetsHold(t *testing.T) {
	c, _ := newTestController(0.25)
	holdFor(c, 1, time.Second, 50*time.Millisecond)
	up := c.offsetSteps
	c.Update(input.Frame{Down: true}, 50*time.Millisecond)
	if c.offsetSteps != up-1 {
		t.Fatalf("expected direction change to fire one step immediately, got %d want %d", c.offsetSteps, up-1)
	}
	if c.holdTimer != 0 {
		t.Fatalf("expected hold timer reset, got %s", c.holdTimer)
	}
}

func TestReleaseThenPressFiresAgain(t *testing.T) {
	c, _ := newTestController(0)
	c.Update(input.Frame{Up: true, DirectionPressed: true}, frame)
	c.Update(input.Frame{}, frame)
	c.Update(input.Frame{Up: true}, frame)
	if c.offsetSteps != 2 {
		t.Fatalf("expected press after release to fire, got %d", c.offsetSteps)
	}
}

func TestScrollDuringHoldKeepsRepeatCadence(t *testing.T) {
	c, _ := newTestController(0)
	c.Update(input.Frame{Up: true, DirectionPressed: true}, 20*time.Millisecond)
	for i := 0; i < 100; i++ {
		f := input.Frame{Up: true}
		if i == 50 {
			f.Scroll = 1
		}
		c.Update(f, 20*time.Millisecond)
	}
	// 1 press + 30 repeats over 2s of hold + 1 notch.
	if c.offsetSteps != 32 {
		t.Fatalf("expected 32 adjustments, got %d", c.offsetSteps)
	}
}

func TestCancelDiscardsSelection(t *testing.T) {
	c, state := newTestController(0.3)
	c.Update(input.Frame{Scroll: 4}, frame)
	res := c.Update(input.Frame{Cancel: true, Confirm: true}, frame)
	if res.Outcome != Cancelled {
		t.Fatalf("expected cancel to win, got %+v", res)
	}
	if c.Active() || state.Paused || !state.Crosshair || state.Selection != nil {
		t.Fatalf("expected HUD restored after cancel, got %+v", state)
	}
	if c.Offset() != 0 {
		t.Fatalf("expected offset reset")
	}
}

func TestConfirmReturnsDisplayedTime(t *testing.T) {
	c, state := newTestController(23.0 / 24)
	c.Update(input.Frame{Scroll: 13}, frame)
	res := c.Update(input.Frame{Confirm: true}, frame)
	if res.Outcome != Confirmed {
		t.Fatalf("expected confirm, got %+v", res)
	}
	if got := clock.Format(res.WakeFraction, false); got != "00:05" {
		t.Fatalf("expected wrap past midnight to 00:05, got %s", got)
	}
	if res.WakeFraction < 0 || res.WakeFraction >= 1 {
		t.Fatalf("expected normalized fraction, got %v", res.WakeFraction)
	}
	if state.Paused || state.Selection != nil {
		t.Fatalf("expected pause lifted and overlay hidden")
	}
	if state.Crosshair {
		t.Fatalf("expected crosshair to stay hidden until the sleep ends")
	}
}

func TestUpdateWhileInactiveIsIgnored(t *testing.T) {
	state := hud.NewState()
	c := NewController(state, nil, true)
	if res := c.Update(input.Frame{Confirm: true}, frame); res.Outcome != Pending {
		t.Fatalf("expected no outcome while inactive, got %+v", res)
	}
	c.Start(0)
	if state.Selection.Wake != "12:00 AM" {
		t.Fatalf("expected 12-hour display, got %q", state.Selection.Wake)
	}
}
