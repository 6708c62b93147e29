// Package selection implements the interactive wake-time picker.
package selection

import (
	"time"

	"github.com/appengine-ltd/better-sleep/internal/clock"
	"github.com/appengine-ltd/better-sleep/internal/hud"
	"github.com/appengine-ltd/better-sleep/internal/input"
)

const (
	RepeatDelay = 500 * time.Millisecond
	RepeatRate  = 50 * time.Millisecond
)

var hintLines = []string{
	"Scroll wheel or up and down arrow keys to change time",
	"Enter to select",
}

type Outcome int

const (
	Pending Outcome = iota
	Cancelled
	Confirmed
)

type Result struct {
	Outcome      Outcome
	WakeFraction float64
}

type Controller struct {
	hud       hud.Surface
	clock     clock.Source
	use12Hour bool

	active bool
	// Base and offset are counted in 5-minute steps.
	baseSteps   int
	offsetSteps int

	holdTimer time.Duration
	direction int
}

func NewController(surface hud.Surface, src clock.Source, use12Hour bool) *Controller {
	return &Controller{hud: surface, clock: src, use12Hour: use12Hour}
}

func (c *Controller) Active() bool {
	return c != nil && c.active
}

func (c *Controller) SetTwelveHour(v bool) {
	c.use12Hour = v
	if c.active {
		c.render()
	}
}

// Start opens the picker at currentFraction snapped to five minutes.
func (c *Controller) Start(currentFraction float64) {
	if c == nil || c.active {
		return
	}
	c.active = true
	c.baseSteps = clock.Step(currentFraction)
	c.offsetSteps = 0
	c.resetRepeat()

	c.hud.SetPaused(true)
	c.hud.SetCrosshair(false)
	c.render()
}

func (c *Controller) BaseTime() float64 { return clock.FromSteps(c.baseSteps) }

// Offset is the signed adjustment from BaseTime as a day fraction.
func (c *Controller) Offset() float64 { return float64(c.offsetSteps) * clock.FiveMinutes }

// WakeFraction is the normalized, quantized time currently selected.
func (c *Controller) WakeFraction() float64 {
	return clock.FromSteps(c.baseSteps + c.offsetSteps)
}

// Update consumes one frame of input.
func (c *Controller) Update(frame input.Frame, dt time.Duration) Result {
	if !c.Active() {
		return Result{}
	}
	if dt < 0 {
		dt = 0
	}
	if frame.Cancel {
		c.finish()
		c.hud.SetCrosshair(true)
		return Result{Outcome: Cancelled}
	}

	if frame.Scroll != 0 {
		c.adjust(frame.Scroll)
	}

	if dir := frame.Direction(); dir != 0 {
		c.hold(dir, frame.DirectionPressed, dt)
	} else {
		c.direction = 0
	}

	if frame.Confirm {
		wake := c.WakeFraction()
		c.finish()
		return Result{Outcome: Confirmed, WakeFraction: wake}
	}

	c.render()
	return Result{}
}

func (c *Controller) hold(dir int, pressed bool, dt time.Duration) {
	if pressed || dir != c.direction {
		c.holdTimer = 0
		c.direction = dir
		c.adjust(dir)
		return
	}

	prev := c.holdTimer
	c.holdTimer += dt
	if c.holdTimer <= RepeatDelay {
		return
	}
	// Repeats follow the hold timer alone; scrolling mid-hold does not
	// restart the cadence.
	fired := repeatsAt(c.holdTimer) - repeatsAt(prev)
	c.adjust(int(fired) * dir)
}

// repeatsAt counts the repeats due after holding for held: one every
// RepeatRate once RepeatDelay has passed.
func repeatsAt(held time.Duration) int64 {
	if held <= RepeatDelay {
		return 0
	}
	return int64((held - RepeatDelay) / RepeatRate)
}

func (c *Controller) adjust(steps int) {
	c.offsetSteps += steps
}

func (c *Controller) resetRepeat() {
	c.holdTimer = 0
	c.direction = 0
}

func (c *Controller) finish() {
	c.active = false
	c.offsetSteps = 0
	c.resetRepeat()
	c.hud.HideSelection()
	c.hud.SetPaused(false)
}

func (c *Controller) render() {
	wake := c.WakeFraction()
	hourAngle, minuteAngle := clock.DialAngles(wake)
	current := ""
	if c.clock != nil {
		current = clock.Format(c.clock.DayFraction(), c.use12Hour)
	}
	c.hud.ShowSelection(hud.Selection{
		Title:       "Select wake up time",
		Current:     "Current time: " + current,
		Wake:        clock.Format(wake, c.use12Hour),
		Hint:        hintLines,
		HourAngle:   hourAngle,
		MinuteAngle: minuteAngle,
	})
}
