// Package host simulates the game world the sleep core runs inside: a
// day/night clock and the spot the player is resting on.
package host

import (
	"math"
	"time"
)

const (
	DefaultDayLength = 1440.0
	DefaultTimeScale = 1.0
)

// WorldClock is a day/night cycle measured in game minutes. The sleep core
// moves it only through the warp offset.
type WorldClock struct {
	dayLength float64
	scale     float64
	base      float64
	offset    float64
	paused    bool
}

// NewWorldClock starts a clock at startFraction of a day. scale is game
// minutes per real second.
func NewWorldClock(dayLength, scale, startFraction float64) *WorldClock {
	if dayLength <= 0 {
		dayLength = DefaultDayLength
	}
	if scale < 0 {
		scale = 0
	}
	return &WorldClock{
		dayLength: dayLength,
		scale:     scale,
		base:      wrap(startFraction*dayLength, dayLength),
	}
}

func (c *WorldClock) Now() float64 {
	return wrap(c.base+c.offset, c.dayLength)
}

func (c *WorldClock) DayFraction() float64 {
	return c.Now() / c.dayLength
}

func (c *WorldClock) DayLength() float64    { return c.dayLength }
func (c *WorldClock) WarpOffset() float64   { return c.offset }
func (c *WorldClock) TimeScale() float64    { return c.scale }
func (c *WorldClock) Paused() bool          { return c.paused }
func (c *WorldClock) SetPaused(paused bool) { c.paused = paused }

// SetWarpOffset replaces the warp offset. Offsets accumulate across sleeps,
// so only the base is kept wrapped.
func (c *WorldClock) SetWarpOffset(offset float64) {
	c.offset = offset
}

// ResumeAt places the clock at a saved clock-domain time and clears the warp
// offset, so Now returns exactly that value.
func (c *WorldClock) ResumeAt(now float64) {
	if math.IsNaN(now) || math.IsInf(now, 0) {
		return
	}
	c.base = wrap(now, c.dayLength)
	c.offset = 0
}

// Advance moves the clock by real time dt, unless paused.
func (c *WorldClock) Advance(dt time.Duration) {
	if c.paused || dt <= 0 {
		return
	}
	c.base = wrap(c.base+dt.Seconds()*c.scale, c.dayLength)
}

// Skip moves the clock forward by game minutes regardless of pause.
func (c *WorldClock) Skip(minutes float64) {
	if minutes <= 0 {
		return
	}
	c.base = wrap(c.base+minutes*c.dayLength/DefaultDayLength, c.dayLength)
}

func wrap(v, length float64) float64 {
	v = math.Mod(v, length)
	if v < 0 {
		v += length
	}
	if v >= length {
		v = 0
	}
	return v
}
