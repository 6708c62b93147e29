// Package game drives one frame of the sleep loop: picker input, the sleep
// transition, the world clock and tiredness.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/appengine-ltd/better-sleep/internal/clock"
	"github.com/appengine-ltd/better-sleep/internal/hud"
	"github.com/appengine-ltd/better-sleep/internal/input"
	"github.com/appengine-ltd/better-sleep/internal/quality"
	"github.com/appengine-ltd/better-sleep/internal/selection"
	"github.com/appengine-ltd/better-sleep/internal/sleep"
	"github.com/appengine-ltd/better-sleep/internal/tiredness"
)

// World is the host clock the driver advances each frame.
type World interface {
	clock.Source
	Advance(dt time.Duration)
	// Skip moves forward by in-game minutes.
	Skip(minutes float64)
}

// Flusher writes queued saves; store.Queue implements it.
type Flusher interface {
	Flush(ctx context.Context) error
}

type Options struct {
	Debug      bool
	TwelveHour bool
	Blackout   time.Duration
}

type Deps struct {
	World   World
	Input   input.Source
	HUD     *hud.State
	Tracker *tiredness.Tracker
	Resting quality.ContextSource
	Saves   Flusher
	Rand    sleep.Rand
	Logger  *slog.Logger
}

// Driver runs one frame of the sleep system at a time: input, the wake-time
// picker, the sleep transition, fatigue and saving.
type Driver struct {
	deps Deps
	opts Options

	selection *selection.Controller
	sequencer *sleep.Sequencer

	// wasSleeping is set when the last frame ended inside a sleep.
	wasSleeping bool
}

func NewDriver(deps Deps, opts Options) *Driver {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.HUD == nil {
		deps.HUD = hud.NewState()
	}
	if opts.Blackout <= 0 {
		opts.Blackout = sleep.DefaultBlackout
	}
	d := &Driver{deps: deps, opts: opts}
	d.selection = selection.NewController(deps.HUD, deps.World, opts.TwelveHour)
	d.sequencer = sleep.NewSequencer(sleep.Deps{
		Clock:     deps.World,
		Rest:      deps.Tracker,
		Evaluator: quality.NewEvaluator(),
		Resting:   deps.Resting,
		Surface:   deps.HUD,
		Rand:      deps.Rand,
		Logger:    deps.Logger,
	})
	return d
}

func (d *Driver) HUD() *hud.State                  { return d.deps.HUD }
func (d *Driver) Tracker() *tiredness.Tracker      { return d.deps.Tracker }
func (d *Driver) Sequencer() *sleep.Sequencer      { return d.sequencer }
func (d *Driver) Selection() *selection.Controller { return d.selection }
func (d *Driver) Selecting() bool                  { return d.selection.Active() }
func (d *Driver) Sleeping() bool                   { return d.sequencer.Active() }
func (d *Driver) Busy() bool                       { return d.Selecting() || d.Sleeping() }
func (d *Driver) Debug() bool                      { return d.opts.Debug }
func (d *Driver) TwelveHour() bool                 { return d.opts.TwelveHour }

func (d *Driver) SetDebug(on bool) { d.opts.Debug = on }

func (d *Driver) SetTwelveHour(on bool) {
	d.opts.TwelveHour = on
	d.selection.SetTwelveHour(on)
}

// RequestSleep opens the wake-time picker. It is ignored while the picker
// is open or a sleep is running.
func (d *Driver) RequestSleep() bool {
	if d.Busy() {
		return false
	}
	d.selection.Start(d.deps.World.DayFraction())
	return true
}

// Frame advances everything by dt of real time.
func (d *Driver) Frame(ctx context.Context, dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	var frame input.Frame
	if d.deps.Input != nil {
		frame = d.deps.Input.Poll()
	}

	switch {
	case d.selection.Active():
		res := d.selection.Update(frame, dt)
		if res.Outcome == selection.Confirmed {
			d.sequencer.Begin(ctx, res.WakeFraction, d.opts.Blackout)
		}
	case d.sequencer.Active():
		d.sequencer.Step(ctx, dt)
	}

	if !d.deps.HUD.Paused {
		d.deps.World.Advance(dt)
	}
	switch {
	case d.Busy():
	case d.wasSleeping:
		d.resume(ctx)
	default:
		d.tick(ctx)
	}
	d.wasSleeping = d.Sleeping()

	d.refreshDebug()
	d.flush(ctx)
}

// MaxWaitMinutes bounds a single Wait to ten days.
const MaxWaitMinutes = 10 * 24 * 60

// Wait passes in-game minutes while awake, accruing fatigue an hour at a
// time so long waits are not folded into one day.
func (d *Driver) Wait(ctx context.Context, minutes float64) bool {
	if d.Busy() || minutes <= 0 || minutes > MaxWaitMinutes || math.IsNaN(minutes) {
		return false
	}
	for remaining := minutes; remaining > 0; remaining -= 60 {
		d.deps.World.Skip(math.Min(remaining, 60))
		d.tick(ctx)
	}
	d.refreshDebug()
	d.flush(ctx)
	return true
}

func (d *Driver) DayFraction() float64 { return d.deps.World.DayFraction() }

// ClockText is the current time in the configured format.
func (d *Driver) ClockText() string {
	return clock.Format(d.deps.World.DayFraction(), d.opts.TwelveHour)
}

// DebugLines is the overlay text for the current state.
func (d *Driver) DebugLines() []string {
	lines := []string{"Time: " + d.ClockText()}
	if d.deps.Tracker == nil {
		return lines
	}
	status := d.deps.Tracker.Status()
	lines = append(lines,
		fmt.Sprintf("Tiredness: %.3f%%", d.deps.Tracker.Tiredness()*100),
		fmt.Sprintf("Awake for: %.2f hours", status.AwakeHours),
	)
	if status.Hallucinations {
		lines = append(lines, "Hallucinating")
	} else if status.Blackouts {
		lines = append(lines, "Blacking out")
	}
	return lines
}

func (d *Driver) tick(ctx context.Context) {
	if d.deps.Tracker == nil {
		return
	}
	d.deps.Tracker.Tick(ctx, d.deps.World.Now(), d.deps.World.DayLength())
}

// resume re-anchors fatigue after a sleep, dropping the game time that passed
// during the fade-in and wake-up message.
func (d *Driver) resume(ctx context.Context) {
	if d.deps.Tracker == nil {
		return
	}
	d.deps.Tracker.Resume(ctx, d.deps.World.Now())
}

func (d *Driver) refreshDebug() {
	if d.opts.Debug && !d.selection.Active() {
		d.deps.HUD.SetDebug(d.DebugLines())
		return
	}
	d.deps.HUD.SetDebug(nil)
}

func (d *Driver) flush(ctx context.Context) {
	if d.deps.Saves == nil {
		return
	}
	if err := d.deps.Saves.Flush(ctx); err != nil {
		d.deps.Logger.WarnContext(ctx, "saving tiredness record", "err", err)
	}
}
