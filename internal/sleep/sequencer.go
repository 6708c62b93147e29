// Package sleep runs the sleep transition: fade out, time warp, recovery,
// fade in and the wake-up message.
package sleep

import (
	"context"
	"log/slog"
	"time"

	"github.com/appengine-ltd/better-sleep/internal/clock"
	"github.com/appengine-ltd/better-sleep/internal/hud"
	"github.com/appengine-ltd/better-sleep/internal/quality"
)

type Stage int

const (
	StageIdle Stage = iota
	StageCommitting
	StageFadingOut
	StageBlackedOut
	StageResolved
	StageFadingIn
	StageFeedback
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageCommitting:
		return "committing"
	case StageFadingOut:
		return "fading_out"
	case StageBlackedOut:
		return "blacked_out"
	case StageResolved:
		return "resolved"
	case StageFadingIn:
		return "fading_in"
	case StageFeedback:
		return "feedback"
	default:
		return "unknown"
	}
}

// DefaultBlackout is the base blackout the host game requests.
const DefaultBlackout = 5 * time.Second

type Timings struct {
	FadeOut  time.Duration
	FadeIn   time.Duration
	Feedback time.Duration
}

func DefaultTimings() Timings {
	return Timings{
		FadeOut:  1500 * time.Millisecond,
		FadeIn:   1500 * time.Millisecond,
		Feedback: 4 * time.Second,
	}
}

// Rester applies recovery once the sleep length is known.
type Rester interface {
	ReduceAfterSleep(ctx context.Context, hours, quality, now float64) float64
}

// Session is the state of one sleep from commit to wake-up message.
type Session struct {
	RequestedWakeFraction float64
	Quality               float64
	BlackoutDuration      time.Duration

	preSleep float64
	wake     Wake
}

// Blackout is the time spent fully dark; restful sleep passes faster.
func (s Session) Blackout() time.Duration {
	return time.Duration(float64(s.BlackoutDuration) * s.Quality)
}

// Outcome summarises the most recent completed resolution.
type Outcome struct {
	Quality    float64
	Wake       Wake
	SleepHours float64
	Reduction  float64
	Message    string
}

type Deps struct {
	Clock     clock.Source
	Rest      Rester
	Evaluator quality.Evaluator
	Resting   quality.ContextSource
	Surface   hud.Surface
	Rand      Rand
	Logger    *slog.Logger
	Timings   Timings
}

type Sequencer struct {
	deps Deps

	stage   Stage
	elapsed time.Duration
	session *Session
	last    Outcome
}

func NewSequencer(deps Deps) *Sequencer {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Rand == nil {
		deps.Rand = NewRand(0)
	}
	if deps.Evaluator.Environment == nil {
		deps.Evaluator = quality.NewEvaluator()
	}
	if deps.Timings == (Timings{}) {
		deps.Timings = DefaultTimings()
	}
	return &Sequencer{deps: deps}
}

func (s *Sequencer) Stage() Stage { return s.stage }

func (s *Sequencer) Active() bool { return s != nil && s.stage != StageIdle }

// Session returns a copy of the running session.
func (s *Sequencer) Session() (Session, bool) {
	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}

func (s *Sequencer) LastOutcome() Outcome { return s.last }

// Begin commits to sleeping until wakeFraction. It returns false when a sleep
// is already running.
func (s *Sequencer) Begin(ctx context.Context, wakeFraction float64, blackout time.Duration) bool {
	if s.Active() {
		return false
	}
	if blackout < 0 {
		blackout = 0
	}
	s.enter(StageCommitting)

	var rc quality.RestingContext
	if s.deps.Resting != nil {
		rc = s.deps.Resting.RestingContext()
	}
	q := s.deps.Evaluator.Evaluate(rc)
	s.session = &Session{
		RequestedWakeFraction: clock.Normalize(wakeFraction),
		Quality:               q,
		BlackoutDuration:      blackout,
	}
	s.deps.Logger.InfoContext(ctx, "sleep committed",
		"wake", clock.Format(s.session.RequestedWakeFraction, false),
		"quality", q,
		"blackout", s.session.Blackout(),
	)

	s.deps.Surface.SetCrosshair(false)
	s.deps.Surface.SetFade(0)
	s.enter(StageFadingOut)
	return true
}

// Step advances the transition by one frame.
func (s *Sequencer) Step(ctx context.Context, dt time.Duration) {
	if !s.Active() {
		return
	}
	if dt < 0 {
		dt = 0
	}
	t := s.deps.Timings

	switch s.stage {
	case StageFadingOut:
		s.elapsed += dt
		if s.elapsed >= t.FadeOut {
			s.deps.Surface.SetFade(1)
			s.enter(StageBlackedOut)
			return
		}
		s.deps.Surface.SetFade(ratio(s.elapsed, t.FadeOut))

	case StageBlackedOut:
		s.elapsed += dt
		if s.elapsed >= s.session.Blackout() {
			s.resolve(ctx)
		}

	case StageResolved:
		// The warp was requested last frame; the clock now reflects it.
		s.recover(ctx)
		s.enter(StageFadingIn)

	case StageFadingIn:
		s.elapsed += dt
		if s.elapsed >= t.FadeIn {
			s.deps.Surface.SetFade(0)
			s.showFeedback()
			s.enter(StageFeedback)
			return
		}
		s.deps.Surface.SetFade(1 - ratio(s.elapsed, t.FadeIn))

	case StageFeedback:
		s.elapsed += dt
		if s.elapsed >= t.Feedback {
			s.finish()
		}
	}
}

func (s *Sequencer) resolve(ctx context.Context) {
	src := s.deps.Clock
	dayLength := src.DayLength()
	sess := s.session

	sess.preSleep = src.Now()
	sess.wake = ResolveWake(s.deps.Rand, sess.RequestedWakeFraction, sess.Quality, dayLength)

	forward := sess.wake.At - sess.preSleep
	if forward < 0 {
		forward += dayLength
	}
	src.SetWarpOffset(src.WarpOffset() + forward)

	s.deps.Logger.InfoContext(ctx, "sleep resolved",
		"requested", clock.Format(sess.RequestedWakeFraction, false),
		"wake", clock.Format(sess.wake.At/dayLength, false),
		"early", sess.wake.Early,
	)
	s.enter(StageResolved)
}

func (s *Sequencer) recover(ctx context.Context) {
	src := s.deps.Clock
	sess := s.session
	dayLength := src.DayLength()
	now := src.Now()

	span, ok := clock.Elapsed(sess.preSleep, now, dayLength)
	if !ok {
		s.deps.Logger.WarnContext(ctx, "sleep span inconsistent, treating as zero", "from", sess.preSleep, "to", now)
	}
	hours := clock.Hours(span, dayLength)

	var reduction float64
	if s.deps.Rest != nil {
		reduction = s.deps.Rest.ReduceAfterSleep(ctx, hours, sess.Quality, now)
	}
	s.last = Outcome{
		Quality:    sess.Quality,
		Wake:       sess.wake,
		SleepHours: hours,
		Reduction:  reduction,
	}
}

func (s *Sequencer) showFeedback() {
	msg := Feedback(s.deps.Rand, s.session.Quality, s.session.wake.Early)
	s.last.Message = msg
	s.deps.Surface.SetBanner(msg)
}

func (s *Sequencer) finish() {
	s.deps.Surface.SetBanner("")
	s.deps.Surface.SetCrosshair(true)
	s.session = nil
	s.enter(StageIdle)
}

func (s *Sequencer) enter(stage Stage) {
	s.deps.Logger.Debug("sleep stage", "from", s.stage, "to", stage)
	s.stage = stage
	s.elapsed = 0
}

func ratio(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	return float64(elapsed) / float64(total)
}

func clamp01(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
