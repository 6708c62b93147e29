// Package tiredness integrates awake time into a bounded fatigue value and
// restores it after sleep.
package tiredness

import (
	"context"
	"log/slog"
	"math"

	"github.com/appengine-ltd/better-sleep/internal/clock"
)

const (
	MaxAwakeHours          = 120.0
	BlackoutThreshold      = 48.0
	HallucinationThreshold = 72.0

	minQualityFactor  = 0.15
	recoveryTimescale = 5.0
)

// Record is the persisted tiredness state for one save.
type Record struct {
	Tiredness           float64 `json:"tiredness" yaml:"tiredness"`
	LastSleepTime       float64 `json:"last_sleep_time" yaml:"last_sleep_time"`
	LastTirednessUpdate float64 `json:"last_tiredness_update" yaml:"last_tiredness_update"`
	LastSleepQuality    float64 `json:"last_sleep_quality" yaml:"last_sleep_quality"`
}

// DefaultRecord is a rested player whose clock starts at now.
func DefaultRecord(now float64) Record {
	return Record{
		LastSleepTime:       now,
		LastTirednessUpdate: now,
		LastSleepQuality:    1,
	}
}

type Store interface {
	Load(ctx context.Context) (Record, bool, error)
	Upsert(ctx context.Context, rec Record) error
}

type Status struct {
	AwakeHours     float64
	Blackouts      bool
	Hallucinations bool
}

type Tracker struct {
	store  Store
	logger *slog.Logger

	rec        Record
	awakeHours float64
	status     Status
}

// NewTracker loads the record from store, seeding defaults from now when it
// is missing or unreadable.
func NewTracker(ctx context.Context, store Store, now, dayLength float64, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Tracker{store: store, logger: logger}

	rec := DefaultRecord(now)
	if store != nil {
		loaded, found, err := store.Load(ctx)
		switch {
		case err != nil:
			logger.Warn("loading tiredness record, using defaults", "err", err)
		case found:
			rec = loaded
		}
	}
	t.rec = t.sanitize(rec, dayLength)

	// Awake time only survives a restart as the span since the last sleep
	// within one day.
	if span, ok := clock.Elapsed(t.rec.LastSleepTime, now, dayLength); ok {
		t.awakeHours = clock.Hours(span, dayLength)
	}
	t.status = t.deriveStatus()
	return t
}

func (t *Tracker) sanitize(rec Record, dayLength float64) Record {
	rec.Tiredness = clamp01(rec.Tiredness)
	rec.LastSleepQuality = clamp01(rec.LastSleepQuality)
	rec.LastSleepTime = t.normalizeTimestamp(rec.LastSleepTime, dayLength, "last_sleep_time")
	rec.LastTirednessUpdate = t.normalizeTimestamp(rec.LastTirednessUpdate, dayLength, "last_tiredness_update")
	return rec
}

func (t *Tracker) normalizeTimestamp(ts, dayLength float64, field string) float64 {
	if math.IsNaN(ts) || math.IsInf(ts, 0) {
		t.logger.Warn("invalid tiredness timestamp, clamping", "field", field, "value", ts)
		return 0
	}
	if ts < 0 && dayLength > 0 {
		ts += dayLength
	}
	if ts < 0 {
		t.logger.Warn("negative tiredness timestamp, clamping", "field", field, "value", ts)
		return 0
	}
	return ts
}

// Tick integrates the time since the previous tick.
func (t *Tracker) Tick(ctx context.Context, now, dayLength float64) Status {
	if t == nil {
		return Status{}
	}
	delta, ok := clock.Elapsed(t.rec.LastTirednessUpdate, now, dayLength)
	if !ok {
		t.logger.Warn("clock moved backwards past a day boundary", "last", t.rec.LastTirednessUpdate, "now", now, "day_length", dayLength)
	}
	hours := clock.Hours(delta, dayLength)

	t.rec.Tiredness = clamp01(t.rec.Tiredness + hours/MaxAwakeHours)
	t.rec.LastTirednessUpdate = now
	t.awakeHours += hours
	t.status = t.deriveStatus()

	t.persist(ctx)
	return t.status
}

// Resume moves the integration anchor to now without accruing anything, for
// time that passed while fatigue was suspended.
func (t *Tracker) Resume(ctx context.Context, now float64) {
	if t == nil || math.IsNaN(now) || math.IsInf(now, 0) {
		return
	}
	t.rec.LastTirednessUpdate = now
	t.persist(ctx)
}

// ReduceAfterSleep applies recovery for a sleep of the given length and
// quality ending at now. It returns the reduction that was applied before
// clamping.
func (t *Tracker) ReduceAfterSleep(ctx context.Context, hours, quality, now float64) float64 {
	if t == nil {
		return 0
	}
	if hours < 0 || math.IsNaN(hours) {
		hours = 0
	}
	quality = clamp01(quality)

	reduction := Recovery(hours, quality)
	t.rec.Tiredness = clamp01(t.rec.Tiredness - reduction)
	t.rec.LastSleepTime = now
	t.rec.LastTirednessUpdate = now
	t.rec.LastSleepQuality = quality
	t.awakeHours = 0
	t.status = t.deriveStatus()

	t.persist(ctx)
	return reduction
}

// Recovery is the saturating tiredness reduction for a sleep. Even the worst
// quality sleep keeps 15% of its effect.
func Recovery(hours, quality float64) float64 {
	factor := minQualityFactor + (1-minQualityFactor)*clamp01(quality)
	effective := hours * factor
	return 1 - math.Exp(-effective/recoveryTimescale)
}

func (t *Tracker) deriveStatus() Status {
	return Status{
		AwakeHours:     t.awakeHours,
		Blackouts:      t.awakeHours >= BlackoutThreshold,
		Hallucinations: t.awakeHours >= HallucinationThreshold,
	}
}

func (t *Tracker) persist(ctx context.Context) {
	if t.store == nil {
		return
	}
	if err := t.store.Upsert(ctx, t.rec); err != nil {
		t.logger.Warn("saving tiredness record", "err", err)
	}
}

func (t *Tracker) Record() Record {
	if t == nil {
		return Record{}
	}
	return t.rec
}

func (t *Tracker) Status() Status {
	if t == nil {
		return Status{}
	}
	return t.status
}

func (t *Tracker) Tiredness() float64 {
	return t.Record().Tiredness
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
