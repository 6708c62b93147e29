package sleep

// MaxEarlyFraction is the share of a day a zero-quality sleep can cut short.
const MaxEarlyFraction = 0.4

// Wake is the resolved end of a sleep in clock-domain units.
type Wake struct {
	Requested float64
	At        float64
	Early     bool
	// EarlyBy is how much sooner than requested the player wakes.
	EarlyBy float64
}

// ResolveWake decides when the player actually wakes. Poor quality only ever
// moves the wake time earlier.
func ResolveWake(rng Rand, wakeFraction, quality, dayLength float64) Wake {
	quality = clamp01(quality)
	requested := wakeFraction * dayLength
	w := Wake{Requested: requested, At: requested}

	if rng.Float64() <= quality {
		return w
	}

	maxEarly := dayLength * MaxEarlyFraction * (1 - quality)
	early := rng.Float64() * maxEarly
	at := requested - early
	if at < 0 {
		at += dayLength
		if at >= dayLength {
			at = 0
		}
	}
	w.At = at
	w.Early = true
	w.EarlyBy = early
	return w
}
